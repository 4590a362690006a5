package service

import (
	"sync/atomic"

	"github.com/GoSim-25-26J-441/project-verification/internal/verification/domain"
)

// Metrics counts registry operations and their outcomes.
type Metrics struct {
	registrations atomic.Int64
	evaluations   atomic.Int64
	approvals     atomic.Int64
	rejections    atomic.Int64

	duplicate        atomic.Int64
	unauthorized     atomic.Int64
	notFound         atomic.Int64
	alreadyFinalized atomic.Int64
	internal         atomic.Int64
}

// MetricsSnapshot is a point-in-time copy of Metrics.
type MetricsSnapshot struct {
	Registrations int64            `json:"registrations"`
	Evaluations   int64            `json:"evaluations"`
	Approvals     int64            `json:"approvals"`
	Rejections    int64            `json:"rejections"`
	Failures      map[string]int64 `json:"failures"`
}

func (m *Metrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		Registrations: m.registrations.Load(),
		Evaluations:   m.evaluations.Load(),
		Approvals:     m.approvals.Load(),
		Rejections:    m.rejections.Load(),
		Failures: map[string]int64{
			domain.CodeDuplicateProject.String(): m.duplicate.Load(),
			domain.CodeUnauthorized.String():     m.unauthorized.Load(),
			domain.CodeNotFound.String():         m.notFound.Load(),
			domain.CodeAlreadyFinalized.String(): m.alreadyFinalized.Load(),
			domain.CodeInternal.String():         m.internal.Load(),
		},
	}
}

// FailureRate returns failed calls as a percentage of all mutating calls.
func (s MetricsSnapshot) FailureRate() float64 {
	var failures int64
	for _, n := range s.Failures {
		failures += n
	}
	total := s.Registrations + s.Evaluations + s.Approvals + s.Rejections + failures
	if total == 0 {
		return 0
	}
	return float64(failures) / float64(total) * 100
}

func (m *Metrics) recordFailure(err error) {
	switch domain.CodeOf(err) {
	case domain.CodeOK:
	case domain.CodeDuplicateProject:
		m.duplicate.Add(1)
	case domain.CodeUnauthorized:
		m.unauthorized.Add(1)
	case domain.CodeNotFound:
		m.notFound.Add(1)
	case domain.CodeAlreadyFinalized:
		m.alreadyFinalized.Add(1)
	default:
		m.internal.Add(1)
	}
}

func (m *Metrics) recordFinalized(status domain.Status) {
	if status == domain.StatusApproved {
		m.approvals.Add(1)
	} else {
		m.rejections.Add(1)
	}
}
