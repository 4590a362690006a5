package domain

import "fmt"

// Status is the lifecycle state of a project. The numeric values are the
// ones the verification contract has always exposed to callers.
type Status uint8

const (
	StatusPending Status = iota
	StatusApproved
	StatusRejected
)

// DefaultMinScore is the approval threshold used on both axes unless configured otherwise.
const DefaultMinScore int64 = 70

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusApproved:
		return "approved"
	case StatusRejected:
		return "rejected"
	default:
		return fmt.Sprintf("status(%d)", uint8(s))
	}
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

func (s Status) MarshalText() ([]byte, error) {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return []byte(s.String()), nil
	}
	return nil, fmt.Errorf("invalid project status %d", uint8(s))
}

func (s *Status) UnmarshalText(text []byte) error {
	switch string(text) {
	case "pending":
		*s = StatusPending
	case "approved":
		*s = StatusApproved
	case "rejected":
		*s = StatusRejected
	default:
		return fmt.Errorf("invalid project status %q", string(text))
	}
	return nil
}

// Project is a submitted unit of work moving through registration, evaluation
// and final verification. It is storage-agnostic and shared by the repository,
// registry and HTTP layers.
type Project struct {
	ProjectID      string `json:"project_id"`
	Owner          string `json:"owner"`
	TechnicalScore int64  `json:"technical_score"`
	FinancialScore int64  `json:"financial_score"`
	Status         Status `json:"status"`
	Timestamp      uint64 `json:"timestamp"` // block height at registration
}

// Thresholds are the minimum scores a project needs on each axis to be approved.
type Thresholds struct {
	MinTechnicalScore int64 `json:"min_technical_score"`
	MinFinancialScore int64 `json:"min_financial_score"`
}

// DefaultThresholds returns 70/70.
func DefaultThresholds() Thresholds {
	return Thresholds{MinTechnicalScore: DefaultMinScore, MinFinancialScore: DefaultMinScore}
}

// Decide returns the terminal status for the given scores. Scores exactly at
// a threshold pass.
func (t Thresholds) Decide(technical, financial int64) Status {
	if technical >= t.MinTechnicalScore && financial >= t.MinFinancialScore {
		return StatusApproved
	}
	return StatusRejected
}

// Stats counts projects per status.
type Stats struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

// Add counts one project with the given status.
func (s *Stats) Add(status Status) {
	s.Total++
	switch status {
	case StatusPending:
		s.Pending++
	case StatusApproved:
		s.Approved++
	case StatusRejected:
		s.Rejected++
	}
}
