package service

import (
	"context"

	"github.com/GoSim-25-26J-441/project-verification/internal/verification/domain"
	"github.com/GoSim-25-26J-441/project-verification/internal/verification/registry"
)

// VerificationService fronts the registry for transports: it logs every
// mutating call with its request id and keeps operation metrics.
type VerificationService struct {
	registry *registry.Registry
	metrics  *Metrics
	logLevel Level
}

// NewVerificationService creates a new VerificationService
func NewVerificationService(reg *registry.Registry) *VerificationService {
	return &VerificationService{
		registry: reg,
		metrics:  &Metrics{},
		logLevel: LevelInfo,
	}
}

// SetLogLevel sets the minimum level of per-request log lines from LOG_LEVEL.
func (s *VerificationService) SetLogLevel(level string) {
	s.logLevel = ParseLevel(level)
}

// Register registers a new pending project owned by caller
func (s *VerificationService) Register(ctx context.Context, projectID, caller string) (*domain.Project, error) {
	logger := NewLogger(ctx, s.logLevel)

	p, err := s.registry.RegisterProject(ctx, projectID, caller)
	if err != nil {
		s.fail(logger, "register", err)
		return nil, err
	}

	s.metrics.registrations.Add(1)
	logger.LogInfof("register", "project_id=%s owner=%s height=%d", p.ProjectID, p.Owner, p.Timestamp)
	return p, nil
}

// Evaluate records the administrator's scores for a project
func (s *VerificationService) Evaluate(ctx context.Context, projectID string, technicalScore, financialScore int64, caller string) (*domain.Project, error) {
	logger := NewLogger(ctx, s.logLevel)

	p, err := s.registry.EvaluateProject(ctx, projectID, technicalScore, financialScore, caller)
	if err != nil {
		s.fail(logger, "evaluate", err)
		return nil, err
	}

	s.metrics.evaluations.Add(1)
	if p.Status.IsTerminal() {
		logger.LogWarnf("evaluate", "project_id=%s scores changed after %s", p.ProjectID, p.Status)
	}
	logger.LogInfof("evaluate", "project_id=%s technical=%d financial=%d", p.ProjectID, p.TechnicalScore, p.FinancialScore)
	return p, nil
}

// Finalize decides a pending project against the thresholds
func (s *VerificationService) Finalize(ctx context.Context, projectID, caller string) (*domain.Project, error) {
	logger := NewLogger(ctx, s.logLevel)

	p, err := s.registry.FinalizeVerification(ctx, projectID, caller)
	if err != nil {
		s.fail(logger, "finalize", err)
		return nil, err
	}

	s.metrics.recordFinalized(p.Status)
	logger.LogInfof("finalize", "project_id=%s status=%s", p.ProjectID, p.Status)
	return p, nil
}

// IsApproved reports whether a project exists and is approved
func (s *VerificationService) IsApproved(ctx context.Context, projectID string) (bool, error) {
	return s.registry.IsProjectApproved(ctx, projectID)
}

// Get returns a project by id
func (s *VerificationService) Get(ctx context.Context, projectID string) (*domain.Project, error) {
	return s.registry.GetProject(ctx, projectID)
}

// List returns all projects
func (s *VerificationService) List(ctx context.Context) ([]domain.Project, error) {
	return s.registry.ListProjects(ctx)
}

// Stats counts projects per status
func (s *VerificationService) Stats(ctx context.Context) (domain.Stats, error) {
	return s.registry.Stats(ctx)
}

// Admin returns the administrator identity
func (s *VerificationService) Admin() string {
	return s.registry.Admin()
}

// Thresholds returns the approval thresholds
func (s *VerificationService) Thresholds() domain.Thresholds {
	return s.registry.Thresholds()
}

// Metrics returns the current operation metrics
func (s *VerificationService) Metrics() MetricsSnapshot {
	return s.metrics.Snapshot()
}

func (s *VerificationService) fail(logger *Logger, operation string, err error) {
	s.metrics.recordFailure(err)
	if domain.CodeOf(err) == domain.CodeInternal {
		logger.LogError(operation, err)
		return
	}
	logger.LogWarnf(operation, "rejected code=%s error=%v", domain.CodeOf(err), err)
}
