// Package registry holds the project verification state machine: registration,
// evaluation by the administrator and final verification against thresholds.
package registry

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/GoSim-25-26J-441/project-verification/internal/verification/domain"
)

// Store persists project records. Insert must fail with domain.ErrDuplicateProject
// for an existing id; Get and Update must fail with domain.ErrNotFound for a
// missing one.
type Store interface {
	Insert(ctx context.Context, p *domain.Project) error
	Get(ctx context.Context, projectID string) (*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	List(ctx context.Context) ([]domain.Project, error)
	Ping(ctx context.Context) error
}

// Config is fixed for the lifetime of a Registry.
type Config struct {
	Admin      string
	Thresholds domain.Thresholds
}

// Registry applies one operation at a time. Every precondition is checked
// before the single store write an operation performs, so a failed call
// leaves no trace.
type Registry struct {
	mu     sync.Mutex
	store  Store
	height HeightSource
	cfg    Config
}

func New(cfg Config, store Store, height HeightSource) *Registry {
	return &Registry{store: store, height: height, cfg: cfg}
}

// Admin returns the administrator identity.
func (r *Registry) Admin() string { return r.cfg.Admin }

// Thresholds returns the approval thresholds.
func (r *Registry) Thresholds() domain.Thresholds { return r.cfg.Thresholds }

// RegisterProject creates a pending project owned by caller, stamped with the
// current block height.
func (r *Registry) RegisterProject(ctx context.Context, projectID, caller string) (*domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := &domain.Project{
		ProjectID: projectID,
		Owner:     caller,
		Status:    domain.StatusPending,
		Timestamp: r.height.BlockHeight(),
	}
	if err := r.store.Insert(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// EvaluateProject overwrites both scores. Values are taken verbatim and the
// project status is not consulted; only finalization is guarded by status.
func (r *Registry) EvaluateProject(ctx context.Context, projectID string, technicalScore, financialScore int64, caller string) (*domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if caller != r.cfg.Admin {
		return nil, domain.ErrUnauthorized
	}

	p, err := r.store.Get(ctx, projectID)
	if err != nil {
		return nil, err
	}

	p.TechnicalScore = technicalScore
	p.FinancialScore = financialScore
	if err := r.store.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("evaluate %s: %w", projectID, err)
	}
	return p, nil
}

// FinalizeVerification moves a pending project to approved or rejected.
// Rejection is a successful outcome, not an error.
func (r *Registry) FinalizeVerification(ctx context.Context, projectID, caller string) (*domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if caller != r.cfg.Admin {
		return nil, domain.ErrUnauthorized
	}

	p, err := r.store.Get(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if p.Status != domain.StatusPending {
		return nil, domain.ErrAlreadyFinalized
	}

	p.Status = r.cfg.Thresholds.Decide(p.TechnicalScore, p.FinancialScore)
	if err := r.store.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("finalize %s: %w", projectID, err)
	}
	return p, nil
}

// IsProjectApproved reports whether the project exists and is approved.
// Unknown ids are simply not approved; only store failures return an error.
func (r *Registry) IsProjectApproved(ctx context.Context, projectID string) (bool, error) {
	p, err := r.GetProject(ctx, projectID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return p.Status == domain.StatusApproved, nil
}

// GetProject returns the full record, or domain.ErrNotFound.
func (r *Registry) GetProject(ctx context.Context, projectID string) (*domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.store.Get(ctx, projectID)
}

// ListProjects returns every project in registration order.
func (r *Registry) ListProjects(ctx context.Context) ([]domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.store.List(ctx)
}

// Stats counts projects per status.
func (r *Registry) Stats(ctx context.Context) (domain.Stats, error) {
	var stats domain.Stats

	projects, err := r.ListProjects(ctx)
	if err != nil {
		return stats, err
	}
	for _, p := range projects {
		stats.Add(p.Status)
	}
	return stats, nil
}
