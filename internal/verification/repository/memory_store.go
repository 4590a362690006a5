package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/GoSim-25-26J-441/project-verification/internal/verification/domain"
)

// MemoryStore keeps projects in process memory. It is the default store and
// the one used by tests.
type MemoryStore struct {
	mu       sync.RWMutex
	projects map[string]domain.Project
}

// NewMemoryStore creates an empty MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{projects: make(map[string]domain.Project)}
}

// Insert adds a new project, failing with ErrDuplicateProject if the id is taken.
func (s *MemoryStore) Insert(_ context.Context, p *domain.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.projects[p.ProjectID]; ok {
		return domain.ErrDuplicateProject
	}
	s.projects[p.ProjectID] = *p
	return nil
}

// Get returns a copy of the stored project.
func (s *MemoryStore) Get(_ context.Context, projectID string) (*domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.projects[projectID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

// Update replaces an existing project.
func (s *MemoryStore) Update(_ context.Context, p *domain.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.projects[p.ProjectID]; !ok {
		return domain.ErrNotFound
	}
	s.projects[p.ProjectID] = *p
	return nil
}

// List returns all projects ordered by registration height, then id.
func (s *MemoryStore) List(_ context.Context) ([]domain.Project, error) {
	s.mu.RLock()
	out := make([]domain.Project, 0, len(s.projects))
	for _, p := range s.projects {
		out = append(out, p)
	}
	s.mu.RUnlock()

	sortProjects(out)
	return out, nil
}

func (s *MemoryStore) Ping(context.Context) error { return nil }

func sortProjects(ps []domain.Project) {
	sort.Slice(ps, func(i, j int) bool {
		if ps[i].Timestamp != ps[j].Timestamp {
			return ps[i].Timestamp < ps[j].Timestamp
		}
		return ps[i].ProjectID < ps[j].ProjectID
	})
}
