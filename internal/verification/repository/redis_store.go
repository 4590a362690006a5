package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/GoSim-25-26J-441/project-verification/internal/verification/domain"
	"github.com/redis/go-redis/v9"
)

const (
	projectKeyPrefix    = "pv:project:" // Project data: pv:project:{project_id}
	projectIndexKey     = "pv:projects" // Set of every registered project id
	projectEventsPrefix = "pv:events:"  // Pub/Sub channel for project updates: pv:events:{project_id}
)

// RedisStore keeps projects as JSON blobs in Redis. Projects never expire.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a new RedisStore
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Insert stores a new project with SETNX so an existing id is never overwritten.
func (r *RedisStore) Insert(ctx context.Context, p *domain.Project) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal project: %w", err)
	}

	var created *redis.BoolCmd
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		created = pipe.SetNX(ctx, r.projectKey(p.ProjectID), data, 0)
		pipe.SAdd(ctx, projectIndexKey, p.ProjectID)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	if !created.Val() {
		return domain.ErrDuplicateProject
	}

	return nil
}

// Get retrieves a project by its id
func (r *RedisStore) Get(ctx context.Context, projectID string) (*domain.Project, error) {
	data, err := r.client.Get(ctx, r.projectKey(projectID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	var p domain.Project
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal project: %w", err)
	}

	return &p, nil
}

// Update overwrites an existing project (SET XX) and publishes the new state.
func (r *RedisStore) Update(ctx context.Context, p *domain.Project) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal project: %w", err)
	}

	ok, err := r.client.SetXX(ctx, r.projectKey(p.ProjectID), data, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}
	if !ok {
		return domain.ErrNotFound
	}

	// Subscribers are best effort; the write above is what counts.
	r.client.Publish(ctx, r.eventChannel(p.ProjectID), data)

	return nil
}

// List returns every registered project.
func (r *RedisStore) List(ctx context.Context) ([]domain.Project, error) {
	ids, err := r.client.SMembers(ctx, projectIndexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	if len(ids) == 0 {
		return []domain.Project{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.projectKey(id)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load projects: %w", err)
	}

	out := make([]domain.Project, 0, len(values))
	for i, v := range values {
		s, ok := v.(string)
		if !ok {
			continue // indexed but missing
		}
		var p domain.Project
		if err := json.Unmarshal([]byte(s), &p); err != nil {
			return nil, fmt.Errorf("failed to unmarshal project %s: %w", ids[i], err)
		}
		out = append(out, p)
	}

	sortProjects(out)
	return out, nil
}

func (r *RedisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Subscribe returns a Pub/Sub subscription to updates of a single project.
func (r *RedisStore) Subscribe(ctx context.Context, projectID string) *redis.PubSub {
	return r.client.Subscribe(ctx, r.eventChannel(projectID))
}

func (r *RedisStore) projectKey(projectID string) string {
	return projectKeyPrefix + projectID
}

func (r *RedisStore) eventChannel(projectID string) string {
	return projectEventsPrefix + projectID
}
