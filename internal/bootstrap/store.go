package bootstrap

import (
	"context"
	"fmt"
	"io"

	"github.com/GoSim-25-26J-441/project-verification/config"
	"github.com/GoSim-25-26J-441/project-verification/internal/storage/postgres"
	redisstorage "github.com/GoSim-25-26J-441/project-verification/internal/storage/redis"
	"github.com/GoSim-25-26J-441/project-verification/internal/verification/domain"
	"github.com/GoSim-25-26J-441/project-verification/internal/verification/registry"
	"github.com/GoSim-25-26J-441/project-verification/internal/verification/repository"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// OpenStore builds the project store selected by STORE_BACKEND. The returned
// closer releases the underlying connection.
func OpenStore(ctx context.Context, cfg *config.Config) (registry.Store, io.Closer, error) {
	switch cfg.Store.Backend {
	case config.StoreMemory:
		return repository.NewMemoryStore(), nopCloser{}, nil

	case config.StoreRedis:
		client, err := redisstorage.NewClient(ctx, &cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewRedisStore(client), client, nil

	case config.StorePostgres:
		db, err := postgres.NewConnection(ctx, &cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		store := repository.NewPostgresStore(db)
		if err := store.Migrate(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		return store, db, nil
	}

	return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
}

// NewRegistry builds the registry from configuration.
func NewRegistry(cfg *config.RegistryConfig, store registry.Store) *registry.Registry {
	return registry.New(registry.Config{
		Admin:      cfg.AdminID,
		Thresholds: domain.Thresholds{
			MinTechnicalScore: cfg.MinTechnicalScore,
			MinFinancialScore: cfg.MinFinancialScore,
		},
	}, store, registry.NewWallClockHeight(cfg.GenesisTime, cfg.BlockInterval))
}
