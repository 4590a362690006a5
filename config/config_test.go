package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ADMIN_ID", "ST1PQHQKV0RJXZFY1DGX8MNSNYVE3VGZJSRTPGZGM")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "ST1PQHQKV0RJXZFY1DGX8MNSNYVE3VGZJSRTPGZGM", cfg.Registry.AdminID)
	assert.Equal(t, int64(70), cfg.Registry.MinTechnicalScore)
	assert.Equal(t, int64(70), cfg.Registry.MinFinancialScore)
	assert.Equal(t, 10*time.Minute, cfg.Registry.BlockInterval)
	assert.Equal(t, StoreMemory, cfg.Store.Backend)
	assert.Equal(t, "verification", cfg.Database.Name)
	assert.Equal(t, 40, cfg.App.RateLimitBurst)
	assert.False(t, cfg.Registry.GenesisTime.IsZero())
}

func TestLoad_PersistentStoreNeedsGenesis(t *testing.T) {
	t.Setenv("ADMIN_ID", "admin")
	t.Setenv("STORE_BACKEND", StorePostgres)

	_, err := Load()
	assert.EqualError(t, err, "GENESIS_TIME is required for the postgres store")

	t.Setenv("GENESIS_TIME", "not-a-time")
	_, err = Load()
	assert.Error(t, err)

	t.Setenv("GENESIS_TIME", "2024-01-01T00:00:00Z")
	first, err := Load()
	require.NoError(t, err)

	// a restart with the same environment keeps the same block 0
	second, err := Load()
	require.NoError(t, err)
	assert.Equal(t, first.Registry.GenesisTime, second.Registry.GenesisTime)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ADMIN_ID", "admin")
	t.Setenv("MIN_TECHNICAL_SCORE", "60")
	t.Setenv("MIN_FINANCIAL_SCORE", "85")
	t.Setenv("BLOCK_INTERVAL", "30s")
	t.Setenv("GENESIS_TIME", "2024-01-01T00:00:00Z")
	t.Setenv("STORE_BACKEND", StoreRedis)
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("RATE_LIMIT_RPS", "2.5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, int64(60), cfg.Registry.MinTechnicalScore)
	assert.Equal(t, int64(85), cfg.Registry.MinFinancialScore)
	assert.Equal(t, 30*time.Second, cfg.Registry.BlockInterval)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), cfg.Registry.GenesisTime)
	assert.Equal(t, StoreRedis, cfg.Store.Backend)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, 2.5, cfg.App.RateLimitRPS)
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("ADMIN_ID", "admin")
	t.Setenv("MIN_TECHNICAL_SCORE", "high")
	t.Setenv("BLOCK_INTERVAL", "often")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, int64(70), cfg.Registry.MinTechnicalScore)
	assert.Equal(t, 10*time.Minute, cfg.Registry.BlockInterval)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:   ServerConfig{Port: "8080"},
			Registry: RegistryConfig{AdminID: "admin", BlockInterval: time.Minute},
			Store:    StoreConfig{Backend: StoreMemory},
		}
	}

	t.Run("accepts memory store", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("requires admin", func(t *testing.T) {
		cfg := valid()
		cfg.Registry.AdminID = ""
		assert.EqualError(t, cfg.Validate(), "ADMIN_ID is required")
	})

	t.Run("rejects unknown backend", func(t *testing.T) {
		cfg := valid()
		cfg.Store.Backend = "etcd"
		assert.Error(t, cfg.Validate())
	})

	t.Run("postgres needs a host", func(t *testing.T) {
		cfg := valid()
		cfg.Store.Backend = StorePostgres
		cfg.Registry.GenesisTime = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		assert.Error(t, cfg.Validate())
		cfg.Database.Host = "db"
		assert.NoError(t, cfg.Validate())
	})

	t.Run("redis needs a genesis time", func(t *testing.T) {
		cfg := valid()
		cfg.Store.Backend = StoreRedis
		cfg.Redis.Addr = "redis:6379"
		assert.EqualError(t, cfg.Validate(), "GENESIS_TIME is required for the redis store")
		cfg.Registry.GenesisTime = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		assert.NoError(t, cfg.Validate())
	})

	t.Run("block interval must be positive", func(t *testing.T) {
		cfg := valid()
		cfg.Registry.BlockInterval = 0
		assert.Error(t, cfg.Validate())
	})
}
