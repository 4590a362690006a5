package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreMemory   = "memory"
	StoreRedis    = "redis"
	StorePostgres = "postgres"
)

type Config struct {
	Server   ServerConfig
	Registry RegistryConfig
	Store    StoreConfig
	Redis    RedisConfig
	Database DatabaseConfig
	App      AppConfig
}

type ServerConfig struct {
	Port string
}

// RegistryConfig holds the administrator identity, approval thresholds and
// the block clock used to stamp registrations.
type RegistryConfig struct {
	AdminID           string
	MinTechnicalScore int64
	MinFinancialScore int64
	GenesisTime       time.Time
	BlockInterval     time.Duration
}

type StoreConfig struct {
	Backend string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
}

type AppConfig struct {
	Environment      string
	LogLevel         string
	Version          string
	RateLimitRPS     float64
	RateLimitBurst   int
	SnapshotSchedule string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Registry: RegistryConfig{
			AdminID:           getEnv("ADMIN_ID", ""),
			MinTechnicalScore: int64(getEnvAsInt("MIN_TECHNICAL_SCORE", 70)),
			MinFinancialScore: int64(getEnvAsInt("MIN_FINANCIAL_SCORE", 70)),
			GenesisTime:       getEnvAsTime("GENESIS_TIME", time.Time{}),
			BlockInterval:     getEnvAsDuration("BLOCK_INTERVAL", 10*time.Minute),
		},
		Store: StoreConfig{
			Backend: getEnv("STORE_BACKEND", StoreMemory),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "verification"),
		},
		App: AppConfig{
			Environment:      getEnv("APP_ENV", "development"),
			LogLevel:         getEnv("LOG_LEVEL", "info"),
			Version:          getEnv("APP_VERSION", "1.0.0"),
			RateLimitRPS:     getEnvAsFloat("RATE_LIMIT_RPS", 20),
			RateLimitBurst:   getEnvAsInt("RATE_LIMIT_BURST", 40),
			SnapshotSchedule: getEnv("SNAPSHOT_SCHEDULE", "0 */5 * * * *"),
		},
	}

	// Heights only need to survive the process when the store does.
	if cfg.Registry.GenesisTime.IsZero() && cfg.Store.Backend == StoreMemory {
		cfg.Registry.GenesisTime = time.Now().UTC()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Registry.AdminID == "" {
		return fmt.Errorf("ADMIN_ID is required")
	}

	if c.Registry.BlockInterval <= 0 {
		return fmt.Errorf("BLOCK_INTERVAL must be positive")
	}

	if c.Store.Backend != StoreMemory && c.Registry.GenesisTime.IsZero() {
		return fmt.Errorf("GENESIS_TIME is required for the %s store", c.Store.Backend)
	}

	switch c.Store.Backend {
	case StoreMemory:
	case StoreRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("REDIS_ADDR is required for the redis store")
		}
	case StorePostgres:
		if c.Database.Host == "" {
			return fmt.Errorf("DB_HOST is required for the postgres store")
		}
	default:
		return fmt.Errorf("unknown STORE_BACKEND %q", c.Store.Backend)
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid number for %s, using default: %g", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration for %s, using default: %s", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsTime(key string, defaultValue time.Time) time.Time {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.Parse(time.RFC3339, valueStr)
	if err != nil {
		log.Printf("Warning: Invalid RFC3339 time for %s, using default: %s", key, defaultValue.Format(time.RFC3339))
		return defaultValue
	}

	return value
}
