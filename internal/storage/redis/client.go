package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/GoSim-25-26J-441/project-verification/config"
	"github.com/redis/go-redis/v9"
)

// NewClient connects to Redis and fails fast if it is unreachable.
func NewClient(ctx context.Context, cfg *config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}
