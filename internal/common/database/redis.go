// internal/common/database/redis.go
package database

import (
	"context"
	"fmt"
	"time"

	"platform-finder/internal/common/config"

	"github.com/redis/go-redis/v9"
)

const (
	defaultPoolSize     = 10
	defaultMinIdleConns = 2
)

// RedisClient holds the connection used for wizard session state.
type RedisClient struct {
	Client *redis.Client
}

// NewRedis builds a client from cfg. It does not dial; call Ping to verify.
func NewRedis(cfg config.RedisConfig) (*RedisClient, error) {
	if cfg.Address == "" {
		return nil, fmt.Errorf("redis address is required")
	}
	return &RedisClient{Client: redis.NewClient(options(cfg))}, nil
}

func options(cfg config.RedisConfig) *redis.Options {
	pool := cfg.PoolSize
	if pool <= 0 {
		pool = defaultPoolSize
	}
	idle := cfg.MinIdleConns
	if idle <= 0 || idle > pool {
		idle = min(defaultMinIdleConns, pool)
	}
	return &redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     pool,
		MinIdleConns: idle,
	}
}

// Ping satisfies the readiness check signature used by the HTTP server.
func (c *RedisClient) Ping(ctx context.Context) error {
	if err := c.Client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (c *RedisClient) Close() error {
	if c.Client == nil {
		return nil
	}
	return c.Client.Close()
}

// GetClient exposes the go-redis client for the session store.
func (c *RedisClient) GetClient() *redis.Client {
	return c.Client
}
