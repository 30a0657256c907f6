package redis

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"github.com/docsense/docsense/internal/config"
	"github.com/docsense/docsense/internal/logger"
	"github.com/redis/go-redis/v9"
)

// Client wraps the go-redis client used for lead storage and the optional
// redis-backed cache.
type Client struct {
	rdb  *redis.Client
	log  *logger.Logger
	opts *redis.Options
}

// NewClient creates a new Redis client and verifies connectivity.
func NewClient(cfg config.RedisConfig, log *logger.Logger) (*Client, error) {
	opts := &redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  cfg.Timeout,
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
		PoolSize:     cfg.PoolSize,
	}

	if cfg.UseTLS {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	rdb := redis.NewClient(opts)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	log.Infow("connected to redis", "addr", opts.Addr, "db", cfg.DB)

	return &Client{rdb: rdb, log: log, opts: opts}, nil
}

// GetClient returns the underlying Redis client
func (c *Client) GetClient() *redis.Client {
	return c.rdb
}

// Ping checks the Redis connection
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.rdb.Ping(ctx).Result()
	return err
}

// Close closes the Redis client connection
func (c *Client) Close() error {
	return c.rdb.Close()
}
