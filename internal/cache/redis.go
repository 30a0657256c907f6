package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/docsense/docsense/internal/logger"
	redisClient "github.com/docsense/docsense/internal/redis"
	"github.com/redis/go-redis/v9"
)

const (
	// ScanCount determines how many keys to scan at once when using SCAN
	ScanCount = 100
)

// RedisCache implements the Cache interface using Redis. Values are stored as
// JSON strings; UnmarshalCacheValue converts them back on read.
type RedisCache struct {
	client *redis.Client
	log    *logger.Logger
}

// NewRedisCache creates a new Redis cache
func NewRedisCache(client *redisClient.Client, log *logger.Logger) *RedisCache {
	return &RedisCache{
		client: client.GetClient(),
		log:    log,
	}
}

// Get retrieves a value from the cache
func (c *RedisCache) Get(ctx context.Context, key string) (interface{}, bool) {
	value, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false
		}
		c.log.Errorw("redis GET error", "key", key, "error", err)
		return nil, false
	}
	return value, true
}

// Set stores a value in the cache
func (c *RedisCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) {
	if expiration <= 0 {
		expiration = ExpiryDefaultRedis
	}

	data, err := json.Marshal(value)
	if err != nil {
		c.log.Errorw("failed to marshal cache value", "key", key, "error", err)
		return
	}

	if err := c.client.Set(ctx, key, string(data), expiration).Err(); err != nil {
		c.log.Errorw("redis SET error", "key", key, "error", err)
	}
}

// Delete removes a value from the cache
func (c *RedisCache) Delete(ctx context.Context, key string) {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		c.log.Errorw("redis DEL error", "key", key, "error", err)
	}
}

// DeleteByPrefix removes all values whose key starts with the prefix
func (c *RedisCache) DeleteByPrefix(ctx context.Context, prefix string) {
	var cursor uint64
	for {
		keys, next, err := c.client.Scan(ctx, cursor, prefix+"*", ScanCount).Result()
		if err != nil {
			c.log.Errorw("redis SCAN error", "prefix", prefix, "error", err)
			return
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				c.log.Errorw("redis DEL error", "prefix", prefix, "error", err)
			}
		}
		cursor = next
		if cursor == 0 {
			return
		}
	}
}
