package cache

import (
	"github.com/docsense/docsense/internal/config"
	"github.com/docsense/docsense/internal/logger"
	redisClient "github.com/docsense/docsense/internal/redis"
)

// CacheType represents the type of cache to use
type CacheType string

const (
	// CacheTypeInMemory represents an in-memory cache
	CacheTypeInMemory CacheType = "inmemory"

	// CacheTypeRedis represents a Redis-backed cache
	CacheTypeRedis CacheType = "redis"
)

// Initialize builds the cache configured in cfg. A redis cache requires a
// connected client; falling back to in-memory keeps the server usable when
// redis is down.
func Initialize(cfg *config.Configuration, log *logger.Logger, client *redisClient.Client) Cache {
	log.Infow("initializing cache", "type", cfg.Cache.Type, "enabled", cfg.Cache.Enabled)

	if CacheType(cfg.Cache.Type) == CacheTypeRedis && client != nil {
		return NewRedisCache(client, log)
	}
	return GetInMemoryCache()
}
