// Package cache provides a small cache abstraction with in-memory and
// redis-backed implementations. The marketing-site backend uses it to avoid
// rebuilding localized plan-catalog responses on every request.
package cache

import (
	"context"
	"encoding/json"
	"time"
)

// Cache is the interface both implementations satisfy.
type Cache interface {
	Get(ctx context.Context, key string) (interface{}, bool)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration)
	Delete(ctx context.Context, key string)
	DeleteByPrefix(ctx context.Context, prefix string)
}

// UnmarshalCacheValue attempts to convert a cache value to the specified type.
// It handles both the in-memory cache (which stores actual objects) and the
// redis cache (which stores JSON strings). Returns the typed value and true if
// successful, nil and false otherwise.
func UnmarshalCacheValue[T any](value interface{}) (*T, bool) {
	if value == nil {
		return nil, false
	}

	if typed, ok := value.(*T); ok {
		return typed, true
	}

	if str, ok := value.(string); ok {
		var result T
		if err := json.Unmarshal([]byte(str), &result); err == nil {
			return &result, true
		}
	}

	return nil, false
}
