package middleware

import (
	"sync"

	"github.com/docsense/docsense/internal/config"
	ierr "github.com/docsense/docsense/internal/errors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimitMiddleware applies a per-client-IP token bucket to the public
// endpoints. The limiter map is never pruned; the cardinality of site
// visitors per process lifetime is small enough not to matter.
func RateLimitMiddleware(cfg config.RateLimitConfig) gin.HandlerFunc {
	if !cfg.Enabled {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	var (
		mu       sync.Mutex
		limiters = make(map[string]*rate.Limiter)
	)

	limiterFor := func(ip string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()
		l, ok := limiters[ip]
		if !ok {
			l = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst)
			limiters[ip] = l
		}
		return l
	}

	return func(c *gin.Context) {
		if !limiterFor(c.ClientIP()).Allow() {
			c.Error(ierr.NewError("rate limit exceeded").
				WithHint("Too many requests, slow down").
				Mark(ierr.ErrTooManyRequests))
			c.Abort()
			return
		}
		c.Next()
	}
}
