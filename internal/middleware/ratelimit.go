package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"task-assistant/internal/model"
	"task-assistant/pkg/response"
)

// rateLimiter keeps one token bucket per client key; idle keys expire.
type rateLimiter struct {
	mu       sync.Mutex
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	if requestsPerMin <= 0 {
		requestsPerMin = 60
	}
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](
			1000,          // Max 1000 unique clients
			nil,           // No eviction callback
			time.Minute*5, // TTL: 5 minutes
		),
		rate:  rate.Limit(float64(requestsPerMin) / 60.0), // Per second
		burst: burst,
	}
}

func (rl *rateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	rl.mu.Unlock()

	return limiter.Allow()
}

// RateLimit throttles per user when authenticated, per client IP otherwise.
// It is a no-op when rate limiting is disabled.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter == nil {
			c.Next()
			return
		}

		key := "ip:" + c.ClientIP()
		if sc, ok := model.GetScopeFromContext(c.Request.Context()); ok {
			key = "user:" + sc.UserID
		}

		if !m.limiter.Allow(key) {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: limit exceeded for %s", key)
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}
