package estimate

import (
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"github.com/tarush10000/Sooru-Demo/pkg/apperror"
	"github.com/tarush10000/Sooru-Demo/pkg/metrics"
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ClientRateLimiter keeps one token bucket per client key.
type ClientRateLimiter struct {
	mu       sync.RWMutex
	limiters map[string]*clientLimiter
	limit    rate.Limit
	burst    int
	now      func() time.Time
}

// NewClientRateLimiter allows perMinute requests per client with the given
// burst. Non-positive values fall back to 60/min and a burst of 10.
func NewClientRateLimiter(perMinute, burst int) *ClientRateLimiter {
	if perMinute <= 0 {
		perMinute = 60
	}
	if burst <= 0 {
		burst = 10
	}
	return &ClientRateLimiter{
		limiters: make(map[string]*clientLimiter),
		limit:    rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    burst,
		now:      time.Now,
	}
}

// Allow consumes a token for key.
func (m *ClientRateLimiter) Allow(key string) bool {
	cl := m.getLimiter(key)
	now := m.now()

	m.mu.Lock()
	cl.lastSeen = now
	m.mu.Unlock()

	return cl.limiter.AllowN(now, 1)
}

func (m *ClientRateLimiter) getLimiter(key string) *clientLimiter {
	m.mu.RLock()
	cl, exists := m.limiters[key]
	m.mu.RUnlock()
	if exists {
		return cl
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Double check to prevent race condition
	if cl, exists = m.limiters[key]; exists {
		return cl
	}
	cl = &clientLimiter{limiter: rate.NewLimiter(m.limit, m.burst)}
	m.limiters[key] = cl
	return cl
}

// Prune forgets clients idle for longer than idle and returns how many were
// removed.
func (m *ClientRateLimiter) Prune(idle time.Duration) int {
	cutoff := m.now().Add(-idle)

	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for key, cl := range m.limiters {
		if cl.lastSeen.Before(cutoff) {
			delete(m.limiters, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked clients.
func (m *ClientRateLimiter) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.limiters)
}

// Middleware rejects requests over the limit with 429, keyed by client IP.
func (m *ClientRateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !m.Allow(c.RealIP()) {
				metrics.RateLimited.Inc()
				c.Response().Header().Set("Retry-After", "60")
				return apperror.ErrRateLimited
			}
			return next(c)
		}
	}
}
