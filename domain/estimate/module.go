package estimate

import (
	"context"
	"log/slog"
	"time"

	"go.uber.org/fx"

	"github.com/tarush10000/Sooru-Demo/domain/scheduler"
	"github.com/tarush10000/Sooru-Demo/internal/config"
)

// limiterIdle is how long a client's bucket is kept after its last request.
const limiterIdle = 10 * time.Minute

var Module = fx.Module("estimate",
	fx.Provide(
		NewServiceFromConfig,
		NewHandler,
		NewRateLimiterFromConfig,
	),
	fx.Invoke(
		RegisterRoutes,
		RegisterLimiterPrune,
	),
)

// NewRateLimiterFromConfig is the fx constructor for the API limiter.
func NewRateLimiterFromConfig(cfg *config.Config) *ClientRateLimiter {
	return NewClientRateLimiter(cfg.API.RateLimitPerMinute, cfg.API.RateLimitBurst)
}

// RegisterLimiterPrune drops idle client buckets on the session sweep cadence.
func RegisterLimiterPrune(sched *scheduler.Scheduler, limiter *ClientRateLimiter, cfg *config.Config, log *slog.Logger) error {
	return sched.AddIntervalTask("ratelimit_prune", cfg.Session.SweepInterval, func(ctx context.Context) error {
		if n := limiter.Prune(limiterIdle); n > 0 {
			log.DebugContext(ctx, "pruned idle rate limiters", slog.Int("removed", n))
		}
		return nil
	})
}
