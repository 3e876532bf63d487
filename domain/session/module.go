package session

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/tarush10000/Sooru-Demo/domain/scheduler"
	"github.com/tarush10000/Sooru-Demo/internal/config"
)

// SweepTaskName is the scheduler task that expires idle sessions.
const SweepTaskName = "session_sweep"

var Module = fx.Module("session",
	fx.Provide(NewStoreFromConfig),
	fx.Invoke(RegisterSweep),
)

// NewStoreFromConfig builds the store with the configured TTL.
func NewStoreFromConfig(cfg *config.Config, log *slog.Logger) *Store {
	return NewStore(cfg.Session.TTL, log)
}

// RegisterSweep schedules Sweep at the configured interval.
func RegisterSweep(sched *scheduler.Scheduler, store *Store, cfg *config.Config) error {
	return sched.AddIntervalTask(SweepTaskName, cfg.Session.SweepInterval, func(ctx context.Context) error {
		store.Sweep(store.now())
		return nil
	})
}
