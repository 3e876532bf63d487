package scheduler

import (
	"go.uber.org/fx"
)

// Module provides the scheduler and ties it to the app lifecycle. Tasks
// are added by the modules that own them.
var Module = fx.Module("scheduler",
	fx.Provide(NewScheduler),
	fx.Invoke(RegisterSchedulerLifecycle),
)

// RegisterSchedulerLifecycle starts cron with the app and waits for
// running tasks on shutdown.
func RegisterSchedulerLifecycle(lc fx.Lifecycle, s *Scheduler) {
	lc.Append(fx.StartStopHook(s.Start, s.Stop))
}
