package health

import (
	"context"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/tarush10000/Sooru-Demo/domain/scheduler"
	"github.com/tarush10000/Sooru-Demo/internal/config"
	"github.com/tarush10000/Sooru-Demo/pkg/logger"
	"github.com/tarush10000/Sooru-Demo/pkg/metrics"
)

// HostSampleTaskName is the scheduler task that refreshes HostStats.
const HostSampleTaskName = "host_stats"

// HostStats is the latest host sample shown on /debug.
type HostStats struct {
	Load1          float64   `json:"load1"`
	MemUsedPercent float64   `json:"mem_used_percent"`
	CPUCores       int       `json:"cpu_cores"`
	SampledAt      time.Time `json:"sampled_at,omitempty"`
	Failures       int       `json:"consecutive_failures"`
}

// HostSampler collects load and memory usage on a schedule. A failed
// reading keeps the previous value.
type HostSampler struct {
	log *slog.Logger
	mu  sync.RWMutex
	cur HostStats

	// Collection functions for mocking
	getLoadAvg  func(context.Context) (*load.AvgStat, error)
	getMemStats func(context.Context) (*mem.VirtualMemoryStat, error)
}

func NewHostSampler(log *slog.Logger) *HostSampler {
	return &HostSampler{
		log:         log.With(logger.Scope("health.host")),
		cur:         HostStats{CPUCores: runtime.NumCPU()},
		getLoadAvg:  load.AvgWithContext,
		getMemStats: mem.VirtualMemoryWithContext,
	}
}

// Sample takes one reading. It only fails when both readings fail.
func (s *HostSampler) Sample(ctx context.Context) error {
	l, loadErr := s.getLoadAvg(ctx)
	if loadErr != nil {
		s.log.WarnContext(ctx, "failed to collect load average", logger.Error(loadErr))
	}
	m, memErr := s.getMemStats(ctx)
	if memErr != nil {
		s.log.WarnContext(ctx, "failed to collect memory stats", logger.Error(memErr))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if loadErr != nil || memErr != nil {
		s.cur.Failures++
	} else {
		s.cur.Failures = 0
	}
	if loadErr == nil {
		s.cur.Load1 = l.Load1
		metrics.HostLoad1.Set(l.Load1)
	}
	if memErr == nil {
		s.cur.MemUsedPercent = m.UsedPercent
		metrics.HostMemoryUsed.Set(m.UsedPercent)
	}
	if loadErr != nil && memErr != nil {
		return loadErr
	}
	s.cur.SampledAt = time.Now().UTC()
	return nil
}

// Last returns the most recent sample.
func (s *HostSampler) Last() HostStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur
}

// RegisterHostSampling samples on the session sweep cadence.
func RegisterHostSampling(sched *scheduler.Scheduler, sampler *HostSampler, cfg *config.Config) error {
	return sched.AddIntervalTask(HostSampleTaskName, cfg.Session.SweepInterval, sampler.Sample)
}
