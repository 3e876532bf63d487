// Package metrics holds the Prometheus collectors shared by the site, the
// JSON API and the session store.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ScreenViews = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sooru_screen_views_total",
		Help: "Rendered pages by screen",
	}, []string{"screen"})

	WizardTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sooru_wizard_transitions_total",
		Help: "Demo wizard moves by action and resulting step",
	}, []string{"action", "step"})

	Estimates = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sooru_estimates_total",
		Help: "Cost estimates computed, by source",
	}, []string{"source"})

	EstimateTotal = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "sooru_estimate_total_dollars",
		Help:    "Distribution of estimated totals",
		Buckets: []float64{25000, 50000, 75000, 100000, 150000, 200000},
	})

	Shares = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sooru_shares_total",
		Help: "Share actions by platform",
	}, []string{"platform"})

	ActiveSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "sooru_active_sessions",
		Help: "Visitor sessions currently held in memory",
	})

	SessionsExpired = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sooru_sessions_expired_total",
		Help: "Sessions removed by the sweeper",
	})

	HostLoad1 = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "sooru_host_load1",
		Help: "One-minute host load average",
	})

	HostMemoryUsed = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "sooru_host_memory_used_percent",
		Help: "Host memory in use",
	})

	RateLimited = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sooru_api_rate_limited_total",
		Help: "API requests rejected by the rate limiter",
	})
)
