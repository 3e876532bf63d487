package health

import (
	"net/http"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tarush10000/Sooru-Demo/domain/scheduler"
	"github.com/tarush10000/Sooru-Demo/domain/session"
	"github.com/tarush10000/Sooru-Demo/internal/config"
	"github.com/tarush10000/Sooru-Demo/internal/content"
	"github.com/tarush10000/Sooru-Demo/internal/version"
)

// Handler handles health check requests
type Handler struct {
	sessions  *session.Store
	scheduler *scheduler.Scheduler
	host      *HostSampler
	cfg       *config.Config
	startAt   time.Time
}

// NewHandler creates a new health handler
func NewHandler(sessions *session.Store, sched *scheduler.Scheduler, host *HostSampler, cfg *config.Config) *Handler {
	return &Handler{
		sessions:  sessions,
		scheduler: sched,
		host:      host,
		cfg:       cfg,
		startAt:   time.Now(),
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status         string           `json:"status"`
	Timestamp      string           `json:"timestamp"`
	Uptime         string           `json:"uptime"`
	Version        string           `json:"version"`
	ActiveSessions int              `json:"active_sessions"`
	Checks         map[string]Check `json:"checks"`
}

// Check represents an individual health check result
type Check struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

func (h *Handler) checks() map[string]Check {
	checks := map[string]Check{
		"scheduler": {Status: "healthy"},
		"content":   {Status: "healthy"},
	}
	if !h.scheduler.IsRunning() {
		checks["scheduler"] = Check{Status: "unhealthy", Message: "session sweeper is not running"}
	}
	if _, err := content.Load(); err != nil {
		checks["content"] = Check{Status: "unhealthy", Message: err.Error()}
	}
	return checks
}

func overall(checks map[string]Check) string {
	for _, c := range checks {
		if c.Status != "healthy" {
			return "unhealthy"
		}
	}
	return "healthy"
}

// Health returns the overall service health
func (h *Handler) Health(c echo.Context) error {
	checks := h.checks()
	status := overall(checks)

	response := HealthResponse{
		Status:         status,
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
		Uptime:         time.Since(h.startAt).String(),
		Version:        version.Version,
		ActiveSessions: h.sessions.Len(),
		Checks:         checks,
	}

	statusCode := http.StatusOK
	if status == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}
	return c.JSON(statusCode, response)
}

// Healthz is the liveness probe.
func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// Ready reports whether the site can serve visitors.
func (h *Handler) Ready(c echo.Context) error {
	if overall(h.checks()) != "healthy" {
		return c.JSON(http.StatusServiceUnavailable, map[string]any{
			"status":  "not_ready",
			"message": "scheduler or content catalog unavailable",
		})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ready",
	})
}

// Debug returns runtime and scheduler details outside production.
func (h *Handler) Debug(c echo.Context) error {
	if h.cfg.Environment == "production" {
		return echo.NewHTTPError(http.StatusNotFound, "Not found")
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	return c.JSON(http.StatusOK, map[string]any{
		"environment": h.cfg.Environment,
		"debug":       h.cfg.Debug,
		"go_version":  runtime.Version(),
		"goroutines":  runtime.NumGoroutine(),
		"memory": map[string]any{
			"alloc_mb":       mem.Alloc / 1024 / 1024,
			"total_alloc_mb": mem.TotalAlloc / 1024 / 1024,
			"sys_mb":         mem.Sys / 1024 / 1024,
			"num_gc":         mem.NumGC,
		},
		"sessions": map[string]any{
			"active": h.sessions.Len(),
			"ttl":    h.sessions.TTL().String(),
		},
		"scheduler": map[string]any{
			"running": h.scheduler.IsRunning(),
			"tasks":   h.scheduler.GetTaskInfo(),
		},
		"host":  h.host.Last(),
		"build": version.Info(),
	})
}
