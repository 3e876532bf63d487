package health

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tarush10000/Sooru-Demo/internal/config"
)

// RegisterRoutes registers probes, the debug view and the Prometheus endpoint.
func RegisterRoutes(e *echo.Echo, h *Handler, cfg *config.Config) {
	e.GET("/health", h.Health)
	e.GET("/healthz", h.Healthz)
	e.GET("/ready", h.Ready)
	e.GET("/debug", h.Debug)
	e.GET("/api/health", h.Health)

	if cfg.MetricsEnabled {
		e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	}
}
