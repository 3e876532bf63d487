package estimate

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers the JSON API behind the per-client rate limiter.
func RegisterRoutes(e *echo.Echo, h *Handler, limiter *ClientRateLimiter) {
	api := e.Group("/api")
	api.Use(limiter.Middleware())

	api.GET("/options", h.Options)
	api.POST("/estimate", h.Estimate)
	api.GET("/share/:platform", h.Share)

	// Unmatched API paths answer in JSON instead of falling through to the site.
	api.Any("", h.NotFound)
	api.Any("/*", h.NotFound)
}
