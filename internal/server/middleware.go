package server

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/tarush10000/Sooru-Demo/pkg/logger"
)

// BodyLimit caps form and JSON payloads. Plan details are four short strings.
const BodyLimit = "16K"

// quietPaths are polled by probes and scrapers and stay out of the access log.
var quietPaths = map[string]bool{
	"/health":  true,
	"/healthz": true,
	"/ready":   true,
	"/metrics": true,
}

func skipRequestLog(c echo.Context) bool {
	path := c.Request().URL.Path
	return quietPaths[path] || strings.HasPrefix(path, "/static/")
}

// clientIP decides how c.RealIP resolves the caller, which keys the API rate
// limiter. Forwarded headers are honoured only from private-network proxies.
func clientIP(trustProxy bool) echo.IPExtractor {
	if trustProxy {
		return echo.ExtractIPFromXFFHeader()
	}
	return echo.ExtractIPDirect()
}

// apiCORS opens the JSON API to any origin. Site pages are same-origin only.
func apiCORS() echo.MiddlewareFunc {
	return middleware.CORSWithConfig(middleware.CORSConfig{
		Skipper: func(c echo.Context) bool {
			return !strings.HasPrefix(c.Request().URL.Path, "/api/")
		},
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	})
}

// requestLogger writes one line per request; 5xx and handler errors at error
// level, 4xx at warn.
func requestLogger(log *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		Skipper:      skipRequestLog,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogError:     true,
		LogMethod:    true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("request_id", v.RequestID),
				slog.String("remote_ip", v.RemoteIP),
			}
			ctx := c.Request().Context()
			switch {
			case v.Error != nil || v.Status >= http.StatusInternalServerError:
				if v.Error != nil {
					attrs = append(attrs, logger.Error(v.Error))
				}
				log.LogAttrs(ctx, slog.LevelError, "request failed", attrs...)
			case v.Status >= http.StatusBadRequest:
				log.LogAttrs(ctx, slog.LevelWarn, "request rejected", attrs...)
			default:
				log.LogAttrs(ctx, slog.LevelInfo, "request", attrs...)
			}
			return nil
		},
	})
}

func recoverer(log *slog.Logger) echo.MiddlewareFunc {
	return middleware.RecoverWithConfig(middleware.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			log.ErrorContext(c.Request().Context(), "panic recovered",
				logger.Error(err),
				slog.String("uri", c.Request().RequestURI),
				slog.String("stack", string(stack)))
			return err
		},
	})
}
