package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarush10000/Sooru-Demo/domain/estimate"
	"github.com/tarush10000/Sooru-Demo/internal/config"
	"github.com/tarush10000/Sooru-Demo/pkg/apperror"
	"github.com/tarush10000/Sooru-Demo/pkg/logger"
)

func newTestEcho(t *testing.T, logBuf *bytes.Buffer) *echo.Echo {
	t.Helper()
	log := logger.Discard()
	if logBuf != nil {
		log = logger.New(logBuf, "debug", true)
	}
	return NewEcho(EchoParams{Config: &config.Config{}, Log: log})
}

func TestErrorHandlerRendersAppErrors(t *testing.T) {
	e := newTestEcho(t, nil)
	e.GET("/api/boom", func(c echo.Context) error {
		return apperror.ErrRateLimited
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/boom", nil))

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	var body map[string]map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "rate_limited", body["error"]["code"])
}

func TestRequestIDAndTrailingSlash(t *testing.T) {
	e := newTestEcho(t, nil)
	e.GET("/api/options", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/options/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestRecoverTurnsPanicsInto500(t *testing.T) {
	e := newTestEcho(t, nil)
	e.GET("/panic", func(c echo.Context) error {
		panic("kaboom")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRequestLogSkipsProbes(t *testing.T) {
	var buf bytes.Buffer
	e := newTestEcho(t, &buf)
	e.GET("/healthz", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/page", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.NotContains(t, buf.String(), "/healthz")

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/page", nil))
	assert.Contains(t, buf.String(), `"uri":"/page"`)
	assert.Contains(t, buf.String(), `"scope":"http"`)
}

func TestBodyLimit(t *testing.T) {
	e := newTestEcho(t, nil)
	e.POST("/api/estimate", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	big := strings.Repeat("x", 32*1024)
	req := httptest.NewRequest(http.MethodPost, "/api/estimate", strings.NewReader(big))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestCORSOnlyOnAPI(t *testing.T) {
	e := newTestEcho(t, nil)
	e.GET("/api/options", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/page", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/api/options", nil)
	req.Header.Set(echo.HeaderOrigin, "https://example.test")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))

	req = httptest.NewRequest(http.MethodGet, "/page", nil)
	req.Header.Set(echo.HeaderOrigin, "https://example.test")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}

func TestSecurityHeaders(t *testing.T) {
	e := newTestEcho(t, nil)
	e.GET("/page", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/page", nil))
	assert.Equal(t, "nosniff", rec.Header().Get(echo.HeaderXContentTypeOptions))
	assert.Equal(t, "DENY", rec.Header().Get(echo.HeaderXFrameOptions))
}

func TestRequestLogLevels(t *testing.T) {
	var buf bytes.Buffer
	e := newTestEcho(t, &buf)
	e.GET("/api/bad", func(c echo.Context) error { return apperror.ErrBadRequest })

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/bad", nil))
	assert.Contains(t, buf.String(), `"level":"ERROR"`)

	buf.Reset()
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Contains(t, buf.String(), `"msg":"request failed"`)
}

func TestClientIPIgnoresForwardedHeaders(t *testing.T) {
	e := newTestEcho(t, nil)
	e.GET("/api/ip", func(c echo.Context) error { return c.String(http.StatusOK, c.RealIP()) })

	req := httptest.NewRequest(http.MethodGet, "/api/ip", nil)
	req.RemoteAddr = "203.0.113.7:5555"
	req.Header.Set(echo.HeaderXForwardedFor, "198.51.100.1")
	req.Header.Set(echo.HeaderXRealIP, "198.51.100.2")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, "203.0.113.7", rec.Body.String())
}

func TestClientIPBehindTrustedProxy(t *testing.T) {
	e := NewEcho(EchoParams{Config: &config.Config{TrustProxy: true}, Log: logger.Discard()})
	e.GET("/api/ip", func(c echo.Context) error { return c.String(http.StatusOK, c.RealIP()) })

	req := httptest.NewRequest(http.MethodGet, "/api/ip", nil)
	req.RemoteAddr = "10.0.0.5:5555"
	req.Header.Set(echo.HeaderXForwardedFor, "198.51.100.1")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, "198.51.100.1", rec.Body.String())
}

func TestRateLimitCannotBeDodgedWithForwardedFor(t *testing.T) {
	e := newTestEcho(t, nil)
	limiter := estimate.NewClientRateLimiter(60, 2)
	api := e.Group("/api", limiter.Middleware())
	api.GET("/options", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	allowed := 0
	for i := 0; i < 20; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/options", nil)
		req.RemoteAddr = "203.0.113.7:5555"
		req.Header.Set(echo.HeaderXForwardedFor, fmt.Sprintf("198.51.100.%d", i+1))
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		if rec.Code == http.StatusOK {
			allowed++
		}
	}
	assert.Equal(t, 2, allowed)
	assert.Equal(t, 1, limiter.Len())
}
