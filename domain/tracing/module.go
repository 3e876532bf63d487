// Package tracing installs the process TracerProvider and traces echo
// requests when an OTLP endpoint is configured.
package tracing

import (
	"context"
	"log/slog"
	"strings"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/fx"

	"github.com/tarush10000/Sooru-Demo/internal/config"
	"github.com/tarush10000/Sooru-Demo/internal/version"
	"github.com/tarush10000/Sooru-Demo/pkg/logger"
)

var Module = fx.Module("tracing",
	fx.Provide(NewTracerProvider),
	fx.Invoke(
		RegisterTracingLifecycle,
		RegisterEchoMiddleware,
	),
)

// Provider carries the SDK provider through fx. It is nil when tracing is
// off, so nothing needs flushing on shutdown.
type Provider struct {
	SDK *sdktrace.TracerProvider
}

// untracedPaths are probe and scrape endpoints hit every few seconds.
var untracedPaths = map[string]bool{
	"/health":  true,
	"/healthz": true,
	"/ready":   true,
	"/metrics": true,
}

// NewTracerProvider installs the global TracerProvider: OTLP over HTTP when
// an endpoint is set, a no-op otherwise.
func NewTracerProvider(cfg *config.Config, log *slog.Logger) (*Provider, error) {
	log = log.With(logger.Scope("tracing"))
	tc := cfg.Tracing

	if !tc.Enabled() {
		otel.SetTracerProvider(noop.NewTracerProvider())
		log.Info("tracing disabled")
		return &Provider{}, nil
	}

	ctx := context.Background()
	exp, err := newExporter(ctx, tc)
	if err != nil {
		return nil, err
	}

	sdk := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(newResource(ctx, cfg, log)),
		sdktrace.WithSampler(Sampler(tc.SamplingRate)),
	)
	otel.SetTracerProvider(sdk)

	log.Info("tracing enabled",
		slog.String("endpoint", tc.Endpoint),
		slog.String("service", tc.ServiceName),
		slog.Float64("sampling_rate", tc.SamplingRate))
	return &Provider{SDK: sdk}, nil
}

func newExporter(ctx context.Context, tc config.TracingConfig) (sdktrace.SpanExporter, error) {
	opts := []otlptracehttp.Option{otlptracehttp.WithEndpointURL(tc.Endpoint)}
	if tc.Insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	return otlptracehttp.New(ctx, opts...)
}

// newResource describes this process. Detection errors fall back to the
// bare service attributes.
func newResource(ctx context.Context, cfg *config.Config, log *slog.Logger) *resource.Resource {
	attrs := resource.WithAttributes(
		semconv.ServiceName(cfg.Tracing.ServiceName),
		semconv.ServiceVersion(version.Version),
		semconv.DeploymentEnvironment(cfg.Environment),
	)
	res, err := resource.New(ctx, resource.WithSchemaURL(semconv.SchemaURL), attrs, resource.WithFromEnv())
	if err != nil {
		log.Warn("resource detection failed", logger.Error(err))
		res, _ = resource.New(ctx, attrs)
	}
	return res
}

// Sampler maps a sampling rate to a sampler. Rates at or above 1 sample
// everything.
func Sampler(rate float64) sdktrace.Sampler {
	if rate >= 1.0 {
		return sdktrace.AlwaysSample()
	}
	return sdktrace.TraceIDRatioBased(rate)
}

// RegisterTracingLifecycle flushes pending spans on stop.
func RegisterTracingLifecycle(lc fx.Lifecycle, p *Provider, log *slog.Logger) {
	if p.SDK == nil {
		return
	}
	lc.Append(fx.StopHook(func(ctx context.Context) error {
		log.Info("flushing spans", logger.Scope("tracing"))
		return p.SDK.Shutdown(ctx)
	}))
}

// RegisterEchoMiddleware traces every request except probes and static assets.
func RegisterEchoMiddleware(e *echo.Echo, cfg *config.Config) {
	if !cfg.Tracing.Enabled() {
		return
	}
	e.Use(otelecho.Middleware(cfg.Tracing.ServiceName, otelecho.WithSkipper(SkipPath)))
}

// SkipPath reports whether a request should go untraced.
func SkipPath(c echo.Context) bool {
	p := c.Request().URL.Path
	return untracedPaths[p] || strings.HasPrefix(p, "/static/")
}
