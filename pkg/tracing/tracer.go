// Package tracing provides the span helper used by the estimate and site
// handlers. Without a registered TracerProvider the global no-op provider is
// used and every call is inert.
package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "sooru"

// Start creates a span as a child of the span in ctx. The caller must end it.
//
//	ctx, span := tracing.Start(ctx, "estimate.calculate",
//	    attribute.String("sooru.plan.style", d.Style),
//	)
//	defer span.End()
func Start(ctx context.Context, spanName string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, spanName, trace.WithAttributes(attrs...))
}
