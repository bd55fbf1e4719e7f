// Package observability provides optional tracing and metrics for the SDK.
package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/hookrelay/hookrelay-go"

// Tracer provides OpenTelemetry tracing around callback execution.
type Tracer struct {
	tracer trace.Tracer
}

// NewTracer creates a tracer using the globally registered provider.
func NewTracer() *Tracer {
	return &Tracer{
		tracer: otel.Tracer(tracerName),
	}
}

// StartHandleSpan starts a span covering one delivery's callback invocation.
func (t *Tracer) StartHandleSpan(ctx context.Context, eventID, provider string, attempt int) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, "hookrelay.handle",
		trace.WithAttributes(
			attribute.String("hookrelay.event_id", eventID),
			attribute.String("hookrelay.provider", provider),
			attribute.Int("hookrelay.attempt", attempt),
		),
	)
}

// EndHandleSpan ends a handle span with outcome attributes.
func (t *Tracer) EndHandleSpan(span trace.Span, status string, durationMs int64, errMsg string) {
	span.SetAttributes(
		attribute.String("hookrelay.status", status),
		attribute.Int64("hookrelay.duration_ms", durationMs),
	)
	if errMsg != "" {
		span.SetAttributes(attribute.String("hookrelay.error", errMsg))
	}
	span.End()
}
