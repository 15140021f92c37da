// Package telemetry implements the tracing port with OpenTelemetry.
package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/stay/internal/core/ports"
)

// InstrumentationName names the tracer of this application.
const InstrumentationName = "go.trai.ch/stay"

var _ ports.Tracer = (*OTelTracer)(nil)

// OTelTracer is a concrete implementation of ports.Tracer using OpenTelemetry.
type OTelTracer struct {
	tracer trace.Tracer
}

// NewOTelTracer creates a tracer from the given provider.
func NewOTelTracer(tp trace.TracerProvider) *OTelTracer {
	return &OTelTracer{
		tracer: tp.Tracer(InstrumentationName),
	}
}

// Start creates a new span.
func (t *OTelTracer) Start(ctx context.Context, name string, opts ...ports.SpanOption) (context.Context, ports.Span) {
	cfg := &ports.SpanConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	var startOpts []trace.SpanStartOption
	if cfg.Root {
		startOpts = append(startOpts, trace.WithNewRoot())
	}

	ctx, span := t.tracer.Start(ctx, name, startOpts...)
	return ctx, &OTelSpan{span: span}
}

// OTelSpan is a concrete implementation of ports.Span using OpenTelemetry.
type OTelSpan struct {
	span trace.Span
}

// End completes the span.
func (s *OTelSpan) End() {
	s.span.End()
}

// RecordError records an error for the span and marks it failed.
func (s *OTelSpan) RecordError(err error) {
	if err == nil {
		return
	}
	s.span.RecordError(err)
	s.span.SetStatus(codes.Error, err.Error())
}

// SetAttribute adds a key-value pair to the span.
func (s *OTelSpan) SetAttribute(key string, value any) {
	switch v := value.(type) {
	case string:
		s.span.SetAttributes(attribute.String(key, v))
	case int:
		s.span.SetAttributes(attribute.Int(key, v))
	case int64:
		s.span.SetAttributes(attribute.Int64(key, v))
	case uint64:
		s.span.SetAttributes(attribute.Int64(key, int64(v))) //nolint:gosec // counters stay far below MaxInt64
	case float64:
		s.span.SetAttributes(attribute.Float64(key, v))
	case bool:
		s.span.SetAttributes(attribute.Bool(key, v))
	case time.Duration:
		s.span.SetAttributes(attribute.Int64(key, v.Milliseconds()))
	case []string:
		s.span.SetAttributes(attribute.StringSlice(key, v))
	default:
		s.span.SetAttributes(attribute.String(key, fmt.Sprintf("%v", v)))
	}
}
