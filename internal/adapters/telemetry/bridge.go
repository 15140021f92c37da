package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/stay/internal/core/ports"
)

// Bridge implements sdktrace.SpanProcessor and reports failed spans to a
// Logger. Background work such as watcher events has no caller to return an
// error to; its failures surface here.
type Bridge struct {
	logger ports.Logger
}

// NewBridge returns a new Bridge.
func NewBridge(log ports.Logger) *Bridge {
	return &Bridge{logger: log}
}

// OnStart does nothing.
func (b *Bridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd logs spans that ended with an error status.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.logger == nil || !s.SpanContext().IsValid() {
		return
	}
	if s.Status().Code != codes.Error {
		return
	}

	desc := s.Status().Description
	if desc == "" {
		desc = "failed"
	}
	elapsed := s.EndTime().Sub(s.StartTime())
	b.logger.Warn(fmt.Sprintf("%s: %s (after %s)", s.Name(), desc, elapsed.Round(time.Millisecond)))
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(_ context.Context) error {
	return nil
}

// NewProvider returns a tracer provider that feeds the Bridge.
func NewProvider(log ports.Logger) *sdktrace.TracerProvider {
	return sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(NewBridge(log)),
	)
}
