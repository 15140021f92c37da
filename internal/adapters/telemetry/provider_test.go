package telemetry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/stay/internal/adapters/telemetry"
	"go.trai.ch/stay/internal/core/ports"
)

func setupRecorder(t *testing.T) (*tracetest.SpanRecorder, *telemetry.OTelTracer) {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return sr, telemetry.NewOTelTracer(tp)
}

func TestOTelTracer_Attributes(t *testing.T) {
	sr, tracer := setupRecorder(t)

	_, span := tracer.Start(context.Background(), "tracker.restore")
	span.SetAttribute("key", "a.md#1")
	span.SetAttribute("count", 3)
	span.SetAttribute("ts", int64(7))
	span.SetAttribute("gen", uint64(9))
	span.SetAttribute("scroll", 1.5)
	span.SetAttribute("loaded", true)
	span.SetAttribute("delay", 50*time.Millisecond)
	span.SetAttribute("keys", []string{"a", "b"})
	span.SetAttribute("other", struct{ X int }{1})
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "tracker.restore", spans[0].Name())
	assert.ElementsMatch(t, []attribute.KeyValue{
		attribute.String("key", "a.md#1"),
		attribute.Int("count", 3),
		attribute.Int64("ts", 7),
		attribute.Int64("gen", 9),
		attribute.Float64("scroll", 1.5),
		attribute.Bool("loaded", true),
		attribute.Int64("delay", 50),
		attribute.StringSlice("keys", []string{"a", "b"}),
		attribute.String("other", "{1}"),
	}, spans[0].Attributes())
}

func TestOTelTracer_RecordError(t *testing.T) {
	sr, tracer := setupRecorder(t)

	_, span := tracer.Start(context.Background(), "app.flush")
	span.RecordError(nil)
	span.RecordError(errors.New("disk full"))
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "disk full", spans[0].Status().Description)
	require.Len(t, spans[0].Events(), 1)
}

func TestOTelTracer_Root(t *testing.T) {
	sr, tracer := setupRecorder(t)

	ctx, parent := tracer.Start(context.Background(), "parent")
	_, child := tracer.Start(ctx, "child")
	_, root := tracer.Start(ctx, "root", ports.WithRoot())
	child.End()
	root.End()
	parent.End()

	spans := sr.Ended()
	require.Len(t, spans, 3)
	byName := make(map[string]sdktrace.ReadOnlySpan)
	for _, s := range spans {
		byName[s.Name()] = s
	}
	assert.Equal(t, byName["parent"].SpanContext().SpanID(), byName["child"].Parent().SpanID())
	assert.False(t, byName["root"].Parent().IsValid())
	assert.NotEqual(t, byName["parent"].SpanContext().TraceID(), byName["root"].SpanContext().TraceID())
}

func TestNoOpTracer(t *testing.T) {
	tracer := telemetry.NewNoOpTracer()
	ctx := context.Background()

	got, span := tracer.Start(ctx, "noop")
	span.SetAttribute("k", "v")
	span.RecordError(errors.New("ignored"))
	span.End()

	assert.Equal(t, ctx, got)
}
