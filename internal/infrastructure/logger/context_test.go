package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestFromContext_WithoutLogger(t *testing.T) {
	log := FromContext(context.Background())
	require.NotNil(t, log)
	assert.False(t, log.Core().Enabled(zap.ErrorLevel))
}

func TestContextIdentifiers(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	ctx := WithContext(context.Background(), zap.New(core))
	ctx = WithRequestID(ctx, "req-1")
	ctx = WithBusinessID(ctx, "biz-1")
	ctx = WithUserID(ctx, "user-1")

	assert.Equal(t, "req-1", GetRequestID(ctx))
	assert.Equal(t, "biz-1", GetBusinessID(ctx))
	assert.Equal(t, "user-1", GetUserID(ctx))

	L(ctx).Info("order created")
	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "req-1", fields["request_id"])
	assert.Equal(t, "biz-1", fields["business_id"])
	assert.Equal(t, "user-1", fields["user_id"])
	assert.NotContains(t, fields, "trace_id")
}

func TestGettersOnEmptyContext(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetRequestID(ctx))
	assert.Empty(t, GetBusinessID(ctx))
	assert.Empty(t, GetUserID(ctx))
}

func TestL_AddsTraceContext(t *testing.T) {
	tp := sdktrace.NewTracerProvider()
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	ctx, span := tp.Tracer("test").Start(context.Background(), "op")
	defer span.End()

	core, logs := observer.New(zap.DebugLevel)
	L(WithContext(ctx, zap.New(core))).Info("stock adjusted")

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, span.SpanContext().TraceID().String(), fields["trace_id"])
	assert.Equal(t, span.SpanContext().SpanID().String(), fields["span_id"])
}
