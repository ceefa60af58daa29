package telemetry

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func useSpanRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(provider)
	t.Cleanup(func() {
		otel.SetTracerProvider(previous)
		_ = provider.Shutdown(context.Background())
	})
	return recorder
}

func TestStartServiceSpan(t *testing.T) {
	recorder := useSpanRecorder(t)

	ctx, span := StartServiceSpan(context.Background(), "purchase", "create",
		attribute.String(SpanAttrBusinessID, "b-1"))
	assert.NotEmpty(t, GetTraceID(ctx))
	AddEvent(ctx, "stock_adjusted", attribute.Int(SpanAttrAdjusted, 2))

	var err error
	EndSpan(span, &err)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "purchase.create", spans[0].Name())
	assert.Equal(t, codes.Ok, spans[0].Status().Code)
	require.Len(t, spans[0].Events(), 1)
	assert.Equal(t, "stock_adjusted", spans[0].Events()[0].Name)
	assert.Contains(t, spans[0].Attributes(), attribute.String(SpanAttrBusinessID, "b-1"))
}

func TestEndSpan_RecordsError(t *testing.T) {
	recorder := useSpanRecorder(t)

	_, span := StartServiceSpan(context.Background(), "order", "remove")
	err := errors.New("product vanished")
	EndSpan(span, &err)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "product vanished", spans[0].Status().Description)
}

func TestGetTraceID_NoSpan(t *testing.T) {
	assert.Empty(t, GetTraceID(context.Background()))
}

func TestRecordError_NilSafe(t *testing.T) {
	assert.NotPanics(t, func() {
		RecordError(nil, errors.New("boom"))
	})
}
