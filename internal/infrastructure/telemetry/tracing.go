package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TracerName is the instrumentation name of application spans
const TracerName = "pos-backend"

// Span attribute keys used by application services
const (
	SpanAttrBusinessID = "business_id"
	SpanAttrDocumentID = "document_id"
	SpanAttrItemCount  = "item_count"
	SpanAttrAdjusted   = "adjusted_products"
	SpanAttrResult     = "result"
)

// StartServiceSpan starts an internal span named {service}.{method}, e.g. "purchase.create".
// The caller ends the span.
func StartServiceSpan(ctx context.Context, service, method string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.GetTracerProvider().Tracer(TracerName).Start(ctx,
		fmt.Sprintf("%s.%s", service, method),
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attrs...),
	)
}

// EndSpan records err on the span, if any, and ends it.
// It is meant to be deferred with a pointer to the named error result.
func EndSpan(span trace.Span, err *error) {
	if err != nil && *err != nil {
		RecordError(span, *err)
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// RecordError records an error on the span and marks the span failed.
func RecordError(span trace.Span, err error) {
	if span == nil || err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// AddEvent adds a time-stamped event to the span in ctx
func AddEvent(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	trace.SpanFromContext(ctx).AddEvent(name, trace.WithAttributes(attrs...))
}

// GetTraceID returns the trace id of the span in ctx, or "" when there is none.
func GetTraceID(ctx context.Context) string {
	traceID := trace.SpanFromContext(ctx).SpanContext().TraceID()
	if !traceID.IsValid() {
		return ""
	}
	return traceID.String()
}
