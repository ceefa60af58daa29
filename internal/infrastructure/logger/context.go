package logger

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type contextKey string

const (
	loggerKey     contextKey = "logger"
	requestIDKey  contextKey = "request_id"
	businessIDKey contextKey = "business_id"
	userIDKey     contextKey = "user_id"
)

// WithContext returns a new context with the logger attached
func WithContext(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext retrieves the logger from context, or a no-op logger
func FromContext(ctx context.Context) *zap.Logger {
	if logger, ok := ctx.Value(loggerKey).(*zap.Logger); ok {
		return logger
	}
	return zap.NewNop()
}

// WithRequestID stores the request id and attaches it to the context's logger
func WithRequestID(ctx context.Context, requestID string) context.Context {
	ctx = context.WithValue(ctx, requestIDKey, requestID)
	return WithContext(ctx, FromContext(ctx).With(zap.String("request_id", requestID)))
}

// WithBusinessID stores the business id and attaches it to the context's logger
func WithBusinessID(ctx context.Context, businessID string) context.Context {
	ctx = context.WithValue(ctx, businessIDKey, businessID)
	return WithContext(ctx, FromContext(ctx).With(zap.String("business_id", businessID)))
}

// WithUserID stores the user id and attaches it to the context's logger
func WithUserID(ctx context.Context, userID string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return WithContext(ctx, FromContext(ctx).With(zap.String("user_id", userID)))
}

// GetRequestID retrieves the request id from context
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// GetBusinessID retrieves the business id from context
func GetBusinessID(ctx context.Context) string {
	id, _ := ctx.Value(businessIDKey).(string)
	return id
}

// GetUserID retrieves the user id from context
func GetUserID(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)
	return id
}

// L returns the context's logger with trace_id and span_id of the active span.
//
//	logger.L(ctx).Info("purchase created", zap.String("purchase_id", id))
func L(ctx context.Context) *zap.Logger {
	return WithTraceContext(ctx, FromContext(ctx))
}

// WithTraceContext adds trace_id and span_id from the context's span.
// Without a valid span the logger is returned unchanged.
func WithTraceContext(ctx context.Context, logger *zap.Logger) *zap.Logger {
	spanCtx := trace.SpanContextFromContext(ctx)
	if !spanCtx.IsValid() {
		return logger
	}
	return logger.With(
		zap.String("trace_id", spanCtx.TraceID().String()),
		zap.String("span_id", spanCtx.SpanID().String()),
	)
}
