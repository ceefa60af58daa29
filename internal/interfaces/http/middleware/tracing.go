package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pos/backend/internal/infrastructure/logger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TracingConfig holds configuration for the tracing middleware.
type TracingConfig struct {
	// ServiceName is the name of the service for trace identification.
	ServiceName string
	// Enabled controls whether tracing is active.
	Enabled bool
	// SkipPaths are not traced, typically health probes.
	SkipPaths []string
}

// DefaultTracingConfig returns default tracing configuration.
func DefaultTracingConfig() TracingConfig {
	return TracingConfig{
		ServiceName: "pos-backend",
		Enabled:     true,
		SkipPaths:   []string{"/health"},
	}
}

// Tracing returns OpenTelemetry tracing middleware with default configuration.
func Tracing() gin.HandlerFunc {
	return TracingWithConfig(DefaultTracingConfig())
}

// TracingWithConfig starts a server span per request through otelgin. The span
// name is the route pattern, e.g. "GET /api/v1/businesses/:business_id/products".
func TracingWithConfig(cfg TracingConfig) gin.HandlerFunc {
	if !cfg.Enabled {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	skip := make(map[string]struct{}, len(cfg.SkipPaths))
	for _, p := range cfg.SkipPaths {
		skip[p] = struct{}{}
	}

	return otelgin.Middleware(cfg.ServiceName,
		otelgin.WithFilter(func(r *http.Request) bool {
			_, skipped := skip[r.URL.Path]
			return !skipped
		}),
	)
}

// TracingAttributeInjector annotates the request span once the rest of the
// chain has run, so the user and business resolved by authentication are
// known. It must be registered after Tracing.
func TracingAttributeInjector() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		span := trace.SpanFromContext(c.Request.Context())
		if !span.IsRecording() {
			return
		}
		enrichSpanWithAttributes(c, span)
		markSpanStatus(span, c.Writer.Status())
	}
}

// enrichSpanWithAttributes adds the request, user and business ids known to the gin context
func enrichSpanWithAttributes(c *gin.Context, span trace.Span) {
	if requestID := c.GetString(logger.GinRequestIDKey); requestID != "" {
		span.SetAttributes(attribute.String("request_id", requestID))
	}
	if userID := c.GetString(logger.GinUserIDKey); userID != "" {
		span.SetAttributes(attribute.String("user_id", userID))
	}
	if businessID := c.GetString(logger.GinBusinessIDKey); businessID != "" {
		span.SetAttributes(attribute.String("business_id", businessID))
	}
}

// markSpanStatus flags server errors on the span; client errors only carry the status code
func markSpanStatus(span trace.Span, status int) {
	if status < http.StatusBadRequest {
		return
	}
	span.SetAttributes(attribute.Int("http.status_code", status))
	if status >= http.StatusInternalServerError {
		span.SetStatus(codes.Error, http.StatusText(status))
	}
}
