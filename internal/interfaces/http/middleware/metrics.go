package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pos/backend/internal/infrastructure/logger"
	"github.com/pos/backend/internal/infrastructure/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// HTTPMetricsConfig holds configuration for HTTP metrics middleware.
type HTTPMetricsConfig struct {
	// MeterProvider is the OpenTelemetry meter provider.
	MeterProvider *telemetry.MeterProvider
	// Enabled controls whether metrics collection is active.
	Enabled bool
}

// httpMetrics holds all HTTP-related metrics instruments.
type httpMetrics struct {
	requestTotal    *telemetry.Counter
	requestDuration *telemetry.Histogram
	requestSize     *telemetry.Histogram
	responseSize    *telemetry.Histogram
	activeRequests  metric.Int64UpDownCounter
}

var sizeBuckets = []float64{100, 500, 1000, 5000, 10000, 50000, 100000, 500000, 1000000}

// newHTTPMetrics creates all HTTP metrics instruments from a meter.
func newHTTPMetrics(meter metric.Meter) (*httpMetrics, error) {
	requestTotal, err := telemetry.NewCounter(
		meter,
		"http_server_request_total",
		"Total number of HTTP requests",
		"{request}",
	)
	if err != nil {
		return nil, err
	}

	requestDuration, err := telemetry.NewHistogram(meter, telemetry.HistogramOpts{
		Name:        "http_server_request_duration_seconds",
		Description: "HTTP request latency distribution in seconds",
		Unit:        "s",
		Boundaries:  telemetry.HTTPDurationBuckets,
	})
	if err != nil {
		return nil, err
	}

	requestSize, err := telemetry.NewHistogram(meter, telemetry.HistogramOpts{
		Name:        "http_server_request_size_bytes",
		Description: "HTTP request body size distribution in bytes",
		Unit:        "By",
		Boundaries:  sizeBuckets,
	})
	if err != nil {
		return nil, err
	}

	responseSize, err := telemetry.NewHistogram(meter, telemetry.HistogramOpts{
		Name:        "http_server_response_size_bytes",
		Description: "HTTP response body size distribution in bytes",
		Unit:        "By",
		Boundaries:  sizeBuckets,
	})
	if err != nil {
		return nil, err
	}

	activeRequests, err := meter.Int64UpDownCounter(
		"http_server_active_requests",
		metric.WithDescription("Number of currently active HTTP requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	return &httpMetrics{
		requestTotal:    requestTotal,
		requestDuration: requestDuration,
		requestSize:     requestSize,
		responseSize:    responseSize,
		activeRequests:  activeRequests,
	}, nil
}

// HTTPMetrics returns a Gin middleware that collects request count, latency,
// body sizes and in-flight requests. It is a no-op when metrics are disabled.
func HTTPMetrics(cfg HTTPMetricsConfig) gin.HandlerFunc {
	if !cfg.Enabled || cfg.MeterProvider == nil || !cfg.MeterProvider.IsEnabled() {
		return passThrough
	}
	return HTTPMetricsWithMeter(cfg.MeterProvider.Meter("http.server"), true)
}

// HTTPMetricsWithMeter returns HTTP metrics middleware using an existing meter.
func HTTPMetricsWithMeter(meter metric.Meter, enabled bool) gin.HandlerFunc {
	if !enabled {
		return passThrough
	}

	metrics, err := newHTTPMetrics(meter)
	if err != nil {
		return passThrough
	}

	return func(c *gin.Context) {
		ctx := c.Request.Context()
		start := time.Now()

		metrics.activeRequests.Add(ctx, 1)
		c.Next()
		metrics.activeRequests.Add(ctx, -1)

		recordHTTPMetrics(ctx, metrics, requestSample{
			method:       c.Request.Method,
			route:        routePattern(c),
			status:       c.Writer.Status(),
			businessID:   c.GetString(logger.GinBusinessIDKey),
			duration:     time.Since(start),
			requestSize:  c.Request.ContentLength,
			responseSize: c.Writer.Size(),
		})
	}
}

func passThrough(c *gin.Context) {
	c.Next()
}

type requestSample struct {
	method       string
	route        string
	status       int
	businessID   string
	duration     time.Duration
	requestSize  int64
	responseSize int
}

// recordHTTPMetrics records all HTTP metrics for a request.
func recordHTTPMetrics(ctx context.Context, metrics *httpMetrics, s requestSample) {
	requestAttrs := []attribute.KeyValue{
		telemetry.AttrHTTPMethod.String(s.method),
		telemetry.AttrHTTPRoute.String(s.route),
		telemetry.AttrHTTPStatusCode.Int(s.status),
		attribute.String("http.status_class", HTTPMetricsStatusGroup(s.status)),
	}
	if s.businessID != "" {
		requestAttrs = append(requestAttrs, telemetry.AttrBusinessID.String(s.businessID))
	}
	metrics.requestTotal.Inc(ctx, requestAttrs...)

	// Only method and route for lower cardinality
	baseAttrs := []attribute.KeyValue{
		telemetry.AttrHTTPMethod.String(s.method),
		telemetry.AttrHTTPRoute.String(s.route),
	}
	metrics.requestDuration.RecordDuration(ctx, s.duration, baseAttrs...)

	if s.requestSize > 0 {
		metrics.requestSize.Record(ctx, float64(s.requestSize), baseAttrs...)
	}
	if s.responseSize > 0 {
		metrics.responseSize.Record(ctx, float64(s.responseSize), baseAttrs...)
	}
}

// routePattern returns the matched route (e.g. "/api/v1/businesses/:business_id")
// rather than the raw path to keep label cardinality bounded.
func routePattern(c *gin.Context) string {
	if route := c.FullPath(); route != "" {
		return route
	}
	return "unknown"
}

// HTTPMetricsStatusGroup groups status codes by class (2xx, 4xx, 5xx).
func HTTPMetricsStatusGroup(statusCode int) string {
	switch {
	case statusCode >= 200 && statusCode < 300:
		return "2xx"
	case statusCode >= 300 && statusCode < 400:
		return "3xx"
	case statusCode >= 400 && statusCode < 500:
		return "4xx"
	case statusCode >= 500:
		return "5xx"
	default:
		return "other"
	}
}
