package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.uber.org/zap"
)

func newTestMeter(t *testing.T) (metric.Meter, *sdkmetric.ManualReader) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })
	return provider.Meter("test"), reader
}

func collectMetrics(t *testing.T, reader *sdkmetric.ManualReader) map[string]metricdata.Metrics {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	out := make(map[string]metricdata.Metrics)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			out[m.Name] = m
		}
	}
	return out
}

func sumValue(t *testing.T, m metricdata.Metrics) int64 {
	t.Helper()
	sum, ok := m.Data.(metricdata.Sum[int64])
	require.True(t, ok, "metric %s is not an int64 sum", m.Name)
	var total int64
	for _, dp := range sum.DataPoints {
		total += dp.Value
	}
	return total
}

func histogramCount(t *testing.T, m metricdata.Metrics) uint64 {
	t.Helper()
	hist, ok := m.Data.(metricdata.Histogram[float64])
	require.True(t, ok, "metric %s is not a float64 histogram", m.Name)
	var count uint64
	for _, dp := range hist.DataPoints {
		count += dp.Count
	}
	return count
}

func TestNewMeterProvider_Disabled(t *testing.T) {
	mp, err := NewMeterProvider(context.Background(), MetricsConfig{Enabled: false}, zap.NewNop())
	require.NoError(t, err)

	assert.False(t, mp.IsEnabled())
	assert.NotNil(t, mp.Meter("noop"))
	assert.NoError(t, mp.ForceFlush(context.Background()))
	assert.NoError(t, mp.Shutdown(context.Background()))
}

func TestCounter(t *testing.T) {
	meter, reader := newTestMeter(t)

	c, err := NewCounter(meter, "test_total", "test counter", "{events}")
	require.NoError(t, err)

	ctx := context.Background()
	c.Inc(ctx)
	c.Add(ctx, 4, AttrDocumentType.String("purchase"))

	metrics := collectMetrics(t, reader)
	assert.Equal(t, int64(5), sumValue(t, metrics["test_total"]))
}

func TestHistogram(t *testing.T) {
	meter, reader := newTestMeter(t)

	h, err := NewHistogram(meter, HistogramOpts{
		Name:       "test_duration_seconds",
		Unit:       "s",
		Boundaries: HTTPDurationBuckets,
	})
	require.NoError(t, err)

	ctx := context.Background()
	h.Record(ctx, 0.02)
	h.RecordDuration(ctx, 300*time.Millisecond)

	metrics := collectMetrics(t, reader)
	m := metrics["test_duration_seconds"]
	assert.Equal(t, uint64(2), histogramCount(t, m))

	hist := m.Data.(metricdata.Histogram[float64])
	assert.Equal(t, HTTPDurationBuckets, hist.DataPoints[0].Bounds)
}

func TestGauge(t *testing.T) {
	meter, reader := newTestMeter(t)

	g, err := NewGauge(meter, "test_gauge", "test gauge", "{items}")
	require.NoError(t, err)

	ctx := context.Background()
	g.Record(ctx, 7)
	g.Record(ctx, 3)

	metrics := collectMetrics(t, reader)
	gauge, ok := metrics["test_gauge"].Data.(metricdata.Gauge[int64])
	require.True(t, ok)
	require.Len(t, gauge.DataPoints, 1)
	assert.Equal(t, int64(3), gauge.DataPoints[0].Value)
}

func TestBucketsAreSorted(t *testing.T) {
	for name, buckets := range map[string][]float64{
		"http":  HTTPDurationBuckets,
		"db":    DBDurationBuckets,
		"stock": StockUnitBuckets,
	} {
		t.Run(name, func(t *testing.T) {
			for i := 1; i < len(buckets); i++ {
				assert.Less(t, buckets[i-1], buckets[i])
			}
		})
	}
}
