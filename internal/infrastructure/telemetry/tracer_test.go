package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
)

func TestNewTracerProvider_Disabled(t *testing.T) {
	tp, err := NewTracerProvider(context.Background(), Config{Enabled: false, ServiceName: "pos-backend"}, zap.NewNop())
	require.NoError(t, err)

	assert.False(t, tp.IsEnabled())
	assert.NotNil(t, tp.Tracer("noop"))
	assert.NoError(t, tp.ForceFlush(context.Background()))
	assert.NoError(t, tp.Shutdown(context.Background()))
}

func TestSampler(t *testing.T) {
	tests := []struct {
		ratio    float64
		contains string
	}{
		{1.0, "AlwaysOnSampler"},
		{1.5, "AlwaysOnSampler"},
		{0, "AlwaysOffSampler"},
		{0.25, "TraceIDRatioBased{0.25}"},
	}
	for _, tt := range tests {
		s := sampler(tt.ratio)
		assert.Contains(t, s.Description(), "ParentBased")
		assert.Contains(t, s.Description(), tt.contains)
	}
	assert.Implements(t, (*sdktrace.Sampler)(nil), sampler(0.5))
}

func TestServiceResource(t *testing.T) {
	res, err := serviceResource("pos-backend", "")
	require.NoError(t, err)

	values := map[string]string{}
	for _, attr := range res.Attributes() {
		values[string(attr.Key)] = attr.Value.Emit()
	}
	assert.Equal(t, "pos-backend", values["service.name"])
	assert.Equal(t, "dev", values["service.version"])
}
