package telemetry

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type memoryLogExporter struct {
	mu      sync.Mutex
	records []sdklog.Record
}

func (e *memoryLogExporter) Export(_ context.Context, records []sdklog.Record) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, r := range records {
		e.records = append(e.records, r.Clone())
	}
	return nil
}

func (e *memoryLogExporter) Shutdown(context.Context) error   { return nil }
func (e *memoryLogExporter) ForceFlush(context.Context) error { return nil }

func (e *memoryLogExporter) bodies() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]string, len(e.records))
	for i, r := range e.records {
		out[i] = r.Body().AsString()
	}
	return out
}

func TestLoggerProvider_Disabled(t *testing.T) {
	lp, err := NewLoggerProvider(context.Background(), LogsConfig{Enabled: false}, zap.NewNop())
	require.NoError(t, err)

	base := zap.NewNop()
	assert.False(t, lp.IsEnabled())
	assert.Same(t, base, lp.Bridge(base, zapcore.InfoLevel))
	assert.NoError(t, lp.ForceFlush(context.Background()))
	assert.NoError(t, lp.Shutdown(context.Background()))
}

func TestLoggerProvider_Bridge(t *testing.T) {
	exporter := &memoryLogExporter{}
	lp := &LoggerProvider{
		provider: sdklog.NewLoggerProvider(sdklog.WithProcessor(sdklog.NewSimpleProcessor(exporter))),
		logger:   zap.NewNop(),
		config:   LogsConfig{Enabled: true, ServiceName: "pos-backend"},
	}
	defer func() { _ = lp.Shutdown(context.Background()) }()

	core, local := observer.New(zap.DebugLevel)
	logger := lp.Bridge(zap.New(core), zapcore.InfoLevel)

	logger.Debug("cache warmed")
	logger.Info("purchase created")
	logger.With(zap.String("business_id", "b-1")).Warn("stock negative")

	assert.Equal(t, 3, local.Len(), "the base core keeps every entry")
	assert.Equal(t, []string{"purchase created", "stock negative"}, exporter.bodies())
}
