package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/infrastructure/persistence/models"
	"github.com/pos/backend/tests/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewDBPlugin_NilMeter(t *testing.T) {
	_, err := NewDBPlugin(DBInstrumentationConfig{}, nil, nil)
	assert.ErrorIs(t, err, ErrMeterNil)
}

func TestDBPlugin_RecordsQueries(t *testing.T) {
	meter, reader := newTestMeter(t)
	db := testutil.NewSQLiteDB(t)

	plugin, err := NewDBPlugin(DBInstrumentationConfig{SlowQueryThreshold: time.Hour}, meter, nil)
	require.NoError(t, err)
	require.NoError(t, db.Use(plugin))

	var count int64
	require.NoError(t, db.WithContext(context.Background()).Model(&models.ProductModel{}).Count(&count).Error)

	metrics := collectMetrics(t, reader)
	assert.GreaterOrEqual(t, histogramCount(t, metrics["pos_db_query_duration_seconds"]), uint64(1))

	pool, ok := metrics["pos_db_pool_connections"].Data.(metricdata.Gauge[int64])
	require.True(t, ok)
	assert.Len(t, pool.DataPoints, 3)
}

func TestDBPlugin_SlowQueries(t *testing.T) {
	meter, reader := newTestMeter(t)
	db := testutil.NewSQLiteDB(t)

	core, logs := observer.New(zap.WarnLevel)
	plugin, err := NewDBPlugin(DBInstrumentationConfig{SlowQueryThreshold: time.Nanosecond}, meter, zap.New(core))
	require.NoError(t, err)
	require.NoError(t, db.Use(plugin))

	require.NoError(t, db.Exec("UPDATE products SET stock = stock + 1 WHERE id = ?", uuid.New()).Error)

	metrics := collectMetrics(t, reader)
	assert.Equal(t, int64(1), sumValue(t, metrics["pos_db_slow_query_total"]))
	require.Equal(t, 1, logs.FilterMessage("Slow query").Len())
	assert.Equal(t, "RAW", logs.FilterMessage("Slow query").All()[0].ContextMap()["operation"])
}

func TestDBPlugin_Tracing(t *testing.T) {
	recorder := useSpanRecorder(t)
	meter, _ := newTestMeter(t)
	db := testutil.NewSQLiteDB(t)

	plugin, err := NewDBPlugin(DBInstrumentationConfig{Tracing: true, DBSystem: "sqlite"}, meter, nil)
	require.NoError(t, err)
	require.NoError(t, db.Use(plugin))

	var count int64
	require.NoError(t, db.WithContext(context.Background()).Model(&models.ProductModel{}).Count(&count).Error)

	assert.NotEmpty(t, recorder.Ended())
}
