package telemetry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const queryStartKey = "pos:query_start"

// DBInstrumentationConfig configures the GORM instrumentation plugin.
type DBInstrumentationConfig struct {
	// Tracing registers otelgorm so every statement gets a client span
	Tracing bool
	// LogFullSQL keeps bound variables in span statements; never in production
	LogFullSQL         bool
	SlowQueryThreshold time.Duration
	DBSystem           string
}

// DBPlugin is a GORM plugin that traces statements, records their duration
// and exposes connection pool statistics.
type DBPlugin struct {
	config        DBInstrumentationConfig
	meter         metric.Meter
	logger        *zap.Logger
	queryDuration *Histogram
	slowQueries   *Counter
}

// NewDBPlugin creates the plugin. Register it with db.Use.
func NewDBPlugin(cfg DBInstrumentationConfig, meter metric.Meter, logger *zap.Logger) (*DBPlugin, error) {
	if meter == nil {
		return nil, ErrMeterNil
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.SlowQueryThreshold == 0 {
		cfg.SlowQueryThreshold = 200 * time.Millisecond
	}
	if cfg.DBSystem == "" {
		cfg.DBSystem = "postgresql"
	}

	queryDuration, err := NewHistogram(meter, HistogramOpts{
		Name:        "pos_db_query_duration_seconds",
		Description: "Database statement latency",
		Unit:        "s",
		Boundaries:  DBDurationBuckets,
	})
	if err != nil {
		return nil, err
	}
	slowQueries, err := NewCounter(meter, "pos_db_slow_query_total", "Statements slower than the slow query threshold", "{query}")
	if err != nil {
		return nil, err
	}

	return &DBPlugin{
		config:        cfg,
		meter:         meter,
		logger:        logger,
		queryDuration: queryDuration,
		slowQueries:   slowQueries,
	}, nil
}

// Name implements gorm.Plugin.
func (p *DBPlugin) Name() string {
	return "pos:db_instrumentation"
}

// Initialize implements gorm.Plugin.
func (p *DBPlugin) Initialize(db *gorm.DB) error {
	if p.config.Tracing {
		opts := []otelgorm.Option{otelgorm.WithDBName(p.config.DBSystem)}
		if !p.config.LogFullSQL {
			opts = append(opts, otelgorm.WithoutQueryVariables())
		}
		if err := db.Use(otelgorm.NewPlugin(opts...)); err != nil {
			return fmt.Errorf("failed to register otelgorm: %w", err)
		}
	}
	if err := p.registerTiming(db); err != nil {
		return fmt.Errorf("failed to register query timing: %w", err)
	}
	if err := p.registerPoolStats(db); err != nil {
		return fmt.Errorf("failed to register pool statistics: %w", err)
	}

	p.logger.Info("Database instrumentation enabled",
		zap.Bool("tracing", p.config.Tracing),
		zap.Duration("slow_query_threshold", p.config.SlowQueryThreshold),
	)
	return nil
}

func (p *DBPlugin) registerTiming(db *gorm.DB) error {
	cb := db.Callback()
	return errors.Join(
		cb.Create().Before("gorm:create").Register("pos:before_create", p.before),
		cb.Create().After("gorm:create").Register("pos:after_create", p.after("INSERT")),
		cb.Query().Before("gorm:query").Register("pos:before_query", p.before),
		cb.Query().After("gorm:query").Register("pos:after_query", p.after("SELECT")),
		cb.Update().Before("gorm:update").Register("pos:before_update", p.before),
		cb.Update().After("gorm:update").Register("pos:after_update", p.after("UPDATE")),
		cb.Delete().Before("gorm:delete").Register("pos:before_delete", p.before),
		cb.Delete().After("gorm:delete").Register("pos:after_delete", p.after("DELETE")),
		cb.Row().Before("gorm:row").Register("pos:before_row", p.before),
		cb.Row().After("gorm:row").Register("pos:after_row", p.after("SELECT")),
		cb.Raw().Before("gorm:raw").Register("pos:before_raw", p.before),
		cb.Raw().After("gorm:raw").Register("pos:after_raw", p.after("RAW")),
	)
}

func (p *DBPlugin) before(db *gorm.DB) {
	db.InstanceSet(queryStartKey, time.Now())
}

func (p *DBPlugin) after(operation string) func(*gorm.DB) {
	return func(db *gorm.DB) {
		v, ok := db.InstanceGet(queryStartKey)
		if !ok {
			return
		}
		start, ok := v.(time.Time)
		if !ok {
			return
		}
		elapsed := time.Since(start)

		ctx := db.Statement.Context
		if ctx == nil {
			ctx = context.Background()
		}
		attrs := []attribute.KeyValue{
			AttrDBOperation.String(operation),
			AttrDBTable.String(db.Statement.Table),
		}
		p.queryDuration.RecordDuration(ctx, elapsed, attrs...)

		if elapsed < p.config.SlowQueryThreshold {
			return
		}
		p.slowQueries.Inc(ctx, attrs...)
		if span := trace.SpanFromContext(ctx); span.IsRecording() {
			span.AddEvent("slow_query", trace.WithAttributes(
				attribute.Int64("duration_ms", elapsed.Milliseconds()),
				attribute.Int64("threshold_ms", p.config.SlowQueryThreshold.Milliseconds()),
			))
		}
		p.logger.Warn("Slow query",
			zap.String("operation", operation),
			zap.String("table", db.Statement.Table),
			zap.Duration("elapsed", elapsed),
		)
	}
}

// registerPoolStats observes sql.DB pool statistics at collection time
func (p *DBPlugin) registerPoolStats(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	connections, err := p.meter.Int64ObservableGauge("pos_db_pool_connections",
		metric.WithDescription("Connections in the pool by state"),
		metric.WithUnit("{connection}"),
	)
	if err != nil {
		return err
	}
	_, err = p.meter.RegisterCallback(func(_ context.Context, o metric.Observer) error {
		stats := sqlDB.Stats()
		o.ObserveInt64(connections, int64(stats.InUse), metric.WithAttributes(AttrDBState.String("in_use")))
		o.ObserveInt64(connections, int64(stats.Idle), metric.WithAttributes(AttrDBState.String("idle")))
		o.ObserveInt64(connections, int64(stats.MaxOpenConnections), metric.WithAttributes(AttrDBState.String("max")))
		return nil
	}, connections)
	return err
}

var _ gorm.Plugin = (*DBPlugin)(nil)
