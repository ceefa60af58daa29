package telemetry

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// BusinessMetrics provides business metrics for the POS system.
// It tracks purchase and order activity, stock movement and low stock products.
type BusinessMetrics struct {
	meter  metric.Meter
	logger *zap.Logger

	// Counter metrics (monotonically increasing)
	documentCreatedTotal *Counter
	documentAmountTotal  *Counter
	stockAdjustmentTotal *Counter

	// Distribution of absolute stock deltas
	stockAdjustmentUnits *Histogram

	// Gauge metrics (point-in-time values)
	lowStockCount *Gauge

	// Periodic collector
	stopChan    chan struct{}
	stopOnce    sync.Once
	collectOnce sync.Once

	inventoryProvider InventoryMetricsProvider
}

// InventoryMetricsProvider provides inventory data for periodic metrics collection.
// This interface allows the telemetry layer to query stock without
// depending on the catalog domain directly.
type InventoryMetricsProvider interface {
	// GetLowStockCount returns the number of active products at or below threshold
	GetLowStockCount(ctx context.Context, businessID uuid.UUID, threshold int) (int64, error)
}

// BusinessMetricsConfig holds configuration for business metrics.
type BusinessMetricsConfig struct {
	Meter             metric.Meter
	Logger            *zap.Logger
	CollectInterval   time.Duration // Default: 5 minutes
	LowStockThreshold int           // Default: 5
	InventoryProvider InventoryMetricsProvider
}

// NewBusinessMetrics creates a new BusinessMetrics instance.
func NewBusinessMetrics(cfg BusinessMetricsConfig) (*BusinessMetrics, error) {
	if cfg.Meter == nil {
		return nil, ErrMeterNil
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	bm := &BusinessMetrics{
		meter:             cfg.Meter,
		logger:            logger,
		stopChan:          make(chan struct{}),
		inventoryProvider: cfg.InventoryProvider,
	}

	var err error

	bm.documentCreatedTotal, err = NewCounter(
		cfg.Meter,
		"pos_document_created_total",
		"Total number of purchases and orders created",
		"{documents}",
	)
	if err != nil {
		return nil, err
	}

	bm.documentAmountTotal, err = NewCounter(
		cfg.Meter,
		"pos_document_amount_total",
		"Total purchase cost and order price in cents",
		"{cents}",
	)
	if err != nil {
		return nil, err
	}

	bm.stockAdjustmentTotal, err = NewCounter(
		cfg.Meter,
		"pos_stock_adjustment_total",
		"Total number of relative stock updates applied",
		"{adjustments}",
	)
	if err != nil {
		return nil, err
	}

	bm.stockAdjustmentUnits, err = NewHistogram(cfg.Meter, HistogramOpts{
		Name:        "pos_stock_adjustment_units",
		Description: "Absolute size of stock adjustments",
		Unit:        "{units}",
		Boundaries:  StockUnitBuckets,
	})
	if err != nil {
		return nil, err
	}

	bm.lowStockCount, err = NewGauge(
		cfg.Meter,
		"pos_inventory_low_stock_count",
		"Number of active products at or below the low stock threshold",
		"{products}",
	)
	if err != nil {
		return nil, err
	}

	return bm, nil
}

// =============================================================================
// Document Metrics
// =============================================================================

// DocumentType labels purchases and orders.
type DocumentType string

const (
	DocumentTypePurchase DocumentType = "purchase"
	DocumentTypeOrder    DocumentType = "order"
)

// RecordDocumentCreated records a purchase or order creation.
func (bm *BusinessMetrics) RecordDocumentCreated(ctx context.Context, businessID uuid.UUID, docType DocumentType) {
	bm.documentCreatedTotal.Inc(ctx,
		AttrBusinessID.String(businessID.String()),
		AttrDocumentType.String(string(docType)),
	)
}

// RecordDocumentAmount records a document total in cents.
func (bm *BusinessMetrics) RecordDocumentAmount(ctx context.Context, businessID uuid.UUID, docType DocumentType, amountCents int64) {
	bm.documentAmountTotal.Add(ctx, amountCents,
		AttrBusinessID.String(businessID.String()),
		AttrDocumentType.String(string(docType)),
	)
}

// RecordDocumentWithAmount records both the document count and its amount.
func (bm *BusinessMetrics) RecordDocumentWithAmount(ctx context.Context, businessID uuid.UUID, docType DocumentType, amount decimal.Decimal) {
	bm.RecordDocumentCreated(ctx, businessID, docType)
	bm.RecordDocumentAmount(ctx, businessID, docType, amount.Mul(decimal.NewFromInt(100)).IntPart())
}

// =============================================================================
// Stock Metrics
// =============================================================================

// RecordStockAdjustment records one applied stock delta.
// reason is the lifecycle transition that caused it, e.g. "create" or "trash".
func (bm *BusinessMetrics) RecordStockAdjustment(ctx context.Context, businessID uuid.UUID, docType DocumentType, reason string, delta int) {
	attrs := []attribute.KeyValue{
		AttrBusinessID.String(businessID.String()),
		AttrDocumentType.String(string(docType)),
		AttrStockReason.String(reason),
	}
	bm.stockAdjustmentTotal.Inc(ctx, attrs...)
	if delta < 0 {
		delta = -delta
	}
	bm.stockAdjustmentUnits.Record(ctx, float64(delta), attrs...)
}

// RecordLowStockCount records the number of products at or below the threshold.
func (bm *BusinessMetrics) RecordLowStockCount(ctx context.Context, businessID uuid.UUID, count int64) {
	bm.lowStockCount.Record(ctx, count,
		AttrBusinessID.String(businessID.String()),
	)
}

// =============================================================================
// Periodic Collection
// =============================================================================

// BusinessProvider provides business IDs for periodic metrics collection.
type BusinessProvider interface {
	GetActiveBusinessIDs(ctx context.Context) ([]uuid.UUID, error)
}

// StartPeriodicCollection starts periodic collection of gauge metrics.
// This is non-blocking - use Stop() to stop collection.
func (bm *BusinessMetrics) StartPeriodicCollection(ctx context.Context, provider BusinessProvider, interval time.Duration, threshold int) {
	bm.collectOnce.Do(func() {
		if interval <= 0 {
			interval = 5 * time.Minute
		}
		if threshold <= 0 {
			threshold = 5
		}

		go bm.runPeriodicCollection(ctx, provider, interval, threshold)
	})
}

func (bm *BusinessMetrics) runPeriodicCollection(ctx context.Context, provider BusinessProvider, interval time.Duration, threshold int) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	bm.collectInventoryMetrics(ctx, provider, threshold)

	for {
		select {
		case <-bm.stopChan:
			bm.logger.Info("Stopping periodic business metrics collection")
			return
		case <-ctx.Done():
			bm.logger.Info("Context cancelled, stopping periodic business metrics collection")
			return
		case <-ticker.C:
			bm.collectInventoryMetrics(ctx, provider, threshold)
		}
	}
}

func (bm *BusinessMetrics) collectInventoryMetrics(ctx context.Context, provider BusinessProvider, threshold int) {
	if bm.inventoryProvider == nil {
		bm.logger.Debug("No inventory provider configured, skipping inventory metrics collection")
		return
	}

	businessIDs, err := provider.GetActiveBusinessIDs(ctx)
	if err != nil {
		bm.logger.Error("Failed to get business IDs for metrics collection", zap.Error(err))
		return
	}

	for _, businessID := range businessIDs {
		count, err := bm.inventoryProvider.GetLowStockCount(ctx, businessID, threshold)
		if err != nil {
			bm.logger.Warn("Failed to get low stock count for business",
				zap.String("business_id", businessID.String()),
				zap.Error(err),
			)
			continue
		}
		bm.RecordLowStockCount(ctx, businessID, count)
	}
}

// Stop stops the periodic collection.
func (bm *BusinessMetrics) Stop() {
	bm.stopOnce.Do(func() {
		close(bm.stopChan)
	})
}

// =============================================================================
// Error Types
// =============================================================================

// ErrMeterNil is returned when meter is nil.
var ErrMeterNil = &MetricsError{Op: "NewBusinessMetrics", Err: "meter cannot be nil"}

// MetricsError represents a metrics-related error.
type MetricsError struct {
	Op  string
	Err string
}

func (e *MetricsError) Error() string {
	return e.Op + ": " + e.Err
}
