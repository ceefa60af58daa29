package telemetry

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormInventoryMetricsProvider implements InventoryMetricsProvider using GORM.
// It queries the products table directly for aggregated metrics.
type GormInventoryMetricsProvider struct {
	db *gorm.DB
}

// NewGormInventoryMetricsProvider creates a new GormInventoryMetricsProvider.
func NewGormInventoryMetricsProvider(db *gorm.DB) *GormInventoryMetricsProvider {
	return &GormInventoryMetricsProvider{db: db}
}

// GetLowStockCount returns the number of active products whose stock is at or below threshold.
func (p *GormInventoryMetricsProvider) GetLowStockCount(ctx context.Context, businessID uuid.UUID, threshold int) (int64, error) {
	var count int64
	err := p.db.WithContext(ctx).
		Table("products").
		Where("business_id = ? AND deleted_at IS NULL", businessID).
		Where("stock <= ?", threshold).
		Count(&count).Error

	return count, err
}

// GormBusinessProvider implements BusinessProvider using GORM.
type GormBusinessProvider struct {
	db *gorm.DB
}

// NewGormBusinessProvider creates a new GormBusinessProvider.
func NewGormBusinessProvider(db *gorm.DB) *GormBusinessProvider {
	return &GormBusinessProvider{db: db}
}

// GetActiveBusinessIDs returns the ids of all businesses outside the trash.
func (p *GormBusinessProvider) GetActiveBusinessIDs(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := p.db.WithContext(ctx).
		Table("businesses").
		Where("deleted_at IS NULL").
		Pluck("id", &ids).Error

	return ids, err
}
