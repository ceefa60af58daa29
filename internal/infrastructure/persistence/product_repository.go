package persistence

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/catalog"
	"github.com/pos/backend/internal/domain/shared"
	"github.com/pos/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

type productTable = ScopedTable[catalog.Product, models.ProductModel, *models.ProductModel]

// GormProductRepository implements ProductRepository using GORM
type GormProductRepository struct {
	*productTable
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{
		productTable: NewScopedTable[catalog.Product, models.ProductModel](db, TableOptions{
			Resource:      "Product",
			Collection:    "products",
			SortFields:    ProductSortFields,
			SearchColumns: []string{"name", "description"},
		}),
	}
}

// FindByIDs returns the business's products among ids in any state
func (r *GormProductRepository) FindByIDs(ctx context.Context, businessID uuid.UUID, ids []uuid.UUID) ([]catalog.Product, error) {
	if len(ids) == 0 {
		return []catalog.Product{}, nil
	}
	var rows []models.ProductModel
	if err := r.scoped(ctx, businessID).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to find products: %w", err)
	}
	products := make([]catalog.Product, len(rows))
	for i := range rows {
		products[i] = *rows[i].ToDomain()
	}
	return products, nil
}

// ExistsByName checks product name uniqueness within the business
func (r *GormProductRepository) ExistsByName(ctx context.Context, businessID uuid.UUID, name string, excludeID *uuid.UUID) (bool, error) {
	return r.Exists(ctx, businessID, "name", name, excludeID)
}

// AdjustStock applies stock = stock + delta as a single relative UPDATE.
// Trashed products are adjusted too, so reversals always land.
func (r *GormProductRepository) AdjustStock(ctx context.Context, businessID, productID uuid.UUID, delta int) error {
	result := r.DB().WithContext(ctx).
		Unscoped().
		Model(&models.ProductModel{}).
		Where("business_id = ? AND id = ?", businessID, productID).
		UpdateColumn("stock", gorm.Expr("stock + ?", delta))
	if result.Error != nil {
		return fmt.Errorf("failed to adjust stock: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.NotFound("Product")
	}
	return nil
}

// Ensure GormProductRepository implements ProductRepository
var _ catalog.ProductRepository = (*GormProductRepository)(nil)
