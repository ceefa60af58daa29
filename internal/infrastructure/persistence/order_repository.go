package persistence

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/inventory"
	"github.com/pos/backend/internal/domain/trade"
	"github.com/pos/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

type orderTable = ScopedTable[trade.Order, models.OrderModel, *models.OrderModel]

// GormOrderRepository implements OrderRepository using GORM
type GormOrderRepository struct {
	*orderTable
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{
		orderTable: NewScopedTable[trade.Order, models.OrderModel](db, TableOptions{
			Resource:      "Order",
			Collection:    "orders",
			SortFields:    OrderSortFields,
			SearchColumns: []string{"notes"},
			Preload:       []string{"Items"},
			Purge: func(tx *gorm.DB, id uuid.UUID) error {
				return tx.Where("order_id = ?", id).Delete(&models.OrderItemModel{}).Error
			},
		}),
	}
}

// ReplaceItems deletes the order's item rows and inserts its current items
func (r *GormOrderRepository) ReplaceItems(ctx context.Context, order *trade.Order) error {
	return r.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItemModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete order items: %w", err)
		}
		items := models.OrderItemModelsFromDomain(order)
		if len(items) == 0 {
			return nil
		}
		if err := tx.Create(&items).Error; err != nil {
			return fmt.Errorf("failed to create order items: %w", err)
		}
		return nil
	})
}

// ActiveQuantities sums item quantities of the business's active orders per product
func (r *GormOrderRepository) ActiveQuantities(ctx context.Context, businessID uuid.UUID) (inventory.Quantities, error) {
	return sumActiveItems(ctx, r.DB(), "order_items", "orders", "order_id", businessID)
}

// Ensure GormOrderRepository implements OrderRepository
var _ trade.OrderRepository = (*GormOrderRepository)(nil)
