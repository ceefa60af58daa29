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

type purchaseTable = ScopedTable[trade.Purchase, models.PurchaseModel, *models.PurchaseModel]

// GormPurchaseRepository implements PurchaseRepository using GORM
type GormPurchaseRepository struct {
	*purchaseTable
}

// NewGormPurchaseRepository creates a new GormPurchaseRepository
func NewGormPurchaseRepository(db *gorm.DB) *GormPurchaseRepository {
	return &GormPurchaseRepository{
		purchaseTable: NewScopedTable[trade.Purchase, models.PurchaseModel](db, TableOptions{
			Resource:      "Purchase",
			Collection:    "purchases",
			SortFields:    PurchaseSortFields,
			SearchColumns: []string{"notes"},
			Preload:       []string{"Items"},
			Purge: func(tx *gorm.DB, id uuid.UUID) error {
				return tx.Where("purchase_id = ?", id).Delete(&models.PurchaseItemModel{}).Error
			},
		}),
	}
}

// ReplaceItems deletes the purchase's item rows and inserts its current items
func (r *GormPurchaseRepository) ReplaceItems(ctx context.Context, purchase *trade.Purchase) error {
	return r.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("purchase_id = ?", purchase.ID).Delete(&models.PurchaseItemModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete purchase items: %w", err)
		}
		items := models.PurchaseItemModelsFromDomain(purchase)
		if len(items) == 0 {
			return nil
		}
		if err := tx.Create(&items).Error; err != nil {
			return fmt.Errorf("failed to create purchase items: %w", err)
		}
		return nil
	})
}

// ActiveQuantities sums item quantities of the business's active purchases per product
func (r *GormPurchaseRepository) ActiveQuantities(ctx context.Context, businessID uuid.UUID) (inventory.Quantities, error) {
	return sumActiveItems(ctx, r.DB(), "purchase_items", "purchases", "purchase_id", businessID)
}

type itemSumRow struct {
	ProductID uuid.UUID
	Quantity  int
}

// sumActiveItems groups the item table by product over active parent documents
func sumActiveItems(ctx context.Context, db *gorm.DB, itemTable, docTable, docKey string, businessID uuid.UUID) (inventory.Quantities, error) {
	var rows []itemSumRow
	err := db.WithContext(ctx).
		Table(itemTable).
		Select(itemTable+".product_id AS product_id, SUM("+itemTable+".quantity) AS quantity").
		Joins("JOIN "+docTable+" ON "+docTable+".id = "+itemTable+"."+docKey).
		Where(docTable+".business_id = ? AND "+docTable+".deleted_at IS NULL", businessID).
		Group(itemTable + ".product_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sum %s: %w", itemTable, err)
	}

	quantities := make(inventory.Quantities, len(rows))
	for _, row := range rows {
		quantities.Add(row.ProductID, row.Quantity)
	}
	return quantities, nil
}

// Ensure GormPurchaseRepository implements PurchaseRepository
var _ trade.PurchaseRepository = (*GormPurchaseRepository)(nil)
