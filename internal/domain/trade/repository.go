package trade

import (
	"context"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/inventory"
	"github.com/pos/backend/internal/domain/shared"
)

// PurchaseRepository defines the interface for purchase persistence.
// Find and List load items; Remove, Restore and PermanentRemove never touch stock.
type PurchaseRepository interface {
	shared.ScopedRepository[Purchase]

	// FindForUpdate loads the purchase and locks its row for the rest of the transaction
	FindForUpdate(ctx context.Context, businessID, id uuid.UUID) (*Purchase, error)

	// ReplaceItems deletes the purchase's item rows and inserts its current items
	ReplaceItems(ctx context.Context, purchase *Purchase) error

	// ActiveQuantities sums item quantities of active purchases per product
	ActiveQuantities(ctx context.Context, businessID uuid.UUID) (inventory.Quantities, error)
}

// OrderRepository defines the interface for order persistence
type OrderRepository interface {
	shared.ScopedRepository[Order]

	// FindForUpdate loads the order and locks its row for the rest of the transaction
	FindForUpdate(ctx context.Context, businessID, id uuid.UUID) (*Order, error)

	// ReplaceItems deletes the order's item rows and inserts its current items
	ReplaceItems(ctx context.Context, order *Order) error

	// ActiveQuantities sums item quantities of active orders per product
	ActiveQuantities(ctx context.Context, businessID uuid.UUID) (inventory.Quantities, error)
}
