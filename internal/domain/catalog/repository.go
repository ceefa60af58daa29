package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/shared"
)

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	shared.ScopedRepository[Product]

	// FindByIDs returns the business's products among ids, trashed ones included.
	// Ids owned by another business are silently left out.
	FindByIDs(ctx context.Context, businessID uuid.UUID, ids []uuid.UUID) ([]Product, error)

	// ExistsByName checks name uniqueness within the business
	ExistsByName(ctx context.Context, businessID uuid.UUID, name string, excludeID *uuid.UUID) (bool, error)

	// AdjustStock applies stock = stock + delta in the database.
	// It returns ErrNotFound when the product is not in the business.
	AdjustStock(ctx context.Context, businessID, productID uuid.UUID, delta int) error
}

// CategoryRepository defines the interface for category persistence
type CategoryRepository interface {
	shared.ScopedRepository[Category]

	// ExistsByName checks name uniqueness within the business
	ExistsByName(ctx context.Context, businessID uuid.UUID, name string, excludeID *uuid.UUID) (bool, error)
}
