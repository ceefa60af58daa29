package partner

import (
	"context"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/shared"
)

// ContactLookup answers per-business uniqueness questions.
// Trashed rows count, so restoring one never produces a duplicate.
type ContactLookup interface {
	ExistsByEmail(ctx context.Context, businessID uuid.UUID, email string, excludeID *uuid.UUID) (bool, error)
	ExistsByPhone(ctx context.Context, businessID uuid.UUID, phone string, excludeID *uuid.UUID) (bool, error)
}

// CustomerRepository defines the interface for customer persistence
type CustomerRepository interface {
	shared.ScopedRepository[Customer]
	ContactLookup
}

// SupplierRepository defines the interface for supplier persistence
type SupplierRepository interface {
	shared.ScopedRepository[Supplier]
	ContactLookup
}
