package business

import (
	"context"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/shared"
)

// BusinessRepository stores businesses scoped by their owning user
type BusinessRepository interface {
	shared.ScopedRepository[Business]

	// ExistsByName checks the owner's businesses, trashed ones included
	ExistsByName(ctx context.Context, userID uuid.UUID, name string, excludeID *uuid.UUID) (bool, error)
}
