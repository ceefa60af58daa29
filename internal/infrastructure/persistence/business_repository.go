package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/business"
	"github.com/pos/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

type businessTable = ScopedTable[business.Business, models.BusinessModel, *models.BusinessModel]

// GormBusinessRepository implements BusinessRepository using GORM.
// Businesses are scoped by the owning user's id.
type GormBusinessRepository struct {
	*businessTable
}

// NewGormBusinessRepository creates a new GormBusinessRepository
func NewGormBusinessRepository(db *gorm.DB) *GormBusinessRepository {
	return &GormBusinessRepository{
		businessTable: NewScopedTable[business.Business, models.BusinessModel](db, TableOptions{
			Resource:      "Business",
			Collection:    "businesses",
			ScopeColumn:   "user_id",
			SortFields:    BusinessSortFields,
			SearchColumns: []string{"name", "email"},
		}),
	}
}

// ExistsByName checks whether the user already owns a business with this name
func (r *GormBusinessRepository) ExistsByName(ctx context.Context, userID uuid.UUID, name string, excludeID *uuid.UUID) (bool, error) {
	return r.Exists(ctx, userID, "name", name, excludeID)
}

// Ensure GormBusinessRepository implements BusinessRepository
var _ business.BusinessRepository = (*GormBusinessRepository)(nil)
