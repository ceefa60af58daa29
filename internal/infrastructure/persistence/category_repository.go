package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/catalog"
	"github.com/pos/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

type categoryTable = ScopedTable[catalog.Category, models.CategoryModel, *models.CategoryModel]

// GormCategoryRepository implements CategoryRepository using GORM
type GormCategoryRepository struct {
	*categoryTable
}

// NewGormCategoryRepository creates a new GormCategoryRepository
func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{
		categoryTable: NewScopedTable[catalog.Category, models.CategoryModel](db, TableOptions{
			Resource:      "Category",
			Collection:    "categories",
			SortFields:    CategorySortFields,
			SearchColumns: []string{"name"},
		}),
	}
}

// ExistsByName checks category name uniqueness within the business
func (r *GormCategoryRepository) ExistsByName(ctx context.Context, businessID uuid.UUID, name string, excludeID *uuid.UUID) (bool, error) {
	return r.Exists(ctx, businessID, "name", name, excludeID)
}

// Ensure GormCategoryRepository implements CategoryRepository
var _ catalog.CategoryRepository = (*GormCategoryRepository)(nil)
