package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/partner"
	"github.com/pos/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

var contactSearchColumns = []string{"name", "email", "phone"}

type customerTable = ScopedTable[partner.Customer, models.CustomerModel, *models.CustomerModel]

// GormCustomerRepository implements CustomerRepository using GORM
type GormCustomerRepository struct {
	*customerTable
}

// NewGormCustomerRepository creates a new GormCustomerRepository
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{
		customerTable: NewScopedTable[partner.Customer, models.CustomerModel](db, TableOptions{
			Resource:      "Customer",
			Collection:    "customers",
			SortFields:    ContactSortFields,
			SearchColumns: contactSearchColumns,
		}),
	}
}

// ExistsByEmail checks customer email uniqueness within the business
func (r *GormCustomerRepository) ExistsByEmail(ctx context.Context, businessID uuid.UUID, email string, excludeID *uuid.UUID) (bool, error) {
	return r.Exists(ctx, businessID, "email", email, excludeID)
}

// ExistsByPhone checks customer phone uniqueness within the business
func (r *GormCustomerRepository) ExistsByPhone(ctx context.Context, businessID uuid.UUID, phone string, excludeID *uuid.UUID) (bool, error) {
	return r.Exists(ctx, businessID, "phone", phone, excludeID)
}

type supplierTable = ScopedTable[partner.Supplier, models.SupplierModel, *models.SupplierModel]

// GormSupplierRepository implements SupplierRepository using GORM
type GormSupplierRepository struct {
	*supplierTable
}

// NewGormSupplierRepository creates a new GormSupplierRepository
func NewGormSupplierRepository(db *gorm.DB) *GormSupplierRepository {
	return &GormSupplierRepository{
		supplierTable: NewScopedTable[partner.Supplier, models.SupplierModel](db, TableOptions{
			Resource:      "Supplier",
			Collection:    "suppliers",
			SortFields:    ContactSortFields,
			SearchColumns: contactSearchColumns,
		}),
	}
}

// ExistsByEmail checks supplier email uniqueness within the business
func (r *GormSupplierRepository) ExistsByEmail(ctx context.Context, businessID uuid.UUID, email string, excludeID *uuid.UUID) (bool, error) {
	return r.Exists(ctx, businessID, "email", email, excludeID)
}

// ExistsByPhone checks supplier phone uniqueness within the business
func (r *GormSupplierRepository) ExistsByPhone(ctx context.Context, businessID uuid.UUID, phone string, excludeID *uuid.UUID) (bool, error) {
	return r.Exists(ctx, businessID, "phone", phone, excludeID)
}

var (
	_ partner.CustomerRepository = (*GormCustomerRepository)(nil)
	_ partner.SupplierRepository = (*GormSupplierRepository)(nil)
)
