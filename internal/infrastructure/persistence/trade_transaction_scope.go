package persistence

import (
	"context"

	apptrade "github.com/pos/backend/internal/application/trade"
	"github.com/pos/backend/internal/domain/catalog"
	"github.com/pos/backend/internal/domain/partner"
	"github.com/pos/backend/internal/domain/trade"
	"gorm.io/gorm"
)

// GormTransactionScope implements TransactionScope using GORM transactions.
// It provides atomic execution of a document write and its stock adjustments.
type GormTransactionScope struct {
	db *gorm.DB
}

// NewGormTransactionScope creates a new GormTransactionScope.
func NewGormTransactionScope(db *gorm.DB) *GormTransactionScope {
	return &GormTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
// If the function succeeds, the transaction is committed.
func (s *GormTransactionScope) Execute(ctx context.Context, fn func(repos apptrade.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := &gormTransactionalRepositories{tx: tx}
		return fn(repos)
	})
}

// gormTransactionalRepositories provides access to all repositories within a transaction.
type gormTransactionalRepositories struct {
	tx *gorm.DB
}

// ProductRepo returns the product repository scoped to the current transaction.
func (r *gormTransactionalRepositories) ProductRepo() catalog.ProductRepository {
	return NewGormProductRepository(r.tx)
}

// PurchaseRepo returns the purchase repository scoped to the current transaction.
func (r *gormTransactionalRepositories) PurchaseRepo() trade.PurchaseRepository {
	return NewGormPurchaseRepository(r.tx)
}

// OrderRepo returns the order repository scoped to the current transaction.
func (r *gormTransactionalRepositories) OrderRepo() trade.OrderRepository {
	return NewGormOrderRepository(r.tx)
}

// SupplierRepo returns the supplier repository scoped to the current transaction.
func (r *gormTransactionalRepositories) SupplierRepo() partner.SupplierRepository {
	return NewGormSupplierRepository(r.tx)
}

// CustomerRepo returns the customer repository scoped to the current transaction.
func (r *gormTransactionalRepositories) CustomerRepo() partner.CustomerRepository {
	return NewGormCustomerRepository(r.tx)
}

// Ensure GormTransactionScope implements TransactionScope
var _ apptrade.TransactionScope = (*GormTransactionScope)(nil)

// Ensure gormTransactionalRepositories implements TransactionalRepositories
var _ apptrade.TransactionalRepositories = (*gormTransactionalRepositories)(nil)
