package trade

import (
	"context"

	"github.com/pos/backend/internal/domain/catalog"
	"github.com/pos/backend/internal/domain/partner"
	"github.com/pos/backend/internal/domain/trade"
)

// TransactionScope provides transactional access to the repositories a
// purchase or order touches. When a function is executed within a transaction
// scope, all repository operations will be part of the same database
// transaction and will be committed or rolled back atomically.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// If the function succeeds, the transaction is committed.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to repositories within a transaction.
// All repositories returned share the same underlying database transaction.
//
// The document write, its item rows and every stock adjustment it implies
// go through these repositories, so a failed adjustment undoes the document.
type TransactionalRepositories interface {
	// ProductRepo returns the product repository scoped to the current transaction
	ProductRepo() catalog.ProductRepository
	// PurchaseRepo returns the purchase repository scoped to the current transaction
	PurchaseRepo() trade.PurchaseRepository
	// OrderRepo returns the order repository scoped to the current transaction
	OrderRepo() trade.OrderRepository
	// SupplierRepo returns the supplier repository scoped to the current transaction
	SupplierRepo() partner.SupplierRepository
	// CustomerRepo returns the customer repository scoped to the current transaction
	CustomerRepo() partner.CustomerRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use transactions.
// This is useful for testing or when transaction support is not required.
type NoOpTransactionScope struct {
	productRepo  catalog.ProductRepository
	purchaseRepo trade.PurchaseRepository
	orderRepo    trade.OrderRepository
	supplierRepo partner.SupplierRepository
	customerRepo partner.CustomerRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	productRepo catalog.ProductRepository,
	purchaseRepo trade.PurchaseRepository,
	orderRepo trade.OrderRepository,
	supplierRepo partner.SupplierRepository,
	customerRepo partner.CustomerRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		productRepo:  productRepo,
		purchaseRepo: purchaseRepo,
		orderRepo:    orderRepo,
		supplierRepo: supplierRepo,
		customerRepo: customerRepo,
	}
}

// Execute runs the function without a real transaction (for testing/compatibility).
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// ProductRepo returns the product repository.
func (s *NoOpTransactionScope) ProductRepo() catalog.ProductRepository {
	return s.productRepo
}

// PurchaseRepo returns the purchase repository.
func (s *NoOpTransactionScope) PurchaseRepo() trade.PurchaseRepository {
	return s.purchaseRepo
}

// OrderRepo returns the order repository.
func (s *NoOpTransactionScope) OrderRepo() trade.OrderRepository {
	return s.orderRepo
}

// SupplierRepo returns the supplier repository.
func (s *NoOpTransactionScope) SupplierRepo() partner.SupplierRepository {
	return s.supplierRepo
}

// CustomerRepo returns the customer repository.
func (s *NoOpTransactionScope) CustomerRepo() partner.CustomerRepository {
	return s.customerRepo
}

// Ensure NoOpTransactionScope implements both interfaces
var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
