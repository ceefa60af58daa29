package trade

import (
	"context"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/catalog"
	"github.com/pos/backend/internal/domain/inventory"
	"github.com/pos/backend/internal/domain/partner"
	"github.com/pos/backend/internal/domain/trade"
	"github.com/pos/backend/tests/testutil"
	"github.com/stretchr/testify/mock"
)

type mockProductRepo struct {
	testutil.MockScoped[catalog.Product]
}

func (m *mockProductRepo) FindByIDs(ctx context.Context, businessID uuid.UUID, ids []uuid.UUID) ([]catalog.Product, error) {
	args := m.Called(ctx, businessID, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *mockProductRepo) ExistsByName(ctx context.Context, businessID uuid.UUID, name string, excludeID *uuid.UUID) (bool, error) {
	args := m.Called(ctx, businessID, name, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *mockProductRepo) AdjustStock(ctx context.Context, businessID, productID uuid.UUID, delta int) error {
	return m.Called(ctx, businessID, productID, delta).Error(0)
}

type mockPurchaseRepo struct {
	testutil.MockScoped[trade.Purchase]
}

func (m *mockPurchaseRepo) ReplaceItems(ctx context.Context, purchase *trade.Purchase) error {
	return m.Called(ctx, purchase).Error(0)
}

func (m *mockPurchaseRepo) ActiveQuantities(ctx context.Context, businessID uuid.UUID) (inventory.Quantities, error) {
	args := m.Called(ctx, businessID)
	return args.Get(0).(inventory.Quantities), args.Error(1)
}

type mockOrderRepo struct {
	testutil.MockScoped[trade.Order]
}

func (m *mockOrderRepo) ReplaceItems(ctx context.Context, order *trade.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *mockOrderRepo) ActiveQuantities(ctx context.Context, businessID uuid.UUID) (inventory.Quantities, error) {
	args := m.Called(ctx, businessID)
	return args.Get(0).(inventory.Quantities), args.Error(1)
}

type mockContactLookup struct{}

func (mockContactLookup) ExistsByEmail(context.Context, uuid.UUID, string, *uuid.UUID) (bool, error) {
	return false, nil
}

func (mockContactLookup) ExistsByPhone(context.Context, uuid.UUID, string, *uuid.UUID) (bool, error) {
	return false, nil
}

type mockSupplierRepo struct {
	testutil.MockScoped[partner.Supplier]
	mockContactLookup
}

type mockCustomerRepo struct {
	testutil.MockScoped[partner.Customer]
	mockContactLookup
}

// tradeFixture wires services to mocks through a NoOpTransactionScope
type tradeFixture struct {
	businessID uuid.UUID
	products   *mockProductRepo
	purchases  *mockPurchaseRepo
	orders     *mockOrderRepo
	suppliers  *mockSupplierRepo
	customers  *mockCustomerRepo
	scope      *NoOpTransactionScope
}

func newTradeFixture() *tradeFixture {
	f := &tradeFixture{
		businessID: uuid.New(),
		products:   new(mockProductRepo),
		purchases:  new(mockPurchaseRepo),
		orders:     new(mockOrderRepo),
		suppliers:  new(mockSupplierRepo),
		customers:  new(mockCustomerRepo),
	}
	f.scope = NewNoOpTransactionScope(f.products, f.purchases, f.orders, f.suppliers, f.customers)
	return f
}

// ownsProducts makes FindByIDs report the given products as the business's own
func (f *tradeFixture) ownsProducts(ids ...uuid.UUID) {
	products := make([]catalog.Product, len(ids))
	for i, id := range ids {
		products[i] = catalog.Product{}
		products[i].ID = id
		products[i].BusinessID = f.businessID
	}
	f.products.On("FindByIDs", mock.Anything, f.businessID, mock.Anything).Return(products, nil)
}
