package trade_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	apptrade "github.com/pos/backend/internal/application/trade"
	"github.com/pos/backend/internal/domain/catalog"
	"github.com/pos/backend/internal/domain/partner"
	"github.com/pos/backend/internal/domain/shared"
	"github.com/pos/backend/internal/infrastructure/persistence"
	"github.com/pos/backend/tests/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type reconciliationEnv struct {
	db         *gorm.DB
	businessID uuid.UUID
	products   *persistence.GormProductRepository
	purchases  *apptrade.PurchaseService
	orders     *apptrade.OrderService
	supplierID uuid.UUID
	customerID uuid.UUID
}

func newReconciliationEnv(t *testing.T) *reconciliationEnv {
	t.Helper()
	ctx := context.Background()
	db := testutil.NewSQLiteDB(t)
	businessID := uuid.New()

	contact, err := partner.NewContact("Acme Wholesale", "acme@example.test", "", "")
	require.NoError(t, err)
	supplier, err := partner.NewSupplier(businessID, contact)
	require.NoError(t, err)
	require.NoError(t, persistence.NewGormSupplierRepository(db).Create(ctx, supplier))

	contact, err = partner.NewContact("Jane Doe", "jane@example.test", "", "")
	require.NoError(t, err)
	customer, err := partner.NewCustomer(businessID, contact)
	require.NoError(t, err)
	require.NoError(t, persistence.NewGormCustomerRepository(db).Create(ctx, customer))

	scope := persistence.NewGormTransactionScope(db)
	return &reconciliationEnv{
		db:         db,
		businessID: businessID,
		products:   persistence.NewGormProductRepository(db),
		purchases:  apptrade.NewPurchaseService(persistence.NewGormPurchaseRepository(db), scope),
		orders:     apptrade.NewOrderService(persistence.NewGormOrderRepository(db), scope),
		supplierID: supplier.ID,
		customerID: customer.ID,
	}
}

func (e *reconciliationEnv) product(t *testing.T, name string, stock int) uuid.UUID {
	t.Helper()
	p, err := catalog.NewProduct(e.businessID, name, decimal.NewFromInt(5), stock)
	require.NoError(t, err)
	require.NoError(t, e.products.Create(context.Background(), p))
	return p.ID
}

func (e *reconciliationEnv) stock(t *testing.T, productID uuid.UUID) int {
	t.Helper()
	p, err := e.products.FindOrThrow(context.Background(), e.businessID, productID)
	require.NoError(t, err)
	return p.Stock
}

func (e *reconciliationEnv) itemRows(t *testing.T, table string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, e.db.Table(table).Count(&n).Error)
	return n
}

func TestPurchaseLifecycle_EndToEnd(t *testing.T) {
	ctx := context.Background()
	env := newReconciliationEnv(t)
	p := env.product(t, "Espresso beans", 10)

	created, err := env.purchases.Create(ctx, env.businessID, apptrade.CreatePurchaseRequest{
		SupplierID: env.supplierID,
		Items:      []apptrade.PurchaseItemInput{{ProductID: p, Quantity: 4, Cost: decimal.NewFromInt(2)}},
	})
	require.NoError(t, err)
	assert.Equal(t, 14, env.stock(t, p))
	assert.True(t, decimal.NewFromInt(8).Equal(created.TotalCost))

	updated, err := env.purchases.Update(ctx, env.businessID, created.ID, apptrade.UpdatePurchaseRequest{
		Items: []apptrade.PurchaseItemInput{{ProductID: p, Quantity: 1, Cost: decimal.NewFromInt(2)}},
	})
	require.NoError(t, err)
	assert.Equal(t, 11, env.stock(t, p))
	assert.True(t, decimal.NewFromInt(2).Equal(updated.TotalCost))

	result, err := env.purchases.Remove(ctx, env.businessID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, shared.SoftDeleted, result)
	assert.Equal(t, 10, env.stock(t, p))

	_, err = env.purchases.Restore(ctx, env.businessID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 11, env.stock(t, p))

	_, err = env.purchases.Restore(ctx, env.businessID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 11, env.stock(t, p), "restoring an active purchase changes nothing")

	// A purge needs the purchase in the trash first (see "Open Question
	// decisions" in DESIGN.md). The rejected purge leaves stock at 11; the
	// trash that follows brings it to 10 and the purge keeps it there.
	err = env.purchases.PermanentRemove(ctx, env.businessID, created.ID)
	assert.ErrorIs(t, err, shared.ErrInvalidState, "only trashed purchases can be purged")
	assert.Equal(t, 11, env.stock(t, p))

	_, err = env.purchases.Remove(ctx, env.businessID, created.ID)
	require.NoError(t, err)
	require.NoError(t, env.purchases.PermanentRemove(ctx, env.businessID, created.ID))
	assert.Equal(t, 10, env.stock(t, p), "the purge itself has no stock effect")

	_, err = env.purchases.Get(ctx, env.businessID, created.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
	assert.Zero(t, env.itemRows(t, "purchase_items"))
}

func TestPurchaseUpdate_ItemDiff(t *testing.T) {
	ctx := context.Background()
	env := newReconciliationEnv(t)
	a := env.product(t, "A", 100)
	b := env.product(t, "B", 100)
	c := env.product(t, "C", 100)

	created, err := env.purchases.Create(ctx, env.businessID, apptrade.CreatePurchaseRequest{
		SupplierID: env.supplierID,
		Items: []apptrade.PurchaseItemInput{
			{ProductID: a, Quantity: 5},
			{ProductID: b, Quantity: 3},
		},
	})
	require.NoError(t, err)

	_, err = env.purchases.Update(ctx, env.businessID, created.ID, apptrade.UpdatePurchaseRequest{
		Items: []apptrade.PurchaseItemInput{
			{ProductID: a, Quantity: 5},
			{ProductID: c, Quantity: 2},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 105, env.stock(t, a))
	assert.Equal(t, 100, env.stock(t, b))
	assert.Equal(t, 102, env.stock(t, c))
}

func TestStockConservation_AcrossDocuments(t *testing.T) {
	ctx := context.Background()
	env := newReconciliationEnv(t)
	p := env.product(t, "Croissant", 0)

	purchase, err := env.purchases.Create(ctx, env.businessID, apptrade.CreatePurchaseRequest{
		SupplierID: env.supplierID,
		Items:      []apptrade.PurchaseItemInput{{ProductID: p, Quantity: 12}},
	})
	require.NoError(t, err)
	order, err := env.orders.Create(ctx, env.businessID, apptrade.CreateOrderRequest{
		CustomerID: env.customerID,
		Items:      []apptrade.OrderItemInput{{ProductID: p, Quantity: 5, Price: decimal.NewFromInt(3)}},
	})
	require.NoError(t, err)
	assert.Equal(t, 7, env.stock(t, p))

	_, err = env.orders.Update(ctx, env.businessID, order.ID, apptrade.UpdateOrderRequest{
		Items: []apptrade.OrderItemInput{{ProductID: p, Quantity: 2, Price: decimal.NewFromInt(3)}},
	})
	require.NoError(t, err)
	assert.Equal(t, 10, env.stock(t, p))

	_, err = env.orders.Remove(ctx, env.businessID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, 12, env.stock(t, p))
	_, err = env.orders.Restore(ctx, env.businessID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, env.stock(t, p))

	audit, err := apptrade.NewInventoryService(env.products,
		persistence.NewGormPurchaseRepository(env.db),
		persistence.NewGormOrderRepository(env.db),
	).Audit(ctx, env.businessID)
	require.NoError(t, err)
	require.Len(t, audit.Entries, 1)
	assert.Equal(t, 12, audit.Entries[0].Purchased)
	assert.Equal(t, 2, audit.Entries[0].Sold)
	assert.Zero(t, audit.Entries[0].Opening, "stock equals net purchases minus net sales")

	_, err = env.purchases.Remove(ctx, env.businessID, purchase.ID)
	require.NoError(t, err)
	assert.Equal(t, -2, env.stock(t, p), "stock may go negative")
}

func TestForeignProductsAreDropped(t *testing.T) {
	ctx := context.Background()
	env := newReconciliationEnv(t)
	mine := env.product(t, "Mine", 1)

	other, err := catalog.NewProduct(uuid.New(), "Theirs", decimal.NewFromInt(1), 50)
	require.NoError(t, err)
	require.NoError(t, env.products.Create(ctx, other))

	created, err := env.purchases.Create(ctx, env.businessID, apptrade.CreatePurchaseRequest{
		SupplierID: env.supplierID,
		Items: []apptrade.PurchaseItemInput{
			{ProductID: mine, Quantity: 2},
			{ProductID: other.ID, Quantity: 7},
			{ProductID: uuid.New(), Quantity: 3},
		},
	})
	require.NoError(t, err)

	require.Len(t, created.Items, 1)
	assert.Equal(t, 3, env.stock(t, mine))

	theirs, err := env.products.FindOrThrow(ctx, other.BusinessID, other.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, theirs.Stock)
}

func TestReconciliation_IsAtomic(t *testing.T) {
	ctx := context.Background()
	env := newReconciliationEnv(t)
	a := env.product(t, "A", 10)
	b := env.product(t, "B", 10)

	created, err := env.purchases.Create(ctx, env.businessID, apptrade.CreatePurchaseRequest{
		SupplierID: env.supplierID,
		Items:      []apptrade.PurchaseItemInput{{ProductID: a, Quantity: 1}},
	})
	require.NoError(t, err)
	require.Equal(t, 11, env.stock(t, a))

	// Fail the second stock update of the next write, i.e. the last one of
	// an update that moves two products.
	injected := errors.New("injected stock failure")
	stockUpdates := 0
	require.NoError(t, env.db.Callback().Update().Before("gorm:update").Register("test:fail_stock", func(tx *gorm.DB) {
		if tx.Statement.Table != "products" {
			return
		}
		stockUpdates++
		if stockUpdates == 2 {
			_ = tx.AddError(injected)
		}
	}))

	_, err = env.purchases.Update(ctx, env.businessID, created.ID, apptrade.UpdatePurchaseRequest{
		Items: []apptrade.PurchaseItemInput{
			{ProductID: a, Quantity: 4},
			{ProductID: b, Quantity: 6},
		},
	})
	require.ErrorIs(t, err, injected)

	assert.Equal(t, 11, env.stock(t, a))
	assert.Equal(t, 10, env.stock(t, b))

	stored, err := env.purchases.Get(ctx, env.businessID, created.ID)
	require.NoError(t, err)
	require.Len(t, stored.Items, 1)
	assert.Equal(t, 1, stored.Items[0].Quantity)
	assert.Equal(t, int64(1), env.itemRows(t, "purchase_items"))
}
