package persistence

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/shared"
	"github.com/pos/backend/internal/domain/trade"
	"github.com/pos/backend/internal/infrastructure/persistence/models"
	"github.com/pos/backend/tests/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func countRows(t *testing.T, db *gorm.DB, model any, where string, args ...any) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(model).Where(where, args...).Count(&count).Error)
	return count
}

func TestGormPurchaseRepository_Items(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewSQLiteDB(t)
	repo := NewGormPurchaseRepository(db)
	businessID := uuid.New()
	productA, productB := uuid.New(), uuid.New()

	purchase, err := trade.NewPurchase(businessID, uuid.New(), []trade.PurchaseLine{
		{ProductID: productA, Quantity: 4, Cost: decimal.NewFromInt(2)},
		{ProductID: productB, Quantity: 1, Cost: decimal.NewFromInt(5)},
	})
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, purchase))

	t.Run("find preloads items", func(t *testing.T) {
		stored, err := repo.FindOrThrow(ctx, businessID, purchase.ID)
		require.NoError(t, err)
		assert.Len(t, stored.Items, 2)
		assert.True(t, stored.TotalCost.Equal(decimal.NewFromInt(13)))
	})

	t.Run("replace items swaps the rows", func(t *testing.T) {
		require.NoError(t, purchase.ReplaceItems([]trade.PurchaseLine{
			{ProductID: productA, Quantity: 1, Cost: decimal.NewFromInt(2)},
		}))
		require.NoError(t, repo.Update(ctx, purchase))
		require.NoError(t, repo.ReplaceItems(ctx, purchase))

		stored, err := repo.FindOrThrow(ctx, businessID, purchase.ID)
		require.NoError(t, err)
		require.Len(t, stored.Items, 1)
		assert.Equal(t, productA, stored.Items[0].ProductID)
		assert.Equal(t, 1, stored.Items[0].Quantity)
		assert.True(t, stored.TotalCost.Equal(decimal.NewFromInt(2)))
	})

	t.Run("hard delete purges items", func(t *testing.T) {
		result, err := repo.Remove(ctx, businessID, purchase.ID)
		require.NoError(t, err)
		assert.Equal(t, shared.SoftDeleted, result)
		assert.Equal(t, int64(1), countRows(t, db, &models.PurchaseItemModel{}, "purchase_id = ?", purchase.ID))

		require.NoError(t, repo.PermanentRemove(ctx, businessID, purchase.ID))
		assert.Zero(t, countRows(t, db, &models.PurchaseItemModel{}, "purchase_id = ?", purchase.ID))
	})
}

func TestGormPurchaseRepository_FindForUpdate_SQL(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: mockDB, DriverName: "postgres"}),
		&gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	repo := NewGormPurchaseRepository(gormDB)

	businessID, purchaseID, productID := uuid.New(), uuid.New(), uuid.New()

	t.Run("locks the purchase row before reading items", func(t *testing.T) {
		mock.ExpectQuery(`SELECT \* FROM "purchases" WHERE business_id = \$1 AND id = \$2 .*FOR UPDATE`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "business_id"}).AddRow(purchaseID.String(), businessID.String()))
		mock.ExpectQuery(`SELECT \* FROM "purchase_items"`).
			WithArgs(purchaseID).
			WillReturnRows(sqlmock.NewRows([]string{"id", "purchase_id", "product_id", "quantity"}).
				AddRow(uuid.NewString(), purchaseID.String(), productID.String(), 5))

		p, err := repo.FindForUpdate(context.Background(), businessID, purchaseID)
		require.NoError(t, err)
		require.Len(t, p.Items, 1)
		assert.Equal(t, 5, p.Items[0].Quantity)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row is not found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT \* FROM "purchases" .*FOR UPDATE`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.FindForUpdate(context.Background(), businessID, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormPurchaseRepository_ActiveQuantities(t *testing.T) {
	ctx := context.Background()
	repo := NewGormPurchaseRepository(testutil.NewSQLiteDB(t))
	businessID := uuid.New()
	productA, productB := uuid.New(), uuid.New()

	create := func(business uuid.UUID, lines ...trade.PurchaseLine) *trade.Purchase {
		p, err := trade.NewPurchase(business, uuid.New(), lines)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, p))
		return p
	}

	create(businessID,
		trade.PurchaseLine{ProductID: productA, Quantity: 3, Cost: decimal.Zero},
		trade.PurchaseLine{ProductID: productB, Quantity: 2, Cost: decimal.Zero})
	create(businessID, trade.PurchaseLine{ProductID: productA, Quantity: 5, Cost: decimal.Zero})
	trashed := create(businessID, trade.PurchaseLine{ProductID: productB, Quantity: 100, Cost: decimal.Zero})
	create(uuid.New(), trade.PurchaseLine{ProductID: productA, Quantity: 50, Cost: decimal.Zero})

	_, err := repo.Remove(ctx, businessID, trashed.ID)
	require.NoError(t, err)

	quantities, err := repo.ActiveQuantities(ctx, businessID)
	require.NoError(t, err)
	assert.Equal(t, 8, quantities[productA])
	assert.Equal(t, 2, quantities[productB])
}

func TestGormOrderRepository_ItemsAndQuantities(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewSQLiteDB(t)
	repo := NewGormOrderRepository(db)
	businessID := uuid.New()
	product := uuid.New()

	order, err := trade.NewOrder(businessID, uuid.New(), []trade.OrderLine{
		{ProductID: product, Quantity: 3, Price: decimal.NewFromInt(4), Tax: decimal.NewFromInt(1)},
	})
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, order))

	stored, err := repo.FindOrThrow(ctx, businessID, order.ID)
	require.NoError(t, err)
	require.Len(t, stored.Items, 1)
	assert.True(t, stored.TotalPrice.Equal(order.TotalPrice))

	quantities, err := repo.ActiveQuantities(ctx, businessID)
	require.NoError(t, err)
	assert.Equal(t, 3, quantities[product])

	_, err = repo.Remove(ctx, businessID, order.ID)
	require.NoError(t, err)
	quantities, err = repo.ActiveQuantities(ctx, businessID)
	require.NoError(t, err)
	assert.Empty(t, quantities)

	result, err := repo.Remove(ctx, businessID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, shared.PermanentlyDeleted, result)
	assert.Zero(t, countRows(t, db, &models.OrderItemModel{}, "order_id = ?", order.ID))
}
