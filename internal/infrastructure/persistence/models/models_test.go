package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/catalog"
	"github.com/pos/backend/internal/domain/shared"
	"github.com/pos/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductModel_LifecycleColumn(t *testing.T) {
	p, err := catalog.NewProduct(uuid.New(), "Beans", decimal.NewFromInt(9), 3)
	require.NoError(t, err)

	t.Run("active entity maps to null deleted_at", func(t *testing.T) {
		m := ProductModelFromDomain(p)
		assert.False(t, m.DeletedAt.Valid)
		assert.Equal(t, shared.StateActive, m.ToDomain().State())
	})

	t.Run("trashed entity keeps its timestamp", func(t *testing.T) {
		at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
		require.NoError(t, p.MarkTrashed(at))

		m := ProductModelFromDomain(p)
		require.True(t, m.DeletedAt.Valid)
		assert.Equal(t, at, m.DeletedAt.Time)

		back := m.ToDomain()
		require.NotNil(t, back.DeletedAt)
		assert.Equal(t, at, *back.DeletedAt)
		assert.Equal(t, p.BusinessID, back.BusinessID)
		assert.Equal(t, 3, back.Stock)
	})

	t.Run("stock is never an updatable column", func(t *testing.T) {
		assert.NotContains(t, ProductModel{}.UpdatableColumns(), "stock")
	})
}

func TestPurchaseModel_Items(t *testing.T) {
	productID := uuid.New()
	p, err := trade.NewPurchase(uuid.New(), uuid.New(), []trade.PurchaseLine{
		{ProductID: productID, Quantity: 4, Cost: decimal.NewFromInt(2)},
	})
	require.NoError(t, err)

	m := &PurchaseModel{}
	m.FromDomain(p)

	require.Len(t, m.Items, 1)
	assert.Equal(t, p.ID, m.Items[0].PurchaseID)
	assert.Equal(t, 4, m.Items[0].Quantity)

	back := m.ToDomain()
	assert.True(t, back.TotalCost.Equal(decimal.NewFromInt(8)))
	assert.Equal(t, p.Quantities(), back.Quantities())
}
