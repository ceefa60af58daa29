package trade

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/catalog"
	"github.com/pos/backend/internal/domain/inventory"
	"github.com/pos/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestInventoryService_Audit(t *testing.T) {
	f := newTradeFixture()

	coffee, err := catalog.NewProduct(f.businessID, "Coffee", decimal.NewFromInt(3), 0)
	require.NoError(t, err)
	coffee.Stock = 7
	tea, err := catalog.NewProduct(f.businessID, "Tea", decimal.NewFromInt(2), 0)
	require.NoError(t, err)
	tea.Stock = -1

	f.purchases.On("ActiveQuantities", mock.Anything, f.businessID).
		Return(inventory.Quantities{coffee.ID: 10}, nil)
	f.orders.On("ActiveQuantities", mock.Anything, f.businessID).
		Return(inventory.Quantities{coffee.ID: 5, tea.ID: 1}, nil)
	f.products.On("List", mock.Anything, f.businessID, mock.AnythingOfType("shared.Filter")).
		Return([]catalog.Product{*coffee, *tea}, nil)

	svc := NewInventoryService(f.products, f.purchases, f.orders)
	report, err := svc.Audit(context.Background(), f.businessID)
	require.NoError(t, err)

	assert.Equal(t, f.businessID, report.BusinessID)
	require.Len(t, report.Entries, 2)

	assert.Equal(t, StockAuditEntry{
		ProductID: coffee.ID, Name: "Coffee", Stock: 7, Purchased: 10, Sold: 5, Opening: 2,
	}, report.Entries[0])
	assert.Equal(t, StockAuditEntry{
		ProductID: tea.ID, Name: "Tea", Stock: -1, Purchased: 0, Sold: 1, Opening: 0, Negative: true,
	}, report.Entries[1])
}

func TestInventoryService_AuditPages(t *testing.T) {
	f := newTradeFixture()
	page := make([]catalog.Product, auditPageSize)
	for i := range page {
		page[i].ID = uuid.New()
	}

	f.purchases.On("ActiveQuantities", mock.Anything, f.businessID).Return(inventory.Quantities{}, nil)
	f.orders.On("ActiveQuantities", mock.Anything, f.businessID).Return(inventory.Quantities{}, nil)
	f.products.On("List", mock.Anything, f.businessID, mock.MatchedBy(func(filter shared.Filter) bool { return filter.Page == 1 })).
		Return(page, nil)
	f.products.On("List", mock.Anything, f.businessID, mock.MatchedBy(func(filter shared.Filter) bool { return filter.Page == 2 })).
		Return([]catalog.Product{{}}, nil)

	report, err := NewInventoryService(f.products, f.purchases, f.orders).Audit(context.Background(), f.businessID)
	require.NoError(t, err)
	assert.Len(t, report.Entries, auditPageSize+1)
}
