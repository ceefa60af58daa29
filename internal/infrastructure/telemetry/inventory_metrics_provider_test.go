package telemetry

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/business"
	"github.com/pos/backend/internal/domain/catalog"
	"github.com/pos/backend/internal/infrastructure/persistence/models"
	"github.com/pos/backend/tests/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func insertProduct(t *testing.T, db *gorm.DB, businessID uuid.UUID, name string, stock int) *models.ProductModel {
	t.Helper()
	p, err := catalog.NewProduct(businessID, name, decimal.NewFromInt(1), stock)
	require.NoError(t, err)
	m := &models.ProductModel{}
	m.FromDomain(p)
	require.NoError(t, db.Create(m).Error)
	return m
}

func TestGormInventoryMetricsProvider_GetLowStockCount(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	businessID := uuid.New()

	insertProduct(t, db, businessID, "Low", 2)
	insertProduct(t, db, businessID, "Edge", 5)
	insertProduct(t, db, businessID, "Plenty", 40)
	trashed := insertProduct(t, db, businessID, "Trashed", 0)
	insertProduct(t, db, uuid.New(), "Foreign", 0)
	require.NoError(t, db.Model(trashed).Update("deleted_at", gorm.Expr("CURRENT_TIMESTAMP")).Error)

	count, err := NewGormInventoryMetricsProvider(db).GetLowStockCount(context.Background(), businessID, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestGormBusinessProvider_GetActiveBusinessIDs(t *testing.T) {
	db := testutil.NewSQLiteDB(t)

	active, err := business.NewBusiness(uuid.New(), "Corner Shop", "USD")
	require.NoError(t, err)
	trashed, err := business.NewBusiness(uuid.New(), "Closed Shop", "EUR")
	require.NoError(t, err)

	for _, b := range []*business.Business{active, trashed} {
		m := &models.BusinessModel{}
		m.FromDomain(b)
		require.NoError(t, db.Create(m).Error)
	}
	require.NoError(t, db.Model(&models.BusinessModel{}).Where("id = ?", trashed.ID).
		Update("deleted_at", gorm.Expr("CURRENT_TIMESTAMP")).Error)

	ids, err := NewGormBusinessProvider(db).GetActiveBusinessIDs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{active.ID}, ids)
}
