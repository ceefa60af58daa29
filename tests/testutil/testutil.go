// Package testutil provides common test utilities for the POS backend:
// an in-memory SQLite database with every table migrated, a Redis
// container and testify doubles for scoped repositories.
package testutil

import (
	"testing"

	"github.com/pos/backend/internal/infrastructure/persistence/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// AllModels lists every persistence model, parents before children.
func AllModels() []any {
	return []any{
		&models.BusinessModel{},
		&models.CategoryModel{},
		&models.ProductModel{},
		&models.CustomerModel{},
		&models.SupplierModel{},
		&models.PurchaseModel{},
		&models.PurchaseItemModel{},
		&models.OrderModel{},
		&models.OrderItemModel{},
		&models.TaskModel{},
	}
}

// NewSQLiteDB opens a private in-memory SQLite database with every table migrated.
// A single connection is used so that all statements see the same database.
func NewSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err, "Failed to open SQLite database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(AllModels()...), "Failed to migrate SQLite database")
	return db
}
