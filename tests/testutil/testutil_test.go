package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSQLiteDB(t *testing.T) {
	db := NewSQLiteDB(t)

	for _, table := range []string{"businesses", "products", "purchases", "purchase_items", "orders", "order_items", "tasks"} {
		assert.True(t, db.Migrator().HasTable(table), "table %s should exist", table)
	}
}

func TestNewSQLiteDB_IsPrivate(t *testing.T) {
	first := NewSQLiteDB(t)
	second := NewSQLiteDB(t)

	assert.NoError(t, first.Exec("CREATE TABLE marker (id INTEGER)").Error)

	assert.True(t, first.Migrator().HasTable("marker"))
	assert.False(t, second.Migrator().HasTable("marker"), "each call opens its own database")
}
