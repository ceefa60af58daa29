package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	apptrade "github.com/pos/backend/internal/application/trade"
	"github.com/pos/backend/tests/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestGormTransactionScope_RollsBackOnFailedAdjustment(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: mockDB, DriverName: "postgres"}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	businessID := uuid.New()
	first, last := uuid.New(), uuid.New()
	dbErr := errors.New("deadlock detected")

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "products" SET "stock"=stock \+ \$1`).
		WithArgs(4, businessID, first).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "products" SET "stock"=stock \+ \$1`).
		WithArgs(-2, businessID, last).
		WillReturnError(dbErr)
	mock.ExpectRollback()

	scope := NewGormTransactionScope(db)
	err = scope.Execute(context.Background(), func(repos apptrade.TransactionalRepositories) error {
		if err := repos.ProductRepo().AdjustStock(context.Background(), businessID, first, 4); err != nil {
			return err
		}
		return repos.ProductRepo().AdjustStock(context.Background(), businessID, last, -2)
	})

	assert.ErrorIs(t, err, dbErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormTransactionScope_Commit(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewSQLiteDB(t)
	products := NewGormProductRepository(db)
	businessID := uuid.New()
	product := seedProduct(t, products, businessID, "Salt", 1)

	scope := NewGormTransactionScope(db)
	err := scope.Execute(ctx, func(repos apptrade.TransactionalRepositories) error {
		return repos.ProductRepo().AdjustStock(ctx, businessID, product.ID, 2)
	})
	require.NoError(t, err)

	stored, err := products.FindOrThrow(ctx, businessID, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, stored.Stock)

	err = scope.Execute(ctx, func(repos apptrade.TransactionalRepositories) error {
		if err := repos.ProductRepo().AdjustStock(ctx, businessID, product.ID, 10); err != nil {
			return err
		}
		return errors.New("abort")
	})
	require.Error(t, err)

	stored, err = products.FindOrThrow(ctx, businessID, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, stored.Stock)
}
