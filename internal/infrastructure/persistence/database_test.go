package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pos/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDatabase(t *testing.T) (*Database, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	mock.ExpectPing()
	cfg := &config.DatabaseConfig{
		MaxOpenConns:    7,
		MaxIdleConns:    2,
		ConnMaxLifetime: time.Hour,
		ConnMaxIdleTime: time.Minute,
	}
	db, err := OpenDatabase(postgres.New(postgres.Config{Conn: sqlDB}), cfg, nil)
	require.NoError(t, err)
	return db, mock
}

func TestOpenDatabase_AppliesPoolSettings(t *testing.T) {
	db, mock := newMockDatabase(t)

	stats, err := db.Stats()
	require.NoError(t, err)
	assert.Equal(t, 7, stats.MaxOpenConnections)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOpenDatabase_PingFailure(t *testing.T) {
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer sqlDB.Close()

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	_, err = OpenDatabase(postgres.New(postgres.Config{Conn: sqlDB}), &config.DatabaseConfig{MaxOpenConns: 1}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to ping database")
}

func TestDatabase_Ping(t *testing.T) {
	db, mock := newMockDatabase(t)

	mock.ExpectPing()
	assert.NoError(t, db.Ping(context.Background()))

	mock.ExpectPing().WillReturnError(errors.New("down"))
	assert.Error(t, db.Ping(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDatabase_Transaction(t *testing.T) {
	db, mock := newMockDatabase(t)
	ctx := context.Background()

	t.Run("commit", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "products"`).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := db.Transaction(ctx, func(tx *gorm.DB) error {
			return tx.Exec(`UPDATE "products" SET stock = stock + 1`).Error
		})
		require.NoError(t, err)
	})

	t.Run("rollback on error", func(t *testing.T) {
		boom := errors.New("boom")
		mock.ExpectBegin()
		mock.ExpectRollback()

		err := db.Transaction(ctx, func(tx *gorm.DB) error { return boom })
		assert.ErrorIs(t, err, boom)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDatabase_Close(t *testing.T) {
	db, mock := newMockDatabase(t)
	mock.ExpectClose()
	require.NoError(t, db.Close())
	assert.NoError(t, mock.ExpectationsWereMet())
}
