package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/catalog"
	"github.com/pos/backend/tests/testutil"
)

type mockProductRepo struct {
	testutil.MockScoped[catalog.Product]
}

func (m *mockProductRepo) FindByIDs(ctx context.Context, businessID uuid.UUID, ids []uuid.UUID) ([]catalog.Product, error) {
	args := m.Called(ctx, businessID, ids)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *mockProductRepo) ExistsByName(ctx context.Context, businessID uuid.UUID, name string, excludeID *uuid.UUID) (bool, error) {
	args := m.Called(ctx, businessID, name, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *mockProductRepo) AdjustStock(ctx context.Context, businessID, productID uuid.UUID, delta int) error {
	return m.Called(ctx, businessID, productID, delta).Error(0)
}

type mockCategoryRepo struct {
	testutil.MockScoped[catalog.Category]
}

func (m *mockCategoryRepo) ExistsByName(ctx context.Context, businessID uuid.UUID, name string, excludeID *uuid.UUID) (bool, error) {
	args := m.Called(ctx, businessID, name, excludeID)
	return args.Bool(0), args.Error(1)
}
