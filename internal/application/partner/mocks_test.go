package partner

import (
	"context"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/partner"
	"github.com/pos/backend/tests/testutil"
)

type mockCustomerRepo struct {
	testutil.MockScoped[partner.Customer]
}

func (m *mockCustomerRepo) ExistsByEmail(ctx context.Context, businessID uuid.UUID, email string, excludeID *uuid.UUID) (bool, error) {
	args := m.Called(ctx, businessID, email, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *mockCustomerRepo) ExistsByPhone(ctx context.Context, businessID uuid.UUID, phone string, excludeID *uuid.UUID) (bool, error) {
	args := m.Called(ctx, businessID, phone, excludeID)
	return args.Bool(0), args.Error(1)
}

type mockSupplierRepo struct {
	testutil.MockScoped[partner.Supplier]
}

func (m *mockSupplierRepo) ExistsByEmail(ctx context.Context, businessID uuid.UUID, email string, excludeID *uuid.UUID) (bool, error) {
	args := m.Called(ctx, businessID, email, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *mockSupplierRepo) ExistsByPhone(ctx context.Context, businessID uuid.UUID, phone string, excludeID *uuid.UUID) (bool, error) {
	args := m.Called(ctx, businessID, phone, excludeID)
	return args.Bool(0), args.Error(1)
}
