package testutil

import (
	"context"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/shared"
	"github.com/stretchr/testify/mock"
)

// MockScoped is a testify double for shared.ScopedRepository.
// Embed it in a struct to mock a domain repository interface.
type MockScoped[T any] struct {
	mock.Mock
}

func entityOrNil[T any](v any) *T {
	if v == nil {
		return nil
	}
	return v.(*T)
}

func (m *MockScoped[T]) Find(ctx context.Context, scope, id uuid.UUID) (*T, error) {
	args := m.Called(ctx, scope, id)
	return entityOrNil[T](args.Get(0)), args.Error(1)
}

func (m *MockScoped[T]) FindOrThrow(ctx context.Context, scope, id uuid.UUID) (*T, error) {
	args := m.Called(ctx, scope, id)
	return entityOrNil[T](args.Get(0)), args.Error(1)
}

func (m *MockScoped[T]) FindForUpdate(ctx context.Context, scope, id uuid.UUID) (*T, error) {
	args := m.Called(ctx, scope, id)
	return entityOrNil[T](args.Get(0)), args.Error(1)
}

func (m *MockScoped[T]) FindOrRedirect(ctx context.Context, scope, id uuid.UUID) (*T, error) {
	args := m.Called(ctx, scope, id)
	return entityOrNil[T](args.Get(0)), args.Error(1)
}

func (m *MockScoped[T]) Create(ctx context.Context, entity *T) error {
	return m.Called(ctx, entity).Error(0)
}

func (m *MockScoped[T]) Update(ctx context.Context, entity *T) error {
	return m.Called(ctx, entity).Error(0)
}

func (m *MockScoped[T]) Count(ctx context.Context, scope uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, scope, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockScoped[T]) List(ctx context.Context, scope uuid.UUID, filter shared.Filter) ([]T, error) {
	args := m.Called(ctx, scope, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockScoped[T]) Remove(ctx context.Context, scope, id uuid.UUID) (shared.RemoveResult, error) {
	args := m.Called(ctx, scope, id)
	return args.Get(0).(shared.RemoveResult), args.Error(1)
}

func (m *MockScoped[T]) Restore(ctx context.Context, scope, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, scope, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockScoped[T]) PermanentRemove(ctx context.Context, scope, id uuid.UUID) error {
	return m.Called(ctx, scope, id).Error(0)
}
