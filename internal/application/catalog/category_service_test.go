package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/application/common"
	"github.com/pos/backend/internal/domain/catalog"
	"github.com/pos/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCategoryService_Create(t *testing.T) {
	ctx := context.Background()
	businessID := uuid.New()

	t.Run("success", func(t *testing.T) {
		repo := new(mockCategoryRepo)
		svc := NewCategoryService(repo)
		repo.On("ExistsByName", ctx, businessID, "Bakery", (*uuid.UUID)(nil)).Return(false, nil)
		repo.On("Create", ctx, mock.AnythingOfType("*catalog.Category")).Return(nil)

		resp, err := svc.Create(ctx, businessID, CreateCategoryRequest{Name: "Bakery", Description: "Fresh"})
		require.NoError(t, err)
		assert.Equal(t, "Bakery", resp.Name)
		assert.Equal(t, businessID, resp.BusinessID)
		repo.AssertExpectations(t)
	})

	t.Run("name taken", func(t *testing.T) {
		repo := new(mockCategoryRepo)
		svc := NewCategoryService(repo)
		repo.On("ExistsByName", ctx, businessID, "Bakery", (*uuid.UUID)(nil)).Return(true, nil)

		_, err := svc.Create(ctx, businessID, CreateCategoryRequest{Name: "Bakery"})
		assert.ErrorIs(t, err, shared.ErrAlreadyExists)
	})
}

func TestCategoryService_UpdateAndList(t *testing.T) {
	ctx := context.Background()
	businessID := uuid.New()
	category, err := catalog.NewCategory(businessID, "Bakery", "")
	require.NoError(t, err)

	repo := new(mockCategoryRepo)
	svc := NewCategoryService(repo)
	repo.On("FindOrThrow", ctx, businessID, category.ID).Return(category, nil)
	repo.On("ExistsByName", ctx, businessID, "Pastry", &category.ID).Return(false, nil)
	repo.On("Update", ctx, category).Return(nil)

	name := "Pastry"
	resp, err := svc.Update(ctx, businessID, category.ID, UpdateCategoryRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Pastry", resp.Name)

	filter := common.ListFilter{Search: "pas"}
	repo.On("List", ctx, businessID, filter.ToFilter()).Return([]catalog.Category{*category}, nil)
	repo.On("Count", ctx, businessID, filter.ToFilter()).Return(int64(1), nil)

	list, total, err := svc.List(ctx, businessID, filter)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, list, 1)
	assert.Equal(t, category.ID, list[0].ID)
}
