package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/application/common"
	"github.com/pos/backend/internal/domain/catalog"
	"github.com/pos/backend/internal/domain/shared"
)

// CategoryService handles category-related business operations
type CategoryService struct {
	categoryRepo catalog.CategoryRepository
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categoryRepo catalog.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// Create creates a new category
func (s *CategoryService) Create(ctx context.Context, businessID uuid.UUID, req CreateCategoryRequest) (*CategoryResponse, error) {
	if err := s.ensureNameFree(ctx, businessID, req.Name, nil); err != nil {
		return nil, err
	}

	category, err := catalog.NewCategory(businessID, req.Name, req.Description)
	if err != nil {
		return nil, err
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	response := ToCategoryResponse(category)
	return &response, nil
}

// Get retrieves a category by ID
func (s *CategoryService) Get(ctx context.Context, businessID, categoryID uuid.UUID) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindOrThrow(ctx, businessID, categoryID)
	if err != nil {
		return nil, err
	}
	response := ToCategoryResponse(category)
	return &response, nil
}

// Show retrieves a category for a page view
func (s *CategoryService) Show(ctx context.Context, businessID, categoryID uuid.UUID) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindOrRedirect(ctx, businessID, categoryID)
	if err != nil {
		return nil, err
	}
	response := ToCategoryResponse(category)
	return &response, nil
}

// List retrieves a page of categories
func (s *CategoryService) List(ctx context.Context, businessID uuid.UUID, filter common.ListFilter) ([]CategoryResponse, int64, error) {
	return common.ListPage[catalog.Category](ctx, s.categoryRepo, businessID, filter, ToCategoryResponse)
}

// Update updates an active category
func (s *CategoryService) Update(ctx context.Context, businessID, categoryID uuid.UUID, req UpdateCategoryRequest) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindOrThrow(ctx, businessID, categoryID)
	if err != nil {
		return nil, err
	}
	if err := category.EnsureActive("Category"); err != nil {
		return nil, err
	}

	name := category.Name
	if req.Name != nil && *req.Name != category.Name {
		if err := s.ensureNameFree(ctx, businessID, *req.Name, &category.ID); err != nil {
			return nil, err
		}
		name = *req.Name
	}
	description := category.Description
	if req.Description != nil {
		description = *req.Description
	}
	if err := category.Update(name, description); err != nil {
		return nil, err
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	response := ToCategoryResponse(category)
	return &response, nil
}

// Remove trashes an active category or deletes a trashed one
func (s *CategoryService) Remove(ctx context.Context, businessID, categoryID uuid.UUID) (shared.RemoveResult, error) {
	return s.categoryRepo.Remove(ctx, businessID, categoryID)
}

// Restore brings a trashed category back
func (s *CategoryService) Restore(ctx context.Context, businessID, categoryID uuid.UUID) (*CategoryResponse, error) {
	if _, err := s.categoryRepo.Restore(ctx, businessID, categoryID); err != nil {
		return nil, err
	}
	return s.Get(ctx, businessID, categoryID)
}

// PermanentRemove deletes a trashed category
func (s *CategoryService) PermanentRemove(ctx context.Context, businessID, categoryID uuid.UUID) error {
	return s.categoryRepo.PermanentRemove(ctx, businessID, categoryID)
}

func (s *CategoryService) ensureNameFree(ctx context.Context, businessID uuid.UUID, name string, excludeID *uuid.UUID) error {
	exists, err := s.categoryRepo.ExistsByName(ctx, businessID, name, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return shared.Taken("Category", "name")
	}
	return nil
}
