package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/application/common"
	"github.com/pos/backend/internal/domain/catalog"
	"github.com/pos/backend/internal/domain/shared"
	"github.com/pos/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// ProductService handles product-related business operations.
// Stock is set once at creation; afterwards only purchases and orders move it.
type ProductService struct {
	productRepo  catalog.ProductRepository
	categoryRepo catalog.CategoryRepository
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository, categoryRepo catalog.CategoryRepository) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// Create creates a new product with its opening stock
func (s *ProductService) Create(ctx context.Context, businessID uuid.UUID, req CreateProductRequest) (*ProductResponse, error) {
	if err := s.ensureNameFree(ctx, businessID, req.Name, nil); err != nil {
		return nil, err
	}

	product, err := catalog.NewProduct(businessID, req.Name, req.Price, req.OpeningStock)
	if err != nil {
		return nil, err
	}
	product.Description = req.Description

	if req.CategoryID != nil {
		if err := s.requireActiveCategory(ctx, businessID, *req.CategoryID); err != nil {
			return nil, err
		}
		product.AssignCategory(req.CategoryID)
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	logger.L(ctx).Info("Product created",
		zap.String("product_id", product.ID.String()),
		zap.Int("opening_stock", product.Stock),
	)

	response := ToProductResponse(product)
	return &response, nil
}

// Get retrieves a product by ID, active or trashed
func (s *ProductService) Get(ctx context.Context, businessID, productID uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindOrThrow(ctx, businessID, productID)
	if err != nil {
		return nil, err
	}
	response := ToProductResponse(product)
	return &response, nil
}

// Show retrieves a product for a page view; a missing product yields a ListRedirect
func (s *ProductService) Show(ctx context.Context, businessID, productID uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindOrRedirect(ctx, businessID, productID)
	if err != nil {
		return nil, err
	}
	response := ToProductResponse(product)
	return &response, nil
}

// List retrieves a page of products from the active or trash view
func (s *ProductService) List(ctx context.Context, businessID uuid.UUID, filter common.ListFilter) ([]ProductResponse, int64, error) {
	return common.ListPage[catalog.Product](ctx, s.productRepo, businessID, filter, ToProductResponse)
}

// Update updates an active product's name, description, price or category
func (s *ProductService) Update(ctx context.Context, businessID, productID uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindOrThrow(ctx, businessID, productID)
	if err != nil {
		return nil, err
	}
	if err := product.EnsureActive("Product"); err != nil {
		return nil, err
	}

	name := product.Name
	if req.Name != nil && *req.Name != product.Name {
		if err := s.ensureNameFree(ctx, businessID, *req.Name, &product.ID); err != nil {
			return nil, err
		}
		name = *req.Name
	}
	description := product.Description
	if req.Description != nil {
		description = *req.Description
	}
	if err := product.Update(name, description); err != nil {
		return nil, err
	}

	if req.Price != nil {
		if err := product.SetPrice(*req.Price); err != nil {
			return nil, err
		}
	}

	switch {
	case req.ClearCategory:
		product.AssignCategory(nil)
	case req.CategoryID != nil:
		if err := s.requireActiveCategory(ctx, businessID, *req.CategoryID); err != nil {
			return nil, err
		}
		product.AssignCategory(req.CategoryID)
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	response := ToProductResponse(product)
	return &response, nil
}

// Remove trashes an active product or deletes a trashed one
func (s *ProductService) Remove(ctx context.Context, businessID, productID uuid.UUID) (shared.RemoveResult, error) {
	result, err := s.productRepo.Remove(ctx, businessID, productID)
	if err != nil {
		return "", err
	}
	logger.L(ctx).Info("Product removed",
		zap.String("product_id", productID.String()),
		zap.String("result", string(result)),
	)
	return result, nil
}

// Restore brings a trashed product back. Restoring an active product changes nothing.
func (s *ProductService) Restore(ctx context.Context, businessID, productID uuid.UUID) (*ProductResponse, error) {
	if _, err := s.productRepo.Restore(ctx, businessID, productID); err != nil {
		return nil, err
	}
	return s.Get(ctx, businessID, productID)
}

// PermanentRemove deletes a trashed product
func (s *ProductService) PermanentRemove(ctx context.Context, businessID, productID uuid.UUID) error {
	return s.productRepo.PermanentRemove(ctx, businessID, productID)
}

func (s *ProductService) ensureNameFree(ctx context.Context, businessID uuid.UUID, name string, excludeID *uuid.UUID) error {
	exists, err := s.productRepo.ExistsByName(ctx, businessID, name, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return shared.Taken("Product", "name")
	}
	return nil
}

// requireActiveCategory checks that the category belongs to the business and is not trashed
func (s *ProductService) requireActiveCategory(ctx context.Context, businessID, categoryID uuid.UUID) error {
	category, err := s.categoryRepo.FindOrThrow(ctx, businessID, categoryID)
	if err != nil {
		return err
	}
	return category.EnsureActive("Category")
}
