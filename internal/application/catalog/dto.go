package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// ==================== Product DTOs ====================

// CreateProductRequest represents a request to create a product
type CreateProductRequest struct {
	Name         string          `json:"name" binding:"required,min=1,max=200"`
	Description  string          `json:"description" binding:"max=2000"`
	Price        decimal.Decimal `json:"price" binding:"money"`
	OpeningStock int             `json:"opening_stock" binding:"min=0"`
	CategoryID   *uuid.UUID      `json:"category_id"`
}

// UpdateProductRequest represents a request to update a product.
// Stock is not editable here; it only moves with purchases and orders.
type UpdateProductRequest struct {
	Name          *string          `json:"name" binding:"omitempty,min=1,max=200"`
	Description   *string          `json:"description" binding:"omitempty,max=2000"`
	Price         *decimal.Decimal `json:"price" binding:"omitempty,money"`
	CategoryID    *uuid.UUID       `json:"category_id"`
	ClearCategory bool             `json:"clear_category"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID          uuid.UUID       `json:"id"`
	BusinessID  uuid.UUID       `json:"business_id"`
	CategoryID  *uuid.UUID      `json:"category_id,omitempty"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	State       string          `json:"state"`
	DeletedAt   *time.Time      `json:"deleted_at,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ToProductResponse converts a domain Product to a response
func ToProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		BusinessID:  p.BusinessID,
		CategoryID:  p.CategoryID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		State:       string(p.State()),
		DeletedAt:   p.DeletedAt,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ==================== Category DTOs ====================

// CreateCategoryRequest represents a request to create a category
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description" binding:"max=2000"`
}

// UpdateCategoryRequest represents a request to update a category
type UpdateCategoryRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
}

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID          uuid.UUID  `json:"id"`
	BusinessID  uuid.UUID  `json:"business_id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	State       string     `json:"state"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ToCategoryResponse converts a domain Category to a response
func ToCategoryResponse(c *catalog.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		BusinessID:  c.BusinessID,
		Name:        c.Name,
		Description: c.Description,
		State:       string(c.State()),
		DeletedAt:   c.DeletedAt,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
