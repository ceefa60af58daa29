package catalog

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Product is a sellable item of a business.
// Stock is a cached counter: opening stock plus every active purchase line
// minus every active order line. It only ever changes through relative
// adjustments applied by the reconciliation engine.
type Product struct {
	shared.TenantEntity
	CategoryID  *uuid.UUID
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
}

// NewProduct creates a new product with an opening stock level
func NewProduct(businessID uuid.UUID, name string, price decimal.Decimal, openingStock int) (*Product, error) {
	if err := validateProductName(name); err != nil {
		return nil, err
	}
	if err := validatePrice(price); err != nil {
		return nil, err
	}
	if openingStock < 0 {
		return nil, shared.NewDomainError("INVALID_STOCK", "Opening stock cannot be negative")
	}

	return &Product{
		TenantEntity: shared.NewTenantEntity(businessID),
		Name:         strings.TrimSpace(name),
		Price:        price,
		Stock:        openingStock,
	}, nil
}

// Update changes the product's descriptive fields
func (p *Product) Update(name, description string) error {
	if err := validateProductName(name); err != nil {
		return err
	}
	p.Name = strings.TrimSpace(name)
	p.Description = description
	p.Touch()
	return nil
}

// SetPrice changes the selling price
func (p *Product) SetPrice(price decimal.Decimal) error {
	if err := validatePrice(price); err != nil {
		return err
	}
	p.Price = price
	p.Touch()
	return nil
}

// AssignCategory moves the product into a category, or out of any when nil
func (p *Product) AssignCategory(categoryID *uuid.UUID) {
	p.CategoryID = categoryID
	p.Touch()
}

func validateProductName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if utf8.RuneCountInString(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	return nil
}

func validatePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	return nil
}
