package catalog

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/shared"
)

// Category groups products of a business
type Category struct {
	shared.TenantEntity
	Name        string
	Description string
}

// NewCategory creates a new category
func NewCategory(businessID uuid.UUID, name, description string) (*Category, error) {
	if err := validateCategoryName(name); err != nil {
		return nil, err
	}
	return &Category{
		TenantEntity: shared.NewTenantEntity(businessID),
		Name:         strings.TrimSpace(name),
		Description:  description,
	}, nil
}

// Update updates the category's basic information
func (c *Category) Update(name, description string) error {
	if err := validateCategoryName(name); err != nil {
		return err
	}
	c.Name = strings.TrimSpace(name)
	c.Description = description
	c.Touch()
	return nil
}

func validateCategoryName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Category name cannot be empty")
	}
	if utf8.RuneCountInString(name) > 100 {
		return shared.NewDomainError("INVALID_NAME", "Category name cannot exceed 100 characters")
	}
	return nil
}
