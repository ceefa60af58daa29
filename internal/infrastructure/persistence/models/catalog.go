package models

import (
	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// ProductModel is the persistence model for the Product domain entity.
type ProductModel struct {
	TenantModel
	CategoryID  *uuid.UUID      `gorm:"type:uuid;index"`
	Name        string          `gorm:"type:varchar(200);not null"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Stock       int             `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// UpdatableColumns lists the columns an update may write.
// stock is absent: it only moves through relative adjustments.
func (ProductModel) UpdatableColumns() []string {
	return []string{"category_id", "name", "description", "price", "updated_at"}
}

// ToDomain converts the persistence model to a domain Product entity.
func (m *ProductModel) ToDomain() *catalog.Product {
	return &catalog.Product{
		TenantEntity: m.ToTenantEntity(),
		CategoryID:   m.CategoryID,
		Name:         m.Name,
		Description:  m.Description,
		Price:        m.Price,
		Stock:        m.Stock,
	}
}

// FromDomain populates the persistence model from a domain Product entity.
func (m *ProductModel) FromDomain(p *catalog.Product) {
	m.FromTenantEntity(p.TenantEntity)
	m.CategoryID = p.CategoryID
	m.Name = p.Name
	m.Description = p.Description
	m.Price = p.Price
	m.Stock = p.Stock
}

// ProductModelFromDomain creates a new persistence model from a domain Product entity.
func ProductModelFromDomain(p *catalog.Product) *ProductModel {
	m := &ProductModel{}
	m.FromDomain(p)
	return m
}

// CategoryModel is the persistence model for the Category domain entity.
type CategoryModel struct {
	TenantModel
	Name        string `gorm:"type:varchar(100);not null"`
	Description string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (CategoryModel) TableName() string {
	return "categories"
}

// UpdatableColumns lists the columns an update may write
func (CategoryModel) UpdatableColumns() []string {
	return []string{"name", "description", "updated_at"}
}

// ToDomain converts the persistence model to a domain Category entity.
func (m *CategoryModel) ToDomain() *catalog.Category {
	return &catalog.Category{
		TenantEntity: m.ToTenantEntity(),
		Name:         m.Name,
		Description:  m.Description,
	}
}

// FromDomain populates the persistence model from a domain Category entity.
func (m *CategoryModel) FromDomain(c *catalog.Category) {
	m.FromTenantEntity(c.TenantEntity)
	m.Name = c.Name
	m.Description = c.Description
}
