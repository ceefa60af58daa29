package models

import (
	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
)

// PurchaseModel is the persistence model for the Purchase domain entity.
type PurchaseModel struct {
	TenantModel
	SupplierID uuid.UUID           `gorm:"type:uuid;not null;index"`
	TotalCost  decimal.Decimal     `gorm:"type:decimal(18,4);not null;default:0"`
	Notes      string              `gorm:"type:text"`
	Items      []PurchaseItemModel `gorm:"foreignKey:PurchaseID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (PurchaseModel) TableName() string {
	return "purchases"
}

// UpdatableColumns lists the columns an update may write.
// Items are rewritten separately.
func (PurchaseModel) UpdatableColumns() []string {
	return []string{"supplier_id", "total_cost", "notes", "updated_at"}
}

// ToDomain converts the persistence model to a domain Purchase entity.
func (m *PurchaseModel) ToDomain() *trade.Purchase {
	p := &trade.Purchase{
		TenantEntity: m.ToTenantEntity(),
		SupplierID:   m.SupplierID,
		TotalCost:    m.TotalCost,
		Notes:        m.Notes,
		Items:        make([]trade.PurchaseItem, len(m.Items)),
	}
	for i, item := range m.Items {
		p.Items[i] = item.ToDomain()
	}
	return p
}

// FromDomain populates the persistence model from a domain Purchase entity.
func (m *PurchaseModel) FromDomain(p *trade.Purchase) {
	m.FromTenantEntity(p.TenantEntity)
	m.SupplierID = p.SupplierID
	m.TotalCost = p.TotalCost
	m.Notes = p.Notes
	m.Items = PurchaseItemModelsFromDomain(p)
}

// PurchaseItemModel is the persistence model for a purchase line.
type PurchaseItemModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	PurchaseID uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity   int             `gorm:"not null"`
	Cost       decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
}

// TableName returns the table name for GORM
func (PurchaseItemModel) TableName() string {
	return "purchase_items"
}

// ToDomain converts the persistence model to a domain PurchaseItem.
func (m PurchaseItemModel) ToDomain() trade.PurchaseItem {
	return trade.PurchaseItem{
		ID:         m.ID,
		PurchaseID: m.PurchaseID,
		ProductID:  m.ProductID,
		Quantity:   m.Quantity,
		Cost:       m.Cost,
	}
}

// PurchaseItemModelsFromDomain converts the purchase's items for insertion
func PurchaseItemModelsFromDomain(p *trade.Purchase) []PurchaseItemModel {
	items := make([]PurchaseItemModel, len(p.Items))
	for i, item := range p.Items {
		items[i] = PurchaseItemModel{
			ID:         item.ID,
			PurchaseID: p.ID,
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			Cost:       item.Cost,
		}
	}
	return items
}

// OrderModel is the persistence model for the Order domain entity.
type OrderModel struct {
	TenantModel
	CustomerID uuid.UUID        `gorm:"type:uuid;not null;index"`
	TotalPrice decimal.Decimal  `gorm:"type:decimal(18,4);not null;default:0"`
	Notes      string           `gorm:"type:text"`
	Items      []OrderItemModel `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// UpdatableColumns lists the columns an update may write.
// Items are rewritten separately.
func (OrderModel) UpdatableColumns() []string {
	return []string{"customer_id", "total_price", "notes", "updated_at"}
}

// ToDomain converts the persistence model to a domain Order entity.
func (m *OrderModel) ToDomain() *trade.Order {
	o := &trade.Order{
		TenantEntity: m.ToTenantEntity(),
		CustomerID:   m.CustomerID,
		TotalPrice:   m.TotalPrice,
		Notes:        m.Notes,
		Items:        make([]trade.OrderItem, len(m.Items)),
	}
	for i, item := range m.Items {
		o.Items[i] = item.ToDomain()
	}
	return o
}

// FromDomain populates the persistence model from a domain Order entity.
func (m *OrderModel) FromDomain(o *trade.Order) {
	m.FromTenantEntity(o.TenantEntity)
	m.CustomerID = o.CustomerID
	m.TotalPrice = o.TotalPrice
	m.Notes = o.Notes
	m.Items = OrderItemModelsFromDomain(o)
}

// OrderItemModel is the persistence model for an order line.
type OrderItemModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity  int             `gorm:"not null"`
	Price     decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Tax       decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
}

// TableName returns the table name for GORM
func (OrderItemModel) TableName() string {
	return "order_items"
}

// ToDomain converts the persistence model to a domain OrderItem.
func (m OrderItemModel) ToDomain() trade.OrderItem {
	return trade.OrderItem{
		ID:        m.ID,
		OrderID:   m.OrderID,
		ProductID: m.ProductID,
		Quantity:  m.Quantity,
		Price:     m.Price,
		Tax:       m.Tax,
	}
}

// OrderItemModelsFromDomain converts the order's items for insertion
func OrderItemModelsFromDomain(o *trade.Order) []OrderItemModel {
	items := make([]OrderItemModel, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItemModel{
			ID:        item.ID,
			OrderID:   o.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Tax:       item.Tax,
		}
	}
	return items
}
