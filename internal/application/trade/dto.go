package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
)

// ==================== Purchase DTOs ====================

// PurchaseItemInput represents one line of a purchase request
type PurchaseItemInput struct {
	ProductID uuid.UUID       `json:"product_id" binding:"required"`
	Quantity  int             `json:"quantity" binding:"required,min=1"`
	Cost      decimal.Decimal `json:"cost" binding:"money"`
}

// CreatePurchaseRequest represents a request to create a purchase
type CreatePurchaseRequest struct {
	SupplierID uuid.UUID           `json:"supplier_id" binding:"required"`
	Items      []PurchaseItemInput `json:"items" binding:"dive"`
	Notes      string              `json:"notes" binding:"max=1000"`
}

// UpdatePurchaseRequest represents a request to update an active purchase.
// A nil Items leaves the lines alone; an empty list clears them.
type UpdatePurchaseRequest struct {
	SupplierID *uuid.UUID          `json:"supplier_id"`
	Items      []PurchaseItemInput `json:"items" binding:"omitempty,dive"`
	Notes      *string             `json:"notes" binding:"omitempty,max=1000"`
}

// PurchaseItemResponse represents a purchase line in API responses
type PurchaseItemResponse struct {
	ID        uuid.UUID       `json:"id"`
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Cost      decimal.Decimal `json:"cost"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// PurchaseResponse represents a purchase in API responses
type PurchaseResponse struct {
	ID         uuid.UUID              `json:"id"`
	BusinessID uuid.UUID              `json:"business_id"`
	SupplierID uuid.UUID              `json:"supplier_id"`
	TotalCost  decimal.Decimal        `json:"total_cost"`
	Notes      string                 `json:"notes"`
	Items      []PurchaseItemResponse `json:"items"`
	State      string                 `json:"state"`
	DeletedAt  *time.Time             `json:"deleted_at,omitempty"`
	CreatedAt  time.Time              `json:"created_at"`
	UpdatedAt  time.Time              `json:"updated_at"`
}

// ToPurchaseResponse converts a domain Purchase to a response
func ToPurchaseResponse(p *trade.Purchase) PurchaseResponse {
	items := make([]PurchaseItemResponse, len(p.Items))
	for i, item := range p.Items {
		items[i] = PurchaseItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Cost:      item.Cost,
			Subtotal:  item.Subtotal(),
		}
	}
	return PurchaseResponse{
		ID:         p.ID,
		BusinessID: p.BusinessID,
		SupplierID: p.SupplierID,
		TotalCost:  p.TotalCost,
		Notes:      p.Notes,
		Items:      items,
		State:      string(p.State()),
		DeletedAt:  p.DeletedAt,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

// ==================== Order DTOs ====================

// OrderItemInput represents one line of an order request
type OrderItemInput struct {
	ProductID uuid.UUID       `json:"product_id" binding:"required"`
	Quantity  int             `json:"quantity" binding:"required,min=1"`
	Price     decimal.Decimal `json:"price" binding:"money"`
	Tax       decimal.Decimal `json:"tax" binding:"money"`
}

// CreateOrderRequest represents a request to create an order
type CreateOrderRequest struct {
	CustomerID uuid.UUID        `json:"customer_id" binding:"required"`
	Items      []OrderItemInput `json:"items" binding:"dive"`
	Notes      string           `json:"notes" binding:"max=1000"`
}

// UpdateOrderRequest represents a request to update an active order.
// A nil Items leaves the lines alone; an empty list clears them.
type UpdateOrderRequest struct {
	CustomerID *uuid.UUID       `json:"customer_id"`
	Items      []OrderItemInput `json:"items" binding:"omitempty,dive"`
	Notes      *string          `json:"notes" binding:"omitempty,max=1000"`
}

// OrderItemResponse represents an order line in API responses
type OrderItemResponse struct {
	ID        uuid.UUID       `json:"id"`
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Tax       decimal.Decimal `json:"tax"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// OrderResponse represents an order in API responses
type OrderResponse struct {
	ID         uuid.UUID           `json:"id"`
	BusinessID uuid.UUID           `json:"business_id"`
	CustomerID uuid.UUID           `json:"customer_id"`
	TotalPrice decimal.Decimal     `json:"total_price"`
	Notes      string              `json:"notes"`
	Items      []OrderItemResponse `json:"items"`
	State      string              `json:"state"`
	DeletedAt  *time.Time          `json:"deleted_at,omitempty"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

// ToOrderResponse converts a domain Order to a response
func ToOrderResponse(o *trade.Order) OrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Tax:       item.Tax,
			Subtotal:  item.Subtotal(),
		}
	}
	return OrderResponse{
		ID:         o.ID,
		BusinessID: o.BusinessID,
		CustomerID: o.CustomerID,
		TotalPrice: o.TotalPrice,
		Notes:      o.Notes,
		Items:      items,
		State:      string(o.State()),
		DeletedAt:  o.DeletedAt,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
}

// ==================== Inventory DTOs ====================

// StockAuditEntry explains a product's cached stock through its active documents
type StockAuditEntry struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Stock     int       `json:"stock"`
	Purchased int       `json:"purchased"`
	Sold      int       `json:"sold"`
	// Opening is the stock the product must have started with:
	// Stock - Purchased + Sold
	Opening  int  `json:"opening"`
	Negative bool `json:"negative"`
}

// StockAuditResponse lists audit entries for a business
type StockAuditResponse struct {
	BusinessID uuid.UUID         `json:"business_id"`
	Entries    []StockAuditEntry `json:"entries"`
}
