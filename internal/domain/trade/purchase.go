package trade

import (
	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/inventory"
	"github.com/pos/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// PurchaseLine is one requested line of a purchase
type PurchaseLine struct {
	ProductID uuid.UUID
	Quantity  int
	Cost      decimal.Decimal
}

// PurchaseItem is a persisted purchase line
type PurchaseItem struct {
	ID         uuid.UUID
	PurchaseID uuid.UUID
	ProductID  uuid.UUID
	Quantity   int
	Cost       decimal.Decimal
}

// Subtotal returns cost × quantity
func (i PurchaseItem) Subtotal() decimal.Decimal {
	return i.Cost.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Purchase records stock received from a supplier. While active, each of
// its items has added its quantity to the product's stock.
type Purchase struct {
	shared.TenantEntity
	SupplierID uuid.UUID
	TotalCost  decimal.Decimal
	Notes      string
	Items      []PurchaseItem
}

// NewPurchase creates a purchase with the given lines
func NewPurchase(businessID, supplierID uuid.UUID, lines []PurchaseLine) (*Purchase, error) {
	if supplierID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SUPPLIER", "Supplier cannot be empty")
	}
	p := &Purchase{
		TenantEntity: shared.NewTenantEntity(businessID),
		SupplierID:   supplierID,
	}
	if err := p.ReplaceItems(lines); err != nil {
		return nil, err
	}
	return p, nil
}

// ChangeSupplier reassigns the purchase to another supplier
func (p *Purchase) ChangeSupplier(supplierID uuid.UUID) error {
	if supplierID == uuid.Nil {
		return shared.NewDomainError("INVALID_SUPPLIER", "Supplier cannot be empty")
	}
	p.SupplierID = supplierID
	p.Touch()
	return nil
}

// ReplaceItems swaps the whole item set and recomputes the total cost
func (p *Purchase) ReplaceItems(lines []PurchaseLine) error {
	items := make([]PurchaseItem, 0, len(lines))
	for _, line := range lines {
		if err := validateLine(line.ProductID, line.Quantity); err != nil {
			return err
		}
		if line.Cost.IsNegative() {
			return shared.NewDomainError("INVALID_COST", "Unit cost cannot be negative")
		}
		items = append(items, PurchaseItem{
			ID:         uuid.New(),
			PurchaseID: p.ID,
			ProductID:  line.ProductID,
			Quantity:   line.Quantity,
			Cost:       line.Cost,
		})
	}
	p.Items = items
	p.recalculateTotal()
	p.Touch()
	return nil
}

// Quantities returns the purchase's per-product quantities
func (p *Purchase) Quantities() inventory.Quantities {
	q := make(inventory.Quantities, len(p.Items))
	for _, item := range p.Items {
		q.Add(item.ProductID, item.Quantity)
	}
	return q
}

func (p *Purchase) recalculateTotal() {
	total := decimal.Zero
	for _, item := range p.Items {
		total = total.Add(item.Subtotal())
	}
	p.TotalCost = total
}

func validateLine(productID uuid.UUID, quantity int) error {
	if productID == uuid.Nil {
		return shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	return nil
}
