package trade

import (
	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/inventory"
	"github.com/pos/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// OrderLine is one requested line of an order
type OrderLine struct {
	ProductID uuid.UUID
	Quantity  int
	Price     decimal.Decimal
	Tax       decimal.Decimal
}

// OrderItem is a persisted order line. Tax is an amount for the whole line.
type OrderItem struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	ProductID uuid.UUID
	Quantity  int
	Price     decimal.Decimal
	Tax       decimal.Decimal
}

// Subtotal returns price × quantity + tax
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity))).Add(i.Tax)
}

// Order records goods sold to a customer. While active, each of its items
// has removed its quantity from the product's stock.
type Order struct {
	shared.TenantEntity
	CustomerID uuid.UUID
	TotalPrice decimal.Decimal
	Notes      string
	Items      []OrderItem
}

// NewOrder creates an order with the given lines
func NewOrder(businessID, customerID uuid.UUID, lines []OrderLine) (*Order, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer cannot be empty")
	}
	o := &Order{
		TenantEntity: shared.NewTenantEntity(businessID),
		CustomerID:   customerID,
	}
	if err := o.ReplaceItems(lines); err != nil {
		return nil, err
	}
	return o, nil
}

// ChangeCustomer reassigns the order to another customer
func (o *Order) ChangeCustomer(customerID uuid.UUID) error {
	if customerID == uuid.Nil {
		return shared.NewDomainError("INVALID_CUSTOMER", "Customer cannot be empty")
	}
	o.CustomerID = customerID
	o.Touch()
	return nil
}

// ReplaceItems swaps the whole item set and recomputes the total price
func (o *Order) ReplaceItems(lines []OrderLine) error {
	items := make([]OrderItem, 0, len(lines))
	for _, line := range lines {
		if err := validateLine(line.ProductID, line.Quantity); err != nil {
			return err
		}
		if line.Price.IsNegative() {
			return shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
		}
		if line.Tax.IsNegative() {
			return shared.NewDomainError("INVALID_TAX", "Tax cannot be negative")
		}
		items = append(items, OrderItem{
			ID:        uuid.New(),
			OrderID:   o.ID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     line.Price,
			Tax:       line.Tax,
		})
	}
	o.Items = items
	o.recalculateTotal()
	o.Touch()
	return nil
}

// Quantities returns the order's per-product quantities
func (o *Order) Quantities() inventory.Quantities {
	q := make(inventory.Quantities, len(o.Items))
	for _, item := range o.Items {
		q.Add(item.ProductID, item.Quantity)
	}
	return q
}

func (o *Order) recalculateTotal() {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Subtotal())
	}
	o.TotalPrice = total
}
