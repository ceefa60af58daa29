package partner

import (
	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/shared"
)

// Customer buys from a business through orders
type Customer struct {
	shared.TenantEntity
	Contact
}

// NewCustomer creates a new customer
func NewCustomer(businessID uuid.UUID, contact Contact) (*Customer, error) {
	if err := contact.validate(); err != nil {
		return nil, err
	}
	return &Customer{
		TenantEntity: shared.NewTenantEntity(businessID),
		Contact:      contact,
	}, nil
}

// UpdateContact replaces the customer's contact details
func (c *Customer) UpdateContact(contact Contact) error {
	if err := contact.validate(); err != nil {
		return err
	}
	c.Contact = contact
	c.Touch()
	return nil
}
