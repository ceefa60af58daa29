package partner

import (
	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/shared"
)

// Supplier sells to a business through purchases
type Supplier struct {
	shared.TenantEntity
	Contact
}

// NewSupplier creates a new supplier
func NewSupplier(businessID uuid.UUID, contact Contact) (*Supplier, error) {
	if err := contact.validate(); err != nil {
		return nil, err
	}
	return &Supplier{
		TenantEntity: shared.NewTenantEntity(businessID),
		Contact:      contact,
	}, nil
}

// UpdateContact replaces the supplier's contact details
func (s *Supplier) UpdateContact(contact Contact) error {
	if err := contact.validate(); err != nil {
		return err
	}
	s.Contact = contact
	s.Touch()
	return nil
}
