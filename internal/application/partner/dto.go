package partner

import (
	"time"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/partner"
)

// CreateContactRequest represents a request to create a customer or supplier
type CreateContactRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=200"`
	Email   string `json:"email" binding:"omitempty,email,max=200"`
	Phone   string `json:"phone" binding:"omitempty,max=50"`
	Address string `json:"address" binding:"max=500"`
}

// UpdateContactRequest represents a partial update of contact details.
// Nil fields keep their current value.
type UpdateContactRequest struct {
	Name    *string `json:"name" binding:"omitempty,min=1,max=200"`
	Email   *string `json:"email" binding:"omitempty,max=200"`
	Phone   *string `json:"phone" binding:"omitempty,max=50"`
	Address *string `json:"address" binding:"omitempty,max=500"`
}

// merge applies the request over the current contact and validates the result
func (r UpdateContactRequest) merge(current partner.Contact) (partner.Contact, error) {
	name, email, phone, address := current.Name, current.Email, current.Phone, current.Address
	if r.Name != nil {
		name = *r.Name
	}
	if r.Email != nil {
		email = *r.Email
	}
	if r.Phone != nil {
		phone = *r.Phone
	}
	if r.Address != nil {
		address = *r.Address
	}
	return partner.NewContact(name, email, phone, address)
}

// ContactResponse represents a customer or supplier in API responses
type ContactResponse struct {
	ID         uuid.UUID  `json:"id"`
	BusinessID uuid.UUID  `json:"business_id"`
	Name       string     `json:"name"`
	Email      string     `json:"email,omitempty"`
	Phone      string     `json:"phone,omitempty"`
	Address    string     `json:"address,omitempty"`
	State      string     `json:"state"`
	DeletedAt  *time.Time `json:"deleted_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// CustomerResponse represents a customer in API responses
type CustomerResponse = ContactResponse

// SupplierResponse represents a supplier in API responses
type SupplierResponse = ContactResponse

// ToCustomerResponse converts a domain Customer to a response
func ToCustomerResponse(c *partner.Customer) CustomerResponse {
	return ContactResponse{
		ID:         c.ID,
		BusinessID: c.BusinessID,
		Name:       c.Name,
		Email:      c.Email,
		Phone:      c.Phone,
		Address:    c.Address,
		State:      string(c.State()),
		DeletedAt:  c.DeletedAt,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

// ToSupplierResponse converts a domain Supplier to a response
func ToSupplierResponse(s *partner.Supplier) SupplierResponse {
	return ContactResponse{
		ID:         s.ID,
		BusinessID: s.BusinessID,
		Name:       s.Name,
		Email:      s.Email,
		Phone:      s.Phone,
		Address:    s.Address,
		State:      string(s.State()),
		DeletedAt:  s.DeletedAt,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}
