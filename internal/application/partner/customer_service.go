package partner

import (
	"context"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/application/common"
	"github.com/pos/backend/internal/domain/partner"
	"github.com/pos/backend/internal/domain/shared"
)

// CustomerService handles customer-related business operations
type CustomerService struct {
	customerRepo partner.CustomerRepository
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(customerRepo partner.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// Create creates a new customer. Email and phone must be unused within the business.
func (s *CustomerService) Create(ctx context.Context, businessID uuid.UUID, req CreateContactRequest) (*CustomerResponse, error) {
	contact, err := partner.NewContact(req.Name, req.Email, req.Phone, req.Address)
	if err != nil {
		return nil, err
	}
	if err := ensureContactFree(ctx, s.customerRepo, "Customer", businessID, nil, contact, nil); err != nil {
		return nil, err
	}

	customer, err := partner.NewCustomer(businessID, contact)
	if err != nil {
		return nil, err
	}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}

// Get retrieves a customer by ID
func (s *CustomerService) Get(ctx context.Context, businessID, customerID uuid.UUID) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindOrThrow(ctx, businessID, customerID)
	if err != nil {
		return nil, err
	}
	response := ToCustomerResponse(customer)
	return &response, nil
}

// Show retrieves a customer for a page view
func (s *CustomerService) Show(ctx context.Context, businessID, customerID uuid.UUID) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindOrRedirect(ctx, businessID, customerID)
	if err != nil {
		return nil, err
	}
	response := ToCustomerResponse(customer)
	return &response, nil
}

// List retrieves a page of customers
func (s *CustomerService) List(ctx context.Context, businessID uuid.UUID, filter common.ListFilter) ([]CustomerResponse, int64, error) {
	return common.ListPage[partner.Customer](ctx, s.customerRepo, businessID, filter, ToCustomerResponse)
}

// Update changes an active customer's contact details
func (s *CustomerService) Update(ctx context.Context, businessID, customerID uuid.UUID, req UpdateContactRequest) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindOrThrow(ctx, businessID, customerID)
	if err != nil {
		return nil, err
	}
	if err := customer.EnsureActive("Customer"); err != nil {
		return nil, err
	}

	next, err := req.merge(customer.Contact)
	if err != nil {
		return nil, err
	}
	if err := ensureContactFree(ctx, s.customerRepo, "Customer", businessID, &customer.Contact, next, &customer.ID); err != nil {
		return nil, err
	}
	if err := customer.UpdateContact(next); err != nil {
		return nil, err
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}
	response := ToCustomerResponse(customer)
	return &response, nil
}

// Remove trashes an active customer or deletes a trashed one
func (s *CustomerService) Remove(ctx context.Context, businessID, customerID uuid.UUID) (shared.RemoveResult, error) {
	return s.customerRepo.Remove(ctx, businessID, customerID)
}

// Restore brings a trashed customer back
func (s *CustomerService) Restore(ctx context.Context, businessID, customerID uuid.UUID) (*CustomerResponse, error) {
	if _, err := s.customerRepo.Restore(ctx, businessID, customerID); err != nil {
		return nil, err
	}
	return s.Get(ctx, businessID, customerID)
}

// PermanentRemove deletes a trashed customer
func (s *CustomerService) PermanentRemove(ctx context.Context, businessID, customerID uuid.UUID) error {
	return s.customerRepo.PermanentRemove(ctx, businessID, customerID)
}
