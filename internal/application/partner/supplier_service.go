package partner

import (
	"context"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/application/common"
	"github.com/pos/backend/internal/domain/partner"
	"github.com/pos/backend/internal/domain/shared"
)

// SupplierService handles supplier-related business operations
type SupplierService struct {
	supplierRepo partner.SupplierRepository
}

// NewSupplierService creates a new SupplierService
func NewSupplierService(supplierRepo partner.SupplierRepository) *SupplierService {
	return &SupplierService{supplierRepo: supplierRepo}
}

// Create creates a new supplier. Email and phone must be unused within the business.
func (s *SupplierService) Create(ctx context.Context, businessID uuid.UUID, req CreateContactRequest) (*SupplierResponse, error) {
	contact, err := partner.NewContact(req.Name, req.Email, req.Phone, req.Address)
	if err != nil {
		return nil, err
	}
	if err := ensureContactFree(ctx, s.supplierRepo, "Supplier", businessID, nil, contact, nil); err != nil {
		return nil, err
	}

	supplier, err := partner.NewSupplier(businessID, contact)
	if err != nil {
		return nil, err
	}
	if err := s.supplierRepo.Create(ctx, supplier); err != nil {
		return nil, err
	}

	response := ToSupplierResponse(supplier)
	return &response, nil
}

// Get retrieves a supplier by ID
func (s *SupplierService) Get(ctx context.Context, businessID, supplierID uuid.UUID) (*SupplierResponse, error) {
	supplier, err := s.supplierRepo.FindOrThrow(ctx, businessID, supplierID)
	if err != nil {
		return nil, err
	}
	response := ToSupplierResponse(supplier)
	return &response, nil
}

// Show retrieves a supplier for a page view
func (s *SupplierService) Show(ctx context.Context, businessID, supplierID uuid.UUID) (*SupplierResponse, error) {
	supplier, err := s.supplierRepo.FindOrRedirect(ctx, businessID, supplierID)
	if err != nil {
		return nil, err
	}
	response := ToSupplierResponse(supplier)
	return &response, nil
}

// List retrieves a page of suppliers
func (s *SupplierService) List(ctx context.Context, businessID uuid.UUID, filter common.ListFilter) ([]SupplierResponse, int64, error) {
	return common.ListPage[partner.Supplier](ctx, s.supplierRepo, businessID, filter, ToSupplierResponse)
}

// Update changes an active supplier's contact details
func (s *SupplierService) Update(ctx context.Context, businessID, supplierID uuid.UUID, req UpdateContactRequest) (*SupplierResponse, error) {
	supplier, err := s.supplierRepo.FindOrThrow(ctx, businessID, supplierID)
	if err != nil {
		return nil, err
	}
	if err := supplier.EnsureActive("Supplier"); err != nil {
		return nil, err
	}

	next, err := req.merge(supplier.Contact)
	if err != nil {
		return nil, err
	}
	if err := ensureContactFree(ctx, s.supplierRepo, "Supplier", businessID, &supplier.Contact, next, &supplier.ID); err != nil {
		return nil, err
	}
	if err := supplier.UpdateContact(next); err != nil {
		return nil, err
	}

	if err := s.supplierRepo.Update(ctx, supplier); err != nil {
		return nil, err
	}
	response := ToSupplierResponse(supplier)
	return &response, nil
}

// Remove trashes an active supplier or deletes a trashed one
func (s *SupplierService) Remove(ctx context.Context, businessID, supplierID uuid.UUID) (shared.RemoveResult, error) {
	return s.supplierRepo.Remove(ctx, businessID, supplierID)
}

// Restore brings a trashed supplier back
func (s *SupplierService) Restore(ctx context.Context, businessID, supplierID uuid.UUID) (*SupplierResponse, error) {
	if _, err := s.supplierRepo.Restore(ctx, businessID, supplierID); err != nil {
		return nil, err
	}
	return s.Get(ctx, businessID, supplierID)
}

// PermanentRemove deletes a trashed supplier
func (s *SupplierService) PermanentRemove(ctx context.Context, businessID, supplierID uuid.UUID) error {
	return s.supplierRepo.PermanentRemove(ctx, businessID, supplierID)
}
