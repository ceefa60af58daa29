// Package business manages the businesses a user owns. Every other
// application service is scoped by a business id that has passed Authorize.
package business

import (
	"context"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/application/common"
	"github.com/pos/backend/internal/domain/business"
	"github.com/pos/backend/internal/domain/shared"
	"github.com/pos/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// BusinessService handles business-related operations for their owning user
type BusinessService struct {
	businessRepo business.BusinessRepository
}

// NewBusinessService creates a new BusinessService
func NewBusinessService(businessRepo business.BusinessRepository) *BusinessService {
	return &BusinessService{businessRepo: businessRepo}
}

// Authorize loads the business and checks that userID owns it and that it is
// not trashed. A business of another user is reported as not found.
func (s *BusinessService) Authorize(ctx context.Context, userID, businessID uuid.UUID) (*business.Business, error) {
	b, err := s.businessRepo.FindOrThrow(ctx, userID, businessID)
	if err != nil {
		return nil, err
	}
	if err := b.EnsureActive("Business"); err != nil {
		return nil, err
	}
	return b, nil
}

// Create creates a new business owned by userID
func (s *BusinessService) Create(ctx context.Context, userID uuid.UUID, req CreateBusinessRequest) (*BusinessResponse, error) {
	if err := s.ensureNameFree(ctx, userID, req.Name, nil); err != nil {
		return nil, err
	}

	b, err := business.NewBusiness(userID, req.Name, req.Currency)
	if err != nil {
		return nil, err
	}
	b.SetContact(req.Email, req.Phone, req.Address)

	if err := s.businessRepo.Create(ctx, b); err != nil {
		return nil, err
	}

	logger.L(ctx).Info("Business created",
		zap.String("business_id", b.ID.String()),
		zap.String("currency", b.Currency),
	)

	response := ToBusinessResponse(b)
	return &response, nil
}

// Get retrieves one of the user's businesses
func (s *BusinessService) Get(ctx context.Context, userID, businessID uuid.UUID) (*BusinessResponse, error) {
	b, err := s.businessRepo.FindOrThrow(ctx, userID, businessID)
	if err != nil {
		return nil, err
	}
	response := ToBusinessResponse(b)
	return &response, nil
}

// Show retrieves a business for a page view; a missing one yields a ListRedirect
func (s *BusinessService) Show(ctx context.Context, userID, businessID uuid.UUID) (*BusinessResponse, error) {
	b, err := s.businessRepo.FindOrRedirect(ctx, userID, businessID)
	if err != nil {
		return nil, err
	}
	response := ToBusinessResponse(b)
	return &response, nil
}

// List retrieves a page of the user's businesses
func (s *BusinessService) List(ctx context.Context, userID uuid.UUID, filter common.ListFilter) ([]BusinessResponse, int64, error) {
	return common.ListPage[business.Business](ctx, s.businessRepo, userID, filter, ToBusinessResponse)
}

// Update changes an active business
func (s *BusinessService) Update(ctx context.Context, userID, businessID uuid.UUID, req UpdateBusinessRequest) (*BusinessResponse, error) {
	b, err := s.businessRepo.FindOrThrow(ctx, userID, businessID)
	if err != nil {
		return nil, err
	}
	if err := b.EnsureActive("Business"); err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != b.Name {
		if err := s.ensureNameFree(ctx, userID, *req.Name, &b.ID); err != nil {
			return nil, err
		}
		if err := b.Rename(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.Currency != nil {
		if err := b.ChangeCurrency(*req.Currency); err != nil {
			return nil, err
		}
	}
	if req.Email != nil || req.Phone != nil || req.Address != nil {
		email, phone, address := b.Email, b.Phone, b.Address
		if req.Email != nil {
			email = *req.Email
		}
		if req.Phone != nil {
			phone = *req.Phone
		}
		if req.Address != nil {
			address = *req.Address
		}
		b.SetContact(email, phone, address)
	}

	if err := s.businessRepo.Update(ctx, b); err != nil {
		return nil, err
	}
	response := ToBusinessResponse(b)
	return &response, nil
}

// Remove trashes an active business or deletes a trashed one
func (s *BusinessService) Remove(ctx context.Context, userID, businessID uuid.UUID) (shared.RemoveResult, error) {
	return s.businessRepo.Remove(ctx, userID, businessID)
}

// Restore brings a trashed business back
func (s *BusinessService) Restore(ctx context.Context, userID, businessID uuid.UUID) (*BusinessResponse, error) {
	if _, err := s.businessRepo.Restore(ctx, userID, businessID); err != nil {
		return nil, err
	}
	return s.Get(ctx, userID, businessID)
}

// PermanentRemove deletes a trashed business
func (s *BusinessService) PermanentRemove(ctx context.Context, userID, businessID uuid.UUID) error {
	return s.businessRepo.PermanentRemove(ctx, userID, businessID)
}

func (s *BusinessService) ensureNameFree(ctx context.Context, userID uuid.UUID, name string, excludeID *uuid.UUID) error {
	exists, err := s.businessRepo.ExistsByName(ctx, userID, name, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return shared.Taken("Business", "name")
	}
	return nil
}
