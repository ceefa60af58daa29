package partner

import (
	"context"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/partner"
	"github.com/pos/backend/internal/domain/shared"
)

// ensureContactFree checks the email and phone of next against the rest of
// the business. On update only the fields that changed are checked again.
func ensureContactFree(ctx context.Context, lookup partner.ContactLookup, resource string, businessID uuid.UUID, current *partner.Contact, next partner.Contact, excludeID *uuid.UUID) error {
	checkEmail := next.Email != ""
	checkPhone := next.Phone != ""
	if current != nil {
		checkEmail = current.EmailChanged(next)
		checkPhone = current.PhoneChanged(next)
	}

	if checkEmail {
		exists, err := lookup.ExistsByEmail(ctx, businessID, next.Email, excludeID)
		if err != nil {
			return err
		}
		if exists {
			return shared.Taken(resource, "email")
		}
	}
	if checkPhone {
		exists, err := lookup.ExistsByPhone(ctx, businessID, next.Phone, excludeID)
		if err != nil {
			return err
		}
		if exists {
			return shared.Taken(resource, "phone")
		}
	}
	return nil
}
