package business

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/shared"
	"golang.org/x/text/currency"
)

// DefaultCurrency is used when a business is created without one
const DefaultCurrency = "USD"

// Business is the tenant: a user may own several, and every catalog,
// partner and trade entity belongs to exactly one.
type Business struct {
	shared.UserEntity
	Name     string
	Currency string
	Email    string
	Phone    string
	Address  string
}

// NewBusiness creates a new business owned by userID
func NewBusiness(userID uuid.UUID, name, currencyCode string) (*Business, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_OWNER", "Business owner cannot be empty")
	}
	if err := validateName(name); err != nil {
		return nil, err
	}
	code, err := NormalizeCurrency(currencyCode)
	if err != nil {
		return nil, err
	}

	return &Business{
		UserEntity: shared.NewUserEntity(userID),
		Name:       strings.TrimSpace(name),
		Currency:   code,
	}, nil
}

// Rename changes the business name
func (b *Business) Rename(name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	b.Name = strings.TrimSpace(name)
	b.Touch()
	return nil
}

// ChangeCurrency switches the currency prices are expressed in
func (b *Business) ChangeCurrency(code string) error {
	normalized, err := NormalizeCurrency(code)
	if err != nil {
		return err
	}
	b.Currency = normalized
	b.Touch()
	return nil
}

// SetContact updates the business contact details
func (b *Business) SetContact(email, phone, address string) {
	b.Email = strings.TrimSpace(email)
	b.Phone = strings.TrimSpace(phone)
	b.Address = strings.TrimSpace(address)
	b.Touch()
}

// OwnedBy reports whether the business belongs to the given user
func (b *Business) OwnedBy(userID uuid.UUID) bool {
	return b.UserID == userID
}

// NormalizeCurrency validates an ISO 4217 code and returns it upper-cased.
// An empty code falls back to DefaultCurrency.
func NormalizeCurrency(code string) (string, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return DefaultCurrency, nil
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return "", shared.NewDomainError("INVALID_CURRENCY", "Currency must be an ISO 4217 code")
	}
	return unit.String(), nil
}

func validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Business name cannot be empty")
	}
	if utf8.RuneCountInString(name) > 100 {
		return shared.NewDomainError("INVALID_NAME", "Business name cannot exceed 100 characters")
	}
	return nil
}
