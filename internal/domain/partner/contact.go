package partner

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/pos/backend/internal/domain/shared"
)

var (
	phonePattern = regexp.MustCompile(`^[\d\s\-\(\)\+]+$`)
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

// Contact holds the fields customers and suppliers share.
// Email and phone are optional but unique per business when present.
type Contact struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

// NewContact validates and normalizes contact details
func NewContact(name, email, phone, address string) (Contact, error) {
	c := Contact{
		Name:    strings.TrimSpace(name),
		Email:   strings.ToLower(strings.TrimSpace(email)),
		Phone:   strings.TrimSpace(phone),
		Address: strings.TrimSpace(address),
	}
	if err := c.validate(); err != nil {
		return Contact{}, err
	}
	return c, nil
}

func (c Contact) validate() error {
	if c.Name == "" {
		return shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	if utf8.RuneCountInString(c.Name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Name cannot exceed 200 characters")
	}
	if c.Email != "" {
		if len(c.Email) > 200 {
			return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
		}
		if !emailPattern.MatchString(c.Email) {
			return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
		}
	}
	if c.Phone != "" {
		if len(c.Phone) > 50 {
			return shared.NewDomainError("INVALID_PHONE", "Phone number cannot exceed 50 characters")
		}
		if !phonePattern.MatchString(c.Phone) {
			return shared.NewDomainError("INVALID_PHONE", "Invalid phone number format")
		}
	}
	return nil
}

// EmailChanged reports whether next carries a different, non-empty email
func (c Contact) EmailChanged(next Contact) bool {
	return next.Email != "" && next.Email != c.Email
}

// PhoneChanged reports whether next carries a different, non-empty phone
func (c Contact) PhoneChanged(next Contact) bool {
	return next.Phone != "" && next.Phone != c.Phone
}
