package shared

import "github.com/google/uuid"

// Role names carried by access tokens
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Actor is the authenticated caller of an operation
type Actor struct {
	UserID uuid.UUID
	Role   string
}

// IsAuthenticated reports whether the actor carries a user identity
func (a Actor) IsAuthenticated() bool {
	return a.UserID != uuid.Nil
}

// IsAdmin reports whether the actor holds the admin role
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// RequireAdmin fails with UNAUTHORIZED for anonymous actors and FORBIDDEN for non-admins
func (a Actor) RequireAdmin() error {
	if !a.IsAuthenticated() {
		return ErrUnauthorized
	}
	if !a.IsAdmin() {
		return NewDomainError(CodeForbidden, "Administrator role required")
	}
	return nil
}
