package shared

import "errors"

// Error codes shared by every bounded context
const (
	CodeNotFound        = "NOT_FOUND"
	CodeAlreadyExists   = "ALREADY_EXISTS"
	CodeInvalidInput    = "INVALID_INPUT"
	CodeValidation      = "VALIDATION_ERROR"
	CodeInvalidState    = "INVALID_STATE"
	CodeUnauthorized    = "UNAUTHORIZED"
	CodeForbidden       = "FORBIDDEN"
	CodeInternalFailure = "INTERNAL_ERROR"
)

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// Is reports whether target is a DomainError with the same code, so that
// errors.Is(err, ErrNotFound) matches errors built with a custom message.
func (e *DomainError) Is(target error) bool {
	var other *DomainError
	if !errors.As(target, &other) {
		return false
	}
	return e.Code == other.Code
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound      = NewDomainError(CodeNotFound, "Resource not found")
	ErrAlreadyExists = NewDomainError(CodeAlreadyExists, "Resource already exists")
	ErrInvalidInput  = NewDomainError(CodeInvalidInput, "Invalid input provided")
	ErrUnauthorized  = NewDomainError(CodeUnauthorized, "Authentication required")
	ErrForbidden     = NewDomainError(CodeForbidden, "Not allowed to perform this action")
	ErrInvalidState  = NewDomainError(CodeInvalidState, "Operation not allowed in current state")
)

// NotFound returns a NOT_FOUND error naming the missing resource
func NotFound(resource string) *DomainError {
	return NewDomainError(CodeNotFound, resource+" not found")
}

// Taken returns an ALREADY_EXISTS error for a per-tenant uniqueness conflict
func Taken(resource, field string) *DomainError {
	return NewDomainError(CodeAlreadyExists, resource+" with this "+field+" already exists")
}

// AsDomainError extracts the DomainError carried by err, if any
func AsDomainError(err error) (*DomainError, bool) {
	var de *DomainError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// ListRedirect signals that a scoped lookup came back empty and the caller
// should navigate back to the resource's collection instead of failing.
// It is not a DomainError.
type ListRedirect struct {
	Resource string
}

// Error implements the error interface
func (r *ListRedirect) Error() string {
	return r.Resource + " not found, redirecting to list"
}

// IsListRedirect reports whether err asks for a redirect to the collection view
func IsListRedirect(err error) (*ListRedirect, bool) {
	var r *ListRedirect
	if errors.As(err, &r) {
		return r, true
	}
	return nil, false
}
