package dto

import (
	"net/http"
	"strings"
)

// Error codes returned in ErrorInfo.Code. Format: ERR_<CATEGORY>_<DESCRIPTION>
const (
	ErrCodeUnknown  = "ERR_UNKNOWN"
	ErrCodeInternal = "ERR_INTERNAL"
)

// Validation error codes
const (
	ErrCodeValidation   = "ERR_VALIDATION"
	ErrCodeBadRequest   = "ERR_BAD_REQUEST"
	ErrCodeInvalidInput = "ERR_INVALID_INPUT"
	ErrCodeInvalidJSON  = "ERR_INVALID_JSON"
)

// Authentication error codes
const (
	ErrCodeUnauthorized = "ERR_UNAUTHORIZED"
	ErrCodeForbidden    = "ERR_FORBIDDEN"
	ErrCodeTokenExpired = "ERR_TOKEN_EXPIRED"
	ErrCodeTokenInvalid = "ERR_TOKEN_INVALID"
	ErrCodeTokenRevoked = "ERR_TOKEN_REVOKED"
)

// Resource error codes
const (
	ErrCodeNotFound      = "ERR_NOT_FOUND"
	ErrCodeAlreadyExists = "ERR_ALREADY_EXISTS"
	ErrCodeConflict      = "ERR_CONFLICT"
)

// Business rule error codes
const (
	// ErrCodeInvalidState is returned when the lifecycle state forbids the operation,
	// e.g. updating a trashed product or permanently deleting an active one
	ErrCodeInvalidState = "ERR_INVALID_STATE"
	// ErrCodeBusinessRule covers entity rule violations such as INVALID_STOCK
	ErrCodeBusinessRule = "ERR_BUSINESS_RULE"
)

// Rate limiting error codes
const (
	ErrCodeRateLimited = "ERR_RATE_LIMITED"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeUnknown:  http.StatusInternalServerError,
	ErrCodeInternal: http.StatusInternalServerError,

	ErrCodeValidation:   http.StatusBadRequest,
	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeInvalidInput: http.StatusBadRequest,
	ErrCodeInvalidJSON:  http.StatusBadRequest,

	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeForbidden:    http.StatusForbidden,
	ErrCodeTokenExpired: http.StatusUnauthorized,
	ErrCodeTokenInvalid: http.StatusUnauthorized,
	ErrCodeTokenRevoked: http.StatusUnauthorized,

	ErrCodeNotFound:      http.StatusNotFound,
	ErrCodeAlreadyExists: http.StatusConflict,
	ErrCodeConflict:      http.StatusConflict,

	ErrCodeInvalidState: http.StatusUnprocessableEntity,
	ErrCodeBusinessRule: http.StatusUnprocessableEntity,

	ErrCodeRateLimited: http.StatusTooManyRequests,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Unknown codes map to 500.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// DomainErrorCodeMapping maps the codes of domain errors to API error codes
var DomainErrorCodeMapping = map[string]string{
	"NOT_FOUND":        ErrCodeNotFound,
	"ALREADY_EXISTS":   ErrCodeAlreadyExists,
	"INVALID_INPUT":    ErrCodeInvalidInput,
	"INVALID_STATE":    ErrCodeInvalidState,
	"UNAUTHORIZED":     ErrCodeUnauthorized,
	"FORBIDDEN":        ErrCodeForbidden,
	"VALIDATION_ERROR": ErrCodeValidation,
	"INTERNAL_ERROR":   ErrCodeInternal,
}

// NormalizeErrorCode converts a domain error code to the API format.
// Codes that are already in API format or unknown are returned as-is.
func NormalizeErrorCode(code string) string {
	if apiCode, ok := DomainErrorCodeMapping[code]; ok {
		return apiCode
	}
	return code
}

// ResolveDomainCode returns the API code and HTTP status for a domain error code.
// Entity rule codes without a mapping, e.g. INVALID_STOCK or INVALID_CURRENCY,
// are business rule violations: they keep their name under the ERR_ prefix
// and answer 422.
func ResolveDomainCode(code string) (string, int) {
	apiCode := NormalizeErrorCode(code)
	if status, ok := ErrorCodeHTTPStatus[apiCode]; ok {
		return apiCode, status
	}
	if !strings.HasPrefix(apiCode, "ERR_") {
		apiCode = "ERR_" + apiCode
	}
	return apiCode, http.StatusUnprocessableEntity
}
