package middleware

import (
	"errors"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/pos/backend/internal/domain/business"
	"github.com/pos/backend/internal/interfaces/http/dto"
	"github.com/shopspring/decimal"
)

// moneyScale is the number of decimal places a monetary amount may carry
const moneyScale = 4

var setupOnce sync.Once

// SetupValidator configures gin's validator with JSON field names and the
// money and currency tags used by request DTOs. It is safe to call more than once.
func SetupValidator() {
	setupOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		RegisterValidations(v)
	})
}

// RegisterValidations installs the custom tags on v
func RegisterValidations(v *validator.Validate) {
	// Use JSON tag names for field names in errors
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		}
		return name
	})

	// Decimals are validated through their canonical string form
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})

	_ = v.RegisterValidation("money", validateMoney)
	_ = v.RegisterValidation("currency", validateCurrency)
}

// validateMoney accepts non-negative amounts with at most four decimal places
func validateMoney(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	return !d.IsNegative() && d.Equal(d.Round(moneyScale))
}

// validateCurrency accepts ISO 4217 codes in any letter case
func validateCurrency(fl validator.FieldLevel) bool {
	_, err := business.NormalizeCurrency(fl.Field().String())
	return err == nil
}

// FormatValidationErrors formats validation errors into a standard response
func FormatValidationErrors(err error, requestID string) dto.Response {
	var details []dto.ValidationDetail

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, e := range validationErrors {
			details = append(details, dto.ValidationDetail{
				Field:   e.Field(),
				Message: getValidationMessage(e),
			})
		}
	}

	return dto.NewValidationErrorResponse(
		"Request validation failed",
		requestID,
		details,
	)
}

// HandleValidationError writes a 400 response for a failed bind. Field
// errors are listed individually; anything else is reported as malformed JSON.
func HandleValidationError(c *gin.Context, err error) {
	requestID := GetRequestID(c)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		c.AbortWithStatusJSON(http.StatusBadRequest,
			dto.NewErrorResponseWithRequestID(dto.ErrCodeInvalidJSON, "Request body could not be parsed", requestID))
		return
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, FormatValidationErrors(err, requestID))
}

// getValidationMessage returns a human-readable validation message
func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "min":
		if e.Kind() == reflect.String {
			return "Must be at least " + e.Param() + " characters"
		}
		if e.Kind() == reflect.Slice {
			return "Must contain at least " + e.Param() + " items"
		}
		return "Must be at least " + e.Param()
	case "max":
		if e.Kind() == reflect.String {
			return "Must be at most " + e.Param() + " characters"
		}
		return "Must be at most " + e.Param()
	case "len":
		return "Must be exactly " + e.Param() + " characters"
	case "uuid":
		return "Invalid UUID format"
	case "oneof":
		return "Must be one of: " + e.Param()
	case "gte":
		return "Must be greater than or equal to " + e.Param()
	case "lte":
		return "Must be less than or equal to " + e.Param()
	case "gt":
		return "Must be greater than " + e.Param()
	case "lt":
		return "Must be less than " + e.Param()
	case "money":
		return "Must be a non-negative amount with at most 4 decimal places"
	case "currency":
		return "Must be an ISO 4217 currency code"
	case "url":
		return "Invalid URL format"
	case "numeric":
		return "Must be numeric"
	default:
		return "Invalid value"
	}
}
