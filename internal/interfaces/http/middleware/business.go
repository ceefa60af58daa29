package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/business"
	"github.com/pos/backend/internal/domain/shared"
	"github.com/pos/backend/internal/infrastructure/logger"
	"github.com/pos/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

const (
	// BusinessParam is the route parameter naming the tenant of a nested resource
	BusinessParam = "business_id"
	// BusinessKey holds the authorized *business.Business on the gin context
	BusinessKey = "business"
)

// BusinessAuthorizer resolves a business the user owns and may act on
type BusinessAuthorizer interface {
	Authorize(ctx context.Context, userID, businessID uuid.UUID) (*business.Business, error)
}

// BusinessAuthorization admits requests under /businesses/:business_id only
// when the authenticated user owns that active business. Everything behind it
// is scoped to the business id it stores on the context.
func BusinessAuthorization(authorizer BusinessAuthorizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := GetActor(c)
		if !actor.IsAuthenticated() {
			abortWithError(c, http.StatusUnauthorized, dto.ErrCodeUnauthorized, "Authentication required")
			return
		}

		businessID, err := uuid.Parse(c.Param(BusinessParam))
		if err != nil {
			abortWithError(c, http.StatusBadRequest, dto.ErrCodeInvalidInput, "Invalid business ID format")
			return
		}

		b, err := authorizer.Authorize(c.Request.Context(), actor.UserID, businessID)
		if err != nil {
			abortWithDomainError(c, err)
			return
		}

		c.Set(logger.GinBusinessIDKey, b.ID.String())
		c.Set(BusinessKey, b)
		c.Request = c.Request.WithContext(logger.WithBusinessID(c.Request.Context(), b.ID.String()))

		c.Next()
	}
}

// GetBusinessID returns the business authorized for this request, or uuid.Nil
func GetBusinessID(c *gin.Context) uuid.UUID {
	if b := GetBusiness(c); b != nil {
		return b.ID
	}
	return uuid.Nil
}

// GetBusiness returns the business authorized for this request
func GetBusiness(c *gin.Context) *business.Business {
	if v, exists := c.Get(BusinessKey); exists {
		if b, ok := v.(*business.Business); ok {
			return b
		}
	}
	return nil
}

// abortWithDomainError maps a domain error onto its HTTP status; anything
// else becomes a logged 500
func abortWithDomainError(c *gin.Context, err error) {
	if de, ok := shared.AsDomainError(err); ok {
		code, status := dto.ResolveDomainCode(de.Code)
		abortWithError(c, status, code, de.Message)
		return
	}
	logger.FromContext(c.Request.Context()).Error("Business authorization failed", zap.Error(err))
	abortWithError(c, http.StatusInternalServerError, dto.ErrCodeInternal, "Internal server error")
}
