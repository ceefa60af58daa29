package middleware

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/business"
	"github.com/pos/backend/internal/domain/shared"
	"github.com/pos/backend/internal/infrastructure/auth"
	"github.com/pos/backend/internal/infrastructure/logger"
	"github.com/pos/backend/internal/interfaces/http/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authorizerFunc func(ctx context.Context, userID, businessID uuid.UUID) (*business.Business, error)

func (f authorizerFunc) Authorize(ctx context.Context, userID, businessID uuid.UUID) (*business.Business, error) {
	return f(ctx, userID, businessID)
}

func authenticatedAs(userID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID != uuid.Nil {
			setClaims(c, &auth.Claims{UserID: userID.String(), Role: shared.RoleUser})
		}
		c.Next()
	}
}

func newBusinessRouter(userID uuid.UUID, authorizer BusinessAuthorizer, seen *uuid.UUID) *gin.Engine {
	router := gin.New()
	group := router.Group("/businesses/:business_id", authenticatedAs(userID), BusinessAuthorization(authorizer))
	group.GET("/products", func(c *gin.Context) {
		id := GetBusinessID(c)
		if c.GetString(logger.GinBusinessIDKey) == id.String() && logger.GetBusinessID(c.Request.Context()) == id.String() {
			*seen = id
		}
		c.Status(http.StatusOK)
	})
	return router
}

func TestBusinessAuthorization(t *testing.T) {
	owner := uuid.New()
	owned, err := business.NewBusiness(owner, "Corner Shop", "EUR")
	require.NoError(t, err)

	authorizer := authorizerFunc(func(_ context.Context, userID, businessID uuid.UUID) (*business.Business, error) {
		switch {
		case userID == owner && businessID == owned.ID:
			return owned, nil
		case businessID == uuid.Nil:
			return nil, errors.New("connection reset")
		default:
			return nil, shared.NotFound("Business")
		}
	})

	t.Run("owner passes with the business on the context", func(t *testing.T) {
		var seen uuid.UUID
		router := newBusinessRouter(owner, authorizer, &seen)
		w := serve(router, http.MethodGet, "/businesses/"+owned.ID.String()+"/products", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, owned.ID, seen)
	})

	t.Run("another user's business is not found", func(t *testing.T) {
		var seen uuid.UUID
		router := newBusinessRouter(uuid.New(), authorizer, &seen)
		w := serve(router, http.MethodGet, "/businesses/"+owned.ID.String()+"/products", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, dto.ErrCodeNotFound, errorCode(t, w.Body.Bytes()))
		assert.Equal(t, uuid.Nil, seen)
	})

	t.Run("trashed business is rejected", func(t *testing.T) {
		trashed := authorizerFunc(func(context.Context, uuid.UUID, uuid.UUID) (*business.Business, error) {
			return nil, shared.NewDomainError(shared.CodeInvalidState, "Business is in the trash")
		})
		var seen uuid.UUID
		router := newBusinessRouter(owner, trashed, &seen)
		w := serve(router, http.MethodGet, "/businesses/"+owned.ID.String()+"/products", nil)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, dto.ErrCodeInvalidState, errorCode(t, w.Body.Bytes()))
	})

	t.Run("malformed id", func(t *testing.T) {
		var seen uuid.UUID
		router := newBusinessRouter(owner, authorizer, &seen)
		w := serve(router, http.MethodGet, "/businesses/not-a-uuid/products", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, dto.ErrCodeInvalidInput, errorCode(t, w.Body.Bytes()))
	})

	t.Run("anonymous caller", func(t *testing.T) {
		var seen uuid.UUID
		router := newBusinessRouter(uuid.Nil, authorizer, &seen)
		w := serve(router, http.MethodGet, "/businesses/"+owned.ID.String()+"/products", nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("repository failure is a 500", func(t *testing.T) {
		var seen uuid.UUID
		router := newBusinessRouter(owner, authorizer, &seen)
		w := serve(router, http.MethodGet, "/businesses/"+uuid.Nil.String()+"/products", nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, dto.ErrCodeInternal, errorCode(t, w.Body.Bytes()))
	})
}
