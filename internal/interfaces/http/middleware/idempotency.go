package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pos/backend/internal/infrastructure/logger"
	"github.com/pos/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// IdempotencyKeyHeader carries the client-chosen key of a create request
const IdempotencyKeyHeader = "Idempotency-Key"

const maxIdempotencyKeyLength = 255

// IdempotencyStore remembers request keys for a while
type IdempotencyStore interface {
	// Claim records key for ttl and reports whether this call recorded it
	Claim(ctx context.Context, key string, ttl time.Duration) (bool, error)
	// Release forgets key
	Release(ctx context.Context, key string) error
}

// Idempotency rejects a POST whose Idempotency-Key was already used by the
// same user on the same business within ttl. Requests without the header
// pass untouched. A request that ends with an error status releases its
// key so the client can retry. Store failures let the request through.
func Idempotency(store IdempotencyStore, ttl time.Duration, log *zap.Logger) gin.HandlerFunc {
	if log == nil {
		log = zap.NewNop()
	}
	return func(c *gin.Context) {
		header := c.GetHeader(IdempotencyKeyHeader)
		if c.Request.Method != http.MethodPost || header == "" {
			c.Next()
			return
		}
		if len(header) > maxIdempotencyKeyLength {
			abortWithError(c, http.StatusBadRequest, dto.ErrCodeBadRequest,
				"Idempotency-Key must be at most 255 characters")
			return
		}

		key := c.Param(BusinessParam) + ":" + c.GetString(logger.GinUserIDKey) + ":" + header
		claimed, err := store.Claim(c.Request.Context(), key, ttl)
		if err != nil {
			log.Warn("Idempotency store unavailable", zap.Error(err))
			c.Next()
			return
		}
		if !claimed {
			abortWithError(c, http.StatusConflict, dto.ErrCodeConflict,
				"A request with this Idempotency-Key was already processed")
			return
		}

		c.Next()

		if c.Writer.Status() >= http.StatusBadRequest {
			if err := store.Release(context.WithoutCancel(c.Request.Context()), key); err != nil {
				log.Warn("Failed to release idempotency key", zap.Error(err))
			}
		}
	}
}
