package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrCodeRequestTooLarge is returned when a body exceeds the configured limit
const ErrCodeRequestTooLarge = "ERR_REQUEST_TOO_LARGE"

// BodyLimit rejects bodies above maxBytes. Declared lengths are checked up
// front; chunked bodies are cut off by http.MaxBytesReader while binding.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if maxBytes <= 0 {
			c.Next()
			return
		}
		if c.Request.ContentLength > maxBytes {
			abortWithError(c, http.StatusRequestEntityTooLarge, ErrCodeRequestTooLarge,
				"Request body exceeds maximum allowed size")
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
