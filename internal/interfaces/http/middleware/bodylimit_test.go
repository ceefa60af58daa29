package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func bodyLimitRouter(limit int64) *gin.Engine {
	router := gin.New()
	router.Use(BodyLimit(limit))
	router.POST("/orders", func(c *gin.Context) {
		if _, err := io.ReadAll(c.Request.Body); err != nil {
			c.String(http.StatusBadRequest, "body too large")
			return
		}
		c.String(http.StatusOK, "ok")
	})
	return router
}

func TestBodyLimit(t *testing.T) {
	t.Run("allows a body within the limit", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(`{"items":[]}`))
		w := httptest.NewRecorder()
		bodyLimitRouter(1024).ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects a declared length above the limit", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(strings.Repeat("x", 200)))
		w := httptest.NewRecorder()
		bodyLimitRouter(100).ServeHTTP(w, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
		assert.Contains(t, w.Body.String(), ErrCodeRequestTooLarge)
	})

	t.Run("cuts off a chunked body while reading", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(strings.Repeat("x", 100)))
		req.ContentLength = -1
		w := httptest.NewRecorder()
		bodyLimitRouter(50).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("zero disables the limit", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(strings.Repeat("x", 4096)))
		w := httptest.NewRecorder()
		bodyLimitRouter(0).ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
