package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestNewSystemHandler(t *testing.T) {
	h := NewSystemHandler("1.2.3", nil)
	assert.NotNil(t, h)
	assert.False(t, h.startTime.IsZero())
}

func TestSystemHandler_GetSystemInfo(t *testing.T) {
	h := NewSystemHandler("1.2.3", nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/system/info", nil)

	h.GetSystemInfo(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)

	data := resp.Data.(map[string]any)
	assert.Equal(t, "POS Backend API", data["name"])
	assert.Equal(t, "1.2.3", data["version"])
	assert.NotEmpty(t, data["go_version"])
	assert.NotEmpty(t, data["uptime"])
}

func TestSystemHandler_Ping(t *testing.T) {
	h := NewSystemHandler("1.2.3", nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/system/ping", nil)

	h.Ping(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeResponse(t, w).Data.(map[string]any)
	assert.Equal(t, "pong", data["message"])
}

func TestSystemHandler_Health(t *testing.T) {
	tests := []struct {
		name         string
		database     Pinger
		wantStatus   int
		wantHealth   string
		wantDatabase string
	}{
		{"database up", pingerFunc(func(context.Context) error { return nil }), http.StatusOK, "healthy", "ok"},
		{"database down", pingerFunc(func(context.Context) error { return errors.New("refused") }), http.StatusServiceUnavailable, "unhealthy", "error"},
		{"no database", nil, http.StatusOK, "healthy", "ok"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewSystemHandler("1.2.3", tt.database)

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

			h.Health(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			var resp HealthResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantHealth, resp.Status)
			assert.Equal(t, tt.wantDatabase, resp.Database)
		})
	}
}

func TestSystemHandler_NoRoute(t *testing.T) {
	h := NewSystemHandler("1.2.3", nil)
	router := gin.New()
	router.NoRoute(h.NoRoute)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "ERR_NOT_FOUND", decodeResponse(t, w).Error.Code)
}
