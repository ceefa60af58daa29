package handler

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pos/backend/internal/infrastructure/logger"
	"github.com/pos/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// Pinger reports whether a backing store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// SystemHandler handles system-related API endpoints
type SystemHandler struct {
	BaseHandler
	version   string
	startTime time.Time
	database  Pinger
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(version string, database Pinger) *SystemHandler {
	return &SystemHandler{
		version:   version,
		startTime: time.Now(),
		database:  database,
	}
}

// SystemInfoResponse represents the system information response
// @name HandlerSystemInfoResponse
type SystemInfoResponse struct {
	Name      string `json:"name" example:"POS Backend API"`
	Version   string `json:"version" example:"1.0.0"`
	GoVersion string `json:"go_version" example:"go1.25.5"`
	Uptime    string `json:"uptime" example:"1h30m45s"`
}

// GetSystemInfo godoc
// @ID           getSystemSystemInfo
// @Summary      Get system information
// @Description  Returns basic system information including version and uptime
// @Tags         system
// @Produce      json
// @Success      200 {object} APIResponse[SystemInfoResponse]
// @Router       /system/info [get]
func (h *SystemHandler) GetSystemInfo(c *gin.Context) {
	h.Success(c, SystemInfoResponse{
		Name:      "POS Backend API",
		Version:   h.version,
		GoVersion: runtime.Version(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
	})
}

// PingResponse represents the ping response
// @name HandlerPingResponse
type PingResponse struct {
	Message   string `json:"message" example:"pong"`
	Timestamp string `json:"timestamp" example:"2026-01-23T12:00:00Z"`
}

// Ping godoc
// @ID           pingSystem
// @Summary      Ping the API
// @Description  Simple ping endpoint to check if the API is responsive
// @Tags         system
// @Produce      json
// @Success      200 {object} APIResponse[PingResponse]
// @Router       /system/ping [get]
func (h *SystemHandler) Ping(c *gin.Context) {
	h.Success(c, PingResponse{
		Message:   "pong",
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// HealthResponse represents the health check response
// @name HandlerHealthResponse
type HealthResponse struct {
	Status   string `json:"status" example:"healthy"`
	Time     string `json:"time" example:"2026-01-23T12:00:00Z"`
	Database string `json:"database" example:"ok"`
}

// Health godoc
// @ID           getHealth
// @Summary      Health check
// @Description  Reports whether the API can reach its database
// @Tags         system
// @Produce      json
// @Success      200 {object} HealthResponse
// @Failure      503 {object} HealthResponse
// @Router       /health [get]
func (h *SystemHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	now := time.Now().Format(time.RFC3339)
	if h.database != nil {
		if err := h.database.Ping(ctx); err != nil {
			logger.GetGinLogger(c).Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, HealthResponse{Status: "unhealthy", Time: now, Database: "error"})
			return
		}
	}
	c.JSON(http.StatusOK, HealthResponse{Status: "healthy", Time: now, Database: "ok"})
}

// NoRoute answers unknown paths with the standard error envelope
func (h *SystemHandler) NoRoute(c *gin.Context) {
	h.Error(c, http.StatusNotFound, dto.ErrCodeNotFound, "Route not found")
}
