package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pos/backend/internal/application/common"
	"github.com/pos/backend/internal/domain/shared"
	"github.com/pos/backend/internal/infrastructure/logger"
	"github.com/pos/backend/internal/interfaces/http/dto"
	"github.com/pos/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// APIPrefix is the mount point of the versioned API, used to build redirect targets
const APIPrefix = "/api/v1"

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// Success sends a success response
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// SuccessWithMeta sends a success response with pagination meta
func (h *BaseHandler) SuccessWithMeta(c *gin.Context, data any, total int64, page, pageSize int) {
	c.JSON(http.StatusOK, dto.NewSuccessResponseWithMeta(data, total, page, pageSize))
}

// Created sends a 201 created response
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

// NoContent sends a 204 no content response
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error sends an error response with the appropriate status code
func (h *BaseHandler) Error(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, dto.NewErrorResponseWithRequestID(code, message, middleware.GetRequestID(c)))
}

// BadRequest sends a 400 bad request response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	h.Error(c, http.StatusBadRequest, dto.ErrCodeInvalidInput, message)
}

// Unauthorized sends a 401 unauthorized response
func (h *BaseHandler) Unauthorized(c *gin.Context, message string) {
	h.Error(c, http.StatusUnauthorized, dto.ErrCodeUnauthorized, message)
}

// InternalError sends a 500 internal server error response
func (h *BaseHandler) InternalError(c *gin.Context, message string) {
	h.Error(c, http.StatusInternalServerError, dto.ErrCodeInternal, message)
}

// HandleError converts service errors to HTTP responses.
//
// A ListRedirect becomes a 303 to the resource's collection, a DomainError
// is mapped by its code and anything else is logged and reported as a 500.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	if redirect, ok := shared.IsListRedirect(err); ok {
		c.Redirect(http.StatusSeeOther, collectionPath(c, redirect.Resource))
		return
	}

	if domainErr, ok := shared.AsDomainError(err); ok {
		code, status := dto.ResolveDomainCode(domainErr.Code)
		h.Error(c, status, code, domainErr.Message)
		return
	}

	logger.GetGinLogger(c).Error("Request failed",
		zap.String("route", c.FullPath()),
		zap.Error(err),
	)
	h.InternalError(c, "An unexpected error occurred")
}

// collectionPath builds the list URL of a resource. Business-owned resources
// live under their business; businesses and tasks hang off the API root.
func collectionPath(c *gin.Context, resource string) string {
	if businessID := middleware.GetBusinessID(c); businessID != uuid.Nil && resource != "businesses" {
		return APIPrefix + "/businesses/" + businessID.String() + "/" + resource
	}
	return APIPrefix + "/" + resource
}

// parseID reads a UUID path parameter, answering 400 when it is malformed
func (h *BaseHandler) parseID(c *gin.Context, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		h.BadRequest(c, "Invalid "+param+" format")
		return uuid.Nil, false
	}
	return id, true
}

// bindJSON decodes and validates the request body
func (h *BaseHandler) bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		middleware.HandleValidationError(c, err)
		return false
	}
	return true
}

// bindList decodes the list query parameters
func (h *BaseHandler) bindList(c *gin.Context) (common.ListFilter, bool) {
	var filter common.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		middleware.HandleValidationError(c, err)
		return filter, false
	}
	return filter, true
}

// pageOf returns the page and page size a list response reports
func pageOf(filter common.ListFilter) (int, int) {
	f := filter.ToFilter()
	return f.Page, f.PageSize
}
