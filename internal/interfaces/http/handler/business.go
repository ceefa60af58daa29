package handler

import (
	"github.com/gin-gonic/gin"
	businessapp "github.com/pos/backend/internal/application/business"
)

type businessResource = resource[businessapp.BusinessResponse, businessapp.CreateBusinessRequest, businessapp.UpdateBusinessRequest]

// BusinessHandler handles business-related API endpoints
type BusinessHandler struct {
	businessResource
}

// NewBusinessHandler creates a new BusinessHandler
func NewBusinessHandler(businessService *businessapp.BusinessService) *BusinessHandler {
	return &BusinessHandler{
		businessResource: businessResource{service: businessService, scope: ownerScope, idParam: "business_id"},
	}
}

// List godoc
// @ID           listBusinesses
// @Summary      List businesses
// @Description  Returns a page of the caller's active businesses, or of their trash when trashed=true
// @Tags         businesses
// @Produce      json
// @Param        search query string false "Name filter"
// @Param        trashed query bool false "List the trash instead of active businesses"
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20)
// @Success      200 {object} APIResponse[[]businessapp.BusinessResponse]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /businesses [get]
func (h *BusinessHandler) List(c *gin.Context) { h.list(c) }

// Create godoc
// @ID           createBusiness
// @Summary      Create a business
// @Description  Business names are unique per owner, trashed businesses included. The currency defaults to USD.
// @Tags         businesses
// @Accept       json
// @Produce      json
// @Param        request body businessapp.CreateBusinessRequest true "Business creation request"
// @Success      201 {object} APIResponse[businessapp.BusinessResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /businesses [post]
func (h *BusinessHandler) Create(c *gin.Context) { h.create(c) }

// Get godoc
// @ID           getBusiness
// @Summary      Get a business
// @Tags         businesses
// @Produce      json
// @Param        business_id path string true "Business ID" format(uuid)
// @Success      200 {object} APIResponse[businessapp.BusinessResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /businesses/{business_id} [get]
func (h *BusinessHandler) Get(c *gin.Context) { h.get(c) }

// Show godoc
// @ID           showBusiness
// @Summary      View a business
// @Description  Like get, but redirects to the business list when the business does not exist
// @Tags         businesses
// @Produce      json
// @Param        business_id path string true "Business ID" format(uuid)
// @Success      200 {object} APIResponse[businessapp.BusinessResponse]
// @Success      303 "Redirect to the business list"
// @Security     BearerAuth
// @Router       /businesses/{business_id}/view [get]
func (h *BusinessHandler) Show(c *gin.Context) { h.show(c) }

// Update godoc
// @ID           updateBusiness
// @Summary      Update a business
// @Tags         businesses
// @Accept       json
// @Produce      json
// @Param        business_id path string true "Business ID" format(uuid)
// @Param        request body businessapp.UpdateBusinessRequest true "Business update request"
// @Success      200 {object} APIResponse[businessapp.BusinessResponse]
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /businesses/{business_id} [put]
func (h *BusinessHandler) Update(c *gin.Context) { h.update(c) }

// Remove godoc
// @ID           removeBusiness
// @Summary      Delete a business
// @Description  Moves an active business to the trash. Deleting a trashed business removes it and everything it owns for good.
// @Tags         businesses
// @Produce      json
// @Param        business_id path string true "Business ID" format(uuid)
// @Success      200 {object} APIResponse[common.RemoveResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /businesses/{business_id} [delete]
func (h *BusinessHandler) Remove(c *gin.Context) { h.remove(c) }

// Restore godoc
// @ID           restoreBusiness
// @Summary      Restore a business from the trash
// @Tags         businesses
// @Produce      json
// @Param        business_id path string true "Business ID" format(uuid)
// @Success      200 {object} APIResponse[businessapp.BusinessResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /businesses/{business_id}/restore [post]
func (h *BusinessHandler) Restore(c *gin.Context) { h.restore(c) }

// PermanentRemove godoc
// @ID           permanentRemoveBusiness
// @Summary      Permanently delete a trashed business
// @Tags         businesses
// @Produce      json
// @Param        business_id path string true "Business ID" format(uuid)
// @Success      200 {object} APIResponse[common.RemoveResponse]
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /businesses/{business_id}/permanent [delete]
func (h *BusinessHandler) PermanentRemove(c *gin.Context) { h.permanentRemove(c) }
