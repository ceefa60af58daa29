package handler

import (
	"github.com/gin-gonic/gin"
	partnerapp "github.com/pos/backend/internal/application/partner"
)

type customerResource = resource[partnerapp.CustomerResponse, partnerapp.CreateContactRequest, partnerapp.UpdateContactRequest]

// CustomerHandler handles customer-related API endpoints
type CustomerHandler struct {
	customerResource
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(customerService *partnerapp.CustomerService) *CustomerHandler {
	return &CustomerHandler{
		customerResource: customerResource{service: customerService, scope: businessScope, idParam: "id"},
	}
}

// List godoc
// @ID           listCustomers
// @Summary      List customers
// @Description  Returns a page of the business's active customers, or of its trash when trashed=true
// @Tags         customers
// @Produce      json
// @Param        business_id path string true "Business ID" format(uuid)
// @Param        search query string false "Name or email filter"
// @Param        trashed query bool false "List the trash instead of active customers"
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20)
// @Success      200 {object} APIResponse[[]partnerapp.ContactResponse]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /businesses/{business_id}/customers [get]
func (h *CustomerHandler) List(c *gin.Context) { h.list(c) }

// Create godoc
// @ID           createCustomer
// @Summary      Create a customer
// @Description  Customer emails are unique per business, trashed customers included
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        business_id path string true "Business ID" format(uuid)
// @Param        request body partnerapp.CreateContactRequest true "Customer creation request"
// @Success      201 {object} APIResponse[partnerapp.ContactResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /businesses/{business_id}/customers [post]
func (h *CustomerHandler) Create(c *gin.Context) { h.create(c) }

// Get godoc
// @ID           getCustomer
// @Summary      Get a customer
// @Tags         customers
// @Produce      json
// @Param        business_id path string true "Business ID" format(uuid)
// @Param        id path string true "Customer ID" format(uuid)
// @Success      200 {object} APIResponse[partnerapp.ContactResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /businesses/{business_id}/customers/{id} [get]
func (h *CustomerHandler) Get(c *gin.Context) { h.get(c) }

// Show godoc
// @ID           showCustomer
// @Summary      View a customer
// @Description  Like get, but redirects to the customer list when the customer does not exist
// @Tags         customers
// @Produce      json
// @Param        business_id path string true "Business ID" format(uuid)
// @Param        id path string true "Customer ID" format(uuid)
// @Success      200 {object} APIResponse[partnerapp.ContactResponse]
// @Success      303 "Redirect to the customer list"
// @Security     BearerAuth
// @Router       /businesses/{business_id}/customers/{id}/view [get]
func (h *CustomerHandler) Show(c *gin.Context) { h.show(c) }

// Update godoc
// @ID           updateCustomer
// @Summary      Update a customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        business_id path string true "Business ID" format(uuid)
// @Param        id path string true "Customer ID" format(uuid)
// @Param        request body partnerapp.UpdateContactRequest true "Customer update request"
// @Success      200 {object} APIResponse[partnerapp.ContactResponse]
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /businesses/{business_id}/customers/{id} [put]
func (h *CustomerHandler) Update(c *gin.Context) { h.update(c) }

// Remove godoc
// @ID           removeCustomer
// @Summary      Delete a customer
// @Description  Moves an active customer to the trash. Deleting a trashed customer removes it for good.
// @Tags         customers
// @Produce      json
// @Param        business_id path string true "Business ID" format(uuid)
// @Param        id path string true "Customer ID" format(uuid)
// @Success      200 {object} APIResponse[common.RemoveResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /businesses/{business_id}/customers/{id} [delete]
func (h *CustomerHandler) Remove(c *gin.Context) { h.remove(c) }

// Restore godoc
// @ID           restoreCustomer
// @Summary      Restore a customer from the trash
// @Tags         customers
// @Produce      json
// @Param        business_id path string true "Business ID" format(uuid)
// @Param        id path string true "Customer ID" format(uuid)
// @Success      200 {object} APIResponse[partnerapp.ContactResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /businesses/{business_id}/customers/{id}/restore [post]
func (h *CustomerHandler) Restore(c *gin.Context) { h.restore(c) }

// PermanentRemove godoc
// @ID           permanentRemoveCustomer
// @Summary      Permanently delete a trashed customer
// @Tags         customers
// @Produce      json
// @Param        business_id path string true "Business ID" format(uuid)
// @Param        id path string true "Customer ID" format(uuid)
// @Success      200 {object} APIResponse[common.RemoveResponse]
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /businesses/{business_id}/customers/{id}/permanent [delete]
func (h *CustomerHandler) PermanentRemove(c *gin.Context) { h.permanentRemove(c) }

type supplierResource = resource[partnerapp.SupplierResponse, partnerapp.CreateContactRequest, partnerapp.UpdateContactRequest]

// SupplierHandler handles supplier-related API endpoints
type SupplierHandler struct {
	supplierResource
}

// NewSupplierHandler creates a new SupplierHandler
func NewSupplierHandler(supplierService *partnerapp.SupplierService) *SupplierHandler {
	return &SupplierHandler{
		supplierResource: supplierResource{service: supplierService, scope: businessScope, idParam: "id"},
	}
}

// List godoc
// @ID           listSuppliers
// @Summary      List suppliers
// @Description  Returns a page of the business's active suppliers, or of its trash when trashed=true
// @Tags         suppliers
// @Produce      json
// @Param        business_id path string true "Business ID" format(uuid)
// @Param        search query string false "Name or email filter"
// @Param        trashed query bool false "List the trash instead of active suppliers"
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20)
// @Success      200 {object} APIResponse[[]partnerapp.ContactResponse]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /businesses/{business_id}/suppliers [get]
func (h *SupplierHandler) List(c *gin.Context) { h.list(c) }

// Create godoc
// @ID           createSupplier
// @Summary      Create a supplier
// @Description  Supplier emails are unique per business, trashed suppliers included
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Param        business_id path string true "Business ID" format(uuid)
// @Param        request body partnerapp.CreateContactRequest true "Supplier creation request"
// @Success      201 {object} APIResponse[partnerapp.ContactResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /businesses/{business_id}/suppliers [post]
func (h *SupplierHandler) Create(c *gin.Context) { h.create(c) }

// Get godoc
// @ID           getSupplier
// @Summary      Get a supplier
// @Tags         suppliers
// @Produce      json
// @Param        business_id path string true "Business ID" format(uuid)
// @Param        id path string true "Supplier ID" format(uuid)
// @Success      200 {object} APIResponse[partnerapp.ContactResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /businesses/{business_id}/suppliers/{id} [get]
func (h *SupplierHandler) Get(c *gin.Context) { h.get(c) }

// Show godoc
// @ID           showSupplier
// @Summary      View a supplier
// @Description  Like get, but redirects to the supplier list when the supplier does not exist
// @Tags         suppliers
// @Produce      json
// @Param        business_id path string true "Business ID" format(uuid)
// @Param        id path string true "Supplier ID" format(uuid)
// @Success      200 {object} APIResponse[partnerapp.ContactResponse]
// @Success      303 "Redirect to the supplier list"
// @Security     BearerAuth
// @Router       /businesses/{business_id}/suppliers/{id}/view [get]
func (h *SupplierHandler) Show(c *gin.Context) { h.show(c) }

// Update godoc
// @ID           updateSupplier
// @Summary      Update a supplier
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Param        business_id path string true "Business ID" format(uuid)
// @Param        id path string true "Supplier ID" format(uuid)
// @Param        request body partnerapp.UpdateContactRequest true "Supplier update request"
// @Success      200 {object} APIResponse[partnerapp.ContactResponse]
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /businesses/{business_id}/suppliers/{id} [put]
func (h *SupplierHandler) Update(c *gin.Context) { h.update(c) }

// Remove godoc
// @ID           removeSupplier
// @Summary      Delete a supplier
// @Description  Moves an active supplier to the trash. Deleting a trashed supplier removes it for good.
// @Tags         suppliers
// @Produce      json
// @Param        business_id path string true "Business ID" format(uuid)
// @Param        id path string true "Supplier ID" format(uuid)
// @Success      200 {object} APIResponse[common.RemoveResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /businesses/{business_id}/suppliers/{id} [delete]
func (h *SupplierHandler) Remove(c *gin.Context) { h.remove(c) }

// Restore godoc
// @ID           restoreSupplier
// @Summary      Restore a supplier from the trash
// @Tags         suppliers
// @Produce      json
// @Param        business_id path string true "Business ID" format(uuid)
// @Param        id path string true "Supplier ID" format(uuid)
// @Success      200 {object} APIResponse[partnerapp.ContactResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /businesses/{business_id}/suppliers/{id}/restore [post]
func (h *SupplierHandler) Restore(c *gin.Context) { h.restore(c) }

// PermanentRemove godoc
// @ID           permanentRemoveSupplier
// @Summary      Permanently delete a trashed supplier
// @Tags         suppliers
// @Produce      json
// @Param        business_id path string true "Business ID" format(uuid)
// @Param        id path string true "Supplier ID" format(uuid)
// @Success      200 {object} APIResponse[common.RemoveResponse]
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /businesses/{business_id}/suppliers/{id}/permanent [delete]
func (h *SupplierHandler) PermanentRemove(c *gin.Context) { h.permanentRemove(c) }
