package handler

import (
	"github.com/gin-gonic/gin"
	tradeapp "github.com/pos/backend/internal/application/trade"
)

type purchaseResource = resource[tradeapp.PurchaseResponse, tradeapp.CreatePurchaseRequest, tradeapp.UpdatePurchaseRequest]

// PurchaseHandler handles purchase-related API endpoints
type PurchaseHandler struct {
	purchaseResource
}

// NewPurchaseHandler creates a new PurchaseHandler
func NewPurchaseHandler(purchaseService *tradeapp.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseResource: purchaseResource{service: purchaseService, scope: businessScope, idParam: "id"},
	}
}

// List godoc
// @ID           listPurchases
// @Summary      List purchases
// @Description  Returns a page of the business's active purchases, or of its trash when trashed=true
// @Tags         purchases
// @Produce      json
// @Param        business_id path string true "Business ID" format(uuid)
// @Param        search query string false "Notes filter"
// @Param        trashed query bool false "List the trash instead of active purchases"
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20)
// @Success      200 {object} APIResponse[[]tradeapp.PurchaseResponse]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /businesses/{business_id}/purchases [get]
func (h *PurchaseHandler) List(c *gin.Context) { h.list(c) }

// Create godoc
// @ID           createPurchase
// @Summary      Create a purchase
// @Description  Adds every line's quantity to its product's stock in the same transaction
// @Tags         purchases
// @Accept       json
// @Produce      json
// @Param        business_id path string true "Business ID" format(uuid)
// @Param        request body tradeapp.CreatePurchaseRequest true "Purchase creation request"
// @Success      201 {object} APIResponse[tradeapp.PurchaseResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /businesses/{business_id}/purchases [post]
func (h *PurchaseHandler) Create(c *gin.Context) { h.create(c) }

// Get godoc
// @ID           getPurchase
// @Summary      Get a purchase
// @Tags         purchases
// @Produce      json
// @Param        business_id path string true "Business ID" format(uuid)
// @Param        id path string true "Purchase ID" format(uuid)
// @Success      200 {object} APIResponse[tradeapp.PurchaseResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /businesses/{business_id}/purchases/{id} [get]
func (h *PurchaseHandler) Get(c *gin.Context) { h.get(c) }

// Show godoc
// @ID           showPurchase
// @Summary      View a purchase
// @Description  Like get, but redirects to the purchase list when the purchase does not exist
// @Tags         purchases
// @Produce      json
// @Param        business_id path string true "Business ID" format(uuid)
// @Param        id path string true "Purchase ID" format(uuid)
// @Success      200 {object} APIResponse[tradeapp.PurchaseResponse]
// @Success      303 "Redirect to the purchase list"
// @Security     BearerAuth
// @Router       /businesses/{business_id}/purchases/{id}/view [get]
func (h *PurchaseHandler) Show(c *gin.Context) { h.show(c) }

// Update godoc
// @ID           updatePurchase
// @Summary      Update a purchase
// @Description  Replacing the lines applies only the per-product difference to stock
// @Tags         purchases
// @Accept       json
// @Produce      json
// @Param        business_id path string true "Business ID" format(uuid)
// @Param        id path string true "Purchase ID" format(uuid)
// @Param        request body tradeapp.UpdatePurchaseRequest true "Purchase update request"
// @Success      200 {object} APIResponse[tradeapp.PurchaseResponse]
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /businesses/{business_id}/purchases/{id} [put]
func (h *PurchaseHandler) Update(c *gin.Context) { h.update(c) }

// Remove godoc
// @ID           removePurchase
// @Summary      Delete a purchase
// @Description  Moves an active purchase to the trash and takes its quantities back out of stock. Deleting a trashed purchase removes it for good.
// @Tags         purchases
// @Produce      json
// @Param        business_id path string true "Business ID" format(uuid)
// @Param        id path string true "Purchase ID" format(uuid)
// @Success      200 {object} APIResponse[common.RemoveResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /businesses/{business_id}/purchases/{id} [delete]
func (h *PurchaseHandler) Remove(c *gin.Context) { h.remove(c) }

// Restore godoc
// @ID           restorePurchase
// @Summary      Restore a purchase from the trash
// @Description  Re-applies the purchase's quantities to stock
// @Tags         purchases
// @Produce      json
// @Param        business_id path string true "Business ID" format(uuid)
// @Param        id path string true "Purchase ID" format(uuid)
// @Success      200 {object} APIResponse[tradeapp.PurchaseResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /businesses/{business_id}/purchases/{id}/restore [post]
func (h *PurchaseHandler) Restore(c *gin.Context) { h.restore(c) }

// PermanentRemove godoc
// @ID           permanentRemovePurchase
// @Summary      Permanently delete a trashed purchase
// @Tags         purchases
// @Produce      json
// @Param        business_id path string true "Business ID" format(uuid)
// @Param        id path string true "Purchase ID" format(uuid)
// @Success      200 {object} APIResponse[common.RemoveResponse]
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /businesses/{business_id}/purchases/{id}/permanent [delete]
func (h *PurchaseHandler) PermanentRemove(c *gin.Context) { h.permanentRemove(c) }

type orderResource = resource[tradeapp.OrderResponse, tradeapp.CreateOrderRequest, tradeapp.UpdateOrderRequest]

// OrderHandler handles order-related API endpoints
type OrderHandler struct {
	orderResource
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService *tradeapp.OrderService) *OrderHandler {
	return &OrderHandler{
		orderResource: orderResource{service: orderService, scope: businessScope, idParam: "id"},
	}
}

// List godoc
// @ID           listOrders
// @Summary      List orders
// @Description  Returns a page of the business's active orders, or of its trash when trashed=true
// @Tags         orders
// @Produce      json
// @Param        business_id path string true "Business ID" format(uuid)
// @Param        search query string false "Notes filter"
// @Param        trashed query bool false "List the trash instead of active orders"
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20)
// @Success      200 {object} APIResponse[[]tradeapp.OrderResponse]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /businesses/{business_id}/orders [get]
func (h *OrderHandler) List(c *gin.Context) { h.list(c) }

// Create godoc
// @ID           createOrder
// @Summary      Create an order
// @Description  Takes every line's quantity out of its product's stock in the same transaction
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        business_id path string true "Business ID" format(uuid)
// @Param        request body tradeapp.CreateOrderRequest true "Order creation request"
// @Success      201 {object} APIResponse[tradeapp.OrderResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /businesses/{business_id}/orders [post]
func (h *OrderHandler) Create(c *gin.Context) { h.create(c) }

// Get godoc
// @ID           getOrder
// @Summary      Get an order
// @Tags         orders
// @Produce      json
// @Param        business_id path string true "Business ID" format(uuid)
// @Param        id path string true "Order ID" format(uuid)
// @Success      200 {object} APIResponse[tradeapp.OrderResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /businesses/{business_id}/orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) { h.get(c) }

// Show godoc
// @ID           showOrder
// @Summary      View an order
// @Description  Like get, but redirects to the order list when the order does not exist
// @Tags         orders
// @Produce      json
// @Param        business_id path string true "Business ID" format(uuid)
// @Param        id path string true "Order ID" format(uuid)
// @Success      200 {object} APIResponse[tradeapp.OrderResponse]
// @Success      303 "Redirect to the order list"
// @Security     BearerAuth
// @Router       /businesses/{business_id}/orders/{id}/view [get]
func (h *OrderHandler) Show(c *gin.Context) { h.show(c) }

// Update godoc
// @ID           updateOrder
// @Summary      Update an order
// @Description  Replacing the lines applies only the per-product difference to stock
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        business_id path string true "Business ID" format(uuid)
// @Param        id path string true "Order ID" format(uuid)
// @Param        request body tradeapp.UpdateOrderRequest true "Order update request"
// @Success      200 {object} APIResponse[tradeapp.OrderResponse]
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /businesses/{business_id}/orders/{id} [put]
func (h *OrderHandler) Update(c *gin.Context) { h.update(c) }

// Remove godoc
// @ID           removeOrder
// @Summary      Delete an order
// @Description  Moves an active order to the trash and returns its quantities to stock. Deleting a trashed order removes it for good.
// @Tags         orders
// @Produce      json
// @Param        business_id path string true "Business ID" format(uuid)
// @Param        id path string true "Order ID" format(uuid)
// @Success      200 {object} APIResponse[common.RemoveResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /businesses/{business_id}/orders/{id} [delete]
func (h *OrderHandler) Remove(c *gin.Context) { h.remove(c) }

// Restore godoc
// @ID           restoreOrder
// @Summary      Restore an order from the trash
// @Description  Takes the order's quantities out of stock again
// @Tags         orders
// @Produce      json
// @Param        business_id path string true "Business ID" format(uuid)
// @Param        id path string true "Order ID" format(uuid)
// @Success      200 {object} APIResponse[tradeapp.OrderResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /businesses/{business_id}/orders/{id}/restore [post]
func (h *OrderHandler) Restore(c *gin.Context) { h.restore(c) }

// PermanentRemove godoc
// @ID           permanentRemoveOrder
// @Summary      Permanently delete a trashed order
// @Tags         orders
// @Produce      json
// @Param        business_id path string true "Business ID" format(uuid)
// @Param        id path string true "Order ID" format(uuid)
// @Success      200 {object} APIResponse[common.RemoveResponse]
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /businesses/{business_id}/orders/{id}/permanent [delete]
func (h *OrderHandler) PermanentRemove(c *gin.Context) { h.permanentRemove(c) }

// InventoryHandler handles stock reporting endpoints
type InventoryHandler struct {
	BaseHandler
	inventoryService *tradeapp.InventoryService
}

// NewInventoryHandler creates a new InventoryHandler
func NewInventoryHandler(inventoryService *tradeapp.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// Audit godoc
// @ID           auditInventory
// @Summary      Audit stock levels
// @Description  Explains every active product's stock through the active purchases and orders that moved it
// @Tags         inventory
// @Produce      json
// @Param        business_id path string true "Business ID" format(uuid)
// @Success      200 {object} APIResponse[tradeapp.StockAuditResponse]
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /businesses/{business_id}/inventory/audit [get]
func (h *InventoryHandler) Audit(c *gin.Context) {
	businessID, ok := businessScope(&h.BaseHandler, c)
	if !ok {
		return
	}

	audit, err := h.inventoryService.Audit(c.Request.Context(), businessID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, audit)
}
