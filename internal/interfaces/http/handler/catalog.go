package handler

import (
	"github.com/gin-gonic/gin"
	catalogapp "github.com/pos/backend/internal/application/catalog"
)

type categoryResource = resource[catalogapp.CategoryResponse, catalogapp.CreateCategoryRequest, catalogapp.UpdateCategoryRequest]

// CategoryHandler handles category-related API endpoints
type CategoryHandler struct {
	categoryResource
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService *catalogapp.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		categoryResource: categoryResource{service: categoryService, scope: businessScope, idParam: "id"},
	}
}

// List godoc
// @ID           listCategories
// @Summary      List categories
// @Description  Returns a page of the business's active categories, or of its trash when trashed=true
// @Tags         categories
// @Produce      json
// @Param        business_id path string true "Business ID" format(uuid)
// @Param        search query string false "Name filter"
// @Param        trashed query bool false "List the trash instead of active categories"
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20)
// @Success      200 {object} APIResponse[[]catalogapp.CategoryResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /businesses/{business_id}/categories [get]
func (h *CategoryHandler) List(c *gin.Context) { h.list(c) }

// Create godoc
// @ID           createCategory
// @Summary      Create a category
// @Description  Category names are unique per business, trashed categories included
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        business_id path string true "Business ID" format(uuid)
// @Param        request body catalogapp.CreateCategoryRequest true "Category creation request"
// @Success      201 {object} APIResponse[catalogapp.CategoryResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /businesses/{business_id}/categories [post]
func (h *CategoryHandler) Create(c *gin.Context) { h.create(c) }

// Get godoc
// @ID           getCategory
// @Summary      Get a category
// @Tags         categories
// @Produce      json
// @Param        business_id path string true "Business ID" format(uuid)
// @Param        id path string true "Category ID" format(uuid)
// @Success      200 {object} APIResponse[catalogapp.CategoryResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /businesses/{business_id}/categories/{id} [get]
func (h *CategoryHandler) Get(c *gin.Context) { h.get(c) }

// Show godoc
// @ID           showCategory
// @Summary      View a category
// @Description  Like get, but redirects to the category list when the category does not exist
// @Tags         categories
// @Produce      json
// @Param        business_id path string true "Business ID" format(uuid)
// @Param        id path string true "Category ID" format(uuid)
// @Success      200 {object} APIResponse[catalogapp.CategoryResponse]
// @Success      303 "Redirect to the category list"
// @Security     BearerAuth
// @Router       /businesses/{business_id}/categories/{id}/view [get]
func (h *CategoryHandler) Show(c *gin.Context) { h.show(c) }

// Update godoc
// @ID           updateCategory
// @Summary      Update a category
// @Description  Only active categories can be updated
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        business_id path string true "Business ID" format(uuid)
// @Param        id path string true "Category ID" format(uuid)
// @Param        request body catalogapp.UpdateCategoryRequest true "Category update request"
// @Success      200 {object} APIResponse[catalogapp.CategoryResponse]
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /businesses/{business_id}/categories/{id} [put]
func (h *CategoryHandler) Update(c *gin.Context) { h.update(c) }

// Remove godoc
// @ID           removeCategory
// @Summary      Delete a category
// @Description  Moves an active category to the trash. Deleting a trashed category removes it for good.
// @Tags         categories
// @Produce      json
// @Param        business_id path string true "Business ID" format(uuid)
// @Param        id path string true "Category ID" format(uuid)
// @Success      200 {object} APIResponse[common.RemoveResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /businesses/{business_id}/categories/{id} [delete]
func (h *CategoryHandler) Remove(c *gin.Context) { h.remove(c) }

// Restore godoc
// @ID           restoreCategory
// @Summary      Restore a category from the trash
// @Tags         categories
// @Produce      json
// @Param        business_id path string true "Business ID" format(uuid)
// @Param        id path string true "Category ID" format(uuid)
// @Success      200 {object} APIResponse[catalogapp.CategoryResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /businesses/{business_id}/categories/{id}/restore [post]
func (h *CategoryHandler) Restore(c *gin.Context) { h.restore(c) }

// PermanentRemove godoc
// @ID           permanentRemoveCategory
// @Summary      Permanently delete a trashed category
// @Tags         categories
// @Produce      json
// @Param        business_id path string true "Business ID" format(uuid)
// @Param        id path string true "Category ID" format(uuid)
// @Success      200 {object} APIResponse[common.RemoveResponse]
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /businesses/{business_id}/categories/{id}/permanent [delete]
func (h *CategoryHandler) PermanentRemove(c *gin.Context) { h.permanentRemove(c) }

type productResource = resource[catalogapp.ProductResponse, catalogapp.CreateProductRequest, catalogapp.UpdateProductRequest]

// ProductHandler handles product-related API endpoints
type ProductHandler struct {
	productResource
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService *catalogapp.ProductService) *ProductHandler {
	return &ProductHandler{
		productResource: productResource{service: productService, scope: businessScope, idParam: "id"},
	}
}

// List godoc
// @ID           listProducts
// @Summary      List products
// @Description  Returns a page of the business's active products, or of its trash when trashed=true
// @Tags         products
// @Produce      json
// @Param        business_id path string true "Business ID" format(uuid)
// @Param        search query string false "Name filter"
// @Param        trashed query bool false "List the trash instead of active products"
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20)
// @Success      200 {object} APIResponse[[]catalogapp.ProductResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /businesses/{business_id}/products [get]
func (h *ProductHandler) List(c *gin.Context) { h.list(c) }

// Create godoc
// @ID           createProduct
// @Summary      Create a product
// @Description  The opening stock becomes the product's initial stock level
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        business_id path string true "Business ID" format(uuid)
// @Param        request body catalogapp.CreateProductRequest true "Product creation request"
// @Success      201 {object} APIResponse[catalogapp.ProductResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /businesses/{business_id}/products [post]
func (h *ProductHandler) Create(c *gin.Context) { h.create(c) }

// Get godoc
// @ID           getProduct
// @Summary      Get a product
// @Tags         products
// @Produce      json
// @Param        business_id path string true "Business ID" format(uuid)
// @Param        id path string true "Product ID" format(uuid)
// @Success      200 {object} APIResponse[catalogapp.ProductResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /businesses/{business_id}/products/{id} [get]
func (h *ProductHandler) Get(c *gin.Context) { h.get(c) }

// Show godoc
// @ID           showProduct
// @Summary      View a product
// @Description  Like get, but redirects to the product list when the product does not exist
// @Tags         products
// @Produce      json
// @Param        business_id path string true "Business ID" format(uuid)
// @Param        id path string true "Product ID" format(uuid)
// @Success      200 {object} APIResponse[catalogapp.ProductResponse]
// @Success      303 "Redirect to the product list"
// @Security     BearerAuth
// @Router       /businesses/{business_id}/products/{id}/view [get]
func (h *ProductHandler) Show(c *gin.Context) { h.show(c) }

// Update godoc
// @ID           updateProduct
// @Summary      Update a product
// @Description  Stock is not editable; it follows purchases and orders
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        business_id path string true "Business ID" format(uuid)
// @Param        id path string true "Product ID" format(uuid)
// @Param        request body catalogapp.UpdateProductRequest true "Product update request"
// @Success      200 {object} APIResponse[catalogapp.ProductResponse]
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /businesses/{business_id}/products/{id} [put]
func (h *ProductHandler) Update(c *gin.Context) { h.update(c) }

// Remove godoc
// @ID           removeProduct
// @Summary      Delete a product
// @Description  Moves an active product to the trash. Deleting a trashed product removes it for good.
// @Tags         products
// @Produce      json
// @Param        business_id path string true "Business ID" format(uuid)
// @Param        id path string true "Product ID" format(uuid)
// @Success      200 {object} APIResponse[common.RemoveResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /businesses/{business_id}/products/{id} [delete]
func (h *ProductHandler) Remove(c *gin.Context) { h.remove(c) }

// Restore godoc
// @ID           restoreProduct
// @Summary      Restore a product from the trash
// @Tags         products
// @Produce      json
// @Param        business_id path string true "Business ID" format(uuid)
// @Param        id path string true "Product ID" format(uuid)
// @Success      200 {object} APIResponse[catalogapp.ProductResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /businesses/{business_id}/products/{id}/restore [post]
func (h *ProductHandler) Restore(c *gin.Context) { h.restore(c) }

// PermanentRemove godoc
// @ID           permanentRemoveProduct
// @Summary      Permanently delete a trashed product
// @Tags         products
// @Produce      json
// @Param        business_id path string true "Business ID" format(uuid)
// @Param        id path string true "Product ID" format(uuid)
// @Success      200 {object} APIResponse[common.RemoveResponse]
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /businesses/{business_id}/products/{id}/permanent [delete]
func (h *ProductHandler) PermanentRemove(c *gin.Context) { h.permanentRemove(c) }
