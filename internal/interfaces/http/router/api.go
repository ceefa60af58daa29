package router

import (
	"github.com/gin-gonic/gin"
	"github.com/pos/backend/internal/interfaces/http/handler"
	"github.com/pos/backend/internal/interfaces/http/middleware"
)

// Handlers groups every HTTP handler of the POS API
type Handlers struct {
	System    *handler.SystemHandler
	Business  *handler.BusinessHandler
	Category  *handler.CategoryHandler
	Product   *handler.ProductHandler
	Customer  *handler.CustomerHandler
	Supplier  *handler.SupplierHandler
	Purchase  *handler.PurchaseHandler
	Order     *handler.OrderHandler
	Inventory *handler.InventoryHandler
	Task      *handler.TaskHandler
}

// Guards are the authentication steps placed in front of the API
type Guards struct {
	// Auth authenticates the caller (JWT)
	Auth gin.HandlerFunc
	// Business authorizes the caller for the :business_id in the path
	Business gin.HandlerFunc
	// Idempotency, when set, guards the stock-moving creates against replays
	Idempotency gin.HandlerFunc
}

// RegisterAPI wires the POS endpoints onto r. Every business-owned resource
// lives under /businesses/:business_id and passes through the business guard.
func RegisterAPI(r *Router, h Handlers, g Guards) {
	system := NewDomainGroup("system", "/system")
	system.GET("/info", h.System.GetSystemInfo)
	system.GET("/ping", h.System.Ping)
	r.Register(system)

	health := NewDomainGroup("health", "")
	health.GET("/health", h.System.Health)
	r.Register(health)

	businesses := NewDomainGroup("businesses", "/businesses").Use(g.Auth)
	businesses.Lifecycle(middleware.BusinessParam, h.Business)

	owned := businesses.Group("business", "/:"+middleware.BusinessParam).Use(g.Business)
	owned.Group("categories", "/categories").Lifecycle("id", h.Category)
	owned.Group("products", "/products").Lifecycle("id", h.Product)
	owned.Group("customers", "/customers").Lifecycle("id", h.Customer)
	owned.Group("suppliers", "/suppliers").Lifecycle("id", h.Supplier)
	purchases := owned.Group("purchases", "/purchases")
	orders := owned.Group("orders", "/orders")
	if g.Idempotency != nil {
		purchases.Use(g.Idempotency)
		orders.Use(g.Idempotency)
	}
	purchases.Lifecycle("id", h.Purchase)
	orders.Lifecycle("id", h.Order)
	owned.Group("inventory", "/inventory").GET("/audit", h.Inventory.Audit)
	r.Register(businesses)

	tasks := NewDomainGroup("tasks", "/tasks").Use(g.Auth)
	tasks.GET("", h.Task.List)
	tasks.POST("", h.Task.Create)
	tasks.GET("/:id", h.Task.Get)
	tasks.PUT("/:id", h.Task.Update)
	tasks.DELETE("/:id", h.Task.Remove)
	tasks.POST("/:id/restore", h.Task.Restore)
	tasks.DELETE("/:id/permanent", h.Task.PermanentRemove)
	r.Register(tasks)
}
