package router_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	businessapp "github.com/pos/backend/internal/application/business"
	catalogapp "github.com/pos/backend/internal/application/catalog"
	partnerapp "github.com/pos/backend/internal/application/partner"
	taskapp "github.com/pos/backend/internal/application/task"
	tradeapp "github.com/pos/backend/internal/application/trade"
	"github.com/pos/backend/internal/domain/shared"
	"github.com/pos/backend/internal/infrastructure/auth"
	"github.com/pos/backend/internal/infrastructure/cache"
	"github.com/pos/backend/internal/infrastructure/config"
	"github.com/pos/backend/internal/infrastructure/persistence"
	"github.com/pos/backend/internal/interfaces/http/handler"
	"github.com/pos/backend/internal/interfaces/http/middleware"
	"github.com/pos/backend/internal/interfaces/http/router"
	"github.com/pos/backend/tests/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testJWTConfig = config.JWTConfig{
	Secret: "test-secret-that-is-long-enough-for-hs256",
	Issuer: "pos-test",
}

type testAPI struct {
	engine *gin.Engine
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	middleware.SetupValidator()

	db := testutil.NewSQLiteDB(t)
	businessRepo := persistence.NewGormBusinessRepository(db)
	categoryRepo := persistence.NewGormCategoryRepository(db)
	productRepo := persistence.NewGormProductRepository(db)
	customerRepo := persistence.NewGormCustomerRepository(db)
	supplierRepo := persistence.NewGormSupplierRepository(db)
	purchaseRepo := persistence.NewGormPurchaseRepository(db)
	orderRepo := persistence.NewGormOrderRepository(db)
	taskRepo := persistence.NewGormTaskRepository(db)
	txScope := persistence.NewGormTransactionScope(db)
	idempotency := cache.NewInMemoryIdempotencyStore()
	t.Cleanup(func() { _ = idempotency.Close() })

	businessService := businessapp.NewBusinessService(businessRepo)
	jwtService := auth.NewJWTService(testJWTConfig)

	engine := gin.New()
	r := router.NewRouter(engine)
	r.Use(middleware.RequestID())
	router.RegisterAPI(r, router.Handlers{
		System:    handler.NewSystemHandler("test", nil),
		Business:  handler.NewBusinessHandler(businessService),
		Category:  handler.NewCategoryHandler(catalogapp.NewCategoryService(categoryRepo)),
		Product:   handler.NewProductHandler(catalogapp.NewProductService(productRepo, categoryRepo)),
		Customer:  handler.NewCustomerHandler(partnerapp.NewCustomerService(customerRepo)),
		Supplier:  handler.NewSupplierHandler(partnerapp.NewSupplierService(supplierRepo)),
		Purchase:  handler.NewPurchaseHandler(tradeapp.NewPurchaseService(purchaseRepo, txScope)),
		Order:     handler.NewOrderHandler(tradeapp.NewOrderService(orderRepo, txScope)),
		Inventory: handler.NewInventoryHandler(tradeapp.NewInventoryService(productRepo, purchaseRepo, orderRepo)),
		Task:      handler.NewTaskHandler(taskapp.NewTaskService(taskRepo)),
	}, router.Guards{
		Auth:        middleware.JWTAuthMiddleware(jwtService),
		Business:    middleware.BusinessAuthorization(businessService),
		Idempotency: middleware.Idempotency(idempotency, time.Hour, nil),
	})
	r.Setup()

	return &testAPI{engine: engine}
}

type apiClient struct {
	t       *testing.T
	api     *testAPI
	token   string
	headers map[string]string
}

func (a *testAPI) as(t *testing.T, userID uuid.UUID, role string) *apiClient {
	t.Helper()
	token := testutil.SignAccessToken(t, testJWTConfig, userID, role, time.Hour)
	return &apiClient{t: t, api: a, token: token}
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code string `json:"code"`
	} `json:"error"`
}

func (c *apiClient) do(method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	c.t.Helper()

	var req *http.Request
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(c.t, err)
		req = httptest.NewRequest(method, path, strings.NewReader(string(raw)))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	c.api.engine.ServeHTTP(w, req)

	var env envelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(c.t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

// must performs a request that is expected to succeed and decodes its data into out
func (c *apiClient) must(method, path string, body any, wantStatus int, out any) {
	c.t.Helper()
	w, env := c.do(method, path, body)
	require.Equal(c.t, wantStatus, w.Code, w.Body.String())
	if out != nil {
		require.NoError(c.t, json.Unmarshal(env.Data, out))
	}
}

type idOnly struct {
	ID uuid.UUID `json:"id"`
}

type productView struct {
	ID    uuid.UUID `json:"id"`
	Stock int       `json:"stock"`
	State string    `json:"state"`
}

func TestAPI_RequiresAuthentication(t *testing.T) {
	api := newTestAPI(t)
	anonymous := &apiClient{t: t, api: api}

	w, env := anonymous.do(http.MethodGet, "/api/v1/businesses", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	require.NotNil(t, env.Error)

	w, _ = anonymous.do(http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAPI_BusinessScopeIsolation(t *testing.T) {
	api := newTestAPI(t)
	alice := api.as(t, uuid.New(), shared.RoleUser)
	bob := api.as(t, uuid.New(), shared.RoleUser)

	var shop idOnly
	alice.must(http.MethodPost, "/api/v1/businesses", map[string]any{"name": "Alice Shop", "currency": "eur"}, http.StatusCreated, &shop)

	var product idOnly
	alice.must(http.MethodPost, fmt.Sprintf("/api/v1/businesses/%s/products", shop.ID),
		map[string]any{"name": "Tea", "price": 2.5, "opening_stock": 10}, http.StatusCreated, &product)

	w, env := bob.do(http.MethodGet, fmt.Sprintf("/api/v1/businesses/%s/products/%s", shop.ID, product.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "ERR_NOT_FOUND", env.Error.Code)

	w, _ = bob.do(http.MethodGet, fmt.Sprintf("/api/v1/businesses/%s", shop.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var list []idOnly
	bob.must(http.MethodGet, "/api/v1/businesses", nil, http.StatusOK, &list)
	assert.Empty(t, list)
}

func TestAPI_PurchaseMovesStock(t *testing.T) {
	api := newTestAPI(t)
	owner := api.as(t, uuid.New(), shared.RoleUser)

	var shop idOnly
	owner.must(http.MethodPost, "/api/v1/businesses", map[string]any{"name": "Corner Shop"}, http.StatusCreated, &shop)
	base := "/api/v1/businesses/" + shop.ID.String()

	var product, supplier idOnly
	owner.must(http.MethodPost, base+"/products", map[string]any{"name": "Tea", "price": 2, "opening_stock": 10}, http.StatusCreated, &product)
	owner.must(http.MethodPost, base+"/suppliers", map[string]any{"name": "Leaf Co", "email": "sales@leaf.example"}, http.StatusCreated, &supplier)

	var purchase idOnly
	owner.must(http.MethodPost, base+"/purchases", map[string]any{
		"supplier_id": supplier.ID,
		"items":       []map[string]any{{"product_id": product.ID, "quantity": 4, "cost": 1.25}},
	}, http.StatusCreated, &purchase)

	var view productView
	owner.must(http.MethodGet, base+"/products/"+product.ID.String(), nil, http.StatusOK, &view)
	assert.Equal(t, 14, view.Stock)

	// trash, then purge
	owner.must(http.MethodDelete, base+"/purchases/"+purchase.ID.String(), nil, http.StatusOK, nil)
	owner.must(http.MethodGet, base+"/products/"+product.ID.String(), nil, http.StatusOK, &view)
	assert.Equal(t, 10, view.Stock)

	var removed struct {
		Result string `json:"result"`
	}
	owner.must(http.MethodDelete, base+"/purchases/"+purchase.ID.String(), nil, http.StatusOK, &removed)
	assert.Equal(t, "permanently_deleted", removed.Result)

	w, _ := owner.do(http.MethodGet, base+"/purchases/"+purchase.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var audit tradeapp.StockAuditResponse
	owner.must(http.MethodGet, base+"/inventory/audit", nil, http.StatusOK, &audit)
	require.Len(t, audit.Entries, 1)
	assert.Equal(t, 10, audit.Entries[0].Opening)
}

func TestAPI_ShowRedirectsToList(t *testing.T) {
	api := newTestAPI(t)
	owner := api.as(t, uuid.New(), shared.RoleUser)

	var shop idOnly
	owner.must(http.MethodPost, "/api/v1/businesses", map[string]any{"name": "Corner Shop"}, http.StatusCreated, &shop)

	w, _ := owner.do(http.MethodGet, fmt.Sprintf("/api/v1/businesses/%s/customers/%s/view", shop.ID, uuid.New()), nil)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, fmt.Sprintf("/api/v1/businesses/%s/customers", shop.ID), w.Header().Get("Location"))

	w, _ = owner.do(http.MethodGet, fmt.Sprintf("/api/v1/businesses/%s/view", uuid.New()), nil)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/api/v1/businesses", w.Header().Get("Location"))
}

func TestAPI_TrashedBusinessIsClosed(t *testing.T) {
	api := newTestAPI(t)
	owner := api.as(t, uuid.New(), shared.RoleUser)

	var shop idOnly
	owner.must(http.MethodPost, "/api/v1/businesses", map[string]any{"name": "Corner Shop"}, http.StatusCreated, &shop)
	base := "/api/v1/businesses/" + shop.ID.String()

	owner.must(http.MethodDelete, base, nil, http.StatusOK, nil)

	w, env := owner.do(http.MethodGet, base+"/products", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "ERR_INVALID_STATE", env.Error.Code)

	var trashed []idOnly
	owner.must(http.MethodGet, "/api/v1/businesses?trashed=true", nil, http.StatusOK, &trashed)
	require.Len(t, trashed, 1)

	owner.must(http.MethodPost, base+"/restore", nil, http.StatusOK, nil)
	owner.must(http.MethodGet, base+"/products", nil, http.StatusOK, nil)
}

func TestAPI_CustomerEmailUniquePerBusiness(t *testing.T) {
	api := newTestAPI(t)
	owner := api.as(t, uuid.New(), shared.RoleUser)

	var first, second idOnly
	owner.must(http.MethodPost, "/api/v1/businesses", map[string]any{"name": "First"}, http.StatusCreated, &first)
	owner.must(http.MethodPost, "/api/v1/businesses", map[string]any{"name": "Second"}, http.StatusCreated, &second)

	customer := map[string]any{"name": "Dana", "email": "dana@example.com"}
	owner.must(http.MethodPost, "/api/v1/businesses/"+first.ID.String()+"/customers", customer, http.StatusCreated, nil)
	owner.must(http.MethodPost, "/api/v1/businesses/"+second.ID.String()+"/customers", customer, http.StatusCreated, nil)

	w, env := owner.do(http.MethodPost, "/api/v1/businesses/"+first.ID.String()+"/customers",
		map[string]any{"name": "Dana Again", "email": "DANA@example.com"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "ERR_ALREADY_EXISTS", env.Error.Code)
}

func TestAPI_TasksRequireAdmin(t *testing.T) {
	api := newTestAPI(t)
	user := api.as(t, uuid.New(), shared.RoleUser)
	admin := api.as(t, uuid.New(), shared.RoleAdmin)

	w, env := user.do(http.MethodGet, "/api/v1/tasks", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "ERR_FORBIDDEN", env.Error.Code)

	var task idOnly
	admin.must(http.MethodPost, "/api/v1/tasks", map[string]any{"title": "Count the shelves", "label": "feature"}, http.StatusCreated, &task)
	admin.must(http.MethodDelete, "/api/v1/tasks/"+task.ID.String(), nil, http.StatusOK, nil)

	var trashed []idOnly
	admin.must(http.MethodGet, "/api/v1/tasks?trashed=true", nil, http.StatusOK, &trashed)
	assert.Len(t, trashed, 1)

	admin.must(http.MethodDelete, "/api/v1/tasks/"+task.ID.String()+"/permanent", nil, http.StatusOK, nil)
	w, _ = admin.do(http.MethodGet, "/api/v1/tasks/"+task.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAPI_OrderReplayIsRejected(t *testing.T) {
	api := newTestAPI(t)
	owner := api.as(t, uuid.New(), shared.RoleUser)

	var shop idOnly
	owner.must(http.MethodPost, "/api/v1/businesses", map[string]any{"name": "Kiosk"}, http.StatusCreated, &shop)
	base := "/api/v1/businesses/" + shop.ID.String()

	var product, customer idOnly
	owner.must(http.MethodPost, base+"/products", map[string]any{"name": "Water", "price": 1, "opening_stock": 5}, http.StatusCreated, &product)
	owner.must(http.MethodPost, base+"/customers", map[string]any{"name": "Walk-in", "email": "walkin@kiosk.example"}, http.StatusCreated, &customer)

	order := map[string]any{
		"customer_id": customer.ID,
		"items":       []map[string]any{{"product_id": product.ID, "quantity": 2, "price": 1}},
	}
	owner.headers = map[string]string{middleware.IdempotencyKeyHeader: "till-1-0042"}
	owner.must(http.MethodPost, base+"/orders", order, http.StatusCreated, nil)

	w, env := owner.do(http.MethodPost, base+"/orders", order)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "ERR_CONFLICT", env.Error.Code)

	owner.headers = nil
	var view productView
	owner.must(http.MethodGet, base+"/products/"+product.ID.String(), nil, http.StatusOK, &view)
	assert.Equal(t, 3, view.Stock, "the replay did not sell again")
}
