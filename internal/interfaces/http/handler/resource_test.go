package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pos/backend/internal/application/common"
	"github.com/pos/backend/internal/domain/business"
	"github.com/pos/backend/internal/domain/shared"
	"github.com/pos/backend/internal/interfaces/http/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type widget struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type createWidget struct {
	Name string `json:"name" binding:"required,max=10"`
}

type updateWidget struct {
	Name *string `json:"name" binding:"omitempty,max=10"`
}

type mockWidgetService struct {
	mock.Mock
}

func widgetOrNil(v any) *widget {
	if v == nil {
		return nil
	}
	return v.(*widget)
}

func (m *mockWidgetService) Create(ctx context.Context, scope uuid.UUID, req createWidget) (*widget, error) {
	args := m.Called(ctx, scope, req)
	return widgetOrNil(args.Get(0)), args.Error(1)
}

func (m *mockWidgetService) Get(ctx context.Context, scope, id uuid.UUID) (*widget, error) {
	args := m.Called(ctx, scope, id)
	return widgetOrNil(args.Get(0)), args.Error(1)
}

func (m *mockWidgetService) Show(ctx context.Context, scope, id uuid.UUID) (*widget, error) {
	args := m.Called(ctx, scope, id)
	return widgetOrNil(args.Get(0)), args.Error(1)
}

func (m *mockWidgetService) List(ctx context.Context, scope uuid.UUID, filter common.ListFilter) ([]widget, int64, error) {
	args := m.Called(ctx, scope, filter)
	return args.Get(0).([]widget), args.Get(1).(int64), args.Error(2)
}

func (m *mockWidgetService) Update(ctx context.Context, scope, id uuid.UUID, req updateWidget) (*widget, error) {
	args := m.Called(ctx, scope, id, req)
	return widgetOrNil(args.Get(0)), args.Error(1)
}

func (m *mockWidgetService) Remove(ctx context.Context, scope, id uuid.UUID) (shared.RemoveResult, error) {
	args := m.Called(ctx, scope, id)
	return args.Get(0).(shared.RemoveResult), args.Error(1)
}

func (m *mockWidgetService) Restore(ctx context.Context, scope, id uuid.UUID) (*widget, error) {
	args := m.Called(ctx, scope, id)
	return widgetOrNil(args.Get(0)), args.Error(1)
}

func (m *mockWidgetService) PermanentRemove(ctx context.Context, scope, id uuid.UUID) error {
	return m.Called(ctx, scope, id).Error(0)
}

type widgetHandler struct {
	resource[widget, createWidget, updateWidget]
}

func newWidgetRouter(t *testing.T, svc *mockWidgetService, b *business.Business) *gin.Engine {
	t.Helper()

	h := &widgetHandler{resource[widget, createWidget, updateWidget]{service: svc, scope: businessScope, idParam: "id"}}
	router := gin.New()
	group := router.Group("/api/v1/businesses/:business_id/widgets")
	if b != nil {
		group.Use(inBusiness(b))
	}
	group.GET("", h.list)
	group.POST("", h.create)
	group.GET("/:id", h.get)
	group.GET("/:id/view", h.show)
	group.PUT("/:id", h.update)
	group.DELETE("/:id", h.remove)
	group.POST("/:id/restore", h.restore)
	group.DELETE("/:id/permanent", h.permanentRemove)
	return router
}

func request(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestResource_Create(t *testing.T) {
	b := newBusiness(t)
	base := "/api/v1/businesses/" + b.ID.String() + "/widgets"

	t.Run("created", func(t *testing.T) {
		svc := new(mockWidgetService)
		created := &widget{ID: uuid.New(), Name: "Cog"}
		svc.On("Create", mock.Anything, b.ID, createWidget{Name: "Cog"}).Return(created, nil)

		w := request(newWidgetRouter(t, svc, b), http.MethodPost, base, `{"name":"Cog"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		resp := decodeResponse(t, w)
		assert.True(t, resp.Success)
		assert.Equal(t, created.ID.String(), resp.Data.(map[string]any)["id"])
		svc.AssertExpectations(t)
	})

	t.Run("validation failure never reaches the service", func(t *testing.T) {
		svc := new(mockWidgetService)

		w := request(newWidgetRouter(t, svc, b), http.MethodPost, base, `{"name":"far too long a name"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeResponse(t, w)
		assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)
		svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("taken", func(t *testing.T) {
		svc := new(mockWidgetService)
		svc.On("Create", mock.Anything, b.ID, createWidget{Name: "Cog"}).Return(nil, shared.Taken("Widget", "name"))

		w := request(newWidgetRouter(t, svc, b), http.MethodPost, base, `{"name":"Cog"}`)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("missing business context", func(t *testing.T) {
		svc := new(mockWidgetService)

		w := request(newWidgetRouter(t, svc, nil), http.MethodPost, base, `{"name":"Cog"}`)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestResource_List(t *testing.T) {
	b := newBusiness(t)
	svc := new(mockWidgetService)
	items := []widget{{ID: uuid.New(), Name: "Cog"}, {ID: uuid.New(), Name: "Gear"}}
	svc.On("List", mock.Anything, b.ID, common.ListFilter{Trashed: true, Page: 2, PageSize: 2}).Return(items, int64(5), nil)

	router := newWidgetRouter(t, svc, b)
	w := request(router, http.MethodGet, "/api/v1/businesses/"+b.ID.String()+"/widgets?trashed=true&page=2&page_size=2", "")

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.Len(t, resp.Data, 2)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, int64(5), resp.Meta.Total)
	assert.Equal(t, 2, resp.Meta.Page)
	assert.Equal(t, 3, resp.Meta.TotalPages)

	w = request(router, http.MethodGet, "/api/v1/businesses/"+b.ID.String()+"/widgets?page_size=1000", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResource_GetAndShow(t *testing.T) {
	b := newBusiness(t)
	missing := uuid.New()
	svc := new(mockWidgetService)
	svc.On("Get", mock.Anything, b.ID, missing).Return(nil, shared.NotFound("Widget"))
	svc.On("Show", mock.Anything, b.ID, missing).Return(nil, &shared.ListRedirect{Resource: "widgets"})
	router := newWidgetRouter(t, svc, b)
	base := "/api/v1/businesses/" + b.ID.String() + "/widgets"

	w := request(router, http.MethodGet, base+"/"+missing.String(), "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = request(router, http.MethodGet, base+"/"+missing.String()+"/view", "")
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, base, w.Header().Get("Location"))

	w = request(router, http.MethodGet, base+"/nope", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResource_Update(t *testing.T) {
	b := newBusiness(t)
	id := uuid.New()
	name := "Sprocket"
	svc := new(mockWidgetService)
	svc.On("Update", mock.Anything, b.ID, id, updateWidget{Name: &name}).
		Return(nil, shared.NewDomainError(shared.CodeInvalidState, "Widget is in the trash"))

	w := request(newWidgetRouter(t, svc, b), http.MethodPut, "/api/v1/businesses/"+b.ID.String()+"/widgets/"+id.String(), `{"name":"Sprocket"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, dto.ErrCodeInvalidState, decodeResponse(t, w).Error.Code)
}

func TestResource_DeleteLifecycle(t *testing.T) {
	b := newBusiness(t)
	id := uuid.New()
	item := "/api/v1/businesses/" + b.ID.String() + "/widgets/" + id.String()

	svc := new(mockWidgetService)
	svc.On("Remove", mock.Anything, b.ID, id).Return(shared.SoftDeleted, nil).Once()
	svc.On("Remove", mock.Anything, b.ID, id).Return(shared.PermanentlyDeleted, nil).Once()
	svc.On("Restore", mock.Anything, b.ID, id).Return(&widget{ID: id, Name: "Cog"}, nil)
	svc.On("PermanentRemove", mock.Anything, b.ID, id).Return(nil)
	router := newWidgetRouter(t, svc, b)

	w := request(router, http.MethodDelete, item, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "soft_deleted", decodeResponse(t, w).Data.(map[string]any)["result"])

	w = request(router, http.MethodDelete, item, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "permanently_deleted", decodeResponse(t, w).Data.(map[string]any)["result"])

	w = request(router, http.MethodPost, item+"/restore", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = request(router, http.MethodDelete, item+"/permanent", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "permanently_deleted", decodeResponse(t, w).Data.(map[string]any)["result"])

	svc.AssertExpectations(t)
}

func TestResource_UnexpectedError(t *testing.T) {
	b := newBusiness(t)
	id := uuid.New()
	svc := new(mockWidgetService)
	svc.On("PermanentRemove", mock.Anything, b.ID, id).Return(errors.New("disk full"))

	w := request(newWidgetRouter(t, svc, b), http.MethodDelete, "/api/v1/businesses/"+b.ID.String()+"/widgets/"+id.String()+"/permanent", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "disk full")
}
