package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pos/backend/internal/application/common"
	"github.com/pos/backend/internal/domain/shared"
	"github.com/pos/backend/internal/interfaces/http/middleware"
)

// scopedService is the operation set every trashable resource service offers.
// scope is the owning business for business data and the owner for businesses.
type scopedService[R, C, U any] interface {
	Create(ctx context.Context, scope uuid.UUID, req C) (*R, error)
	Get(ctx context.Context, scope, id uuid.UUID) (*R, error)
	Show(ctx context.Context, scope, id uuid.UUID) (*R, error)
	List(ctx context.Context, scope uuid.UUID, filter common.ListFilter) ([]R, int64, error)
	Update(ctx context.Context, scope, id uuid.UUID, req U) (*R, error)
	Remove(ctx context.Context, scope, id uuid.UUID) (shared.RemoveResult, error)
	Restore(ctx context.Context, scope, id uuid.UUID) (*R, error)
	PermanentRemove(ctx context.Context, scope, id uuid.UUID) error
}

// scopeFunc resolves the request's scope. It writes the error response itself
// and reports false when the scope is missing.
type scopeFunc func(h *BaseHandler, c *gin.Context) (uuid.UUID, bool)

// businessScope reads the business resolved by the business authorization middleware
func businessScope(h *BaseHandler, c *gin.Context) (uuid.UUID, bool) {
	businessID := middleware.GetBusinessID(c)
	if businessID == uuid.Nil {
		h.Unauthorized(c, "Business context required")
		return uuid.Nil, false
	}
	return businessID, true
}

// ownerScope reads the authenticated user
func ownerScope(h *BaseHandler, c *gin.Context) (uuid.UUID, bool) {
	actor := middleware.GetActor(c)
	if !actor.IsAuthenticated() {
		h.Unauthorized(c, "Authentication required")
		return uuid.Nil, false
	}
	return actor.UserID, true
}

// resource implements the CRUD and delete lifecycle endpoints on top of a
// scoped service. Concrete handlers wrap it to carry their API documentation.
type resource[R, C, U any] struct {
	BaseHandler
	service scopedService[R, C, U]
	scope   scopeFunc
	idParam string
}

// target resolves both the scope and the path id
func (r *resource[R, C, U]) target(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	scope, ok := r.scope(&r.BaseHandler, c)
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	id, ok := r.parseID(c, r.idParam)
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	return scope, id, true
}

func (r *resource[R, C, U]) list(c *gin.Context) {
	scope, ok := r.scope(&r.BaseHandler, c)
	if !ok {
		return
	}
	filter, ok := r.bindList(c)
	if !ok {
		return
	}

	items, total, err := r.service.List(c.Request.Context(), scope, filter)
	if err != nil {
		r.HandleError(c, err)
		return
	}
	page, pageSize := pageOf(filter)
	r.SuccessWithMeta(c, items, total, page, pageSize)
}

func (r *resource[R, C, U]) create(c *gin.Context) {
	scope, ok := r.scope(&r.BaseHandler, c)
	if !ok {
		return
	}
	var req C
	if !r.bindJSON(c, &req) {
		return
	}

	created, err := r.service.Create(c.Request.Context(), scope, req)
	if err != nil {
		r.HandleError(c, err)
		return
	}
	r.Created(c, created)
}

func (r *resource[R, C, U]) get(c *gin.Context) {
	scope, id, ok := r.target(c)
	if !ok {
		return
	}

	found, err := r.service.Get(c.Request.Context(), scope, id)
	if err != nil {
		r.HandleError(c, err)
		return
	}
	r.Success(c, found)
}

func (r *resource[R, C, U]) show(c *gin.Context) {
	scope, id, ok := r.target(c)
	if !ok {
		return
	}

	found, err := r.service.Show(c.Request.Context(), scope, id)
	if err != nil {
		r.HandleError(c, err)
		return
	}
	r.Success(c, found)
}

func (r *resource[R, C, U]) update(c *gin.Context) {
	scope, id, ok := r.target(c)
	if !ok {
		return
	}
	var req U
	if !r.bindJSON(c, &req) {
		return
	}

	updated, err := r.service.Update(c.Request.Context(), scope, id, req)
	if err != nil {
		r.HandleError(c, err)
		return
	}
	r.Success(c, updated)
}

func (r *resource[R, C, U]) remove(c *gin.Context) {
	scope, id, ok := r.target(c)
	if !ok {
		return
	}

	result, err := r.service.Remove(c.Request.Context(), scope, id)
	if err != nil {
		r.HandleError(c, err)
		return
	}
	r.Success(c, common.NewRemoveResponse(id, result))
}

func (r *resource[R, C, U]) restore(c *gin.Context) {
	scope, id, ok := r.target(c)
	if !ok {
		return
	}

	restored, err := r.service.Restore(c.Request.Context(), scope, id)
	if err != nil {
		r.HandleError(c, err)
		return
	}
	r.Success(c, restored)
}

func (r *resource[R, C, U]) permanentRemove(c *gin.Context) {
	scope, id, ok := r.target(c)
	if !ok {
		return
	}

	if err := r.service.PermanentRemove(c.Request.Context(), scope, id); err != nil {
		r.HandleError(c, err)
		return
	}
	r.Success(c, common.NewRemoveResponse(id, shared.PermanentlyDeleted))
}
