// Package common holds request and response shapes shared by the application services.
package common

import (
	"context"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/shared"
)

// ListFilter represents the list query accepted by every collection endpoint
type ListFilter struct {
	Search   string `form:"search" binding:"max=100"`
	Trashed  bool   `form:"trashed"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToFilter converts the list filter to a domain filter with defaults applied
func (f ListFilter) ToFilter() shared.Filter {
	filter := shared.DefaultFilter()
	if f.Page > 0 {
		filter.Page = f.Page
	}
	if f.PageSize > 0 {
		filter.PageSize = f.PageSize
	}
	if f.OrderBy != "" {
		filter.OrderBy = f.OrderBy
	}
	if f.OrderDir != "" {
		filter.OrderDir = f.OrderDir
	}
	filter.Search = f.Search
	filter.Trashed = f.Trashed
	return filter
}

// RemoveResponse tells the client which transition a delete performed
type RemoveResponse struct {
	ID     uuid.UUID `json:"id"`
	Result string    `json:"result"`
}

// NewRemoveResponse builds the response of a two-phase delete
func NewRemoveResponse(id uuid.UUID, result shared.RemoveResult) RemoveResponse {
	return RemoveResponse{ID: id, Result: string(result)}
}

// ScopedLister is the read side every scoped repository offers
type ScopedLister[T any] interface {
	List(ctx context.Context, scope uuid.UUID, filter shared.Filter) ([]T, error)
	Count(ctx context.Context, scope uuid.UUID, filter shared.Filter) (int64, error)
}

// ListPage loads one page and the total of the filter's view, converting
// every entity with toResponse.
func ListPage[T, R any](ctx context.Context, repo ScopedLister[T], scope uuid.UUID, f ListFilter, toResponse func(*T) R) ([]R, int64, error) {
	filter := f.ToFilter()
	entities, err := repo.List(ctx, scope, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := repo.Count(ctx, scope, filter)
	if err != nil {
		return nil, 0, err
	}
	responses := make([]R, len(entities))
	for i := range entities {
		responses[i] = toResponse(&entities[i])
	}
	return responses, total, nil
}
