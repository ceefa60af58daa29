package shared

import (
	"context"

	"github.com/google/uuid"
)

// ScopedRepository is the access pattern every scoped entity shares.
// Each method filters by (scope column = scope AND id = id); rows owned by
// another scope are invisible even when the id exists.
type ScopedRepository[T any] interface {
	// Find returns nil, nil when the entity does not exist in scope.
	// Active and trashed entities are both visible.
	Find(ctx context.Context, scope, id uuid.UUID) (*T, error)
	// FindOrThrow returns ErrNotFound when the entity does not exist in scope
	FindOrThrow(ctx context.Context, scope, id uuid.UUID) (*T, error)
	// FindOrRedirect returns a *ListRedirect when the entity does not exist in scope
	FindOrRedirect(ctx context.Context, scope, id uuid.UUID) (*T, error)
	// Create inserts the entity. Uniqueness is the caller's job.
	Create(ctx context.Context, entity *T) error
	// Update writes the entity's mutable columns
	Update(ctx context.Context, entity *T) error
	// Count returns the number of entities in the filter's view
	Count(ctx context.Context, scope uuid.UUID, filter Filter) (int64, error)
	// List returns one page of entities in the filter's view
	List(ctx context.Context, scope uuid.UUID, filter Filter) ([]T, error)
	// Remove trashes an active entity or deletes a trashed one
	Remove(ctx context.Context, scope, id uuid.UUID) (RemoveResult, error)
	// Restore brings a trashed entity back and reports true. Active entities
	// are left untouched and report false.
	Restore(ctx context.Context, scope, id uuid.UUID) (bool, error)
	// PermanentRemove deletes a trashed entity's row
	PermanentRemove(ctx context.Context, scope, id uuid.UUID) error
}

// Filter represents query filter options
type Filter struct {
	Page     int
	PageSize int
	OrderBy  string
	OrderDir string
	Search   string
	// Trashed selects the trash view (deleted_at IS NOT NULL) instead of the active view
	Trashed bool
}

// DefaultFilter returns a filter with default values
func DefaultFilter() Filter {
	return Filter{
		Page:     1,
		PageSize: 20,
		OrderBy:  "created_at",
		OrderDir: "desc",
	}
}

// Offset returns the row offset of the filter's page
func (f Filter) Offset() int {
	if f.Page < 1 {
		return 0
	}
	return (f.Page - 1) * f.PageSize
}

// Paginated represents a paginated result
type Paginated[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

// NewPaginated creates a new paginated result
func NewPaginated[T any](items []T, total int64, page, pageSize int) Paginated[T] {
	totalPages := 0
	if pageSize > 0 {
		totalPages = int(total) / pageSize
		if int(total)%pageSize > 0 {
			totalPages++
		}
	}
	return Paginated[T]{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}
