package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/shared"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// ScopedModel is implemented by the persistence model of every scoped entity
type ScopedModel[D any] interface {
	ToDomain() *D
	FromDomain(entity *D)
	ScopeValue() uuid.UUID
	UpdatableColumns() []string
}

// TableOptions describes how a scoped table is queried
type TableOptions struct {
	// Resource names the entity in error messages, e.g. "Product"
	Resource string
	// Collection is the list route a redirect points to, e.g. "products"
	Collection string
	// ScopeColumn is business_id or user_id
	ScopeColumn   string
	SortFields    map[string]bool
	SearchColumns []string
	Preload       []string
	// Purge deletes dependent rows after the parent row was hard deleted
	Purge func(tx *gorm.DB, id uuid.UUID) error
}

// ScopedTable implements shared.ScopedRepository on top of GORM.
// Every statement it issues carries the scope predicate; GORM's implicit
// soft-delete filter is disabled and the lifecycle view is added explicitly.
type ScopedTable[D any, M any, PM interface {
	*M
	ScopedModel[D]
}] struct {
	db   *gorm.DB
	opts TableOptions
}

// NewScopedTable creates a ScopedTable for the model M
func NewScopedTable[D any, M any, PM interface {
	*M
	ScopedModel[D]
}](db *gorm.DB, opts TableOptions) *ScopedTable[D, M, PM] {
	if opts.ScopeColumn == "" {
		opts.ScopeColumn = "business_id"
	}
	if opts.SortFields == nil {
		opts.SortFields = CommonSortFields
	}
	return &ScopedTable[D, M, PM]{db: db, opts: opts}
}

// WithDB returns a copy of the table bound to db, typically a transaction
func (t *ScopedTable[D, M, PM]) WithDB(db *gorm.DB) *ScopedTable[D, M, PM] {
	return &ScopedTable[D, M, PM]{db: db, opts: t.opts}
}

// DB returns the connection the table is bound to
func (t *ScopedTable[D, M, PM]) DB() *gorm.DB {
	return t.db
}

// scoped returns a statement on the model's table restricted to one scope
func (t *ScopedTable[D, M, PM]) scoped(ctx context.Context, scope uuid.UUID) *gorm.DB {
	return t.db.WithContext(ctx).
		Unscoped().
		Model(new(M)).
		Where(t.opts.ScopeColumn+" = ?", scope)
}

func (t *ScopedTable[D, M, PM]) withPreloads(query *gorm.DB) *gorm.DB {
	for _, rel := range t.opts.Preload {
		query = query.Preload(rel)
	}
	return query
}

// Find returns the entity, active or trashed, or nil when it does not exist in scope
func (t *ScopedTable[D, M, PM]) Find(ctx context.Context, scope, id uuid.UUID) (*D, error) {
	var model M
	err := t.withPreloads(t.scoped(ctx, scope).Where("id = ?", id)).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find %s: %w", t.opts.Resource, err)
	}
	return PM(&model).ToDomain(), nil
}

// FindOrThrow returns the entity or a NOT_FOUND domain error
func (t *ScopedTable[D, M, PM]) FindOrThrow(ctx context.Context, scope, id uuid.UUID) (*D, error) {
	entity, err := t.Find(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, shared.NotFound(t.opts.Resource)
	}
	return entity, nil
}

// FindForUpdate returns the entity like FindOrThrow and holds a row lock
// on it until the surrounding transaction ends. Preloaded associations are
// read after the lock is taken.
func (t *ScopedTable[D, M, PM]) FindForUpdate(ctx context.Context, scope, id uuid.UUID) (*D, error) {
	var model M
	err := t.withPreloads(t.scoped(ctx, scope).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id)).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NotFound(t.opts.Resource)
		}
		return nil, fmt.Errorf("failed to lock %s: %w", t.opts.Resource, err)
	}
	return PM(&model).ToDomain(), nil
}

// FindOrRedirect returns the entity or a ListRedirect to the collection
func (t *ScopedTable[D, M, PM]) FindOrRedirect(ctx context.Context, scope, id uuid.UUID) (*D, error) {
	entity, err := t.Find(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, &shared.ListRedirect{Resource: t.opts.Collection}
	}
	return entity, nil
}

// Create inserts the entity and its associations
func (t *ScopedTable[D, M, PM]) Create(ctx context.Context, entity *D) error {
	model := PM(new(M))
	model.FromDomain(entity)
	if err := t.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create %s: %w", t.opts.Resource, err)
	}
	return nil
}

// Update writes the model's updatable columns. Associations are left alone.
func (t *ScopedTable[D, M, PM]) Update(ctx context.Context, entity *D) error {
	model := PM(new(M))
	model.FromDomain(entity)
	result := t.db.WithContext(ctx).
		Unscoped().
		Model(model).
		Where(t.opts.ScopeColumn+" = ?", model.ScopeValue()).
		Select(model.UpdatableColumns()).
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update %s: %w", t.opts.Resource, result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.NotFound(t.opts.Resource)
	}
	return nil
}

// view restricts a scoped statement to the filter's lifecycle view and search
func (t *ScopedTable[D, M, PM]) view(ctx context.Context, scope uuid.UUID, filter shared.Filter) *gorm.DB {
	query := t.scoped(ctx, scope)
	if filter.Trashed {
		query = query.Where("deleted_at IS NOT NULL")
	} else {
		query = query.Where("deleted_at IS NULL")
	}

	if filter.Search != "" && len(t.opts.SearchColumns) > 0 {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		conds := make([]string, len(t.opts.SearchColumns))
		args := make([]any, len(t.opts.SearchColumns))
		for i, col := range t.opts.SearchColumns {
			conds[i] = "LOWER(" + col + ") LIKE ?"
			args[i] = pattern
		}
		query = query.Where("("+strings.Join(conds, " OR ")+")", args...)
	}
	return query
}

// Count returns the number of entities in the filter's view
func (t *ScopedTable[D, M, PM]) Count(ctx context.Context, scope uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	if err := t.view(ctx, scope, filter).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", t.opts.Resource, err)
	}
	return count, nil
}

// List returns one page of entities in the filter's view
func (t *ScopedTable[D, M, PM]) List(ctx context.Context, scope uuid.UUID, filter shared.Filter) ([]D, error) {
	pageSize := filter.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	filter.PageSize = pageSize

	sortField := ValidateSortField(filter.OrderBy, t.opts.SortFields, "created_at")
	sortOrder := ValidateSortOrder(filter.OrderDir)

	var rows []M
	err := t.withPreloads(t.view(ctx, scope, filter)).
		Order(sortField + " " + sortOrder).
		Order("id ASC").
		Offset(filter.Offset()).
		Limit(pageSize).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", t.opts.Resource, err)
	}

	entities := make([]D, len(rows))
	for i := range rows {
		entities[i] = *PM(&rows[i]).ToDomain()
	}
	return entities, nil
}

// Exists reports whether a row in scope, active or trashed, carries value in
// column. The comparison is case-insensitive.
func (t *ScopedTable[D, M, PM]) Exists(ctx context.Context, scope uuid.UUID, column, value string, excludeID *uuid.UUID) (bool, error) {
	query := t.scoped(ctx, scope).Where("LOWER("+column+") = ?", strings.ToLower(value))
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check %s %s: %w", t.opts.Resource, column, err)
	}
	return count > 0, nil
}

// existsByID reports whether the row exists in scope in any state
func (t *ScopedTable[D, M, PM]) existsByID(ctx context.Context, scope, id uuid.UUID) (bool, error) {
	var count int64
	if err := t.scoped(ctx, scope).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check %s: %w", t.opts.Resource, err)
	}
	return count > 0, nil
}

// Remove trashes an active row, or hard deletes a row that already is in the
// trash. Both statements are conditional on the current state, so two
// concurrent removes of an active row trash it once and delete it once.
func (t *ScopedTable[D, M, PM]) Remove(ctx context.Context, scope, id uuid.UUID) (shared.RemoveResult, error) {
	result := t.scoped(ctx, scope).
		Where("id = ? AND deleted_at IS NULL", id).
		UpdateColumn("deleted_at", time.Now())
	if result.Error != nil {
		return "", fmt.Errorf("failed to trash %s: %w", t.opts.Resource, result.Error)
	}
	if result.RowsAffected > 0 {
		return shared.SoftDeleted, nil
	}

	deleted, err := t.deleteTrashed(ctx, scope, id)
	if err != nil {
		return "", err
	}
	if !deleted {
		return "", shared.NotFound(t.opts.Resource)
	}
	return shared.PermanentlyDeleted, nil
}

// Restore clears deleted_at of a trashed row and reports true. An active row
// is left as is and reports false.
func (t *ScopedTable[D, M, PM]) Restore(ctx context.Context, scope, id uuid.UUID) (bool, error) {
	result := t.scoped(ctx, scope).
		Where("id = ? AND deleted_at IS NOT NULL", id).
		UpdateColumn("deleted_at", nil)
	if result.Error != nil {
		return false, fmt.Errorf("failed to restore %s: %w", t.opts.Resource, result.Error)
	}
	if result.RowsAffected > 0 {
		return true, nil
	}

	exists, err := t.existsByID(ctx, scope, id)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, shared.NotFound(t.opts.Resource)
	}
	return false, nil
}

// PermanentRemove deletes a trashed row. Active rows fail with INVALID_STATE.
func (t *ScopedTable[D, M, PM]) PermanentRemove(ctx context.Context, scope, id uuid.UUID) error {
	deleted, err := t.deleteTrashed(ctx, scope, id)
	if err != nil {
		return err
	}
	if deleted {
		return nil
	}

	exists, err := t.existsByID(ctx, scope, id)
	if err != nil {
		return err
	}
	if exists {
		return shared.NewDomainError(shared.CodeInvalidState,
			t.opts.Resource+" must be moved to the trash before permanent deletion")
	}
	return shared.NotFound(t.opts.Resource)
}

// deleteTrashed hard deletes the row when it is in scope and trashed,
// then purges its dependent rows.
func (t *ScopedTable[D, M, PM]) deleteTrashed(ctx context.Context, scope, id uuid.UUID) (bool, error) {
	remove := func(tx *gorm.DB) (bool, error) {
		result := tx.Unscoped().
			Where(t.opts.ScopeColumn+" = ? AND id = ? AND deleted_at IS NOT NULL", scope, id).
			Delete(new(M))
		if result.Error != nil {
			return false, fmt.Errorf("failed to delete %s: %w", t.opts.Resource, result.Error)
		}
		if result.RowsAffected == 0 {
			return false, nil
		}
		if t.opts.Purge != nil {
			if err := t.opts.Purge(tx, id); err != nil {
				return false, fmt.Errorf("failed to purge %s items: %w", t.opts.Resource, err)
			}
		}
		return true, nil
	}

	if t.opts.Purge == nil {
		return remove(t.db.WithContext(ctx))
	}

	var deleted bool
	err := t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		deleted, err = remove(tx)
		return err
	})
	return deleted, err
}
