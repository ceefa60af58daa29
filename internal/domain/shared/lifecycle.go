package shared

import "time"

// LifecycleState is the soft-delete state of a scoped entity
type LifecycleState string

const (
	StateActive  LifecycleState = "active"
	StateTrashed LifecycleState = "trashed"
	StateGone    LifecycleState = "gone"
)

// RemoveResult tells which transition a Remove call performed
type RemoveResult string

const (
	SoftDeleted        RemoveResult = "soft_deleted"
	PermanentlyDeleted RemoveResult = "permanently_deleted"
)

// Trashable carries the nullable deletion timestamp.
// A nil DeletedAt means the entity is active.
type Trashable struct {
	DeletedAt *time.Time
}

// State returns Active or Trashed. Gone entities are never loaded.
func (t *Trashable) State() LifecycleState {
	if t.DeletedAt == nil {
		return StateActive
	}
	return StateTrashed
}

// IsTrashed reports whether the entity sits in the trash
func (t *Trashable) IsTrashed() bool {
	return t.DeletedAt != nil
}

// NextRemoval returns the transition Remove will perform from the current state
func (t *Trashable) NextRemoval() RemoveResult {
	if t.IsTrashed() {
		return PermanentlyDeleted
	}
	return SoftDeleted
}

// MarkTrashed moves an active entity to the trash
func (t *Trashable) MarkTrashed(at time.Time) error {
	if t.IsTrashed() {
		return NewDomainError(CodeInvalidState, "Entity is already in the trash")
	}
	t.DeletedAt = &at
	return nil
}

// MarkRestored brings the entity back from the trash.
// It reports false when the entity was already active.
func (t *Trashable) MarkRestored() bool {
	if !t.IsTrashed() {
		return false
	}
	t.DeletedAt = nil
	return true
}

// EnsureActive fails with INVALID_STATE for trashed entities
func (t *Trashable) EnsureActive(resource string) error {
	if t.IsTrashed() {
		return NewDomainError(CodeInvalidState, resource+" is in the trash and must be restored first")
	}
	return nil
}

// EnsureTrashed fails with INVALID_STATE for active entities
func (t *Trashable) EnsureTrashed(resource string) error {
	if !t.IsTrashed() {
		return NewDomainError(CodeInvalidState, resource+" must be moved to the trash before permanent deletion")
	}
	return nil
}
