package shared

import (
	"time"

	"github.com/google/uuid"
)

// BaseEntity provides common fields for all entities
type BaseEntity struct {
	ID        uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// GetID returns the entity ID
func (e *BaseEntity) GetID() uuid.UUID {
	return e.ID
}

// Touch bumps the update timestamp
func (e *BaseEntity) Touch() {
	e.UpdatedAt = time.Now()
}

// NewBaseEntity creates a new base entity with generated ID
func NewBaseEntity() BaseEntity {
	now := time.Now()
	return BaseEntity{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// TenantEntity is the base of every entity owned by a business
type TenantEntity struct {
	BaseEntity
	Trashable
	BusinessID uuid.UUID
}

// NewTenantEntity creates an active entity owned by the given business
func NewTenantEntity(businessID uuid.UUID) TenantEntity {
	return TenantEntity{
		BaseEntity: NewBaseEntity(),
		BusinessID: businessID,
	}
}

// ScopeKey returns the business id the entity is scoped by
func (e *TenantEntity) ScopeKey() uuid.UUID {
	return e.BusinessID
}

// UserEntity is the base of every entity owned directly by a user
type UserEntity struct {
	BaseEntity
	Trashable
	UserID uuid.UUID
}

// NewUserEntity creates an active entity owned by the given user
func NewUserEntity(userID uuid.UUID) UserEntity {
	return UserEntity{
		BaseEntity: NewBaseEntity(),
		UserID:     userID,
	}
}

// ScopeKey returns the user id the entity is scoped by
func (e *UserEntity) ScopeKey() uuid.UUID {
	return e.UserID
}
