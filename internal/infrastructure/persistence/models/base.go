package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// BaseModel provides common persistence fields for all models.
// It maps to the domain's BaseEntity.
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// ToDomain converts BaseModel to domain BaseEntity
func (m *BaseModel) ToDomain() shared.BaseEntity {
	return shared.BaseEntity{
		ID:        m.ID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromDomainBaseEntity populates BaseModel from domain BaseEntity
func (m *BaseModel) FromDomainBaseEntity(e shared.BaseEntity) {
	m.ID = e.ID
	m.CreatedAt = e.CreatedAt
	m.UpdatedAt = e.UpdatedAt
}

// TenantModel is the base of every table scoped by business_id
type TenantModel struct {
	BaseModel
	BusinessID uuid.UUID      `gorm:"type:uuid;not null;index"`
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

// ScopeValue returns the business id the row is scoped by
func (m *TenantModel) ScopeValue() uuid.UUID {
	return m.BusinessID
}

// ToTenantEntity converts the base columns to the domain TenantEntity
func (m *TenantModel) ToTenantEntity() shared.TenantEntity {
	return shared.TenantEntity{
		BaseEntity: m.BaseModel.ToDomain(),
		Trashable:  toTrashable(m.DeletedAt),
		BusinessID: m.BusinessID,
	}
}

// FromTenantEntity populates the base columns from the domain TenantEntity
func (m *TenantModel) FromTenantEntity(e shared.TenantEntity) {
	m.FromDomainBaseEntity(e.BaseEntity)
	m.BusinessID = e.BusinessID
	m.DeletedAt = fromTrashable(e.Trashable)
}

// UserScopedModel is the base of every table scoped by user_id
type UserScopedModel struct {
	BaseModel
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// ScopeValue returns the user id the row is scoped by
func (m *UserScopedModel) ScopeValue() uuid.UUID {
	return m.UserID
}

// ToUserEntity converts the base columns to the domain UserEntity
func (m *UserScopedModel) ToUserEntity() shared.UserEntity {
	return shared.UserEntity{
		BaseEntity: m.BaseModel.ToDomain(),
		Trashable:  toTrashable(m.DeletedAt),
		UserID:     m.UserID,
	}
}

// FromUserEntity populates the base columns from the domain UserEntity
func (m *UserScopedModel) FromUserEntity(e shared.UserEntity) {
	m.FromDomainBaseEntity(e.BaseEntity)
	m.UserID = e.UserID
	m.DeletedAt = fromTrashable(e.Trashable)
}

func toTrashable(d gorm.DeletedAt) shared.Trashable {
	if !d.Valid {
		return shared.Trashable{}
	}
	at := d.Time
	return shared.Trashable{DeletedAt: &at}
}

func fromTrashable(t shared.Trashable) gorm.DeletedAt {
	if t.DeletedAt == nil {
		return gorm.DeletedAt{}
	}
	return gorm.DeletedAt{Time: *t.DeletedAt, Valid: true}
}
