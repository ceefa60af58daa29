package models

import "github.com/pos/backend/internal/domain/business"

// BusinessModel is the persistence model for the Business domain entity.
type BusinessModel struct {
	UserScopedModel
	Name     string `gorm:"type:varchar(100);not null"`
	Currency string `gorm:"type:varchar(3);not null;default:'USD'"`
	Email    string `gorm:"type:varchar(200)"`
	Phone    string `gorm:"type:varchar(50)"`
	Address  string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (BusinessModel) TableName() string {
	return "businesses"
}

// UpdatableColumns lists the columns an update may write
func (BusinessModel) UpdatableColumns() []string {
	return []string{"name", "currency", "email", "phone", "address", "updated_at"}
}

// ToDomain converts the persistence model to a domain Business entity.
func (m *BusinessModel) ToDomain() *business.Business {
	return &business.Business{
		UserEntity: m.ToUserEntity(),
		Name:       m.Name,
		Currency:   m.Currency,
		Email:      m.Email,
		Phone:      m.Phone,
		Address:    m.Address,
	}
}

// FromDomain populates the persistence model from a domain Business entity.
func (m *BusinessModel) FromDomain(b *business.Business) {
	m.FromUserEntity(b.UserEntity)
	m.Name = b.Name
	m.Currency = b.Currency
	m.Email = b.Email
	m.Phone = b.Phone
	m.Address = b.Address
}

// BusinessModelFromDomain creates a new persistence model from a domain Business entity.
func BusinessModelFromDomain(b *business.Business) *BusinessModel {
	m := &BusinessModel{}
	m.FromDomain(b)
	return m
}
