package models

import "github.com/pos/backend/internal/domain/partner"

// ContactColumns holds the contact columns customers and suppliers share
type ContactColumns struct {
	Name    string `gorm:"type:varchar(200);not null"`
	Email   string `gorm:"type:varchar(200);index"`
	Phone   string `gorm:"type:varchar(50);index"`
	Address string `gorm:"type:text"`
}

func (c ContactColumns) toDomain() partner.Contact {
	return partner.Contact{Name: c.Name, Email: c.Email, Phone: c.Phone, Address: c.Address}
}

func contactColumns(c partner.Contact) ContactColumns {
	return ContactColumns{Name: c.Name, Email: c.Email, Phone: c.Phone, Address: c.Address}
}

var contactUpdatableColumns = []string{"name", "email", "phone", "address", "updated_at"}

// CustomerModel is the persistence model for the Customer domain entity.
type CustomerModel struct {
	TenantModel
	ContactColumns
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

// UpdatableColumns lists the columns an update may write
func (CustomerModel) UpdatableColumns() []string {
	return contactUpdatableColumns
}

// ToDomain converts the persistence model to a domain Customer entity.
func (m *CustomerModel) ToDomain() *partner.Customer {
	return &partner.Customer{
		TenantEntity: m.ToTenantEntity(),
		Contact:      m.ContactColumns.toDomain(),
	}
}

// FromDomain populates the persistence model from a domain Customer entity.
func (m *CustomerModel) FromDomain(c *partner.Customer) {
	m.FromTenantEntity(c.TenantEntity)
	m.ContactColumns = contactColumns(c.Contact)
}

// SupplierModel is the persistence model for the Supplier domain entity.
type SupplierModel struct {
	TenantModel
	ContactColumns
}

// TableName returns the table name for GORM
func (SupplierModel) TableName() string {
	return "suppliers"
}

// UpdatableColumns lists the columns an update may write
func (SupplierModel) UpdatableColumns() []string {
	return contactUpdatableColumns
}

// ToDomain converts the persistence model to a domain Supplier entity.
func (m *SupplierModel) ToDomain() *partner.Supplier {
	return &partner.Supplier{
		TenantEntity: m.ToTenantEntity(),
		Contact:      m.ContactColumns.toDomain(),
	}
}

// FromDomain populates the persistence model from a domain Supplier entity.
func (m *SupplierModel) FromDomain(s *partner.Supplier) {
	m.FromTenantEntity(s.TenantEntity)
	m.ContactColumns = contactColumns(s.Contact)
}
