// Package models contains GORM-specific persistence models that map to database tables.
// These models are separate from domain entities to keep the domain layer free
// from ORM concerns.
//
// Every scoped model embeds TenantModel (scoped by business_id) or
// UserScopedModel (scoped by user_id); both carry a gorm.DeletedAt column that
// backs the active/trashed lifecycle.
//
// Structure:
// - base.go: base models and lifecycle column mapping
// - business.go: businesses (the tenants)
// - catalog.go: products and categories
// - partner.go: customers and suppliers
// - trade.go: purchases, orders and their items
// - task.go: tasks
package models
