package persistence

import (
	"strings"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns "DESC" as the default if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	normalized := strings.ToUpper(strings.TrimSpace(orderDir))
	if normalized == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField validates the sort field against a whitelist of allowed fields.
// Returns the defaultField if the input is invalid, empty, or not in the whitelist.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" {
		return defaultField
	}
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// withCommonFields returns the given fields plus id, created_at, updated_at and deleted_at
func withCommonFields(fields ...string) map[string]bool {
	allowed := map[string]bool{
		"id":         true,
		"created_at": true,
		"updated_at": true,
		"deleted_at": true,
	}
	for _, f := range fields {
		allowed[f] = true
	}
	return allowed
}

// CommonSortFields contains fields every scoped table has
var CommonSortFields = withCommonFields()

// BusinessSortFields contains allowed sort fields for businesses
var BusinessSortFields = withCommonFields("name", "currency")

// ProductSortFields contains allowed sort fields for products
var ProductSortFields = withCommonFields("name", "price", "stock")

// CategorySortFields contains allowed sort fields for categories
var CategorySortFields = withCommonFields("name")

// ContactSortFields contains allowed sort fields for customers and suppliers
var ContactSortFields = withCommonFields("name", "email", "phone")

// PurchaseSortFields contains allowed sort fields for purchases
var PurchaseSortFields = withCommonFields("total_cost")

// OrderSortFields contains allowed sort fields for orders
var OrderSortFields = withCommonFields("total_price")

// TaskSortFields contains allowed sort fields for tasks
var TaskSortFields = withCommonFields("title", "status", "label", "priority")
