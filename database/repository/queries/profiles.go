package queries

import (
	"gorm.io/gorm"
)

// ApplyProfileFilters expects "users" as the master table of the query.
func ApplyProfileFilters(filters *ProfileFilters, query *gorm.DB) *gorm.DB {
	if filters == nil {
		return query
	}

	if filters.GetUserType() != "" {
		query = query.Where("users.user_type = ?", filters.GetUserType())
	}

	return query
}
