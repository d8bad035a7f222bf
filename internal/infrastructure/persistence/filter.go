package persistence

import (
	"strings"

	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// applyPagination applies page/page-size from the filter
func applyPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}
	return query
}

// applyOrdering applies the requested ordering, falling back to defaultOrder.
// Only whitelisted columns are accepted, everything else is ignored so a
// caller can never inject SQL through OrderBy.
func applyOrdering(query *gorm.DB, filter shared.Filter, sortable map[string]bool, defaultOrder string) *gorm.DB {
	if filter.OrderBy != "" && sortable[filter.OrderBy] {
		dir := "ASC"
		if strings.EqualFold(filter.OrderDir, "desc") {
			dir = "DESC"
		}
		return query.Order(filter.OrderBy + " " + dir)
	}
	return query.Order(defaultOrder)
}

// applySearch applies a case-insensitive substring match over the given
// columns. LOWER/LIKE is used instead of ILIKE so the same query runs on
// SQLite in tests.
func applySearch(query *gorm.DB, search string, columns []string) *gorm.DB {
	if search == "" || len(columns) == 0 {
		return query
	}
	pattern := "%" + strings.ToLower(search) + "%"
	clause := make([]string, len(columns))
	args := make([]interface{}, len(columns))
	for i, col := range columns {
		clause[i] = "LOWER(" + col + ") LIKE ?"
		args[i] = pattern
	}
	return query.Where(strings.Join(clause, " OR "), args...)
}

// applyColumnFilters applies exact-match filters for whitelisted keys.
// allowed maps the filter key to the column name it queries.
func applyColumnFilters(query *gorm.DB, filter shared.Filter, allowed map[string]string) *gorm.DB {
	for key, value := range filter.Filters {
		if col, ok := allowed[key]; ok {
			query = query.Where(col+" = ?", value)
		}
	}
	return query
}

// existsByReference reports whether another row with the same reference
// exists in the company. excludeID carves out the row being updated.
func existsByReference(query *gorm.DB, companyID uuid.UUID, reference string, excludeID *uuid.UUID) (bool, error) {
	query = query.Where("company_id = ? AND reference = ?", companyID, reference)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// checkLockResult translates an optimistic-lock update result: zero rows
// affected means the row was modified concurrently (or does not exist).
func checkLockResult(result *gorm.DB) error {
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	return nil
}
