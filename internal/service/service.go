package service

import (
	"errors" // Error kind checks

	"finance_tracker/internal/domain" // Domain models and error kinds

	"gorm.io/gorm" // GORM ORM library
)

// Pagination bounds shared by every list operation
const (
	DefaultPageSize = 10  // Items per page when the caller gives none
	MaxPageSize     = 100 // Upper bound on items per page
)

// paginate normalizes a 1-indexed page number and page size into an SQL
// offset and limit. Page numbers below 1 and sizes outside 1..100 are
// clamped rather than rejected.
func paginate(page, limit int) (offset, size int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	return (page - 1) * limit, limit
}

// translateWriteError maps storage-layer failures of a write to domain
// error kinds so callers never see a raw gorm error for constraint
// violations. gorm is opened with TranslateError so driver-specific
// errors arrive as gorm sentinels.
func translateWriteError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return domain.ErrDuplicateKey
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return domain.ErrValidation
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return domain.ErrValidation
	default:
		return err
	}
}
