package shared

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the base interface for all repositories
type Repository[T any] interface {
	FindByID(ctx context.Context, id uuid.UUID) (*T, error)
	FindAll(ctx context.Context, filter Filter) ([]T, error)
	Save(ctx context.Context, entity *T) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter Filter) (int64, error)
}

// CompanyRepository is a repository scoped to a company (tenant).
// Every read goes through the company filter so rows never leak across
// companies, regardless of what the caller passes for id.
type CompanyRepository[T any] interface {
	Repository[T]
	FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*T, error)
	FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter Filter) ([]T, error)
	CountForCompany(ctx context.Context, companyID uuid.UUID, filter Filter) (int64, error)
	DeleteForCompany(ctx context.Context, companyID, id uuid.UUID) error
}

// UnitOfWork runs a function atomically: either every repository write
// made with the derived context commits, or none do. Flows touching
// several aggregates (documents plus product counters plus partner
// balances) go through it.
type UnitOfWork interface {
	Execute(ctx context.Context, fn func(ctx context.Context) error) error
}

// Filter represents query filter options
type Filter struct {
	Page     int
	PageSize int
	OrderBy  string
	OrderDir string
	Search   string
	Filters  map[string]interface{}
}

// DefaultFilter returns a filter with default values
func DefaultFilter() Filter {
	return Filter{
		Page:     1,
		PageSize: 20,
		OrderBy:  "created_at",
		OrderDir: "desc",
		Filters:  make(map[string]interface{}),
	}
}

// Paginated represents a paginated result
type Paginated[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

// NewPaginated creates a new paginated result
func NewPaginated[T any](items []T, total int64, page, pageSize int) Paginated[T] {
	totalPages := int(total) / pageSize
	if int(total)%pageSize > 0 {
		totalPages++
	}
	return Paginated[T]{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}
