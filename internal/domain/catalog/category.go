package catalog

import (
	"time"

	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Category groups products within a company
type Category struct {
	shared.CompanyAggregateRoot
	Name        string
	Description string
}

// NewCategory creates a new product category for a company
func NewCategory(companyID uuid.UUID, name string) (*Category, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Category name is required")
	}
	return &Category{
		CompanyAggregateRoot: shared.NewCompanyAggregateRoot(companyID),
		Name:                 name,
	}, nil
}

// SetName changes the category name
func (c *Category) SetName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_INPUT", "Category name is required")
	}
	c.Name = name
	c.UpdatedAt = time.Now()
	return nil
}

// SetDescription changes the category description
func (c *Category) SetDescription(description string) {
	c.Description = description
	c.UpdatedAt = time.Now()
}
