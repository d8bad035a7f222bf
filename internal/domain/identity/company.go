// Package identity contains the tenant and access-control aggregates:
// companies, users, roles and the permission model.
package identity

import (
	"time"

	"github.com/bizledger/backend/internal/domain/shared"
)

// Company is the tenant root. Every other aggregate in the system is
// scoped to exactly one company.
type Company struct {
	shared.BaseAggregateRoot
	Name    string
	Address string
	Phone   string
	Email   string
}

// NewCompany creates a new company
func NewCompany(name string) (*Company, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Company name is required")
	}
	return &Company{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
	}, nil
}

// SetName changes the company name
func (c *Company) SetName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_INPUT", "Company name is required")
	}
	c.Name = name
	c.UpdatedAt = time.Now()
	return nil
}

// SetContact updates the contact fields
func (c *Company) SetContact(address, phone, email string) {
	c.Address = address
	c.Phone = phone
	c.Email = email
	c.UpdatedAt = time.Now()
}
