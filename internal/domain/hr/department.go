// Package hr contains the staffing aggregates: departments, designations,
// employees and payslips.
package hr

import (
	"time"

	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Department is a company-scoped organizational unit
type Department struct {
	shared.CompanyAggregateRoot
	Reference string
	Name      string
}

// NewDepartment creates a new department for a company
func NewDepartment(companyID uuid.UUID, reference, name string) (*Department, error) {
	if reference == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Department reference is required")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Department name is required")
	}
	return &Department{
		CompanyAggregateRoot: shared.NewCompanyAggregateRoot(companyID),
		Reference:            reference,
		Name:                 name,
	}, nil
}

// SetReference changes the department reference
func (d *Department) SetReference(reference string) error {
	if reference == "" {
		return shared.NewDomainError("INVALID_INPUT", "Department reference is required")
	}
	d.Reference = reference
	d.UpdatedAt = time.Now()
	return nil
}

// SetName changes the department name
func (d *Department) SetName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_INPUT", "Department name is required")
	}
	d.Name = name
	d.UpdatedAt = time.Now()
	return nil
}
