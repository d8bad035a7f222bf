package hr

import (
	"time"

	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Designation is a job title within a department
type Designation struct {
	shared.CompanyAggregateRoot
	Name         string
	DepartmentID uuid.UUID
}

// NewDesignation creates a new designation under a department
func NewDesignation(companyID, departmentID uuid.UUID, name string) (*Designation, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Designation name is required")
	}
	if departmentID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Department is required")
	}
	return &Designation{
		CompanyAggregateRoot: shared.NewCompanyAggregateRoot(companyID),
		Name:                 name,
		DepartmentID:         departmentID,
	}, nil
}

// SetName changes the designation name
func (d *Designation) SetName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_INPUT", "Designation name is required")
	}
	d.Name = name
	d.UpdatedAt = time.Now()
	return nil
}

// SetDepartment moves the designation to another department
func (d *Designation) SetDepartment(departmentID uuid.UUID) error {
	if departmentID == uuid.Nil {
		return shared.NewDomainError("INVALID_INPUT", "Department is required")
	}
	d.DepartmentID = departmentID
	d.UpdatedAt = time.Now()
	return nil
}
