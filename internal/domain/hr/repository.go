package hr

import (
	"context"

	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// DepartmentRepository defines persistence operations for departments
type DepartmentRepository interface {
	shared.CompanyRepository[Department]
	ExistsByReference(ctx context.Context, companyID uuid.UUID, reference string, excludeID *uuid.UUID) (bool, error)
}

// DesignationRepository defines persistence operations for designations
type DesignationRepository interface {
	shared.CompanyRepository[Designation]
}

// EmployeeRepository defines persistence operations for employees
type EmployeeRepository interface {
	shared.CompanyRepository[Employee]
}

// PayslipRepository defines persistence operations for payslips.
// Implementations load and save the full aggregate including pay items.
type PayslipRepository interface {
	shared.CompanyRepository[Payslip]
	ExistsByReference(ctx context.Context, companyID uuid.UUID, reference string, excludeID *uuid.UUID) (bool, error)
}
