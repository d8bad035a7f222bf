package identity

import (
	"time"

	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Role is a named bundle of permission codes within a company
type Role struct {
	shared.CompanyAggregateRoot
	Reference   string
	Name        string
	Permissions []string
}

// NewRole creates a new role for a company
func NewRole(companyID uuid.UUID, reference, name string) (*Role, error) {
	if reference == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Role reference is required")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Role name is required")
	}
	return &Role{
		CompanyAggregateRoot: shared.NewCompanyAggregateRoot(companyID),
		Reference:            reference,
		Name:                 name,
	}, nil
}

// SetReference changes the role reference
func (r *Role) SetReference(reference string) error {
	if reference == "" {
		return shared.NewDomainError("INVALID_INPUT", "Role reference is required")
	}
	r.Reference = reference
	r.UpdatedAt = time.Now()
	return nil
}

// SetName changes the role name
func (r *Role) SetName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_INPUT", "Role name is required")
	}
	r.Name = name
	r.UpdatedAt = time.Now()
	return nil
}

// SetPermissions replaces the role's permission codes. Unknown codes are
// rejected so a typo cannot silently grant nothing.
func (r *Role) SetPermissions(codes []string) error {
	for _, code := range codes {
		if !IsKnownPermission(code) {
			return shared.NewDomainError("INVALID_INPUT", "Unknown permission code: "+code)
		}
	}
	r.Permissions = codes
	r.UpdatedAt = time.Now()
	return nil
}
