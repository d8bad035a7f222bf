package identity

import (
	"context"

	"github.com/bizledger/backend/internal/domain/identity"
	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// RoleService handles role administration within a company
type RoleService struct {
	roleRepo identity.RoleRepository
}

// NewRoleService creates a new RoleService
func NewRoleService(roleRepo identity.RoleRepository) *RoleService {
	return &RoleService{roleRepo: roleRepo}
}

// Create creates a new role
func (s *RoleService) Create(ctx context.Context, companyID uuid.UUID, req CreateRoleRequest) (*RoleResponse, error) {
	exists, err := s.roleRepo.ExistsByReference(ctx, companyID, req.Reference, nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Role with this reference already exists")
	}

	role, err := identity.NewRole(companyID, req.Reference, req.Name)
	if err != nil {
		return nil, err
	}
	if len(req.Permissions) > 0 {
		if err := role.SetPermissions(req.Permissions); err != nil {
			return nil, err
		}
	}
	if req.CreatedBy != nil {
		role.SetCreatedBy(*req.CreatedBy)
	}

	if err := s.roleRepo.Save(ctx, role); err != nil {
		return nil, err
	}

	response := ToRoleResponse(role)
	return &response, nil
}

// GetByID retrieves a role by ID
func (s *RoleService) GetByID(ctx context.Context, companyID, roleID uuid.UUID) (*RoleResponse, error) {
	role, err := s.roleRepo.FindByIDForCompany(ctx, companyID, roleID)
	if err != nil {
		return nil, err
	}

	response := ToRoleResponse(role)
	return &response, nil
}

// List retrieves all roles for a company
func (s *RoleService) List(ctx context.Context, companyID uuid.UUID, page, pageSize int) ([]RoleResponse, int64, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}

	filter := shared.Filter{Page: page, PageSize: pageSize, Filters: make(map[string]any)}
	roles, err := s.roleRepo.FindAllForCompany(ctx, companyID, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.roleRepo.CountForCompany(ctx, companyID, filter)
	if err != nil {
		return nil, 0, err
	}

	return ToRoleResponses(roles), total, nil
}

// Update updates a role
func (s *RoleService) Update(ctx context.Context, companyID, roleID uuid.UUID, req UpdateRoleRequest) (*RoleResponse, error) {
	role, err := s.roleRepo.FindByIDForCompany(ctx, companyID, roleID)
	if err != nil {
		return nil, err
	}

	if req.Reference != nil && *req.Reference != role.Reference {
		exists, err := s.roleRepo.ExistsByReference(ctx, companyID, *req.Reference, &roleID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Role with this reference already exists")
		}
		if err := role.SetReference(*req.Reference); err != nil {
			return nil, err
		}
	}

	if req.Name != nil {
		if err := role.SetName(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.Permissions != nil {
		if err := role.SetPermissions(*req.Permissions); err != nil {
			return nil, err
		}
	}

	if err := s.roleRepo.Save(ctx, role); err != nil {
		return nil, err
	}

	response := ToRoleResponse(role)
	return &response, nil
}

// Delete deletes a role
func (s *RoleService) Delete(ctx context.Context, companyID, roleID uuid.UUID) error {
	return s.roleRepo.DeleteForCompany(ctx, companyID, roleID)
}

// Permissions lists every known permission code for role editing UIs
func (s *RoleService) Permissions() []string {
	return identity.AllPermissions()
}
