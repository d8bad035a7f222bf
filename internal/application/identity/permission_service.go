package identity

import (
	"context"

	"github.com/bizledger/backend/internal/domain/identity"
	"github.com/google/uuid"
)

// PermissionService resolves a user's effective permissions against the
// database per request. It implements identity.PermissionChecker for the
// HTTP middleware.
type PermissionService struct {
	userRepo identity.UserRepository
	roleRepo identity.RoleRepository
}

// NewPermissionService creates a new PermissionService
func NewPermissionService(userRepo identity.UserRepository, roleRepo identity.RoleRepository) *PermissionService {
	return &PermissionService{userRepo: userRepo, roleRepo: roleRepo}
}

// HasPermission reports whether the user holds the permission code. Owners
// hold every permission; other users get the union of their roles.
func (s *PermissionService) HasPermission(ctx context.Context, companyID, userID uuid.UUID, code string) (bool, error) {
	user, err := s.userRepo.FindByIDForCompany(ctx, companyID, userID)
	if err != nil {
		return false, err
	}
	if user.IsOwner {
		return true, nil
	}
	if len(user.RoleIDs) == 0 {
		return false, nil
	}

	roles, err := s.roleRepo.FindByIDsForCompany(ctx, companyID, user.RoleIDs)
	if err != nil {
		return false, err
	}
	return identity.EffectivePermissions(user, roles)[code], nil
}

var _ identity.PermissionChecker = (*PermissionService)(nil)
