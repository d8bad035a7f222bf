package identity

import (
	"context"

	"github.com/bizledger/backend/internal/domain/identity"
	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/bizledger/backend/internal/infrastructure/auth"
	"github.com/google/uuid"
)

// UserService handles user administration within a company
type UserService struct {
	userRepo identity.UserRepository
	roleRepo identity.RoleRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo identity.UserRepository, roleRepo identity.RoleRepository) *UserService {
	return &UserService{userRepo: userRepo, roleRepo: roleRepo}
}

// Create creates a new user in the company
func (s *UserService) Create(ctx context.Context, companyID uuid.UUID, req CreateUserRequest) (*UserResponse, error) {
	exists, err := s.userRepo.ExistsByEmail(ctx, req.Email, nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Email is already registered")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", err.Error())
	}

	user, err := identity.NewUser(companyID, req.Email, req.Name)
	if err != nil {
		return nil, err
	}
	if err := user.SetPasswordHash(hash); err != nil {
		return nil, err
	}
	if len(req.RoleIDs) > 0 {
		if err := s.verifyRoles(ctx, companyID, req.RoleIDs); err != nil {
			return nil, err
		}
		user.AssignRoles(req.RoleIDs)
	}
	if req.CreatedBy != nil {
		user.SetCreatedBy(*req.CreatedBy)
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	response := ToUserResponse(user)
	return &response, nil
}

// GetByID retrieves a user by ID
func (s *UserService) GetByID(ctx context.Context, companyID, userID uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.FindByIDForCompany(ctx, companyID, userID)
	if err != nil {
		return nil, err
	}

	response := ToUserResponse(user)
	return &response, nil
}

// List retrieves users with filtering and pagination
func (s *UserService) List(ctx context.Context, companyID uuid.UUID, filter UserListFilter) ([]UserResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
		Filters:  make(map[string]any),
	}

	users, err := s.userRepo.FindAllForCompany(ctx, companyID, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.userRepo.CountForCompany(ctx, companyID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToUserResponses(users), total, nil
}

// Update updates a user's account and role assignments
func (s *UserService) Update(ctx context.Context, companyID, userID uuid.UUID, req UpdateUserRequest) (*UserResponse, error) {
	user, err := s.userRepo.FindByIDForCompany(ctx, companyID, userID)
	if err != nil {
		return nil, err
	}

	if req.Email != nil && *req.Email != user.Email {
		exists, err := s.userRepo.ExistsByEmail(ctx, *req.Email, &userID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Email is already registered")
		}
		if err := user.SetEmail(*req.Email); err != nil {
			return nil, err
		}
	}

	if req.Name != nil {
		if err := user.SetName(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.Password != nil {
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_INPUT", err.Error())
		}
		if err := user.SetPasswordHash(hash); err != nil {
			return nil, err
		}
	}
	if req.RoleIDs != nil {
		if len(*req.RoleIDs) > 0 {
			if err := s.verifyRoles(ctx, companyID, *req.RoleIDs); err != nil {
				return nil, err
			}
		}
		user.AssignRoles(*req.RoleIDs)
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	response := ToUserResponse(user)
	return &response, nil
}

// Delete deletes a user. The company owner cannot be removed.
func (s *UserService) Delete(ctx context.Context, companyID, userID uuid.UUID) error {
	user, err := s.userRepo.FindByIDForCompany(ctx, companyID, userID)
	if err != nil {
		return err
	}
	if user.IsOwner {
		return shared.NewDomainError("CANNOT_DELETE", "The company owner cannot be deleted")
	}

	return s.userRepo.DeleteForCompany(ctx, companyID, userID)
}

// verifyRoles checks every assigned role exists within the company
func (s *UserService) verifyRoles(ctx context.Context, companyID uuid.UUID, roleIDs []uuid.UUID) error {
	roles, err := s.roleRepo.FindByIDsForCompany(ctx, companyID, roleIDs)
	if err != nil {
		return err
	}
	if len(roles) != len(roleIDs) {
		return shared.NewDomainError("INVALID_INPUT", "One or more roles do not exist in this company")
	}
	return nil
}
