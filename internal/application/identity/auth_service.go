// Package identity contains application services for authentication,
// users, roles and company administration.
package identity

import (
	"context"
	"errors"

	"github.com/bizledger/backend/internal/domain/identity"
	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/bizledger/backend/internal/infrastructure/auth"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// errInvalidCredentials is returned for both unknown emails and wrong
// passwords so the response never reveals which one failed.
var errInvalidCredentials = shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")

// AuthService handles signup, login, token refresh and logout
type AuthService struct {
	userRepo    identity.UserRepository
	companyRepo identity.CompanyRepository
	roleRepo    identity.RoleRepository
	configRepo  identity.UserConfigRepository
	jwtService  *auth.JWTService
	blacklist   auth.TokenBlacklist
	uow         shared.UnitOfWork
	logger      *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	userRepo identity.UserRepository,
	companyRepo identity.CompanyRepository,
	roleRepo identity.RoleRepository,
	configRepo identity.UserConfigRepository,
	jwtService *auth.JWTService,
	blacklist auth.TokenBlacklist,
	uow shared.UnitOfWork,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		companyRepo: companyRepo,
		roleRepo:    roleRepo,
		configRepo:  configRepo,
		jwtService:  jwtService,
		blacklist:   blacklist,
		uow:         uow,
		logger:      logger,
	}
}

// Signup creates a company together with its owning user and signs the new
// owner in. Company and owner are written in one transaction.
func (s *AuthService) Signup(ctx context.Context, req SignupRequest) (*AuthResponse, error) {
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

	company, err := identity.NewCompany(req.CompanyName)
	if err != nil {
		return nil, err
	}
	owner, err := identity.NewOwner(company.ID, req.Email, req.Name)
	if err != nil {
		return nil, err
	}
	if err := owner.SetPasswordHash(hash); err != nil {
		return nil, err
	}

	err = s.uow.Execute(ctx, func(ctx context.Context) error {
		if err := s.companyRepo.Save(ctx, company); err != nil {
			return err
		}
		if err := s.userRepo.Save(ctx, owner); err != nil {
			return err
		}
		return s.configRepo.Upsert(ctx, identity.NewUserConfig(owner.ID))
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("company signed up",
		zap.String("company_id", company.ID.String()),
		zap.String("owner_id", owner.ID.String()))

	tokens, err := s.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		CompanyID: company.ID,
		UserID:    owner.ID,
		Email:     owner.Email,
		IsOwner:   true,
	})
	if err != nil {
		return nil, err
	}

	return &AuthResponse{User: ToUserResponse(owner), Tokens: tokens}, nil
}

// Login authenticates by email and password and issues a token pair
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, errInvalidCredentials
		}
		return nil, err
	}

	if err := auth.VerifyPassword(user.PasswordHash, req.Password); err != nil {
		s.logger.Warn("failed login attempt", zap.String("email", req.Email))
		return nil, errInvalidCredentials
	}

	tokens, err := s.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		CompanyID: user.CompanyID,
		UserID:    user.ID,
		Email:     user.Email,
		IsOwner:   user.IsOwner,
	})
	if err != nil {
		return nil, err
	}

	return &AuthResponse{User: ToUserResponse(user), Tokens: tokens}, nil
}

// Refresh validates a refresh token and issues a fresh pair. The used
// refresh token is blacklisted so it cannot be replayed.
func (s *AuthService) Refresh(ctx context.Context, req RefreshRequest) (*auth.TokenPair, error) {
	claims, err := s.jwtService.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, shared.ErrUnauthorized
	}

	revoked, err := s.blacklist.IsBlacklisted(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if !revoked {
		invalidated, err := s.blacklist.IsUserTokenInvalidated(ctx, claims.UserID, claims.IssuedAt.Time)
		if err != nil {
			return nil, err
		}
		revoked = invalidated
	}
	if revoked {
		return nil, shared.ErrUnauthorized
	}

	tokens, err := s.jwtService.RefreshTokenPair(req.RefreshToken)
	if err != nil {
		return nil, shared.ErrUnauthorized
	}

	if err := s.blacklist.AddToBlacklist(ctx, claims.ID, claims.GetRemainingTTL()); err != nil {
		return nil, err
	}
	return tokens, nil
}

// Logout revokes the presented access token for its remaining lifetime
func (s *AuthService) Logout(ctx context.Context, claims *auth.Claims) error {
	return s.blacklist.AddToBlacklist(ctx, claims.ID, claims.GetRemainingTTL())
}

// LogoutEverywhere revokes every token issued to the user so far
func (s *AuthService) LogoutEverywhere(ctx context.Context, userID uuid.UUID) error {
	return s.blacklist.AddUserTokensToBlacklist(ctx, userID.String(), s.jwtService.GetRefreshTokenExpiration())
}

// Profile returns the authenticated user with company, preferences and the
// effective permission set.
func (s *AuthService) Profile(ctx context.Context, companyID, userID uuid.UUID) (*ProfileResponse, error) {
	user, err := s.userRepo.FindByIDForCompany(ctx, companyID, userID)
	if err != nil {
		return nil, err
	}
	company, err := s.companyRepo.FindByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	var roles []identity.Role
	if !user.IsOwner && len(user.RoleIDs) > 0 {
		roles, err = s.roleRepo.FindByIDsForCompany(ctx, companyID, user.RoleIDs)
		if err != nil {
			return nil, err
		}
	}
	permSet := identity.EffectivePermissions(user, roles)
	permissions := make([]string, 0, len(permSet))
	for code := range permSet {
		permissions = append(permissions, code)
	}

	config, err := s.configRepo.FindByUser(ctx, userID)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		config = identity.NewUserConfig(userID)
	}

	return &ProfileResponse{
		User:        ToUserResponse(user),
		Company:     ToCompanyResponse(company),
		Permissions: permissions,
		Config:      ToUserConfigResponse(config),
	}, nil
}

// UpdateProfile changes the authenticated user's own name, email and
// password. Email changes must match confirm_email; password changes must
// match confirm_password and verify the current password.
func (s *AuthService) UpdateProfile(ctx context.Context, companyID, userID uuid.UUID, req UpdateProfileRequest) (*UserResponse, error) {
	user, err := s.userRepo.FindByIDForCompany(ctx, companyID, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := user.SetName(*req.Name); err != nil {
			return nil, err
		}
	}

	if req.Email != nil {
		if req.ConfirmEmail == nil || *req.ConfirmEmail != *req.Email {
			return nil, shared.NewDomainError("INVALID_INPUT", "Email confirmation does not match")
		}
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

	if req.Password != nil {
		if req.ConfirmPassword == nil || *req.ConfirmPassword != *req.Password {
			return nil, shared.NewDomainError("INVALID_INPUT", "Password confirmation does not match")
		}
		if req.CurrentPassword == nil || auth.VerifyPassword(user.PasswordHash, *req.CurrentPassword) != nil {
			return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Current password is incorrect")
		}
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_INPUT", err.Error())
		}
		if err := user.SetPasswordHash(hash); err != nil {
			return nil, err
		}
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	response := ToUserResponse(user)
	return &response, nil
}

// GetConfig returns the user's interface preferences, defaulted when the
// user never saved any.
func (s *AuthService) GetConfig(ctx context.Context, userID uuid.UUID) (*UserConfigResponse, error) {
	config, err := s.configRepo.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			response := ToUserConfigResponse(identity.NewUserConfig(userID))
			return &response, nil
		}
		return nil, err
	}

	response := ToUserConfigResponse(config)
	return &response, nil
}

// UpdateConfig upserts the user's interface preferences
func (s *AuthService) UpdateConfig(ctx context.Context, userID uuid.UUID, req UpdateUserConfigRequest) (*UserConfigResponse, error) {
	config, err := s.configRepo.FindByUser(ctx, userID)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		config = identity.NewUserConfig(userID)
	}

	if err := config.Update(req.Language, req.Theme, req.RowsPerPage); err != nil {
		return nil, err
	}
	if err := s.configRepo.Upsert(ctx, config); err != nil {
		return nil, err
	}

	response := ToUserConfigResponse(config)
	return &response, nil
}
