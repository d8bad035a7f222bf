package identity

import (
	"context"
	"testing"
	"time"

	"github.com/bizledger/backend/internal/domain/identity"
	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/bizledger/backend/internal/infrastructure/auth"
	"github.com/bizledger/backend/internal/infrastructure/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-needs-32-characters!",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "bizledger-test",
	})
}

type authServiceFixture struct {
	service     *AuthService
	userRepo    *MockUserRepository
	companyRepo *MockCompanyRepository
	roleRepo    *MockRoleRepository
	configRepo  *MockUserConfigRepository
	blacklist   *auth.InMemoryTokenBlacklist
}

func newAuthServiceFixture() *authServiceFixture {
	userRepo := new(MockUserRepository)
	companyRepo := new(MockCompanyRepository)
	roleRepo := new(MockRoleRepository)
	configRepo := new(MockUserConfigRepository)
	blacklist := auth.NewInMemoryTokenBlacklist()

	service := NewAuthService(
		userRepo, companyRepo, roleRepo, configRepo,
		newTestJWTService(), blacklist, passthroughUnitOfWork{}, zap.NewNop(),
	)
	return &authServiceFixture{
		service:     service,
		userRepo:    userRepo,
		companyRepo: companyRepo,
		roleRepo:    roleRepo,
		configRepo:  configRepo,
		blacklist:   blacklist,
	}
}

func TestAuthService_Signup(t *testing.T) {
	t.Run("creates company, owner and config, returns tokens", func(t *testing.T) {
		f := newAuthServiceFixture()

		f.userRepo.On("ExistsByEmail", mock.Anything, "owner@acme.example", (*uuid.UUID)(nil)).Return(false, nil)
		f.companyRepo.On("Save", mock.Anything, mock.AnythingOfType("*identity.Company")).Return(nil)
		f.userRepo.On("Save", mock.Anything, mock.MatchedBy(func(u *identity.User) bool {
			return u.IsOwner && u.Email == "owner@acme.example" && u.PasswordHash != ""
		})).Return(nil)
		f.configRepo.On("Upsert", mock.Anything, mock.AnythingOfType("*identity.UserConfig")).Return(nil)

		resp, err := f.service.Signup(context.Background(), SignupRequest{
			CompanyName: "Acme Pte Ltd",
			Name:        "Alex Tan",
			Email:       "owner@acme.example",
			Password:    "correct horse battery",
		})

		require.NoError(t, err)
		assert.True(t, resp.User.IsOwner)
		assert.NotEmpty(t, resp.Tokens.AccessToken)
		assert.NotEmpty(t, resp.Tokens.RefreshToken)
		f.userRepo.AssertExpectations(t)
		f.companyRepo.AssertExpectations(t)
		f.configRepo.AssertExpectations(t)
	})

	t.Run("rejects an email already registered", func(t *testing.T) {
		f := newAuthServiceFixture()
		f.userRepo.On("ExistsByEmail", mock.Anything, "owner@acme.example", (*uuid.UUID)(nil)).Return(true, nil)

		_, err := f.service.Signup(context.Background(), SignupRequest{
			CompanyName: "Acme Pte Ltd",
			Name:        "Alex Tan",
			Email:       "owner@acme.example",
			Password:    "correct horse battery",
		})

		require.Error(t, err)
		f.companyRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestAuthService_Login(t *testing.T) {
	companyID := uuid.New()

	newUserWithPassword := func(t *testing.T, password string) *identity.User {
		t.Helper()
		user, err := identity.NewUser(companyID, "user@acme.example", "Alex Tan")
		require.NoError(t, err)
		hash, err := auth.HashPassword(password)
		require.NoError(t, err)
		require.NoError(t, user.SetPasswordHash(hash))
		return user
	}

	t.Run("issues tokens on valid credentials", func(t *testing.T) {
		f := newAuthServiceFixture()
		user := newUserWithPassword(t, "correct horse battery")
		f.userRepo.On("FindByEmail", mock.Anything, "user@acme.example").Return(user, nil)

		resp, err := f.service.Login(context.Background(), LoginRequest{
			Email:    "user@acme.example",
			Password: "correct horse battery",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, resp.Tokens.AccessToken)
		assert.Equal(t, user.ID, resp.User.ID)
	})

	t.Run("wrong password and unknown email fail identically", func(t *testing.T) {
		f := newAuthServiceFixture()
		user := newUserWithPassword(t, "correct horse battery")
		f.userRepo.On("FindByEmail", mock.Anything, "user@acme.example").Return(user, nil)
		f.userRepo.On("FindByEmail", mock.Anything, "ghost@acme.example").Return(nil, shared.ErrNotFound)

		_, errWrongPassword := f.service.Login(context.Background(), LoginRequest{
			Email:    "user@acme.example",
			Password: "not the password",
		})
		_, errUnknownEmail := f.service.Login(context.Background(), LoginRequest{
			Email:    "ghost@acme.example",
			Password: "whatever",
		})

		require.Error(t, errWrongPassword)
		require.Error(t, errUnknownEmail)
		assert.Equal(t, errWrongPassword.Error(), errUnknownEmail.Error())
	})
}

func TestAuthService_RefreshAndLogout(t *testing.T) {
	f := newAuthServiceFixture()
	jwtService := newTestJWTService()

	pair, err := jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		CompanyID: uuid.New(),
		UserID:    uuid.New(),
		Email:     "user@acme.example",
	})
	require.NoError(t, err)

	t.Run("refresh rotates the pair and burns the old refresh token", func(t *testing.T) {
		fresh, err := f.service.Refresh(context.Background(), RefreshRequest{RefreshToken: pair.RefreshToken})
		require.NoError(t, err)
		assert.NotEmpty(t, fresh.AccessToken)

		// Replaying the same refresh token must fail.
		_, err = f.service.Refresh(context.Background(), RefreshRequest{RefreshToken: pair.RefreshToken})
		assert.ErrorIs(t, err, shared.ErrUnauthorized)
	})

	t.Run("logout blacklists the access token", func(t *testing.T) {
		claims, err := jwtService.ValidateAccessToken(pair.AccessToken)
		require.NoError(t, err)

		require.NoError(t, f.service.Logout(context.Background(), claims))

		revoked, err := f.blacklist.IsBlacklisted(context.Background(), claims.ID)
		require.NoError(t, err)
		assert.True(t, revoked)
	})
}

func TestAuthService_UpdateProfile(t *testing.T) {
	companyID := uuid.New()

	newUserWithPassword := func(t *testing.T, password string) *identity.User {
		t.Helper()
		user, err := identity.NewUser(companyID, "user@acme.example", "Alex Tan")
		require.NoError(t, err)
		hash, err := auth.HashPassword(password)
		require.NoError(t, err)
		require.NoError(t, user.SetPasswordHash(hash))
		return user
	}

	strPtr := func(s string) *string { return &s }

	t.Run("changes email when confirmation matches", func(t *testing.T) {
		f := newAuthServiceFixture()
		user := newUserWithPassword(t, "correct horse battery")
		f.userRepo.On("FindByIDForCompany", mock.Anything, companyID, user.ID).Return(user, nil)
		f.userRepo.On("ExistsByEmail", mock.Anything, "new@acme.example", &user.ID).Return(false, nil)
		f.userRepo.On("Save", mock.Anything, user).Return(nil)

		resp, err := f.service.UpdateProfile(context.Background(), companyID, user.ID, UpdateProfileRequest{
			Email:        strPtr("new@acme.example"),
			ConfirmEmail: strPtr("new@acme.example"),
		})

		require.NoError(t, err)
		assert.Equal(t, "new@acme.example", resp.Email)
		f.userRepo.AssertExpectations(t)
	})

	t.Run("rejects mismatched email confirmation", func(t *testing.T) {
		f := newAuthServiceFixture()
		user := newUserWithPassword(t, "correct horse battery")
		f.userRepo.On("FindByIDForCompany", mock.Anything, companyID, user.ID).Return(user, nil)

		_, err := f.service.UpdateProfile(context.Background(), companyID, user.ID, UpdateProfileRequest{
			Email:        strPtr("new@acme.example"),
			ConfirmEmail: strPtr("other@acme.example"),
		})

		require.Error(t, err)
		f.userRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("changes password only with the current password", func(t *testing.T) {
		f := newAuthServiceFixture()
		user := newUserWithPassword(t, "correct horse battery")
		f.userRepo.On("FindByIDForCompany", mock.Anything, companyID, user.ID).Return(user, nil)
		f.userRepo.On("Save", mock.Anything, user).Return(nil)

		_, err := f.service.UpdateProfile(context.Background(), companyID, user.ID, UpdateProfileRequest{
			Password:        strPtr("a whole new secret"),
			ConfirmPassword: strPtr("a whole new secret"),
			CurrentPassword: strPtr("correct horse battery"),
		})

		require.NoError(t, err)
		assert.NoError(t, auth.VerifyPassword(user.PasswordHash, "a whole new secret"))
	})

	t.Run("rejects a wrong current password", func(t *testing.T) {
		f := newAuthServiceFixture()
		user := newUserWithPassword(t, "correct horse battery")
		f.userRepo.On("FindByIDForCompany", mock.Anything, companyID, user.ID).Return(user, nil)

		_, err := f.service.UpdateProfile(context.Background(), companyID, user.ID, UpdateProfileRequest{
			Password:        strPtr("a whole new secret"),
			ConfirmPassword: strPtr("a whole new secret"),
			CurrentPassword: strPtr("not the password"),
		})

		require.Error(t, err)
		f.userRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects an email taken by another user", func(t *testing.T) {
		f := newAuthServiceFixture()
		user := newUserWithPassword(t, "correct horse battery")
		f.userRepo.On("FindByIDForCompany", mock.Anything, companyID, user.ID).Return(user, nil)
		f.userRepo.On("ExistsByEmail", mock.Anything, "taken@acme.example", &user.ID).Return(true, nil)

		_, err := f.service.UpdateProfile(context.Background(), companyID, user.ID, UpdateProfileRequest{
			Email:        strPtr("taken@acme.example"),
			ConfirmEmail: strPtr("taken@acme.example"),
		})

		require.Error(t, err)
		f.userRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestAuthService_Config(t *testing.T) {
	userID := uuid.New()

	t.Run("returns defaults when nothing saved", func(t *testing.T) {
		f := newAuthServiceFixture()
		f.configRepo.On("FindByUser", mock.Anything, userID).Return(nil, shared.ErrNotFound)

		resp, err := f.service.GetConfig(context.Background(), userID)
		require.NoError(t, err)
		assert.Equal(t, "en", resp.Language)
		assert.Equal(t, "light", resp.Theme)
		assert.Equal(t, 20, resp.RowsPerPage)
	})

	t.Run("update upserts even on first write", func(t *testing.T) {
		f := newAuthServiceFixture()
		f.configRepo.On("FindByUser", mock.Anything, userID).Return(nil, shared.ErrNotFound)
		f.configRepo.On("Upsert", mock.Anything, mock.AnythingOfType("*identity.UserConfig")).Return(nil)

		resp, err := f.service.UpdateConfig(context.Background(), userID, UpdateUserConfigRequest{
			Language:    "zh",
			Theme:       "dark",
			RowsPerPage: 50,
		})

		require.NoError(t, err)
		assert.Equal(t, "dark", resp.Theme)
		f.configRepo.AssertExpectations(t)
	})
}

func TestPermissionService_HasPermission(t *testing.T) {
	companyID := uuid.New()

	t.Run("owner holds everything", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		roleRepo := new(MockRoleRepository)
		service := NewPermissionService(userRepo, roleRepo)

		owner, err := identity.NewOwner(companyID, "owner@acme.example", "Alex Tan")
		require.NoError(t, err)
		userRepo.On("FindByIDForCompany", mock.Anything, companyID, owner.ID).Return(owner, nil)

		ok, err := service.HasPermission(context.Background(), companyID, owner.ID, "delete_invoice")
		require.NoError(t, err)
		assert.True(t, ok)
		roleRepo.AssertNotCalled(t, "FindByIDsForCompany", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("non-owner gets the union of role permissions", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		roleRepo := new(MockRoleRepository)
		service := NewPermissionService(userRepo, roleRepo)

		role, err := identity.NewRole(companyID, "sales", "Sales")
		require.NoError(t, err)
		require.NoError(t, role.SetPermissions([]string{"add_invoice", "change_invoice"}))

		user, err := identity.NewUser(companyID, "user@acme.example", "Jo Lim")
		require.NoError(t, err)
		user.AssignRoles([]uuid.UUID{role.ID})

		userRepo.On("FindByIDForCompany", mock.Anything, companyID, user.ID).Return(user, nil)
		roleRepo.On("FindByIDsForCompany", mock.Anything, companyID, user.RoleIDs).Return([]identity.Role{*role}, nil)

		ok, err := service.HasPermission(context.Background(), companyID, user.ID, "add_invoice")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = service.HasPermission(context.Background(), companyID, user.ID, "delete_invoice")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("user with no roles holds nothing", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		roleRepo := new(MockRoleRepository)
		service := NewPermissionService(userRepo, roleRepo)

		user, err := identity.NewUser(companyID, "user@acme.example", "Jo Lim")
		require.NoError(t, err)
		userRepo.On("FindByIDForCompany", mock.Anything, companyID, user.ID).Return(user, nil)

		ok, err := service.HasPermission(context.Background(), companyID, user.ID, "add_customer")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
