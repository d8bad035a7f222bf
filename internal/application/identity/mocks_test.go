package identity

import (
	"context"

	"github.com/bizledger/backend/internal/domain/identity"
	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// passthroughUnitOfWork runs the function without a real transaction
type passthroughUnitOfWork struct{}

func (passthroughUnitOfWork) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, companyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context, filter shared.Filter) ([]identity.User, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]identity.User), args.Error(1)
}

func (m *MockUserRepository) FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]identity.User, error) {
	args := m.Called(ctx, companyID, filter)
	return args.Get(0).([]identity.User), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteForCompany(ctx context.Context, companyID, id uuid.UUID) error {
	args := m.Called(ctx, companyID, id)
	return args.Error(0)
}

func (m *MockUserRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) CountForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, companyID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string, excludeID *uuid.UUID) (bool, error) {
	args := m.Called(ctx, email, excludeID)
	return args.Bool(0), args.Error(1)
}

var _ identity.UserRepository = (*MockUserRepository)(nil)

// MockRoleRepository is a mock implementation of identity.RoleRepository
type MockRoleRepository struct {
	mock.Mock
}

func (m *MockRoleRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Role, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Role), args.Error(1)
}

func (m *MockRoleRepository) FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*identity.Role, error) {
	args := m.Called(ctx, companyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Role), args.Error(1)
}

func (m *MockRoleRepository) FindAll(ctx context.Context, filter shared.Filter) ([]identity.Role, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]identity.Role), args.Error(1)
}

func (m *MockRoleRepository) FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]identity.Role, error) {
	args := m.Called(ctx, companyID, filter)
	return args.Get(0).([]identity.Role), args.Error(1)
}

func (m *MockRoleRepository) FindByIDsForCompany(ctx context.Context, companyID uuid.UUID, ids []uuid.UUID) ([]identity.Role, error) {
	args := m.Called(ctx, companyID, ids)
	return args.Get(0).([]identity.Role), args.Error(1)
}

func (m *MockRoleRepository) Save(ctx context.Context, role *identity.Role) error {
	args := m.Called(ctx, role)
	return args.Error(0)
}

func (m *MockRoleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRoleRepository) DeleteForCompany(ctx context.Context, companyID, id uuid.UUID) error {
	args := m.Called(ctx, companyID, id)
	return args.Error(0)
}

func (m *MockRoleRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRoleRepository) CountForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, companyID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRoleRepository) ExistsByReference(ctx context.Context, companyID uuid.UUID, reference string, excludeID *uuid.UUID) (bool, error) {
	args := m.Called(ctx, companyID, reference, excludeID)
	return args.Bool(0), args.Error(1)
}

var _ identity.RoleRepository = (*MockRoleRepository)(nil)

// MockCompanyRepository is a mock implementation of identity.CompanyRepository
type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Company), args.Error(1)
}

func (m *MockCompanyRepository) Save(ctx context.Context, company *identity.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

var _ identity.CompanyRepository = (*MockCompanyRepository)(nil)

// MockUserConfigRepository is a mock implementation of identity.UserConfigRepository
type MockUserConfigRepository struct {
	mock.Mock
}

func (m *MockUserConfigRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*identity.UserConfig, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.UserConfig), args.Error(1)
}

func (m *MockUserConfigRepository) Upsert(ctx context.Context, config *identity.UserConfig) error {
	args := m.Called(ctx, config)
	return args.Error(0)
}

var _ identity.UserConfigRepository = (*MockUserConfigRepository)(nil)
