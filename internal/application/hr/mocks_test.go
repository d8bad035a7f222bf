package hr

import (
	"context"
	"time"

	"github.com/bizledger/backend/internal/domain/hr"
	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockDepartmentRepository is a mock implementation of hr.DepartmentRepository
type MockDepartmentRepository struct {
	mock.Mock
}

func (m *MockDepartmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*hr.Department, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hr.Department), args.Error(1)
}

func (m *MockDepartmentRepository) FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*hr.Department, error) {
	args := m.Called(ctx, companyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hr.Department), args.Error(1)
}

func (m *MockDepartmentRepository) FindAll(ctx context.Context, filter shared.Filter) ([]hr.Department, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]hr.Department), args.Error(1)
}

func (m *MockDepartmentRepository) FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]hr.Department, error) {
	args := m.Called(ctx, companyID, filter)
	return args.Get(0).([]hr.Department), args.Error(1)
}

func (m *MockDepartmentRepository) Save(ctx context.Context, department *hr.Department) error {
	args := m.Called(ctx, department)
	return args.Error(0)
}

func (m *MockDepartmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDepartmentRepository) DeleteForCompany(ctx context.Context, companyID, id uuid.UUID) error {
	args := m.Called(ctx, companyID, id)
	return args.Error(0)
}

func (m *MockDepartmentRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDepartmentRepository) CountForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, companyID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDepartmentRepository) ExistsByReference(ctx context.Context, companyID uuid.UUID, reference string, excludeID *uuid.UUID) (bool, error) {
	args := m.Called(ctx, companyID, reference, excludeID)
	return args.Bool(0), args.Error(1)
}

var _ hr.DepartmentRepository = (*MockDepartmentRepository)(nil)

// MockDesignationRepository is a mock implementation of hr.DesignationRepository
type MockDesignationRepository struct {
	mock.Mock
}

func (m *MockDesignationRepository) FindByID(ctx context.Context, id uuid.UUID) (*hr.Designation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hr.Designation), args.Error(1)
}

func (m *MockDesignationRepository) FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*hr.Designation, error) {
	args := m.Called(ctx, companyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hr.Designation), args.Error(1)
}

func (m *MockDesignationRepository) FindAll(ctx context.Context, filter shared.Filter) ([]hr.Designation, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]hr.Designation), args.Error(1)
}

func (m *MockDesignationRepository) FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]hr.Designation, error) {
	args := m.Called(ctx, companyID, filter)
	return args.Get(0).([]hr.Designation), args.Error(1)
}

func (m *MockDesignationRepository) Save(ctx context.Context, designation *hr.Designation) error {
	args := m.Called(ctx, designation)
	return args.Error(0)
}

func (m *MockDesignationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDesignationRepository) DeleteForCompany(ctx context.Context, companyID, id uuid.UUID) error {
	args := m.Called(ctx, companyID, id)
	return args.Error(0)
}

func (m *MockDesignationRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDesignationRepository) CountForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, companyID, filter)
	return args.Get(0).(int64), args.Error(1)
}

var _ hr.DesignationRepository = (*MockDesignationRepository)(nil)

// MockEmployeeRepository is a mock implementation of hr.EmployeeRepository
type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) FindByID(ctx context.Context, id uuid.UUID) (*hr.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hr.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*hr.Employee, error) {
	args := m.Called(ctx, companyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hr.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) FindAll(ctx context.Context, filter shared.Filter) ([]hr.Employee, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]hr.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]hr.Employee, error) {
	args := m.Called(ctx, companyID, filter)
	return args.Get(0).([]hr.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) Save(ctx context.Context, employee *hr.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockEmployeeRepository) DeleteForCompany(ctx context.Context, companyID, id uuid.UUID) error {
	args := m.Called(ctx, companyID, id)
	return args.Error(0)
}

func (m *MockEmployeeRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEmployeeRepository) CountForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, companyID, filter)
	return args.Get(0).(int64), args.Error(1)
}

var _ hr.EmployeeRepository = (*MockEmployeeRepository)(nil)

// MockPayslipRepository is a mock implementation of hr.PayslipRepository
type MockPayslipRepository struct {
	mock.Mock
}

func (m *MockPayslipRepository) FindByID(ctx context.Context, id uuid.UUID) (*hr.Payslip, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hr.Payslip), args.Error(1)
}

func (m *MockPayslipRepository) FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*hr.Payslip, error) {
	args := m.Called(ctx, companyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hr.Payslip), args.Error(1)
}

func (m *MockPayslipRepository) FindAll(ctx context.Context, filter shared.Filter) ([]hr.Payslip, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]hr.Payslip), args.Error(1)
}

func (m *MockPayslipRepository) FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]hr.Payslip, error) {
	args := m.Called(ctx, companyID, filter)
	return args.Get(0).([]hr.Payslip), args.Error(1)
}

func (m *MockPayslipRepository) Save(ctx context.Context, payslip *hr.Payslip) error {
	args := m.Called(ctx, payslip)
	return args.Error(0)
}

func (m *MockPayslipRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPayslipRepository) DeleteForCompany(ctx context.Context, companyID, id uuid.UUID) error {
	args := m.Called(ctx, companyID, id)
	return args.Error(0)
}

func (m *MockPayslipRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPayslipRepository) CountForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, companyID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPayslipRepository) ExistsByReference(ctx context.Context, companyID uuid.UUID, reference string, excludeID *uuid.UUID) (bool, error) {
	args := m.Called(ctx, companyID, reference, excludeID)
	return args.Bool(0), args.Error(1)
}

var _ hr.PayslipRepository = (*MockPayslipRepository)(nil)

// MockObjectStorageService is a mock implementation of ObjectStorageService
type MockObjectStorageService struct {
	mock.Mock
}

func (m *MockObjectStorageService) GenerateUploadURL(ctx context.Context, storageKey, contentType string, expiresIn time.Duration) (string, time.Time, error) {
	args := m.Called(ctx, storageKey, contentType, expiresIn)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockObjectStorageService) GenerateDownloadURL(ctx context.Context, storageKey string, expiresIn time.Duration) (string, time.Time, error) {
	args := m.Called(ctx, storageKey, expiresIn)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockObjectStorageService) DeleteObject(ctx context.Context, storageKey string) error {
	args := m.Called(ctx, storageKey)
	return args.Error(0)
}

func (m *MockObjectStorageService) ObjectExists(ctx context.Context, storageKey string) (bool, error) {
	args := m.Called(ctx, storageKey)
	return args.Bool(0), args.Error(1)
}

var _ ObjectStorageService = (*MockObjectStorageService)(nil)
