package finance

import (
	"context"

	"github.com/bizledger/backend/internal/domain/finance"
	"github.com/bizledger/backend/internal/domain/partner"
	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/bizledger/backend/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// passthroughUnitOfWork runs the function without a real transaction
type passthroughUnitOfWork struct{}

func (passthroughUnitOfWork) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// MockCreditsApplicationRepository is a mock implementation of finance.CreditsApplicationRepository
type MockCreditsApplicationRepository struct {
	mock.Mock
}

func (m *MockCreditsApplicationRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.CreditsApplication, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.CreditsApplication), args.Error(1)
}

func (m *MockCreditsApplicationRepository) FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*finance.CreditsApplication, error) {
	args := m.Called(ctx, companyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.CreditsApplication), args.Error(1)
}

func (m *MockCreditsApplicationRepository) FindAll(ctx context.Context, filter shared.Filter) ([]finance.CreditsApplication, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]finance.CreditsApplication), args.Error(1)
}

func (m *MockCreditsApplicationRepository) FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]finance.CreditsApplication, error) {
	args := m.Called(ctx, companyID, filter)
	return args.Get(0).([]finance.CreditsApplication), args.Error(1)
}

func (m *MockCreditsApplicationRepository) Save(ctx context.Context, app *finance.CreditsApplication) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}

func (m *MockCreditsApplicationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCreditsApplicationRepository) DeleteForCompany(ctx context.Context, companyID, id uuid.UUID) error {
	args := m.Called(ctx, companyID, id)
	return args.Error(0)
}

func (m *MockCreditsApplicationRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCreditsApplicationRepository) CountForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, companyID, filter)
	return args.Get(0).(int64), args.Error(1)
}

var _ finance.CreditsApplicationRepository = (*MockCreditsApplicationRepository)(nil)

// MockInvoiceRepository is a mock implementation of trade.InvoiceRepository
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*trade.Invoice, error) {
	args := m.Called(ctx, companyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindAll(ctx context.Context, filter shared.Filter) ([]trade.Invoice, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]trade.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]trade.Invoice, error) {
	args := m.Called(ctx, companyID, filter)
	return args.Get(0).([]trade.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) Save(ctx context.Context, invoice *trade.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) SaveWithLock(ctx context.Context, invoice *trade.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockInvoiceRepository) DeleteForCompany(ctx context.Context, companyID, id uuid.UUID) error {
	args := m.Called(ctx, companyID, id)
	return args.Error(0)
}

func (m *MockInvoiceRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInvoiceRepository) CountForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, companyID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInvoiceRepository) ExistsByReference(ctx context.Context, companyID uuid.UUID, reference string, excludeID *uuid.UUID) (bool, error) {
	args := m.Called(ctx, companyID, reference, excludeID)
	return args.Bool(0), args.Error(1)
}

var _ trade.InvoiceRepository = (*MockInvoiceRepository)(nil)

// MockCreditNoteRepository is a mock implementation of trade.CreditNoteRepository
type MockCreditNoteRepository struct {
	mock.Mock
}

func (m *MockCreditNoteRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.CreditNote, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.CreditNote), args.Error(1)
}

func (m *MockCreditNoteRepository) FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*trade.CreditNote, error) {
	args := m.Called(ctx, companyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.CreditNote), args.Error(1)
}

func (m *MockCreditNoteRepository) FindAll(ctx context.Context, filter shared.Filter) ([]trade.CreditNote, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]trade.CreditNote), args.Error(1)
}

func (m *MockCreditNoteRepository) FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]trade.CreditNote, error) {
	args := m.Called(ctx, companyID, filter)
	return args.Get(0).([]trade.CreditNote), args.Error(1)
}

func (m *MockCreditNoteRepository) Save(ctx context.Context, note *trade.CreditNote) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

func (m *MockCreditNoteRepository) SaveWithLock(ctx context.Context, note *trade.CreditNote) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

func (m *MockCreditNoteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCreditNoteRepository) DeleteForCompany(ctx context.Context, companyID, id uuid.UUID) error {
	args := m.Called(ctx, companyID, id)
	return args.Error(0)
}

func (m *MockCreditNoteRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCreditNoteRepository) CountForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, companyID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCreditNoteRepository) ExistsByReference(ctx context.Context, companyID uuid.UUID, reference string, excludeID *uuid.UUID) (bool, error) {
	args := m.Called(ctx, companyID, reference, excludeID)
	return args.Bool(0), args.Error(1)
}

var _ trade.CreditNoteRepository = (*MockCreditNoteRepository)(nil)

// MockCustomerRepository is a mock implementation of partner.CustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*partner.Customer, error) {
	args := m.Called(ctx, companyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Customer, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]partner.Customer, error) {
	args := m.Called(ctx, companyID, filter)
	return args.Get(0).([]partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Save(ctx context.Context, customer *partner.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) SaveWithLock(ctx context.Context, customer *partner.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCustomerRepository) DeleteForCompany(ctx context.Context, companyID, id uuid.UUID) error {
	args := m.Called(ctx, companyID, id)
	return args.Error(0)
}

func (m *MockCustomerRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCustomerRepository) CountForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, companyID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCustomerRepository) ExistsByReference(ctx context.Context, companyID uuid.UUID, reference string, excludeID *uuid.UUID) (bool, error) {
	args := m.Called(ctx, companyID, reference, excludeID)
	return args.Bool(0), args.Error(1)
}

var _ partner.CustomerRepository = (*MockCustomerRepository)(nil)
