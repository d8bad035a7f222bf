package finance

import (
	"context"
	"testing"
	"time"

	"github.com/bizledger/backend/internal/domain/finance"
	"github.com/bizledger/backend/internal/domain/partner"
	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/bizledger/backend/internal/domain/shared/valueobject"
	"github.com/bizledger/backend/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type creditsApplicationFixture struct {
	service      *CreditsApplicationService
	appRepo      *MockCreditsApplicationRepository
	invoiceRepo  *MockInvoiceRepository
	noteRepo     *MockCreditNoteRepository
	customerRepo *MockCustomerRepository
}

func newCreditsApplicationFixture() *creditsApplicationFixture {
	appRepo := new(MockCreditsApplicationRepository)
	invoiceRepo := new(MockInvoiceRepository)
	noteRepo := new(MockCreditNoteRepository)
	customerRepo := new(MockCustomerRepository)

	service := NewCreditsApplicationService(appRepo, invoiceRepo, noteRepo, customerRepo, passthroughUnitOfWork{})
	return &creditsApplicationFixture{
		service:      service,
		appRepo:      appRepo,
		invoiceRepo:  invoiceRepo,
		noteRepo:     noteRepo,
		customerRepo: customerRepo,
	}
}

// newOpenInvoice builds an open invoice with a single line worth the given
// amount, GST-free so the balance due equals the line total.
func newOpenInvoice(t *testing.T, companyID, customerID uuid.UUID, amount string) *trade.Invoice {
	t.Helper()
	invoice, err := trade.NewInvoice(companyID, "INV-001", customerID, time.Now())
	require.NoError(t, err)

	totals, results, err := trade.CalculateTotals(decimal.Zero, decimal.Zero, []trade.LineInput{
		{Quantity: decimal.NewFromInt(1), UnitPrice: decimal.RequireFromString(amount)},
	})
	require.NoError(t, err)
	items := []trade.LineItem{trade.NewLineItem(invoice.ID, uuid.New(), "pcs", results[0])}
	require.NoError(t, invoice.ApplyCalculation(decimal.Zero, decimal.Zero, totals, items))
	require.NoError(t, invoice.SetStatus(trade.InvoiceStatusOpen))
	return invoice
}

func newOpenCreditNote(t *testing.T, companyID, customerID uuid.UUID, amount string) *trade.CreditNote {
	t.Helper()
	note, err := trade.NewCreditNote(companyID, "CN-001", customerID, time.Now())
	require.NoError(t, err)

	totals, results, err := trade.CalculateTotals(decimal.Zero, decimal.Zero, []trade.LineInput{
		{Quantity: decimal.NewFromInt(1), UnitPrice: decimal.RequireFromString(amount)},
	})
	require.NoError(t, err)
	items := []trade.LineItem{trade.NewLineItem(note.ID, uuid.New(), "pcs", results[0])}
	require.NoError(t, note.ApplyCalculation(decimal.Zero, decimal.Zero, totals, items))
	require.NoError(t, note.SetStatus(trade.CreditNoteStatusOpen))
	return note
}

func newCustomerWithCredits(t *testing.T, companyID uuid.UUID, credits string) *partner.Customer {
	t.Helper()
	customer, err := partner.NewCustomer(companyID, "ACME", "Acme Pte Ltd")
	require.NoError(t, err)
	d, err := decimal.NewFromString(credits)
	require.NoError(t, err)
	require.NoError(t, customer.AdjustUnusedCredits(valueobject.NewMoneySGD(d)))
	return customer
}

func TestCreditsApplicationService_Apply(t *testing.T) {
	companyID := uuid.New()

	t.Run("clamps the requested amount to the note's remaining credit", func(t *testing.T) {
		f := newCreditsApplicationFixture()
		customer := newCustomerWithCredits(t, companyID, "40")
		invoice := newOpenInvoice(t, companyID, customer.ID, "100")
		note := newOpenCreditNote(t, companyID, customer.ID, "40")

		f.invoiceRepo.On("FindByIDForCompany", mock.Anything, companyID, invoice.ID).Return(invoice, nil)
		f.noteRepo.On("FindByIDForCompany", mock.Anything, companyID, note.ID).Return(note, nil)
		f.customerRepo.On("FindByIDForCompany", mock.Anything, companyID, customer.ID).Return(customer, nil)
		f.appRepo.On("Save", mock.Anything, mock.AnythingOfType("*finance.CreditsApplication")).Return(nil)
		f.invoiceRepo.On("SaveWithLock", mock.Anything, invoice).Return(nil)
		f.noteRepo.On("SaveWithLock", mock.Anything, note).Return(nil)
		f.customerRepo.On("SaveWithLock", mock.Anything, customer).Return(nil)

		resp, err := f.service.Apply(context.Background(), companyID, CreateCreditsApplicationRequest{
			InvoiceID:    invoice.ID,
			CreditNoteID: note.ID,
			Amount:       decimal.NewFromInt(100),
			Date:         time.Now(),
		})

		require.NoError(t, err)
		assert.True(t, resp.AmountToCredit.Equal(decimal.NewFromInt(40)), "got %s", resp.AmountToCredit)
		assert.Equal(t, customer.ID, resp.CustomerID)
		assert.True(t, invoice.BalanceDue.Equal(decimal.NewFromInt(60)), "got %s", invoice.BalanceDue)
		assert.True(t, note.CreditsRemaining.IsZero())
		assert.True(t, customer.UnusedCredits.IsZero())
	})

	t.Run("rejects a note of another customer", func(t *testing.T) {
		f := newCreditsApplicationFixture()
		customer := newCustomerWithCredits(t, companyID, "40")
		invoice := newOpenInvoice(t, companyID, customer.ID, "100")
		foreignNote := newOpenCreditNote(t, companyID, uuid.New(), "40")

		f.invoiceRepo.On("FindByIDForCompany", mock.Anything, companyID, invoice.ID).Return(invoice, nil)
		f.noteRepo.On("FindByIDForCompany", mock.Anything, companyID, foreignNote.ID).Return(foreignNote, nil)
		f.customerRepo.On("FindByIDForCompany", mock.Anything, companyID, customer.ID).Return(customer, nil)

		_, err := f.service.Apply(context.Background(), companyID, CreateCreditsApplicationRequest{
			InvoiceID:    invoice.ID,
			CreditNoteID: foreignNote.ID,
			Amount:       decimal.NewFromInt(10),
			Date:         time.Now(),
		})

		require.ErrorIs(t, err, shared.ErrCreditWrongCustomer)
		f.appRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		assert.True(t, invoice.CreditsApplied.IsZero(), "a rejected application must not touch the invoice")
	})

	t.Run("rejects a negative amount", func(t *testing.T) {
		f := newCreditsApplicationFixture()
		customer := newCustomerWithCredits(t, companyID, "40")
		invoice := newOpenInvoice(t, companyID, customer.ID, "100")
		note := newOpenCreditNote(t, companyID, customer.ID, "40")

		f.invoiceRepo.On("FindByIDForCompany", mock.Anything, companyID, invoice.ID).Return(invoice, nil)
		f.noteRepo.On("FindByIDForCompany", mock.Anything, companyID, note.ID).Return(note, nil)
		f.customerRepo.On("FindByIDForCompany", mock.Anything, companyID, customer.ID).Return(customer, nil)

		_, err := f.service.Apply(context.Background(), companyID, CreateCreditsApplicationRequest{
			InvoiceID:    invoice.ID,
			CreditNoteID: note.ID,
			Amount:       decimal.NewFromInt(-5),
			Date:         time.Now(),
		})

		require.ErrorIs(t, err, shared.ErrNegativeAmount)
		f.appRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestCreditsApplicationService_Delete(t *testing.T) {
	companyID := uuid.New()

	t.Run("restores the invoice, the note and the credit pool", func(t *testing.T) {
		f := newCreditsApplicationFixture()
		customer := newCustomerWithCredits(t, companyID, "40")
		invoice := newOpenInvoice(t, companyID, customer.ID, "100")
		note := newOpenCreditNote(t, companyID, customer.ID, "40")

		// Replay the application so the aggregates carry its effect.
		applied, err := finance.NewCreditService().Apply(invoice, note, customer, decimal.NewFromInt(40))
		require.NoError(t, err)
		app, err := finance.NewCreditsApplication(companyID, invoice.ID, note.ID, customer.ID, applied, time.Now())
		require.NoError(t, err)

		f.appRepo.On("FindByIDForCompany", mock.Anything, companyID, app.ID).Return(app, nil)
		f.invoiceRepo.On("FindByIDForCompany", mock.Anything, companyID, invoice.ID).Return(invoice, nil)
		f.noteRepo.On("FindByIDForCompany", mock.Anything, companyID, note.ID).Return(note, nil)
		f.customerRepo.On("FindByIDForCompany", mock.Anything, companyID, customer.ID).Return(customer, nil)
		f.appRepo.On("DeleteForCompany", mock.Anything, companyID, app.ID).Return(nil)
		f.invoiceRepo.On("SaveWithLock", mock.Anything, invoice).Return(nil)
		f.noteRepo.On("SaveWithLock", mock.Anything, note).Return(nil)
		f.customerRepo.On("SaveWithLock", mock.Anything, customer).Return(nil)

		require.NoError(t, f.service.Delete(context.Background(), companyID, app.ID))

		assert.True(t, invoice.BalanceDue.Equal(decimal.NewFromInt(100)), "got %s", invoice.BalanceDue)
		assert.True(t, note.CreditsRemaining.Equal(decimal.NewFromInt(40)), "got %s", note.CreditsRemaining)
		assert.True(t, customer.UnusedCredits.Amount().Equal(decimal.NewFromInt(40)),
			"got %s", customer.UnusedCredits.Amount())
		f.appRepo.AssertExpectations(t)
	})
}
