package finance

import (
	"context"

	"github.com/bizledger/backend/internal/domain/finance"
	"github.com/bizledger/backend/internal/domain/partner"
	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/bizledger/backend/internal/domain/trade"
	"github.com/bizledger/backend/internal/infrastructure/telemetry"
	"github.com/google/uuid"
)

// CreditsApplicationService moves credit between credit notes and
// invoices. Every application touches four aggregates (the application
// record, the invoice, the note and the customer), so each mutation runs
// inside one unit of work.
type CreditsApplicationService struct {
	appRepo       finance.CreditsApplicationRepository
	invoiceRepo   trade.InvoiceRepository
	noteRepo      trade.CreditNoteRepository
	customerRepo  partner.CustomerRepository
	creditService *finance.CreditService
	uow           shared.UnitOfWork
}

// NewCreditsApplicationService creates a new CreditsApplicationService
func NewCreditsApplicationService(
	appRepo finance.CreditsApplicationRepository,
	invoiceRepo trade.InvoiceRepository,
	noteRepo trade.CreditNoteRepository,
	customerRepo partner.CustomerRepository,
	uow shared.UnitOfWork,
) *CreditsApplicationService {
	return &CreditsApplicationService{
		appRepo:       appRepo,
		invoiceRepo:   invoiceRepo,
		noteRepo:      noteRepo,
		customerRepo:  customerRepo,
		creditService: finance.NewCreditService(),
		uow:           uow,
	}
}

// Apply consumes credit from the note against the invoice. The requested
// amount is clamped to the note's remaining credit; cross-customer
// applications are rejected.
func (s *CreditsApplicationService) Apply(ctx context.Context, companyID uuid.UUID, req CreateCreditsApplicationRequest) (*CreditsApplicationResponse, error) {
	ctx, span := telemetry.StartSpan(ctx, "credits_application", "apply")
	defer span.End()
	telemetry.SetAttributes(span,
		"invoice_id", req.InvoiceID.String(),
		"credit_note_id", req.CreditNoteID.String(),
		"amount", req.Amount.String(),
	)

	invoice, err := s.invoiceRepo.FindByIDForCompany(ctx, companyID, req.InvoiceID)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	note, err := s.noteRepo.FindByIDForCompany(ctx, companyID, req.CreditNoteID)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	customer, err := s.customerRepo.FindByIDForCompany(ctx, companyID, invoice.CustomerID)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	applied, err := s.creditService.Apply(invoice, note, customer, req.Amount)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	app, err := finance.NewCreditsApplication(companyID, invoice.ID, note.ID, invoice.CustomerID, applied, req.Date)
	if err != nil {
		return nil, err
	}
	if req.CreatedBy != nil {
		app.SetCreatedBy(*req.CreatedBy)
	}

	err = s.uow.Execute(ctx, func(ctx context.Context) error {
		if err := s.appRepo.Save(ctx, app); err != nil {
			return err
		}
		invoice.IncrementVersion()
		if err := s.invoiceRepo.SaveWithLock(ctx, invoice); err != nil {
			return err
		}
		note.IncrementVersion()
		if err := s.noteRepo.SaveWithLock(ctx, note); err != nil {
			return err
		}
		customer.IncrementVersion()
		return s.customerRepo.SaveWithLock(ctx, customer)
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	response := ToCreditsApplicationResponse(app)
	return &response, nil
}

// GetByID retrieves a credit application by ID
func (s *CreditsApplicationService) GetByID(ctx context.Context, companyID, appID uuid.UUID) (*CreditsApplicationResponse, error) {
	app, err := s.appRepo.FindByIDForCompany(ctx, companyID, appID)
	if err != nil {
		return nil, err
	}

	response := ToCreditsApplicationResponse(app)
	return &response, nil
}

// List retrieves credit applications with filtering and pagination
func (s *CreditsApplicationService) List(ctx context.Context, companyID uuid.UUID, filter CreditsApplicationListFilter) ([]CreditsApplicationResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		Filters:  make(map[string]any),
	}
	if filter.InvoiceID != nil {
		domainFilter.Filters["invoice_id"] = *filter.InvoiceID
	}
	if filter.CreditNoteID != nil {
		domainFilter.Filters["credit_note_id"] = *filter.CreditNoteID
	}
	if filter.CustomerID != nil {
		domainFilter.Filters["customer_id"] = *filter.CustomerID
	}

	apps, err := s.appRepo.FindAllForCompany(ctx, companyID, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.appRepo.CountForCompany(ctx, companyID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToCreditsApplicationResponses(apps), total, nil
}

// Delete reverses a credit application, restoring the invoice's balance
// due, the note's remaining credit and the customer's credit pool.
func (s *CreditsApplicationService) Delete(ctx context.Context, companyID, appID uuid.UUID) error {
	ctx, span := telemetry.StartSpan(ctx, "credits_application", "reverse")
	defer span.End()
	telemetry.SetAttributes(span, "application_id", appID.String())

	app, err := s.appRepo.FindByIDForCompany(ctx, companyID, appID)
	if err != nil {
		telemetry.RecordError(span, err)
		return err
	}
	invoice, err := s.invoiceRepo.FindByIDForCompany(ctx, companyID, app.InvoiceID)
	if err != nil {
		return err
	}
	note, err := s.noteRepo.FindByIDForCompany(ctx, companyID, app.CreditNoteID)
	if err != nil {
		return err
	}
	customer, err := s.customerRepo.FindByIDForCompany(ctx, companyID, app.CustomerID)
	if err != nil {
		return err
	}

	if err := s.creditService.Reverse(app, invoice, note, customer); err != nil {
		return err
	}

	err = s.uow.Execute(ctx, func(ctx context.Context) error {
		if err := s.appRepo.DeleteForCompany(ctx, companyID, appID); err != nil {
			return err
		}
		invoice.IncrementVersion()
		if err := s.invoiceRepo.SaveWithLock(ctx, invoice); err != nil {
			return err
		}
		note.IncrementVersion()
		if err := s.noteRepo.SaveWithLock(ctx, note); err != nil {
			return err
		}
		customer.IncrementVersion()
		return s.customerRepo.SaveWithLock(ctx, customer)
	})
	if err != nil {
		telemetry.RecordError(span, err)
	}
	return err
}
