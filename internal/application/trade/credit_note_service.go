package trade

import (
	"context"

	"github.com/bizledger/backend/internal/domain/catalog"
	"github.com/bizledger/backend/internal/domain/partner"
	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/bizledger/backend/internal/domain/shared/valueobject"
	"github.com/bizledger/backend/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreditNoteService handles credit note operations. Returned lines go back
// into stock, and the note's remaining credit feeds the customer's unused
// credit pool.
type CreditNoteService struct {
	noteRepo     trade.CreditNoteRepository
	customerRepo partner.CustomerRepository
	productRepo  catalog.ProductRepository
	uow          shared.UnitOfWork
}

// NewCreditNoteService creates a new CreditNoteService
func NewCreditNoteService(
	noteRepo trade.CreditNoteRepository,
	customerRepo partner.CustomerRepository,
	productRepo catalog.ProductRepository,
	uow shared.UnitOfWork,
) *CreditNoteService {
	return &CreditNoteService{
		noteRepo:     noteRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		uow:          uow,
	}
}

// Create creates a credit note
func (s *CreditNoteService) Create(ctx context.Context, companyID uuid.UUID, req CreateCreditNoteRequest) (*CreditNoteResponse, error) {
	exists, err := s.noteRepo.ExistsByReference(ctx, companyID, req.Reference, nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Credit note with this reference already exists")
	}

	customer, err := s.customerRepo.FindByIDForCompany(ctx, companyID, req.CustomerID)
	if err != nil {
		return nil, err
	}

	calc, err := calculateLines(ctx, s.productRepo, companyID, req.GSTRate, req.DiscountRate, req.Items)
	if err != nil {
		return nil, err
	}

	note, err := trade.NewCreditNote(companyID, req.Reference, req.CustomerID, req.Date)
	if err != nil {
		return nil, err
	}
	if req.Description != "" {
		note.SetDescription(req.Description)
	}
	if req.Status != "" {
		if err := note.SetStatus(trade.CreditNoteStatus(req.Status)); err != nil {
			return nil, err
		}
	}
	if err := note.ApplyCalculation(req.GSTRate, req.DiscountRate, calc.totals, newLineItems(note.ID, calc.incoming)); err != nil {
		return nil, err
	}
	if req.CreatedBy != nil {
		note.SetCreatedBy(*req.CreatedBy)
	}

	err = s.uow.Execute(ctx, func(ctx context.Context) error {
		if err := s.noteRepo.Save(ctx, note); err != nil {
			return err
		}
		if note.Status.AffectsInventory() {
			deltas := make(counterDeltas)
			deltas.addItems(note.Items, note.StockEffect(), true)
			if err := deltas.apply(ctx, s.productRepo, companyID); err != nil {
				return err
			}
			if err := customer.AdjustUnusedCredits(valueobject.NewMoneySGD(note.CreditsRemaining)); err != nil {
				return err
			}
		}
		customer.RecordActivity(req.Date)
		customer.IncrementVersion()
		return s.customerRepo.SaveWithLock(ctx, customer)
	})
	if err != nil {
		return nil, err
	}

	response := ToCreditNoteResponse(note)
	return &response, nil
}

// GetByID retrieves a credit note by ID
func (s *CreditNoteService) GetByID(ctx context.Context, companyID, noteID uuid.UUID) (*CreditNoteResponse, error) {
	note, err := s.noteRepo.FindByIDForCompany(ctx, companyID, noteID)
	if err != nil {
		return nil, err
	}

	response := ToCreditNoteResponse(note)
	return &response, nil
}

// List retrieves credit notes with filtering and pagination
func (s *CreditNoteService) List(ctx context.Context, companyID uuid.UUID, filter DocumentListFilter) ([]CreditNoteResponse, int64, error) {
	domainFilter := documentFilter(filter)
	notes, err := s.noteRepo.FindAllForCompany(ctx, companyID, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.noteRepo.CountForCompany(ctx, companyID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToCreditNoteResponses(notes), total, nil
}

// Update edits a credit note. Stock moves by the reconciled line changes
// and the customer's unused credit pool moves by the change in remaining
// credit, including refund changes.
func (s *CreditNoteService) Update(ctx context.Context, companyID, noteID uuid.UUID, req UpdateCreditNoteRequest) (*CreditNoteResponse, error) {
	note, err := s.noteRepo.FindByIDForCompany(ctx, companyID, noteID)
	if err != nil {
		return nil, err
	}

	if req.Reference != nil && *req.Reference != note.Reference {
		exists, err := s.noteRepo.ExistsByReference(ctx, companyID, *req.Reference, &noteID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Credit note with this reference already exists")
		}
		if err := note.SetReference(*req.Reference); err != nil {
			return nil, err
		}
	}
	if req.Date != nil {
		note.SetDate(*req.Date)
	}
	if req.Description != nil {
		note.SetDescription(*req.Description)
	}

	prevActive := note.Status.AffectsInventory()
	prevRemaining := note.CreditsRemaining
	prevItems := note.Items

	gstRate := note.GSTRate
	if req.GSTRate != nil {
		gstRate = *req.GSTRate
	}
	discountRate := note.DiscountRate
	if req.DiscountRate != nil {
		discountRate = *req.DiscountRate
	}
	requests := requestsFromItems(note.Items)
	if req.Items != nil {
		requests = *req.Items
	}

	calc, err := calculateLines(ctx, s.productRepo, companyID, gstRate, discountRate, requests)
	if err != nil {
		return nil, err
	}
	plan := trade.PlanReconciliation(note.ID, note.Items, calc.incoming)
	if err := note.ApplyCalculation(gstRate, discountRate, calc.totals, plan.Apply()); err != nil {
		return nil, err
	}
	if req.Refund != nil {
		if err := note.SetRefund(*req.Refund); err != nil {
			return nil, err
		}
	}
	if req.Status != nil {
		if err := note.SetStatus(trade.CreditNoteStatus(*req.Status)); err != nil {
			return nil, err
		}
	}
	nextActive := note.Status.AffectsInventory()

	deltas := planDeltas(note.StockEffect(), plan, prevItems, prevActive, nextActive)

	err = s.uow.Execute(ctx, func(ctx context.Context) error {
		note.IncrementVersion()
		if err := s.noteRepo.SaveWithLock(ctx, note); err != nil {
			return err
		}
		if err := deltas.apply(ctx, s.productRepo, companyID); err != nil {
			return err
		}
		return s.adjustCreditPool(ctx, companyID, note, balanceDelta(prevActive, prevRemaining, nextActive, note.CreditsRemaining))
	})
	if err != nil {
		return nil, err
	}

	response := ToCreditNoteResponse(note)
	return &response, nil
}

// Delete removes a credit note, reversing its stock and credit pool
// effects. Notes with used credits must have their applications deleted
// first.
func (s *CreditNoteService) Delete(ctx context.Context, companyID, noteID uuid.UUID) error {
	note, err := s.noteRepo.FindByIDForCompany(ctx, companyID, noteID)
	if err != nil {
		return err
	}
	if !note.CreditsUsed.IsZero() {
		return shared.NewDomainError("CANNOT_DELETE", "Credit note has been applied to invoices; delete the applications first")
	}

	return s.uow.Execute(ctx, func(ctx context.Context) error {
		if note.Status.AffectsInventory() {
			deltas := make(counterDeltas)
			deltas.addItems(note.Items, note.StockEffect(), false)
			if err := deltas.apply(ctx, s.productRepo, companyID); err != nil {
				return err
			}
			if err := s.adjustCreditPool(ctx, companyID, note, note.CreditsRemaining.Neg()); err != nil {
				return err
			}
		}
		return s.noteRepo.DeleteForCompany(ctx, companyID, noteID)
	})
}

func (s *CreditNoteService) adjustCreditPool(ctx context.Context, companyID uuid.UUID, note *trade.CreditNote, delta decimal.Decimal) error {
	customer, err := s.customerRepo.FindByIDForCompany(ctx, companyID, note.CustomerID)
	if err != nil {
		return err
	}
	if !delta.IsZero() {
		if err := customer.AdjustUnusedCredits(valueobject.NewMoneySGD(delta)); err != nil {
			return err
		}
	}
	customer.RecordActivity(note.Date)
	customer.IncrementVersion()
	return s.customerRepo.SaveWithLock(ctx, customer)
}
