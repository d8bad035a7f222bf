package finance

import (
	"github.com/bizledger/backend/internal/domain/partner"
	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/bizledger/backend/internal/domain/shared/valueobject"
	"github.com/bizledger/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
)

// CreditService applies and reverses credit between credit notes and
// invoices. It mutates the aggregates in memory; the application layer
// persists all of them in one transaction.
type CreditService struct{}

// NewCreditService creates the credit application domain service
func NewCreditService() *CreditService {
	return &CreditService{}
}

// Apply consumes credit from the note against the invoice. The requested
// amount is clamped to the note's remaining credit; the clamped amount is
// returned and is what gets recorded on the CreditsApplication. The note
// must belong to the invoice's customer, and the invoice's balance due
// must stay non-negative.
func (s *CreditService) Apply(invoice *trade.Invoice, note *trade.CreditNote, customer *partner.Customer, requested decimal.Decimal) (decimal.Decimal, error) {
	if requested.IsNegative() {
		return decimal.Zero, shared.ErrNegativeAmount
	}
	if note.CustomerID != invoice.CustomerID {
		return decimal.Zero, shared.ErrCreditWrongCustomer
	}
	if customer.GetID() != invoice.CustomerID {
		return decimal.Zero, shared.NewDomainError("INVALID_INPUT", "Customer does not match the invoice")
	}

	applied := requested
	if applied.GreaterThan(note.CreditsRemaining) {
		applied = note.CreditsRemaining
	}

	if err := invoice.ApplyCredit(applied); err != nil {
		return decimal.Zero, err
	}
	if err := note.UseCredits(applied); err != nil {
		return decimal.Zero, err
	}
	if err := customer.AdjustUnusedCredits(valueobject.NewMoneySGD(applied).Negate()); err != nil {
		return decimal.Zero, err
	}
	return applied, nil
}

// Reverse undoes a recorded application, restoring the invoice's balance
// due, the note's remaining credit and the customer's credit pool to their
// values before the application was created.
func (s *CreditService) Reverse(app *CreditsApplication, invoice *trade.Invoice, note *trade.CreditNote, customer *partner.Customer) error {
	if err := invoice.ReverseCredit(app.AmountToCredit); err != nil {
		return err
	}
	if err := note.ReleaseCredits(app.AmountToCredit); err != nil {
		return err
	}
	return customer.AdjustUnusedCredits(valueobject.NewMoneySGD(app.AmountToCredit))
}
