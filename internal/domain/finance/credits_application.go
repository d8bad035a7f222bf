// Package finance contains the credit application flow: consuming a credit
// note's remaining balance against an invoice of the same customer.
package finance

import (
	"time"

	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreditsApplication links one invoice to one credit note and records how
// much of the note's credit was consumed. Deleting an application reverses
// its effect on the invoice, the note and the customer's credit pool.
type CreditsApplication struct {
	shared.CompanyAggregateRoot
	InvoiceID      uuid.UUID
	CreditNoteID   uuid.UUID
	CustomerID     uuid.UUID
	AmountToCredit decimal.Decimal
	Date           time.Time
}

// NewCreditsApplication creates an application record for an already
// clamped and validated amount.
func NewCreditsApplication(companyID, invoiceID, creditNoteID, customerID uuid.UUID, amount decimal.Decimal, date time.Time) (*CreditsApplication, error) {
	if invoiceID == uuid.Nil || creditNoteID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Invoice and credit note are required")
	}
	if amount.IsNegative() {
		return nil, shared.ErrNegativeAmount
	}
	return &CreditsApplication{
		CompanyAggregateRoot: shared.NewCompanyAggregateRoot(companyID),
		InvoiceID:            invoiceID,
		CreditNoteID:         creditNoteID,
		CustomerID:           customerID,
		AmountToCredit:       amount,
		Date:                 date,
	}, nil
}
