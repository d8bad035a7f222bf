package trade

import (
	"time"

	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreditNoteStatus represents the lifecycle state of a credit note
type CreditNoteStatus string

const (
	CreditNoteStatusDraft     CreditNoteStatus = "DFT"
	CreditNoteStatusOpen      CreditNoteStatus = "OPN"
	CreditNoteStatusCompleted CreditNoteStatus = "CMP"
	CreditNoteStatusCancelled CreditNoteStatus = "CC"
)

// IsValid checks if the status is a known credit note status
func (s CreditNoteStatus) IsValid() bool {
	switch s {
	case CreditNoteStatusDraft, CreditNoteStatusOpen, CreditNoteStatusCompleted, CreditNoteStatusCancelled:
		return true
	}
	return false
}

// AffectsInventory reports whether the note's lines count toward stock
func (s CreditNoteStatus) AffectsInventory() bool {
	return s != CreditNoteStatusDraft && s != CreditNoteStatusCancelled
}

func (s CreditNoteStatus) String() string {
	return string(s)
}

// CreditNote records returned goods for a customer. Its grand total is a
// pool of credit that can be applied to that customer's invoices or
// refunded. Invariant: credits_remaining = grand_total - credits_used -
// refund.
type CreditNote struct {
	Document
	Status           CreditNoteStatus
	CustomerID       uuid.UUID
	CreditsUsed      decimal.Decimal
	CreditsRemaining decimal.Decimal
	Refund           decimal.Decimal
}

// NewCreditNote creates a draft credit note for a customer
func NewCreditNote(companyID uuid.UUID, reference string, customerID uuid.UUID, date time.Time) (*CreditNote, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Customer is required")
	}
	doc, err := newDocument(companyID, reference, date)
	if err != nil {
		return nil, err
	}
	return &CreditNote{
		Document:   doc,
		Status:     CreditNoteStatusDraft,
		CustomerID: customerID,
	}, nil
}

// StockEffect implements the inventory policy for credit notes: returned
// goods go back into stock.
func (cn *CreditNote) StockEffect() StockEffect {
	return EffectIncrease
}

// SetStatus moves the credit note to the given status
func (cn *CreditNote) SetStatus(status CreditNoteStatus) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Unknown credit note status: "+string(status))
	}
	cn.Status = status
	cn.UpdatedAt = time.Now()
	return nil
}

// ApplyCalculation stores a fresh totals calculation and line set, then
// rebalances the remaining credit.
func (cn *CreditNote) ApplyCalculation(gstRate, discountRate decimal.Decimal, totals Totals, items []LineItem) error {
	cn.applyTotals(gstRate, discountRate, totals)
	cn.Items = items
	return cn.rebalance()
}

// UseCredits consumes part of the remaining credit. Callers clamp the
// requested amount to CreditsRemaining before calling.
func (cn *CreditNote) UseCredits(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return shared.ErrNegativeAmount
	}
	if amount.GreaterThan(cn.CreditsRemaining) {
		return shared.NewDomainError("INVALID_INPUT", "Amount exceeds remaining credits")
	}
	cn.CreditsUsed = cn.CreditsUsed.Add(amount)
	return cn.rebalance()
}

// ReleaseCredits returns previously used credit to the pool
func (cn *CreditNote) ReleaseCredits(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return shared.ErrNegativeAmount
	}
	if amount.GreaterThan(cn.CreditsUsed) {
		return shared.NewDomainError("INVALID_INPUT", "Cannot release more credit than was used")
	}
	cn.CreditsUsed = cn.CreditsUsed.Sub(amount)
	return cn.rebalance()
}

// SetRefund records the refunded portion of the note
func (cn *CreditNote) SetRefund(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return shared.ErrNegativeAmount
	}
	if amount.Add(cn.CreditsUsed).GreaterThan(cn.GrandTotal) {
		return shared.NewDomainError("INVALID_INPUT", "Refund plus used credits exceeds the note total")
	}
	cn.Refund = amount
	return cn.rebalance()
}

// rebalance recomputes credits_remaining = grand_total - credits_used - refund
func (cn *CreditNote) rebalance() error {
	remaining := cn.GrandTotal.Sub(cn.CreditsUsed).Sub(cn.Refund)
	if remaining.IsNegative() {
		return shared.NewDomainError("INVALID_STATE", "Used credits and refund exceed the note total")
	}
	cn.CreditsRemaining = remaining
	cn.UpdatedAt = time.Now()
	return nil
}
