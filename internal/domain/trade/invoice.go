package trade

import (
	"time"

	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceStatus represents the lifecycle state of an invoice
type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "DFT"
	InvoiceStatusOpen      InvoiceStatus = "OPN"
	InvoiceStatusPaid      InvoiceStatus = "PD"
	InvoiceStatusUnpaid    InvoiceStatus = "UPD"
	InvoiceStatusCancelled InvoiceStatus = "CC"
)

// IsValid checks if the status is a known invoice status
func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusOpen, InvoiceStatusPaid, InvoiceStatusUnpaid, InvoiceStatusCancelled:
		return true
	}
	return false
}

// AffectsInventory reports whether lines of an invoice in this status
// count toward product stock and sales. Drafts and cancelled documents
// never do.
func (s InvoiceStatus) AffectsInventory() bool {
	return s != InvoiceStatusDraft && s != InvoiceStatusCancelled
}

func (s InvoiceStatus) String() string {
	return string(s)
}

// Invoice bills a customer for product lines. Credits from the customer's
// credit notes can be applied against it; balance due never goes negative.
type Invoice struct {
	Document
	Status          InvoiceStatus
	CustomerID      uuid.UUID
	SalesOrderID    *uuid.UUID
	PaymentMethodID *uuid.UUID
	CreditsApplied  decimal.Decimal
	BalanceDue      decimal.Decimal
}

// NewInvoice creates a draft invoice for a customer
func NewInvoice(companyID uuid.UUID, reference string, customerID uuid.UUID, date time.Time) (*Invoice, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Customer is required")
	}
	doc, err := newDocument(companyID, reference, date)
	if err != nil {
		return nil, err
	}
	return &Invoice{
		Document:   doc,
		Status:     InvoiceStatusDraft,
		CustomerID: customerID,
	}, nil
}

// StockEffect implements the inventory policy for invoices
func (inv *Invoice) StockEffect() StockEffect {
	return EffectSale
}

// SetStatus moves the invoice to the given status
func (inv *Invoice) SetStatus(status InvoiceStatus) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Unknown invoice status: "+string(status))
	}
	inv.Status = status
	inv.UpdatedAt = time.Now()
	return nil
}

// SetSalesOrder links the invoice to the sales order it was raised from
func (inv *Invoice) SetSalesOrder(salesOrderID *uuid.UUID) {
	inv.SalesOrderID = salesOrderID
	inv.UpdatedAt = time.Now()
}

// SetPaymentMethod records how the invoice is settled
func (inv *Invoice) SetPaymentMethod(paymentMethodID *uuid.UUID) {
	inv.PaymentMethodID = paymentMethodID
	inv.UpdatedAt = time.Now()
}

// ApplyCalculation stores a fresh totals calculation and the reconciled
// line set, then refreshes the balance due.
func (inv *Invoice) ApplyCalculation(gstRate, discountRate decimal.Decimal, totals Totals, items []LineItem) error {
	inv.applyTotals(gstRate, discountRate, totals)
	inv.Items = items
	return inv.refreshBalance()
}

// ApplyCredit adds a credited amount to the invoice. The resulting balance
// due must stay non-negative.
func (inv *Invoice) ApplyCredit(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return shared.ErrNegativeAmount
	}
	credits := inv.CreditsApplied.Add(amount)
	if inv.GrandTotal.Sub(credits).IsNegative() {
		return shared.ErrCreditExceedsTotal
	}
	inv.CreditsApplied = credits
	return inv.refreshBalance()
}

// ReverseCredit removes a previously applied credit, restoring the balance
// due exactly.
func (inv *Invoice) ReverseCredit(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return shared.ErrNegativeAmount
	}
	if amount.GreaterThan(inv.CreditsApplied) {
		return shared.NewDomainError("INVALID_INPUT", "Cannot reverse more credit than was applied")
	}
	inv.CreditsApplied = inv.CreditsApplied.Sub(amount)
	return inv.refreshBalance()
}

// refreshBalance recomputes balance_due = grand_total - credits_applied
func (inv *Invoice) refreshBalance() error {
	balance := inv.GrandTotal.Sub(inv.CreditsApplied)
	if balance.IsNegative() {
		return shared.ErrCreditExceedsTotal
	}
	inv.BalanceDue = balance
	inv.UpdatedAt = time.Now()
	return nil
}
