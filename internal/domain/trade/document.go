// Package trade contains the document aggregates (invoices, sales orders,
// purchase orders, receives, credit notes) and the calculation,
// reconciliation and inventory rules they share.
package trade

import (
	"time"

	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineItem is one product line on a document. The row ID is stable across
// edits and is what update requests use to address an existing line.
type LineItem struct {
	shared.BaseEntity
	DocumentID uuid.UUID
	ProductID  uuid.UUID
	Unit       string
	UnitPrice  decimal.Decimal
	Quantity   int64
	Amount     decimal.Decimal
}

// NewLineItem creates a line from a calculated result
func NewLineItem(documentID, productID uuid.UUID, unit string, line LineResult) LineItem {
	return LineItem{
		BaseEntity: shared.NewBaseEntity(),
		DocumentID: documentID,
		ProductID:  productID,
		Unit:       unit,
		UnitPrice:  line.UnitPrice,
		Quantity:   line.Quantity,
		Amount:     line.Amount,
	}
}

// Document is the shape shared by all monetary documents. Invariant: the
// stored totals always equal CalculateTotals over the current items, the
// GST rate and the discount rate.
type Document struct {
	shared.CompanyAggregateRoot
	Reference      string
	Date           time.Time
	Description    string
	GSTRate        decimal.Decimal
	DiscountRate   decimal.Decimal
	TotalAmount    decimal.Decimal
	DiscountAmount decimal.Decimal
	Net            decimal.Decimal
	GSTAmount      decimal.Decimal
	GrandTotal     decimal.Decimal
	Items          []LineItem
}

func newDocument(companyID uuid.UUID, reference string, date time.Time) (Document, error) {
	if reference == "" {
		return Document{}, shared.NewDomainError("INVALID_INPUT", "Document reference is required")
	}
	return Document{
		CompanyAggregateRoot: shared.NewCompanyAggregateRoot(companyID),
		Reference:            reference,
		Date:                 date,
	}, nil
}

// applyTotals stores a fresh calculation result on the document
func (d *Document) applyTotals(gstRate, discountRate decimal.Decimal, totals Totals) {
	d.GSTRate = gstRate
	d.DiscountRate = discountRate
	d.TotalAmount = totals.TotalAmount
	d.DiscountAmount = totals.DiscountAmount
	d.Net = totals.Net
	d.GSTAmount = totals.GSTAmount
	d.GrandTotal = totals.GrandTotal
	d.UpdatedAt = time.Now()
}

// SetReference changes the document reference. Uniqueness per company and
// document type is enforced by the application layer before saving.
func (d *Document) SetReference(reference string) error {
	if reference == "" {
		return shared.NewDomainError("INVALID_INPUT", "Document reference is required")
	}
	d.Reference = reference
	d.UpdatedAt = time.Now()
	return nil
}

// SetDate changes the document date
func (d *Document) SetDate(date time.Time) {
	d.Date = date
	d.UpdatedAt = time.Now()
}

// SetDescription changes the free-text description
func (d *Document) SetDescription(description string) {
	d.Description = description
	d.UpdatedAt = time.Now()
}

// FindItem returns the line with the given ID, or nil
func (d *Document) FindItem(id uuid.UUID) *LineItem {
	for i := range d.Items {
		if d.Items[i].ID == id {
			return &d.Items[i]
		}
	}
	return nil
}
