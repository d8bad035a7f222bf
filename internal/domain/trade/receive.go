package trade

import (
	"time"

	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Receive records goods arriving from a supplier, optionally against a
// purchase order. Received lines raise product stock.
type Receive struct {
	Document
	Status          OrderStatus
	SupplierID      uuid.UUID
	PurchaseOrderID *uuid.UUID
}

// NewReceive creates a draft receive for a supplier
func NewReceive(companyID uuid.UUID, reference string, supplierID uuid.UUID, date time.Time) (*Receive, error) {
	if supplierID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Supplier is required")
	}
	doc, err := newDocument(companyID, reference, date)
	if err != nil {
		return nil, err
	}
	return &Receive{
		Document:   doc,
		Status:     OrderStatusDraft,
		SupplierID: supplierID,
	}, nil
}

// StockEffect implements the inventory policy for receives
func (r *Receive) StockEffect() StockEffect {
	return EffectIncrease
}

// SetStatus moves the receive to the given status
func (r *Receive) SetStatus(status OrderStatus) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Unknown receive status: "+string(status))
	}
	r.Status = status
	r.UpdatedAt = time.Now()
	return nil
}

// LinkPurchaseOrder attaches the receive to the purchase order it fulfils
func (r *Receive) LinkPurchaseOrder(purchaseOrderID *uuid.UUID) {
	r.PurchaseOrderID = purchaseOrderID
	r.UpdatedAt = time.Now()
}

// ApplyCalculation stores a fresh totals calculation and line set
func (r *Receive) ApplyCalculation(gstRate, discountRate decimal.Decimal, totals Totals, items []LineItem) error {
	r.applyTotals(gstRate, discountRate, totals)
	r.Items = items
	return nil
}
