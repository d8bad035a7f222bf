package trade

import (
	"time"

	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PurchaseOrder records what was ordered from a supplier. Inventory moves
// when goods arrive on a Receive, not when the order is placed.
type PurchaseOrder struct {
	Document
	Status     OrderStatus
	SupplierID uuid.UUID
}

// NewPurchaseOrder creates a draft purchase order for a supplier
func NewPurchaseOrder(companyID uuid.UUID, reference string, supplierID uuid.UUID, date time.Time) (*PurchaseOrder, error) {
	if supplierID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Supplier is required")
	}
	doc, err := newDocument(companyID, reference, date)
	if err != nil {
		return nil, err
	}
	return &PurchaseOrder{
		Document:   doc,
		Status:     OrderStatusDraft,
		SupplierID: supplierID,
	}, nil
}

// StockEffect implements the inventory policy for purchase orders
func (po *PurchaseOrder) StockEffect() StockEffect {
	return EffectNone
}

// SetStatus moves the order to the given status
func (po *PurchaseOrder) SetStatus(status OrderStatus) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Unknown order status: "+string(status))
	}
	po.Status = status
	po.UpdatedAt = time.Now()
	return nil
}

// MarkCompleted is invoked when a receive is linked against the order
func (po *PurchaseOrder) MarkCompleted() {
	po.Status = OrderStatusCompleted
	po.UpdatedAt = time.Now()
}

// Reopen reverts a completed order back to open, used when the receive
// that completed it is unlinked or deleted.
func (po *PurchaseOrder) Reopen() {
	po.Status = OrderStatusOpen
	po.UpdatedAt = time.Now()
}

// ApplyCalculation stores a fresh totals calculation and line set
func (po *PurchaseOrder) ApplyCalculation(gstRate, discountRate decimal.Decimal, totals Totals, items []LineItem) error {
	po.applyTotals(gstRate, discountRate, totals)
	po.Items = items
	return nil
}
