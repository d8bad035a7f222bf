package trade

import (
	"time"

	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus represents the lifecycle state of sales orders, purchase
// orders and receives, which share one status set.
type OrderStatus string

const (
	OrderStatusDraft     OrderStatus = "DFT"
	OrderStatusOpen      OrderStatus = "OPN"
	OrderStatusCompleted OrderStatus = "CMP"
	OrderStatusCancelled OrderStatus = "CC"
)

// IsValid checks if the status is a known order status
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusDraft, OrderStatusOpen, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// AffectsInventory reports whether lines in this status count toward stock
func (s OrderStatus) AffectsInventory() bool {
	return s != OrderStatusDraft && s != OrderStatusCancelled
}

func (s OrderStatus) String() string {
	return string(s)
}

// SalesOrder records what a customer ordered. It never moves inventory
// itself; stock moves when the order is invoiced.
type SalesOrder struct {
	Document
	Status     OrderStatus
	CustomerID uuid.UUID
}

// NewSalesOrder creates a draft sales order for a customer
func NewSalesOrder(companyID uuid.UUID, reference string, customerID uuid.UUID, date time.Time) (*SalesOrder, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Customer is required")
	}
	doc, err := newDocument(companyID, reference, date)
	if err != nil {
		return nil, err
	}
	return &SalesOrder{
		Document:   doc,
		Status:     OrderStatusDraft,
		CustomerID: customerID,
	}, nil
}

// StockEffect implements the inventory policy for sales orders
func (so *SalesOrder) StockEffect() StockEffect {
	return EffectNone
}

// SetStatus moves the order to the given status
func (so *SalesOrder) SetStatus(status OrderStatus) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Unknown order status: "+string(status))
	}
	so.Status = status
	so.UpdatedAt = time.Now()
	return nil
}

// ApplyCalculation stores a fresh totals calculation and line set
func (so *SalesOrder) ApplyCalculation(gstRate, discountRate decimal.Decimal, totals Totals, items []LineItem) error {
	so.applyTotals(gstRate, discountRate, totals)
	so.Items = items
	return nil
}
