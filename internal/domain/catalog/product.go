// Package catalog contains master data sold or purchased by a company:
// product categories, products and payment methods.
package catalog

import (
	"time"

	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is company-scoped master data. Stock and SalesCount are running
// counters: they reflect the net effect of every non-draft, non-cancelled
// document line referencing the product.
type Product struct {
	shared.CompanyAggregateRoot
	Reference  string
	Name       string
	CategoryID *uuid.UUID
	Unit       string
	Cost       decimal.Decimal
	UnitPrice  decimal.Decimal
	Stock      int64
	SalesCount int64
	ImageKey   string
}

// NewProduct creates a new product for a company
func NewProduct(companyID uuid.UUID, reference, name, unit string, unitPrice decimal.Decimal) (*Product, error) {
	if reference == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Product reference is required")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Product name is required")
	}
	if unitPrice.IsNegative() {
		return nil, shared.ErrNegativeAmount
	}
	return &Product{
		CompanyAggregateRoot: shared.NewCompanyAggregateRoot(companyID),
		Reference:            reference,
		Name:                 name,
		Unit:                 unit,
		UnitPrice:            unitPrice,
	}, nil
}

// SetReference changes the product reference
func (p *Product) SetReference(reference string) error {
	if reference == "" {
		return shared.NewDomainError("INVALID_INPUT", "Product reference is required")
	}
	p.Reference = reference
	p.UpdatedAt = time.Now()
	return nil
}

// SetName changes the product name
func (p *Product) SetName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_INPUT", "Product name is required")
	}
	p.Name = name
	p.UpdatedAt = time.Now()
	return nil
}

// SetCategory assigns the product to a category
func (p *Product) SetCategory(categoryID *uuid.UUID) {
	p.CategoryID = categoryID
	p.UpdatedAt = time.Now()
}

// SetUnit changes the unit label
func (p *Product) SetUnit(unit string) {
	p.Unit = unit
	p.UpdatedAt = time.Now()
}

// SetPricing updates cost and unit price
func (p *Product) SetPricing(cost, unitPrice decimal.Decimal) error {
	if cost.IsNegative() || unitPrice.IsNegative() {
		return shared.ErrNegativeAmount
	}
	p.Cost = cost
	p.UnitPrice = unitPrice
	p.UpdatedAt = time.Now()
	return nil
}

// SetImageKey records the object storage key of the product image
func (p *Product) SetImageKey(key string) {
	p.ImageKey = key
	p.UpdatedAt = time.Now()
}

// AdjustCounters applies signed deltas to the stock and sales counters.
// Document flows reverse a line's previous effect before applying its new
// one, so counters stay consistent across edits.
func (p *Product) AdjustCounters(stockDelta, salesDelta int64) {
	p.Stock += stockDelta
	p.SalesCount += salesDelta
	p.UpdatedAt = time.Now()
}
