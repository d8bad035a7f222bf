package hr

import (
	"time"

	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PayslipStatus represents the lifecycle state of a payslip
type PayslipStatus string

const (
	PayslipStatusDraft PayslipStatus = "DFT"
	PayslipStatusPaid  PayslipStatus = "PD"
)

// IsValid checks if the status is a known payslip status
func (s PayslipStatus) IsValid() bool {
	return s == PayslipStatusDraft || s == PayslipStatusPaid
}

// PayItem is one pay component on a payslip (basic pay, allowance,
// deduction as a negative amount, and so on).
type PayItem struct {
	shared.BaseEntity
	PayslipID   uuid.UUID
	Description string
	Amount      decimal.Decimal
}

// Payslip records one pay run for an employee. Its total is the sum of
// its components rounded to cents; it carries no GST or discount.
type Payslip struct {
	shared.CompanyAggregateRoot
	Reference   string
	Date        time.Time
	EmployeeID  uuid.UUID
	Status      PayslipStatus
	TotalAmount decimal.Decimal
	Items       []PayItem
}

// NewPayslip creates a draft payslip for an employee
func NewPayslip(companyID uuid.UUID, reference string, employeeID uuid.UUID, date time.Time) (*Payslip, error) {
	if reference == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Payslip reference is required")
	}
	if employeeID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Employee is required")
	}
	return &Payslip{
		CompanyAggregateRoot: shared.NewCompanyAggregateRoot(companyID),
		Reference:            reference,
		Date:                 date,
		EmployeeID:           employeeID,
		Status:               PayslipStatusDraft,
	}, nil
}

// SetReference changes the payslip reference
func (p *Payslip) SetReference(reference string) error {
	if reference == "" {
		return shared.NewDomainError("INVALID_INPUT", "Payslip reference is required")
	}
	p.Reference = reference
	p.UpdatedAt = time.Now()
	return nil
}

// SetStatus moves the payslip to the given status
func (p *Payslip) SetStatus(status PayslipStatus) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Unknown payslip status: "+string(status))
	}
	p.Status = status
	p.UpdatedAt = time.Now()
	return nil
}

// ReplaceItems swaps the pay components and recomputes the total
func (p *Payslip) ReplaceItems(items []PayItem) {
	total := decimal.Zero
	for i := range items {
		items[i].PayslipID = p.ID
		total = total.Add(items[i].Amount)
	}
	p.Items = items
	p.TotalAmount = total.RoundBank(2)
	p.UpdatedAt = time.Now()
}

// NewPayItem creates one pay component
func NewPayItem(payslipID uuid.UUID, description string, amount decimal.Decimal) PayItem {
	return PayItem{
		BaseEntity:  shared.NewBaseEntity(),
		PayslipID:   payslipID,
		Description: description,
		Amount:      amount.RoundBank(2),
	}
}
