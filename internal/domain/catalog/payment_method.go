package catalog

import (
	"time"

	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// PaymentMethod is a company-defined way of settling invoices (cash, bank
// transfer, cheque and so on), referenced by documents.
type PaymentMethod struct {
	shared.CompanyAggregateRoot
	Name string
}

// NewPaymentMethod creates a new payment method for a company
func NewPaymentMethod(companyID uuid.UUID, name string) (*PaymentMethod, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Payment method name is required")
	}
	return &PaymentMethod{
		CompanyAggregateRoot: shared.NewCompanyAggregateRoot(companyID),
		Name:                 name,
	}, nil
}

// SetName changes the payment method name
func (pm *PaymentMethod) SetName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_INPUT", "Payment method name is required")
	}
	pm.Name = name
	pm.UpdatedAt = time.Now()
	return nil
}
