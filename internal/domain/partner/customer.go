// Package partner contains the counterparty aggregates: customers the
// company sells to and suppliers it buys from.
package partner

import (
	"time"

	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/bizledger/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// Customer is a company-scoped counterparty on the sales side. Receivables
// and unused credits are running balances maintained by document flows;
// FirstSeen/LastSeen track document activity, not record edits.
type Customer struct {
	shared.CompanyAggregateRoot
	Reference     string
	Name          string
	ContactName   string
	Email         string
	Phone         string
	Address       string
	Receivables   valueobject.Money
	UnusedCredits valueobject.Money
	FirstSeen     *time.Time
	LastSeen      *time.Time
}

// NewCustomer creates a new customer for a company
func NewCustomer(companyID uuid.UUID, reference, name string) (*Customer, error) {
	if reference == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Customer reference is required")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Customer name is required")
	}
	return &Customer{
		CompanyAggregateRoot: shared.NewCompanyAggregateRoot(companyID),
		Reference:            reference,
		Name:                 name,
		Receivables:          valueobject.ZeroSGD(),
		UnusedCredits:        valueobject.ZeroSGD(),
	}, nil
}

// SetReference changes the customer reference
func (c *Customer) SetReference(reference string) error {
	if reference == "" {
		return shared.NewDomainError("INVALID_INPUT", "Customer reference is required")
	}
	c.Reference = reference
	c.UpdatedAt = time.Now()
	return nil
}

// SetName changes the customer name
func (c *Customer) SetName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_INPUT", "Customer name is required")
	}
	c.Name = name
	c.UpdatedAt = time.Now()
	return nil
}

// SetContact updates the contact fields
func (c *Customer) SetContact(contactName, email, phone, address string) {
	c.ContactName = contactName
	c.Email = email
	c.Phone = phone
	c.Address = address
	c.UpdatedAt = time.Now()
}

// RecordActivity stamps the customer as seen on a document dated at the
// given time. FirstSeen is set once; LastSeen only advances, so backdated
// documents never pull it backwards.
func (c *Customer) RecordActivity(at time.Time) {
	if c.FirstSeen == nil {
		first := at
		c.FirstSeen = &first
	}
	if c.LastSeen == nil || at.After(*c.LastSeen) {
		last := at
		c.LastSeen = &last
	}
	c.UpdatedAt = time.Now()
}

// AdjustUnusedCredits moves the customer's credit pool by the given signed
// amount. Credit note creation and refund changes push the pool up or
// down; applying credit to an invoice pulls it down.
func (c *Customer) AdjustUnusedCredits(delta valueobject.Money) error {
	next, err := c.UnusedCredits.Add(delta)
	if err != nil {
		return shared.NewDomainError("INVALID_INPUT", err.Error())
	}
	c.UnusedCredits = next
	c.UpdatedAt = time.Now()
	return nil
}

// AdjustReceivables moves the receivables balance by the given signed amount
func (c *Customer) AdjustReceivables(delta valueobject.Money) error {
	next, err := c.Receivables.Add(delta)
	if err != nil {
		return shared.NewDomainError("INVALID_INPUT", err.Error())
	}
	c.Receivables = next
	c.UpdatedAt = time.Now()
	return nil
}
