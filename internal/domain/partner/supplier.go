package partner

import (
	"time"

	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/bizledger/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// Supplier is a company-scoped counterparty on the purchase side.
type Supplier struct {
	shared.CompanyAggregateRoot
	Reference   string
	Name        string
	ContactName string
	Email       string
	Phone       string
	Address     string
	Payables    valueobject.Money
	FirstSeen   *time.Time
	LastSeen    *time.Time
}

// NewSupplier creates a new supplier for a company
func NewSupplier(companyID uuid.UUID, reference, name string) (*Supplier, error) {
	if reference == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Supplier reference is required")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Supplier name is required")
	}
	return &Supplier{
		CompanyAggregateRoot: shared.NewCompanyAggregateRoot(companyID),
		Reference:            reference,
		Name:                 name,
		Payables:             valueobject.ZeroSGD(),
	}, nil
}

// SetReference changes the supplier reference
func (s *Supplier) SetReference(reference string) error {
	if reference == "" {
		return shared.NewDomainError("INVALID_INPUT", "Supplier reference is required")
	}
	s.Reference = reference
	s.UpdatedAt = time.Now()
	return nil
}

// SetName changes the supplier name
func (s *Supplier) SetName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_INPUT", "Supplier name is required")
	}
	s.Name = name
	s.UpdatedAt = time.Now()
	return nil
}

// SetContact updates the contact fields
func (s *Supplier) SetContact(contactName, email, phone, address string) {
	s.ContactName = contactName
	s.Email = email
	s.Phone = phone
	s.Address = address
	s.UpdatedAt = time.Now()
}

// RecordActivity stamps the supplier as seen on a document dated at the
// given time. FirstSeen is set once; LastSeen only advances, so backdated
// documents never pull it backwards.
func (s *Supplier) RecordActivity(at time.Time) {
	if s.FirstSeen == nil {
		first := at
		s.FirstSeen = &first
	}
	if s.LastSeen == nil || at.After(*s.LastSeen) {
		last := at
		s.LastSeen = &last
	}
	s.UpdatedAt = time.Now()
}

// AdjustPayables moves the payables balance by the given signed amount
func (s *Supplier) AdjustPayables(delta valueobject.Money) error {
	next, err := s.Payables.Add(delta)
	if err != nil {
		return shared.NewDomainError("INVALID_INPUT", err.Error())
	}
	s.Payables = next
	s.UpdatedAt = time.Now()
	return nil
}
