package models

import (
	"time"

	"github.com/bizledger/backend/internal/domain/partner"
	"github.com/bizledger/backend/internal/domain/shared/valueobject"
)

// CustomerModel maps partner.Customer to the customers table
type CustomerModel struct {
	CompanyAggregateModel
	Reference     string            `gorm:"size:64;not null;index"`
	Name          string            `gorm:"size:255;not null"`
	ContactName   string            `gorm:"size:255"`
	Email         string            `gorm:"size:255"`
	Phone         string            `gorm:"size:64"`
	Address       string            `gorm:"size:512"`
	Receivables   valueobject.Money `gorm:"type:decimal(20,4);not null"`
	UnusedCredits valueobject.Money `gorm:"type:decimal(20,4);not null"`
	FirstSeen     *time.Time
	LastSeen      *time.Time
}

// TableName specifies the table name
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the model to the domain aggregate
func (m *CustomerModel) ToDomain() *partner.Customer {
	c := &partner.Customer{
		Reference:     m.Reference,
		Name:          m.Name,
		ContactName:   m.ContactName,
		Email:         m.Email,
		Phone:         m.Phone,
		Address:       m.Address,
		Receivables:   m.Receivables,
		UnusedCredits: m.UnusedCredits,
		FirstSeen:     m.FirstSeen,
		LastSeen:      m.LastSeen,
	}
	m.PopulateCompanyAggregateRoot(&c.CompanyAggregateRoot)
	return c
}

// CustomerModelFromDomain converts the domain aggregate to the model
func CustomerModelFromDomain(c *partner.Customer) *CustomerModel {
	m := &CustomerModel{
		Reference:     c.Reference,
		Name:          c.Name,
		ContactName:   c.ContactName,
		Email:         c.Email,
		Phone:         c.Phone,
		Address:       c.Address,
		Receivables:   c.Receivables,
		UnusedCredits: c.UnusedCredits,
		FirstSeen:     c.FirstSeen,
		LastSeen:      c.LastSeen,
	}
	m.FromDomainCompanyAggregateRoot(c.CompanyAggregateRoot)
	return m
}

// SupplierModel maps partner.Supplier to the suppliers table
type SupplierModel struct {
	CompanyAggregateModel
	Reference   string            `gorm:"size:64;not null;index"`
	Name        string            `gorm:"size:255;not null"`
	ContactName string            `gorm:"size:255"`
	Email       string            `gorm:"size:255"`
	Phone       string            `gorm:"size:64"`
	Address     string            `gorm:"size:512"`
	Payables    valueobject.Money `gorm:"type:decimal(20,4);not null"`
	FirstSeen   *time.Time
	LastSeen    *time.Time
}

// TableName specifies the table name
func (SupplierModel) TableName() string {
	return "suppliers"
}

// ToDomain converts the model to the domain aggregate
func (m *SupplierModel) ToDomain() *partner.Supplier {
	s := &partner.Supplier{
		Reference:   m.Reference,
		Name:        m.Name,
		ContactName: m.ContactName,
		Email:       m.Email,
		Phone:       m.Phone,
		Address:     m.Address,
		Payables:    m.Payables,
		FirstSeen:   m.FirstSeen,
		LastSeen:    m.LastSeen,
	}
	m.PopulateCompanyAggregateRoot(&s.CompanyAggregateRoot)
	return s
}

// SupplierModelFromDomain converts the domain aggregate to the model
func SupplierModelFromDomain(s *partner.Supplier) *SupplierModel {
	m := &SupplierModel{
		Reference:   s.Reference,
		Name:        s.Name,
		ContactName: s.ContactName,
		Email:       s.Email,
		Phone:       s.Phone,
		Address:     s.Address,
		Payables:    s.Payables,
		FirstSeen:   s.FirstSeen,
		LastSeen:    s.LastSeen,
	}
	m.FromDomainCompanyAggregateRoot(s.CompanyAggregateRoot)
	return m
}
