package models

import (
	"time"

	"github.com/bizledger/backend/internal/domain/finance"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreditsApplicationModel maps finance.CreditsApplication to the
// credits_applications table
type CreditsApplicationModel struct {
	CompanyAggregateModel
	InvoiceID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	CreditNoteID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	CustomerID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	AmountToCredit decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	Date           time.Time       `gorm:"not null"`
}

// TableName specifies the table name
func (CreditsApplicationModel) TableName() string {
	return "credits_applications"
}

// ToDomain converts the model to the domain aggregate
func (m *CreditsApplicationModel) ToDomain() *finance.CreditsApplication {
	app := &finance.CreditsApplication{
		InvoiceID:      m.InvoiceID,
		CreditNoteID:   m.CreditNoteID,
		CustomerID:     m.CustomerID,
		AmountToCredit: m.AmountToCredit,
		Date:           m.Date,
	}
	m.PopulateCompanyAggregateRoot(&app.CompanyAggregateRoot)
	return app
}

// CreditsApplicationModelFromDomain converts the domain aggregate to the model
func CreditsApplicationModelFromDomain(app *finance.CreditsApplication) *CreditsApplicationModel {
	m := &CreditsApplicationModel{
		InvoiceID:      app.InvoiceID,
		CreditNoteID:   app.CreditNoteID,
		CustomerID:     app.CustomerID,
		AmountToCredit: app.AmountToCredit,
		Date:           app.Date,
	}
	m.FromDomainCompanyAggregateRoot(app.CompanyAggregateRoot)
	return m
}
