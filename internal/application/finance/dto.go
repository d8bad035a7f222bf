package finance

import (
	"time"

	"github.com/bizledger/backend/internal/domain/finance"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateCreditsApplicationRequest applies credit from a credit note to an
// invoice of the same customer. The amount is clamped to the note's
// remaining credit; the response carries what was actually applied.
type CreateCreditsApplicationRequest struct {
	InvoiceID    uuid.UUID       `json:"invoice_id" binding:"required"`
	CreditNoteID uuid.UUID       `json:"credit_note_id" binding:"required"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	Date         time.Time       `json:"date" binding:"required"`
	CreatedBy    *uuid.UUID      `json:"-"`
}

// CreditsApplicationResponse represents a credit application in API responses
type CreditsApplicationResponse struct {
	ID             uuid.UUID       `json:"id"`
	CompanyID      uuid.UUID       `json:"company_id"`
	InvoiceID      uuid.UUID       `json:"invoice_id"`
	CreditNoteID   uuid.UUID       `json:"credit_note_id"`
	CustomerID     uuid.UUID       `json:"customer_id"`
	AmountToCredit decimal.Decimal `json:"amount_to_credit"`
	Date           time.Time       `json:"date"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// CreditsApplicationListFilter represents filter options for the list
type CreditsApplicationListFilter struct {
	InvoiceID    *uuid.UUID `form:"invoice_id"`
	CreditNoteID *uuid.UUID `form:"credit_note_id"`
	CustomerID   *uuid.UUID `form:"customer_id"`
	Page         int        `form:"page" binding:"omitempty,min=1"`
	PageSize     int        `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// ToCreditsApplicationResponse converts a domain CreditsApplication to its response
func ToCreditsApplicationResponse(app *finance.CreditsApplication) CreditsApplicationResponse {
	return CreditsApplicationResponse{
		ID:             app.ID,
		CompanyID:      app.CompanyID,
		InvoiceID:      app.InvoiceID,
		CreditNoteID:   app.CreditNoteID,
		CustomerID:     app.CustomerID,
		AmountToCredit: app.AmountToCredit,
		Date:           app.Date,
		CreatedAt:      app.CreatedAt,
		UpdatedAt:      app.UpdatedAt,
	}
}

// ToCreditsApplicationResponses converts a slice of applications to responses
func ToCreditsApplicationResponses(apps []finance.CreditsApplication) []CreditsApplicationResponse {
	responses := make([]CreditsApplicationResponse, len(apps))
	for i := range apps {
		responses[i] = ToCreditsApplicationResponse(&apps[i])
	}
	return responses
}
