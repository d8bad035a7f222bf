package partner

import (
	"time"

	"github.com/bizledger/backend/internal/domain/partner"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// =============================================================================
// Customer DTOs
// =============================================================================

// CreateCustomerRequest represents a request to create a new customer
type CreateCustomerRequest struct {
	Reference   string     `json:"reference" binding:"required,min=1,max=50"`
	Name        string     `json:"name" binding:"required,min=1,max=200"`
	ContactName string     `json:"contact_name" binding:"max=100"`
	Email       string     `json:"email" binding:"omitempty,email,max=200"`
	Phone       string     `json:"phone" binding:"max=50"`
	Address     string     `json:"address" binding:"max=500"`
	CreatedBy   *uuid.UUID `json:"-"` // Set from JWT context, not from request body
}

// UpdateCustomerRequest represents a request to update a customer
type UpdateCustomerRequest struct {
	Reference   *string `json:"reference" binding:"omitempty,min=1,max=50"`
	Name        *string `json:"name" binding:"omitempty,min=1,max=200"`
	ContactName *string `json:"contact_name" binding:"omitempty,max=100"`
	Email       *string `json:"email" binding:"omitempty,email,max=200"`
	Phone       *string `json:"phone" binding:"omitempty,max=50"`
	Address     *string `json:"address" binding:"omitempty,max=500"`
}

// CustomerResponse represents a customer in API responses
type CustomerResponse struct {
	ID            uuid.UUID       `json:"id"`
	CompanyID     uuid.UUID       `json:"company_id"`
	Reference     string          `json:"reference"`
	Name          string          `json:"name"`
	ContactName   string          `json:"contact_name"`
	Email         string          `json:"email"`
	Phone         string          `json:"phone"`
	Address       string          `json:"address"`
	Receivables   decimal.Decimal `json:"receivables"`
	UnusedCredits decimal.Decimal `json:"unused_credits"`
	FirstSeen     *time.Time      `json:"first_seen,omitempty"`
	LastSeen      *time.Time      `json:"last_seen,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	Version       int             `json:"version"`
}

// CustomerListFilter represents filter options for the customer list
type CustomerListFilter struct {
	Search   string `form:"search"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToCustomerResponse converts a domain Customer to CustomerResponse
func ToCustomerResponse(c *partner.Customer) CustomerResponse {
	return CustomerResponse{
		ID:            c.ID,
		CompanyID:     c.CompanyID,
		Reference:     c.Reference,
		Name:          c.Name,
		ContactName:   c.ContactName,
		Email:         c.Email,
		Phone:         c.Phone,
		Address:       c.Address,
		Receivables:   c.Receivables.Amount(),
		UnusedCredits: c.UnusedCredits.Amount(),
		FirstSeen:     c.FirstSeen,
		LastSeen:      c.LastSeen,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
		Version:       c.Version,
	}
}

// ToCustomerResponses converts a slice of domain Customers to responses
func ToCustomerResponses(customers []partner.Customer) []CustomerResponse {
	responses := make([]CustomerResponse, len(customers))
	for i := range customers {
		responses[i] = ToCustomerResponse(&customers[i])
	}
	return responses
}

// =============================================================================
// Supplier DTOs
// =============================================================================

// CreateSupplierRequest represents a request to create a new supplier
type CreateSupplierRequest struct {
	Reference   string     `json:"reference" binding:"required,min=1,max=50"`
	Name        string     `json:"name" binding:"required,min=1,max=200"`
	ContactName string     `json:"contact_name" binding:"max=100"`
	Email       string     `json:"email" binding:"omitempty,email,max=200"`
	Phone       string     `json:"phone" binding:"max=50"`
	Address     string     `json:"address" binding:"max=500"`
	CreatedBy   *uuid.UUID `json:"-"` // Set from JWT context, not from request body
}

// UpdateSupplierRequest represents a request to update a supplier
type UpdateSupplierRequest struct {
	Reference   *string `json:"reference" binding:"omitempty,min=1,max=50"`
	Name        *string `json:"name" binding:"omitempty,min=1,max=200"`
	ContactName *string `json:"contact_name" binding:"omitempty,max=100"`
	Email       *string `json:"email" binding:"omitempty,email,max=200"`
	Phone       *string `json:"phone" binding:"omitempty,max=50"`
	Address     *string `json:"address" binding:"omitempty,max=500"`
}

// SupplierResponse represents a supplier in API responses
type SupplierResponse struct {
	ID          uuid.UUID       `json:"id"`
	CompanyID   uuid.UUID       `json:"company_id"`
	Reference   string          `json:"reference"`
	Name        string          `json:"name"`
	ContactName string          `json:"contact_name"`
	Email       string          `json:"email"`
	Phone       string          `json:"phone"`
	Address     string          `json:"address"`
	Payables    decimal.Decimal `json:"payables"`
	FirstSeen   *time.Time      `json:"first_seen,omitempty"`
	LastSeen    *time.Time      `json:"last_seen,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	Version     int             `json:"version"`
}

// SupplierListFilter represents filter options for the supplier list
type SupplierListFilter struct {
	Search   string `form:"search"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToSupplierResponse converts a domain Supplier to SupplierResponse
func ToSupplierResponse(s *partner.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:          s.ID,
		CompanyID:   s.CompanyID,
		Reference:   s.Reference,
		Name:        s.Name,
		ContactName: s.ContactName,
		Email:       s.Email,
		Phone:       s.Phone,
		Address:     s.Address,
		Payables:    s.Payables.Amount(),
		FirstSeen:   s.FirstSeen,
		LastSeen:    s.LastSeen,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
		Version:     s.Version,
	}
}

// ToSupplierResponses converts a slice of domain Suppliers to responses
func ToSupplierResponses(suppliers []partner.Supplier) []SupplierResponse {
	responses := make([]SupplierResponse, len(suppliers))
	for i := range suppliers {
		responses[i] = ToSupplierResponse(&suppliers[i])
	}
	return responses
}
