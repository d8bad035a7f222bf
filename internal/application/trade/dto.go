package trade

import (
	"time"

	"github.com/bizledger/backend/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// =============================================================================
// Line DTOs
// =============================================================================

// LineItemRequest is one product line on an incoming document. ID addresses
// an existing row on updates; omit it for new lines.
type LineItemRequest struct {
	ID        *uuid.UUID      `json:"id"`
	ProductID uuid.UUID       `json:"product_id" binding:"required"`
	Quantity  decimal.Decimal `json:"quantity" binding:"required"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// LineItemResponse represents one document line in API responses
type LineItemResponse struct {
	ID        uuid.UUID       `json:"id"`
	ProductID uuid.UUID       `json:"product_id"`
	Unit      string          `json:"unit"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int64           `json:"quantity"`
	Amount    decimal.Decimal `json:"amount"`
}

func toLineItemResponses(items []trade.LineItem) []LineItemResponse {
	responses := make([]LineItemResponse, len(items))
	for i, item := range items {
		responses[i] = LineItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Unit:      item.Unit,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			Amount:    item.Amount,
		}
	}
	return responses
}

// DocumentListFilter represents filter options shared by document lists
type DocumentListFilter struct {
	Search     string     `form:"search"`
	Status     string     `form:"status"`
	CustomerID *uuid.UUID `form:"customer_id"`
	SupplierID *uuid.UUID `form:"supplier_id"`
	Page       int        `form:"page" binding:"omitempty,min=1"`
	PageSize   int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy    string     `form:"order_by"`
	OrderDir   string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// =============================================================================
// Invoice DTOs
// =============================================================================

// CreateInvoiceRequest represents a request to create an invoice
type CreateInvoiceRequest struct {
	Reference       string            `json:"reference" binding:"required,min=1,max=50"`
	CustomerID      uuid.UUID         `json:"customer_id" binding:"required"`
	Date            time.Time         `json:"date" binding:"required"`
	Description     string            `json:"description" binding:"max=1000"`
	Status          string            `json:"status" binding:"omitempty,oneof=DFT OPN PD UPD CC"`
	GSTRate         decimal.Decimal   `json:"gst_rate"`
	DiscountRate    decimal.Decimal   `json:"discount_rate"`
	SalesOrderID    *uuid.UUID        `json:"sales_order_id"`
	PaymentMethodID *uuid.UUID        `json:"payment_method_id"`
	Items           []LineItemRequest `json:"items" binding:"required,min=1,dive"`
	CreatedBy       *uuid.UUID        `json:"-"`
}

// UpdateInvoiceRequest represents a request to update an invoice. Absent
// fields keep their stored values; sending items replaces the line set.
type UpdateInvoiceRequest struct {
	Reference       *string            `json:"reference" binding:"omitempty,min=1,max=50"`
	Date            *time.Time         `json:"date"`
	Description     *string            `json:"description" binding:"omitempty,max=1000"`
	Status          *string            `json:"status" binding:"omitempty,oneof=DFT OPN PD UPD CC"`
	GSTRate         *decimal.Decimal   `json:"gst_rate"`
	DiscountRate    *decimal.Decimal   `json:"discount_rate"`
	SalesOrderID    *uuid.UUID         `json:"sales_order_id"`
	PaymentMethodID *uuid.UUID         `json:"payment_method_id"`
	Items           *[]LineItemRequest `json:"items" binding:"omitempty,min=1,dive"`
}

// InvoiceResponse represents an invoice in API responses
type InvoiceResponse struct {
	ID              uuid.UUID          `json:"id"`
	CompanyID       uuid.UUID          `json:"company_id"`
	Reference       string             `json:"reference"`
	CustomerID      uuid.UUID          `json:"customer_id"`
	Date            time.Time          `json:"date"`
	Description     string             `json:"description"`
	Status          string             `json:"status"`
	GSTRate         decimal.Decimal    `json:"gst_rate"`
	DiscountRate    decimal.Decimal    `json:"discount_rate"`
	TotalAmount     decimal.Decimal    `json:"total_amount"`
	DiscountAmount  decimal.Decimal    `json:"discount_amount"`
	Net             decimal.Decimal    `json:"net"`
	GSTAmount       decimal.Decimal    `json:"gst_amount"`
	GrandTotal      decimal.Decimal    `json:"grand_total"`
	CreditsApplied  decimal.Decimal    `json:"credits_applied"`
	BalanceDue      decimal.Decimal    `json:"balance_due"`
	SalesOrderID    *uuid.UUID         `json:"sales_order_id,omitempty"`
	PaymentMethodID *uuid.UUID         `json:"payment_method_id,omitempty"`
	Items           []LineItemResponse `json:"items"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
	Version         int                `json:"version"`
}

// ToInvoiceResponse converts a domain Invoice to InvoiceResponse
func ToInvoiceResponse(inv *trade.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:              inv.ID,
		CompanyID:       inv.CompanyID,
		Reference:       inv.Reference,
		CustomerID:      inv.CustomerID,
		Date:            inv.Date,
		Description:     inv.Description,
		Status:          inv.Status.String(),
		GSTRate:         inv.GSTRate,
		DiscountRate:    inv.DiscountRate,
		TotalAmount:     inv.TotalAmount,
		DiscountAmount:  inv.DiscountAmount,
		Net:             inv.Net,
		GSTAmount:       inv.GSTAmount,
		GrandTotal:      inv.GrandTotal,
		CreditsApplied:  inv.CreditsApplied,
		BalanceDue:      inv.BalanceDue,
		SalesOrderID:    inv.SalesOrderID,
		PaymentMethodID: inv.PaymentMethodID,
		Items:           toLineItemResponses(inv.Items),
		CreatedAt:       inv.CreatedAt,
		UpdatedAt:       inv.UpdatedAt,
		Version:         inv.Version,
	}
}

// ToInvoiceResponses converts a slice of domain Invoices to responses
func ToInvoiceResponses(invoices []trade.Invoice) []InvoiceResponse {
	responses := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		responses[i] = ToInvoiceResponse(&invoices[i])
	}
	return responses
}

// =============================================================================
// Sales order DTOs
// =============================================================================

// CreateSalesOrderRequest represents a request to create a sales order
type CreateSalesOrderRequest struct {
	Reference    string            `json:"reference" binding:"required,min=1,max=50"`
	CustomerID   uuid.UUID         `json:"customer_id" binding:"required"`
	Date         time.Time         `json:"date" binding:"required"`
	Description  string            `json:"description" binding:"max=1000"`
	Status       string            `json:"status" binding:"omitempty,oneof=DFT OPN CMP CC"`
	GSTRate      decimal.Decimal   `json:"gst_rate"`
	DiscountRate decimal.Decimal   `json:"discount_rate"`
	Items        []LineItemRequest `json:"items" binding:"required,min=1,dive"`
	CreatedBy    *uuid.UUID        `json:"-"`
}

// UpdateSalesOrderRequest represents a request to update a sales order
type UpdateSalesOrderRequest struct {
	Reference    *string            `json:"reference" binding:"omitempty,min=1,max=50"`
	Date         *time.Time         `json:"date"`
	Description  *string            `json:"description" binding:"omitempty,max=1000"`
	Status       *string            `json:"status" binding:"omitempty,oneof=DFT OPN CMP CC"`
	GSTRate      *decimal.Decimal   `json:"gst_rate"`
	DiscountRate *decimal.Decimal   `json:"discount_rate"`
	Items        *[]LineItemRequest `json:"items" binding:"omitempty,min=1,dive"`
}

// SalesOrderResponse represents a sales order in API responses
type SalesOrderResponse struct {
	ID             uuid.UUID          `json:"id"`
	CompanyID      uuid.UUID          `json:"company_id"`
	Reference      string             `json:"reference"`
	CustomerID     uuid.UUID          `json:"customer_id"`
	Date           time.Time          `json:"date"`
	Description    string             `json:"description"`
	Status         string             `json:"status"`
	GSTRate        decimal.Decimal    `json:"gst_rate"`
	DiscountRate   decimal.Decimal    `json:"discount_rate"`
	TotalAmount    decimal.Decimal    `json:"total_amount"`
	DiscountAmount decimal.Decimal    `json:"discount_amount"`
	Net            decimal.Decimal    `json:"net"`
	GSTAmount      decimal.Decimal    `json:"gst_amount"`
	GrandTotal     decimal.Decimal    `json:"grand_total"`
	Items          []LineItemResponse `json:"items"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
	Version        int                `json:"version"`
}

// ToSalesOrderResponse converts a domain SalesOrder to SalesOrderResponse
func ToSalesOrderResponse(so *trade.SalesOrder) SalesOrderResponse {
	return SalesOrderResponse{
		ID:             so.ID,
		CompanyID:      so.CompanyID,
		Reference:      so.Reference,
		CustomerID:     so.CustomerID,
		Date:           so.Date,
		Description:    so.Description,
		Status:         so.Status.String(),
		GSTRate:        so.GSTRate,
		DiscountRate:   so.DiscountRate,
		TotalAmount:    so.TotalAmount,
		DiscountAmount: so.DiscountAmount,
		Net:            so.Net,
		GSTAmount:      so.GSTAmount,
		GrandTotal:     so.GrandTotal,
		Items:          toLineItemResponses(so.Items),
		CreatedAt:      so.CreatedAt,
		UpdatedAt:      so.UpdatedAt,
		Version:        so.Version,
	}
}

// ToSalesOrderResponses converts a slice of domain SalesOrders to responses
func ToSalesOrderResponses(orders []trade.SalesOrder) []SalesOrderResponse {
	responses := make([]SalesOrderResponse, len(orders))
	for i := range orders {
		responses[i] = ToSalesOrderResponse(&orders[i])
	}
	return responses
}

// =============================================================================
// Purchase order DTOs
// =============================================================================

// CreatePurchaseOrderRequest represents a request to create a purchase order
type CreatePurchaseOrderRequest struct {
	Reference    string            `json:"reference" binding:"required,min=1,max=50"`
	SupplierID   uuid.UUID         `json:"supplier_id" binding:"required"`
	Date         time.Time         `json:"date" binding:"required"`
	Description  string            `json:"description" binding:"max=1000"`
	Status       string            `json:"status" binding:"omitempty,oneof=DFT OPN CMP CC"`
	GSTRate      decimal.Decimal   `json:"gst_rate"`
	DiscountRate decimal.Decimal   `json:"discount_rate"`
	Items        []LineItemRequest `json:"items" binding:"required,min=1,dive"`
	CreatedBy    *uuid.UUID        `json:"-"`
}

// UpdatePurchaseOrderRequest represents a request to update a purchase order
type UpdatePurchaseOrderRequest struct {
	Reference    *string            `json:"reference" binding:"omitempty,min=1,max=50"`
	Date         *time.Time         `json:"date"`
	Description  *string            `json:"description" binding:"omitempty,max=1000"`
	Status       *string            `json:"status" binding:"omitempty,oneof=DFT OPN CMP CC"`
	GSTRate      *decimal.Decimal   `json:"gst_rate"`
	DiscountRate *decimal.Decimal   `json:"discount_rate"`
	Items        *[]LineItemRequest `json:"items" binding:"omitempty,min=1,dive"`
}

// PurchaseOrderResponse represents a purchase order in API responses
type PurchaseOrderResponse struct {
	ID             uuid.UUID          `json:"id"`
	CompanyID      uuid.UUID          `json:"company_id"`
	Reference      string             `json:"reference"`
	SupplierID     uuid.UUID          `json:"supplier_id"`
	Date           time.Time          `json:"date"`
	Description    string             `json:"description"`
	Status         string             `json:"status"`
	GSTRate        decimal.Decimal    `json:"gst_rate"`
	DiscountRate   decimal.Decimal    `json:"discount_rate"`
	TotalAmount    decimal.Decimal    `json:"total_amount"`
	DiscountAmount decimal.Decimal    `json:"discount_amount"`
	Net            decimal.Decimal    `json:"net"`
	GSTAmount      decimal.Decimal    `json:"gst_amount"`
	GrandTotal     decimal.Decimal    `json:"grand_total"`
	Items          []LineItemResponse `json:"items"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
	Version        int                `json:"version"`
}

// ToPurchaseOrderResponse converts a domain PurchaseOrder to its response
func ToPurchaseOrderResponse(po *trade.PurchaseOrder) PurchaseOrderResponse {
	return PurchaseOrderResponse{
		ID:             po.ID,
		CompanyID:      po.CompanyID,
		Reference:      po.Reference,
		SupplierID:     po.SupplierID,
		Date:           po.Date,
		Description:    po.Description,
		Status:         po.Status.String(),
		GSTRate:        po.GSTRate,
		DiscountRate:   po.DiscountRate,
		TotalAmount:    po.TotalAmount,
		DiscountAmount: po.DiscountAmount,
		Net:            po.Net,
		GSTAmount:      po.GSTAmount,
		GrandTotal:     po.GrandTotal,
		Items:          toLineItemResponses(po.Items),
		CreatedAt:      po.CreatedAt,
		UpdatedAt:      po.UpdatedAt,
		Version:        po.Version,
	}
}

// ToPurchaseOrderResponses converts a slice of PurchaseOrders to responses
func ToPurchaseOrderResponses(orders []trade.PurchaseOrder) []PurchaseOrderResponse {
	responses := make([]PurchaseOrderResponse, len(orders))
	for i := range orders {
		responses[i] = ToPurchaseOrderResponse(&orders[i])
	}
	return responses
}

// =============================================================================
// Receive DTOs
// =============================================================================

// CreateReceiveRequest represents a request to record received goods
type CreateReceiveRequest struct {
	Reference       string            `json:"reference" binding:"required,min=1,max=50"`
	SupplierID      uuid.UUID         `json:"supplier_id" binding:"required"`
	Date            time.Time         `json:"date" binding:"required"`
	Description     string            `json:"description" binding:"max=1000"`
	Status          string            `json:"status" binding:"omitempty,oneof=DFT OPN CMP CC"`
	GSTRate         decimal.Decimal   `json:"gst_rate"`
	DiscountRate    decimal.Decimal   `json:"discount_rate"`
	PurchaseOrderID *uuid.UUID        `json:"purchase_order_id"`
	Items           []LineItemRequest `json:"items" binding:"required,min=1,dive"`
	CreatedBy       *uuid.UUID        `json:"-"`
}

// UpdateReceiveRequest represents a request to update a receive
type UpdateReceiveRequest struct {
	Reference       *string            `json:"reference" binding:"omitempty,min=1,max=50"`
	Date            *time.Time         `json:"date"`
	Description     *string            `json:"description" binding:"omitempty,max=1000"`
	Status          *string            `json:"status" binding:"omitempty,oneof=DFT OPN CMP CC"`
	GSTRate         *decimal.Decimal   `json:"gst_rate"`
	DiscountRate    *decimal.Decimal   `json:"discount_rate"`
	PurchaseOrderID *uuid.UUID         `json:"purchase_order_id"`
	Items           *[]LineItemRequest `json:"items" binding:"omitempty,min=1,dive"`
}

// ReceiveResponse represents a receive in API responses
type ReceiveResponse struct {
	ID              uuid.UUID          `json:"id"`
	CompanyID       uuid.UUID          `json:"company_id"`
	Reference       string             `json:"reference"`
	SupplierID      uuid.UUID          `json:"supplier_id"`
	PurchaseOrderID *uuid.UUID         `json:"purchase_order_id,omitempty"`
	Date            time.Time          `json:"date"`
	Description     string             `json:"description"`
	Status          string             `json:"status"`
	GSTRate         decimal.Decimal    `json:"gst_rate"`
	DiscountRate    decimal.Decimal    `json:"discount_rate"`
	TotalAmount     decimal.Decimal    `json:"total_amount"`
	DiscountAmount  decimal.Decimal    `json:"discount_amount"`
	Net             decimal.Decimal    `json:"net"`
	GSTAmount       decimal.Decimal    `json:"gst_amount"`
	GrandTotal      decimal.Decimal    `json:"grand_total"`
	Items           []LineItemResponse `json:"items"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
	Version         int                `json:"version"`
}

// ToReceiveResponse converts a domain Receive to ReceiveResponse
func ToReceiveResponse(r *trade.Receive) ReceiveResponse {
	return ReceiveResponse{
		ID:              r.ID,
		CompanyID:       r.CompanyID,
		Reference:       r.Reference,
		SupplierID:      r.SupplierID,
		PurchaseOrderID: r.PurchaseOrderID,
		Date:            r.Date,
		Description:     r.Description,
		Status:          r.Status.String(),
		GSTRate:         r.GSTRate,
		DiscountRate:    r.DiscountRate,
		TotalAmount:     r.TotalAmount,
		DiscountAmount:  r.DiscountAmount,
		Net:             r.Net,
		GSTAmount:       r.GSTAmount,
		GrandTotal:      r.GrandTotal,
		Items:           toLineItemResponses(r.Items),
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
		Version:         r.Version,
	}
}

// ToReceiveResponses converts a slice of domain Receives to responses
func ToReceiveResponses(receives []trade.Receive) []ReceiveResponse {
	responses := make([]ReceiveResponse, len(receives))
	for i := range receives {
		responses[i] = ToReceiveResponse(&receives[i])
	}
	return responses
}

// =============================================================================
// Credit note DTOs
// =============================================================================

// CreateCreditNoteRequest represents a request to create a credit note
type CreateCreditNoteRequest struct {
	Reference    string            `json:"reference" binding:"required,min=1,max=50"`
	CustomerID   uuid.UUID         `json:"customer_id" binding:"required"`
	Date         time.Time         `json:"date" binding:"required"`
	Description  string            `json:"description" binding:"max=1000"`
	Status       string            `json:"status" binding:"omitempty,oneof=DFT OPN CMP CC"`
	GSTRate      decimal.Decimal   `json:"gst_rate"`
	DiscountRate decimal.Decimal   `json:"discount_rate"`
	Items        []LineItemRequest `json:"items" binding:"required,min=1,dive"`
	CreatedBy    *uuid.UUID        `json:"-"`
}

// UpdateCreditNoteRequest represents a request to update a credit note
type UpdateCreditNoteRequest struct {
	Reference    *string            `json:"reference" binding:"omitempty,min=1,max=50"`
	Date         *time.Time         `json:"date"`
	Description  *string            `json:"description" binding:"omitempty,max=1000"`
	Status       *string            `json:"status" binding:"omitempty,oneof=DFT OPN CMP CC"`
	GSTRate      *decimal.Decimal   `json:"gst_rate"`
	DiscountRate *decimal.Decimal   `json:"discount_rate"`
	Refund       *decimal.Decimal   `json:"refund"`
	Items        *[]LineItemRequest `json:"items" binding:"omitempty,min=1,dive"`
}

// CreditNoteResponse represents a credit note in API responses
type CreditNoteResponse struct {
	ID               uuid.UUID          `json:"id"`
	CompanyID        uuid.UUID          `json:"company_id"`
	Reference        string             `json:"reference"`
	CustomerID       uuid.UUID          `json:"customer_id"`
	Date             time.Time          `json:"date"`
	Description      string             `json:"description"`
	Status           string             `json:"status"`
	GSTRate          decimal.Decimal    `json:"gst_rate"`
	DiscountRate     decimal.Decimal    `json:"discount_rate"`
	TotalAmount      decimal.Decimal    `json:"total_amount"`
	DiscountAmount   decimal.Decimal    `json:"discount_amount"`
	Net              decimal.Decimal    `json:"net"`
	GSTAmount        decimal.Decimal    `json:"gst_amount"`
	GrandTotal       decimal.Decimal    `json:"grand_total"`
	CreditsUsed      decimal.Decimal    `json:"credits_used"`
	CreditsRemaining decimal.Decimal    `json:"credits_remaining"`
	Refund           decimal.Decimal    `json:"refund"`
	Items            []LineItemResponse `json:"items"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
	Version          int                `json:"version"`
}

// ToCreditNoteResponse converts a domain CreditNote to CreditNoteResponse
func ToCreditNoteResponse(cn *trade.CreditNote) CreditNoteResponse {
	return CreditNoteResponse{
		ID:               cn.ID,
		CompanyID:        cn.CompanyID,
		Reference:        cn.Reference,
		CustomerID:       cn.CustomerID,
		Date:             cn.Date,
		Description:      cn.Description,
		Status:           cn.Status.String(),
		GSTRate:          cn.GSTRate,
		DiscountRate:     cn.DiscountRate,
		TotalAmount:      cn.TotalAmount,
		DiscountAmount:   cn.DiscountAmount,
		Net:              cn.Net,
		GSTAmount:        cn.GSTAmount,
		GrandTotal:       cn.GrandTotal,
		CreditsUsed:      cn.CreditsUsed,
		CreditsRemaining: cn.CreditsRemaining,
		Refund:           cn.Refund,
		Items:            toLineItemResponses(cn.Items),
		CreatedAt:        cn.CreatedAt,
		UpdatedAt:        cn.UpdatedAt,
		Version:          cn.Version,
	}
}

// ToCreditNoteResponses converts a slice of domain CreditNotes to responses
func ToCreditNoteResponses(notes []trade.CreditNote) []CreditNoteResponse {
	responses := make([]CreditNoteResponse, len(notes))
	for i := range notes {
		responses[i] = ToCreditNoteResponse(&notes[i])
	}
	return responses
}
