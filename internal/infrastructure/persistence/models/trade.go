package models

import (
	"time"

	"github.com/bizledger/backend/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DocumentColumns holds the monetary columns shared by every document
// table. The totals are stored exactly as the calculator produced them.
type DocumentColumns struct {
	Reference      string          `gorm:"size:64;not null;index"`
	Date           time.Time       `gorm:"not null;index"`
	Description    string          `gorm:"size:512"`
	GSTRate        decimal.Decimal `gorm:"type:decimal(8,4);not null"`
	DiscountRate   decimal.Decimal `gorm:"type:decimal(8,4);not null"`
	TotalAmount    decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	DiscountAmount decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	Net            decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	GSTAmount      decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	GrandTotal     decimal.Decimal `gorm:"type:decimal(20,4);not null"`
}

func documentColumnsFromDomain(d trade.Document) DocumentColumns {
	return DocumentColumns{
		Reference:      d.Reference,
		Date:           d.Date,
		Description:    d.Description,
		GSTRate:        d.GSTRate,
		DiscountRate:   d.DiscountRate,
		TotalAmount:    d.TotalAmount,
		DiscountAmount: d.DiscountAmount,
		Net:            d.Net,
		GSTAmount:      d.GSTAmount,
		GrandTotal:     d.GrandTotal,
	}
}

func (c DocumentColumns) populateDocument(d *trade.Document) {
	d.Reference = c.Reference
	d.Date = c.Date
	d.Description = c.Description
	d.GSTRate = c.GSTRate
	d.DiscountRate = c.DiscountRate
	d.TotalAmount = c.TotalAmount
	d.DiscountAmount = c.DiscountAmount
	d.Net = c.Net
	d.GSTAmount = c.GSTAmount
	d.GrandTotal = c.GrandTotal
}

// LineItemColumns holds the columns shared by every document line table
type LineItemColumns struct {
	BaseModel
	DocumentID uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Unit       string          `gorm:"size:32"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	Quantity   int64           `gorm:"not null"`
	Amount     decimal.Decimal `gorm:"type:decimal(20,4);not null"`
}

func lineItemColumnsFromDomain(item trade.LineItem) LineItemColumns {
	c := LineItemColumns{
		DocumentID: item.DocumentID,
		ProductID:  item.ProductID,
		Unit:       item.Unit,
		UnitPrice:  item.UnitPrice,
		Quantity:   item.Quantity,
		Amount:     item.Amount,
	}
	c.FromDomainBaseEntity(item.BaseEntity)
	return c
}

func (c LineItemColumns) toDomain() trade.LineItem {
	return trade.LineItem{
		BaseEntity: c.BaseModel.ToDomain(),
		DocumentID: c.DocumentID,
		ProductID:  c.ProductID,
		Unit:       c.Unit,
		UnitPrice:  c.UnitPrice,
		Quantity:   c.Quantity,
		Amount:     c.Amount,
	}
}

// InvoiceItemModel maps a line of an invoice
type InvoiceItemModel struct {
	LineItemColumns
}

// TableName specifies the table name
func (InvoiceItemModel) TableName() string {
	return "invoice_items"
}

// InvoiceModel maps trade.Invoice to the invoices table
type InvoiceModel struct {
	CompanyAggregateModel
	DocumentColumns
	Status          string             `gorm:"size:8;not null;index"`
	CustomerID      uuid.UUID          `gorm:"type:uuid;not null;index"`
	SalesOrderID    *uuid.UUID         `gorm:"type:uuid;index"`
	PaymentMethodID *uuid.UUID         `gorm:"type:uuid"`
	CreditsApplied  decimal.Decimal    `gorm:"type:decimal(20,4);not null"`
	BalanceDue      decimal.Decimal    `gorm:"type:decimal(20,4);not null"`
	Items           []InvoiceItemModel `gorm:"foreignKey:DocumentID"`
}

// TableName specifies the table name
func (InvoiceModel) TableName() string {
	return "invoices"
}

// ToDomain converts the model to the domain aggregate
func (m *InvoiceModel) ToDomain() *trade.Invoice {
	inv := &trade.Invoice{
		Status:          trade.InvoiceStatus(m.Status),
		CustomerID:      m.CustomerID,
		SalesOrderID:    m.SalesOrderID,
		PaymentMethodID: m.PaymentMethodID,
		CreditsApplied:  m.CreditsApplied,
		BalanceDue:      m.BalanceDue,
	}
	m.DocumentColumns.populateDocument(&inv.Document)
	m.PopulateCompanyAggregateRoot(&inv.CompanyAggregateRoot)
	inv.Items = make([]trade.LineItem, len(m.Items))
	for i, item := range m.Items {
		inv.Items[i] = item.toDomain()
	}
	return inv
}

// InvoiceModelFromDomain converts the domain aggregate to the model
func InvoiceModelFromDomain(inv *trade.Invoice) *InvoiceModel {
	m := &InvoiceModel{
		DocumentColumns: documentColumnsFromDomain(inv.Document),
		Status:          string(inv.Status),
		CustomerID:      inv.CustomerID,
		SalesOrderID:    inv.SalesOrderID,
		PaymentMethodID: inv.PaymentMethodID,
		CreditsApplied:  inv.CreditsApplied,
		BalanceDue:      inv.BalanceDue,
	}
	m.FromDomainCompanyAggregateRoot(inv.CompanyAggregateRoot)
	m.Items = make([]InvoiceItemModel, len(inv.Items))
	for i, item := range inv.Items {
		m.Items[i] = InvoiceItemModel{lineItemColumnsFromDomain(item)}
	}
	return m
}

// SalesOrderItemModel maps a line of a sales order
type SalesOrderItemModel struct {
	LineItemColumns
}

// TableName specifies the table name
func (SalesOrderItemModel) TableName() string {
	return "sales_order_items"
}

// SalesOrderModel maps trade.SalesOrder to the sales_orders table
type SalesOrderModel struct {
	CompanyAggregateModel
	DocumentColumns
	Status     string                `gorm:"size:8;not null;index"`
	CustomerID uuid.UUID             `gorm:"type:uuid;not null;index"`
	Items      []SalesOrderItemModel `gorm:"foreignKey:DocumentID"`
}

// TableName specifies the table name
func (SalesOrderModel) TableName() string {
	return "sales_orders"
}

// ToDomain converts the model to the domain aggregate
func (m *SalesOrderModel) ToDomain() *trade.SalesOrder {
	order := &trade.SalesOrder{
		Status:     trade.OrderStatus(m.Status),
		CustomerID: m.CustomerID,
	}
	m.DocumentColumns.populateDocument(&order.Document)
	m.PopulateCompanyAggregateRoot(&order.CompanyAggregateRoot)
	order.Items = make([]trade.LineItem, len(m.Items))
	for i, item := range m.Items {
		order.Items[i] = item.toDomain()
	}
	return order
}

// SalesOrderModelFromDomain converts the domain aggregate to the model
func SalesOrderModelFromDomain(order *trade.SalesOrder) *SalesOrderModel {
	m := &SalesOrderModel{
		DocumentColumns: documentColumnsFromDomain(order.Document),
		Status:          string(order.Status),
		CustomerID:      order.CustomerID,
	}
	m.FromDomainCompanyAggregateRoot(order.CompanyAggregateRoot)
	m.Items = make([]SalesOrderItemModel, len(order.Items))
	for i, item := range order.Items {
		m.Items[i] = SalesOrderItemModel{lineItemColumnsFromDomain(item)}
	}
	return m
}

// PurchaseOrderItemModel maps a line of a purchase order
type PurchaseOrderItemModel struct {
	LineItemColumns
}

// TableName specifies the table name
func (PurchaseOrderItemModel) TableName() string {
	return "purchase_order_items"
}

// PurchaseOrderModel maps trade.PurchaseOrder to the purchase_orders table
type PurchaseOrderModel struct {
	CompanyAggregateModel
	DocumentColumns
	Status     string                   `gorm:"size:8;not null;index"`
	SupplierID uuid.UUID                `gorm:"type:uuid;not null;index"`
	Items      []PurchaseOrderItemModel `gorm:"foreignKey:DocumentID"`
}

// TableName specifies the table name
func (PurchaseOrderModel) TableName() string {
	return "purchase_orders"
}

// ToDomain converts the model to the domain aggregate
func (m *PurchaseOrderModel) ToDomain() *trade.PurchaseOrder {
	order := &trade.PurchaseOrder{
		Status:     trade.OrderStatus(m.Status),
		SupplierID: m.SupplierID,
	}
	m.DocumentColumns.populateDocument(&order.Document)
	m.PopulateCompanyAggregateRoot(&order.CompanyAggregateRoot)
	order.Items = make([]trade.LineItem, len(m.Items))
	for i, item := range m.Items {
		order.Items[i] = item.toDomain()
	}
	return order
}

// PurchaseOrderModelFromDomain converts the domain aggregate to the model
func PurchaseOrderModelFromDomain(order *trade.PurchaseOrder) *PurchaseOrderModel {
	m := &PurchaseOrderModel{
		DocumentColumns: documentColumnsFromDomain(order.Document),
		Status:          string(order.Status),
		SupplierID:      order.SupplierID,
	}
	m.FromDomainCompanyAggregateRoot(order.CompanyAggregateRoot)
	m.Items = make([]PurchaseOrderItemModel, len(order.Items))
	for i, item := range order.Items {
		m.Items[i] = PurchaseOrderItemModel{lineItemColumnsFromDomain(item)}
	}
	return m
}

// ReceiveItemModel maps a line of a receive
type ReceiveItemModel struct {
	LineItemColumns
}

// TableName specifies the table name
func (ReceiveItemModel) TableName() string {
	return "receive_items"
}

// ReceiveModel maps trade.Receive to the receives table
type ReceiveModel struct {
	CompanyAggregateModel
	DocumentColumns
	Status          string             `gorm:"size:8;not null;index"`
	SupplierID      uuid.UUID          `gorm:"type:uuid;not null;index"`
	PurchaseOrderID *uuid.UUID         `gorm:"type:uuid;index"`
	Items           []ReceiveItemModel `gorm:"foreignKey:DocumentID"`
}

// TableName specifies the table name
func (ReceiveModel) TableName() string {
	return "receives"
}

// ToDomain converts the model to the domain aggregate
func (m *ReceiveModel) ToDomain() *trade.Receive {
	receive := &trade.Receive{
		Status:          trade.OrderStatus(m.Status),
		SupplierID:      m.SupplierID,
		PurchaseOrderID: m.PurchaseOrderID,
	}
	m.DocumentColumns.populateDocument(&receive.Document)
	m.PopulateCompanyAggregateRoot(&receive.CompanyAggregateRoot)
	receive.Items = make([]trade.LineItem, len(m.Items))
	for i, item := range m.Items {
		receive.Items[i] = item.toDomain()
	}
	return receive
}

// ReceiveModelFromDomain converts the domain aggregate to the model
func ReceiveModelFromDomain(receive *trade.Receive) *ReceiveModel {
	m := &ReceiveModel{
		DocumentColumns: documentColumnsFromDomain(receive.Document),
		Status:          string(receive.Status),
		SupplierID:      receive.SupplierID,
		PurchaseOrderID: receive.PurchaseOrderID,
	}
	m.FromDomainCompanyAggregateRoot(receive.CompanyAggregateRoot)
	m.Items = make([]ReceiveItemModel, len(receive.Items))
	for i, item := range receive.Items {
		m.Items[i] = ReceiveItemModel{lineItemColumnsFromDomain(item)}
	}
	return m
}

// CreditNoteItemModel maps a line of a credit note
type CreditNoteItemModel struct {
	LineItemColumns
}

// TableName specifies the table name
func (CreditNoteItemModel) TableName() string {
	return "credit_note_items"
}

// CreditNoteModel maps trade.CreditNote to the credit_notes table
type CreditNoteModel struct {
	CompanyAggregateModel
	DocumentColumns
	Status           string                `gorm:"size:8;not null;index"`
	CustomerID       uuid.UUID             `gorm:"type:uuid;not null;index"`
	CreditsUsed      decimal.Decimal       `gorm:"type:decimal(20,4);not null"`
	CreditsRemaining decimal.Decimal       `gorm:"type:decimal(20,4);not null"`
	Refund           decimal.Decimal       `gorm:"type:decimal(20,4);not null"`
	Items            []CreditNoteItemModel `gorm:"foreignKey:DocumentID"`
}

// TableName specifies the table name
func (CreditNoteModel) TableName() string {
	return "credit_notes"
}

// ToDomain converts the model to the domain aggregate
func (m *CreditNoteModel) ToDomain() *trade.CreditNote {
	note := &trade.CreditNote{
		Status:           trade.CreditNoteStatus(m.Status),
		CustomerID:       m.CustomerID,
		CreditsUsed:      m.CreditsUsed,
		CreditsRemaining: m.CreditsRemaining,
		Refund:           m.Refund,
	}
	m.DocumentColumns.populateDocument(&note.Document)
	m.PopulateCompanyAggregateRoot(&note.CompanyAggregateRoot)
	note.Items = make([]trade.LineItem, len(m.Items))
	for i, item := range m.Items {
		note.Items[i] = item.toDomain()
	}
	return note
}

// CreditNoteModelFromDomain converts the domain aggregate to the model
func CreditNoteModelFromDomain(note *trade.CreditNote) *CreditNoteModel {
	m := &CreditNoteModel{
		DocumentColumns:  documentColumnsFromDomain(note.Document),
		Status:           string(note.Status),
		CustomerID:       note.CustomerID,
		CreditsUsed:      note.CreditsUsed,
		CreditsRemaining: note.CreditsRemaining,
		Refund:           note.Refund,
	}
	m.FromDomainCompanyAggregateRoot(note.CompanyAggregateRoot)
	m.Items = make([]CreditNoteItemModel, len(note.Items))
	for i, item := range note.Items {
		m.Items[i] = CreditNoteItemModel{lineItemColumnsFromDomain(item)}
	}
	return m
}
