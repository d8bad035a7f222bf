package persistence

import (
	"context"

	"github.com/bizledger/backend/internal/domain/trade"
	"github.com/bizledger/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// replaceLineItems brings the item table in sync with the aggregate: rows
// the aggregate no longer carries are deleted, the rest are upserted.
func replaceLineItems[I any](tx *gorm.DB, documentID uuid.UUID, keepIDs []uuid.UUID, items []I) error {
	query := tx.Where("document_id = ?", documentID)
	if len(keepIDs) > 0 {
		query = query.Where("id NOT IN ?", keepIDs)
	}
	if err := query.Delete(new(I)).Error; err != nil {
		return err
	}
	if len(items) > 0 {
		return tx.Save(&items).Error
	}
	return nil
}

func itemIDs(items []trade.LineItem) []uuid.UUID {
	ids := make([]uuid.UUID, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	return ids
}

// GormInvoiceRepository implements trade.InvoiceRepository using GORM
type GormInvoiceRepository struct {
	*companyRepo[trade.Invoice, models.InvoiceModel]
}

// NewGormInvoiceRepository creates a new GormInvoiceRepository
func NewGormInvoiceRepository(db *gorm.DB) *GormInvoiceRepository {
	return &GormInvoiceRepository{&companyRepo[trade.Invoice, models.InvoiceModel]{
		db:            db,
		toDomain:      (*models.InvoiceModel).ToDomain,
		fromDomain:    models.InvoiceModelFromDomain,
		searchColumns: []string{"reference", "description"},
		sortable:      map[string]bool{"created_at": true, "reference": true, "date": true, "grand_total": true, "balance_due": true},
		defaultOrder:  "date DESC, created_at DESC",
		filterColumns: map[string]string{"status": "status", "customer_id": "customer_id"},
		preloads:      []string{"Items"},
	}}
}

// Save persists the invoice and its line items in one transaction
func (r *GormInvoiceRepository) Save(ctx context.Context, invoice *trade.Invoice) error {
	model := models.InvoiceModelFromDomain(invoice)
	return dbFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items").Save(model).Error; err != nil {
			return err
		}
		return replaceLineItems(tx, invoice.ID, itemIDs(invoice.Items), model.Items)
	})
}

// SaveWithLock persists the invoice with an optimistic version check on the
// document row, then syncs the line items.
func (r *GormInvoiceRepository) SaveWithLock(ctx context.Context, invoice *trade.Invoice) error {
	model := models.InvoiceModelFromDomain(invoice)
	return dbFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.InvoiceModel{}).
			Select("*").
			Omit("id", "created_at", "company_id", "Items").
			Where("id = ? AND version = ?", invoice.ID, invoice.Version-1).
			Updates(model)
		if err := checkLockResult(result); err != nil {
			return err
		}
		return replaceLineItems(tx, invoice.ID, itemIDs(invoice.Items), model.Items)
	})
}

// ExistsByReference checks if another invoice in the company uses the reference
func (r *GormInvoiceRepository) ExistsByReference(ctx context.Context, companyID uuid.UUID, reference string, excludeID *uuid.UUID) (bool, error) {
	return r.existsRef(ctx, companyID, reference, excludeID)
}

var _ trade.InvoiceRepository = (*GormInvoiceRepository)(nil)

// GormSalesOrderRepository implements trade.SalesOrderRepository using GORM
type GormSalesOrderRepository struct {
	*companyRepo[trade.SalesOrder, models.SalesOrderModel]
}

// NewGormSalesOrderRepository creates a new GormSalesOrderRepository
func NewGormSalesOrderRepository(db *gorm.DB) *GormSalesOrderRepository {
	return &GormSalesOrderRepository{&companyRepo[trade.SalesOrder, models.SalesOrderModel]{
		db:            db,
		toDomain:      (*models.SalesOrderModel).ToDomain,
		fromDomain:    models.SalesOrderModelFromDomain,
		searchColumns: []string{"reference", "description"},
		sortable:      map[string]bool{"created_at": true, "reference": true, "date": true, "grand_total": true},
		defaultOrder:  "date DESC, created_at DESC",
		filterColumns: map[string]string{"status": "status", "customer_id": "customer_id"},
		preloads:      []string{"Items"},
	}}
}

// Save persists the sales order and its line items in one transaction
func (r *GormSalesOrderRepository) Save(ctx context.Context, order *trade.SalesOrder) error {
	model := models.SalesOrderModelFromDomain(order)
	return dbFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items").Save(model).Error; err != nil {
			return err
		}
		return replaceLineItems(tx, order.ID, itemIDs(order.Items), model.Items)
	})
}

// SaveWithLock persists the sales order with an optimistic version check
func (r *GormSalesOrderRepository) SaveWithLock(ctx context.Context, order *trade.SalesOrder) error {
	model := models.SalesOrderModelFromDomain(order)
	return dbFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.SalesOrderModel{}).
			Select("*").
			Omit("id", "created_at", "company_id", "Items").
			Where("id = ? AND version = ?", order.ID, order.Version-1).
			Updates(model)
		if err := checkLockResult(result); err != nil {
			return err
		}
		return replaceLineItems(tx, order.ID, itemIDs(order.Items), model.Items)
	})
}

// ExistsByReference checks if another sales order in the company uses the reference
func (r *GormSalesOrderRepository) ExistsByReference(ctx context.Context, companyID uuid.UUID, reference string, excludeID *uuid.UUID) (bool, error) {
	return r.existsRef(ctx, companyID, reference, excludeID)
}

var _ trade.SalesOrderRepository = (*GormSalesOrderRepository)(nil)

// GormPurchaseOrderRepository implements trade.PurchaseOrderRepository using GORM
type GormPurchaseOrderRepository struct {
	*companyRepo[trade.PurchaseOrder, models.PurchaseOrderModel]
}

// NewGormPurchaseOrderRepository creates a new GormPurchaseOrderRepository
func NewGormPurchaseOrderRepository(db *gorm.DB) *GormPurchaseOrderRepository {
	return &GormPurchaseOrderRepository{&companyRepo[trade.PurchaseOrder, models.PurchaseOrderModel]{
		db:            db,
		toDomain:      (*models.PurchaseOrderModel).ToDomain,
		fromDomain:    models.PurchaseOrderModelFromDomain,
		searchColumns: []string{"reference", "description"},
		sortable:      map[string]bool{"created_at": true, "reference": true, "date": true, "grand_total": true},
		defaultOrder:  "date DESC, created_at DESC",
		filterColumns: map[string]string{"status": "status", "supplier_id": "supplier_id"},
		preloads:      []string{"Items"},
	}}
}

// Save persists the purchase order and its line items in one transaction
func (r *GormPurchaseOrderRepository) Save(ctx context.Context, order *trade.PurchaseOrder) error {
	model := models.PurchaseOrderModelFromDomain(order)
	return dbFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items").Save(model).Error; err != nil {
			return err
		}
		return replaceLineItems(tx, order.ID, itemIDs(order.Items), model.Items)
	})
}

// SaveWithLock persists the purchase order with an optimistic version check
func (r *GormPurchaseOrderRepository) SaveWithLock(ctx context.Context, order *trade.PurchaseOrder) error {
	model := models.PurchaseOrderModelFromDomain(order)
	return dbFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.PurchaseOrderModel{}).
			Select("*").
			Omit("id", "created_at", "company_id", "Items").
			Where("id = ? AND version = ?", order.ID, order.Version-1).
			Updates(model)
		if err := checkLockResult(result); err != nil {
			return err
		}
		return replaceLineItems(tx, order.ID, itemIDs(order.Items), model.Items)
	})
}

// ExistsByReference checks if another purchase order in the company uses the reference
func (r *GormPurchaseOrderRepository) ExistsByReference(ctx context.Context, companyID uuid.UUID, reference string, excludeID *uuid.UUID) (bool, error) {
	return r.existsRef(ctx, companyID, reference, excludeID)
}

var _ trade.PurchaseOrderRepository = (*GormPurchaseOrderRepository)(nil)

// GormReceiveRepository implements trade.ReceiveRepository using GORM
type GormReceiveRepository struct {
	*companyRepo[trade.Receive, models.ReceiveModel]
}

// NewGormReceiveRepository creates a new GormReceiveRepository
func NewGormReceiveRepository(db *gorm.DB) *GormReceiveRepository {
	return &GormReceiveRepository{&companyRepo[trade.Receive, models.ReceiveModel]{
		db:            db,
		toDomain:      (*models.ReceiveModel).ToDomain,
		fromDomain:    models.ReceiveModelFromDomain,
		searchColumns: []string{"reference", "description"},
		sortable:      map[string]bool{"created_at": true, "reference": true, "date": true, "grand_total": true},
		defaultOrder:  "date DESC, created_at DESC",
		filterColumns: map[string]string{"status": "status", "supplier_id": "supplier_id", "purchase_order_id": "purchase_order_id"},
		preloads:      []string{"Items"},
	}}
}

// Save persists the receive and its line items in one transaction
func (r *GormReceiveRepository) Save(ctx context.Context, receive *trade.Receive) error {
	model := models.ReceiveModelFromDomain(receive)
	return dbFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items").Save(model).Error; err != nil {
			return err
		}
		return replaceLineItems(tx, receive.ID, itemIDs(receive.Items), model.Items)
	})
}

// SaveWithLock persists the receive with an optimistic version check
func (r *GormReceiveRepository) SaveWithLock(ctx context.Context, receive *trade.Receive) error {
	model := models.ReceiveModelFromDomain(receive)
	return dbFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.ReceiveModel{}).
			Select("*").
			Omit("id", "created_at", "company_id", "Items").
			Where("id = ? AND version = ?", receive.ID, receive.Version-1).
			Updates(model)
		if err := checkLockResult(result); err != nil {
			return err
		}
		return replaceLineItems(tx, receive.ID, itemIDs(receive.Items), model.Items)
	})
}

// ExistsByReference checks if another receive in the company uses the reference
func (r *GormReceiveRepository) ExistsByReference(ctx context.Context, companyID uuid.UUID, reference string, excludeID *uuid.UUID) (bool, error) {
	return r.existsRef(ctx, companyID, reference, excludeID)
}

var _ trade.ReceiveRepository = (*GormReceiveRepository)(nil)

// GormCreditNoteRepository implements trade.CreditNoteRepository using GORM
type GormCreditNoteRepository struct {
	*companyRepo[trade.CreditNote, models.CreditNoteModel]
}

// NewGormCreditNoteRepository creates a new GormCreditNoteRepository
func NewGormCreditNoteRepository(db *gorm.DB) *GormCreditNoteRepository {
	return &GormCreditNoteRepository{&companyRepo[trade.CreditNote, models.CreditNoteModel]{
		db:            db,
		toDomain:      (*models.CreditNoteModel).ToDomain,
		fromDomain:    models.CreditNoteModelFromDomain,
		searchColumns: []string{"reference", "description"},
		sortable:      map[string]bool{"created_at": true, "reference": true, "date": true, "grand_total": true, "credits_remaining": true},
		defaultOrder:  "date DESC, created_at DESC",
		filterColumns: map[string]string{"status": "status", "customer_id": "customer_id"},
		preloads:      []string{"Items"},
	}}
}

// Save persists the credit note and its line items in one transaction
func (r *GormCreditNoteRepository) Save(ctx context.Context, note *trade.CreditNote) error {
	model := models.CreditNoteModelFromDomain(note)
	return dbFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items").Save(model).Error; err != nil {
			return err
		}
		return replaceLineItems(tx, note.ID, itemIDs(note.Items), model.Items)
	})
}

// SaveWithLock persists the credit note with an optimistic version check
func (r *GormCreditNoteRepository) SaveWithLock(ctx context.Context, note *trade.CreditNote) error {
	model := models.CreditNoteModelFromDomain(note)
	return dbFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.CreditNoteModel{}).
			Select("*").
			Omit("id", "created_at", "company_id", "Items").
			Where("id = ? AND version = ?", note.ID, note.Version-1).
			Updates(model)
		if err := checkLockResult(result); err != nil {
			return err
		}
		return replaceLineItems(tx, note.ID, itemIDs(note.Items), model.Items)
	})
}

// ExistsByReference checks if another credit note in the company uses the reference
func (r *GormCreditNoteRepository) ExistsByReference(ctx context.Context, companyID uuid.UUID, reference string, excludeID *uuid.UUID) (bool, error) {
	return r.existsRef(ctx, companyID, reference, excludeID)
}

var _ trade.CreditNoteRepository = (*GormCreditNoteRepository)(nil)
