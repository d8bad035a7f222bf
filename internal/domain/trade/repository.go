package trade

import (
	"context"

	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// InvoiceRepository defines persistence operations for invoices.
// Implementations load and save the full aggregate including line items.
type InvoiceRepository interface {
	shared.CompanyRepository[Invoice]
	ExistsByReference(ctx context.Context, companyID uuid.UUID, reference string, excludeID *uuid.UUID) (bool, error)
	SaveWithLock(ctx context.Context, invoice *Invoice) error
}

// SalesOrderRepository defines persistence operations for sales orders
type SalesOrderRepository interface {
	shared.CompanyRepository[SalesOrder]
	ExistsByReference(ctx context.Context, companyID uuid.UUID, reference string, excludeID *uuid.UUID) (bool, error)
	SaveWithLock(ctx context.Context, order *SalesOrder) error
}

// PurchaseOrderRepository defines persistence operations for purchase orders
type PurchaseOrderRepository interface {
	shared.CompanyRepository[PurchaseOrder]
	ExistsByReference(ctx context.Context, companyID uuid.UUID, reference string, excludeID *uuid.UUID) (bool, error)
	SaveWithLock(ctx context.Context, order *PurchaseOrder) error
}

// ReceiveRepository defines persistence operations for receives
type ReceiveRepository interface {
	shared.CompanyRepository[Receive]
	ExistsByReference(ctx context.Context, companyID uuid.UUID, reference string, excludeID *uuid.UUID) (bool, error)
	SaveWithLock(ctx context.Context, receive *Receive) error
}

// CreditNoteRepository defines persistence operations for credit notes
type CreditNoteRepository interface {
	shared.CompanyRepository[CreditNote]
	ExistsByReference(ctx context.Context, companyID uuid.UUID, reference string, excludeID *uuid.UUID) (bool, error)
	SaveWithLock(ctx context.Context, note *CreditNote) error
}
