package partner

import (
	"context"

	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// SupplierRepository defines persistence operations for suppliers
type SupplierRepository interface {
	shared.CompanyRepository[Supplier]

	// ExistsByReference reports whether another supplier in the company
	// already uses the reference. excludeID skips the row being updated.
	ExistsByReference(ctx context.Context, companyID uuid.UUID, reference string, excludeID *uuid.UUID) (bool, error)

	// SaveWithLock saves with an optimistic version check
	SaveWithLock(ctx context.Context, supplier *Supplier) error
}
