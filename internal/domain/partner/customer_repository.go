package partner

import (
	"context"

	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CustomerRepository defines persistence operations for customers
type CustomerRepository interface {
	shared.CompanyRepository[Customer]

	// ExistsByReference reports whether another customer in the company
	// already uses the reference. excludeID skips the row being updated.
	ExistsByReference(ctx context.Context, companyID uuid.UUID, reference string, excludeID *uuid.UUID) (bool, error)

	// SaveWithLock saves with an optimistic version check
	SaveWithLock(ctx context.Context, customer *Customer) error
}
