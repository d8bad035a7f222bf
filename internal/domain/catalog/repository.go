package catalog

import (
	"context"

	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ProductRepository defines persistence operations for products
type ProductRepository interface {
	shared.CompanyRepository[Product]

	// ExistsByReference reports whether another product in the company
	// already uses the reference. excludeID skips the row being updated.
	ExistsByReference(ctx context.Context, companyID uuid.UUID, reference string, excludeID *uuid.UUID) (bool, error)

	// FindByIDsForCompany loads a set of products in one query
	FindByIDsForCompany(ctx context.Context, companyID uuid.UUID, ids []uuid.UUID) ([]Product, error)

	// SaveWithLock saves with an optimistic version check
	SaveWithLock(ctx context.Context, product *Product) error
}

// CategoryRepository defines persistence operations for product categories
type CategoryRepository interface {
	shared.CompanyRepository[Category]
}

// PaymentMethodRepository defines persistence operations for payment methods
type PaymentMethodRepository interface {
	shared.CompanyRepository[PaymentMethod]
}
