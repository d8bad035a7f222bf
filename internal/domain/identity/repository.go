package identity

import (
	"context"

	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CompanyRepository defines persistence operations for companies
type CompanyRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Company, error)
	Save(ctx context.Context, company *Company) error
}

// UserRepository defines persistence operations for users
type UserRepository interface {
	shared.CompanyRepository[User]

	// FindByEmail looks a user up across companies for login
	FindByEmail(ctx context.Context, email string) (*User, error)

	// ExistsByEmail reports whether the email is already registered,
	// across all companies. excludeID skips the row being updated.
	ExistsByEmail(ctx context.Context, email string, excludeID *uuid.UUID) (bool, error)
}

// RoleRepository defines persistence operations for roles
type RoleRepository interface {
	shared.CompanyRepository[Role]

	ExistsByReference(ctx context.Context, companyID uuid.UUID, reference string, excludeID *uuid.UUID) (bool, error)

	// FindByIDsForCompany loads a set of roles in one query
	FindByIDsForCompany(ctx context.Context, companyID uuid.UUID, ids []uuid.UUID) ([]Role, error)
}

// UserConfigRepository defines persistence operations for user configs
type UserConfigRepository interface {
	FindByUser(ctx context.Context, userID uuid.UUID) (*UserConfig, error)
	Upsert(ctx context.Context, config *UserConfig) error
}
