package identity

import (
	"strings"
	"time"

	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// User is an account within a company. The owner (the user created at
// company signup) implicitly holds every permission; everyone else gets
// the union of their assigned roles' permissions.
type User struct {
	shared.CompanyAggregateRoot
	Email        string
	PasswordHash string
	Name         string
	IsOwner      bool
	RoleIDs      []uuid.UUID
}

// NewUser creates a new user for a company
func NewUser(companyID uuid.UUID, email, name string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Email is required")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Name is required")
	}
	return &User{
		CompanyAggregateRoot: shared.NewCompanyAggregateRoot(companyID),
		Email:                email,
		Name:                 name,
	}, nil
}

// NewOwner creates the owning user of a freshly created company
func NewOwner(companyID uuid.UUID, email, name string) (*User, error) {
	user, err := NewUser(companyID, email, name)
	if err != nil {
		return nil, err
	}
	user.IsOwner = true
	return user, nil
}

// SetEmail changes the login email
func (u *User) SetEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return shared.NewDomainError("INVALID_INPUT", "Email is required")
	}
	u.Email = email
	u.UpdatedAt = time.Now()
	return nil
}

// SetName changes the display name
func (u *User) SetName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_INPUT", "Name is required")
	}
	u.Name = name
	u.UpdatedAt = time.Now()
	return nil
}

// SetPasswordHash stores an already hashed password
func (u *User) SetPasswordHash(hash string) error {
	if hash == "" {
		return shared.NewDomainError("INVALID_INPUT", "Password hash is required")
	}
	u.PasswordHash = hash
	u.UpdatedAt = time.Now()
	return nil
}

// AssignRoles replaces the user's role assignments
func (u *User) AssignRoles(roleIDs []uuid.UUID) {
	u.RoleIDs = roleIDs
	u.UpdatedAt = time.Now()
}
