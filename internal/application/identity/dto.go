package identity

import (
	"time"

	"github.com/bizledger/backend/internal/domain/identity"
	"github.com/bizledger/backend/internal/infrastructure/auth"
	"github.com/google/uuid"
)

// =============================================================================
// Auth DTOs
// =============================================================================

// SignupRequest creates a company together with its owning user
type SignupRequest struct {
	CompanyName string `json:"company_name" binding:"required,min=1,max=200"`
	Name        string `json:"name" binding:"required,min=1,max=200"`
	Email       string `json:"email" binding:"required,email,max=200"`
	Password    string `json:"password" binding:"required,min=8,max=72"`
}

// LoginRequest authenticates by email and password
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest exchanges a refresh token for a fresh pair
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// AuthResponse carries the issued tokens and the authenticated user
type AuthResponse struct {
	User   UserResponse    `json:"user"`
	Tokens *auth.TokenPair `json:"tokens"`
}

// UpdateProfileRequest changes the authenticated user's own account. Email
// changes must be typed twice; password changes must be typed twice and
// carry the current password.
type UpdateProfileRequest struct {
	Name            *string `json:"name" binding:"omitempty,min=1,max=200"`
	Email           *string `json:"email" binding:"omitempty,email,max=200"`
	ConfirmEmail    *string `json:"confirm_email" binding:"omitempty,email,max=200"`
	Password        *string `json:"password" binding:"omitempty,min=8,max=72"`
	ConfirmPassword *string `json:"confirm_password" binding:"omitempty,min=8,max=72"`
	CurrentPassword *string `json:"current_password"`
}

// ProfileResponse is the authenticated user's profile with the effective
// permission set resolved per request.
type ProfileResponse struct {
	User        UserResponse       `json:"user"`
	Company     CompanyResponse    `json:"company"`
	Permissions []string           `json:"permissions"`
	Config      UserConfigResponse `json:"config"`
}

// =============================================================================
// User DTOs
// =============================================================================

// CreateUserRequest represents a request to create a user within a company
type CreateUserRequest struct {
	Email     string      `json:"email" binding:"required,email,max=200"`
	Name      string      `json:"name" binding:"required,min=1,max=200"`
	Password  string      `json:"password" binding:"required,min=8,max=72"`
	RoleIDs   []uuid.UUID `json:"role_ids"`
	CreatedBy *uuid.UUID  `json:"-"`
}

// UpdateUserRequest represents a request to update a user
type UpdateUserRequest struct {
	Email    *string      `json:"email" binding:"omitempty,email,max=200"`
	Name     *string      `json:"name" binding:"omitempty,min=1,max=200"`
	Password *string      `json:"password" binding:"omitempty,min=8,max=72"`
	RoleIDs  *[]uuid.UUID `json:"role_ids"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID        uuid.UUID   `json:"id"`
	CompanyID uuid.UUID   `json:"company_id"`
	Email     string      `json:"email"`
	Name      string      `json:"name"`
	IsOwner   bool        `json:"is_owner"`
	RoleIDs   []uuid.UUID `json:"role_ids"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// UserListFilter represents filter options for the user list
type UserListFilter struct {
	Search   string `form:"search"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToUserResponse converts a domain User to UserResponse
func ToUserResponse(u *identity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		CompanyID: u.CompanyID,
		Email:     u.Email,
		Name:      u.Name,
		IsOwner:   u.IsOwner,
		RoleIDs:   u.RoleIDs,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// ToUserResponses converts a slice of domain Users to responses
func ToUserResponses(users []identity.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = ToUserResponse(&users[i])
	}
	return responses
}

// =============================================================================
// Role DTOs
// =============================================================================

// CreateRoleRequest represents a request to create a role
type CreateRoleRequest struct {
	Reference   string     `json:"reference" binding:"required,min=1,max=50"`
	Name        string     `json:"name" binding:"required,min=1,max=200"`
	Permissions []string   `json:"permissions"`
	CreatedBy   *uuid.UUID `json:"-"`
}

// UpdateRoleRequest represents a request to update a role
type UpdateRoleRequest struct {
	Reference   *string   `json:"reference" binding:"omitempty,min=1,max=50"`
	Name        *string   `json:"name" binding:"omitempty,min=1,max=200"`
	Permissions *[]string `json:"permissions"`
}

// RoleResponse represents a role in API responses
type RoleResponse struct {
	ID          uuid.UUID `json:"id"`
	CompanyID   uuid.UUID `json:"company_id"`
	Reference   string    `json:"reference"`
	Name        string    `json:"name"`
	Permissions []string  `json:"permissions"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToRoleResponse converts a domain Role to RoleResponse
func ToRoleResponse(r *identity.Role) RoleResponse {
	return RoleResponse{
		ID:          r.ID,
		CompanyID:   r.CompanyID,
		Reference:   r.Reference,
		Name:        r.Name,
		Permissions: r.Permissions,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// ToRoleResponses converts a slice of domain Roles to responses
func ToRoleResponses(roles []identity.Role) []RoleResponse {
	responses := make([]RoleResponse, len(roles))
	for i := range roles {
		responses[i] = ToRoleResponse(&roles[i])
	}
	return responses
}

// =============================================================================
// Company DTOs
// =============================================================================

// UpdateCompanyRequest represents a request to update company details
type UpdateCompanyRequest struct {
	Name    *string `json:"name" binding:"omitempty,min=1,max=200"`
	Address *string `json:"address" binding:"omitempty,max=500"`
	Phone   *string `json:"phone" binding:"omitempty,max=50"`
	Email   *string `json:"email" binding:"omitempty,email,max=200"`
}

// CompanyResponse represents a company in API responses
type CompanyResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToCompanyResponse converts a domain Company to CompanyResponse
func ToCompanyResponse(c *identity.Company) CompanyResponse {
	return CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		Address:   c.Address,
		Phone:     c.Phone,
		Email:     c.Email,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// =============================================================================
// User config DTOs
// =============================================================================

// UpdateUserConfigRequest replaces the user's interface preferences
type UpdateUserConfigRequest struct {
	Language    string `json:"language" binding:"required,min=2,max=10"`
	Theme       string `json:"theme" binding:"required,oneof=light dark"`
	RowsPerPage int    `json:"rows_per_page" binding:"required,min=1,max=200"`
}

// UserConfigResponse represents user preferences in API responses
type UserConfigResponse struct {
	Language    string `json:"language"`
	Theme       string `json:"theme"`
	RowsPerPage int    `json:"rows_per_page"`
}

// ToUserConfigResponse converts a domain UserConfig to its response
func ToUserConfigResponse(c *identity.UserConfig) UserConfigResponse {
	return UserConfigResponse{
		Language:    c.Language,
		Theme:       c.Theme,
		RowsPerPage: c.RowsPerPage,
	}
}
