package identity

import (
	"time"

	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// UserConfig holds per-user interface preferences, one row per user,
// written through an upsert.
type UserConfig struct {
	shared.BaseEntity
	UserID      uuid.UUID
	Language    string
	Theme       string
	RowsPerPage int
}

// NewUserConfig creates a config with defaults for a user
func NewUserConfig(userID uuid.UUID) *UserConfig {
	return &UserConfig{
		BaseEntity:  shared.NewBaseEntity(),
		UserID:      userID,
		Language:    "en",
		Theme:       "light",
		RowsPerPage: 20,
	}
}

// Update replaces the preference fields
func (c *UserConfig) Update(language, theme string, rowsPerPage int) error {
	if rowsPerPage <= 0 {
		return shared.NewDomainError("INVALID_INPUT", "Rows per page must be positive")
	}
	c.Language = language
	c.Theme = theme
	c.RowsPerPage = rowsPerPage
	c.UpdatedAt = time.Now()
	return nil
}
