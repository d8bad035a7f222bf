package persistence

import (
	"github.com/bizledger/backend/internal/domain/finance"
	"github.com/bizledger/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormCreditsApplicationRepository implements finance.CreditsApplicationRepository using GORM
type GormCreditsApplicationRepository struct {
	*companyRepo[finance.CreditsApplication, models.CreditsApplicationModel]
}

// NewGormCreditsApplicationRepository creates a new GormCreditsApplicationRepository
func NewGormCreditsApplicationRepository(db *gorm.DB) *GormCreditsApplicationRepository {
	return &GormCreditsApplicationRepository{&companyRepo[finance.CreditsApplication, models.CreditsApplicationModel]{
		db:           db,
		toDomain:     (*models.CreditsApplicationModel).ToDomain,
		fromDomain:   models.CreditsApplicationModelFromDomain,
		sortable:     map[string]bool{"created_at": true, "date": true, "amount_to_credit": true},
		defaultOrder: "date DESC, created_at DESC",
		filterColumns: map[string]string{
			"invoice_id":     "invoice_id",
			"credit_note_id": "credit_note_id",
			"customer_id":    "customer_id",
		},
	}}
}

var _ finance.CreditsApplicationRepository = (*GormCreditsApplicationRepository)(nil)
