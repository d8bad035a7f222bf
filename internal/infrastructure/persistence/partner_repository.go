package persistence

import (
	"context"

	"github.com/bizledger/backend/internal/domain/partner"
	"github.com/bizledger/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCustomerRepository implements partner.CustomerRepository using GORM
type GormCustomerRepository struct {
	*companyRepo[partner.Customer, models.CustomerModel]
}

// NewGormCustomerRepository creates a new GormCustomerRepository
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{&companyRepo[partner.Customer, models.CustomerModel]{
		db:            db,
		toDomain:      (*models.CustomerModel).ToDomain,
		fromDomain:    models.CustomerModelFromDomain,
		searchColumns: []string{"reference", "name", "email", "phone"},
		sortable:      map[string]bool{"created_at": true, "reference": true, "name": true, "last_seen": true},
		defaultOrder:  "created_at DESC",
	}}
}

// ExistsByReference checks if another customer in the company uses the reference
func (r *GormCustomerRepository) ExistsByReference(ctx context.Context, companyID uuid.UUID, reference string, excludeID *uuid.UUID) (bool, error) {
	return r.existsRef(ctx, companyID, reference, excludeID)
}

// SaveWithLock saves a customer with an optimistic version check
func (r *GormCustomerRepository) SaveWithLock(ctx context.Context, customer *partner.Customer) error {
	return r.saveWithLock(ctx, models.CustomerModelFromDomain(customer), customer.ID, customer.Version)
}

var _ partner.CustomerRepository = (*GormCustomerRepository)(nil)

// GormSupplierRepository implements partner.SupplierRepository using GORM
type GormSupplierRepository struct {
	*companyRepo[partner.Supplier, models.SupplierModel]
}

// NewGormSupplierRepository creates a new GormSupplierRepository
func NewGormSupplierRepository(db *gorm.DB) *GormSupplierRepository {
	return &GormSupplierRepository{&companyRepo[partner.Supplier, models.SupplierModel]{
		db:            db,
		toDomain:      (*models.SupplierModel).ToDomain,
		fromDomain:    models.SupplierModelFromDomain,
		searchColumns: []string{"reference", "name", "email", "phone"},
		sortable:      map[string]bool{"created_at": true, "reference": true, "name": true, "last_seen": true},
		defaultOrder:  "created_at DESC",
	}}
}

// ExistsByReference checks if another supplier in the company uses the reference
func (r *GormSupplierRepository) ExistsByReference(ctx context.Context, companyID uuid.UUID, reference string, excludeID *uuid.UUID) (bool, error) {
	return r.existsRef(ctx, companyID, reference, excludeID)
}

// SaveWithLock saves a supplier with an optimistic version check
func (r *GormSupplierRepository) SaveWithLock(ctx context.Context, supplier *partner.Supplier) error {
	return r.saveWithLock(ctx, models.SupplierModelFromDomain(supplier), supplier.ID, supplier.Version)
}

var _ partner.SupplierRepository = (*GormSupplierRepository)(nil)
