package persistence

import (
	"context"

	"github.com/bizledger/backend/internal/domain/catalog"
	"github.com/bizledger/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCategoryRepository implements catalog.CategoryRepository using GORM
type GormCategoryRepository struct {
	*companyRepo[catalog.Category, models.CategoryModel]
}

// NewGormCategoryRepository creates a new GormCategoryRepository
func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{&companyRepo[catalog.Category, models.CategoryModel]{
		db:            db,
		toDomain:      (*models.CategoryModel).ToDomain,
		fromDomain:    models.CategoryModelFromDomain,
		searchColumns: []string{"name", "description"},
		sortable:      map[string]bool{"created_at": true, "name": true},
		defaultOrder:  "name ASC",
	}}
}

var _ catalog.CategoryRepository = (*GormCategoryRepository)(nil)

// GormProductRepository implements catalog.ProductRepository using GORM
type GormProductRepository struct {
	*companyRepo[catalog.Product, models.ProductModel]
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{&companyRepo[catalog.Product, models.ProductModel]{
		db:            db,
		toDomain:      (*models.ProductModel).ToDomain,
		fromDomain:    models.ProductModelFromDomain,
		searchColumns: []string{"reference", "name"},
		sortable:      map[string]bool{"created_at": true, "reference": true, "name": true, "stock": true, "sales_count": true, "unit_price": true},
		defaultOrder:  "created_at DESC",
		filterColumns: map[string]string{"category_id": "category_id"},
	}}
}

// ExistsByReference checks if another product in the company uses the reference
func (r *GormProductRepository) ExistsByReference(ctx context.Context, companyID uuid.UUID, reference string, excludeID *uuid.UUID) (bool, error) {
	return r.existsRef(ctx, companyID, reference, excludeID)
}

// FindByIDsForCompany loads a set of products in one query
func (r *GormProductRepository) FindByIDsForCompany(ctx context.Context, companyID uuid.UUID, ids []uuid.UUID) ([]catalog.Product, error) {
	if len(ids) == 0 {
		return []catalog.Product{}, nil
	}
	query := dbFromContext(ctx, r.db).Where("company_id = ? AND id IN ?", companyID, ids)
	return r.find(query)
}

// SaveWithLock saves a product with an optimistic version check
func (r *GormProductRepository) SaveWithLock(ctx context.Context, product *catalog.Product) error {
	return r.saveWithLock(ctx, models.ProductModelFromDomain(product), product.ID, product.Version)
}

var _ catalog.ProductRepository = (*GormProductRepository)(nil)

// GormPaymentMethodRepository implements catalog.PaymentMethodRepository using GORM
type GormPaymentMethodRepository struct {
	*companyRepo[catalog.PaymentMethod, models.PaymentMethodModel]
}

// NewGormPaymentMethodRepository creates a new GormPaymentMethodRepository
func NewGormPaymentMethodRepository(db *gorm.DB) *GormPaymentMethodRepository {
	return &GormPaymentMethodRepository{&companyRepo[catalog.PaymentMethod, models.PaymentMethodModel]{
		db:            db,
		toDomain:      (*models.PaymentMethodModel).ToDomain,
		fromDomain:    models.PaymentMethodModelFromDomain,
		searchColumns: []string{"name"},
		sortable:      map[string]bool{"created_at": true, "name": true},
		defaultOrder:  "name ASC",
	}}
}

var _ catalog.PaymentMethodRepository = (*GormPaymentMethodRepository)(nil)
