package persistence

import (
	"context"
	"errors"

	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// companyRepo implements shared.CompanyRepository[D] for a model type M.
// Concrete repositories embed it and add their aggregate-specific methods;
// document repositories override Save to persist line items.
type companyRepo[D any, M any] struct {
	db            *gorm.DB
	toDomain      func(*M) *D
	fromDomain    func(*D) *M
	searchColumns []string
	sortable      map[string]bool
	defaultOrder  string
	filterColumns map[string]string
	preloads      []string
}

// conn resolves the database handle, joining a unit-of-work transaction
// when the context carries one.
func (r *companyRepo[D, M]) conn(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

func (r *companyRepo[D, M]) withPreloads(query *gorm.DB) *gorm.DB {
	for _, p := range r.preloads {
		query = query.Preload(p)
	}
	return query
}

func (r *companyRepo[D, M]) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)
	query = applyPagination(query, filter)
	return applyOrdering(query, filter, r.sortable, r.defaultOrder)
}

func (r *companyRepo[D, M]) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = applySearch(query, filter.Search, r.searchColumns)
	return applyColumnFilters(query, filter, r.filterColumns)
}

// FindByID finds an entity by its ID
func (r *companyRepo[D, M]) FindByID(ctx context.Context, id uuid.UUID) (*D, error) {
	var model M
	query := r.withPreloads(r.conn(ctx))
	if err := query.First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return r.toDomain(&model), nil
}

// FindByIDForCompany finds an entity by ID within a company
func (r *companyRepo[D, M]) FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*D, error) {
	var model M
	query := r.withPreloads(r.conn(ctx)).Where("company_id = ? AND id = ?", companyID, id)
	if err := query.First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return r.toDomain(&model), nil
}

// FindAll finds all entities matching the filter
func (r *companyRepo[D, M]) FindAll(ctx context.Context, filter shared.Filter) ([]D, error) {
	query := r.applyFilter(r.conn(ctx).Model(new(M)), filter)
	return r.find(r.withPreloads(query))
}

// FindAllForCompany finds all entities for a company matching the filter
func (r *companyRepo[D, M]) FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]D, error) {
	query := r.conn(ctx).Model(new(M)).Where("company_id = ?", companyID)
	query = r.applyFilter(query, filter)
	return r.find(r.withPreloads(query))
}

func (r *companyRepo[D, M]) find(query *gorm.DB) ([]D, error) {
	var rows []M
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	entities := make([]D, len(rows))
	for i := range rows {
		entities[i] = *r.toDomain(&rows[i])
	}
	return entities, nil
}

// Save creates or updates an entity
func (r *companyRepo[D, M]) Save(ctx context.Context, entity *D) error {
	return r.conn(ctx).Save(r.fromDomain(entity)).Error
}

// Delete deletes an entity by ID
func (r *companyRepo[D, M]) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.conn(ctx).Delete(new(M), "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteForCompany deletes an entity by ID within a company
func (r *companyRepo[D, M]) DeleteForCompany(ctx context.Context, companyID, id uuid.UUID) error {
	result := r.conn(ctx).Delete(new(M), "company_id = ? AND id = ?", companyID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts entities matching the filter
func (r *companyRepo[D, M]) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	query := r.applyFilterWithoutPagination(r.conn(ctx).Model(new(M)), filter)
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountForCompany counts entities for a company matching the filter
func (r *companyRepo[D, M]) CountForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (int64, error) {
	query := r.conn(ctx).Model(new(M)).Where("company_id = ?", companyID)
	query = r.applyFilterWithoutPagination(query, filter)
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// existsRef checks reference uniqueness within a company
func (r *companyRepo[D, M]) existsRef(ctx context.Context, companyID uuid.UUID, reference string, excludeID *uuid.UUID) (bool, error) {
	return existsByReference(r.conn(ctx).Model(new(M)), companyID, reference, excludeID)
}

// saveWithLock updates the row only if its stored version is the one the
// aggregate was loaded at (version was incremented in memory before the
// call). Zero rows affected means a concurrent writer won.
func (r *companyRepo[D, M]) saveWithLock(ctx context.Context, model *M, id uuid.UUID, version int, omit ...string) error {
	omitted := append([]string{"id", "created_at", "company_id"}, omit...)
	result := r.conn(ctx).
		Model(model).
		Select("*").
		Omit(omitted...).
		Where("id = ? AND version = ?", id, version-1).
		Updates(model)
	return checkLockResult(result)
}
