package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/bizledger/backend/internal/domain/identity"
	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/bizledger/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCompanyRepository implements identity.CompanyRepository using GORM
type GormCompanyRepository struct {
	db *gorm.DB
}

// NewGormCompanyRepository creates a new GormCompanyRepository
func NewGormCompanyRepository(db *gorm.DB) *GormCompanyRepository {
	return &GormCompanyRepository{db: db}
}

// FindByID finds a company by its ID
func (r *GormCompanyRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Company, error) {
	var model models.CompanyModel
	if err := dbFromContext(ctx, r.db).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save creates or updates a company
func (r *GormCompanyRepository) Save(ctx context.Context, company *identity.Company) error {
	return dbFromContext(ctx, r.db).Save(models.CompanyModelFromDomain(company)).Error
}

var _ identity.CompanyRepository = (*GormCompanyRepository)(nil)

// GormUserRepository implements identity.UserRepository using GORM
type GormUserRepository struct {
	*companyRepo[identity.User, models.UserModel]
}

// NewGormUserRepository creates a new GormUserRepository
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{&companyRepo[identity.User, models.UserModel]{
		db:            db,
		toDomain:      (*models.UserModel).ToDomain,
		fromDomain:    models.UserModelFromDomain,
		searchColumns: []string{"email", "name"},
		sortable:      map[string]bool{"created_at": true, "email": true, "name": true},
		defaultOrder:  "created_at DESC",
		preloads:      []string{"Roles"},
	}}
}

// Save persists the user and replaces their role assignments
func (r *GormUserRepository) Save(ctx context.Context, user *identity.User) error {
	model := models.UserModelFromDomain(user)
	return dbFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Roles").Save(model).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.UserRoleModel{}).Error; err != nil {
			return err
		}
		if len(model.Roles) > 0 {
			return tx.Create(&model.Roles).Error
		}
		return nil
	})
}

// FindByEmail looks a user up across companies for login
func (r *GormUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	var model models.UserModel
	err := dbFromContext(ctx, r.db).
		Preload("Roles").
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// ExistsByEmail reports whether the email is already registered across all companies
func (r *GormUserRepository) ExistsByEmail(ctx context.Context, email string, excludeID *uuid.UUID) (bool, error) {
	query := dbFromContext(ctx, r.db).
		Model(&models.UserModel{}).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email)))
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

var _ identity.UserRepository = (*GormUserRepository)(nil)

// GormRoleRepository implements identity.RoleRepository using GORM
type GormRoleRepository struct {
	*companyRepo[identity.Role, models.RoleModel]
}

// NewGormRoleRepository creates a new GormRoleRepository
func NewGormRoleRepository(db *gorm.DB) *GormRoleRepository {
	return &GormRoleRepository{&companyRepo[identity.Role, models.RoleModel]{
		db:            db,
		toDomain:      (*models.RoleModel).ToDomain,
		fromDomain:    models.RoleModelFromDomain,
		searchColumns: []string{"reference", "name"},
		sortable:      map[string]bool{"created_at": true, "reference": true, "name": true},
		defaultOrder:  "name ASC",
	}}
}

// ExistsByReference checks if another role in the company uses the reference
func (r *GormRoleRepository) ExistsByReference(ctx context.Context, companyID uuid.UUID, reference string, excludeID *uuid.UUID) (bool, error) {
	return r.existsRef(ctx, companyID, reference, excludeID)
}

// FindByIDsForCompany loads a set of roles in one query
func (r *GormRoleRepository) FindByIDsForCompany(ctx context.Context, companyID uuid.UUID, ids []uuid.UUID) ([]identity.Role, error) {
	if len(ids) == 0 {
		return []identity.Role{}, nil
	}
	query := dbFromContext(ctx, r.db).Where("company_id = ? AND id IN ?", companyID, ids)
	return r.find(query)
}

var _ identity.RoleRepository = (*GormRoleRepository)(nil)

// GormUserConfigRepository implements identity.UserConfigRepository using GORM
type GormUserConfigRepository struct {
	db *gorm.DB
}

// NewGormUserConfigRepository creates a new GormUserConfigRepository
func NewGormUserConfigRepository(db *gorm.DB) *GormUserConfigRepository {
	return &GormUserConfigRepository{db: db}
}

// FindByUser finds the config for a user
func (r *GormUserConfigRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*identity.UserConfig, error) {
	var model models.UserConfigModel
	if err := dbFromContext(ctx, r.db).First(&model, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Upsert creates or updates the config keyed by user
func (r *GormUserConfigRepository) Upsert(ctx context.Context, config *identity.UserConfig) error {
	model := models.UserConfigModelFromDomain(config)
	return dbFromContext(ctx, r.db).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"language", "theme", "rows_per_page", "updated_at"}),
		}).
		Create(model).Error
}

var _ identity.UserConfigRepository = (*GormUserConfigRepository)(nil)
