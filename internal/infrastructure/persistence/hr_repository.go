package persistence

import (
	"context"

	"github.com/bizledger/backend/internal/domain/hr"
	"github.com/bizledger/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormDepartmentRepository implements hr.DepartmentRepository using GORM
type GormDepartmentRepository struct {
	*companyRepo[hr.Department, models.DepartmentModel]
}

// NewGormDepartmentRepository creates a new GormDepartmentRepository
func NewGormDepartmentRepository(db *gorm.DB) *GormDepartmentRepository {
	return &GormDepartmentRepository{&companyRepo[hr.Department, models.DepartmentModel]{
		db:            db,
		toDomain:      (*models.DepartmentModel).ToDomain,
		fromDomain:    models.DepartmentModelFromDomain,
		searchColumns: []string{"reference", "name"},
		sortable:      map[string]bool{"created_at": true, "reference": true, "name": true},
		defaultOrder:  "name ASC",
	}}
}

// ExistsByReference checks if another department in the company uses the reference
func (r *GormDepartmentRepository) ExistsByReference(ctx context.Context, companyID uuid.UUID, reference string, excludeID *uuid.UUID) (bool, error) {
	return r.existsRef(ctx, companyID, reference, excludeID)
}

var _ hr.DepartmentRepository = (*GormDepartmentRepository)(nil)

// GormDesignationRepository implements hr.DesignationRepository using GORM
type GormDesignationRepository struct {
	*companyRepo[hr.Designation, models.DesignationModel]
}

// NewGormDesignationRepository creates a new GormDesignationRepository
func NewGormDesignationRepository(db *gorm.DB) *GormDesignationRepository {
	return &GormDesignationRepository{&companyRepo[hr.Designation, models.DesignationModel]{
		db:            db,
		toDomain:      (*models.DesignationModel).ToDomain,
		fromDomain:    models.DesignationModelFromDomain,
		searchColumns: []string{"name"},
		sortable:      map[string]bool{"created_at": true, "name": true},
		defaultOrder:  "name ASC",
		filterColumns: map[string]string{"department_id": "department_id"},
	}}
}

var _ hr.DesignationRepository = (*GormDesignationRepository)(nil)

// GormEmployeeRepository implements hr.EmployeeRepository using GORM
type GormEmployeeRepository struct {
	*companyRepo[hr.Employee, models.EmployeeModel]
}

// NewGormEmployeeRepository creates a new GormEmployeeRepository
func NewGormEmployeeRepository(db *gorm.DB) *GormEmployeeRepository {
	return &GormEmployeeRepository{&companyRepo[hr.Employee, models.EmployeeModel]{
		db:            db,
		toDomain:      (*models.EmployeeModel).ToDomain,
		fromDomain:    models.EmployeeModelFromDomain,
		searchColumns: []string{"name", "email", "phone"},
		sortable:      map[string]bool{"created_at": true, "name": true, "join_date": true},
		defaultOrder:  "name ASC",
		filterColumns: map[string]string{"designation_id": "designation_id"},
	}}
}

var _ hr.EmployeeRepository = (*GormEmployeeRepository)(nil)

// GormPayslipRepository implements hr.PayslipRepository using GORM
type GormPayslipRepository struct {
	*companyRepo[hr.Payslip, models.PayslipModel]
}

// NewGormPayslipRepository creates a new GormPayslipRepository
func NewGormPayslipRepository(db *gorm.DB) *GormPayslipRepository {
	return &GormPayslipRepository{&companyRepo[hr.Payslip, models.PayslipModel]{
		db:            db,
		toDomain:      (*models.PayslipModel).ToDomain,
		fromDomain:    models.PayslipModelFromDomain,
		searchColumns: []string{"reference"},
		sortable:      map[string]bool{"created_at": true, "reference": true, "date": true, "total_amount": true},
		defaultOrder:  "date DESC, created_at DESC",
		filterColumns: map[string]string{"status": "status", "employee_id": "employee_id"},
		preloads:      []string{"Items"},
	}}
}

// Save persists the payslip and its pay items in one transaction
func (r *GormPayslipRepository) Save(ctx context.Context, payslip *hr.Payslip) error {
	model := models.PayslipModelFromDomain(payslip)
	return dbFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items").Save(model).Error; err != nil {
			return err
		}
		keepIDs := make([]uuid.UUID, len(payslip.Items))
		for i, item := range payslip.Items {
			keepIDs[i] = item.ID
		}
		query := tx.Where("payslip_id = ?", payslip.ID)
		if len(keepIDs) > 0 {
			query = query.Where("id NOT IN ?", keepIDs)
		}
		if err := query.Delete(&models.PayItemModel{}).Error; err != nil {
			return err
		}
		if len(model.Items) > 0 {
			return tx.Save(&model.Items).Error
		}
		return nil
	})
}

// ExistsByReference checks if another payslip in the company uses the reference
func (r *GormPayslipRepository) ExistsByReference(ctx context.Context, companyID uuid.UUID, reference string, excludeID *uuid.UUID) (bool, error) {
	return r.existsRef(ctx, companyID, reference, excludeID)
}

var _ hr.PayslipRepository = (*GormPayslipRepository)(nil)
