package hr

import (
	"context"

	"github.com/bizledger/backend/internal/domain/hr"
	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// DepartmentService handles department operations
type DepartmentService struct {
	departmentRepo hr.DepartmentRepository
}

// NewDepartmentService creates a new DepartmentService
func NewDepartmentService(departmentRepo hr.DepartmentRepository) *DepartmentService {
	return &DepartmentService{departmentRepo: departmentRepo}
}

// Create creates a new department
func (s *DepartmentService) Create(ctx context.Context, companyID uuid.UUID, req CreateDepartmentRequest) (*DepartmentResponse, error) {
	exists, err := s.departmentRepo.ExistsByReference(ctx, companyID, req.Reference, nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Department with this reference already exists")
	}

	department, err := hr.NewDepartment(companyID, req.Reference, req.Name)
	if err != nil {
		return nil, err
	}
	if req.CreatedBy != nil {
		department.SetCreatedBy(*req.CreatedBy)
	}

	if err := s.departmentRepo.Save(ctx, department); err != nil {
		return nil, err
	}

	response := ToDepartmentResponse(department)
	return &response, nil
}

// GetByID retrieves a department by ID
func (s *DepartmentService) GetByID(ctx context.Context, companyID, departmentID uuid.UUID) (*DepartmentResponse, error) {
	department, err := s.departmentRepo.FindByIDForCompany(ctx, companyID, departmentID)
	if err != nil {
		return nil, err
	}

	response := ToDepartmentResponse(department)
	return &response, nil
}

// List retrieves all departments for a company
func (s *DepartmentService) List(ctx context.Context, companyID uuid.UUID, page, pageSize int) ([]DepartmentResponse, int64, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}

	filter := shared.Filter{Page: page, PageSize: pageSize, Filters: make(map[string]any)}
	departments, err := s.departmentRepo.FindAllForCompany(ctx, companyID, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.departmentRepo.CountForCompany(ctx, companyID, filter)
	if err != nil {
		return nil, 0, err
	}

	return ToDepartmentResponses(departments), total, nil
}

// Update updates a department
func (s *DepartmentService) Update(ctx context.Context, companyID, departmentID uuid.UUID, req UpdateDepartmentRequest) (*DepartmentResponse, error) {
	department, err := s.departmentRepo.FindByIDForCompany(ctx, companyID, departmentID)
	if err != nil {
		return nil, err
	}

	if req.Reference != nil && *req.Reference != department.Reference {
		exists, err := s.departmentRepo.ExistsByReference(ctx, companyID, *req.Reference, &departmentID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Department with this reference already exists")
		}
		if err := department.SetReference(*req.Reference); err != nil {
			return nil, err
		}
	}

	if req.Name != nil {
		if err := department.SetName(*req.Name); err != nil {
			return nil, err
		}
	}

	if err := s.departmentRepo.Save(ctx, department); err != nil {
		return nil, err
	}

	response := ToDepartmentResponse(department)
	return &response, nil
}

// Delete deletes a department
func (s *DepartmentService) Delete(ctx context.Context, companyID, departmentID uuid.UUID) error {
	return s.departmentRepo.DeleteForCompany(ctx, companyID, departmentID)
}
