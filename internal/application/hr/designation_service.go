package hr

import (
	"context"

	"github.com/bizledger/backend/internal/domain/hr"
	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// DesignationService handles designation operations
type DesignationService struct {
	designationRepo hr.DesignationRepository
	departmentRepo  hr.DepartmentRepository
}

// NewDesignationService creates a new DesignationService
func NewDesignationService(designationRepo hr.DesignationRepository, departmentRepo hr.DepartmentRepository) *DesignationService {
	return &DesignationService{designationRepo: designationRepo, departmentRepo: departmentRepo}
}

// Create creates a new designation under an existing department
func (s *DesignationService) Create(ctx context.Context, companyID uuid.UUID, req CreateDesignationRequest) (*DesignationResponse, error) {
	if _, err := s.departmentRepo.FindByIDForCompany(ctx, companyID, req.DepartmentID); err != nil {
		return nil, err
	}

	designation, err := hr.NewDesignation(companyID, req.DepartmentID, req.Name)
	if err != nil {
		return nil, err
	}
	if req.CreatedBy != nil {
		designation.SetCreatedBy(*req.CreatedBy)
	}

	if err := s.designationRepo.Save(ctx, designation); err != nil {
		return nil, err
	}

	response := ToDesignationResponse(designation)
	return &response, nil
}

// GetByID retrieves a designation by ID
func (s *DesignationService) GetByID(ctx context.Context, companyID, designationID uuid.UUID) (*DesignationResponse, error) {
	designation, err := s.designationRepo.FindByIDForCompany(ctx, companyID, designationID)
	if err != nil {
		return nil, err
	}

	response := ToDesignationResponse(designation)
	return &response, nil
}

// List retrieves all designations for a company
func (s *DesignationService) List(ctx context.Context, companyID uuid.UUID, page, pageSize int) ([]DesignationResponse, int64, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}

	filter := shared.Filter{Page: page, PageSize: pageSize, Filters: make(map[string]any)}
	designations, err := s.designationRepo.FindAllForCompany(ctx, companyID, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.designationRepo.CountForCompany(ctx, companyID, filter)
	if err != nil {
		return nil, 0, err
	}

	return ToDesignationResponses(designations), total, nil
}

// Update updates a designation
func (s *DesignationService) Update(ctx context.Context, companyID, designationID uuid.UUID, req UpdateDesignationRequest) (*DesignationResponse, error) {
	designation, err := s.designationRepo.FindByIDForCompany(ctx, companyID, designationID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := designation.SetName(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.DepartmentID != nil && *req.DepartmentID != designation.DepartmentID {
		if _, err := s.departmentRepo.FindByIDForCompany(ctx, companyID, *req.DepartmentID); err != nil {
			return nil, err
		}
		if err := designation.SetDepartment(*req.DepartmentID); err != nil {
			return nil, err
		}
	}

	if err := s.designationRepo.Save(ctx, designation); err != nil {
		return nil, err
	}

	response := ToDesignationResponse(designation)
	return &response, nil
}

// Delete deletes a designation
func (s *DesignationService) Delete(ctx context.Context, companyID, designationID uuid.UUID) error {
	return s.designationRepo.DeleteForCompany(ctx, companyID, designationID)
}
