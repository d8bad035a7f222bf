package hr

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/bizledger/backend/internal/domain/hr"
	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/google/uuid"
)

const (
	resumeUploadURLExpiry   = 15 * time.Minute
	resumeDownloadURLExpiry = 1 * time.Hour
)

// EmployeeService handles employee operations, including the presigned-URL
// flow for resumes.
type EmployeeService struct {
	employeeRepo    hr.EmployeeRepository
	designationRepo hr.DesignationRepository
	storage         ObjectStorageService
}

// NewEmployeeService creates a new EmployeeService
func NewEmployeeService(employeeRepo hr.EmployeeRepository, designationRepo hr.DesignationRepository, storage ObjectStorageService) *EmployeeService {
	return &EmployeeService{employeeRepo: employeeRepo, designationRepo: designationRepo, storage: storage}
}

// Create creates a new employee
func (s *EmployeeService) Create(ctx context.Context, companyID uuid.UUID, req CreateEmployeeRequest) (*EmployeeResponse, error) {
	employee, err := hr.NewEmployee(companyID, req.Name, req.Email)
	if err != nil {
		return nil, err
	}
	if req.Phone != "" {
		employee.SetContact(req.Email, req.Phone)
	}
	if req.DesignationID != nil {
		if _, err := s.designationRepo.FindByIDForCompany(ctx, companyID, *req.DesignationID); err != nil {
			return nil, err
		}
		employee.SetDesignation(req.DesignationID)
	}
	if req.JoinDate != nil {
		employee.SetJoinDate(req.JoinDate)
	}
	if req.CreatedBy != nil {
		employee.SetCreatedBy(*req.CreatedBy)
	}

	if err := s.employeeRepo.Save(ctx, employee); err != nil {
		return nil, err
	}

	response := ToEmployeeResponse(employee)
	return &response, nil
}

// GetByID retrieves an employee by ID
func (s *EmployeeService) GetByID(ctx context.Context, companyID, employeeID uuid.UUID) (*EmployeeResponse, error) {
	employee, err := s.employeeRepo.FindByIDForCompany(ctx, companyID, employeeID)
	if err != nil {
		return nil, err
	}

	response := ToEmployeeResponse(employee)
	return &response, nil
}

// List retrieves all employees for a company
func (s *EmployeeService) List(ctx context.Context, companyID uuid.UUID, page, pageSize int) ([]EmployeeResponse, int64, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}

	filter := shared.Filter{Page: page, PageSize: pageSize, Filters: make(map[string]any)}
	employees, err := s.employeeRepo.FindAllForCompany(ctx, companyID, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.employeeRepo.CountForCompany(ctx, companyID, filter)
	if err != nil {
		return nil, 0, err
	}

	return ToEmployeeResponses(employees), total, nil
}

// Update updates an employee
func (s *EmployeeService) Update(ctx context.Context, companyID, employeeID uuid.UUID, req UpdateEmployeeRequest) (*EmployeeResponse, error) {
	employee, err := s.employeeRepo.FindByIDForCompany(ctx, companyID, employeeID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := employee.SetName(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.Email != nil || req.Phone != nil {
		email := employee.Email
		phone := employee.Phone
		if req.Email != nil {
			email = *req.Email
		}
		if req.Phone != nil {
			phone = *req.Phone
		}
		employee.SetContact(email, phone)
	}
	if req.DesignationID != nil {
		if _, err := s.designationRepo.FindByIDForCompany(ctx, companyID, *req.DesignationID); err != nil {
			return nil, err
		}
		employee.SetDesignation(req.DesignationID)
	}
	if req.JoinDate != nil {
		employee.SetJoinDate(req.JoinDate)
	}

	if err := s.employeeRepo.Save(ctx, employee); err != nil {
		return nil, err
	}

	response := ToEmployeeResponse(employee)
	return &response, nil
}

// Delete deletes an employee and their stored resume, if any
func (s *EmployeeService) Delete(ctx context.Context, companyID, employeeID uuid.UUID) error {
	employee, err := s.employeeRepo.FindByIDForCompany(ctx, companyID, employeeID)
	if err != nil {
		return err
	}

	if err := s.employeeRepo.DeleteForCompany(ctx, companyID, employeeID); err != nil {
		return err
	}

	// Best effort: a dangling object is harmless, a failed delete should
	// not resurrect the employee.
	if employee.ResumeKey != "" {
		_ = s.storage.DeleteObject(ctx, employee.ResumeKey)
	}
	return nil
}

// GenerateResumeUploadURL returns a presigned URL the client PUTs the resume
// to, along with the storage key to confirm afterwards.
func (s *EmployeeService) GenerateResumeUploadURL(ctx context.Context, companyID, employeeID uuid.UUID, req ResumeUploadURLRequest) (*PresignedURLResponse, error) {
	if !resumeContentTypes[req.ContentType] {
		return nil, shared.NewDomainError("INVALID_INPUT", "Unsupported resume content type: "+req.ContentType)
	}
	if err := hr.ValidateResumeFilename(req.Filename); err != nil {
		return nil, err
	}

	employee, err := s.employeeRepo.FindByIDForCompany(ctx, companyID, employeeID)
	if err != nil {
		return nil, err
	}

	key := employeeResumeKey(companyID, employee.ID, req.Filename)
	url, expiresAt, err := s.storage.GenerateUploadURL(ctx, key, req.ContentType, resumeUploadURLExpiry)
	if err != nil {
		return nil, err
	}

	return &PresignedURLResponse{URL: url, StorageKey: key, ExpiresAt: expiresAt}, nil
}

// ConfirmResumeUpload records the uploaded object as the employee resume
// after verifying it actually landed in the bucket.
func (s *EmployeeService) ConfirmResumeUpload(ctx context.Context, companyID, employeeID uuid.UUID, req ConfirmResumeUploadRequest) (*EmployeeResponse, error) {
	employee, err := s.employeeRepo.FindByIDForCompany(ctx, companyID, employeeID)
	if err != nil {
		return nil, err
	}

	exists, err := s.storage.ObjectExists(ctx, req.StorageKey)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, shared.NewDomainError("NOT_FOUND", "Uploaded resume not found in storage")
	}

	previous := employee.ResumeKey
	if err := employee.SetResume(req.StorageKey, req.Filename); err != nil {
		return nil, err
	}
	if err := s.employeeRepo.Save(ctx, employee); err != nil {
		return nil, err
	}

	if previous != "" && previous != req.StorageKey {
		_ = s.storage.DeleteObject(ctx, previous)
	}

	response := ToEmployeeResponse(employee)
	return &response, nil
}

// GenerateResumeDownloadURL returns a presigned URL for the employee resume
func (s *EmployeeService) GenerateResumeDownloadURL(ctx context.Context, companyID, employeeID uuid.UUID) (*PresignedURLResponse, error) {
	employee, err := s.employeeRepo.FindByIDForCompany(ctx, companyID, employeeID)
	if err != nil {
		return nil, err
	}
	if employee.ResumeKey == "" {
		return nil, shared.NewDomainError("NOT_FOUND", "Employee has no resume")
	}

	url, expiresAt, err := s.storage.GenerateDownloadURL(ctx, employee.ResumeKey, resumeDownloadURLExpiry)
	if err != nil {
		return nil, err
	}

	return &PresignedURLResponse{URL: url, StorageKey: employee.ResumeKey, ExpiresAt: expiresAt}, nil
}

func employeeResumeKey(companyID, employeeID uuid.UUID, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return fmt.Sprintf("companies/%s/employees/%s/resume%s", companyID, employeeID, ext)
}
