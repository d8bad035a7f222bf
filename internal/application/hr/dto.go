package hr

import (
	"time"

	"github.com/bizledger/backend/internal/domain/hr"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// =============================================================================
// Department DTOs
// =============================================================================

// CreateDepartmentRequest represents a request to create a department
type CreateDepartmentRequest struct {
	Reference string     `json:"reference" binding:"required,min=1,max=50"`
	Name      string     `json:"name" binding:"required,min=1,max=200"`
	CreatedBy *uuid.UUID `json:"-"`
}

// UpdateDepartmentRequest represents a request to update a department
type UpdateDepartmentRequest struct {
	Reference *string `json:"reference" binding:"omitempty,min=1,max=50"`
	Name      *string `json:"name" binding:"omitempty,min=1,max=200"`
}

// DepartmentResponse represents a department in API responses
type DepartmentResponse struct {
	ID        uuid.UUID `json:"id"`
	CompanyID uuid.UUID `json:"company_id"`
	Reference string    `json:"reference"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToDepartmentResponse converts a domain Department to DepartmentResponse
func ToDepartmentResponse(d *hr.Department) DepartmentResponse {
	return DepartmentResponse{
		ID:        d.ID,
		CompanyID: d.CompanyID,
		Reference: d.Reference,
		Name:      d.Name,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// ToDepartmentResponses converts a slice of domain Departments to responses
func ToDepartmentResponses(departments []hr.Department) []DepartmentResponse {
	responses := make([]DepartmentResponse, len(departments))
	for i := range departments {
		responses[i] = ToDepartmentResponse(&departments[i])
	}
	return responses
}

// =============================================================================
// Designation DTOs
// =============================================================================

// CreateDesignationRequest represents a request to create a designation
type CreateDesignationRequest struct {
	Name         string     `json:"name" binding:"required,min=1,max=200"`
	DepartmentID uuid.UUID  `json:"department_id" binding:"required"`
	CreatedBy    *uuid.UUID `json:"-"`
}

// UpdateDesignationRequest represents a request to update a designation
type UpdateDesignationRequest struct {
	Name         *string    `json:"name" binding:"omitempty,min=1,max=200"`
	DepartmentID *uuid.UUID `json:"department_id"`
}

// DesignationResponse represents a designation in API responses
type DesignationResponse struct {
	ID           uuid.UUID `json:"id"`
	CompanyID    uuid.UUID `json:"company_id"`
	Name         string    `json:"name"`
	DepartmentID uuid.UUID `json:"department_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ToDesignationResponse converts a domain Designation to DesignationResponse
func ToDesignationResponse(d *hr.Designation) DesignationResponse {
	return DesignationResponse{
		ID:           d.ID,
		CompanyID:    d.CompanyID,
		Name:         d.Name,
		DepartmentID: d.DepartmentID,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// ToDesignationResponses converts a slice of domain Designations to responses
func ToDesignationResponses(designations []hr.Designation) []DesignationResponse {
	responses := make([]DesignationResponse, len(designations))
	for i := range designations {
		responses[i] = ToDesignationResponse(&designations[i])
	}
	return responses
}

// =============================================================================
// Employee DTOs
// =============================================================================

// CreateEmployeeRequest represents a request to create an employee
type CreateEmployeeRequest struct {
	Name          string     `json:"name" binding:"required,min=1,max=200"`
	Email         string     `json:"email" binding:"omitempty,email"`
	Phone         string     `json:"phone" binding:"max=50"`
	DesignationID *uuid.UUID `json:"designation_id"`
	JoinDate      *time.Time `json:"join_date"`
	CreatedBy     *uuid.UUID `json:"-"`
}

// UpdateEmployeeRequest represents a request to update an employee
type UpdateEmployeeRequest struct {
	Name          *string    `json:"name" binding:"omitempty,min=1,max=200"`
	Email         *string    `json:"email" binding:"omitempty,email"`
	Phone         *string    `json:"phone" binding:"omitempty,max=50"`
	DesignationID *uuid.UUID `json:"designation_id"`
	JoinDate      *time.Time `json:"join_date"`
}

// EmployeeResponse represents an employee in API responses
type EmployeeResponse struct {
	ID            uuid.UUID  `json:"id"`
	CompanyID     uuid.UUID  `json:"company_id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone"`
	DesignationID *uuid.UUID `json:"designation_id,omitempty"`
	JoinDate      *time.Time `json:"join_date,omitempty"`
	HasResume     bool       `json:"has_resume"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// ToEmployeeResponse converts a domain Employee to EmployeeResponse
func ToEmployeeResponse(e *hr.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:            e.ID,
		CompanyID:     e.CompanyID,
		Name:          e.Name,
		Email:         e.Email,
		Phone:         e.Phone,
		DesignationID: e.DesignationID,
		JoinDate:      e.JoinDate,
		HasResume:     e.ResumeKey != "",
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

// ToEmployeeResponses converts a slice of domain Employees to responses
func ToEmployeeResponses(employees []hr.Employee) []EmployeeResponse {
	responses := make([]EmployeeResponse, len(employees))
	for i := range employees {
		responses[i] = ToEmployeeResponse(&employees[i])
	}
	return responses
}

// =============================================================================
// Resume DTOs
// =============================================================================

// ResumeUploadURLRequest asks for a presigned URL to upload a resume
type ResumeUploadURLRequest struct {
	Filename    string `json:"filename" binding:"required"`
	ContentType string `json:"content_type" binding:"required"`
}

// ConfirmResumeUploadRequest confirms a resume landed in object storage
type ConfirmResumeUploadRequest struct {
	StorageKey string `json:"storage_key" binding:"required"`
	Filename   string `json:"filename" binding:"required"`
}

// PresignedURLResponse carries a presigned URL and its expiry
type PresignedURLResponse struct {
	URL        string    `json:"url"`
	StorageKey string    `json:"storage_key"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// =============================================================================
// Payslip DTOs
// =============================================================================

// PayItemRequest is one pay component on an incoming payslip. Deductions
// come in as negative amounts.
type PayItemRequest struct {
	Description string          `json:"description" binding:"required,min=1,max=200"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
}

// CreatePayslipRequest represents a request to create a payslip
type CreatePayslipRequest struct {
	Reference  string           `json:"reference" binding:"required,min=1,max=50"`
	EmployeeID uuid.UUID        `json:"employee_id" binding:"required"`
	Date       time.Time        `json:"date" binding:"required"`
	Status     string           `json:"status" binding:"omitempty,oneof=DFT PD"`
	Items      []PayItemRequest `json:"items" binding:"required,min=1,dive"`
	CreatedBy  *uuid.UUID       `json:"-"`
}

// UpdatePayslipRequest represents a request to update a payslip
type UpdatePayslipRequest struct {
	Reference *string           `json:"reference" binding:"omitempty,min=1,max=50"`
	Date      *time.Time        `json:"date"`
	Status    *string           `json:"status" binding:"omitempty,oneof=DFT PD"`
	Items     *[]PayItemRequest `json:"items" binding:"omitempty,min=1,dive"`
}

// PayItemResponse represents one pay component in API responses
type PayItemResponse struct {
	ID          uuid.UUID       `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// PayslipResponse represents a payslip in API responses
type PayslipResponse struct {
	ID          uuid.UUID         `json:"id"`
	CompanyID   uuid.UUID         `json:"company_id"`
	Reference   string            `json:"reference"`
	EmployeeID  uuid.UUID         `json:"employee_id"`
	Date        time.Time         `json:"date"`
	Status      string            `json:"status"`
	TotalAmount decimal.Decimal   `json:"total_amount"`
	Items       []PayItemResponse `json:"items"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
	Version     int               `json:"version"`
}

// PayslipListFilter represents filter options for the payslip list
type PayslipListFilter struct {
	Search     string     `form:"search"`
	EmployeeID *uuid.UUID `form:"employee_id"`
	Status     string     `form:"status" binding:"omitempty,oneof=DFT PD"`
	Page       int        `form:"page" binding:"omitempty,min=1"`
	PageSize   int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy    string     `form:"order_by"`
	OrderDir   string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToPayslipResponse converts a domain Payslip to PayslipResponse
func ToPayslipResponse(p *hr.Payslip) PayslipResponse {
	items := make([]PayItemResponse, len(p.Items))
	for i := range p.Items {
		items[i] = PayItemResponse{
			ID:          p.Items[i].ID,
			Description: p.Items[i].Description,
			Amount:      p.Items[i].Amount,
		}
	}
	return PayslipResponse{
		ID:          p.ID,
		CompanyID:   p.CompanyID,
		Reference:   p.Reference,
		EmployeeID:  p.EmployeeID,
		Date:        p.Date,
		Status:      string(p.Status),
		TotalAmount: p.TotalAmount,
		Items:       items,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		Version:     p.Version,
	}
}

// ToPayslipResponses converts a slice of domain Payslips to responses
func ToPayslipResponses(payslips []hr.Payslip) []PayslipResponse {
	responses := make([]PayslipResponse, len(payslips))
	for i := range payslips {
		responses[i] = ToPayslipResponse(&payslips[i])
	}
	return responses
}
