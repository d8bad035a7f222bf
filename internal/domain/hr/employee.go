package hr

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// allowed resume file extensions
var resumeExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

// Employee is a staff profile. ResumeKey points at the uploaded resume in
// object storage.
type Employee struct {
	shared.CompanyAggregateRoot
	Name          string
	Email         string
	Phone         string
	DesignationID *uuid.UUID
	JoinDate      *time.Time
	ResumeKey     string
}

// NewEmployee creates a new employee profile for a company
func NewEmployee(companyID uuid.UUID, name, email string) (*Employee, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Employee name is required")
	}
	return &Employee{
		CompanyAggregateRoot: shared.NewCompanyAggregateRoot(companyID),
		Name:                 name,
		Email:                strings.ToLower(strings.TrimSpace(email)),
	}, nil
}

// SetName changes the employee name
func (e *Employee) SetName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_INPUT", "Employee name is required")
	}
	e.Name = name
	e.UpdatedAt = time.Now()
	return nil
}

// SetContact updates email and phone
func (e *Employee) SetContact(email, phone string) {
	e.Email = strings.ToLower(strings.TrimSpace(email))
	e.Phone = phone
	e.UpdatedAt = time.Now()
}

// SetDesignation assigns the employee a designation
func (e *Employee) SetDesignation(designationID *uuid.UUID) {
	e.DesignationID = designationID
	e.UpdatedAt = time.Now()
}

// SetJoinDate records when the employee joined
func (e *Employee) SetJoinDate(joinDate *time.Time) {
	e.JoinDate = joinDate
	e.UpdatedAt = time.Now()
}

// SetResume records the object storage key of the uploaded resume after
// validating the file extension.
func (e *Employee) SetResume(key, filename string) error {
	if err := ValidateResumeFilename(filename); err != nil {
		return err
	}
	e.ResumeKey = key
	e.UpdatedAt = time.Now()
	return nil
}

// ValidateResumeFilename rejects resume files that are not pdf/doc/docx
func ValidateResumeFilename(filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if !resumeExtensions[ext] {
		return shared.NewDomainError("INVALID_INPUT", "Resume must be a pdf, doc or docx file")
	}
	return nil
}
