package models

import (
	"time"

	"github.com/bizledger/backend/internal/domain/hr"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DepartmentModel maps hr.Department to the departments table
type DepartmentModel struct {
	CompanyAggregateModel
	Reference string `gorm:"size:64;not null;index"`
	Name      string `gorm:"size:255;not null"`
}

// TableName specifies the table name
func (DepartmentModel) TableName() string {
	return "departments"
}

// ToDomain converts the model to the domain aggregate
func (m *DepartmentModel) ToDomain() *hr.Department {
	d := &hr.Department{
		Reference: m.Reference,
		Name:      m.Name,
	}
	m.PopulateCompanyAggregateRoot(&d.CompanyAggregateRoot)
	return d
}

// DepartmentModelFromDomain converts the domain aggregate to the model
func DepartmentModelFromDomain(d *hr.Department) *DepartmentModel {
	m := &DepartmentModel{
		Reference: d.Reference,
		Name:      d.Name,
	}
	m.FromDomainCompanyAggregateRoot(d.CompanyAggregateRoot)
	return m
}

// DesignationModel maps hr.Designation to the designations table
type DesignationModel struct {
	CompanyAggregateModel
	Name         string    `gorm:"size:255;not null"`
	DepartmentID uuid.UUID `gorm:"type:uuid;not null;index"`
}

// TableName specifies the table name
func (DesignationModel) TableName() string {
	return "designations"
}

// ToDomain converts the model to the domain aggregate
func (m *DesignationModel) ToDomain() *hr.Designation {
	d := &hr.Designation{
		Name:         m.Name,
		DepartmentID: m.DepartmentID,
	}
	m.PopulateCompanyAggregateRoot(&d.CompanyAggregateRoot)
	return d
}

// DesignationModelFromDomain converts the domain aggregate to the model
func DesignationModelFromDomain(d *hr.Designation) *DesignationModel {
	m := &DesignationModel{
		Name:         d.Name,
		DepartmentID: d.DepartmentID,
	}
	m.FromDomainCompanyAggregateRoot(d.CompanyAggregateRoot)
	return m
}

// EmployeeModel maps hr.Employee to the employees table
type EmployeeModel struct {
	CompanyAggregateModel
	Name          string     `gorm:"size:255;not null"`
	Email         string     `gorm:"size:255"`
	Phone         string     `gorm:"size:64"`
	DesignationID *uuid.UUID `gorm:"type:uuid;index"`
	JoinDate      *time.Time
	ResumeKey     string `gorm:"size:512"`
}

// TableName specifies the table name
func (EmployeeModel) TableName() string {
	return "employees"
}

// ToDomain converts the model to the domain aggregate
func (m *EmployeeModel) ToDomain() *hr.Employee {
	e := &hr.Employee{
		Name:          m.Name,
		Email:         m.Email,
		Phone:         m.Phone,
		DesignationID: m.DesignationID,
		JoinDate:      m.JoinDate,
		ResumeKey:     m.ResumeKey,
	}
	m.PopulateCompanyAggregateRoot(&e.CompanyAggregateRoot)
	return e
}

// EmployeeModelFromDomain converts the domain aggregate to the model
func EmployeeModelFromDomain(e *hr.Employee) *EmployeeModel {
	m := &EmployeeModel{
		Name:          e.Name,
		Email:         e.Email,
		Phone:         e.Phone,
		DesignationID: e.DesignationID,
		JoinDate:      e.JoinDate,
		ResumeKey:     e.ResumeKey,
	}
	m.FromDomainCompanyAggregateRoot(e.CompanyAggregateRoot)
	return m
}

// PayItemModel maps a line of a payslip
type PayItemModel struct {
	BaseModel
	PayslipID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Description string          `gorm:"size:255;not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(20,4);not null"`
}

// TableName specifies the table name
func (PayItemModel) TableName() string {
	return "pay_items"
}

// PayslipModel maps hr.Payslip to the payslips table
type PayslipModel struct {
	CompanyAggregateModel
	Reference   string          `gorm:"size:64;not null;index"`
	Date        time.Time       `gorm:"not null;index"`
	EmployeeID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Status      string          `gorm:"size:8;not null;index"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	Items       []PayItemModel  `gorm:"foreignKey:PayslipID"`
}

// TableName specifies the table name
func (PayslipModel) TableName() string {
	return "payslips"
}

// ToDomain converts the model to the domain aggregate
func (m *PayslipModel) ToDomain() *hr.Payslip {
	p := &hr.Payslip{
		Reference:   m.Reference,
		Date:        m.Date,
		EmployeeID:  m.EmployeeID,
		Status:      hr.PayslipStatus(m.Status),
		TotalAmount: m.TotalAmount,
	}
	m.PopulateCompanyAggregateRoot(&p.CompanyAggregateRoot)
	p.Items = make([]hr.PayItem, len(m.Items))
	for i, item := range m.Items {
		p.Items[i] = hr.PayItem{
			BaseEntity:  item.BaseModel.ToDomain(),
			PayslipID:   item.PayslipID,
			Description: item.Description,
			Amount:      item.Amount,
		}
	}
	return p
}

// PayslipModelFromDomain converts the domain aggregate to the model
func PayslipModelFromDomain(p *hr.Payslip) *PayslipModel {
	m := &PayslipModel{
		Reference:   p.Reference,
		Date:        p.Date,
		EmployeeID:  p.EmployeeID,
		Status:      string(p.Status),
		TotalAmount: p.TotalAmount,
	}
	m.FromDomainCompanyAggregateRoot(p.CompanyAggregateRoot)
	m.Items = make([]PayItemModel, len(p.Items))
	for i, item := range p.Items {
		im := PayItemModel{
			PayslipID:   item.PayslipID,
			Description: item.Description,
			Amount:      item.Amount,
		}
		im.FromDomainBaseEntity(item.BaseEntity)
		m.Items[i] = im
	}
	return m
}
