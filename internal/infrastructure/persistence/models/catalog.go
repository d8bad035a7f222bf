package models

import (
	"github.com/bizledger/backend/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryModel maps catalog.Category to the categories table
type CategoryModel struct {
	CompanyAggregateModel
	Name        string `gorm:"size:255;not null"`
	Description string `gorm:"size:512"`
}

// TableName specifies the table name
func (CategoryModel) TableName() string {
	return "categories"
}

// ToDomain converts the model to the domain aggregate
func (m *CategoryModel) ToDomain() *catalog.Category {
	c := &catalog.Category{
		Name:        m.Name,
		Description: m.Description,
	}
	m.PopulateCompanyAggregateRoot(&c.CompanyAggregateRoot)
	return c
}

// CategoryModelFromDomain converts the domain aggregate to the model
func CategoryModelFromDomain(c *catalog.Category) *CategoryModel {
	m := &CategoryModel{
		Name:        c.Name,
		Description: c.Description,
	}
	m.FromDomainCompanyAggregateRoot(c.CompanyAggregateRoot)
	return m
}

// ProductModel maps catalog.Product to the products table
type ProductModel struct {
	CompanyAggregateModel
	Reference  string          `gorm:"size:64;not null;index"`
	Name       string          `gorm:"size:255;not null"`
	CategoryID *uuid.UUID      `gorm:"type:uuid;index"`
	Unit       string          `gorm:"size:32"`
	Cost       decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	Stock      int64           `gorm:"not null;default:0"`
	SalesCount int64           `gorm:"not null;default:0"`
	ImageKey   string          `gorm:"size:512"`
}

// TableName specifies the table name
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the model to the domain aggregate
func (m *ProductModel) ToDomain() *catalog.Product {
	p := &catalog.Product{
		Reference:  m.Reference,
		Name:       m.Name,
		CategoryID: m.CategoryID,
		Unit:       m.Unit,
		Cost:       m.Cost,
		UnitPrice:  m.UnitPrice,
		Stock:      m.Stock,
		SalesCount: m.SalesCount,
		ImageKey:   m.ImageKey,
	}
	m.PopulateCompanyAggregateRoot(&p.CompanyAggregateRoot)
	return p
}

// ProductModelFromDomain converts the domain aggregate to the model
func ProductModelFromDomain(p *catalog.Product) *ProductModel {
	m := &ProductModel{
		Reference:  p.Reference,
		Name:       p.Name,
		CategoryID: p.CategoryID,
		Unit:       p.Unit,
		Cost:       p.Cost,
		UnitPrice:  p.UnitPrice,
		Stock:      p.Stock,
		SalesCount: p.SalesCount,
		ImageKey:   p.ImageKey,
	}
	m.FromDomainCompanyAggregateRoot(p.CompanyAggregateRoot)
	return m
}

// PaymentMethodModel maps catalog.PaymentMethod to the payment_methods table
type PaymentMethodModel struct {
	CompanyAggregateModel
	Name string `gorm:"size:255;not null"`
}

// TableName specifies the table name
func (PaymentMethodModel) TableName() string {
	return "payment_methods"
}

// ToDomain converts the model to the domain aggregate
func (m *PaymentMethodModel) ToDomain() *catalog.PaymentMethod {
	p := &catalog.PaymentMethod{
		Name: m.Name,
	}
	m.PopulateCompanyAggregateRoot(&p.CompanyAggregateRoot)
	return p
}

// PaymentMethodModelFromDomain converts the domain aggregate to the model
func PaymentMethodModelFromDomain(p *catalog.PaymentMethod) *PaymentMethodModel {
	m := &PaymentMethodModel{
		Name: p.Name,
	}
	m.FromDomainCompanyAggregateRoot(p.CompanyAggregateRoot)
	return m
}
