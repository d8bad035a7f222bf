package models

import (
	"github.com/bizledger/backend/internal/domain/identity"
	"github.com/google/uuid"
)

// CompanyModel maps identity.Company to the companies table
type CompanyModel struct {
	AggregateModel
	Name    string `gorm:"size:255;not null"`
	Address string `gorm:"size:512"`
	Phone   string `gorm:"size:64"`
	Email   string `gorm:"size:255"`
}

// TableName specifies the table name
func (CompanyModel) TableName() string {
	return "companies"
}

// ToDomain converts the model to the domain aggregate
func (m *CompanyModel) ToDomain() *identity.Company {
	c := &identity.Company{
		Name:    m.Name,
		Address: m.Address,
		Phone:   m.Phone,
		Email:   m.Email,
	}
	m.PopulateAggregateRoot(&c.BaseAggregateRoot)
	return c
}

// CompanyModelFromDomain converts the domain aggregate to the model
func CompanyModelFromDomain(c *identity.Company) *CompanyModel {
	m := &CompanyModel{
		Name:    c.Name,
		Address: c.Address,
		Phone:   c.Phone,
		Email:   c.Email,
	}
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	return m
}

// UserRoleModel is the join row between users and roles
type UserRoleModel struct {
	UserID uuid.UUID `gorm:"type:uuid;primaryKey"`
	RoleID uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// TableName specifies the table name
func (UserRoleModel) TableName() string {
	return "user_roles"
}

// UserModel maps identity.User to the users table. Role assignments live in
// the user_roles join table.
type UserModel struct {
	CompanyAggregateModel
	Email        string          `gorm:"size:255;not null;uniqueIndex"`
	PasswordHash string          `gorm:"size:255;not null"`
	Name         string          `gorm:"size:255;not null"`
	IsOwner      bool            `gorm:"not null;default:false"`
	Roles        []UserRoleModel `gorm:"foreignKey:UserID"`
}

// TableName specifies the table name
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the model to the domain aggregate
func (m *UserModel) ToDomain() *identity.User {
	u := &identity.User{
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Name:         m.Name,
		IsOwner:      m.IsOwner,
	}
	m.PopulateCompanyAggregateRoot(&u.CompanyAggregateRoot)
	u.RoleIDs = make([]uuid.UUID, len(m.Roles))
	for i, r := range m.Roles {
		u.RoleIDs[i] = r.RoleID
	}
	return u
}

// UserModelFromDomain converts the domain aggregate to the model
func UserModelFromDomain(u *identity.User) *UserModel {
	m := &UserModel{
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Name:         u.Name,
		IsOwner:      u.IsOwner,
	}
	m.FromDomainCompanyAggregateRoot(u.CompanyAggregateRoot)
	m.Roles = make([]UserRoleModel, len(u.RoleIDs))
	for i, roleID := range u.RoleIDs {
		m.Roles[i] = UserRoleModel{UserID: u.ID, RoleID: roleID}
	}
	return m
}

// RoleModel maps identity.Role to the roles table. Permissions are stored
// as a JSON array of permission codes.
type RoleModel struct {
	CompanyAggregateModel
	Reference   string   `gorm:"size:64;not null;index"`
	Name        string   `gorm:"size:255;not null"`
	Permissions []string `gorm:"serializer:json;type:text"`
}

// TableName specifies the table name
func (RoleModel) TableName() string {
	return "roles"
}

// ToDomain converts the model to the domain aggregate
func (m *RoleModel) ToDomain() *identity.Role {
	r := &identity.Role{
		Reference:   m.Reference,
		Name:        m.Name,
		Permissions: m.Permissions,
	}
	m.PopulateCompanyAggregateRoot(&r.CompanyAggregateRoot)
	return r
}

// RoleModelFromDomain converts the domain aggregate to the model
func RoleModelFromDomain(r *identity.Role) *RoleModel {
	m := &RoleModel{
		Reference:   r.Reference,
		Name:        r.Name,
		Permissions: r.Permissions,
	}
	m.FromDomainCompanyAggregateRoot(r.CompanyAggregateRoot)
	return m
}

// UserConfigModel maps identity.UserConfig to the user_configs table
type UserConfigModel struct {
	BaseModel
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Language    string    `gorm:"size:16;not null"`
	Theme       string    `gorm:"size:16;not null"`
	RowsPerPage int       `gorm:"not null"`
}

// TableName specifies the table name
func (UserConfigModel) TableName() string {
	return "user_configs"
}

// ToDomain converts the model to the domain entity
func (m *UserConfigModel) ToDomain() *identity.UserConfig {
	return &identity.UserConfig{
		BaseEntity:  m.BaseModel.ToDomain(),
		UserID:      m.UserID,
		Language:    m.Language,
		Theme:       m.Theme,
		RowsPerPage: m.RowsPerPage,
	}
}

// UserConfigModelFromDomain converts the domain entity to the model
func UserConfigModelFromDomain(c *identity.UserConfig) *UserConfigModel {
	m := &UserConfigModel{
		UserID:      c.UserID,
		Language:    c.Language,
		Theme:       c.Theme,
		RowsPerPage: c.RowsPerPage,
	}
	m.FromDomainBaseEntity(c.BaseEntity)
	return m
}
