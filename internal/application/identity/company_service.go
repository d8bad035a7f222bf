package identity

import (
	"context"

	"github.com/bizledger/backend/internal/domain/identity"
	"github.com/google/uuid"
)

// CompanyService exposes the company settings of the authenticated tenant
type CompanyService struct {
	companyRepo identity.CompanyRepository
}

// NewCompanyService creates a new CompanyService
func NewCompanyService(companyRepo identity.CompanyRepository) *CompanyService {
	return &CompanyService{companyRepo: companyRepo}
}

// Get returns the company
func (s *CompanyService) Get(ctx context.Context, companyID uuid.UUID) (*CompanyResponse, error) {
	company, err := s.companyRepo.FindByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	response := ToCompanyResponse(company)
	return &response, nil
}

// Update changes the company's name and contact details
func (s *CompanyService) Update(ctx context.Context, companyID uuid.UUID, req UpdateCompanyRequest) (*CompanyResponse, error) {
	company, err := s.companyRepo.FindByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := company.SetName(*req.Name); err != nil {
			return nil, err
		}
	}
	address, phone, email := company.Address, company.Phone, company.Email
	if req.Address != nil {
		address = *req.Address
	}
	if req.Phone != nil {
		phone = *req.Phone
	}
	if req.Email != nil {
		email = *req.Email
	}
	company.SetContact(address, phone, email)

	if err := s.companyRepo.Save(ctx, company); err != nil {
		return nil, err
	}

	response := ToCompanyResponse(company)
	return &response, nil
}
