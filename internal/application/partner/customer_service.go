// Package partner contains application services for customers and
// suppliers: request validation, uniqueness checks and persistence
// orchestration on top of the domain aggregates.
package partner

import (
	"context"

	"github.com/bizledger/backend/internal/domain/partner"
	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CustomerService handles customer-related business operations
type CustomerService struct {
	customerRepo partner.CustomerRepository
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(customerRepo partner.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// Create creates a new customer
func (s *CustomerService) Create(ctx context.Context, companyID uuid.UUID, req CreateCustomerRequest) (*CustomerResponse, error) {
	exists, err := s.customerRepo.ExistsByReference(ctx, companyID, req.Reference, nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Customer with this reference already exists")
	}

	customer, err := partner.NewCustomer(companyID, req.Reference, req.Name)
	if err != nil {
		return nil, err
	}
	if req.ContactName != "" || req.Email != "" || req.Phone != "" || req.Address != "" {
		customer.SetContact(req.ContactName, req.Email, req.Phone, req.Address)
	}
	if req.CreatedBy != nil {
		customer.SetCreatedBy(*req.CreatedBy)
	}

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}

// GetByID retrieves a customer by ID
func (s *CustomerService) GetByID(ctx context.Context, companyID, customerID uuid.UUID) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByIDForCompany(ctx, companyID, customerID)
	if err != nil {
		return nil, err
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}

// List retrieves customers with filtering and pagination
func (s *CustomerService) List(ctx context.Context, companyID uuid.UUID, filter CustomerListFilter) ([]CustomerResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
		Filters:  make(map[string]any),
	}

	customers, err := s.customerRepo.FindAllForCompany(ctx, companyID, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.customerRepo.CountForCompany(ctx, companyID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToCustomerResponses(customers), total, nil
}

// Update updates a customer
func (s *CustomerService) Update(ctx context.Context, companyID, customerID uuid.UUID, req UpdateCustomerRequest) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByIDForCompany(ctx, companyID, customerID)
	if err != nil {
		return nil, err
	}

	if req.Reference != nil && *req.Reference != customer.Reference {
		exists, err := s.customerRepo.ExistsByReference(ctx, companyID, *req.Reference, &customerID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Customer with this reference already exists")
		}
		if err := customer.SetReference(*req.Reference); err != nil {
			return nil, err
		}
	}

	if req.Name != nil {
		if err := customer.SetName(*req.Name); err != nil {
			return nil, err
		}
	}

	if req.ContactName != nil || req.Email != nil || req.Phone != nil || req.Address != nil {
		contactName := customer.ContactName
		email := customer.Email
		phone := customer.Phone
		address := customer.Address
		if req.ContactName != nil {
			contactName = *req.ContactName
		}
		if req.Email != nil {
			email = *req.Email
		}
		if req.Phone != nil {
			phone = *req.Phone
		}
		if req.Address != nil {
			address = *req.Address
		}
		customer.SetContact(contactName, email, phone, address)
	}

	customer.IncrementVersion()
	if err := s.customerRepo.SaveWithLock(ctx, customer); err != nil {
		return nil, err
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}

// Delete deletes a customer. Customers carrying receivables or unused
// credits cannot be removed; their documents still reference the balances.
func (s *CustomerService) Delete(ctx context.Context, companyID, customerID uuid.UUID) error {
	customer, err := s.customerRepo.FindByIDForCompany(ctx, companyID, customerID)
	if err != nil {
		return err
	}

	if !customer.Receivables.IsZero() || !customer.UnusedCredits.IsZero() {
		return shared.NewDomainError("CANNOT_DELETE", "Cannot delete a customer with outstanding balances")
	}

	return s.customerRepo.DeleteForCompany(ctx, companyID, customerID)
}
