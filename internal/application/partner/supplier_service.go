package partner

import (
	"context"

	"github.com/bizledger/backend/internal/domain/partner"
	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// SupplierService handles supplier-related business operations
type SupplierService struct {
	supplierRepo partner.SupplierRepository
}

// NewSupplierService creates a new SupplierService
func NewSupplierService(supplierRepo partner.SupplierRepository) *SupplierService {
	return &SupplierService{supplierRepo: supplierRepo}
}

// Create creates a new supplier
func (s *SupplierService) Create(ctx context.Context, companyID uuid.UUID, req CreateSupplierRequest) (*SupplierResponse, error) {
	exists, err := s.supplierRepo.ExistsByReference(ctx, companyID, req.Reference, nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Supplier with this reference already exists")
	}

	supplier, err := partner.NewSupplier(companyID, req.Reference, req.Name)
	if err != nil {
		return nil, err
	}
	if req.ContactName != "" || req.Email != "" || req.Phone != "" || req.Address != "" {
		supplier.SetContact(req.ContactName, req.Email, req.Phone, req.Address)
	}
	if req.CreatedBy != nil {
		supplier.SetCreatedBy(*req.CreatedBy)
	}

	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}

	response := ToSupplierResponse(supplier)
	return &response, nil
}

// GetByID retrieves a supplier by ID
func (s *SupplierService) GetByID(ctx context.Context, companyID, supplierID uuid.UUID) (*SupplierResponse, error) {
	supplier, err := s.supplierRepo.FindByIDForCompany(ctx, companyID, supplierID)
	if err != nil {
		return nil, err
	}

	response := ToSupplierResponse(supplier)
	return &response, nil
}

// List retrieves suppliers with filtering and pagination
func (s *SupplierService) List(ctx context.Context, companyID uuid.UUID, filter SupplierListFilter) ([]SupplierResponse, int64, error) {
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

	suppliers, err := s.supplierRepo.FindAllForCompany(ctx, companyID, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.supplierRepo.CountForCompany(ctx, companyID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToSupplierResponses(suppliers), total, nil
}

// Update updates a supplier
func (s *SupplierService) Update(ctx context.Context, companyID, supplierID uuid.UUID, req UpdateSupplierRequest) (*SupplierResponse, error) {
	supplier, err := s.supplierRepo.FindByIDForCompany(ctx, companyID, supplierID)
	if err != nil {
		return nil, err
	}

	if req.Reference != nil && *req.Reference != supplier.Reference {
		exists, err := s.supplierRepo.ExistsByReference(ctx, companyID, *req.Reference, &supplierID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Supplier with this reference already exists")
		}
		if err := supplier.SetReference(*req.Reference); err != nil {
			return nil, err
		}
	}

	if req.Name != nil {
		if err := supplier.SetName(*req.Name); err != nil {
			return nil, err
		}
	}

	if req.ContactName != nil || req.Email != nil || req.Phone != nil || req.Address != nil {
		contactName := supplier.ContactName
		email := supplier.Email
		phone := supplier.Phone
		address := supplier.Address
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
		supplier.SetContact(contactName, email, phone, address)
	}

	supplier.IncrementVersion()
	if err := s.supplierRepo.SaveWithLock(ctx, supplier); err != nil {
		return nil, err
	}

	response := ToSupplierResponse(supplier)
	return &response, nil
}

// Delete deletes a supplier. Suppliers carrying payables cannot be removed.
func (s *SupplierService) Delete(ctx context.Context, companyID, supplierID uuid.UUID) error {
	supplier, err := s.supplierRepo.FindByIDForCompany(ctx, companyID, supplierID)
	if err != nil {
		return err
	}

	if !supplier.Payables.IsZero() {
		return shared.NewDomainError("CANNOT_DELETE", "Cannot delete a supplier with outstanding payables")
	}

	return s.supplierRepo.DeleteForCompany(ctx, companyID, supplierID)
}
