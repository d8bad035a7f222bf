package hr

import (
	"context"

	"github.com/bizledger/backend/internal/domain/hr"
	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// PayslipService handles payslip operations
type PayslipService struct {
	payslipRepo  hr.PayslipRepository
	employeeRepo hr.EmployeeRepository
}

// NewPayslipService creates a new PayslipService
func NewPayslipService(payslipRepo hr.PayslipRepository, employeeRepo hr.EmployeeRepository) *PayslipService {
	return &PayslipService{payslipRepo: payslipRepo, employeeRepo: employeeRepo}
}

// Create creates a new payslip with its pay components
func (s *PayslipService) Create(ctx context.Context, companyID uuid.UUID, req CreatePayslipRequest) (*PayslipResponse, error) {
	exists, err := s.payslipRepo.ExistsByReference(ctx, companyID, req.Reference, nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Payslip with this reference already exists")
	}

	if _, err := s.employeeRepo.FindByIDForCompany(ctx, companyID, req.EmployeeID); err != nil {
		return nil, err
	}

	payslip, err := hr.NewPayslip(companyID, req.Reference, req.EmployeeID, req.Date)
	if err != nil {
		return nil, err
	}
	payslip.ReplaceItems(toPayItems(payslip.ID, req.Items))
	if req.Status != "" {
		if err := payslip.SetStatus(hr.PayslipStatus(req.Status)); err != nil {
			return nil, err
		}
	}
	if req.CreatedBy != nil {
		payslip.SetCreatedBy(*req.CreatedBy)
	}

	if err := s.payslipRepo.Save(ctx, payslip); err != nil {
		return nil, err
	}

	response := ToPayslipResponse(payslip)
	return &response, nil
}

// GetByID retrieves a payslip by ID
func (s *PayslipService) GetByID(ctx context.Context, companyID, payslipID uuid.UUID) (*PayslipResponse, error) {
	payslip, err := s.payslipRepo.FindByIDForCompany(ctx, companyID, payslipID)
	if err != nil {
		return nil, err
	}

	response := ToPayslipResponse(payslip)
	return &response, nil
}

// List retrieves payslips with filtering and pagination
func (s *PayslipService) List(ctx context.Context, companyID uuid.UUID, filter PayslipListFilter) ([]PayslipResponse, int64, error) {
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
	if filter.EmployeeID != nil {
		domainFilter.Filters["employee_id"] = *filter.EmployeeID
	}
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}

	payslips, err := s.payslipRepo.FindAllForCompany(ctx, companyID, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.payslipRepo.CountForCompany(ctx, companyID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToPayslipResponses(payslips), total, nil
}

// Update updates a payslip, replacing its pay components when items are sent
func (s *PayslipService) Update(ctx context.Context, companyID, payslipID uuid.UUID, req UpdatePayslipRequest) (*PayslipResponse, error) {
	payslip, err := s.payslipRepo.FindByIDForCompany(ctx, companyID, payslipID)
	if err != nil {
		return nil, err
	}

	if req.Reference != nil && *req.Reference != payslip.Reference {
		exists, err := s.payslipRepo.ExistsByReference(ctx, companyID, *req.Reference, &payslipID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Payslip with this reference already exists")
		}
		if err := payslip.SetReference(*req.Reference); err != nil {
			return nil, err
		}
	}

	if req.Date != nil {
		payslip.Date = *req.Date
	}
	if req.Items != nil {
		payslip.ReplaceItems(toPayItems(payslip.ID, *req.Items))
	}
	if req.Status != nil {
		if err := payslip.SetStatus(hr.PayslipStatus(*req.Status)); err != nil {
			return nil, err
		}
	}

	payslip.IncrementVersion()
	if err := s.payslipRepo.Save(ctx, payslip); err != nil {
		return nil, err
	}

	response := ToPayslipResponse(payslip)
	return &response, nil
}

// Delete deletes a payslip
func (s *PayslipService) Delete(ctx context.Context, companyID, payslipID uuid.UUID) error {
	return s.payslipRepo.DeleteForCompany(ctx, companyID, payslipID)
}

func toPayItems(payslipID uuid.UUID, items []PayItemRequest) []hr.PayItem {
	payItems := make([]hr.PayItem, len(items))
	for i, item := range items {
		payItems[i] = hr.NewPayItem(payslipID, item.Description, item.Amount)
	}
	return payItems
}
