package catalog

import (
	"context"

	"github.com/bizledger/backend/internal/domain/catalog"
	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// PaymentMethodService handles payment method operations
type PaymentMethodService struct {
	paymentMethodRepo catalog.PaymentMethodRepository
}

// NewPaymentMethodService creates a new PaymentMethodService
func NewPaymentMethodService(paymentMethodRepo catalog.PaymentMethodRepository) *PaymentMethodService {
	return &PaymentMethodService{paymentMethodRepo: paymentMethodRepo}
}

// Create creates a new payment method
func (s *PaymentMethodService) Create(ctx context.Context, companyID uuid.UUID, req CreatePaymentMethodRequest) (*PaymentMethodResponse, error) {
	method, err := catalog.NewPaymentMethod(companyID, req.Name)
	if err != nil {
		return nil, err
	}
	if req.CreatedBy != nil {
		method.SetCreatedBy(*req.CreatedBy)
	}

	if err := s.paymentMethodRepo.Save(ctx, method); err != nil {
		return nil, err
	}

	response := ToPaymentMethodResponse(method)
	return &response, nil
}

// GetByID retrieves a payment method by ID
func (s *PaymentMethodService) GetByID(ctx context.Context, companyID, methodID uuid.UUID) (*PaymentMethodResponse, error) {
	method, err := s.paymentMethodRepo.FindByIDForCompany(ctx, companyID, methodID)
	if err != nil {
		return nil, err
	}

	response := ToPaymentMethodResponse(method)
	return &response, nil
}

// List retrieves all payment methods for a company
func (s *PaymentMethodService) List(ctx context.Context, companyID uuid.UUID, page, pageSize int) ([]PaymentMethodResponse, int64, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}

	filter := shared.Filter{Page: page, PageSize: pageSize, Filters: make(map[string]any)}
	methods, err := s.paymentMethodRepo.FindAllForCompany(ctx, companyID, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.paymentMethodRepo.CountForCompany(ctx, companyID, filter)
	if err != nil {
		return nil, 0, err
	}

	return ToPaymentMethodResponses(methods), total, nil
}

// Update updates a payment method
func (s *PaymentMethodService) Update(ctx context.Context, companyID, methodID uuid.UUID, req UpdatePaymentMethodRequest) (*PaymentMethodResponse, error) {
	method, err := s.paymentMethodRepo.FindByIDForCompany(ctx, companyID, methodID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := method.SetName(*req.Name); err != nil {
			return nil, err
		}
	}

	if err := s.paymentMethodRepo.Save(ctx, method); err != nil {
		return nil, err
	}

	response := ToPaymentMethodResponse(method)
	return &response, nil
}

// Delete deletes a payment method
func (s *PaymentMethodService) Delete(ctx context.Context, companyID, methodID uuid.UUID) error {
	return s.paymentMethodRepo.DeleteForCompany(ctx, companyID, methodID)
}
