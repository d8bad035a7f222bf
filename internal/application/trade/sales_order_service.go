package trade

import (
	"context"

	"github.com/bizledger/backend/internal/domain/catalog"
	"github.com/bizledger/backend/internal/domain/partner"
	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/bizledger/backend/internal/domain/trade"
	"github.com/google/uuid"
)

// SalesOrderService handles sales order operations. Orders never move
// inventory or balances; stock moves when the order is invoiced.
type SalesOrderService struct {
	orderRepo    trade.SalesOrderRepository
	customerRepo partner.CustomerRepository
	productRepo  catalog.ProductRepository
}

// NewSalesOrderService creates a new SalesOrderService
func NewSalesOrderService(orderRepo trade.SalesOrderRepository, customerRepo partner.CustomerRepository, productRepo catalog.ProductRepository) *SalesOrderService {
	return &SalesOrderService{orderRepo: orderRepo, customerRepo: customerRepo, productRepo: productRepo}
}

// Create creates a sales order
func (s *SalesOrderService) Create(ctx context.Context, companyID uuid.UUID, req CreateSalesOrderRequest) (*SalesOrderResponse, error) {
	exists, err := s.orderRepo.ExistsByReference(ctx, companyID, req.Reference, nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Sales order with this reference already exists")
	}
	if _, err := s.customerRepo.FindByIDForCompany(ctx, companyID, req.CustomerID); err != nil {
		return nil, err
	}

	calc, err := calculateLines(ctx, s.productRepo, companyID, req.GSTRate, req.DiscountRate, req.Items)
	if err != nil {
		return nil, err
	}

	order, err := trade.NewSalesOrder(companyID, req.Reference, req.CustomerID, req.Date)
	if err != nil {
		return nil, err
	}
	if req.Description != "" {
		order.SetDescription(req.Description)
	}
	if req.Status != "" {
		if err := order.SetStatus(trade.OrderStatus(req.Status)); err != nil {
			return nil, err
		}
	}
	if err := order.ApplyCalculation(req.GSTRate, req.DiscountRate, calc.totals, newLineItems(order.ID, calc.incoming)); err != nil {
		return nil, err
	}
	if req.CreatedBy != nil {
		order.SetCreatedBy(*req.CreatedBy)
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	response := ToSalesOrderResponse(order)
	return &response, nil
}

// GetByID retrieves a sales order by ID
func (s *SalesOrderService) GetByID(ctx context.Context, companyID, orderID uuid.UUID) (*SalesOrderResponse, error) {
	order, err := s.orderRepo.FindByIDForCompany(ctx, companyID, orderID)
	if err != nil {
		return nil, err
	}

	response := ToSalesOrderResponse(order)
	return &response, nil
}

// List retrieves sales orders with filtering and pagination
func (s *SalesOrderService) List(ctx context.Context, companyID uuid.UUID, filter DocumentListFilter) ([]SalesOrderResponse, int64, error) {
	domainFilter := documentFilter(filter)
	orders, err := s.orderRepo.FindAllForCompany(ctx, companyID, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.orderRepo.CountForCompany(ctx, companyID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToSalesOrderResponses(orders), total, nil
}

// Update edits a sales order, matching incoming lines by line ID
func (s *SalesOrderService) Update(ctx context.Context, companyID, orderID uuid.UUID, req UpdateSalesOrderRequest) (*SalesOrderResponse, error) {
	order, err := s.orderRepo.FindByIDForCompany(ctx, companyID, orderID)
	if err != nil {
		return nil, err
	}

	if req.Reference != nil && *req.Reference != order.Reference {
		exists, err := s.orderRepo.ExistsByReference(ctx, companyID, *req.Reference, &orderID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Sales order with this reference already exists")
		}
		if err := order.SetReference(*req.Reference); err != nil {
			return nil, err
		}
	}
	if req.Date != nil {
		order.SetDate(*req.Date)
	}
	if req.Description != nil {
		order.SetDescription(*req.Description)
	}

	gstRate := order.GSTRate
	if req.GSTRate != nil {
		gstRate = *req.GSTRate
	}
	discountRate := order.DiscountRate
	if req.DiscountRate != nil {
		discountRate = *req.DiscountRate
	}
	requests := requestsFromItems(order.Items)
	if req.Items != nil {
		requests = *req.Items
	}

	calc, err := calculateLines(ctx, s.productRepo, companyID, gstRate, discountRate, requests)
	if err != nil {
		return nil, err
	}
	plan := trade.PlanReconciliation(order.ID, order.Items, calc.incoming)
	if err := order.ApplyCalculation(gstRate, discountRate, calc.totals, plan.Apply()); err != nil {
		return nil, err
	}
	if req.Status != nil {
		if err := order.SetStatus(trade.OrderStatus(*req.Status)); err != nil {
			return nil, err
		}
	}

	order.IncrementVersion()
	if err := s.orderRepo.SaveWithLock(ctx, order); err != nil {
		return nil, err
	}

	response := ToSalesOrderResponse(order)
	return &response, nil
}

// Delete deletes a sales order
func (s *SalesOrderService) Delete(ctx context.Context, companyID, orderID uuid.UUID) error {
	return s.orderRepo.DeleteForCompany(ctx, companyID, orderID)
}
