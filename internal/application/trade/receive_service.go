package trade

import (
	"context"

	"github.com/bizledger/backend/internal/domain/catalog"
	"github.com/bizledger/backend/internal/domain/partner"
	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/bizledger/backend/internal/domain/shared/valueobject"
	"github.com/bizledger/backend/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReceiveService handles goods-received documents. Received lines raise
// product stock, the grand total lands on the supplier's payables, and
// linking a receive to a purchase order completes that order.
type ReceiveService struct {
	receiveRepo       trade.ReceiveRepository
	purchaseOrderRepo trade.PurchaseOrderRepository
	supplierRepo      partner.SupplierRepository
	productRepo       catalog.ProductRepository
	uow               shared.UnitOfWork
}

// NewReceiveService creates a new ReceiveService
func NewReceiveService(
	receiveRepo trade.ReceiveRepository,
	purchaseOrderRepo trade.PurchaseOrderRepository,
	supplierRepo partner.SupplierRepository,
	productRepo catalog.ProductRepository,
	uow shared.UnitOfWork,
) *ReceiveService {
	return &ReceiveService{
		receiveRepo:       receiveRepo,
		purchaseOrderRepo: purchaseOrderRepo,
		supplierRepo:      supplierRepo,
		productRepo:       productRepo,
		uow:               uow,
	}
}

// Create records received goods
func (s *ReceiveService) Create(ctx context.Context, companyID uuid.UUID, req CreateReceiveRequest) (*ReceiveResponse, error) {
	exists, err := s.receiveRepo.ExistsByReference(ctx, companyID, req.Reference, nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Receive with this reference already exists")
	}

	supplier, err := s.supplierRepo.FindByIDForCompany(ctx, companyID, req.SupplierID)
	if err != nil {
		return nil, err
	}
	var linkedOrder *trade.PurchaseOrder
	if req.PurchaseOrderID != nil {
		linkedOrder, err = s.verifyPurchaseOrder(ctx, companyID, *req.PurchaseOrderID, req.SupplierID)
		if err != nil {
			return nil, err
		}
	}

	calc, err := calculateLines(ctx, s.productRepo, companyID, req.GSTRate, req.DiscountRate, req.Items)
	if err != nil {
		return nil, err
	}

	receive, err := trade.NewReceive(companyID, req.Reference, req.SupplierID, req.Date)
	if err != nil {
		return nil, err
	}
	if req.Description != "" {
		receive.SetDescription(req.Description)
	}
	receive.LinkPurchaseOrder(req.PurchaseOrderID)
	if req.Status != "" {
		if err := receive.SetStatus(trade.OrderStatus(req.Status)); err != nil {
			return nil, err
		}
	}
	if err := receive.ApplyCalculation(req.GSTRate, req.DiscountRate, calc.totals, newLineItems(receive.ID, calc.incoming)); err != nil {
		return nil, err
	}
	if req.CreatedBy != nil {
		receive.SetCreatedBy(*req.CreatedBy)
	}

	err = s.uow.Execute(ctx, func(ctx context.Context) error {
		if err := s.receiveRepo.Save(ctx, receive); err != nil {
			return err
		}
		if receive.Status.AffectsInventory() {
			deltas := make(counterDeltas)
			deltas.addItems(receive.Items, receive.StockEffect(), true)
			if err := deltas.apply(ctx, s.productRepo, companyID); err != nil {
				return err
			}
			if err := supplier.AdjustPayables(valueobject.NewMoneySGD(receive.GrandTotal)); err != nil {
				return err
			}
		}
		supplier.RecordActivity(req.Date)
		supplier.IncrementVersion()
		if err := s.supplierRepo.SaveWithLock(ctx, supplier); err != nil {
			return err
		}
		if linkedOrder != nil {
			linkedOrder.MarkCompleted()
			linkedOrder.IncrementVersion()
			return s.purchaseOrderRepo.SaveWithLock(ctx, linkedOrder)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	response := ToReceiveResponse(receive)
	return &response, nil
}

// GetByID retrieves a receive by ID
func (s *ReceiveService) GetByID(ctx context.Context, companyID, receiveID uuid.UUID) (*ReceiveResponse, error) {
	receive, err := s.receiveRepo.FindByIDForCompany(ctx, companyID, receiveID)
	if err != nil {
		return nil, err
	}

	response := ToReceiveResponse(receive)
	return &response, nil
}

// List retrieves receives with filtering and pagination
func (s *ReceiveService) List(ctx context.Context, companyID uuid.UUID, filter DocumentListFilter) ([]ReceiveResponse, int64, error) {
	domainFilter := documentFilter(filter)
	receives, err := s.receiveRepo.FindAllForCompany(ctx, companyID, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.receiveRepo.CountForCompany(ctx, companyID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToReceiveResponses(receives), total, nil
}

// Update edits a receive. Stock moves by the reconciled line changes,
// payables move by the change in grand total, and relinking purchase
// orders reopens the old one and completes the new one.
func (s *ReceiveService) Update(ctx context.Context, companyID, receiveID uuid.UUID, req UpdateReceiveRequest) (*ReceiveResponse, error) {
	receive, err := s.receiveRepo.FindByIDForCompany(ctx, companyID, receiveID)
	if err != nil {
		return nil, err
	}

	if req.Reference != nil && *req.Reference != receive.Reference {
		exists, err := s.receiveRepo.ExistsByReference(ctx, companyID, *req.Reference, &receiveID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Receive with this reference already exists")
		}
		if err := receive.SetReference(*req.Reference); err != nil {
			return nil, err
		}
	}
	if req.Date != nil {
		receive.SetDate(*req.Date)
	}
	if req.Description != nil {
		receive.SetDescription(*req.Description)
	}

	var unlinkedOrderID *uuid.UUID
	var linkedOrder *trade.PurchaseOrder
	if req.PurchaseOrderID != nil && (receive.PurchaseOrderID == nil || *receive.PurchaseOrderID != *req.PurchaseOrderID) {
		linkedOrder, err = s.verifyPurchaseOrder(ctx, companyID, *req.PurchaseOrderID, receive.SupplierID)
		if err != nil {
			return nil, err
		}
		unlinkedOrderID = receive.PurchaseOrderID
		receive.LinkPurchaseOrder(req.PurchaseOrderID)
	}

	prevActive := receive.Status.AffectsInventory()
	prevTotal := receive.GrandTotal
	prevItems := receive.Items

	gstRate := receive.GSTRate
	if req.GSTRate != nil {
		gstRate = *req.GSTRate
	}
	discountRate := receive.DiscountRate
	if req.DiscountRate != nil {
		discountRate = *req.DiscountRate
	}
	requests := requestsFromItems(receive.Items)
	if req.Items != nil {
		requests = *req.Items
	}

	calc, err := calculateLines(ctx, s.productRepo, companyID, gstRate, discountRate, requests)
	if err != nil {
		return nil, err
	}
	plan := trade.PlanReconciliation(receive.ID, receive.Items, calc.incoming)
	if err := receive.ApplyCalculation(gstRate, discountRate, calc.totals, plan.Apply()); err != nil {
		return nil, err
	}
	if req.Status != nil {
		if err := receive.SetStatus(trade.OrderStatus(*req.Status)); err != nil {
			return nil, err
		}
	}
	nextActive := receive.Status.AffectsInventory()

	deltas := planDeltas(receive.StockEffect(), plan, prevItems, prevActive, nextActive)

	err = s.uow.Execute(ctx, func(ctx context.Context) error {
		receive.IncrementVersion()
		if err := s.receiveRepo.SaveWithLock(ctx, receive); err != nil {
			return err
		}
		if err := deltas.apply(ctx, s.productRepo, companyID); err != nil {
			return err
		}
		if err := s.adjustPayables(ctx, companyID, receive, balanceDelta(prevActive, prevTotal, nextActive, receive.GrandTotal)); err != nil {
			return err
		}
		if unlinkedOrderID != nil {
			if err := s.reopenOrder(ctx, companyID, *unlinkedOrderID); err != nil {
				return err
			}
		}
		if linkedOrder != nil {
			linkedOrder.MarkCompleted()
			linkedOrder.IncrementVersion()
			return s.purchaseOrderRepo.SaveWithLock(ctx, linkedOrder)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	response := ToReceiveResponse(receive)
	return &response, nil
}

// Delete removes a receive, reversing its stock and payables effects and
// reopening the purchase order it completed.
func (s *ReceiveService) Delete(ctx context.Context, companyID, receiveID uuid.UUID) error {
	receive, err := s.receiveRepo.FindByIDForCompany(ctx, companyID, receiveID)
	if err != nil {
		return err
	}

	return s.uow.Execute(ctx, func(ctx context.Context) error {
		if receive.Status.AffectsInventory() {
			deltas := make(counterDeltas)
			deltas.addItems(receive.Items, receive.StockEffect(), false)
			if err := deltas.apply(ctx, s.productRepo, companyID); err != nil {
				return err
			}
			if err := s.adjustPayables(ctx, companyID, receive, receive.GrandTotal.Neg()); err != nil {
				return err
			}
		}
		if receive.PurchaseOrderID != nil {
			if err := s.reopenOrder(ctx, companyID, *receive.PurchaseOrderID); err != nil {
				return err
			}
		}
		return s.receiveRepo.DeleteForCompany(ctx, companyID, receiveID)
	})
}

func (s *ReceiveService) verifyPurchaseOrder(ctx context.Context, companyID, orderID, supplierID uuid.UUID) (*trade.PurchaseOrder, error) {
	order, err := s.purchaseOrderRepo.FindByIDForCompany(ctx, companyID, orderID)
	if err != nil {
		return nil, err
	}
	if order.SupplierID != supplierID {
		return nil, shared.NewDomainError("INVALID_INPUT", "Purchase order belongs to a different supplier")
	}
	return order, nil
}

func (s *ReceiveService) reopenOrder(ctx context.Context, companyID, orderID uuid.UUID) error {
	order, err := s.purchaseOrderRepo.FindByIDForCompany(ctx, companyID, orderID)
	if err != nil {
		return err
	}
	order.Reopen()
	order.IncrementVersion()
	return s.purchaseOrderRepo.SaveWithLock(ctx, order)
}

func (s *ReceiveService) adjustPayables(ctx context.Context, companyID uuid.UUID, receive *trade.Receive, delta decimal.Decimal) error {
	supplier, err := s.supplierRepo.FindByIDForCompany(ctx, companyID, receive.SupplierID)
	if err != nil {
		return err
	}
	if !delta.IsZero() {
		if err := supplier.AdjustPayables(valueobject.NewMoneySGD(delta)); err != nil {
			return err
		}
	}
	supplier.RecordActivity(receive.Date)
	supplier.IncrementVersion()
	return s.supplierRepo.SaveWithLock(ctx, supplier)
}
