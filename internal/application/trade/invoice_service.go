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

// InvoiceService handles invoice operations. Every mutation that moves
// product counters or the customer's receivables runs inside one unit of
// work, so the document, the counters and the balance commit together.
type InvoiceService struct {
	invoiceRepo       trade.InvoiceRepository
	salesOrderRepo    trade.SalesOrderRepository
	customerRepo      partner.CustomerRepository
	productRepo       catalog.ProductRepository
	paymentMethodRepo catalog.PaymentMethodRepository
	uow               shared.UnitOfWork
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(
	invoiceRepo trade.InvoiceRepository,
	salesOrderRepo trade.SalesOrderRepository,
	customerRepo partner.CustomerRepository,
	productRepo catalog.ProductRepository,
	paymentMethodRepo catalog.PaymentMethodRepository,
	uow shared.UnitOfWork,
) *InvoiceService {
	return &InvoiceService{
		invoiceRepo:       invoiceRepo,
		salesOrderRepo:    salesOrderRepo,
		customerRepo:      customerRepo,
		productRepo:       productRepo,
		paymentMethodRepo: paymentMethodRepo,
		uow:               uow,
	}
}

// Create creates an invoice. When the requested status affects inventory,
// line quantities lower product stock, raise sales counters and the
// balance due lands on the customer's receivables.
func (s *InvoiceService) Create(ctx context.Context, companyID uuid.UUID, req CreateInvoiceRequest) (*InvoiceResponse, error) {
	exists, err := s.invoiceRepo.ExistsByReference(ctx, companyID, req.Reference, nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Invoice with this reference already exists")
	}

	customer, err := s.customerRepo.FindByIDForCompany(ctx, companyID, req.CustomerID)
	if err != nil {
		return nil, err
	}
	if req.SalesOrderID != nil {
		if err := s.verifySalesOrder(ctx, companyID, *req.SalesOrderID, req.CustomerID); err != nil {
			return nil, err
		}
	}
	if req.PaymentMethodID != nil {
		if _, err := s.paymentMethodRepo.FindByIDForCompany(ctx, companyID, *req.PaymentMethodID); err != nil {
			return nil, err
		}
	}

	calc, err := calculateLines(ctx, s.productRepo, companyID, req.GSTRate, req.DiscountRate, req.Items)
	if err != nil {
		return nil, err
	}

	invoice, err := trade.NewInvoice(companyID, req.Reference, req.CustomerID, req.Date)
	if err != nil {
		return nil, err
	}
	if req.Description != "" {
		invoice.SetDescription(req.Description)
	}
	invoice.SetSalesOrder(req.SalesOrderID)
	invoice.SetPaymentMethod(req.PaymentMethodID)
	if req.Status != "" {
		if err := invoice.SetStatus(trade.InvoiceStatus(req.Status)); err != nil {
			return nil, err
		}
	}
	if err := invoice.ApplyCalculation(req.GSTRate, req.DiscountRate, calc.totals, newLineItems(invoice.ID, calc.incoming)); err != nil {
		return nil, err
	}
	if req.CreatedBy != nil {
		invoice.SetCreatedBy(*req.CreatedBy)
	}

	err = s.uow.Execute(ctx, func(ctx context.Context) error {
		if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
			return err
		}
		if invoice.Status.AffectsInventory() {
			deltas := make(counterDeltas)
			deltas.addItems(invoice.Items, invoice.StockEffect(), true)
			if err := deltas.apply(ctx, s.productRepo, companyID); err != nil {
				return err
			}
			if err := customer.AdjustReceivables(valueobject.NewMoneySGD(invoice.BalanceDue)); err != nil {
				return err
			}
		}
		customer.RecordActivity(req.Date)
		customer.IncrementVersion()
		return s.customerRepo.SaveWithLock(ctx, customer)
	})
	if err != nil {
		return nil, err
	}

	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// GetByID retrieves an invoice by ID
func (s *InvoiceService) GetByID(ctx context.Context, companyID, invoiceID uuid.UUID) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByIDForCompany(ctx, companyID, invoiceID)
	if err != nil {
		return nil, err
	}

	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// List retrieves invoices with filtering and pagination
func (s *InvoiceService) List(ctx context.Context, companyID uuid.UUID, filter DocumentListFilter) ([]InvoiceResponse, int64, error) {
	domainFilter := documentFilter(filter)
	invoices, err := s.invoiceRepo.FindAllForCompany(ctx, companyID, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.invoiceRepo.CountForCompany(ctx, companyID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToInvoiceResponses(invoices), total, nil
}

// Update edits an invoice. Incoming lines are matched against stored rows
// by line ID; the previous inventory effect of changed rows is reversed
// before the new one applies, and the customer's receivables move by the
// change in balance due.
func (s *InvoiceService) Update(ctx context.Context, companyID, invoiceID uuid.UUID, req UpdateInvoiceRequest) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByIDForCompany(ctx, companyID, invoiceID)
	if err != nil {
		return nil, err
	}

	if req.Reference != nil && *req.Reference != invoice.Reference {
		exists, err := s.invoiceRepo.ExistsByReference(ctx, companyID, *req.Reference, &invoiceID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Invoice with this reference already exists")
		}
		if err := invoice.SetReference(*req.Reference); err != nil {
			return nil, err
		}
	}
	if req.SalesOrderID != nil {
		if err := s.verifySalesOrder(ctx, companyID, *req.SalesOrderID, invoice.CustomerID); err != nil {
			return nil, err
		}
		invoice.SetSalesOrder(req.SalesOrderID)
	}
	if req.PaymentMethodID != nil {
		if _, err := s.paymentMethodRepo.FindByIDForCompany(ctx, companyID, *req.PaymentMethodID); err != nil {
			return nil, err
		}
		invoice.SetPaymentMethod(req.PaymentMethodID)
	}
	if req.Date != nil {
		invoice.SetDate(*req.Date)
	}
	if req.Description != nil {
		invoice.SetDescription(*req.Description)
	}

	prevActive := invoice.Status.AffectsInventory()
	prevBalance := invoice.BalanceDue
	prevItems := invoice.Items

	gstRate := invoice.GSTRate
	if req.GSTRate != nil {
		gstRate = *req.GSTRate
	}
	discountRate := invoice.DiscountRate
	if req.DiscountRate != nil {
		discountRate = *req.DiscountRate
	}
	requests := requestsFromItems(invoice.Items)
	if req.Items != nil {
		requests = *req.Items
	}

	calc, err := calculateLines(ctx, s.productRepo, companyID, gstRate, discountRate, requests)
	if err != nil {
		return nil, err
	}
	plan := trade.PlanReconciliation(invoice.ID, invoice.Items, calc.incoming)
	if err := invoice.ApplyCalculation(gstRate, discountRate, calc.totals, plan.Apply()); err != nil {
		return nil, err
	}
	if req.Status != nil {
		if err := invoice.SetStatus(trade.InvoiceStatus(*req.Status)); err != nil {
			return nil, err
		}
	}
	nextActive := invoice.Status.AffectsInventory()

	deltas := planDeltas(invoice.StockEffect(), plan, prevItems, prevActive, nextActive)

	err = s.uow.Execute(ctx, func(ctx context.Context) error {
		invoice.IncrementVersion()
		if err := s.invoiceRepo.SaveWithLock(ctx, invoice); err != nil {
			return err
		}
		if err := deltas.apply(ctx, s.productRepo, companyID); err != nil {
			return err
		}
		return s.adjustReceivables(ctx, companyID, invoice, balanceDelta(prevActive, prevBalance, nextActive, invoice.BalanceDue))
	})
	if err != nil {
		return nil, err
	}

	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// Delete removes an invoice, reversing its inventory and receivables
// effects. Invoices with applied credits must have those applications
// deleted first.
func (s *InvoiceService) Delete(ctx context.Context, companyID, invoiceID uuid.UUID) error {
	invoice, err := s.invoiceRepo.FindByIDForCompany(ctx, companyID, invoiceID)
	if err != nil {
		return err
	}
	if !invoice.CreditsApplied.IsZero() {
		return shared.NewDomainError("CANNOT_DELETE", "Invoice has credits applied; delete the applications first")
	}

	return s.uow.Execute(ctx, func(ctx context.Context) error {
		if invoice.Status.AffectsInventory() {
			deltas := make(counterDeltas)
			deltas.addItems(invoice.Items, invoice.StockEffect(), false)
			if err := deltas.apply(ctx, s.productRepo, companyID); err != nil {
				return err
			}
			if err := s.adjustReceivables(ctx, companyID, invoice, invoice.BalanceDue.Neg()); err != nil {
				return err
			}
		}
		return s.invoiceRepo.DeleteForCompany(ctx, companyID, invoiceID)
	})
}

func (s *InvoiceService) verifySalesOrder(ctx context.Context, companyID, salesOrderID, customerID uuid.UUID) error {
	order, err := s.salesOrderRepo.FindByIDForCompany(ctx, companyID, salesOrderID)
	if err != nil {
		return err
	}
	if order.CustomerID != customerID {
		return shared.NewDomainError("INVALID_INPUT", "Sales order belongs to a different customer")
	}
	return nil
}

func (s *InvoiceService) adjustReceivables(ctx context.Context, companyID uuid.UUID, invoice *trade.Invoice, delta decimal.Decimal) error {
	customer, err := s.customerRepo.FindByIDForCompany(ctx, companyID, invoice.CustomerID)
	if err != nil {
		return err
	}
	if !delta.IsZero() {
		if err := customer.AdjustReceivables(valueobject.NewMoneySGD(delta)); err != nil {
			return err
		}
	}
	customer.RecordActivity(invoice.Date)
	customer.IncrementVersion()
	return s.customerRepo.SaveWithLock(ctx, customer)
}

// balanceDelta is the signed change a document edit causes to a partner
// balance: the new active amount minus the previous active amount, where
// drafts and cancelled documents contribute nothing.
func balanceDelta(prevActive bool, prevAmount decimal.Decimal, nextActive bool, nextAmount decimal.Decimal) decimal.Decimal {
	prev := decimal.Zero
	if prevActive {
		prev = prevAmount
	}
	next := decimal.Zero
	if nextActive {
		next = nextAmount
	}
	return next.Sub(prev)
}

// documentFilter maps the HTTP list filter onto the repository filter
func documentFilter(filter DocumentListFilter) shared.Filter {
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
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}
	if filter.CustomerID != nil {
		domainFilter.Filters["customer_id"] = *filter.CustomerID
	}
	if filter.SupplierID != nil {
		domainFilter.Filters["supplier_id"] = *filter.SupplierID
	}
	return domainFilter
}
