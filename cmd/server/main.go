package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	catalogapp "github.com/bizledger/backend/internal/application/catalog"
	financeapp "github.com/bizledger/backend/internal/application/finance"
	hrapp "github.com/bizledger/backend/internal/application/hr"
	identityapp "github.com/bizledger/backend/internal/application/identity"
	partnerapp "github.com/bizledger/backend/internal/application/partner"
	tradeapp "github.com/bizledger/backend/internal/application/trade"
	"github.com/bizledger/backend/internal/infrastructure/auth"
	"github.com/bizledger/backend/internal/infrastructure/config"
	"github.com/bizledger/backend/internal/infrastructure/logger"
	"github.com/bizledger/backend/internal/infrastructure/persistence"
	"github.com/bizledger/backend/internal/infrastructure/storage"
	"github.com/bizledger/backend/internal/infrastructure/telemetry"
	"github.com/bizledger/backend/internal/interfaces/http/handler"
	"github.com/bizledger/backend/internal/interfaces/http/middleware"
	"github.com/bizledger/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting server",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	tracerProvider, err := telemetry.NewTracerProvider(context.Background(), cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize tracing", zap.Error(err))
	}
	defer func() {
		if err := tracerProvider.Shutdown(context.Background()); err != nil {
			log.Error("Error shutting down tracer provider", zap.Error(err))
		}
	}()

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	if cfg.Telemetry.Enabled {
		if err := db.DB.Use(otelgorm.NewPlugin()); err != nil {
			log.Warn("Failed to enable database tracing", zap.Error(err))
		}
	}

	// Token revocation store. Redis in normal operation; in development a
	// process-local fallback keeps the server usable without Redis.
	var blacklist auth.TokenBlacklist
	redisBlacklist, err := auth.NewRedisTokenBlacklist(cfg.Redis)
	if err != nil {
		if cfg.App.Env == "production" {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		log.Warn("Redis unavailable, using in-memory token blacklist", zap.Error(err))
		blacklist = auth.NewInMemoryTokenBlacklist()
	} else {
		blacklist = redisBlacklist
	}

	objectStorage, err := storage.NewS3ObjectStorage(&cfg.Storage)
	if err != nil {
		log.Fatal("Failed to initialize object storage", zap.Error(err))
	}

	// Repositories
	companyRepo := persistence.NewGormCompanyRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	roleRepo := persistence.NewGormRoleRepository(db.DB)
	userConfigRepo := persistence.NewGormUserConfigRepository(db.DB)
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	paymentMethodRepo := persistence.NewGormPaymentMethodRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	supplierRepo := persistence.NewGormSupplierRepository(db.DB)
	departmentRepo := persistence.NewGormDepartmentRepository(db.DB)
	designationRepo := persistence.NewGormDesignationRepository(db.DB)
	employeeRepo := persistence.NewGormEmployeeRepository(db.DB)
	payslipRepo := persistence.NewGormPayslipRepository(db.DB)
	invoiceRepo := persistence.NewGormInvoiceRepository(db.DB)
	salesOrderRepo := persistence.NewGormSalesOrderRepository(db.DB)
	purchaseOrderRepo := persistence.NewGormPurchaseOrderRepository(db.DB)
	receiveRepo := persistence.NewGormReceiveRepository(db.DB)
	creditNoteRepo := persistence.NewGormCreditNoteRepository(db.DB)
	creditsApplicationRepo := persistence.NewGormCreditsApplicationRepository(db.DB)
	uow := persistence.NewGormUnitOfWork(db.DB)

	// Application services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, companyRepo, roleRepo, userConfigRepo, jwtService, blacklist, uow, log)
	userService := identityapp.NewUserService(userRepo, roleRepo)
	roleService := identityapp.NewRoleService(roleRepo)
	companyService := identityapp.NewCompanyService(companyRepo)
	permissionService := identityapp.NewPermissionService(userRepo, roleRepo)
	categoryService := catalogapp.NewCategoryService(categoryRepo)
	productService := catalogapp.NewProductService(productRepo, objectStorage, uow)
	paymentMethodService := catalogapp.NewPaymentMethodService(paymentMethodRepo)
	customerService := partnerapp.NewCustomerService(customerRepo)
	supplierService := partnerapp.NewSupplierService(supplierRepo)
	departmentService := hrapp.NewDepartmentService(departmentRepo)
	designationService := hrapp.NewDesignationService(designationRepo, departmentRepo)
	employeeService := hrapp.NewEmployeeService(employeeRepo, designationRepo, objectStorage)
	payslipService := hrapp.NewPayslipService(payslipRepo, employeeRepo)
	invoiceService := tradeapp.NewInvoiceService(invoiceRepo, salesOrderRepo, customerRepo, productRepo, paymentMethodRepo, uow)
	salesOrderService := tradeapp.NewSalesOrderService(salesOrderRepo, customerRepo, productRepo)
	purchaseOrderService := tradeapp.NewPurchaseOrderService(purchaseOrderRepo, supplierRepo, productRepo)
	receiveService := tradeapp.NewReceiveService(receiveRepo, purchaseOrderRepo, supplierRepo, productRepo, uow)
	creditNoteService := tradeapp.NewCreditNoteService(creditNoteRepo, customerRepo, productRepo, uow)
	creditsApplicationService := financeapp.NewCreditsApplicationService(creditsApplicationRepo, invoiceRepo, creditNoteRepo, customerRepo, uow)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	tracingService := ""
	if cfg.Telemetry.Enabled {
		tracingService = cfg.Telemetry.ServiceName
	}
	engine := router.New(router.Config{
		Logger:      log,
		JWTService:  jwtService,
		Blacklist:   blacklist,
		Permissions: permissionService,
		CORS: middleware.CORSConfig{
			AllowOrigins: cfg.HTTP.CORSAllowOrigins,
			MaxAge:       12 * time.Hour,
		},
		TracingService: tracingService,
	}, router.Handlers{
		Auth:               handler.NewAuthHandler(authService),
		Company:            handler.NewCompanyHandler(companyService),
		User:               handler.NewUserHandler(userService),
		Role:               handler.NewRoleHandler(roleService),
		Category:           handler.NewCategoryHandler(categoryService),
		Product:            handler.NewProductHandler(productService),
		PaymentMethod:      handler.NewPaymentMethodHandler(paymentMethodService),
		Department:         handler.NewDepartmentHandler(departmentService),
		Designation:        handler.NewDesignationHandler(designationService),
		Employee:           handler.NewEmployeeHandler(employeeService),
		Payslip:            handler.NewPayslipHandler(payslipService),
		Customer:           handler.NewCustomerHandler(customerService),
		Supplier:           handler.NewSupplierHandler(supplierService),
		Invoice:            handler.NewInvoiceHandler(invoiceService),
		SalesOrder:         handler.NewSalesOrderHandler(salesOrderService),
		PurchaseOrder:      handler.NewPurchaseOrderHandler(purchaseOrderService),
		Receive:            handler.NewReceiveHandler(receiveService),
		CreditNote:         handler.NewCreditNoteHandler(creditNoteService),
		CreditsApplication: handler.NewCreditsApplicationHandler(creditsApplicationService),
		System:             handler.NewSystemHandler(db.DB),
	})

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited")
}
