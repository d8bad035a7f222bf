// Package router wires the HTTP endpoints to their handlers. Route groups
// mirror the resource ownership: /company for tenant-internal resources,
// /customer and /supplier for the trading partner sides.
package router

import (
	"github.com/bizledger/backend/internal/domain/identity"
	"github.com/bizledger/backend/internal/infrastructure/auth"
	"github.com/bizledger/backend/internal/infrastructure/logger"
	"github.com/bizledger/backend/internal/interfaces/http/handler"
	"github.com/bizledger/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

// Handlers collects every endpoint handler the router mounts
type Handlers struct {
	Auth               *handler.AuthHandler
	Company            *handler.CompanyHandler
	User               *handler.UserHandler
	Role               *handler.RoleHandler
	Category           *handler.CategoryHandler
	Product            *handler.ProductHandler
	PaymentMethod      *handler.PaymentMethodHandler
	Department         *handler.DepartmentHandler
	Designation        *handler.DesignationHandler
	Employee           *handler.EmployeeHandler
	Payslip            *handler.PayslipHandler
	Customer           *handler.CustomerHandler
	Supplier           *handler.SupplierHandler
	Invoice            *handler.InvoiceHandler
	SalesOrder         *handler.SalesOrderHandler
	PurchaseOrder      *handler.PurchaseOrderHandler
	Receive            *handler.ReceiveHandler
	CreditNote         *handler.CreditNoteHandler
	CreditsApplication *handler.CreditsApplicationHandler
	System             *handler.SystemHandler
}

// Config carries the cross-cutting dependencies of the HTTP layer
type Config struct {
	Logger      *zap.Logger
	JWTService  *auth.JWTService
	Blacklist   auth.TokenBlacklist
	Permissions identity.PermissionChecker
	CORS        middleware.CORSConfig

	// TracingService enables the otelgin middleware under this service name
	TracingService string
}

// New builds the gin engine with all middleware and routes mounted
func New(cfg Config, h Handlers) *gin.Engine {
	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		middleware.Recovery(cfg.Logger),
		middleware.CORS(cfg.CORS),
		logger.GinMiddleware(cfg.Logger),
	)
	if cfg.TracingService != "" {
		engine.Use(otelgin.Middleware(cfg.TracingService))
	}

	engine.GET("/healthz", h.System.Health)

	api := engine.Group("/api/v1")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/signup", h.Auth.Signup)
		authGroup.POST("/token", h.Auth.Login)
		authGroup.POST("/refresh", h.Auth.Refresh)
	}

	authed := api.Group("")
	authed.Use(middleware.Auth(middleware.AuthConfig{
		JWTService: cfg.JWTService,
		Blacklist:  cfg.Blacklist,
		Logger:     cfg.Logger,
	}))

	session := authed.Group("/auth")
	{
		session.POST("/logout", h.Auth.Logout)
		session.POST("/logout_all", h.Auth.LogoutEverywhere)
		session.GET("/profile", h.Auth.Profile)
		session.PUT("/profile", h.Auth.UpdateProfile)
		session.GET("/config", h.Auth.GetConfig)
		session.PUT("/config", h.Auth.UpdateConfig)
	}

	company := authed.Group("/company")
	{
		company.GET("/", h.Company.Get)
		company.PUT("/", h.Company.Update)

		mountResource(company, "/users", cfg.Permissions, "user", crud{
			Create: h.User.Create, List: h.User.List, Get: h.User.GetByID,
			Update: h.User.Update, Delete: h.User.Delete,
		})

		roles := company.Group("/roles", middleware.RequireModelPermission(cfg.Permissions, "role"))
		roles.GET("/permissions", h.Role.Permissions)
		mountCRUD(roles, crud{
			Create: h.Role.Create, List: h.Role.List, Get: h.Role.GetByID,
			Update: h.Role.Update, Delete: h.Role.Delete,
		})

		mountResource(company, "/categories", cfg.Permissions, "category", crud{
			Create: h.Category.Create, List: h.Category.List, Get: h.Category.GetByID,
			Update: h.Category.Update, Delete: h.Category.Delete,
		})

		products := company.Group("/products", middleware.RequireModelPermission(cfg.Permissions, "product"))
		mountCRUD(products, crud{
			Create: h.Product.Create, List: h.Product.List, Get: h.Product.GetByID,
			Update: h.Product.Update, Delete: h.Product.Delete,
		})
		products.POST("/batch", h.Product.BatchUpsert)
		products.POST("/:id/image/upload_url", h.Product.GenerateImageUploadURL)
		products.POST("/:id/image/confirm", h.Product.ConfirmImageUpload)
		products.GET("/:id/image/download_url", h.Product.GenerateImageDownloadURL)
		products.DELETE("/:id/image", h.Product.DeleteImage)

		mountResource(company, "/payment_methods", cfg.Permissions, "payment_method", crud{
			Create: h.PaymentMethod.Create, List: h.PaymentMethod.List, Get: h.PaymentMethod.GetByID,
			Update: h.PaymentMethod.Update, Delete: h.PaymentMethod.Delete,
		})

		mountResource(company, "/departments", cfg.Permissions, "department", crud{
			Create: h.Department.Create, List: h.Department.List, Get: h.Department.GetByID,
			Update: h.Department.Update, Delete: h.Department.Delete,
		})

		mountResource(company, "/designations", cfg.Permissions, "designation", crud{
			Create: h.Designation.Create, List: h.Designation.List, Get: h.Designation.GetByID,
			Update: h.Designation.Update, Delete: h.Designation.Delete,
		})

		employees := company.Group("/employees", middleware.RequireModelPermission(cfg.Permissions, "employee"))
		mountCRUD(employees, crud{
			Create: h.Employee.Create, List: h.Employee.List, Get: h.Employee.GetByID,
			Update: h.Employee.Update, Delete: h.Employee.Delete,
		})
		employees.POST("/:id/resume/upload_url", h.Employee.GenerateResumeUploadURL)
		employees.POST("/:id/resume/confirm", h.Employee.ConfirmResumeUpload)
		employees.GET("/:id/resume/download_url", h.Employee.GenerateResumeDownloadURL)

		mountResource(company, "/payslips", cfg.Permissions, "payslip", crud{
			Create: h.Payslip.Create, List: h.Payslip.List, Get: h.Payslip.GetByID,
			Update: h.Payslip.Update, Delete: h.Payslip.Delete,
		})
	}

	customer := authed.Group("/customer")
	{
		mountResource(customer, "/customers", cfg.Permissions, "customer", crud{
			Create: h.Customer.Create, List: h.Customer.List, Get: h.Customer.GetByID,
			Update: h.Customer.Update, Delete: h.Customer.Delete,
		})

		mountResource(customer, "/invoices", cfg.Permissions, "invoice", crud{
			Create: h.Invoice.Create, List: h.Invoice.List, Get: h.Invoice.GetByID,
			Update: h.Invoice.Update, Delete: h.Invoice.Delete,
		})

		mountResource(customer, "/sales_orders", cfg.Permissions, "sales_order", crud{
			Create: h.SalesOrder.Create, List: h.SalesOrder.List, Get: h.SalesOrder.GetByID,
			Update: h.SalesOrder.Update, Delete: h.SalesOrder.Delete,
		})

		mountResource(customer, "/credit_notes", cfg.Permissions, "credit_note", crud{
			Create: h.CreditNote.Create, List: h.CreditNote.List, Get: h.CreditNote.GetByID,
			Update: h.CreditNote.Update, Delete: h.CreditNote.Delete,
		})

		apps := customer.Group("/credits_applications", middleware.RequireModelPermission(cfg.Permissions, "credits_application"))
		apps.POST("/", h.CreditsApplication.Apply)
		apps.GET("/", h.CreditsApplication.List)
		apps.GET("/:id", h.CreditsApplication.GetByID)
		apps.DELETE("/:id", h.CreditsApplication.Delete)
	}

	supplier := authed.Group("/supplier")
	{
		mountResource(supplier, "/suppliers", cfg.Permissions, "supplier", crud{
			Create: h.Supplier.Create, List: h.Supplier.List, Get: h.Supplier.GetByID,
			Update: h.Supplier.Update, Delete: h.Supplier.Delete,
		})

		mountResource(supplier, "/purchase_orders", cfg.Permissions, "purchase_order", crud{
			Create: h.PurchaseOrder.Create, List: h.PurchaseOrder.List, Get: h.PurchaseOrder.GetByID,
			Update: h.PurchaseOrder.Update, Delete: h.PurchaseOrder.Delete,
		})

		mountResource(supplier, "/receives", cfg.Permissions, "receive", crud{
			Create: h.Receive.Create, List: h.Receive.List, Get: h.Receive.GetByID,
			Update: h.Receive.Update, Delete: h.Receive.Delete,
		})
	}

	return engine
}

// crud bundles the five standard handlers of a resource
type crud struct {
	Create gin.HandlerFunc
	List   gin.HandlerFunc
	Get    gin.HandlerFunc
	Update gin.HandlerFunc
	Delete gin.HandlerFunc
}

func mountCRUD(group *gin.RouterGroup, h crud) {
	group.POST("/", h.Create)
	group.GET("/", h.List)
	group.GET("/:id", h.Get)
	group.PUT("/:id", h.Update)
	group.DELETE("/:id", h.Delete)
}

// mountResource mounts standard CRUD under prefix with the write-permission
// check for the given model
func mountResource(parent *gin.RouterGroup, prefix string, checker identity.PermissionChecker, model string, h crud) {
	group := parent.Group(prefix, middleware.RequireModelPermission(checker, model))
	mountCRUD(group, h)
}
