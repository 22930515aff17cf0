package router

import (
	"github.com/gin-gonic/gin"

	"lekha/internal/domain"
	"lekha/internal/handler"
	"lekha/internal/middleware"
	"lekha/internal/service"
)

// Handlers bundles every HTTP handler the router mounts.
type Handlers struct {
	Auth       *handler.AuthHandler
	Company    *handler.CompanyHandler
	User       *handler.UserHandler
	Customer   *handler.CustomerHandler
	Vendor     *handler.VendorHandler
	Item       *handler.ItemHandler
	Invoice    *handler.InvoiceHandler
	Purchase   *handler.PurchaseHandler
	Report     *handler.ReportHandler
	Export     *handler.ExportHandler
	Attachment *handler.AttachmentHandler
	Reminder   *handler.ReminderHandler
	Health     *handler.HealthHandler
}

// Setup configures the Gin engine with all routes and middleware.
func Setup(authSvc service.AuthService, corsOrigins []string, h Handlers) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(corsOrigins))

	// Health checks
	r.GET("/healthz", h.Health.Liveness)
	r.GET("/readyz", h.Health.Readiness)

	v1 := r.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/login", h.Auth.Login)
	auth.POST("/refresh", h.Auth.RefreshToken)
	v1.POST("/companies", h.Company.Register)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))
	protected.Use(middleware.CompanyGuard())

	// Company settings
	protected.GET("/company", h.Company.Get)
	protected.PUT("/company", middleware.RequireRole(domain.RoleAdmin), h.Company.Update)

	// User management
	users := protected.Group("/users")
	users.POST("", middleware.RequireRole(domain.RoleAdmin), h.User.Create)
	users.GET("", middleware.RequireRole(domain.RoleAdmin), h.User.List)
	users.GET("/:id", h.User.GetByID)
	users.PUT("/:id", h.User.Update)
	users.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), h.User.Delete)

	// Customers
	customers := protected.Group("/customers")
	customers.POST("", h.Customer.Create)
	customers.GET("", h.Customer.List)
	customers.GET("/:id", h.Customer.GetByID)
	customers.PUT("/:id", h.Customer.Update)
	customers.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), h.Customer.Deactivate)
	customers.GET("/:id/ledger", h.Customer.Ledger)
	customers.GET("/:id/statement", h.Customer.Statement)
	customers.POST("/:id/statement/email", h.Reminder.EmailStatement)

	// Vendors
	vendors := protected.Group("/vendors")
	vendors.POST("", h.Vendor.Create)
	vendors.GET("", h.Vendor.List)
	vendors.GET("/:id", h.Vendor.GetByID)
	vendors.PUT("/:id", h.Vendor.Update)
	vendors.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), h.Vendor.Deactivate)
	vendors.GET("/:id/tds-threshold", h.Vendor.TDSThreshold)

	// Item catalogue
	items := protected.Group("/items")
	items.POST("", h.Item.Create)
	items.GET("", h.Item.List)
	items.GET("/:id", h.Item.GetByID)
	items.PUT("/:id", h.Item.Update)
	items.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), h.Item.Deactivate)

	// Sales invoices
	invoices := protected.Group("/invoices")
	invoices.POST("", h.Invoice.Create)
	invoices.GET("", h.Invoice.List)
	invoices.GET("/:id", h.Invoice.GetByID)
	invoices.PUT("/:id", h.Invoice.Update)
	invoices.POST("/:id/send", h.Invoice.MarkSent)
	invoices.POST("/:id/payments", h.Invoice.RecordPayment)
	invoices.POST("/:id/cancel", middleware.RequireRole(domain.RoleAdmin), h.Invoice.Cancel)

	// Purchase bills
	purchases := protected.Group("/purchases")
	purchases.POST("", h.Purchase.Create)
	purchases.GET("", h.Purchase.List)
	purchases.GET("/:id", h.Purchase.GetByID)
	purchases.PUT("/:id", h.Purchase.Update)
	purchases.POST("/:id/send", h.Purchase.MarkSent)
	purchases.POST("/:id/payments", h.Purchase.RecordPayment)
	purchases.POST("/:id/cancel", middleware.RequireRole(domain.RoleAdmin), h.Purchase.Cancel)

	// Attachments
	documents := protected.Group("/documents")
	documents.POST("/:id/attachments", h.Attachment.Upload)
	documents.GET("/:id/attachments", h.Attachment.ListByDocument)
	attachments := protected.Group("/attachments")
	attachments.GET("/:id/download", h.Attachment.DownloadURL)
	attachments.DELETE("/:id", h.Attachment.Delete)

	// Reports
	reports := protected.Group("/reports")
	reports.GET("/gst", h.Report.GSTSummary)
	reports.GET("/tds", h.Report.TDSSummary)
	reports.GET("/aging", h.Report.Aging)

	// Exports
	exports := protected.Group("/exports")
	exports.GET("/customers.csv", h.Export.CustomersCSV)
	exports.GET("/invoices.csv", h.Export.InvoicesCSV)
	exports.GET("/customers/:id/statement.xlsx", h.Export.StatementXLSX)

	// Reminders
	protected.POST("/reminders/overdue", h.Reminder.SendOverdueReminders)

	return r
}
