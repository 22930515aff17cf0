package main

import (
	"fmt"
	"log"

	"lekha/internal/config"
	"lekha/internal/email/noop"
	"lekha/internal/email/ses"
	"lekha/internal/handler"
	"lekha/internal/port"
	"lekha/internal/repository/postgres"
	"lekha/internal/router"
	"lekha/internal/service"
	s3storage "lekha/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	companyRepo := postgres.NewCompanyRepo(db)
	userRepo := postgres.NewUserRepo(db)
	customerRepo := postgres.NewCustomerRepo(db)
	vendorRepo := postgres.NewVendorRepo(db)
	itemRepo := postgres.NewItemRepo(db)
	invoiceRepo := postgres.NewInvoiceRepo(db)
	purchaseRepo := postgres.NewPurchaseRepo(db)
	attachmentRepo := postgres.NewAttachmentRepo(db)

	// Initialize storage
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Initialize email sender
	var sender port.EmailSender
	if cfg.Email.Provider == "ses" {
		sender, err = ses.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	} else {
		sender = noop.NewNoopSender()
	}

	// Initialize services
	authSvc := service.NewAuthService(userRepo, companyRepo, cfg.JWT)
	companySvc := service.NewCompanyService(companyRepo, userRepo, authSvc, cfg.Numbering)
	userSvc := service.NewUserService(userRepo)
	customerSvc := service.NewCustomerService(customerRepo, invoiceRepo)
	vendorSvc := service.NewVendorService(vendorRepo, purchaseRepo)
	itemSvc := service.NewItemService(itemRepo)
	invoiceSvc := service.NewInvoiceService(invoiceRepo, customerRepo, companyRepo)
	purchaseSvc := service.NewPurchaseService(purchaseRepo, vendorRepo, companyRepo)
	reportSvc := service.NewReportService(invoiceRepo, purchaseRepo)
	exportSvc := service.NewExportService(customerRepo, invoiceRepo, customerSvc)
	reminderSvc := service.NewReminderService(invoiceRepo, customerRepo, exportSvc, sender)
	attachmentSvc := service.NewAttachmentService(attachmentRepo, s3Client, &cfg.S3)

	// Initialize handlers
	h := router.Handlers{
		Auth:       handler.NewAuthHandler(authSvc),
		Company:    handler.NewCompanyHandler(companySvc),
		User:       handler.NewUserHandler(userSvc),
		Customer:   handler.NewCustomerHandler(customerSvc),
		Vendor:     handler.NewVendorHandler(vendorSvc),
		Item:       handler.NewItemHandler(itemSvc),
		Invoice:    handler.NewInvoiceHandler(invoiceSvc),
		Purchase:   handler.NewPurchaseHandler(purchaseSvc),
		Report:     handler.NewReportHandler(reportSvc),
		Export:     handler.NewExportHandler(exportSvc),
		Attachment: handler.NewAttachmentHandler(attachmentSvc),
		Reminder:   handler.NewReminderHandler(reminderSvc),
		Health:     handler.NewHealthHandler(db),
	}

	// Setup router
	r := router.Setup(authSvc, cfg.CORS.AllowedOrigins, h)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
