package service

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"lekha/internal/billing"
	"lekha/internal/port"
)

// ReminderResult reports which customers were nudged.
type ReminderResult struct {
	InvoicesChecked int      `json:"invoices_checked"`
	RemindersSent   int      `json:"reminders_sent"`
	Skipped         []string `json:"skipped,omitempty"`
}

// ReminderService sends payment reminders and statements.
type ReminderService interface {
	// SendOverdueReminders emails the customer of every overdue
	// outstanding invoice. Customers without an email address are
	// skipped, not failed.
	SendOverdueReminders(ctx context.Context, companyID uuid.UUID, now time.Time) (*ReminderResult, error)
	// EmailStatement renders the customer's ledger as XLSX and mails it.
	EmailStatement(ctx context.Context, companyID, customerID uuid.UUID, from, to time.Time) error
}

type reminderService struct {
	invoiceRepo  port.InvoiceRepository
	customerRepo port.CustomerRepository
	exportSvc    ExportService
	sender       port.EmailSender
}

// NewReminderService creates a new ReminderService implementation.
func NewReminderService(
	invoiceRepo port.InvoiceRepository,
	customerRepo port.CustomerRepository,
	exportSvc ExportService,
	sender port.EmailSender,
) ReminderService {
	return &reminderService{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		exportSvc:    exportSvc,
		sender:       sender,
	}
}

func (s *reminderService) SendOverdueReminders(ctx context.Context, companyID uuid.UUID, now time.Time) (*ReminderResult, error) {
	invoices, err := s.invoiceRepo.ListOutstanding(ctx, companyID, uuid.Nil)
	if err != nil {
		return nil, fmt.Errorf("reminder.SendOverdueReminders: %w", err)
	}

	result := &ReminderResult{InvoicesChecked: len(invoices)}

	for i := range invoices {
		inv := &invoices[i]
		if !billing.IsOverdue(inv.Status, inv.DueDate, now) {
			continue
		}

		customer, err := s.customerRepo.GetByID(ctx, companyID, inv.CustomerID)
		if err != nil {
			result.Skipped = append(result.Skipped, inv.InvoiceNumber)
			continue
		}
		if customer.Email == "" {
			result.Skipped = append(result.Skipped, inv.InvoiceNumber)
			continue
		}

		if err := s.sender.SendPaymentReminder(ctx, customer.Email, customer.Name, inv); err != nil {
			// One failed send must not abort the batch.
			log.Printf("reminder: sending for invoice %s failed: %v", inv.InvoiceNumber, err)
			result.Skipped = append(result.Skipped, inv.InvoiceNumber)
			continue
		}
		result.RemindersSent++
	}

	return result, nil
}

func (s *reminderService) EmailStatement(ctx context.Context, companyID, customerID uuid.UUID, from, to time.Time) error {
	customer, err := s.customerRepo.GetByID(ctx, companyID, customerID)
	if err != nil {
		return err
	}
	if customer.Email == "" {
		return fmt.Errorf("reminder.EmailStatement: customer %s has no email address", customer.Name)
	}

	var buf bytes.Buffer
	if err := s.exportSvc.StatementXLSX(ctx, companyID, customerID, from, to, &buf); err != nil {
		return err
	}

	fileName := fmt.Sprintf("statement_%s.xlsx", to.Format("2006-01-02"))
	return s.sender.SendStatement(ctx, customer.Email, customer.Name, buf.Bytes(), fileName)
}
