package service_test

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"lekha/internal/domain"
	"lekha/internal/service"
	"lekha/mocks"
)

func TestReminderService_SendOverdueReminders(t *testing.T) {
	invoiceRepo := new(mocks.MockInvoiceRepo)
	customerRepo := new(mocks.MockCustomerRepo)
	exportSvc := new(mocks.MockExportService)
	sender := new(mocks.MockEmailSender)
	svc := service.NewReminderService(invoiceRepo, customerRepo, exportSvc, sender)

	companyID := uuid.New()
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	withEmail := &domain.Customer{ID: uuid.New(), Name: "Sharma Traders", Email: "accounts@sharma.in"}
	noEmail := &domain.Customer{ID: uuid.New(), Name: "Walk-in Customer"}

	invoiceRepo.On("ListOutstanding", mock.Anything, companyID, uuid.Nil).
		Return([]domain.Invoice{
			{
				InvoiceNumber: "INV-0001", CustomerID: withEmail.ID,
				DueDate: now.AddDate(0, 0, -10), Status: domain.StatusSent,
			},
			{
				InvoiceNumber: "INV-0002", CustomerID: noEmail.ID,
				DueDate: now.AddDate(0, 0, -10), Status: domain.StatusSent,
			},
			{
				// Not yet due, never reminded.
				InvoiceNumber: "INV-0003", CustomerID: withEmail.ID,
				DueDate: now.AddDate(0, 0, 10), Status: domain.StatusSent,
			},
			{
				// Draft documents are not customer-facing.
				InvoiceNumber: "INV-0004", CustomerID: withEmail.ID,
				DueDate: now.AddDate(0, 0, -10), Status: domain.StatusDraft,
			},
		}, nil)

	customerRepo.On("GetByID", mock.Anything, companyID, withEmail.ID).Return(withEmail, nil)
	customerRepo.On("GetByID", mock.Anything, companyID, noEmail.ID).Return(noEmail, nil)
	sender.On("SendPaymentReminder", mock.Anything, "accounts@sharma.in", "Sharma Traders",
		mock.AnythingOfType("*domain.Invoice")).Return(nil)

	result, err := svc.SendOverdueReminders(context.Background(), companyID, now)

	assert.NoError(t, err)
	assert.Equal(t, 4, result.InvoicesChecked)
	assert.Equal(t, 1, result.RemindersSent)
	assert.Equal(t, []string{"INV-0002"}, result.Skipped)
	sender.AssertNumberOfCalls(t, "SendPaymentReminder", 1)
}

func TestReminderService_SendOverdueReminders_FailedSendContinues(t *testing.T) {
	invoiceRepo := new(mocks.MockInvoiceRepo)
	customerRepo := new(mocks.MockCustomerRepo)
	exportSvc := new(mocks.MockExportService)
	sender := new(mocks.MockEmailSender)
	svc := service.NewReminderService(invoiceRepo, customerRepo, exportSvc, sender)

	companyID := uuid.New()
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	first := &domain.Customer{ID: uuid.New(), Name: "First", Email: "first@example.in"}
	second := &domain.Customer{ID: uuid.New(), Name: "Second", Email: "second@example.in"}

	invoiceRepo.On("ListOutstanding", mock.Anything, companyID, uuid.Nil).
		Return([]domain.Invoice{
			{
				InvoiceNumber: "INV-0001", CustomerID: first.ID,
				DueDate: now.AddDate(0, 0, -5), Status: domain.StatusSent,
			},
			{
				InvoiceNumber: "INV-0002", CustomerID: second.ID,
				DueDate: now.AddDate(0, 0, -5), Status: domain.StatusPartiallyPaid,
			},
		}, nil)

	customerRepo.On("GetByID", mock.Anything, companyID, first.ID).Return(first, nil)
	customerRepo.On("GetByID", mock.Anything, companyID, second.ID).Return(second, nil)
	sender.On("SendPaymentReminder", mock.Anything, "first@example.in", "First",
		mock.AnythingOfType("*domain.Invoice")).Return(assert.AnError)
	sender.On("SendPaymentReminder", mock.Anything, "second@example.in", "Second",
		mock.AnythingOfType("*domain.Invoice")).Return(nil)

	result, err := svc.SendOverdueReminders(context.Background(), companyID, now)

	assert.NoError(t, err)
	assert.Equal(t, 1, result.RemindersSent)
	assert.Equal(t, []string{"INV-0001"}, result.Skipped)
	sender.AssertExpectations(t)
}

func TestReminderService_EmailStatement(t *testing.T) {
	invoiceRepo := new(mocks.MockInvoiceRepo)
	customerRepo := new(mocks.MockCustomerRepo)
	exportSvc := new(mocks.MockExportService)
	sender := new(mocks.MockEmailSender)
	svc := service.NewReminderService(invoiceRepo, customerRepo, exportSvc, sender)

	companyID := uuid.New()
	customer := &domain.Customer{ID: uuid.New(), Name: "Sharma Traders", Email: "accounts@sharma.in"}
	from := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	customerRepo.On("GetByID", mock.Anything, companyID, customer.ID).Return(customer, nil)
	exportSvc.On("StatementXLSX", mock.Anything, companyID, customer.ID, from, to, mock.Anything).
		Run(func(args mock.Arguments) {
			w := args.Get(5).(io.Writer)
			_, _ = w.Write([]byte("xlsx-bytes"))
		}).
		Return(nil)
	sender.On("SendStatement", mock.Anything, "accounts@sharma.in", "Sharma Traders",
		[]byte("xlsx-bytes"), "statement_2025-03-31.xlsx").Return(nil)

	err := svc.EmailStatement(context.Background(), companyID, customer.ID, from, to)

	assert.NoError(t, err)
	exportSvc.AssertExpectations(t)
	sender.AssertExpectations(t)
}

func TestReminderService_EmailStatement_NoEmail(t *testing.T) {
	invoiceRepo := new(mocks.MockInvoiceRepo)
	customerRepo := new(mocks.MockCustomerRepo)
	exportSvc := new(mocks.MockExportService)
	sender := new(mocks.MockEmailSender)
	svc := service.NewReminderService(invoiceRepo, customerRepo, exportSvc, sender)

	companyID := uuid.New()
	customer := &domain.Customer{ID: uuid.New(), Name: "Walk-in Customer"}
	customerRepo.On("GetByID", mock.Anything, companyID, customer.ID).Return(customer, nil)

	err := svc.EmailStatement(context.Background(), companyID, customer.ID, time.Time{}, time.Now())

	assert.Error(t, err)
	sender.AssertNotCalled(t, "SendStatement", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
