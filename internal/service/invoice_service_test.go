package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"lekha/internal/domain"
	"lekha/internal/service"
	"lekha/mocks"
)

func invoiceFixtures() (*domain.Company, *domain.Customer) {
	company := &domain.Company{
		ID:        uuid.New(),
		Name:      "Lekha Traders",
		StateCode: "27",
	}
	customer := &domain.Customer{
		ID:      uuid.New(),
		Name:    "Sharma Traders",
		GSTIN:   "27AAPFU0939F1ZV",
		Address: domain.Address{StateCode: "27"},
	}
	return company, customer
}

func TestInvoiceService_Create_Intrastate(t *testing.T) {
	repo := new(mocks.MockInvoiceRepo)
	customerRepo := new(mocks.MockCustomerRepo)
	companyRepo := new(mocks.MockCompanyRepo)
	svc := service.NewInvoiceService(repo, customerRepo, companyRepo)

	company, customer := invoiceFixtures()
	customer.CreditDays = 30
	userID := uuid.New()
	invoiceDate := time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC)

	companyRepo.On("GetByID", mock.Anything, company.ID).Return(company, nil)
	customerRepo.On("GetByID", mock.Anything, company.ID, customer.ID).Return(customer, nil)
	companyRepo.On("NextInvoiceNumber", mock.Anything, company.ID).Return("INV", int64(42), nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Invoice")).Return(nil)

	inv, err := svc.Create(context.Background(), company.ID, userID, service.CreateInvoiceInput{
		CustomerID:  customer.ID,
		InvoiceDate: invoiceDate,
		Lines: []service.LineInput{
			{ItemName: "Consulting", Quantity: 10, Rate: 100, GSTRate: 18},
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, "INV-0042", inv.InvoiceNumber)
	assert.Equal(t, domain.InvoiceTypeTax, inv.InvoiceType)
	assert.Equal(t, "Intrastate", inv.SupplyType)
	assert.Equal(t, "27", inv.PlaceOfSupply)
	// Due date defaults to invoice date plus the customer's credit days.
	assert.Equal(t, invoiceDate.AddDate(0, 0, 30), inv.DueDate)
	assert.Equal(t, 1000.0, inv.TaxableAmount)
	assert.Equal(t, 90.0, inv.TotalCGST)
	assert.Equal(t, 90.0, inv.TotalSGST)
	assert.Equal(t, 0.0, inv.TotalIGST)
	assert.Equal(t, 1180.0, inv.GrandTotal)
	assert.Equal(t, 1180.0, inv.BalanceAmount)
	assert.Equal(t, domain.StatusDraft, inv.Status)
	assert.NotEmpty(t, inv.AmountInWords)
	repo.AssertExpectations(t)
	companyRepo.AssertExpectations(t)
}

func TestInvoiceService_Create_InterstateUsesIGST(t *testing.T) {
	repo := new(mocks.MockInvoiceRepo)
	customerRepo := new(mocks.MockCustomerRepo)
	companyRepo := new(mocks.MockCompanyRepo)
	svc := service.NewInvoiceService(repo, customerRepo, companyRepo)

	company, customer := invoiceFixtures()
	customer.Address.StateCode = "29"

	companyRepo.On("GetByID", mock.Anything, company.ID).Return(company, nil)
	customerRepo.On("GetByID", mock.Anything, company.ID, customer.ID).Return(customer, nil)
	companyRepo.On("NextInvoiceNumber", mock.Anything, company.ID).Return("INV", int64(1), nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Invoice")).Return(nil)

	inv, err := svc.Create(context.Background(), company.ID, uuid.New(), service.CreateInvoiceInput{
		CustomerID:  customer.ID,
		InvoiceDate: time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC),
		Lines: []service.LineInput{
			{ItemName: "Goods", Quantity: 1, Rate: 1000, GSTRate: 18},
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, "Interstate", inv.SupplyType)
	assert.Equal(t, 0.0, inv.TotalCGST)
	assert.Equal(t, 0.0, inv.TotalSGST)
	assert.Equal(t, 180.0, inv.TotalIGST)
}

func TestInvoiceService_Create_ExportCustomer(t *testing.T) {
	repo := new(mocks.MockInvoiceRepo)
	customerRepo := new(mocks.MockCustomerRepo)
	companyRepo := new(mocks.MockCompanyRepo)
	svc := service.NewInvoiceService(repo, customerRepo, companyRepo)

	company, customer := invoiceFixtures()
	customer.GSTIN = ""
	customer.Address.StateCode = ""

	companyRepo.On("GetByID", mock.Anything, company.ID).Return(company, nil)
	customerRepo.On("GetByID", mock.Anything, company.ID, customer.ID).Return(customer, nil)
	companyRepo.On("NextInvoiceNumber", mock.Anything, company.ID).Return("INV", int64(7), nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Invoice")).Return(nil)

	inv, err := svc.Create(context.Background(), company.ID, uuid.New(), service.CreateInvoiceInput{
		CustomerID:  customer.ID,
		InvoiceDate: time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC),
		Lines: []service.LineInput{
			{ItemName: "Services", Quantity: 1, Rate: 5000, GSTRate: 18},
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.InvoiceTypeExport, inv.InvoiceType)
	assert.Equal(t, "Export", inv.SupplyType)
	// Export supplies carry no GST regardless of the line rate.
	assert.Equal(t, 0.0, inv.TotalTax)
	assert.Equal(t, 5000.0, inv.GrandTotal)
}

func TestInvoiceService_Create_NoLines(t *testing.T) {
	repo := new(mocks.MockInvoiceRepo)
	customerRepo := new(mocks.MockCustomerRepo)
	companyRepo := new(mocks.MockCompanyRepo)
	svc := service.NewInvoiceService(repo, customerRepo, companyRepo)

	inv, err := svc.Create(context.Background(), uuid.New(), uuid.New(), service.CreateInvoiceInput{
		CustomerID:  uuid.New(),
		InvoiceDate: time.Now(),
	})

	assert.ErrorIs(t, err, domain.ErrNoLineItems)
	assert.Nil(t, inv)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestInvoiceService_MarkSent_FromDraft(t *testing.T) {
	repo := new(mocks.MockInvoiceRepo)
	customerRepo := new(mocks.MockCustomerRepo)
	companyRepo := new(mocks.MockCompanyRepo)
	svc := service.NewInvoiceService(repo, customerRepo, companyRepo)

	companyID := uuid.New()
	invoiceID := uuid.New()
	repo.On("GetByID", mock.Anything, companyID, invoiceID).
		Return(&domain.Invoice{ID: invoiceID, Status: domain.StatusDraft}, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Invoice")).Return(nil)

	inv, err := svc.MarkSent(context.Background(), companyID, invoiceID)

	assert.NoError(t, err)
	assert.Equal(t, domain.StatusSent, inv.Status)
	repo.AssertExpectations(t)
}

func TestInvoiceService_RecordPayment_Partial(t *testing.T) {
	repo := new(mocks.MockInvoiceRepo)
	customerRepo := new(mocks.MockCustomerRepo)
	companyRepo := new(mocks.MockCompanyRepo)
	svc := service.NewInvoiceService(repo, customerRepo, companyRepo)

	companyID := uuid.New()
	invoiceID := uuid.New()
	repo.On("GetByID", mock.Anything, companyID, invoiceID).Return(&domain.Invoice{
		ID:         invoiceID,
		SupplyType: "Intrastate",
		Lines: domain.DocumentLines{
			{ItemName: "Consulting", Quantity: 10, Rate: 100, GSTRate: 18},
		},
		Status: domain.StatusSent,
	}, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Invoice")).Return(nil)

	inv, err := svc.RecordPayment(context.Background(), companyID, invoiceID, service.RecordPaymentInput{
		PaymentDate: time.Now(),
		Amount:      500,
		Method:      domain.PaymentUPI,
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.StatusPartiallyPaid, inv.Status)
	assert.Equal(t, 500.0, inv.PaidAmount)
	assert.Equal(t, 680.0, inv.BalanceAmount)
	repo.AssertExpectations(t)
}

func TestInvoiceService_RecordPayment_Cancelled(t *testing.T) {
	repo := new(mocks.MockInvoiceRepo)
	customerRepo := new(mocks.MockCustomerRepo)
	companyRepo := new(mocks.MockCompanyRepo)
	svc := service.NewInvoiceService(repo, customerRepo, companyRepo)

	companyID := uuid.New()
	invoiceID := uuid.New()
	repo.On("GetByID", mock.Anything, companyID, invoiceID).
		Return(&domain.Invoice{ID: invoiceID, Status: domain.StatusCancelled}, nil)

	inv, err := svc.RecordPayment(context.Background(), companyID, invoiceID, service.RecordPaymentInput{
		PaymentDate: time.Now(),
		Amount:      100,
		Method:      domain.PaymentCash,
	})

	assert.ErrorIs(t, err, domain.ErrDocumentCancelled)
	assert.Nil(t, inv)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestInvoiceService_Update_Cancelled(t *testing.T) {
	repo := new(mocks.MockInvoiceRepo)
	customerRepo := new(mocks.MockCustomerRepo)
	companyRepo := new(mocks.MockCompanyRepo)
	svc := service.NewInvoiceService(repo, customerRepo, companyRepo)

	companyID := uuid.New()
	invoiceID := uuid.New()
	repo.On("GetByID", mock.Anything, companyID, invoiceID).
		Return(&domain.Invoice{ID: invoiceID, Status: domain.StatusCancelled}, nil)

	notes := "late edit"
	inv, err := svc.Update(context.Background(), companyID, invoiceID, service.UpdateInvoiceInput{
		Notes: &notes,
	})

	assert.ErrorIs(t, err, domain.ErrDocumentCancelled)
	assert.Nil(t, inv)
}

func TestInvoiceService_Cancel(t *testing.T) {
	repo := new(mocks.MockInvoiceRepo)
	customerRepo := new(mocks.MockCustomerRepo)
	companyRepo := new(mocks.MockCompanyRepo)
	svc := service.NewInvoiceService(repo, customerRepo, companyRepo)

	companyID := uuid.New()
	invoiceID := uuid.New()
	repo.On("GetByID", mock.Anything, companyID, invoiceID).
		Return(&domain.Invoice{ID: invoiceID, Status: domain.StatusSent}, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Invoice")).Return(nil)

	inv, err := svc.Cancel(context.Background(), companyID, invoiceID)

	assert.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, inv.Status)
	repo.AssertExpectations(t)
}
