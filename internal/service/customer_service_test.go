package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"lekha/internal/domain"
	"lekha/internal/port"
	"lekha/internal/service"
	"lekha/mocks"
)

func TestCustomerService_Create_Success(t *testing.T) {
	repo := new(mocks.MockCustomerRepo)
	invoiceRepo := new(mocks.MockInvoiceRepo)
	svc := service.NewCustomerService(repo, invoiceRepo)

	companyID := uuid.New()
	userID := uuid.New()

	repo.On("GetByGSTIN", mock.Anything, companyID, "27AAPFU0939F1ZV").
		Return(nil, domain.ErrNotFound)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Customer")).Return(nil)

	customer, err := svc.Create(context.Background(), companyID, userID, service.CreateCustomerInput{
		Name:       "Sharma Traders",
		GSTIN:      "27AAPFU0939F1ZV",
		CreditDays: 30,
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.CustomerB2B, customer.CustomerType)
	assert.Equal(t, "27", customer.Address.StateCode)
	assert.Equal(t, "Maharashtra", customer.Address.State)
	assert.Equal(t, domain.PartyActive, customer.Status)
	assert.Equal(t, userID, customer.CreatedBy)
	repo.AssertExpectations(t)
}

func TestCustomerService_Create_DefaultsToB2C(t *testing.T) {
	repo := new(mocks.MockCustomerRepo)
	invoiceRepo := new(mocks.MockInvoiceRepo)
	svc := service.NewCustomerService(repo, invoiceRepo)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Customer")).Return(nil)

	customer, err := svc.Create(context.Background(), uuid.New(), uuid.New(), service.CreateCustomerInput{
		Name: "Walk-in Customer",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.CustomerB2C, customer.CustomerType)
	repo.AssertExpectations(t)
}

func TestCustomerService_Create_InvalidGSTIN(t *testing.T) {
	repo := new(mocks.MockCustomerRepo)
	invoiceRepo := new(mocks.MockInvoiceRepo)
	svc := service.NewCustomerService(repo, invoiceRepo)

	customer, err := svc.Create(context.Background(), uuid.New(), uuid.New(), service.CreateCustomerInput{
		Name:  "Bad GSTIN",
		GSTIN: "NOT-A-GSTIN",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidGSTIN)
	assert.Nil(t, customer)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCustomerService_Create_StateCodeMismatch(t *testing.T) {
	repo := new(mocks.MockCustomerRepo)
	invoiceRepo := new(mocks.MockInvoiceRepo)
	svc := service.NewCustomerService(repo, invoiceRepo)

	customer, err := svc.Create(context.Background(), uuid.New(), uuid.New(), service.CreateCustomerInput{
		Name:    "Mismatch",
		GSTIN:   "27AAPFU0939F1ZV",
		Address: domain.Address{StateCode: "29"},
	})

	assert.ErrorIs(t, err, domain.ErrInvalidStateCode)
	assert.Nil(t, customer)
}

func TestCustomerService_Create_DuplicateGSTIN(t *testing.T) {
	repo := new(mocks.MockCustomerRepo)
	invoiceRepo := new(mocks.MockInvoiceRepo)
	svc := service.NewCustomerService(repo, invoiceRepo)

	companyID := uuid.New()
	existing := &domain.Customer{ID: uuid.New(), GSTIN: "27AAPFU0939F1ZV"}
	repo.On("GetByGSTIN", mock.Anything, companyID, "27AAPFU0939F1ZV").Return(existing, nil)

	customer, err := svc.Create(context.Background(), companyID, uuid.New(), service.CreateCustomerInput{
		Name:  "Duplicate",
		GSTIN: "27AAPFU0939F1ZV",
	})

	assert.ErrorIs(t, err, domain.ErrDuplicateGSTIN)
	assert.Nil(t, customer)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCustomerService_Update_RevalidatesGSTIN(t *testing.T) {
	repo := new(mocks.MockCustomerRepo)
	invoiceRepo := new(mocks.MockInvoiceRepo)
	svc := service.NewCustomerService(repo, invoiceRepo)

	companyID := uuid.New()
	customerID := uuid.New()
	repo.On("GetByID", mock.Anything, companyID, customerID).
		Return(&domain.Customer{ID: customerID, CompanyID: companyID, Name: "Sharma Traders"}, nil)

	badGSTIN := "garbage"
	updated, err := svc.Update(context.Background(), companyID, customerID, service.UpdateCustomerInput{
		GSTIN: &badGSTIN,
	})

	assert.ErrorIs(t, err, domain.ErrInvalidGSTIN)
	assert.Nil(t, updated)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCustomerService_List_PassesFilter(t *testing.T) {
	repo := new(mocks.MockCustomerRepo)
	invoiceRepo := new(mocks.MockInvoiceRepo)
	svc := service.NewCustomerService(repo, invoiceRepo)

	companyID := uuid.New()
	filter := port.PartyFilter{Search: "sharma", Limit: 20}
	repo.On("List", mock.Anything, companyID, filter).
		Return([]domain.Customer{{Name: "Sharma Traders"}}, 1, nil)

	customers, total, err := svc.List(context.Background(), companyID, filter)

	assert.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Len(t, customers, 1)
	repo.AssertExpectations(t)
}

func TestCustomerService_Ledger_ReplaysInvoicesAndPayments(t *testing.T) {
	repo := new(mocks.MockCustomerRepo)
	invoiceRepo := new(mocks.MockInvoiceRepo)
	svc := service.NewCustomerService(repo, invoiceRepo)

	companyID := uuid.New()
	customerID := uuid.New()
	from := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	repo.On("GetByID", mock.Anything, companyID, customerID).Return(&domain.Customer{
		ID:             customerID,
		Name:           "Sharma Traders",
		OpeningBalance: 1000,
		CreatedAt:      from,
	}, nil)

	invoiceRepo.On("ListByCustomer", mock.Anything, companyID, customerID, from, to).
		Return([]domain.Invoice{
			{
				ID:            uuid.New(),
				InvoiceNumber: "INV-0001",
				InvoiceDate:   from.AddDate(0, 1, 0),
				GrandTotal:    500,
				Status:        domain.StatusPartiallyPaid,
				Payments: domain.PaymentList{
					{PaymentDate: from.AddDate(0, 2, 0), Amount: 200, Method: domain.PaymentUPI},
				},
			},
			{
				ID:            uuid.New(),
				InvoiceNumber: "INV-0002",
				InvoiceDate:   from.AddDate(0, 3, 0),
				GrandTotal:    999,
				Status:        domain.StatusCancelled,
			},
		}, nil)

	stmt, err := svc.Ledger(context.Background(), companyID, customerID, from, to)

	assert.NoError(t, err)
	// Opening, invoice and payment rows; the cancelled invoice is dropped.
	assert.Len(t, stmt.Entries, 3)
	assert.Equal(t, 1000.0, stmt.Entries[0].Balance)
	assert.Equal(t, 1500.0, stmt.Entries[1].Balance)
	assert.Equal(t, 1300.0, stmt.Entries[2].Balance)
	assert.Equal(t, 1300.0, stmt.Summary.ClosingBalance)
	assert.Equal(t, 1500.0, stmt.Summary.TotalDebits)
	assert.Equal(t, 200.0, stmt.Summary.TotalCredits)
	repo.AssertExpectations(t)
	invoiceRepo.AssertExpectations(t)
}

func TestCustomerService_Statement_AgesOutstanding(t *testing.T) {
	repo := new(mocks.MockCustomerRepo)
	invoiceRepo := new(mocks.MockInvoiceRepo)
	svc := service.NewCustomerService(repo, invoiceRepo)

	companyID := uuid.New()
	customerID := uuid.New()
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	repo.On("GetByID", mock.Anything, companyID, customerID).Return(&domain.Customer{
		ID:          customerID,
		Name:        "Sharma Traders",
		CreditLimit: 10000,
	}, nil)

	invoiceRepo.On("ListOutstanding", mock.Anything, companyID, customerID).
		Return([]domain.Invoice{
			{
				InvoiceNumber: "INV-0001",
				DueDate:       now.AddDate(0, 0, -40),
				GrandTotal:    5000,
				PaidAmount:    2000,
				BalanceAmount: 3000,
				Status:        domain.StatusPartiallyPaid,
			},
		}, nil)

	report, err := svc.Statement(context.Background(), companyID, customerID, now)

	assert.NoError(t, err)
	assert.Len(t, report.Docs, 1)
	assert.Equal(t, 40, report.Docs[0].DaysOverdue)
	assert.Equal(t, 3000.0, report.Aging.D31to60)
	assert.Equal(t, 3000.0, report.TotalOutstanding)
	assert.Equal(t, 3000.0, report.OverdueAmount)
	assert.Equal(t, 7000.0, report.CreditAvailable)
	repo.AssertExpectations(t)
	invoiceRepo.AssertExpectations(t)
}
