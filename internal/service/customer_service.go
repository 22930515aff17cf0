package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"lekha/internal/domain"
	"lekha/internal/gst"
	"lekha/internal/ledger"
	"lekha/internal/port"
	"lekha/internal/tds"
)

// CreateCustomerInput is the DTO for creating a customer.
type CreateCustomerInput struct {
	Name           string              `json:"name" binding:"required"`
	Email          string              `json:"email" binding:"omitempty,email"`
	Phone          string              `json:"phone"`
	GSTIN          string              `json:"gstin"`
	PAN            string              `json:"pan"`
	Address        domain.Address      `json:"address"`
	CustomerType   domain.CustomerType `json:"customer_type"`
	CreditLimit    float64             `json:"credit_limit"`
	CreditDays     int                 `json:"credit_days"`
	OpeningBalance float64             `json:"opening_balance"`
}

// UpdateCustomerInput is the DTO for updating a customer.
type UpdateCustomerInput struct {
	Name        *string         `json:"name"`
	Email       *string         `json:"email"`
	Phone       *string         `json:"phone"`
	GSTIN       *string         `json:"gstin"`
	PAN         *string         `json:"pan"`
	Address     *domain.Address `json:"address"`
	CreditLimit *float64        `json:"credit_limit"`
	CreditDays  *int            `json:"credit_days"`
}

// CustomerService defines the customer management contract.
type CustomerService interface {
	Create(ctx context.Context, companyID, userID uuid.UUID, input CreateCustomerInput) (*domain.Customer, error)
	GetByID(ctx context.Context, companyID, customerID uuid.UUID) (*domain.Customer, error)
	List(ctx context.Context, companyID uuid.UUID, filter port.PartyFilter) ([]domain.Customer, int, error)
	Update(ctx context.Context, companyID, customerID uuid.UUID, input UpdateCustomerInput) (*domain.Customer, error)
	Deactivate(ctx context.Context, companyID, customerID uuid.UUID) error
	Ledger(ctx context.Context, companyID, customerID uuid.UUID, from, to time.Time) (*ledger.Statement, error)
	Statement(ctx context.Context, companyID, customerID uuid.UUID, now time.Time) (*ledger.Report, error)
}

type customerService struct {
	repo        port.CustomerRepository
	invoiceRepo port.InvoiceRepository
}

// NewCustomerService creates a new CustomerService implementation.
func NewCustomerService(repo port.CustomerRepository, invoiceRepo port.InvoiceRepository) CustomerService {
	return &customerService{repo: repo, invoiceRepo: invoiceRepo}
}

// validateParty checks GSTIN and PAN formats and fills the address
// state code from the GSTIN when the caller omitted it.
func validateParty(gstin, pan string, addr *domain.Address) error {
	if gstin != "" {
		if !gst.ValidGSTIN(gstin) {
			return domain.ErrInvalidGSTIN
		}
		code, _ := gst.StateCodeFromGSTIN(gstin)
		if addr.StateCode == "" {
			addr.StateCode = code
			if addr.State == "" {
				addr.State = gst.StateName(code)
			}
		} else if addr.StateCode != code {
			return domain.ErrInvalidStateCode
		}
	}
	if pan != "" && !tds.ValidPAN(pan) {
		return domain.ErrInvalidPAN
	}
	return nil
}

func (s *customerService) Create(ctx context.Context, companyID, userID uuid.UUID, input CreateCustomerInput) (*domain.Customer, error) {
	if err := validateParty(input.GSTIN, input.PAN, &input.Address); err != nil {
		return nil, err
	}

	if input.GSTIN != "" {
		existing, err := s.repo.GetByGSTIN(ctx, companyID, input.GSTIN)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("customer.Create: %w", err)
		}
		if existing != nil {
			return nil, domain.ErrDuplicateGSTIN
		}
	}

	customerType := input.CustomerType
	if customerType == "" {
		customerType = domain.CustomerB2C
		if input.GSTIN != "" {
			customerType = domain.CustomerB2B
		}
	}

	customer := &domain.Customer{
		CompanyID:      companyID,
		Name:           input.Name,
		Email:          input.Email,
		Phone:          input.Phone,
		GSTIN:          input.GSTIN,
		PAN:            input.PAN,
		Address:        input.Address,
		CustomerType:   customerType,
		CreditLimit:    input.CreditLimit,
		CreditDays:     input.CreditDays,
		OpeningBalance: input.OpeningBalance,
		Status:         domain.PartyActive,
		CreatedBy:      userID,
	}
	if err := s.repo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *customerService) GetByID(ctx context.Context, companyID, customerID uuid.UUID) (*domain.Customer, error) {
	return s.repo.GetByID(ctx, companyID, customerID)
}

func (s *customerService) List(ctx context.Context, companyID uuid.UUID, filter port.PartyFilter) ([]domain.Customer, int, error) {
	return s.repo.List(ctx, companyID, filter)
}

func (s *customerService) Update(ctx context.Context, companyID, customerID uuid.UUID, input UpdateCustomerInput) (*domain.Customer, error) {
	customer, err := s.repo.GetByID(ctx, companyID, customerID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		customer.Name = *input.Name
	}
	if input.Email != nil {
		customer.Email = *input.Email
	}
	if input.Phone != nil {
		customer.Phone = *input.Phone
	}
	if input.GSTIN != nil {
		customer.GSTIN = *input.GSTIN
	}
	if input.PAN != nil {
		customer.PAN = *input.PAN
	}
	if input.Address != nil {
		customer.Address = *input.Address
	}
	if input.CreditLimit != nil {
		customer.CreditLimit = *input.CreditLimit
	}
	if input.CreditDays != nil {
		customer.CreditDays = *input.CreditDays
	}

	if err := validateParty(customer.GSTIN, customer.PAN, &customer.Address); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *customerService) Deactivate(ctx context.Context, companyID, customerID uuid.UUID) error {
	return s.repo.Deactivate(ctx, companyID, customerID)
}

// Ledger replays the customer's invoices and their payments into a
// running statement. The repository returns invoices in ascending date
// order, which the ledger builder relies on.
func (s *customerService) Ledger(ctx context.Context, companyID, customerID uuid.UUID, from, to time.Time) (*ledger.Statement, error) {
	customer, err := s.repo.GetByID(ctx, companyID, customerID)
	if err != nil {
		return nil, err
	}

	invoices, err := s.invoiceRepo.ListByCustomer(ctx, companyID, customerID, from, to)
	if err != nil {
		return nil, fmt.Errorf("customer.Ledger: %w", err)
	}

	docs := make([]ledger.DocumentEvent, 0, len(invoices))
	for _, inv := range invoices {
		if inv.Status == domain.StatusCancelled {
			continue
		}
		docs = append(docs, ledger.DocumentEvent{
			ID:         inv.ID,
			Number:     inv.InvoiceNumber,
			Date:       inv.InvoiceDate,
			GrandTotal: inv.GrandTotal,
			Payments:   inv.Payments,
		})
	}

	stmt := ledger.Build(ledger.PartyInfo{
		Name:           customer.Name,
		OpeningBalance: customer.OpeningBalance,
		CreatedAt:      customer.CreatedAt,
	}, docs)
	return &stmt, nil
}

// Statement builds the aged-receivables report with credit headroom.
func (s *customerService) Statement(ctx context.Context, companyID, customerID uuid.UUID, now time.Time) (*ledger.Report, error) {
	customer, err := s.repo.GetByID(ctx, companyID, customerID)
	if err != nil {
		return nil, err
	}

	invoices, err := s.invoiceRepo.ListOutstanding(ctx, companyID, customerID)
	if err != nil {
		return nil, fmt.Errorf("customer.Statement: %w", err)
	}

	docs := make([]ledger.OutstandingDoc, 0, len(invoices))
	for _, inv := range invoices {
		docs = append(docs, ledger.OutstandingDoc{
			ID:            inv.ID,
			Number:        inv.InvoiceNumber,
			Date:          inv.InvoiceDate,
			DueDate:       inv.DueDate,
			GrandTotal:    inv.GrandTotal,
			PaidAmount:    inv.PaidAmount,
			BalanceAmount: inv.BalanceAmount,
			Status:        inv.Status,
		})
	}

	report := ledger.Age(docs, customer.CreditLimit, now)
	return &report, nil
}
