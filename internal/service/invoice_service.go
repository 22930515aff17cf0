package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"lekha/internal/billing"
	"lekha/internal/domain"
	"lekha/internal/gst"
	"lekha/internal/port"
)

// LineInput is one requested document line. Amounts are derived by the
// billing engine, never taken from the caller.
type LineInput struct {
	ItemID      *uuid.UUID `json:"item_id"`
	ItemName    string     `json:"item_name" binding:"required"`
	Description string     `json:"description"`
	HSNSACCode  string     `json:"hsn_sac_code"`
	Quantity    float64    `json:"quantity" binding:"required,gt=0"`
	Unit        string     `json:"unit"`
	Rate        float64    `json:"rate" binding:"gte=0"`
	Discount    float64    `json:"discount" binding:"gte=0,lte=100"`
	GSTRate     float64    `json:"gst_rate" binding:"gte=0"`
	CessRate    float64    `json:"cess_rate" binding:"gte=0"`
}

// CreateInvoiceInput is the DTO for creating an invoice.
type CreateInvoiceInput struct {
	CustomerID  uuid.UUID          `json:"customer_id" binding:"required"`
	InvoiceType domain.InvoiceType `json:"invoice_type"`
	InvoiceDate time.Time          `json:"invoice_date" binding:"required"`
	DueDate     time.Time          `json:"due_date"`
	Lines       []LineInput        `json:"items" binding:"required,min=1,dive"`
	Terms       string             `json:"terms"`
	Notes       string             `json:"notes"`
}

// UpdateInvoiceInput is the DTO for updating a draft or sent invoice.
type UpdateInvoiceInput struct {
	InvoiceDate *time.Time  `json:"invoice_date"`
	DueDate     *time.Time  `json:"due_date"`
	Lines       []LineInput `json:"items"`
	Terms       *string     `json:"terms"`
	Notes       *string     `json:"notes"`
}

// RecordPaymentInput is the DTO for recording a payment against a
// document.
type RecordPaymentInput struct {
	PaymentDate time.Time            `json:"payment_date" binding:"required"`
	Amount      float64              `json:"amount" binding:"required,gt=0"`
	Method      domain.PaymentMethod `json:"payment_method" binding:"required"`
	Reference   string               `json:"reference"`
	TDSDeducted float64              `json:"tds_deducted"`
}

// InvoiceService defines the invoice management contract.
type InvoiceService interface {
	Create(ctx context.Context, companyID, userID uuid.UUID, input CreateInvoiceInput) (*domain.Invoice, error)
	GetByID(ctx context.Context, companyID, invoiceID uuid.UUID) (*domain.Invoice, error)
	List(ctx context.Context, companyID uuid.UUID, filter port.DocumentFilter) ([]domain.Invoice, int, error)
	Update(ctx context.Context, companyID, invoiceID uuid.UUID, input UpdateInvoiceInput) (*domain.Invoice, error)
	MarkSent(ctx context.Context, companyID, invoiceID uuid.UUID) (*domain.Invoice, error)
	RecordPayment(ctx context.Context, companyID, invoiceID uuid.UUID, input RecordPaymentInput) (*domain.Invoice, error)
	Cancel(ctx context.Context, companyID, invoiceID uuid.UUID) (*domain.Invoice, error)
}

type invoiceService struct {
	repo         port.InvoiceRepository
	customerRepo port.CustomerRepository
	companyRepo  port.CompanyRepository
}

// NewInvoiceService creates a new InvoiceService implementation.
func NewInvoiceService(
	repo port.InvoiceRepository,
	customerRepo port.CustomerRepository,
	companyRepo port.CompanyRepository,
) InvoiceService {
	return &invoiceService{repo: repo, customerRepo: customerRepo, companyRepo: companyRepo}
}

func linesFromInput(inputs []LineInput) domain.DocumentLines {
	lines := make(domain.DocumentLines, 0, len(inputs))
	for _, in := range inputs {
		lines = append(lines, domain.DocumentLine{
			ItemID:      in.ItemID,
			ItemName:    in.ItemName,
			Description: in.Description,
			HSNSACCode:  in.HSNSACCode,
			Quantity:    in.Quantity,
			Unit:        in.Unit,
			Rate:        in.Rate,
			Discount:    in.Discount,
			GSTRate:     in.GSTRate,
			CessRate:    in.CessRate,
		})
	}
	return lines
}

func (s *invoiceService) Create(ctx context.Context, companyID, userID uuid.UUID, input CreateInvoiceInput) (*domain.Invoice, error) {
	if len(input.Lines) == 0 {
		return nil, domain.ErrNoLineItems
	}

	company, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	customer, err := s.customerRepo.GetByID(ctx, companyID, input.CustomerID)
	if err != nil {
		return nil, err
	}

	supplyType := gst.GetSupplyType(company.StateCode, customer.Address.StateCode)

	invoiceType := input.InvoiceType
	if invoiceType == "" {
		invoiceType = domain.InvoiceTypeTax
		if supplyType == gst.Export {
			invoiceType = domain.InvoiceTypeExport
		}
	}

	dueDate := input.DueDate
	if dueDate.IsZero() {
		dueDate = input.InvoiceDate.AddDate(0, 0, customer.CreditDays)
	}

	series, counter, err := s.companyRepo.NextInvoiceNumber(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("invoice.Create: %w", err)
	}

	inv := &domain.Invoice{
		CompanyID:     companyID,
		InvoiceNumber: billing.DocumentNumber(series, counter),
		InvoiceSeries: series,
		CustomerID:    customer.ID,
		CustomerName:  customer.Name,
		CustomerGSTIN: customer.GSTIN,
		PlaceOfSupply: customer.Address.StateCode,
		SupplyType:    string(supplyType),
		InvoiceType:   invoiceType,
		InvoiceDate:   input.InvoiceDate,
		DueDate:       dueDate,
		Lines:         linesFromInput(input.Lines),
		Terms:         input.Terms,
		Notes:         input.Notes,
		Status:        domain.StatusDraft,
		CreatedBy:     userID,
	}
	billing.ComputeInvoice(inv)

	if err := s.repo.Create(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

func (s *invoiceService) GetByID(ctx context.Context, companyID, invoiceID uuid.UUID) (*domain.Invoice, error) {
	return s.repo.GetByID(ctx, companyID, invoiceID)
}

func (s *invoiceService) List(ctx context.Context, companyID uuid.UUID, filter port.DocumentFilter) ([]domain.Invoice, int, error) {
	return s.repo.List(ctx, companyID, filter)
}

func (s *invoiceService) Update(ctx context.Context, companyID, invoiceID uuid.UUID, input UpdateInvoiceInput) (*domain.Invoice, error) {
	inv, err := s.repo.GetByID(ctx, companyID, invoiceID)
	if err != nil {
		return nil, err
	}
	if inv.Status == domain.StatusCancelled {
		return nil, domain.ErrDocumentCancelled
	}

	if input.InvoiceDate != nil {
		inv.InvoiceDate = *input.InvoiceDate
	}
	if input.DueDate != nil {
		inv.DueDate = *input.DueDate
	}
	if input.Lines != nil {
		if len(input.Lines) == 0 {
			return nil, domain.ErrNoLineItems
		}
		inv.Lines = linesFromInput(input.Lines)
	}
	if input.Terms != nil {
		inv.Terms = *input.Terms
	}
	if input.Notes != nil {
		inv.Notes = *input.Notes
	}

	billing.ComputeInvoice(inv)

	if err := s.repo.Update(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// MarkSent moves a zero-payment draft into Sent. Documents with
// payments already carry a payment-derived status.
func (s *invoiceService) MarkSent(ctx context.Context, companyID, invoiceID uuid.UUID) (*domain.Invoice, error) {
	inv, err := s.repo.GetByID(ctx, companyID, invoiceID)
	if err != nil {
		return nil, err
	}
	if inv.Status == domain.StatusCancelled {
		return nil, domain.ErrDocumentCancelled
	}
	if inv.Status == domain.StatusDraft {
		inv.Status = domain.StatusSent
		if err := s.repo.Update(ctx, inv); err != nil {
			return nil, err
		}
	}
	return inv, nil
}

func (s *invoiceService) RecordPayment(ctx context.Context, companyID, invoiceID uuid.UUID, input RecordPaymentInput) (*domain.Invoice, error) {
	inv, err := s.repo.GetByID(ctx, companyID, invoiceID)
	if err != nil {
		return nil, err
	}

	payment := domain.Payment{
		PaymentDate: input.PaymentDate,
		Amount:      input.Amount,
		Method:      input.Method,
		Reference:   input.Reference,
		TDSDeducted: input.TDSDeducted,
	}
	if err := billing.AddInvoicePayment(inv, payment); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

func (s *invoiceService) Cancel(ctx context.Context, companyID, invoiceID uuid.UUID) (*domain.Invoice, error) {
	inv, err := s.repo.GetByID(ctx, companyID, invoiceID)
	if err != nil {
		return nil, err
	}

	billing.CancelInvoice(inv)

	if err := s.repo.Update(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}
