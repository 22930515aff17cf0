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
	"lekha/internal/tds"
)

// CreatePurchaseInput is the DTO for recording a vendor bill.
type CreatePurchaseInput struct {
	VendorID         uuid.UUID   `json:"vendor_id" binding:"required"`
	VendorBillNumber string      `json:"vendor_bill_number"`
	BillDate         time.Time   `json:"bill_date" binding:"required"`
	DueDate          time.Time   `json:"due_date"`
	Lines            []LineInput `json:"items" binding:"required,min=1,dive"`
	// TDSCategory overrides the vendor default when set.
	TDSCategory *string `json:"tds_category"`
	ITCClaimed  bool    `json:"itc_claimed"`
	Notes       string  `json:"notes"`
}

// UpdatePurchaseInput is the DTO for updating a purchase bill.
type UpdatePurchaseInput struct {
	VendorBillNumber *string     `json:"vendor_bill_number"`
	BillDate         *time.Time  `json:"bill_date"`
	DueDate          *time.Time  `json:"due_date"`
	Lines            []LineInput `json:"items"`
	TDSCategory      *string     `json:"tds_category"`
	ITCClaimed       *bool       `json:"itc_claimed"`
	Notes            *string     `json:"notes"`
}

// PurchaseService defines the purchase-bill management contract.
type PurchaseService interface {
	Create(ctx context.Context, companyID, userID uuid.UUID, input CreatePurchaseInput) (*domain.Purchase, error)
	GetByID(ctx context.Context, companyID, purchaseID uuid.UUID) (*domain.Purchase, error)
	List(ctx context.Context, companyID uuid.UUID, filter port.DocumentFilter) ([]domain.Purchase, int, error)
	Update(ctx context.Context, companyID, purchaseID uuid.UUID, input UpdatePurchaseInput) (*domain.Purchase, error)
	MarkSent(ctx context.Context, companyID, purchaseID uuid.UUID) (*domain.Purchase, error)
	RecordPayment(ctx context.Context, companyID, purchaseID uuid.UUID, input RecordPaymentInput) (*domain.Purchase, error)
	Cancel(ctx context.Context, companyID, purchaseID uuid.UUID) (*domain.Purchase, error)
}

type purchaseService struct {
	repo        port.PurchaseRepository
	vendorRepo  port.VendorRepository
	companyRepo port.CompanyRepository
}

// NewPurchaseService creates a new PurchaseService implementation.
func NewPurchaseService(
	repo port.PurchaseRepository,
	vendorRepo port.VendorRepository,
	companyRepo port.CompanyRepository,
) PurchaseService {
	return &purchaseService{repo: repo, vendorRepo: vendorRepo, companyRepo: companyRepo}
}

// vendorParticulars resolves the payee facts TDS computation needs.
func vendorParticulars(v *domain.Vendor) (tds.PayeeType, bool) {
	payeeType := tds.PayeeType(v.PayeeType)
	if payeeType == "" {
		payeeType = tds.PayeeIndividual
	}
	return payeeType, tds.ValidPAN(v.PAN)
}

func (s *purchaseService) Create(ctx context.Context, companyID, userID uuid.UUID, input CreatePurchaseInput) (*domain.Purchase, error) {
	if len(input.Lines) == 0 {
		return nil, domain.ErrNoLineItems
	}

	company, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	vendor, err := s.vendorRepo.GetByID(ctx, companyID, input.VendorID)
	if err != nil {
		return nil, err
	}

	// For an inward supply the vendor is the supplier.
	supplyType := gst.GetSupplyType(vendor.Address.StateCode, company.StateCode)

	tdsCategory := vendor.TDSCategory
	if input.TDSCategory != nil {
		tdsCategory = *input.TDSCategory
	}

	dueDate := input.DueDate
	if dueDate.IsZero() {
		dueDate = input.BillDate.AddDate(0, 0, vendor.CreditDays)
	}

	series, counter, err := s.companyRepo.NextPurchaseNumber(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("purchase.Create: %w", err)
	}

	p := &domain.Purchase{
		CompanyID:        companyID,
		BillNumber:       billing.DocumentNumber(series, counter),
		VendorBillNumber: input.VendorBillNumber,
		VendorID:         vendor.ID,
		VendorName:       vendor.Name,
		VendorGSTIN:      vendor.GSTIN,
		SupplyType:       string(supplyType),
		BillDate:         input.BillDate,
		DueDate:          dueDate,
		Lines:            linesFromInput(input.Lines),
		TDSCategory:      tdsCategory,
		ITCClaimed:       input.ITCClaimed,
		Notes:            input.Notes,
		Status:           domain.StatusDraft,
		CreatedBy:        userID,
	}
	payeeType, hasPAN := vendorParticulars(vendor)
	billing.ComputePurchase(p, payeeType, hasPAN)

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *purchaseService) GetByID(ctx context.Context, companyID, purchaseID uuid.UUID) (*domain.Purchase, error) {
	return s.repo.GetByID(ctx, companyID, purchaseID)
}

func (s *purchaseService) List(ctx context.Context, companyID uuid.UUID, filter port.DocumentFilter) ([]domain.Purchase, int, error) {
	return s.repo.List(ctx, companyID, filter)
}

func (s *purchaseService) Update(ctx context.Context, companyID, purchaseID uuid.UUID, input UpdatePurchaseInput) (*domain.Purchase, error) {
	p, err := s.repo.GetByID(ctx, companyID, purchaseID)
	if err != nil {
		return nil, err
	}
	if p.Status == domain.StatusCancelled {
		return nil, domain.ErrDocumentCancelled
	}

	vendor, err := s.vendorRepo.GetByID(ctx, companyID, p.VendorID)
	if err != nil {
		return nil, err
	}

	if input.VendorBillNumber != nil {
		p.VendorBillNumber = *input.VendorBillNumber
	}
	if input.BillDate != nil {
		p.BillDate = *input.BillDate
	}
	if input.DueDate != nil {
		p.DueDate = *input.DueDate
	}
	if input.Lines != nil {
		if len(input.Lines) == 0 {
			return nil, domain.ErrNoLineItems
		}
		p.Lines = linesFromInput(input.Lines)
	}
	if input.TDSCategory != nil {
		p.TDSCategory = *input.TDSCategory
	}
	if input.ITCClaimed != nil {
		p.ITCClaimed = *input.ITCClaimed
	}
	if input.Notes != nil {
		p.Notes = *input.Notes
	}

	payeeType, hasPAN := vendorParticulars(vendor)
	billing.ComputePurchase(p, payeeType, hasPAN)

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *purchaseService) MarkSent(ctx context.Context, companyID, purchaseID uuid.UUID) (*domain.Purchase, error) {
	p, err := s.repo.GetByID(ctx, companyID, purchaseID)
	if err != nil {
		return nil, err
	}
	if p.Status == domain.StatusCancelled {
		return nil, domain.ErrDocumentCancelled
	}
	if p.Status == domain.StatusDraft {
		p.Status = domain.StatusSent
		if err := s.repo.Update(ctx, p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (s *purchaseService) RecordPayment(ctx context.Context, companyID, purchaseID uuid.UUID, input RecordPaymentInput) (*domain.Purchase, error) {
	p, err := s.repo.GetByID(ctx, companyID, purchaseID)
	if err != nil {
		return nil, err
	}

	vendor, err := s.vendorRepo.GetByID(ctx, companyID, p.VendorID)
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
	payeeType, hasPAN := vendorParticulars(vendor)
	if err := billing.AddPurchasePayment(p, payment, payeeType, hasPAN); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *purchaseService) Cancel(ctx context.Context, companyID, purchaseID uuid.UUID) (*domain.Purchase, error) {
	p, err := s.repo.GetByID(ctx, companyID, purchaseID)
	if err != nil {
		return nil, err
	}

	billing.CancelPurchase(p)

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
