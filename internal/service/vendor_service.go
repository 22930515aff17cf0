package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"lekha/internal/domain"
	"lekha/internal/port"
	"lekha/internal/tds"
)

// CreateVendorInput is the DTO for creating a vendor.
type CreateVendorInput struct {
	Name           string         `json:"name" binding:"required"`
	Email          string         `json:"email" binding:"omitempty,email"`
	Phone          string         `json:"phone"`
	GSTIN          string         `json:"gstin"`
	PAN            string         `json:"pan"`
	Address        domain.Address `json:"address"`
	PayeeType      string         `json:"payee_type"`
	TDSCategory    string         `json:"tds_category"`
	CreditDays     int            `json:"credit_days"`
	OpeningBalance float64        `json:"opening_balance"`
}

// UpdateVendorInput is the DTO for updating a vendor.
type UpdateVendorInput struct {
	Name        *string         `json:"name"`
	Email       *string         `json:"email"`
	Phone       *string         `json:"phone"`
	GSTIN       *string         `json:"gstin"`
	PAN         *string         `json:"pan"`
	Address     *domain.Address `json:"address"`
	PayeeType   *string         `json:"payee_type"`
	TDSCategory *string         `json:"tds_category"`
	CreditDays  *int            `json:"credit_days"`
}

// VendorService defines the vendor management contract.
type VendorService interface {
	Create(ctx context.Context, companyID, userID uuid.UUID, input CreateVendorInput) (*domain.Vendor, error)
	GetByID(ctx context.Context, companyID, vendorID uuid.UUID) (*domain.Vendor, error)
	List(ctx context.Context, companyID uuid.UUID, filter port.PartyFilter) ([]domain.Vendor, int, error)
	Update(ctx context.Context, companyID, vendorID uuid.UUID, input UpdateVendorInput) (*domain.Vendor, error)
	Deactivate(ctx context.Context, companyID, vendorID uuid.UUID) error
	// TDSThreshold checks a prospective payment against the threshold
	// of the vendor's TDS category, with the cumulative amount replayed
	// from the vendor's bills in the financial year of asOf.
	TDSThreshold(ctx context.Context, companyID, vendorID uuid.UUID, currentAmount float64, asOf time.Time) (*tds.ThresholdResult, error)
}

type vendorService struct {
	repo         port.VendorRepository
	purchaseRepo port.PurchaseRepository
}

// NewVendorService creates a new VendorService implementation.
func NewVendorService(repo port.VendorRepository, purchaseRepo port.PurchaseRepository) VendorService {
	return &vendorService{repo: repo, purchaseRepo: purchaseRepo}
}

func (s *vendorService) Create(ctx context.Context, companyID, userID uuid.UUID, input CreateVendorInput) (*domain.Vendor, error) {
	if err := validateParty(input.GSTIN, input.PAN, &input.Address); err != nil {
		return nil, err
	}

	if input.GSTIN != "" {
		existing, err := s.repo.GetByGSTIN(ctx, companyID, input.GSTIN)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("vendor.Create: %w", err)
		}
		if existing != nil {
			return nil, domain.ErrDuplicateGSTIN
		}
	}

	payeeType := input.PayeeType
	if payeeType == "" {
		payeeType = string(tds.PayeeIndividual)
	}

	vendor := &domain.Vendor{
		CompanyID:      companyID,
		Name:           input.Name,
		Email:          input.Email,
		Phone:          input.Phone,
		GSTIN:          input.GSTIN,
		PAN:            input.PAN,
		Address:        input.Address,
		PayeeType:      payeeType,
		TDSCategory:    input.TDSCategory,
		CreditDays:     input.CreditDays,
		OpeningBalance: input.OpeningBalance,
		Status:         domain.PartyActive,
		CreatedBy:      userID,
	}
	if err := s.repo.Create(ctx, vendor); err != nil {
		return nil, err
	}
	return vendor, nil
}

func (s *vendorService) GetByID(ctx context.Context, companyID, vendorID uuid.UUID) (*domain.Vendor, error) {
	return s.repo.GetByID(ctx, companyID, vendorID)
}

func (s *vendorService) List(ctx context.Context, companyID uuid.UUID, filter port.PartyFilter) ([]domain.Vendor, int, error) {
	return s.repo.List(ctx, companyID, filter)
}

func (s *vendorService) Update(ctx context.Context, companyID, vendorID uuid.UUID, input UpdateVendorInput) (*domain.Vendor, error) {
	vendor, err := s.repo.GetByID(ctx, companyID, vendorID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		vendor.Name = *input.Name
	}
	if input.Email != nil {
		vendor.Email = *input.Email
	}
	if input.Phone != nil {
		vendor.Phone = *input.Phone
	}
	if input.GSTIN != nil {
		vendor.GSTIN = *input.GSTIN
	}
	if input.PAN != nil {
		vendor.PAN = *input.PAN
	}
	if input.Address != nil {
		vendor.Address = *input.Address
	}
	if input.PayeeType != nil {
		vendor.PayeeType = *input.PayeeType
	}
	if input.TDSCategory != nil {
		vendor.TDSCategory = *input.TDSCategory
	}
	if input.CreditDays != nil {
		vendor.CreditDays = *input.CreditDays
	}

	if err := validateParty(vendor.GSTIN, vendor.PAN, &vendor.Address); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, vendor); err != nil {
		return nil, err
	}
	return vendor, nil
}

func (s *vendorService) Deactivate(ctx context.Context, companyID, vendorID uuid.UUID) error {
	return s.repo.Deactivate(ctx, companyID, vendorID)
}

func (s *vendorService) TDSThreshold(ctx context.Context, companyID, vendorID uuid.UUID, currentAmount float64, asOf time.Time) (*tds.ThresholdResult, error) {
	vendor, err := s.repo.GetByID(ctx, companyID, vendorID)
	if err != nil {
		return nil, err
	}

	quarters := tds.Quarters(tds.FinancialYearOf(asOf))
	bills, err := s.purchaseRepo.ListByVendor(ctx, companyID, vendorID,
		quarters[0].StartDate, quarters[3].EndDate)
	if err != nil {
		return nil, fmt.Errorf("vendor.TDSThreshold: %w", err)
	}

	var cumulative float64
	for _, b := range bills {
		if b.Status == domain.StatusCancelled {
			continue
		}
		cumulative += b.GrandTotal
	}

	result := tds.CheckCumulativeThreshold(vendor.TDSCategory, currentAmount, cumulative)
	return &result, nil
}
