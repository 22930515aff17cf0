package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/google/uuid"

	"lekha/internal/config"
	"lekha/internal/domain"
	"lekha/internal/gst"
	"lekha/internal/port"
)

// RegisterCompanyInput is the DTO for onboarding a new company together
// with its first admin user.
type RegisterCompanyInput struct {
	CompanyName  string `json:"company_name" binding:"required"`
	GSTIN        string `json:"gstin"`
	PAN          string `json:"pan"`
	TAN          string `json:"tan"`
	StateCode    string `json:"state_code"`
	AddressLine1 string `json:"address_line1"`
	City         string `json:"city"`
	State        string `json:"state"`
	Pincode      string `json:"pincode"`
	AdminEmail   string `json:"admin_email" binding:"required,email"`
	AdminName    string `json:"admin_name" binding:"required"`
	Password     string `json:"password" binding:"required,min=8"`
}

// UpdateCompanyInput is the DTO for updating company settings. Numbering
// counters are deliberately absent; they only move through document
// creation.
type UpdateCompanyInput struct {
	Name           *string `json:"name"`
	GSTIN          *string `json:"gstin"`
	PAN            *string `json:"pan"`
	TAN            *string `json:"tan"`
	StateCode      *string `json:"state_code"`
	AddressLine1   *string `json:"address_line1"`
	City           *string `json:"city"`
	Pincode        *string `json:"pincode"`
	InvoiceSeries  *string `json:"invoice_series"`
	PurchaseSeries *string `json:"purchase_series"`
}

// RegisterCompanyOutput contains the results of a successful registration.
type RegisterCompanyOutput struct {
	Company *domain.Company `json:"company"`
	User    *domain.User    `json:"user"`
	Tokens  *TokenPair      `json:"tokens"`
}

// CompanyService defines the company onboarding and settings contract.
type CompanyService interface {
	Register(ctx context.Context, input RegisterCompanyInput) (*RegisterCompanyOutput, error)
	GetByID(ctx context.Context, companyID uuid.UUID) (*domain.Company, error)
	Update(ctx context.Context, companyID uuid.UUID, input UpdateCompanyInput) (*domain.Company, error)
}

type companyService struct {
	companyRepo port.CompanyRepository
	userRepo    port.UserRepository
	authSvc     AuthService
	numbering   config.NumberingConfig
}

// NewCompanyService creates a new CompanyService implementation.
func NewCompanyService(
	companyRepo port.CompanyRepository,
	userRepo port.UserRepository,
	authSvc AuthService,
	numbering config.NumberingConfig,
) CompanyService {
	return &companyService{
		companyRepo: companyRepo,
		userRepo:    userRepo,
		authSvc:     authSvc,
		numbering:   numbering,
	}
}

func (s *companyService) Register(ctx context.Context, input RegisterCompanyInput) (*RegisterCompanyOutput, error) {
	stateCode := input.StateCode
	if input.GSTIN != "" {
		if !gst.ValidGSTIN(input.GSTIN) {
			return nil, domain.ErrInvalidGSTIN
		}
		code, _ := gst.StateCodeFromGSTIN(input.GSTIN)
		if stateCode == "" {
			stateCode = code
		} else if stateCode != code {
			return nil, domain.ErrInvalidStateCode
		}
	}
	if stateCode != "" && gst.StateName(stateCode) == "" {
		return nil, domain.ErrInvalidStateCode
	}

	company := &domain.Company{
		Name:           input.CompanyName,
		GSTIN:          input.GSTIN,
		PAN:            input.PAN,
		TAN:            input.TAN,
		StateCode:      stateCode,
		AddressLine1:   input.AddressLine1,
		City:           input.City,
		State:          gst.StateName(stateCode),
		Pincode:        input.Pincode,
		InvoiceSeries:  s.numbering.InvoiceSeries,
		PurchaseSeries: s.numbering.PurchaseSeries,
		IsActive:       true,
	}
	if err := s.companyRepo.Create(ctx, company); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), 12)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &domain.User{
		CompanyID:    company.ID,
		Email:        input.AdminEmail,
		PasswordHash: string(hash),
		FullName:     input.AdminName,
		Role:         domain.RoleAdmin,
		IsActive:     true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err // ErrDuplicateEmail propagates naturally
	}

	tokens, err := s.authSvc.Login(ctx, LoginInput{
		Email:    input.AdminEmail,
		Password: input.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("generating tokens: %w", err)
	}

	return &RegisterCompanyOutput{
		Company: company,
		User:    user,
		Tokens:  tokens,
	}, nil
}

func (s *companyService) GetByID(ctx context.Context, companyID uuid.UUID) (*domain.Company, error) {
	return s.companyRepo.GetByID(ctx, companyID)
}

func (s *companyService) Update(ctx context.Context, companyID uuid.UUID, input UpdateCompanyInput) (*domain.Company, error) {
	company, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	if input.GSTIN != nil && *input.GSTIN != "" {
		if !gst.ValidGSTIN(*input.GSTIN) {
			return nil, domain.ErrInvalidGSTIN
		}
		code, _ := gst.StateCodeFromGSTIN(*input.GSTIN)
		company.GSTIN = *input.GSTIN
		company.StateCode = code
		company.State = gst.StateName(code)
	}
	if input.Name != nil {
		company.Name = *input.Name
	}
	if input.PAN != nil {
		company.PAN = *input.PAN
	}
	if input.TAN != nil {
		company.TAN = *input.TAN
	}
	if input.StateCode != nil && *input.StateCode != "" {
		if gst.StateName(*input.StateCode) == "" {
			return nil, domain.ErrInvalidStateCode
		}
		company.StateCode = *input.StateCode
		company.State = gst.StateName(*input.StateCode)
	}
	if input.AddressLine1 != nil {
		company.AddressLine1 = *input.AddressLine1
	}
	if input.City != nil {
		company.City = *input.City
	}
	if input.Pincode != nil {
		company.Pincode = *input.Pincode
	}
	if input.InvoiceSeries != nil && *input.InvoiceSeries != "" {
		company.InvoiceSeries = *input.InvoiceSeries
	}
	if input.PurchaseSeries != nil && *input.PurchaseSeries != "" {
		company.PurchaseSeries = *input.PurchaseSeries
	}

	if err := s.companyRepo.Update(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}
