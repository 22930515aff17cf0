package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"lekha/internal/domain"
)

// MockCompanyRepo is a mock implementation of port.CompanyRepository.
type MockCompanyRepo struct {
	mock.Mock
}

func (m *MockCompanyRepo) Create(ctx context.Context, company *domain.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *MockCompanyRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyRepo) Update(ctx context.Context, company *domain.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *MockCompanyRepo) NextInvoiceNumber(ctx context.Context, companyID uuid.UUID) (string, int64, error) {
	args := m.Called(ctx, companyID)
	return args.String(0), args.Get(1).(int64), args.Error(2)
}

func (m *MockCompanyRepo) NextPurchaseNumber(ctx context.Context, companyID uuid.UUID) (string, int64, error) {
	args := m.Called(ctx, companyID)
	return args.String(0), args.Get(1).(int64), args.Error(2)
}
