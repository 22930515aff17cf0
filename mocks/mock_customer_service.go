package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"lekha/internal/domain"
	"lekha/internal/ledger"
	"lekha/internal/port"
	"lekha/internal/service"
)

// MockCustomerService is a mock implementation of service.CustomerService.
type MockCustomerService struct {
	mock.Mock
}

func (m *MockCustomerService) Create(ctx context.Context, companyID, userID uuid.UUID, input service.CreateCustomerInput) (*domain.Customer, error) {
	args := m.Called(ctx, companyID, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerService) GetByID(ctx context.Context, companyID, customerID uuid.UUID) (*domain.Customer, error) {
	args := m.Called(ctx, companyID, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerService) List(ctx context.Context, companyID uuid.UUID, filter port.PartyFilter) ([]domain.Customer, int, error) {
	args := m.Called(ctx, companyID, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Customer), args.Int(1), args.Error(2)
}

func (m *MockCustomerService) Update(ctx context.Context, companyID, customerID uuid.UUID, input service.UpdateCustomerInput) (*domain.Customer, error) {
	args := m.Called(ctx, companyID, customerID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerService) Deactivate(ctx context.Context, companyID, customerID uuid.UUID) error {
	args := m.Called(ctx, companyID, customerID)
	return args.Error(0)
}

func (m *MockCustomerService) Ledger(ctx context.Context, companyID, customerID uuid.UUID, from, to time.Time) (*ledger.Statement, error) {
	args := m.Called(ctx, companyID, customerID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Statement), args.Error(1)
}

func (m *MockCustomerService) Statement(ctx context.Context, companyID, customerID uuid.UUID, now time.Time) (*ledger.Report, error) {
	args := m.Called(ctx, companyID, customerID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Report), args.Error(1)
}
