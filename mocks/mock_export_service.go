package mocks

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockExportService is a mock implementation of service.ExportService.
type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) CustomersCSV(ctx context.Context, companyID uuid.UUID, w io.Writer) error {
	args := m.Called(ctx, companyID, w)
	return args.Error(0)
}

func (m *MockExportService) InvoicesCSV(ctx context.Context, companyID uuid.UUID, from, to time.Time, w io.Writer) error {
	args := m.Called(ctx, companyID, from, to, w)
	return args.Error(0)
}

func (m *MockExportService) StatementXLSX(ctx context.Context, companyID, customerID uuid.UUID, from, to time.Time, w io.Writer) error {
	args := m.Called(ctx, companyID, customerID, from, to, w)
	return args.Error(0)
}
