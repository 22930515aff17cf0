package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"lekha/internal/domain"
)

// MockEmailSender is a mock implementation of port.EmailSender.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendPaymentReminder(ctx context.Context, toEmail, toName string, inv *domain.Invoice) error {
	args := m.Called(ctx, toEmail, toName, inv)
	return args.Error(0)
}

func (m *MockEmailSender) SendStatement(ctx context.Context, toEmail, toName string, attachment []byte, fileName string) error {
	args := m.Called(ctx, toEmail, toName, attachment, fileName)
	return args.Error(0)
}
