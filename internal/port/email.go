package port

import (
	"context"

	"lekha/internal/domain"
)

// EmailSender defines the contract for sending emails.
type EmailSender interface {
	// SendPaymentReminder nudges a customer about an overdue invoice.
	SendPaymentReminder(ctx context.Context, toEmail, toName string, inv *domain.Invoice) error
	// SendStatement delivers a rendered account statement.
	SendStatement(ctx context.Context, toEmail, toName string, attachment []byte, fileName string) error
}
