package noop

import (
	"context"
	"log"

	"lekha/internal/domain"
	"lekha/internal/port"
)

type noopSender struct{}

// NewNoopSender creates a no-op EmailSender that logs instead of
// sending, for development and tests.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (s *noopSender) SendPaymentReminder(_ context.Context, toEmail, toName string, inv *domain.Invoice) error {
	log.Printf("[NOOP EMAIL] Payment reminder for %s (%s): invoice %s, balance %.2f",
		toName, toEmail, inv.InvoiceNumber, inv.BalanceAmount)
	return nil
}

func (s *noopSender) SendStatement(_ context.Context, toEmail, toName string, attachment []byte, fileName string) error {
	log.Printf("[NOOP EMAIL] Statement for %s (%s): %s (%d bytes)",
		toName, toEmail, fileName, len(attachment))
	return nil
}
