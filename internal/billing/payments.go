package billing

import (
	"time"

	"lekha/internal/domain"
	"lekha/internal/tds"
)

// AddInvoicePayment appends a payment to an invoice and recomputes its
// derived fields. Payments against a cancelled document are rejected.
func AddInvoicePayment(inv *domain.Invoice, p domain.Payment) error {
	if inv.Status == domain.StatusCancelled {
		return domain.ErrDocumentCancelled
	}
	if p.Amount <= 0 {
		return domain.ErrInvalidPayment
	}
	inv.Payments = append(inv.Payments, p)
	ComputeInvoice(inv)
	return nil
}

// AddPurchasePayment appends a payment to a purchase bill and
// recomputes its derived fields.
func AddPurchasePayment(pur *domain.Purchase, p domain.Payment, payeeType tds.PayeeType, hasPAN bool) error {
	if pur.Status == domain.StatusCancelled {
		return domain.ErrDocumentCancelled
	}
	if p.Amount <= 0 {
		return domain.ErrInvalidPayment
	}
	pur.Payments = append(pur.Payments, p)
	ComputePurchase(pur, payeeType, hasPAN)
	return nil
}

// CancelInvoice moves an invoice to the terminal Cancelled state.
// Cancelled documents are excluded from all subsequent aggregates.
func CancelInvoice(inv *domain.Invoice) {
	inv.Status = domain.StatusCancelled
}

// CancelPurchase moves a purchase bill to the terminal Cancelled state.
func CancelPurchase(p *domain.Purchase) {
	p.Status = domain.StatusCancelled
}

// IsOverdue reports whether a document should be labelled overdue at
// the given evaluation time. Overdue is a view-time derivation over
// Sent and Partially Paid, never a stored state.
func IsOverdue(status domain.DocumentStatus, dueDate, now time.Time) bool {
	if status != domain.StatusSent && status != domain.StatusPartiallyPaid {
		return false
	}
	return !dueDate.IsZero() && dueDate.Before(now)
}
