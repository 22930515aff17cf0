package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"lekha/internal/domain"
)

// DocumentFilter narrows invoice and purchase listings.
type DocumentFilter struct {
	Status   domain.DocumentStatus
	PartyID  uuid.UUID
	DateFrom time.Time
	DateTo   time.Time
	Offset   int
	Limit    int
}

// InvoiceRepository defines the contract for invoice persistence. The
// repository stores derived fields verbatim as the billing engine
// produced them; it performs no computation of its own.
type InvoiceRepository interface {
	Create(ctx context.Context, inv *domain.Invoice) error
	GetByID(ctx context.Context, companyID, invoiceID uuid.UUID) (*domain.Invoice, error)
	List(ctx context.Context, companyID uuid.UUID, filter DocumentFilter) ([]domain.Invoice, int, error)
	// ListByCustomer returns the customer's invoices in ascending
	// invoice-date order, the order ledger replay requires.
	ListByCustomer(ctx context.Context, companyID, customerID uuid.UUID, from, to time.Time) ([]domain.Invoice, error)
	// ListOutstanding returns invoices with a positive balance in Sent
	// or Partially Paid, ascending by invoice date.
	ListOutstanding(ctx context.Context, companyID, customerID uuid.UUID) ([]domain.Invoice, error)
	// ListByPeriod returns every invoice dated within [from, to],
	// ascending, for report aggregation.
	ListByPeriod(ctx context.Context, companyID uuid.UUID, from, to time.Time) ([]domain.Invoice, error)
	Update(ctx context.Context, inv *domain.Invoice) error
}

// PurchaseRepository defines the contract for purchase-bill
// persistence.
type PurchaseRepository interface {
	Create(ctx context.Context, p *domain.Purchase) error
	GetByID(ctx context.Context, companyID, purchaseID uuid.UUID) (*domain.Purchase, error)
	List(ctx context.Context, companyID uuid.UUID, filter DocumentFilter) ([]domain.Purchase, int, error)
	ListByVendor(ctx context.Context, companyID, vendorID uuid.UUID, from, to time.Time) ([]domain.Purchase, error)
	ListByPeriod(ctx context.Context, companyID uuid.UUID, from, to time.Time) ([]domain.Purchase, error)
	Update(ctx context.Context, p *domain.Purchase) error
}

// AttachmentRepository defines the contract for attachment metadata.
type AttachmentRepository interface {
	Create(ctx context.Context, a *domain.Attachment) error
	GetByID(ctx context.Context, companyID, attachmentID uuid.UUID) (*domain.Attachment, error)
	ListByDocument(ctx context.Context, companyID, documentID uuid.UUID) ([]domain.Attachment, error)
	Delete(ctx context.Context, companyID, attachmentID uuid.UUID) error
}
