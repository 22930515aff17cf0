package port

import (
	"context"

	"github.com/google/uuid"

	"lekha/internal/domain"
)

// CompanyRepository defines the contract for company persistence. The
// document counters live on the company row and are incremented there
// atomically, so concurrent creations can never share a number.
type CompanyRepository interface {
	Create(ctx context.Context, company *domain.Company) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error)
	Update(ctx context.Context, company *domain.Company) error
	// NextInvoiceNumber increments the invoice counter and returns its
	// new value together with the configured series prefix.
	NextInvoiceNumber(ctx context.Context, companyID uuid.UUID) (string, int64, error)
	// NextPurchaseNumber is the purchase-bill counterpart.
	NextPurchaseNumber(ctx context.Context, companyID uuid.UUID) (string, int64, error)
}

// UserRepository defines the contract for user persistence. All query
// methods include companyID to enforce tenant isolation at the data
// layer.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, companyID, userID uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID, offset, limit int) ([]domain.User, int, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, companyID, userID uuid.UUID) error
}

// PartyFilter narrows party listings.
type PartyFilter struct {
	Search string
	Status domain.PartyStatus
	Offset int
	Limit  int
}

// CustomerRepository defines the contract for customer persistence.
type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, companyID, customerID uuid.UUID) (*domain.Customer, error)
	GetByGSTIN(ctx context.Context, companyID uuid.UUID, gstin string) (*domain.Customer, error)
	List(ctx context.Context, companyID uuid.UUID, filter PartyFilter) ([]domain.Customer, int, error)
	Update(ctx context.Context, customer *domain.Customer) error
	// Deactivate flips the party status; rows are never deleted.
	Deactivate(ctx context.Context, companyID, customerID uuid.UUID) error
}

// ItemRepository defines the contract for catalogue items.
type ItemRepository interface {
	Create(ctx context.Context, item *domain.Item) error
	GetByID(ctx context.Context, companyID, itemID uuid.UUID) (*domain.Item, error)
	List(ctx context.Context, companyID uuid.UUID, search string, offset, limit int) ([]domain.Item, int, error)
	Update(ctx context.Context, item *domain.Item) error
	Deactivate(ctx context.Context, companyID, itemID uuid.UUID) error
}

// VendorRepository defines the contract for vendor persistence.
type VendorRepository interface {
	Create(ctx context.Context, vendor *domain.Vendor) error
	GetByID(ctx context.Context, companyID, vendorID uuid.UUID) (*domain.Vendor, error)
	GetByGSTIN(ctx context.Context, companyID uuid.UUID, gstin string) (*domain.Vendor, error)
	List(ctx context.Context, companyID uuid.UUID, filter PartyFilter) ([]domain.Vendor, int, error)
	Update(ctx context.Context, vendor *domain.Vendor) error
	Deactivate(ctx context.Context, companyID, vendorID uuid.UUID) error
}
