package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"lekha/internal/domain"
	"lekha/internal/port"
)

type companyRepo struct {
	db *sqlx.DB
}

// NewCompanyRepo creates a new PostgreSQL-backed CompanyRepository.
func NewCompanyRepo(db *sqlx.DB) port.CompanyRepository {
	return &companyRepo{db: db}
}

func (r *companyRepo) Create(ctx context.Context, company *domain.Company) error {
	company.ID = uuid.New()
	now := time.Now().UTC()
	company.CreatedAt = now
	company.UpdatedAt = now

	query := `INSERT INTO companies (
		id, name, gstin, pan, tan, state_code,
		address_line1, city, state, pincode,
		invoice_series, invoice_counter, purchase_series, purchase_counter,
		is_active, created_at, updated_at
	) VALUES (
		$1, $2, $3, $4, $5, $6,
		$7, $8, $9, $10,
		$11, $12, $13, $14,
		$15, $16, $17
	)`

	_, err := r.db.ExecContext(ctx, query,
		company.ID, company.Name, company.GSTIN, company.PAN, company.TAN, company.StateCode,
		company.AddressLine1, company.City, company.State, company.Pincode,
		company.InvoiceSeries, company.InvoiceCounter, company.PurchaseSeries, company.PurchaseCounter,
		company.IsActive, company.CreatedAt, company.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") && strings.Contains(err.Error(), "gstin") {
			return domain.ErrDuplicateGSTIN
		}
		return fmt.Errorf("companyRepo.Create: %w", err)
	}
	return nil
}

func (r *companyRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	var company domain.Company
	err := r.db.GetContext(ctx, &company, "SELECT * FROM companies WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("companyRepo.GetByID: %w", err)
	}
	return &company, nil
}

func (r *companyRepo) Update(ctx context.Context, company *domain.Company) error {
	company.UpdatedAt = time.Now().UTC()
	query := `UPDATE companies SET
		name = $1, gstin = $2, pan = $3, tan = $4, state_code = $5,
		address_line1 = $6, city = $7, state = $8, pincode = $9,
		invoice_series = $10, purchase_series = $11,
		is_active = $12, updated_at = $13
		WHERE id = $14`
	result, err := r.db.ExecContext(ctx, query,
		company.Name, company.GSTIN, company.PAN, company.TAN, company.StateCode,
		company.AddressLine1, company.City, company.State, company.Pincode,
		company.InvoiceSeries, company.PurchaseSeries,
		company.IsActive, company.UpdatedAt, company.ID)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") && strings.Contains(err.Error(), "gstin") {
			return domain.ErrDuplicateGSTIN
		}
		return fmt.Errorf("companyRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// NextInvoiceNumber bumps the counter in a single UPDATE so that two
// concurrent creations can never observe the same value.
func (r *companyRepo) NextInvoiceNumber(ctx context.Context, companyID uuid.UUID) (string, int64, error) {
	var row struct {
		Series  string `db:"invoice_series"`
		Counter int64  `db:"invoice_counter"`
	}
	query := `UPDATE companies
		SET invoice_counter = invoice_counter + 1, updated_at = $1
		WHERE id = $2
		RETURNING invoice_series, invoice_counter`
	err := r.db.GetContext(ctx, &row, query, time.Now().UTC(), companyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", 0, domain.ErrNotFound
		}
		return "", 0, fmt.Errorf("companyRepo.NextInvoiceNumber: %w", err)
	}
	return row.Series, row.Counter, nil
}

func (r *companyRepo) NextPurchaseNumber(ctx context.Context, companyID uuid.UUID) (string, int64, error) {
	var row struct {
		Series  string `db:"purchase_series"`
		Counter int64  `db:"purchase_counter"`
	}
	query := `UPDATE companies
		SET purchase_counter = purchase_counter + 1, updated_at = $1
		WHERE id = $2
		RETURNING purchase_series, purchase_counter`
	err := r.db.GetContext(ctx, &row, query, time.Now().UTC(), companyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", 0, domain.ErrNotFound
		}
		return "", 0, fmt.Errorf("companyRepo.NextPurchaseNumber: %w", err)
	}
	return row.Series, row.Counter, nil
}
