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

type vendorRepo struct {
	db *sqlx.DB
}

// NewVendorRepo creates a new PostgreSQL-backed VendorRepository.
func NewVendorRepo(db *sqlx.DB) port.VendorRepository {
	return &vendorRepo{db: db}
}

func (r *vendorRepo) Create(ctx context.Context, vendor *domain.Vendor) error {
	vendor.ID = uuid.New()
	now := time.Now().UTC()
	vendor.CreatedAt = now
	vendor.UpdatedAt = now

	query := `INSERT INTO vendors (
		id, company_id, name, email, phone, gstin, pan, address,
		payee_type, tds_category, credit_days, opening_balance,
		status, created_by, created_at, updated_at
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8,
		$9, $10, $11, $12,
		$13, $14, $15, $16
	)`

	_, err := r.db.ExecContext(ctx, query,
		vendor.ID, vendor.CompanyID, vendor.Name, vendor.Email, vendor.Phone,
		vendor.GSTIN, vendor.PAN, vendor.Address,
		vendor.PayeeType, vendor.TDSCategory, vendor.CreditDays, vendor.OpeningBalance,
		vendor.Status, vendor.CreatedBy, vendor.CreatedAt, vendor.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") && strings.Contains(err.Error(), "gstin") {
			return domain.ErrDuplicateGSTIN
		}
		return fmt.Errorf("vendorRepo.Create: %w", err)
	}
	return nil
}

func (r *vendorRepo) GetByID(ctx context.Context, companyID, vendorID uuid.UUID) (*domain.Vendor, error) {
	var vendor domain.Vendor
	err := r.db.GetContext(ctx, &vendor,
		"SELECT * FROM vendors WHERE id = $1 AND company_id = $2", vendorID, companyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("vendorRepo.GetByID: %w", err)
	}
	return &vendor, nil
}

func (r *vendorRepo) GetByGSTIN(ctx context.Context, companyID uuid.UUID, gstin string) (*domain.Vendor, error) {
	var vendor domain.Vendor
	err := r.db.GetContext(ctx, &vendor,
		"SELECT * FROM vendors WHERE company_id = $1 AND gstin = $2", companyID, gstin)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("vendorRepo.GetByGSTIN: %w", err)
	}
	return &vendor, nil
}

func (r *vendorRepo) List(ctx context.Context, companyID uuid.UUID, filter port.PartyFilter) ([]domain.Vendor, int, error) {
	where := []string{"company_id = $1"}
	args := []any{companyID}

	if filter.Status != "" {
		args = append(args, filter.Status)
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		where = append(where, fmt.Sprintf("(name ILIKE $%d OR gstin ILIKE $%d)", len(args), len(args)))
	}
	whereClause := strings.Join(where, " AND ")

	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM vendors WHERE "+whereClause, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("vendorRepo.List count: %w", err)
	}

	args = append(args, filter.Limit, filter.Offset)
	query := fmt.Sprintf("SELECT * FROM vendors WHERE %s ORDER BY name ASC LIMIT $%d OFFSET $%d",
		whereClause, len(args)-1, len(args))

	var vendors []domain.Vendor
	err = r.db.SelectContext(ctx, &vendors, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("vendorRepo.List: %w", err)
	}
	return vendors, total, nil
}

func (r *vendorRepo) Update(ctx context.Context, vendor *domain.Vendor) error {
	vendor.UpdatedAt = time.Now().UTC()
	query := `UPDATE vendors SET
		name = $1, email = $2, phone = $3, gstin = $4, pan = $5, address = $6,
		payee_type = $7, tds_category = $8, credit_days = $9, opening_balance = $10,
		status = $11, updated_at = $12
		WHERE id = $13 AND company_id = $14`
	result, err := r.db.ExecContext(ctx, query,
		vendor.Name, vendor.Email, vendor.Phone, vendor.GSTIN, vendor.PAN, vendor.Address,
		vendor.PayeeType, vendor.TDSCategory, vendor.CreditDays, vendor.OpeningBalance,
		vendor.Status, vendor.UpdatedAt, vendor.ID, vendor.CompanyID)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") && strings.Contains(err.Error(), "gstin") {
			return domain.ErrDuplicateGSTIN
		}
		return fmt.Errorf("vendorRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *vendorRepo) Deactivate(ctx context.Context, companyID, vendorID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE vendors SET status = $1, updated_at = NOW() WHERE id = $2 AND company_id = $3`,
		domain.PartyInactive, vendorID, companyID)
	if err != nil {
		return fmt.Errorf("vendorRepo.Deactivate: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
