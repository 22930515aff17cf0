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

type customerRepo struct {
	db *sqlx.DB
}

// NewCustomerRepo creates a new PostgreSQL-backed CustomerRepository.
func NewCustomerRepo(db *sqlx.DB) port.CustomerRepository {
	return &customerRepo{db: db}
}

func (r *customerRepo) Create(ctx context.Context, customer *domain.Customer) error {
	customer.ID = uuid.New()
	now := time.Now().UTC()
	customer.CreatedAt = now
	customer.UpdatedAt = now

	query := `INSERT INTO customers (
		id, company_id, name, email, phone, gstin, pan, address,
		customer_type, credit_limit, credit_days, opening_balance,
		status, created_by, created_at, updated_at
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8,
		$9, $10, $11, $12,
		$13, $14, $15, $16
	)`

	_, err := r.db.ExecContext(ctx, query,
		customer.ID, customer.CompanyID, customer.Name, customer.Email, customer.Phone,
		customer.GSTIN, customer.PAN, customer.Address,
		customer.CustomerType, customer.CreditLimit, customer.CreditDays, customer.OpeningBalance,
		customer.Status, customer.CreatedBy, customer.CreatedAt, customer.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") && strings.Contains(err.Error(), "gstin") {
			return domain.ErrDuplicateGSTIN
		}
		return fmt.Errorf("customerRepo.Create: %w", err)
	}
	return nil
}

func (r *customerRepo) GetByID(ctx context.Context, companyID, customerID uuid.UUID) (*domain.Customer, error) {
	var customer domain.Customer
	err := r.db.GetContext(ctx, &customer,
		"SELECT * FROM customers WHERE id = $1 AND company_id = $2", customerID, companyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("customerRepo.GetByID: %w", err)
	}
	return &customer, nil
}

func (r *customerRepo) GetByGSTIN(ctx context.Context, companyID uuid.UUID, gstin string) (*domain.Customer, error) {
	var customer domain.Customer
	err := r.db.GetContext(ctx, &customer,
		"SELECT * FROM customers WHERE company_id = $1 AND gstin = $2", companyID, gstin)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("customerRepo.GetByGSTIN: %w", err)
	}
	return &customer, nil
}

func (r *customerRepo) List(ctx context.Context, companyID uuid.UUID, filter port.PartyFilter) ([]domain.Customer, int, error) {
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
		"SELECT COUNT(*) FROM customers WHERE "+whereClause, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("customerRepo.List count: %w", err)
	}

	args = append(args, filter.Limit, filter.Offset)
	query := fmt.Sprintf("SELECT * FROM customers WHERE %s ORDER BY name ASC LIMIT $%d OFFSET $%d",
		whereClause, len(args)-1, len(args))

	var customers []domain.Customer
	err = r.db.SelectContext(ctx, &customers, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("customerRepo.List: %w", err)
	}
	return customers, total, nil
}

func (r *customerRepo) Update(ctx context.Context, customer *domain.Customer) error {
	customer.UpdatedAt = time.Now().UTC()
	query := `UPDATE customers SET
		name = $1, email = $2, phone = $3, gstin = $4, pan = $5, address = $6,
		customer_type = $7, credit_limit = $8, credit_days = $9, opening_balance = $10,
		status = $11, updated_at = $12
		WHERE id = $13 AND company_id = $14`
	result, err := r.db.ExecContext(ctx, query,
		customer.Name, customer.Email, customer.Phone, customer.GSTIN, customer.PAN, customer.Address,
		customer.CustomerType, customer.CreditLimit, customer.CreditDays, customer.OpeningBalance,
		customer.Status, customer.UpdatedAt, customer.ID, customer.CompanyID)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") && strings.Contains(err.Error(), "gstin") {
			return domain.ErrDuplicateGSTIN
		}
		return fmt.Errorf("customerRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *customerRepo) Deactivate(ctx context.Context, companyID, customerID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE customers SET status = $1, updated_at = NOW() WHERE id = $2 AND company_id = $3`,
		domain.PartyInactive, customerID, companyID)
	if err != nil {
		return fmt.Errorf("customerRepo.Deactivate: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
