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

type invoiceRepo struct {
	db *sqlx.DB
}

// NewInvoiceRepo creates a new PostgreSQL-backed InvoiceRepository.
func NewInvoiceRepo(db *sqlx.DB) port.InvoiceRepository {
	return &invoiceRepo{db: db}
}

func (r *invoiceRepo) Create(ctx context.Context, inv *domain.Invoice) error {
	inv.ID = uuid.New()
	now := time.Now().UTC()
	inv.CreatedAt = now
	inv.UpdatedAt = now

	query := `INSERT INTO invoices (
		id, company_id, invoice_number, invoice_series,
		customer_id, customer_name, customer_gstin, place_of_supply, supply_type,
		invoice_type, invoice_date, due_date, line_items,
		sub_total, total_discount, taxable_amount,
		total_cgst, total_sgst, total_igst, total_cess, total_tax,
		round_off, grand_total, amount_in_words,
		terms, notes, status, paid_amount, balance_amount, payments,
		created_by, created_at, updated_at
	) VALUES (
		$1, $2, $3, $4,
		$5, $6, $7, $8, $9,
		$10, $11, $12, $13,
		$14, $15, $16,
		$17, $18, $19, $20, $21,
		$22, $23, $24,
		$25, $26, $27, $28, $29, $30,
		$31, $32, $33
	)`

	_, err := r.db.ExecContext(ctx, query,
		inv.ID, inv.CompanyID, inv.InvoiceNumber, inv.InvoiceSeries,
		inv.CustomerID, inv.CustomerName, inv.CustomerGSTIN, inv.PlaceOfSupply, inv.SupplyType,
		inv.InvoiceType, inv.InvoiceDate, inv.DueDate, inv.Lines,
		inv.SubTotal, inv.TotalDiscount, inv.TaxableAmount,
		inv.TotalCGST, inv.TotalSGST, inv.TotalIGST, inv.TotalCess, inv.TotalTax,
		inv.RoundOff, inv.GrandTotal, inv.AmountInWords,
		inv.Terms, inv.Notes, inv.Status, inv.PaidAmount, inv.BalanceAmount, inv.Payments,
		inv.CreatedBy, inv.CreatedAt, inv.UpdatedAt)
	if err != nil {
		return fmt.Errorf("invoiceRepo.Create: %w", err)
	}
	return nil
}

func (r *invoiceRepo) GetByID(ctx context.Context, companyID, invoiceID uuid.UUID) (*domain.Invoice, error) {
	var inv domain.Invoice
	err := r.db.GetContext(ctx, &inv,
		"SELECT * FROM invoices WHERE id = $1 AND company_id = $2", invoiceID, companyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("invoiceRepo.GetByID: %w", err)
	}
	return &inv, nil
}

func (r *invoiceRepo) List(ctx context.Context, companyID uuid.UUID, filter port.DocumentFilter) ([]domain.Invoice, int, error) {
	where := []string{"company_id = $1"}
	args := []any{companyID}

	if filter.Status != "" {
		args = append(args, filter.Status)
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.PartyID != uuid.Nil {
		args = append(args, filter.PartyID)
		where = append(where, fmt.Sprintf("customer_id = $%d", len(args)))
	}
	if !filter.DateFrom.IsZero() {
		args = append(args, filter.DateFrom)
		where = append(where, fmt.Sprintf("invoice_date >= $%d", len(args)))
	}
	if !filter.DateTo.IsZero() {
		args = append(args, filter.DateTo)
		where = append(where, fmt.Sprintf("invoice_date <= $%d", len(args)))
	}
	whereClause := strings.Join(where, " AND ")

	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM invoices WHERE "+whereClause, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("invoiceRepo.List count: %w", err)
	}

	args = append(args, filter.Limit, filter.Offset)
	query := fmt.Sprintf(
		"SELECT * FROM invoices WHERE %s ORDER BY invoice_date DESC, invoice_number DESC LIMIT $%d OFFSET $%d",
		whereClause, len(args)-1, len(args))

	var invoices []domain.Invoice
	err = r.db.SelectContext(ctx, &invoices, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("invoiceRepo.List: %w", err)
	}
	return invoices, total, nil
}

// ListByCustomer returns invoices in ascending date order. Ledger
// replay depends on this ordering.
func (r *invoiceRepo) ListByCustomer(ctx context.Context, companyID, customerID uuid.UUID, from, to time.Time) ([]domain.Invoice, error) {
	where := []string{"company_id = $1", "customer_id = $2"}
	args := []any{companyID, customerID}

	if !from.IsZero() {
		args = append(args, from)
		where = append(where, fmt.Sprintf("invoice_date >= $%d", len(args)))
	}
	if !to.IsZero() {
		args = append(args, to)
		where = append(where, fmt.Sprintf("invoice_date <= $%d", len(args)))
	}

	query := fmt.Sprintf(
		"SELECT * FROM invoices WHERE %s ORDER BY invoice_date ASC, created_at ASC",
		strings.Join(where, " AND "))

	var invoices []domain.Invoice
	err := r.db.SelectContext(ctx, &invoices, query, args...)
	if err != nil {
		return nil, fmt.Errorf("invoiceRepo.ListByCustomer: %w", err)
	}
	return invoices, nil
}

func (r *invoiceRepo) ListOutstanding(ctx context.Context, companyID, customerID uuid.UUID) ([]domain.Invoice, error) {
	where := []string{
		"company_id = $1",
		"balance_amount > 0",
		fmt.Sprintf("status IN ('%s', '%s')", domain.StatusSent, domain.StatusPartiallyPaid),
	}
	args := []any{companyID}

	if customerID != uuid.Nil {
		args = append(args, customerID)
		where = append(where, fmt.Sprintf("customer_id = $%d", len(args)))
	}

	query := fmt.Sprintf(
		"SELECT * FROM invoices WHERE %s ORDER BY invoice_date ASC",
		strings.Join(where, " AND "))

	var invoices []domain.Invoice
	err := r.db.SelectContext(ctx, &invoices, query, args...)
	if err != nil {
		return nil, fmt.Errorf("invoiceRepo.ListOutstanding: %w", err)
	}
	return invoices, nil
}

func (r *invoiceRepo) ListByPeriod(ctx context.Context, companyID uuid.UUID, from, to time.Time) ([]domain.Invoice, error) {
	var invoices []domain.Invoice
	err := r.db.SelectContext(ctx, &invoices,
		`SELECT * FROM invoices
		 WHERE company_id = $1 AND invoice_date >= $2 AND invoice_date <= $3
		 ORDER BY invoice_date ASC, created_at ASC`,
		companyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("invoiceRepo.ListByPeriod: %w", err)
	}
	return invoices, nil
}

func (r *invoiceRepo) Update(ctx context.Context, inv *domain.Invoice) error {
	inv.UpdatedAt = time.Now().UTC()
	query := `UPDATE invoices SET
		customer_name = $1, customer_gstin = $2, place_of_supply = $3, supply_type = $4,
		invoice_type = $5, invoice_date = $6, due_date = $7, line_items = $8,
		sub_total = $9, total_discount = $10, taxable_amount = $11,
		total_cgst = $12, total_sgst = $13, total_igst = $14, total_cess = $15, total_tax = $16,
		round_off = $17, grand_total = $18, amount_in_words = $19,
		terms = $20, notes = $21, status = $22,
		paid_amount = $23, balance_amount = $24, payments = $25,
		updated_at = $26
		WHERE id = $27 AND company_id = $28`
	result, err := r.db.ExecContext(ctx, query,
		inv.CustomerName, inv.CustomerGSTIN, inv.PlaceOfSupply, inv.SupplyType,
		inv.InvoiceType, inv.InvoiceDate, inv.DueDate, inv.Lines,
		inv.SubTotal, inv.TotalDiscount, inv.TaxableAmount,
		inv.TotalCGST, inv.TotalSGST, inv.TotalIGST, inv.TotalCess, inv.TotalTax,
		inv.RoundOff, inv.GrandTotal, inv.AmountInWords,
		inv.Terms, inv.Notes, inv.Status,
		inv.PaidAmount, inv.BalanceAmount, inv.Payments,
		inv.UpdatedAt, inv.ID, inv.CompanyID)
	if err != nil {
		return fmt.Errorf("invoiceRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
