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

type purchaseRepo struct {
	db *sqlx.DB
}

// NewPurchaseRepo creates a new PostgreSQL-backed PurchaseRepository.
func NewPurchaseRepo(db *sqlx.DB) port.PurchaseRepository {
	return &purchaseRepo{db: db}
}

func (r *purchaseRepo) Create(ctx context.Context, p *domain.Purchase) error {
	p.ID = uuid.New()
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	query := `INSERT INTO purchases (
		id, company_id, bill_number, vendor_bill_number,
		vendor_id, vendor_name, vendor_gstin, supply_type,
		bill_date, due_date, line_items,
		sub_total, total_discount, taxable_amount,
		total_cgst, total_sgst, total_igst, total_cess, total_tax,
		round_off, grand_total,
		tds_applicable, tds_category, tds_section, tds_rate, tds_amount, net_payable,
		itc_claimed, itc_amount,
		notes, status, paid_amount, balance_amount, payments,
		created_by, created_at, updated_at
	) VALUES (
		$1, $2, $3, $4,
		$5, $6, $7, $8,
		$9, $10, $11,
		$12, $13, $14,
		$15, $16, $17, $18, $19,
		$20, $21,
		$22, $23, $24, $25, $26, $27,
		$28, $29,
		$30, $31, $32, $33, $34,
		$35, $36, $37
	)`

	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.CompanyID, p.BillNumber, p.VendorBillNumber,
		p.VendorID, p.VendorName, p.VendorGSTIN, p.SupplyType,
		p.BillDate, p.DueDate, p.Lines,
		p.SubTotal, p.TotalDiscount, p.TaxableAmount,
		p.TotalCGST, p.TotalSGST, p.TotalIGST, p.TotalCess, p.TotalTax,
		p.RoundOff, p.GrandTotal,
		p.TDSApplicable, p.TDSCategory, p.TDSSection, p.TDSRate, p.TDSAmount, p.NetPayable,
		p.ITCClaimed, p.ITCAmount,
		p.Notes, p.Status, p.PaidAmount, p.BalanceAmount, p.Payments,
		p.CreatedBy, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("purchaseRepo.Create: %w", err)
	}
	return nil
}

func (r *purchaseRepo) GetByID(ctx context.Context, companyID, purchaseID uuid.UUID) (*domain.Purchase, error) {
	var p domain.Purchase
	err := r.db.GetContext(ctx, &p,
		"SELECT * FROM purchases WHERE id = $1 AND company_id = $2", purchaseID, companyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("purchaseRepo.GetByID: %w", err)
	}
	return &p, nil
}

func (r *purchaseRepo) List(ctx context.Context, companyID uuid.UUID, filter port.DocumentFilter) ([]domain.Purchase, int, error) {
	where := []string{"company_id = $1"}
	args := []any{companyID}

	if filter.Status != "" {
		args = append(args, filter.Status)
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.PartyID != uuid.Nil {
		args = append(args, filter.PartyID)
		where = append(where, fmt.Sprintf("vendor_id = $%d", len(args)))
	}
	if !filter.DateFrom.IsZero() {
		args = append(args, filter.DateFrom)
		where = append(where, fmt.Sprintf("bill_date >= $%d", len(args)))
	}
	if !filter.DateTo.IsZero() {
		args = append(args, filter.DateTo)
		where = append(where, fmt.Sprintf("bill_date <= $%d", len(args)))
	}
	whereClause := strings.Join(where, " AND ")

	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM purchases WHERE "+whereClause, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("purchaseRepo.List count: %w", err)
	}

	args = append(args, filter.Limit, filter.Offset)
	query := fmt.Sprintf(
		"SELECT * FROM purchases WHERE %s ORDER BY bill_date DESC, bill_number DESC LIMIT $%d OFFSET $%d",
		whereClause, len(args)-1, len(args))

	var purchases []domain.Purchase
	err = r.db.SelectContext(ctx, &purchases, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("purchaseRepo.List: %w", err)
	}
	return purchases, total, nil
}

// ListByVendor returns bills in ascending date order. Cumulative TDS
// threshold checks depend on this ordering.
func (r *purchaseRepo) ListByVendor(ctx context.Context, companyID, vendorID uuid.UUID, from, to time.Time) ([]domain.Purchase, error) {
	where := []string{"company_id = $1", "vendor_id = $2"}
	args := []any{companyID, vendorID}

	if !from.IsZero() {
		args = append(args, from)
		where = append(where, fmt.Sprintf("bill_date >= $%d", len(args)))
	}
	if !to.IsZero() {
		args = append(args, to)
		where = append(where, fmt.Sprintf("bill_date <= $%d", len(args)))
	}

	query := fmt.Sprintf(
		"SELECT * FROM purchases WHERE %s ORDER BY bill_date ASC, created_at ASC",
		strings.Join(where, " AND "))

	var purchases []domain.Purchase
	err := r.db.SelectContext(ctx, &purchases, query, args...)
	if err != nil {
		return nil, fmt.Errorf("purchaseRepo.ListByVendor: %w", err)
	}
	return purchases, nil
}

func (r *purchaseRepo) ListByPeriod(ctx context.Context, companyID uuid.UUID, from, to time.Time) ([]domain.Purchase, error) {
	var purchases []domain.Purchase
	err := r.db.SelectContext(ctx, &purchases,
		`SELECT * FROM purchases
		 WHERE company_id = $1 AND bill_date >= $2 AND bill_date <= $3
		 ORDER BY bill_date ASC, created_at ASC`,
		companyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("purchaseRepo.ListByPeriod: %w", err)
	}
	return purchases, nil
}

func (r *purchaseRepo) Update(ctx context.Context, p *domain.Purchase) error {
	p.UpdatedAt = time.Now().UTC()
	query := `UPDATE purchases SET
		vendor_bill_number = $1, vendor_name = $2, vendor_gstin = $3, supply_type = $4,
		bill_date = $5, due_date = $6, line_items = $7,
		sub_total = $8, total_discount = $9, taxable_amount = $10,
		total_cgst = $11, total_sgst = $12, total_igst = $13, total_cess = $14, total_tax = $15,
		round_off = $16, grand_total = $17,
		tds_applicable = $18, tds_category = $19, tds_section = $20,
		tds_rate = $21, tds_amount = $22, net_payable = $23,
		itc_claimed = $24, itc_amount = $25,
		notes = $26, status = $27, paid_amount = $28, balance_amount = $29, payments = $30,
		updated_at = $31
		WHERE id = $32 AND company_id = $33`
	result, err := r.db.ExecContext(ctx, query,
		p.VendorBillNumber, p.VendorName, p.VendorGSTIN, p.SupplyType,
		p.BillDate, p.DueDate, p.Lines,
		p.SubTotal, p.TotalDiscount, p.TaxableAmount,
		p.TotalCGST, p.TotalSGST, p.TotalIGST, p.TotalCess, p.TotalTax,
		p.RoundOff, p.GrandTotal,
		p.TDSApplicable, p.TDSCategory, p.TDSSection,
		p.TDSRate, p.TDSAmount, p.NetPayable,
		p.ITCClaimed, p.ITCAmount,
		p.Notes, p.Status, p.PaidAmount, p.BalanceAmount, p.Payments,
		p.UpdatedAt, p.ID, p.CompanyID)
	if err != nil {
		return fmt.Errorf("purchaseRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
