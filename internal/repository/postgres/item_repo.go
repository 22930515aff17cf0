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

type itemRepo struct {
	db *sqlx.DB
}

// NewItemRepo creates a new PostgreSQL-backed ItemRepository.
func NewItemRepo(db *sqlx.DB) port.ItemRepository {
	return &itemRepo{db: db}
}

func (r *itemRepo) Create(ctx context.Context, item *domain.Item) error {
	item.ID = uuid.New()
	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now

	query := `INSERT INTO items (
		id, company_id, name, description, hsn_sac_code, unit,
		rate, gst_rate, cess_rate, is_active, created_by, created_at, updated_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := r.db.ExecContext(ctx, query,
		item.ID, item.CompanyID, item.Name, item.Description, item.HSNSACCode, item.Unit,
		item.Rate, item.GSTRate, item.CessRate, item.IsActive, item.CreatedBy,
		item.CreatedAt, item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("itemRepo.Create: %w", err)
	}
	return nil
}

func (r *itemRepo) GetByID(ctx context.Context, companyID, itemID uuid.UUID) (*domain.Item, error) {
	var item domain.Item
	err := r.db.GetContext(ctx, &item,
		"SELECT * FROM items WHERE id = $1 AND company_id = $2", itemID, companyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("itemRepo.GetByID: %w", err)
	}
	return &item, nil
}

func (r *itemRepo) List(ctx context.Context, companyID uuid.UUID, search string, offset, limit int) ([]domain.Item, int, error) {
	where := []string{"company_id = $1"}
	args := []any{companyID}

	if search != "" {
		args = append(args, "%"+search+"%")
		where = append(where, fmt.Sprintf("(name ILIKE $%d OR hsn_sac_code ILIKE $%d)", len(args), len(args)))
	}
	whereClause := strings.Join(where, " AND ")

	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM items WHERE "+whereClause, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("itemRepo.List count: %w", err)
	}

	args = append(args, limit, offset)
	query := fmt.Sprintf("SELECT * FROM items WHERE %s ORDER BY name ASC LIMIT $%d OFFSET $%d",
		whereClause, len(args)-1, len(args))

	var items []domain.Item
	err = r.db.SelectContext(ctx, &items, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("itemRepo.List: %w", err)
	}
	return items, total, nil
}

func (r *itemRepo) Update(ctx context.Context, item *domain.Item) error {
	item.UpdatedAt = time.Now().UTC()
	query := `UPDATE items SET
		name = $1, description = $2, hsn_sac_code = $3, unit = $4,
		rate = $5, gst_rate = $6, cess_rate = $7, is_active = $8, updated_at = $9
		WHERE id = $10 AND company_id = $11`
	result, err := r.db.ExecContext(ctx, query,
		item.Name, item.Description, item.HSNSACCode, item.Unit,
		item.Rate, item.GSTRate, item.CessRate, item.IsActive, item.UpdatedAt,
		item.ID, item.CompanyID)
	if err != nil {
		return fmt.Errorf("itemRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *itemRepo) Deactivate(ctx context.Context, companyID, itemID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE items SET is_active = false, updated_at = NOW() WHERE id = $1 AND company_id = $2",
		itemID, companyID)
	if err != nil {
		return fmt.Errorf("itemRepo.Deactivate: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
