package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"lekha/internal/domain"
	"lekha/internal/port"
)

type attachmentRepo struct {
	db *sqlx.DB
}

// NewAttachmentRepo creates a new PostgreSQL-backed AttachmentRepository.
func NewAttachmentRepo(db *sqlx.DB) port.AttachmentRepository {
	return &attachmentRepo{db: db}
}

func (r *attachmentRepo) Create(ctx context.Context, a *domain.Attachment) error {
	a.ID = uuid.New()
	a.CreatedAt = time.Now().UTC()

	query := `INSERT INTO attachments (
		id, company_id, document_id, uploaded_by,
		file_name, original_name, file_size, s3_bucket, s3_key, content_type, created_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.ExecContext(ctx, query,
		a.ID, a.CompanyID, a.DocumentID, a.UploadedBy,
		a.FileName, a.OriginalName, a.FileSize, a.S3Bucket, a.S3Key, a.ContentType, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("attachmentRepo.Create: %w", err)
	}
	return nil
}

func (r *attachmentRepo) GetByID(ctx context.Context, companyID, attachmentID uuid.UUID) (*domain.Attachment, error) {
	var a domain.Attachment
	err := r.db.GetContext(ctx, &a,
		"SELECT * FROM attachments WHERE id = $1 AND company_id = $2", attachmentID, companyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("attachmentRepo.GetByID: %w", err)
	}
	return &a, nil
}

func (r *attachmentRepo) ListByDocument(ctx context.Context, companyID, documentID uuid.UUID) ([]domain.Attachment, error) {
	var attachments []domain.Attachment
	err := r.db.SelectContext(ctx, &attachments,
		`SELECT * FROM attachments WHERE company_id = $1 AND document_id = $2 ORDER BY created_at DESC`,
		companyID, documentID)
	if err != nil {
		return nil, fmt.Errorf("attachmentRepo.ListByDocument: %w", err)
	}
	return attachments, nil
}

func (r *attachmentRepo) Delete(ctx context.Context, companyID, attachmentID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM attachments WHERE id = $1 AND company_id = $2", attachmentID, companyID)
	if err != nil {
		return fmt.Errorf("attachmentRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
