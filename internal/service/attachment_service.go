package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"lekha/internal/config"
	"lekha/internal/domain"
	"lekha/internal/port"
)

// AttachmentUploadInput is the DTO for attachment upload requests.
type AttachmentUploadInput struct {
	CompanyID  uuid.UUID
	DocumentID uuid.UUID
	UploadedBy uuid.UUID
	File       multipart.File
	Header     *multipart.FileHeader
}

// AttachmentService defines the document attachment contract.
type AttachmentService interface {
	Upload(ctx context.Context, input AttachmentUploadInput) (*domain.Attachment, error)
	GetByID(ctx context.Context, companyID, attachmentID uuid.UUID) (*domain.Attachment, error)
	ListByDocument(ctx context.Context, companyID, documentID uuid.UUID) ([]domain.Attachment, error)
	GetDownloadURL(ctx context.Context, companyID, attachmentID uuid.UUID) (string, error)
	Delete(ctx context.Context, companyID, attachmentID uuid.UUID) error
}

type attachmentService struct {
	repo    port.AttachmentRepository
	storage port.ObjectStorage
	cfg     *config.S3Config
}

// NewAttachmentService creates a new AttachmentService implementation.
func NewAttachmentService(
	repo port.AttachmentRepository,
	storage port.ObjectStorage,
	cfg *config.S3Config,
) AttachmentService {
	return &attachmentService{
		repo:    repo,
		storage: storage,
		cfg:     cfg,
	}
}

func (s *attachmentService) Upload(ctx context.Context, input AttachmentUploadInput) (*domain.Attachment, error) {
	maxBytes := s.cfg.MaxFileSizeMB * 1024 * 1024
	if input.Header.Size > maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	// Magic-byte detection; the client-supplied Content-Type header is
	// not trusted.
	buf := make([]byte, 512)
	n, err := input.File.Read(buf)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("reading file header: %w", err)
	}
	contentType := http.DetectContentType(buf[:n])
	if !domain.AllowedAttachmentTypes[contentType] {
		return nil, domain.ErrUnsupportedFile
	}

	if _, err := input.File.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seeking file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(input.Header.Filename))
	attachmentID := uuid.New()
	s3Key := fmt.Sprintf("companies/%s/documents/%s/%s%s",
		input.CompanyID, input.DocumentID, attachmentID, ext)

	attachment := &domain.Attachment{
		ID:           attachmentID,
		CompanyID:    input.CompanyID,
		DocumentID:   input.DocumentID,
		UploadedBy:   input.UploadedBy,
		FileName:     attachmentID.String() + ext,
		OriginalName: input.Header.Filename,
		FileSize:     input.Header.Size,
		S3Bucket:     s.cfg.Bucket,
		S3Key:        s3Key,
		ContentType:  contentType,
	}

	log.Printf("attachmentService.Upload: uploading %s (%s, %d bytes) for document %s",
		input.Header.Filename, contentType, input.Header.Size, input.DocumentID)

	if _, err := s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.cfg.Bucket,
		Key:         s3Key,
		Body:        input.File,
		ContentType: contentType,
		Size:        input.Header.Size,
	}); err != nil {
		log.Printf("attachmentService.Upload: storage upload failed for %s: %v", attachmentID, err)
		return nil, domain.ErrUploadFailed
	}

	if err := s.repo.Create(ctx, attachment); err != nil {
		// Metadata write failed after the object landed; remove the
		// orphan so the bucket does not accumulate unreferenced files.
		_ = s.storage.Delete(ctx, s.cfg.Bucket, s3Key)
		return nil, fmt.Errorf("creating attachment metadata: %w", err)
	}

	return attachment, nil
}

func (s *attachmentService) GetByID(ctx context.Context, companyID, attachmentID uuid.UUID) (*domain.Attachment, error) {
	return s.repo.GetByID(ctx, companyID, attachmentID)
}

func (s *attachmentService) ListByDocument(ctx context.Context, companyID, documentID uuid.UUID) ([]domain.Attachment, error) {
	return s.repo.ListByDocument(ctx, companyID, documentID)
}

func (s *attachmentService) GetDownloadURL(ctx context.Context, companyID, attachmentID uuid.UUID) (string, error) {
	attachment, err := s.repo.GetByID(ctx, companyID, attachmentID)
	if err != nil {
		return "", err
	}
	return s.storage.GetPresignedURL(ctx, attachment.S3Bucket, attachment.S3Key, s.cfg.PresignExpiry)
}

func (s *attachmentService) Delete(ctx context.Context, companyID, attachmentID uuid.UUID) error {
	attachment, err := s.repo.GetByID(ctx, companyID, attachmentID)
	if err != nil {
		return err
	}

	if err := s.storage.Delete(ctx, attachment.S3Bucket, attachment.S3Key); err != nil {
		log.Printf("attachmentService.Delete: failed to delete from storage: %v", err)
		return fmt.Errorf("deleting from storage: %w", err)
	}

	return s.repo.Delete(ctx, companyID, attachmentID)
}
