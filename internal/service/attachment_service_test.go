package service_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"lekha/internal/config"
	"lekha/internal/domain"
	"lekha/internal/port"
	"lekha/internal/service"
	"lekha/mocks"
)

// memFile adapts an in-memory buffer to multipart.File.
type memFile struct {
	*bytes.Reader
}

func (memFile) Close() error { return nil }

func newMemFile(data []byte) multipart.File {
	return memFile{bytes.NewReader(data)}
}

func testS3Config() *config.S3Config {
	return &config.S3Config{
		Bucket:        "lekha-attachments",
		MaxFileSizeMB: 10,
		PresignExpiry: 900,
	}
}

// %PDF marker is what http.DetectContentType keys on.
var pdfBytes = []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\n")

func TestAttachmentService_Upload_Success(t *testing.T) {
	repo := new(mocks.MockAttachmentRepo)
	storage := new(mocks.MockObjectStorage)
	svc := service.NewAttachmentService(repo, storage, testS3Config())

	storage.On("Upload", mock.Anything, mock.AnythingOfType("port.UploadInput")).
		Return(&port.UploadOutput{}, nil)

	input := service.AttachmentUploadInput{
		CompanyID:  uuid.New(),
		DocumentID: uuid.New(),
		UploadedBy: uuid.New(),
		File:       newMemFile(pdfBytes),
		Header: &multipart.FileHeader{
			Filename: "invoice-scan.pdf",
			Size:     int64(len(pdfBytes)),
		},
	}
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Attachment")).Return(nil)

	attachment, err := svc.Upload(context.Background(), input)

	assert.NoError(t, err)
	assert.Equal(t, "application/pdf", attachment.ContentType)
	assert.Equal(t, "invoice-scan.pdf", attachment.OriginalName)
	assert.Equal(t, "lekha-attachments", attachment.S3Bucket)
	assert.Contains(t, attachment.S3Key, input.DocumentID.String())
	repo.AssertExpectations(t)
}

func TestAttachmentService_Upload_TooLarge(t *testing.T) {
	repo := new(mocks.MockAttachmentRepo)
	storage := new(mocks.MockObjectStorage)
	svc := service.NewAttachmentService(repo, storage, testS3Config())

	attachment, err := svc.Upload(context.Background(), service.AttachmentUploadInput{
		CompanyID:  uuid.New(),
		DocumentID: uuid.New(),
		File:       newMemFile(pdfBytes),
		Header: &multipart.FileHeader{
			Filename: "huge.pdf",
			Size:     11 * 1024 * 1024,
		},
	})

	assert.ErrorIs(t, err, domain.ErrFileTooLarge)
	assert.Nil(t, attachment)
	storage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
}

func TestAttachmentService_Upload_UnsupportedType(t *testing.T) {
	repo := new(mocks.MockAttachmentRepo)
	storage := new(mocks.MockObjectStorage)
	svc := service.NewAttachmentService(repo, storage, testS3Config())

	// An executable disguised with a .pdf extension is rejected on its
	// magic bytes.
	payload := []byte{0x4D, 0x5A, 0x90, 0x00, 0x03, 0x00, 0x00, 0x00}
	attachment, err := svc.Upload(context.Background(), service.AttachmentUploadInput{
		CompanyID:  uuid.New(),
		DocumentID: uuid.New(),
		File:       newMemFile(payload),
		Header: &multipart.FileHeader{
			Filename: "malware.pdf",
			Size:     int64(len(payload)),
		},
	})

	assert.ErrorIs(t, err, domain.ErrUnsupportedFile)
	assert.Nil(t, attachment)
	storage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
}

func TestAttachmentService_Upload_MetadataFailureDeletesObject(t *testing.T) {
	repo := new(mocks.MockAttachmentRepo)
	storage := new(mocks.MockObjectStorage)
	svc := service.NewAttachmentService(repo, storage, testS3Config())

	storage.On("Upload", mock.Anything, mock.AnythingOfType("port.UploadInput")).
		Return(&port.UploadOutput{}, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Attachment")).
		Return(assert.AnError)
	storage.On("Delete", mock.Anything, "lekha-attachments", mock.AnythingOfType("string")).
		Return(nil)

	attachment, err := svc.Upload(context.Background(), service.AttachmentUploadInput{
		CompanyID:  uuid.New(),
		DocumentID: uuid.New(),
		File:       newMemFile(pdfBytes),
		Header: &multipart.FileHeader{
			Filename: "invoice-scan.pdf",
			Size:     int64(len(pdfBytes)),
		},
	})

	assert.Error(t, err)
	assert.Nil(t, attachment)
	storage.AssertCalled(t, "Delete", mock.Anything, "lekha-attachments", mock.AnythingOfType("string"))
}

func TestAttachmentService_GetDownloadURL(t *testing.T) {
	repo := new(mocks.MockAttachmentRepo)
	storage := new(mocks.MockObjectStorage)
	svc := service.NewAttachmentService(repo, storage, testS3Config())

	companyID := uuid.New()
	attachmentID := uuid.New()
	repo.On("GetByID", mock.Anything, companyID, attachmentID).Return(&domain.Attachment{
		ID:       attachmentID,
		S3Bucket: "lekha-attachments",
		S3Key:    "companies/x/documents/y/z.pdf",
	}, nil)
	storage.On("GetPresignedURL", mock.Anything, "lekha-attachments",
		"companies/x/documents/y/z.pdf", int64(900)).
		Return("https://s3.example/presigned", nil)

	url, err := svc.GetDownloadURL(context.Background(), companyID, attachmentID)

	assert.NoError(t, err)
	assert.Equal(t, "https://s3.example/presigned", url)
	repo.AssertExpectations(t)
	storage.AssertExpectations(t)
}

func TestAttachmentService_Delete_RemovesObjectFirst(t *testing.T) {
	repo := new(mocks.MockAttachmentRepo)
	storage := new(mocks.MockObjectStorage)
	svc := service.NewAttachmentService(repo, storage, testS3Config())

	companyID := uuid.New()
	attachmentID := uuid.New()
	repo.On("GetByID", mock.Anything, companyID, attachmentID).Return(&domain.Attachment{
		ID:       attachmentID,
		S3Bucket: "lekha-attachments",
		S3Key:    "companies/x/documents/y/z.pdf",
	}, nil)
	storage.On("Delete", mock.Anything, "lekha-attachments", "companies/x/documents/y/z.pdf").
		Return(assert.AnError)

	err := svc.Delete(context.Background(), companyID, attachmentID)

	// Metadata survives when the object removal fails.
	assert.Error(t, err)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
}
