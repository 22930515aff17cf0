package domain

import "errors"

var (
	ErrNotFound           = errors.New("resource not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInsufficientRole   = errors.New("insufficient role")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrCompanyInactive    = errors.New("company is inactive")
	ErrUserInactive       = errors.New("user is inactive")
	ErrInvalidGSTIN       = errors.New("invalid GST number format")
	ErrInvalidPAN         = errors.New("invalid PAN format")
	ErrInvalidStateCode   = errors.New("invalid state code in GST number")
	ErrDuplicateGSTIN     = errors.New("party with this GST number already exists")
	ErrDuplicateEmail     = errors.New("email already exists for this company")
	ErrNoLineItems        = errors.New("document requires at least one line item")
	ErrDocumentCancelled  = errors.New("document is cancelled")
	ErrInvalidPayment     = errors.New("payment amount must be positive")
	ErrFileTooLarge       = errors.New("file exceeds maximum allowed size")
	ErrUnsupportedFile    = errors.New("unsupported attachment type")
	ErrUploadFailed       = errors.New("file upload to storage failed")
)
