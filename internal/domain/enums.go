package domain

// UserRole defines the role hierarchy within a company.
type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleMember UserRole = "member"
)

// ValidUserRoles enumerates assignable roles.
var ValidUserRoles = map[UserRole]bool{
	RoleAdmin:  true,
	RoleMember: true,
}

// PartyStatus is the lifecycle of a customer or vendor. Parties are
// soft-deactivated, never deleted.
type PartyStatus string

const (
	PartyActive   PartyStatus = "Active"
	PartyInactive PartyStatus = "Inactive"
)

// CustomerType distinguishes registered businesses from consumers.
type CustomerType string

const (
	CustomerB2B CustomerType = "B2B"
	CustomerB2C CustomerType = "B2C"
)

// InvoiceType is the GST document class of an outward supply.
type InvoiceType string

const (
	InvoiceTypeTax          InvoiceType = "Tax Invoice"
	InvoiceTypeBillOfSupply InvoiceType = "Bill of Supply"
	InvoiceTypeExport       InvoiceType = "Export Invoice"
)

// DocumentStatus is the payment-driven state of an invoice or purchase
// bill. Overdue is a view-time label, never stored; Cancelled is the
// explicit terminal state.
type DocumentStatus string

const (
	StatusDraft         DocumentStatus = "Draft"
	StatusSent          DocumentStatus = "Sent"
	StatusPaid          DocumentStatus = "Paid"
	StatusPartiallyPaid DocumentStatus = "Partially Paid"
	StatusCancelled     DocumentStatus = "Cancelled"
)

// PaymentMethod is the mode a payment was made by.
type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "Cash"
	PaymentCheque       PaymentMethod = "Cheque"
	PaymentBankTransfer PaymentMethod = "Bank Transfer"
	PaymentUPI          PaymentMethod = "UPI"
	PaymentCard         PaymentMethod = "Card"
)

// AllowedAttachmentTypes maps MIME content types accepted for document
// attachments.
var AllowedAttachmentTypes = map[string]bool{
	"application/pdf": true,
	"image/jpeg":      true,
	"image/png":       true,
}
