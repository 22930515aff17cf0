package domain

import (
	"time"

	"github.com/google/uuid"
)

// Company is the tenant that owns all records. It carries the
// supplier-side GST identity and the document numbering counters;
// counters are incremented atomically by the persistence layer, never
// derived from row counts.
type Company struct {
	ID              uuid.UUID `db:"id" json:"id"`
	Name            string    `db:"name" json:"name"`
	GSTIN           string    `db:"gstin" json:"gstin"`
	PAN             string    `db:"pan" json:"pan"`
	TAN             string    `db:"tan" json:"tan"`
	StateCode       string    `db:"state_code" json:"state_code"`
	AddressLine1    string    `db:"address_line1" json:"address_line1"`
	City            string    `db:"city" json:"city"`
	State           string    `db:"state" json:"state"`
	Pincode         string    `db:"pincode" json:"pincode"`
	InvoiceSeries   string    `db:"invoice_series" json:"invoice_series"`
	InvoiceCounter  int64     `db:"invoice_counter" json:"invoice_counter"`
	PurchaseSeries  string    `db:"purchase_series" json:"purchase_series"`
	PurchaseCounter int64     `db:"purchase_counter" json:"purchase_counter"`
	IsActive        bool      `db:"is_active" json:"is_active"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

// User is an authenticated user belonging to a company.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	CompanyID    uuid.UUID `db:"company_id" json:"company_id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	Role         UserRole  `db:"role" json:"role"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Address is a postal address carrying the GST state code used for
// supply classification. It is stored as a single JSONB column.
type Address struct {
	AddressLine1 string `json:"address_line1"`
	City         string `json:"city"`
	State        string `json:"state"`
	StateCode    string `json:"state_code"`
	Pincode      string `json:"pincode"`
}

// Customer is a receivables party. Deactivation is a status flip, never
// a row deletion, so issued documents keep their reference.
type Customer struct {
	ID             uuid.UUID    `db:"id" json:"id"`
	CompanyID      uuid.UUID    `db:"company_id" json:"company_id"`
	Name           string       `db:"name" json:"name"`
	Email          string       `db:"email" json:"email"`
	Phone          string       `db:"phone" json:"phone"`
	GSTIN          string       `db:"gstin" json:"gstin"`
	PAN            string       `db:"pan" json:"pan"`
	Address        Address      `db:"address" json:"address"`
	CustomerType   CustomerType `db:"customer_type" json:"customer_type"`
	CreditLimit    float64      `db:"credit_limit" json:"credit_limit"`
	CreditDays     int          `db:"credit_days" json:"credit_days"`
	OpeningBalance float64      `db:"opening_balance" json:"opening_balance"`
	Status         PartyStatus  `db:"status" json:"status"`
	CreatedBy      uuid.UUID    `db:"created_by" json:"created_by"`
	CreatedAt      time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time    `db:"updated_at" json:"updated_at"`
}

// Vendor is a payables party, carrying the default TDS treatment for
// its bills.
type Vendor struct {
	ID             uuid.UUID   `db:"id" json:"id"`
	CompanyID      uuid.UUID   `db:"company_id" json:"company_id"`
	Name           string      `db:"name" json:"name"`
	Email          string      `db:"email" json:"email"`
	Phone          string      `db:"phone" json:"phone"`
	GSTIN          string      `db:"gstin" json:"gstin"`
	PAN            string      `db:"pan" json:"pan"`
	Address        Address     `db:"address" json:"address"`
	PayeeType      string      `db:"payee_type" json:"payee_type"`
	TDSCategory    string      `db:"tds_category" json:"tds_category"`
	CreditDays     int         `db:"credit_days" json:"credit_days"`
	OpeningBalance float64     `db:"opening_balance" json:"opening_balance"`
	Status         PartyStatus `db:"status" json:"status"`
	CreatedBy      uuid.UUID   `db:"created_by" json:"created_by"`
	CreatedAt      time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time   `db:"updated_at" json:"updated_at"`
}

// Item is a catalogued good or service.
type Item struct {
	ID          uuid.UUID `db:"id" json:"id"`
	CompanyID   uuid.UUID `db:"company_id" json:"company_id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	HSNSACCode  string    `db:"hsn_sac_code" json:"hsn_sac_code"`
	Unit        string    `db:"unit" json:"unit"`
	Rate        float64   `db:"rate" json:"rate"`
	GSTRate     float64   `db:"gst_rate" json:"gst_rate"`
	CessRate    float64   `db:"cess_rate" json:"cess_rate"`
	IsActive    bool      `db:"is_active" json:"is_active"`
	CreatedBy   uuid.UUID `db:"created_by" json:"created_by"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// DocumentLine is one line of an invoice or purchase bill. Quantity,
// Rate, Discount, GSTRate and CessRate are inputs; every other amount
// is derived by the billing engine and persisted verbatim.
type DocumentLine struct {
	ItemID         *uuid.UUID `json:"item_id,omitempty"`
	ItemName       string     `json:"item_name"`
	Description    string     `json:"description,omitempty"`
	HSNSACCode     string     `json:"hsn_sac_code"`
	Quantity       float64    `json:"quantity"`
	Unit           string     `json:"unit"`
	Rate           float64    `json:"rate"`
	Amount         float64    `json:"amount"`
	Discount       float64    `json:"discount"`
	DiscountAmount float64    `json:"discount_amount"`
	TaxableAmount  float64    `json:"taxable_amount"`
	GSTRate        float64    `json:"gst_rate"`
	CessRate       float64    `json:"cess_rate"`
	CGSTAmount     float64    `json:"cgst_amount"`
	SGSTAmount     float64    `json:"sgst_amount"`
	IGSTAmount     float64    `json:"igst_amount"`
	CessAmount     float64    `json:"cess_amount"`
	TotalAmount    float64    `json:"total_amount"`
}

// Payment is one receipt or disbursement against a document. The list
// on a document is append-only.
type Payment struct {
	PaymentDate time.Time     `json:"payment_date"`
	Amount      float64       `json:"amount"`
	Method      PaymentMethod `json:"payment_method"`
	TDSDeducted float64       `json:"tds_deducted,omitempty"`
	Reference   string        `json:"reference"`
}

// Invoice is an outward (sales) document. All totals, the balance and
// the status are derived by the billing engine on every mutation and
// persisted as computed.
type Invoice struct {
	ID            uuid.UUID      `db:"id" json:"id"`
	CompanyID     uuid.UUID      `db:"company_id" json:"company_id"`
	InvoiceNumber string         `db:"invoice_number" json:"invoice_number"`
	InvoiceSeries string         `db:"invoice_series" json:"invoice_series"`
	CustomerID    uuid.UUID      `db:"customer_id" json:"customer_id"`
	CustomerName  string         `db:"customer_name" json:"customer_name"`
	CustomerGSTIN string         `db:"customer_gstin" json:"customer_gstin"`
	PlaceOfSupply string         `db:"place_of_supply" json:"place_of_supply"`
	SupplyType    string         `db:"supply_type" json:"supply_type"`
	InvoiceType   InvoiceType    `db:"invoice_type" json:"invoice_type"`
	InvoiceDate   time.Time      `db:"invoice_date" json:"invoice_date"`
	DueDate       time.Time      `db:"due_date" json:"due_date"`
	Lines         DocumentLines  `db:"line_items" json:"items"`
	SubTotal      float64        `db:"sub_total" json:"sub_total"`
	TotalDiscount float64        `db:"total_discount" json:"total_discount"`
	TaxableAmount float64        `db:"taxable_amount" json:"taxable_amount"`
	TotalCGST     float64        `db:"total_cgst" json:"total_cgst"`
	TotalSGST     float64        `db:"total_sgst" json:"total_sgst"`
	TotalIGST     float64        `db:"total_igst" json:"total_igst"`
	TotalCess     float64        `db:"total_cess" json:"total_cess"`
	TotalTax      float64        `db:"total_tax" json:"total_tax"`
	RoundOff      float64        `db:"round_off" json:"round_off"`
	GrandTotal    float64        `db:"grand_total" json:"grand_total"`
	AmountInWords string         `db:"amount_in_words" json:"amount_in_words"`
	Terms         string         `db:"terms" json:"terms"`
	Notes         string         `db:"notes" json:"notes"`
	Status        DocumentStatus `db:"status" json:"status"`
	PaidAmount    float64        `db:"paid_amount" json:"paid_amount"`
	BalanceAmount float64        `db:"balance_amount" json:"balance_amount"`
	Payments      PaymentList    `db:"payments" json:"payments"`
	CreatedBy     uuid.UUID      `db:"created_by" json:"created_by"`
	CreatedAt     time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at" json:"updated_at"`
}

// Purchase is an inward (vendor bill) document. On top of the invoice
// rollups it carries the withholding figures and the input tax credit.
type Purchase struct {
	ID               uuid.UUID      `db:"id" json:"id"`
	CompanyID        uuid.UUID      `db:"company_id" json:"company_id"`
	BillNumber       string         `db:"bill_number" json:"bill_number"`
	VendorBillNumber string         `db:"vendor_bill_number" json:"vendor_bill_number"`
	VendorID         uuid.UUID      `db:"vendor_id" json:"vendor_id"`
	VendorName       string         `db:"vendor_name" json:"vendor_name"`
	VendorGSTIN      string         `db:"vendor_gstin" json:"vendor_gstin"`
	SupplyType       string         `db:"supply_type" json:"supply_type"`
	BillDate         time.Time      `db:"bill_date" json:"bill_date"`
	DueDate          time.Time      `db:"due_date" json:"due_date"`
	Lines            DocumentLines  `db:"line_items" json:"items"`
	SubTotal         float64        `db:"sub_total" json:"sub_total"`
	TotalDiscount    float64        `db:"total_discount" json:"total_discount"`
	TaxableAmount    float64        `db:"taxable_amount" json:"taxable_amount"`
	TotalCGST        float64        `db:"total_cgst" json:"total_cgst"`
	TotalSGST        float64        `db:"total_sgst" json:"total_sgst"`
	TotalIGST        float64        `db:"total_igst" json:"total_igst"`
	TotalCess        float64        `db:"total_cess" json:"total_cess"`
	TotalTax         float64        `db:"total_tax" json:"total_tax"`
	RoundOff         float64        `db:"round_off" json:"round_off"`
	GrandTotal       float64        `db:"grand_total" json:"grand_total"`
	TDSApplicable    bool           `db:"tds_applicable" json:"tds_applicable"`
	TDSCategory      string         `db:"tds_category" json:"tds_category"`
	TDSSection       string         `db:"tds_section" json:"tds_section"`
	TDSRate          float64        `db:"tds_rate" json:"tds_rate"`
	TDSAmount        float64        `db:"tds_amount" json:"tds_amount"`
	NetPayable       float64        `db:"net_payable" json:"net_payable"`
	ITCClaimed       bool           `db:"itc_claimed" json:"itc_claimed"`
	ITCAmount        float64        `db:"itc_amount" json:"itc_amount"`
	Notes            string         `db:"notes" json:"notes"`
	Status           DocumentStatus `db:"status" json:"status"`
	PaidAmount       float64        `db:"paid_amount" json:"paid_amount"`
	BalanceAmount    float64        `db:"balance_amount" json:"balance_amount"`
	Payments         PaymentList    `db:"payments" json:"payments"`
	CreatedBy        uuid.UUID      `db:"created_by" json:"created_by"`
	CreatedAt        time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time      `db:"updated_at" json:"updated_at"`
}

// Attachment stores metadata about a file attached to a document and
// uploaded to object storage.
type Attachment struct {
	ID           uuid.UUID `db:"id" json:"id"`
	CompanyID    uuid.UUID `db:"company_id" json:"company_id"`
	DocumentID   uuid.UUID `db:"document_id" json:"document_id"`
	UploadedBy   uuid.UUID `db:"uploaded_by" json:"uploaded_by"`
	FileName     string    `db:"file_name" json:"file_name"`
	OriginalName string    `db:"original_name" json:"original_name"`
	FileSize     int64     `db:"file_size" json:"file_size"`
	S3Bucket     string    `db:"s3_bucket" json:"s3_bucket"`
	S3Key        string    `db:"s3_key" json:"s3_key"`
	ContentType  string    `db:"content_type" json:"content_type"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
