package csvexport

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lekha/internal/domain"
)

func TestWriteInvoiceHeader(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteInvoiceHeader())
	w.Flush()
	require.NoError(t, w.Error())

	r := csv.NewReader(&buf)
	row, err := r.Read()
	require.NoError(t, err)

	assert.Len(t, row, 19)
	assert.Equal(t, "Invoice Number", row[0])
	assert.Equal(t, "Grand Total", row[13])
	assert.Equal(t, "Line Item Count", row[18])
}

func TestWriteInvoices(t *testing.T) {
	inv := domain.Invoice{
		ID:            uuid.New(),
		InvoiceNumber: "INV-0042",
		InvoiceDate:   time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		InvoiceType:   domain.InvoiceTypeTax,
		CustomerName:  "Acme Traders",
		CustomerGSTIN: "29ABCDE1234F1Z5",
		PlaceOfSupply: "29",
		SupplyType:    "Intrastate",
		TaxableAmount: 10000.50,
		TotalCGST:     900.25,
		TotalSGST:     900.25,
		TotalIGST:     0,
		TotalCess:     50.10,
		RoundOff:      -0.10,
		GrandTotal:    11851,
		PaidAmount:    5000,
		BalanceAmount: 6851,
		Status:        domain.StatusPartiallyPaid,
		DueDate:       time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC),
		Lines: domain.DocumentLines{
			{ItemName: "Item A"},
			{ItemName: "Item B"},
		},
	}

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteInvoices([]domain.Invoice{inv}))
	w.Flush()
	require.NoError(t, w.Error())

	r := csv.NewReader(&buf)
	row, err := r.Read()
	require.NoError(t, err)

	assert.Len(t, row, 19)
	assert.Equal(t, "INV-0042", row[0])
	assert.Equal(t, "2025-01-15", row[1])
	assert.Equal(t, "Tax Invoice", row[2])
	assert.Equal(t, "Acme Traders", row[3])
	assert.Equal(t, "29ABCDE1234F1Z5", row[4])
	assert.Equal(t, "29", row[5])
	assert.Equal(t, "Intrastate", row[6])
	assert.Equal(t, "10000.50", row[7])
	assert.Equal(t, "900.25", row[8])
	assert.Equal(t, "900.25", row[9])
	assert.Equal(t, "0.00", row[10])
	assert.Equal(t, "50.10", row[11])
	assert.Equal(t, "-0.10", row[12])
	assert.Equal(t, "11851.00", row[13])
	assert.Equal(t, "5000.00", row[14])
	assert.Equal(t, "6851.00", row[15])
	assert.Equal(t, "Partially Paid", row[16])
	assert.Equal(t, "2025-02-15", row[17])
	assert.Equal(t, "2", row[18])
}

func TestWriteCustomers(t *testing.T) {
	c := domain.Customer{
		ID:    uuid.New(),
		Name:  "Acme Traders",
		Email: "accounts@acme.example",
		Phone: "9876543210",
		GSTIN: "29ABCDE1234F1Z5",
		PAN:   "ABCDE1234F",
		Address: domain.Address{
			State:     "Karnataka",
			StateCode: "29",
		},
		CustomerType:   domain.CustomerB2B,
		CreditLimit:    100000,
		CreditDays:     30,
		OpeningBalance: 2500.50,
		Status:         domain.PartyActive,
	}

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteCustomerHeader())
	require.NoError(t, w.WriteCustomers([]domain.Customer{c}))
	w.Flush()
	require.NoError(t, w.Error())

	r := csv.NewReader(&buf)
	header, err := r.Read()
	require.NoError(t, err)
	assert.Len(t, header, 12)

	row, err := r.Read()
	require.NoError(t, err)
	assert.Equal(t, "Acme Traders", row[0])
	assert.Equal(t, "29ABCDE1234F1Z5", row[3])
	assert.Equal(t, "Karnataka", row[5])
	assert.Equal(t, "29", row[6])
	assert.Equal(t, "B2B", row[7])
	assert.Equal(t, "100000.00", row[8])
	assert.Equal(t, "30", row[9])
	assert.Equal(t, "2500.50", row[10])
	assert.Equal(t, "Active", row[11])
}

func TestWriteInvoices_MonetaryFormatting(t *testing.T) {
	inv := domain.Invoice{
		InvoiceNumber: "INV-0001",
		TaxableAmount: 1000,    // whole number
		TotalCGST:     99.999,  // rounds to 2 decimal places
		TotalSGST:     0.1,     // trailing zero
		GrandTotal:    1100.10, // exact
	}

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteInvoices([]domain.Invoice{inv}))
	w.Flush()

	r := csv.NewReader(&buf)
	row, err := r.Read()
	require.NoError(t, err)

	assert.Equal(t, "1000.00", row[7])
	assert.Equal(t, "100.00", row[8])
	assert.Equal(t, "0.10", row[9])
	assert.Equal(t, "1100.10", row[13])
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple", "Q3 Sales Invoices", "Q3_Sales_Invoices"},
		{"special chars", "FY 2024-25 / Q3 (Oct–Dec)", "FY_2024-25_Q3_Oct_Dec"},
		{"unicode", "कंपनी Invoices", "Invoices"},
		{"hyphens and underscores preserved", "my-export_2025", "my-export_2025"},
		{"consecutive underscores collapsed", "test___export", "test_export"},
		{"leading/trailing cleaned", "  hello  ", "hello"},
		{
			"long name truncated",
			"abcdefghijklmnopqrstuvwxyz-abcdefghijklmnopqrstuvwxyz-abcdefghijklmnopqrstuvwxyz-abcdefghijklmnopqrstuvwxyz-extra",
			"abcdefghijklmnopqrstuvwxyz-abcdefghijklmnopqrstuvwxyz-abcdefghijklmnopqrstuvwxyz-abcdefghijklmnopqrs",
		},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeFilename(tt.input))
		})
	}
}

func TestBuildFilename(t *testing.T) {
	filename := BuildFilename("Q3 Sales Invoices")
	today := time.Now().Format("2006-01-02")
	assert.Equal(t, "Q3_Sales_Invoices_"+today+".csv", filename)
}
