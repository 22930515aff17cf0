package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"lekha/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// invoiceColumns defines the invoice CSV header row (19 columns).
var invoiceColumns = []string{
	"Invoice Number",
	"Invoice Date",
	"Invoice Type",
	"Customer Name",
	"Customer GSTIN",
	"Place of Supply",
	"Supply Type",
	"Taxable Amount",
	"CGST",
	"SGST",
	"IGST",
	"Cess",
	"Round Off",
	"Grand Total",
	"Paid Amount",
	"Balance",
	"Status",
	"Due Date",
	"Line Item Count",
}

// customerColumns defines the customer CSV header row (12 columns).
var customerColumns = []string{
	"Name",
	"Email",
	"Phone",
	"GSTIN",
	"PAN",
	"State",
	"State Code",
	"Customer Type",
	"Credit Limit",
	"Credit Days",
	"Opening Balance",
	"Status",
}

// Writer wraps csv.Writer for exporting records as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteInvoiceHeader writes the invoice header row.
func (w *Writer) WriteInvoiceHeader() error {
	return w.csv.Write(invoiceColumns)
}

// WriteInvoices converts a batch of invoices to CSV rows and writes them.
func (w *Writer) WriteInvoices(invoices []domain.Invoice) error {
	for i := range invoices {
		row := invoiceToRow(&invoices[i])
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// WriteCustomerHeader writes the customer header row.
func (w *Writer) WriteCustomerHeader() error {
	return w.csv.Write(customerColumns)
}

// WriteCustomers converts a batch of customers to CSV rows and writes them.
func (w *Writer) WriteCustomers(customers []domain.Customer) error {
	for i := range customers {
		row := customerToRow(&customers[i])
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

func invoiceToRow(inv *domain.Invoice) []string {
	row := make([]string, len(invoiceColumns))
	row[0] = inv.InvoiceNumber
	row[1] = inv.InvoiceDate.Format("2006-01-02")
	row[2] = string(inv.InvoiceType)
	row[3] = inv.CustomerName
	row[4] = inv.CustomerGSTIN
	row[5] = inv.PlaceOfSupply
	row[6] = inv.SupplyType
	row[7] = formatMoney(inv.TaxableAmount)
	row[8] = formatMoney(inv.TotalCGST)
	row[9] = formatMoney(inv.TotalSGST)
	row[10] = formatMoney(inv.TotalIGST)
	row[11] = formatMoney(inv.TotalCess)
	row[12] = formatMoney(inv.RoundOff)
	row[13] = formatMoney(inv.GrandTotal)
	row[14] = formatMoney(inv.PaidAmount)
	row[15] = formatMoney(inv.BalanceAmount)
	row[16] = string(inv.Status)
	row[17] = inv.DueDate.Format("2006-01-02")
	row[18] = strconv.Itoa(len(inv.Lines))
	return row
}

func customerToRow(c *domain.Customer) []string {
	row := make([]string, len(customerColumns))
	row[0] = c.Name
	row[1] = c.Email
	row[2] = c.Phone
	row[3] = c.GSTIN
	row[4] = c.PAN
	row[5] = c.Address.State
	row[6] = c.Address.StateCode
	row[7] = string(c.CustomerType)
	row[8] = formatMoney(c.CreditLimit)
	row[9] = strconv.Itoa(c.CreditDays)
	row[10] = formatMoney(c.OpeningBalance)
	row[11] = string(c.Status)
	return row
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a name for use in Content-Disposition.
// Replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized filename for Content-Disposition header.
// Format: {sanitized_name}_{YYYY-MM-DD}.csv
func BuildFilename(name string) string {
	sanitized := SanitizeFilename(name)
	date := time.Now().Format("2006-01-02")
	return fmt.Sprintf("%s_%s.csv", sanitized, date)
}
