package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"lekha/internal/csvexport"
	"lekha/internal/currency"
	"lekha/internal/port"
)

// ExportService streams CSV and XLSX exports of company records.
type ExportService interface {
	CustomersCSV(ctx context.Context, companyID uuid.UUID, w io.Writer) error
	InvoicesCSV(ctx context.Context, companyID uuid.UUID, from, to time.Time, w io.Writer) error
	// StatementXLSX renders a customer's ledger statement as a
	// spreadsheet.
	StatementXLSX(ctx context.Context, companyID, customerID uuid.UUID, from, to time.Time, w io.Writer) error
}

type exportService struct {
	customerRepo port.CustomerRepository
	invoiceRepo  port.InvoiceRepository
	customerSvc  CustomerService
}

// NewExportService creates a new ExportService implementation.
func NewExportService(
	customerRepo port.CustomerRepository,
	invoiceRepo port.InvoiceRepository,
	customerSvc CustomerService,
) ExportService {
	return &exportService{
		customerRepo: customerRepo,
		invoiceRepo:  invoiceRepo,
		customerSvc:  customerSvc,
	}
}

// exportPageSize bounds each repository fetch while paging through the
// full result set.
const exportPageSize = 500

func (s *exportService) CustomersCSV(ctx context.Context, companyID uuid.UUID, w io.Writer) error {
	if _, err := w.Write(csvexport.BOM); err != nil {
		return fmt.Errorf("export.CustomersCSV: %w", err)
	}

	cw := csvexport.NewWriter(w)
	if err := cw.WriteCustomerHeader(); err != nil {
		return fmt.Errorf("export.CustomersCSV: %w", err)
	}

	for offset := 0; ; offset += exportPageSize {
		customers, total, err := s.customerRepo.List(ctx, companyID, port.PartyFilter{
			Offset: offset,
			Limit:  exportPageSize,
		})
		if err != nil {
			return fmt.Errorf("export.CustomersCSV: %w", err)
		}
		if err := cw.WriteCustomers(customers); err != nil {
			return fmt.Errorf("export.CustomersCSV: %w", err)
		}
		if offset+len(customers) >= total || len(customers) == 0 {
			break
		}
	}

	cw.Flush()
	return cw.Error()
}

func (s *exportService) InvoicesCSV(ctx context.Context, companyID uuid.UUID, from, to time.Time, w io.Writer) error {
	invoices, err := s.invoiceRepo.ListByPeriod(ctx, companyID, from, to)
	if err != nil {
		return fmt.Errorf("export.InvoicesCSV: %w", err)
	}

	if _, err := w.Write(csvexport.BOM); err != nil {
		return fmt.Errorf("export.InvoicesCSV: %w", err)
	}

	cw := csvexport.NewWriter(w)
	if err := cw.WriteInvoiceHeader(); err != nil {
		return fmt.Errorf("export.InvoicesCSV: %w", err)
	}
	if err := cw.WriteInvoices(invoices); err != nil {
		return fmt.Errorf("export.InvoicesCSV: %w", err)
	}

	cw.Flush()
	return cw.Error()
}

func (s *exportService) StatementXLSX(ctx context.Context, companyID, customerID uuid.UUID, from, to time.Time, w io.Writer) error {
	customer, err := s.customerRepo.GetByID(ctx, companyID, customerID)
	if err != nil {
		return err
	}
	stmt, err := s.customerSvc.Ledger(ctx, companyID, customerID, from, to)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Statement"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("export.StatementXLSX: %w", err)
	}

	f.SetCellValue(sheet, "A1", "Statement of Account")
	f.SetCellValue(sheet, "A2", customer.Name)
	if customer.GSTIN != "" {
		f.SetCellValue(sheet, "A3", "GSTIN: "+customer.GSTIN)
	}

	headers := []string{"Date", "Description", "Debit", "Credit", "Balance"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 5)
		f.SetCellValue(sheet, cell, h)
	}

	row := 6
	for _, e := range stmt.Entries {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), e.Date.Format("02-01-2006"))
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), e.Description)
		if e.Debit != 0 {
			f.SetCellValue(sheet, fmt.Sprintf("C%d", row), e.Debit)
		}
		if e.Credit != 0 {
			f.SetCellValue(sheet, fmt.Sprintf("D%d", row), e.Credit)
		}
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), e.Balance)
		row++
	}

	row++
	f.SetCellValue(sheet, fmt.Sprintf("B%d", row), "Closing Balance")
	f.SetCellValue(sheet, fmt.Sprintf("E%d", row), stmt.Summary.ClosingBalance)
	row++
	f.SetCellValue(sheet, fmt.Sprintf("B%d", row), "Amount in Words")
	f.SetCellValue(sheet, fmt.Sprintf("E%d", row), currency.ToWords(stmt.Summary.ClosingBalance))

	if err := f.Write(w); err != nil {
		return fmt.Errorf("export.StatementXLSX: %w", err)
	}
	return nil
}
