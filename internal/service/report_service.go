package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"lekha/internal/domain"
	"lekha/internal/ledger"
	"lekha/internal/port"
	"lekha/internal/tds"
)

// TaxTotals accumulates GST components over a set of documents.
type TaxTotals struct {
	TaxableAmount float64 `json:"taxable_amount"`
	CGST          float64 `json:"cgst"`
	SGST          float64 `json:"sgst"`
	IGST          float64 `json:"igst"`
	Cess          float64 `json:"cess"`
	TotalTax      float64 `json:"total_tax"`
	GrandTotal    float64 `json:"grand_total"`
	DocumentCount int     `json:"document_count"`
}

// GSTSummary is the outward/inward tax position for a period.
type GSTSummary struct {
	From       time.Time `json:"from"`
	To         time.Time `json:"to"`
	Outward    TaxTotals `json:"outward"`
	Inward     TaxTotals `json:"inward"`
	ITCClaimed float64   `json:"itc_claimed"`
	// NetLiability is output tax less claimed input tax credit.
	NetLiability float64 `json:"net_liability"`
}

// TDSSectionSummary aggregates withholding under one section.
type TDSSectionSummary struct {
	Section       string  `json:"section"`
	Category      string  `json:"category"`
	PaymentAmount float64 `json:"payment_amount"`
	TDSAmount     float64 `json:"tds_amount"`
	DocumentCount int     `json:"document_count"`
}

// TDSSummary is the withholding position for a financial year.
type TDSSummary struct {
	FinancialYear string              `json:"financial_year"`
	Sections      []TDSSectionSummary `json:"sections"`
	TotalTDS      float64             `json:"total_tds"`
	Quarters      [4]tds.Quarter      `json:"quarters"`
}

// ReportService provides period reports over finalized documents.
type ReportService interface {
	GSTSummary(ctx context.Context, companyID uuid.UUID, from, to time.Time) (*GSTSummary, error)
	TDSSummary(ctx context.Context, companyID uuid.UUID, financialYear string) (*TDSSummary, error)
	AgingReport(ctx context.Context, companyID uuid.UUID, now time.Time) (*ledger.Report, error)
}

type reportService struct {
	invoiceRepo  port.InvoiceRepository
	purchaseRepo port.PurchaseRepository
}

// NewReportService creates a new ReportService implementation.
func NewReportService(invoiceRepo port.InvoiceRepository, purchaseRepo port.PurchaseRepository) ReportService {
	return &reportService{invoiceRepo: invoiceRepo, purchaseRepo: purchaseRepo}
}

// GSTSummary aggregates the stored tax rollups. Cancelled documents are
// excluded; the derived fields are trusted as persisted, never
// recomputed here.
func (s *reportService) GSTSummary(ctx context.Context, companyID uuid.UUID, from, to time.Time) (*GSTSummary, error) {
	invoices, err := s.invoiceRepo.ListByPeriod(ctx, companyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("report.GSTSummary: %w", err)
	}
	purchases, err := s.purchaseRepo.ListByPeriod(ctx, companyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("report.GSTSummary: %w", err)
	}

	summary := &GSTSummary{From: from, To: to}

	for _, inv := range invoices {
		if inv.Status == domain.StatusCancelled {
			continue
		}
		summary.Outward.TaxableAmount += inv.TaxableAmount
		summary.Outward.CGST += inv.TotalCGST
		summary.Outward.SGST += inv.TotalSGST
		summary.Outward.IGST += inv.TotalIGST
		summary.Outward.Cess += inv.TotalCess
		summary.Outward.TotalTax += inv.TotalTax
		summary.Outward.GrandTotal += inv.GrandTotal
		summary.Outward.DocumentCount++
	}

	for _, p := range purchases {
		if p.Status == domain.StatusCancelled {
			continue
		}
		summary.Inward.TaxableAmount += p.TaxableAmount
		summary.Inward.CGST += p.TotalCGST
		summary.Inward.SGST += p.TotalSGST
		summary.Inward.IGST += p.TotalIGST
		summary.Inward.Cess += p.TotalCess
		summary.Inward.TotalTax += p.TotalTax
		summary.Inward.GrandTotal += p.GrandTotal
		summary.Inward.DocumentCount++
		if p.ITCClaimed {
			summary.ITCClaimed += p.ITCAmount
		}
	}

	summary.NetLiability = summary.Outward.TotalTax - summary.ITCClaimed
	return summary, nil
}

// TDSSummary aggregates withholding on purchase bills across the
// financial year, grouped by section, alongside the filing calendar.
func (s *reportService) TDSSummary(ctx context.Context, companyID uuid.UUID, financialYear string) (*TDSSummary, error) {
	quarters := tds.Quarters(financialYear)
	from := quarters[0].StartDate
	to := quarters[3].EndDate

	purchases, err := s.purchaseRepo.ListByPeriod(ctx, companyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("report.TDSSummary: %w", err)
	}

	bySection := map[string]*TDSSectionSummary{}
	var order []string
	summary := &TDSSummary{FinancialYear: financialYear, Quarters: quarters}

	for _, p := range purchases {
		if p.Status == domain.StatusCancelled || !p.TDSApplicable {
			continue
		}
		row, ok := bySection[p.TDSSection]
		if !ok {
			row = &TDSSectionSummary{Section: p.TDSSection, Category: p.TDSCategory}
			bySection[p.TDSSection] = row
			order = append(order, p.TDSSection)
		}
		row.PaymentAmount += p.GrandTotal
		row.TDSAmount += p.TDSAmount
		row.DocumentCount++
		summary.TotalTDS += p.TDSAmount
	}

	for _, section := range order {
		summary.Sections = append(summary.Sections, *bySection[section])
	}
	return summary, nil
}

// AgingReport ages every outstanding invoice of the company. Credit
// headroom is a per-customer figure, so it is reported as zero here.
func (s *reportService) AgingReport(ctx context.Context, companyID uuid.UUID, now time.Time) (*ledger.Report, error) {
	invoices, err := s.invoiceRepo.ListOutstanding(ctx, companyID, uuid.Nil)
	if err != nil {
		return nil, fmt.Errorf("report.AgingReport: %w", err)
	}

	docs := make([]ledger.OutstandingDoc, 0, len(invoices))
	for _, inv := range invoices {
		docs = append(docs, ledger.OutstandingDoc{
			ID:            inv.ID,
			Number:        inv.InvoiceNumber,
			Date:          inv.InvoiceDate,
			DueDate:       inv.DueDate,
			GrandTotal:    inv.GrandTotal,
			PaidAmount:    inv.PaidAmount,
			BalanceAmount: inv.BalanceAmount,
			Status:        inv.Status,
		})
	}

	report := ledger.Age(docs, 0, now)
	return &report, nil
}
