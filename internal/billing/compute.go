// Package billing derives every stored figure on an invoice or
// purchase bill from its line items and payments: per-line tax via the
// GST engine, document rollups, round-off, withholding on purchases,
// and the payment-driven status. Recomputation is a pure function of
// the document's inputs; callers invoke it after any line or payment
// mutation and persist the result verbatim.
package billing

import (
	"math"

	"lekha/internal/currency"
	"lekha/internal/domain"
	"lekha/internal/gst"
	"lekha/internal/tds"
)

// computeLines recomputes the derived amounts of every line in place
// and returns the rollup sums. The line's tax components and its total
// come from the same engine call, so a line can never disagree with
// its own components.
func computeLines(lines []domain.DocumentLine, supplyType gst.SupplyType) (sub, disc, taxable, cgst, sgst, igst, cess float64) {
	for i := range lines {
		l := &lines[i]
		a := gst.ComputeLine(gst.LineInput{
			Quantity: l.Quantity,
			Rate:     l.Rate,
			Discount: l.Discount,
			GSTRate:  l.GSTRate,
			CessRate: l.CessRate,
		}, supplyType)

		l.Amount = a.Amount
		l.DiscountAmount = a.DiscountAmount
		l.TaxableAmount = a.TaxableAmount
		l.CGSTAmount = a.CGSTAmount
		l.SGSTAmount = a.SGSTAmount
		l.IGSTAmount = a.IGSTAmount
		l.CessAmount = a.CessAmount
		l.TotalAmount = a.Total

		sub += a.Amount
		disc += a.DiscountAmount
		taxable += a.TaxableAmount
		cgst += a.CGSTAmount
		sgst += a.SGSTAmount
		igst += a.IGSTAmount
		cess += a.CessAmount
	}
	return
}

// roundOff nudges a raw total to the nearest whole rupee. Rounding the
// grand total (rather than each line) is a reporting policy choice,
// applied identically to invoices and bills.
func roundOff(raw float64) (grand, off float64) {
	grand = math.Round(raw)
	return grand, grand - raw
}

// deriveStatus applies the payment-driven state machine. Cancelled is
// terminal and left untouched; Draft survives only while nothing has
// been paid.
func deriveStatus(current domain.DocumentStatus, paid, grandTotal float64) domain.DocumentStatus {
	if current == domain.StatusCancelled {
		return current
	}
	switch {
	case paid == 0:
		if current == domain.StatusDraft {
			return domain.StatusDraft
		}
		return domain.StatusSent
	case paid >= grandTotal:
		return domain.StatusPaid
	default:
		return domain.StatusPartiallyPaid
	}
}

// sumPayments totals the append-only payment list.
func sumPayments(payments []domain.Payment) float64 {
	var paid float64
	for _, p := range payments {
		paid += p.Amount
	}
	return paid
}

// ComputeInvoice recomputes all derived fields of an invoice from its
// line items and payments.
func ComputeInvoice(inv *domain.Invoice) {
	st := gst.SupplyType(inv.SupplyType)

	sub, disc, taxable, cgst, sgst, igst, cess := computeLines(inv.Lines, st)
	inv.SubTotal = sub
	inv.TotalDiscount = disc
	inv.TaxableAmount = taxable
	inv.TotalCGST = cgst
	inv.TotalSGST = sgst
	inv.TotalIGST = igst
	inv.TotalCess = cess
	inv.TotalTax = cgst + sgst + igst + cess

	inv.GrandTotal, inv.RoundOff = roundOff(taxable + inv.TotalTax)
	inv.AmountInWords = currency.ToWords(inv.GrandTotal)

	inv.PaidAmount = sumPayments(inv.Payments)
	inv.BalanceAmount = inv.GrandTotal - inv.PaidAmount
	inv.Status = deriveStatus(inv.Status, inv.PaidAmount, inv.GrandTotal)
}

// ComputePurchase recomputes all derived fields of a purchase bill,
// including the withholding on the grand total. The TDS category and
// payee particulars come from the vendor; the balance is tracked
// against the net payable, and the input tax credit excludes cess.
func ComputePurchase(p *domain.Purchase, payeeType tds.PayeeType, hasPAN bool) {
	st := gst.SupplyType(p.SupplyType)

	sub, disc, taxable, cgst, sgst, igst, cess := computeLines(p.Lines, st)
	p.SubTotal = sub
	p.TotalDiscount = disc
	p.TaxableAmount = taxable
	p.TotalCGST = cgst
	p.TotalSGST = sgst
	p.TotalIGST = igst
	p.TotalCess = cess
	p.TotalTax = cgst + sgst + igst + cess

	p.GrandTotal, p.RoundOff = roundOff(taxable + p.TotalTax)

	if p.TDSCategory != "" {
		r := tds.Calculate(p.TDSCategory, p.GrandTotal, payeeType, hasPAN)
		p.TDSApplicable = r.Applicable
		p.TDSSection = r.Section
		p.TDSRate = r.Rate
		p.TDSAmount = r.TDSAmount
		p.NetPayable = r.NetPayable
	} else {
		p.TDSApplicable = false
		p.TDSSection = ""
		p.TDSRate = 0
		p.TDSAmount = 0
		p.NetPayable = p.GrandTotal
	}

	p.ITCAmount = p.TotalCGST + p.TotalSGST + p.TotalIGST

	p.PaidAmount = sumPayments(p.Payments)
	p.BalanceAmount = p.NetPayable - p.PaidAmount
	p.Status = deriveStatus(p.Status, p.PaidAmount, p.NetPayable)
}
