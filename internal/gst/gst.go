// Package gst implements the GST computation engine: supply
// classification, CGST/SGST/IGST decomposition, GSTIN validation and
// per-line tax computation. Every function is a pure transformation of
// its inputs; the package holds no mutable state.
package gst

// SupplyType classifies a supply by the supplier and customer states.
type SupplyType string

const (
	Intrastate SupplyType = "Intrastate"
	Interstate SupplyType = "Interstate"
	Export     SupplyType = "Export"
)

// ExportStateCode is the sentinel customer state code for export supplies.
const ExportStateCode = "EXPORT"

// GetSupplyType determines the supply type from the supplier's and
// customer's GST state codes. A missing customer state code (or the
// EXPORT sentinel) means the supply leaves the country.
func GetSupplyType(supplierStateCode, customerStateCode string) SupplyType {
	if customerStateCode == "" || customerStateCode == ExportStateCode {
		return Export
	}
	if supplierStateCode == customerStateCode {
		return Intrastate
	}
	return Interstate
}

// Breakdown is the decomposition of a GST amount into its components.
// CGST+SGST+IGST always equals Total: the intrastate halves are computed
// from the single total, never rounded independently.
type Breakdown struct {
	CGST  float64 `json:"cgst_amount"`
	SGST  float64 `json:"sgst_amount"`
	IGST  float64 `json:"igst_amount"`
	Total float64 `json:"total_gst"`
}

// Calculate decomposes GST on a taxable amount. A zero rate or an export
// supply yields a zero breakdown; this is a valid result, not an error.
func Calculate(taxableAmount, gstRate float64, supplyType SupplyType) Breakdown {
	var b Breakdown
	if gstRate == 0 || supplyType == Export {
		return b
	}

	b.Total = taxableAmount * gstRate / 100
	switch supplyType {
	case Intrastate:
		b.CGST = b.Total / 2
		b.SGST = b.Total / 2
	case Interstate:
		b.IGST = b.Total
	}
	return b
}

// reverseChargeServices lists the service categories on which reverse
// charge applies regardless of registration. This is a policy table, not
// a complete rendering of the notified RCM list.
var reverseChargeServices = map[string]bool{
	"Legal Services":    true,
	"Manpower Services": true,
	"Security Services": true,
	"Cleaning Services": true,
	"Catering Services": true,
}

// IsReverseChargeApplicable reports whether the recipient must pay the
// tax: either the supplier is unregistered while the customer is
// registered, or the service category is in the notified list.
func IsReverseChargeApplicable(supplierGSTIN, customerGSTIN, serviceType string) bool {
	if supplierGSTIN == "" && customerGSTIN != "" {
		return true
	}
	return reverseChargeServices[serviceType]
}

// LineInput is the caller-supplied portion of a line item.
type LineInput struct {
	Quantity float64
	Rate     float64
	Discount float64 // percentage
	GSTRate  float64
	CessRate float64
}

// LineAmounts holds every amount derived from a LineInput.
type LineAmounts struct {
	Amount         float64
	DiscountAmount float64
	TaxableAmount  float64
	CGSTAmount     float64
	SGSTAmount     float64
	IGSTAmount     float64
	CessAmount     float64
	Total          float64
}

// ComputeLine derives all amounts for one line item: gross amount,
// percentage discount, taxable base, GST decomposition per the supply
// type, cess on the taxable base, and the line total. Cess follows the
// GST zero rule on exports.
func ComputeLine(in LineInput, supplyType SupplyType) LineAmounts {
	amount := in.Quantity * in.Rate
	discountAmount := amount * in.Discount / 100
	taxable := amount - discountAmount

	b := Calculate(taxable, in.GSTRate, supplyType)

	var cess float64
	if in.CessRate > 0 && supplyType != Export {
		cess = taxable * in.CessRate / 100
	}

	return LineAmounts{
		Amount:         amount,
		DiscountAmount: discountAmount,
		TaxableAmount:  taxable,
		CGSTAmount:     b.CGST,
		SGSTAmount:     b.SGST,
		IGSTAmount:     b.IGST,
		CessAmount:     cess,
		Total:          taxable + b.Total + cess,
	}
}
