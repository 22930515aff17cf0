package currency

import (
	"fmt"
	"strings"
)

// groupIndian inserts commas per the Indian convention: the rightmost
// group has three digits, every group to its left has two.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	parts := []string{digits[len(digits)-3:]}
	rest := digits[:len(digits)-3]
	for len(rest) > 2 {
		parts = append([]string{rest[len(rest)-2:]}, parts...)
		rest = rest[:len(rest)-2]
	}
	if rest != "" {
		parts = append([]string{rest}, parts...)
	}
	return strings.Join(parts, ",")
}

// FormatINR renders an amount with the rupee sign and Indian digit
// grouping, e.g. 1234567 → "₹12,34,567.00".
func FormatINR(amount float64, decimals int) string {
	fixed := fmt.Sprintf("%.*f", decimals, amount)

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}

	whole, frac, hasFrac := strings.Cut(fixed, ".")
	out := "₹" + sign + groupIndian(whole)
	if hasFrac {
		out += "." + frac
	}
	return out
}

// InvoiceAmount is the presentation form of a document total.
type InvoiceAmount struct {
	Amount        string `json:"amount"`
	AmountInWords string `json:"amount_in_words"`
	Currency      string `json:"currency"`
}

// FormatForInvoice bundles the grouped figure and its words for
// printing on a document.
func FormatForInvoice(amount float64) InvoiceAmount {
	return InvoiceAmount{
		Amount:        FormatINR(amount, 2),
		AmountInWords: ToWords(amount),
		Currency:      "INR",
	}
}
