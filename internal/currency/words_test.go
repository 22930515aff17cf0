package currency_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lekha/internal/currency"
)

func TestToWords(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{"zero", 0, "Zero Rupees Only"},
		{"single_digit", 5, "Five Rupees Only"},
		{"teens", 14, "Fourteen Rupees Only"},
		{"tens", 50, "Fifty Rupees Only"},
		{"compound_tens", 42, "Forty Two Rupees Only"},
		{"hundreds", 300, "Three Hundred Rupees Only"},
		{"hundreds_compound", 456, "Four Hundred Fifty Six Rupees Only"},
		{"thousand", 1000, "One Thousand Rupees Only"},
		{"thousand_compound", 2534, "Two Thousand Five Hundred Thirty Four Rupees Only"},
		{"lakh", 100000, "One Lakh Rupees Only"},
		{"lakh_compound", 123456, "One Lakh Twenty Three Thousand Four Hundred Fifty Six Rupees Only"},
		{"crore", 10000000, "One Crore Rupees Only"},
		{"crore_compound", 12345678, "One Crore Twenty Three Lakh Forty Five Thousand Six Hundred Seventy Eight Rupees Only"},
		{"many_crores", 250000000, "Twenty Five Crore Rupees Only"},
		{"negative", -50, "Minus Fifty Rupees Only"},
		{"paise_only", 0.75, "Seventy Five Paise Only"},
		{"rupees_and_paise", 1.50, "One Rupees and Fifty Paise Only"},
		{"large_with_paise", 100000.25, "One Lakh Rupees and Twenty Five Paise Only"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, currency.ToWords(tt.amount))
		})
	}
}

func TestToWords_PaiseRoundsUpToRupee(t *testing.T) {
	// 4.999 rounds its fraction to 100 paise, which carries into the
	// rupee part rather than reading "Hundred Paise".
	assert.Equal(t, "Five Rupees Only", currency.ToWords(4.999))
}

func TestFormatINR(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{"three_digits", 123, "₹123.00"},
		{"five_digits", 12345, "₹12,345.00"},
		{"lakh_scale", 1234567, "₹12,34,567.00"},
		{"crore_scale", 123456789, "₹12,34,56,789.00"},
		{"negative", -1234567, "₹-12,34,567.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, currency.FormatINR(tt.amount, 2))
		})
	}

	t.Run("zero_decimals", func(t *testing.T) {
		assert.Equal(t, "₹12,34,567", currency.FormatINR(1234567, 0))
	})
}

func TestFormatForInvoice(t *testing.T) {
	got := currency.FormatForInvoice(100000)
	assert.Equal(t, "₹1,00,000.00", got.Amount)
	assert.Equal(t, "One Lakh Rupees Only", got.AmountInWords)
	assert.Equal(t, "INR", got.Currency)
}
