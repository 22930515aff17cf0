// Package currency renders rupee amounts as words on the Indian
// numbering scale and formats figures with Indian digit grouping.
package currency

import (
	"math"
	"strings"
)

var ones = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

// belowHundred converts 0-99 to words.
func belowHundred(n int) string {
	if n < 20 {
		return ones[n]
	}
	s := tens[n/10]
	if n%10 != 0 {
		s += " " + ones[n%10]
	}
	return s
}

// belowThousand converts 0-999 to words.
func belowThousand(n int) string {
	var sb strings.Builder
	if n >= 100 {
		sb.WriteString(ones[n/100])
		sb.WriteString(" Hundred")
		n %= 100
		if n > 0 {
			sb.WriteString(" ")
		}
	}
	if n > 0 {
		sb.WriteString(belowHundred(n))
	}
	return sb.String()
}

// rupeesToWords renders an integer rupee amount on the crore/lakh/
// thousand scale.
func rupeesToWords(n int) string {
	if n == 0 {
		return ""
	}

	var sb strings.Builder
	if n >= 1e7 {
		sb.WriteString(belowThousand(n / 1e7))
		sb.WriteString(" Crore")
		n %= 1e7
		if n > 0 {
			sb.WriteString(" ")
		}
	}
	if n >= 1e5 {
		sb.WriteString(belowHundred(n / 1e5))
		sb.WriteString(" Lakh")
		n %= 1e5
		if n > 0 {
			sb.WriteString(" ")
		}
	}
	if n >= 1000 {
		sb.WriteString(belowHundred(n / 1000))
		sb.WriteString(" Thousand")
		n %= 1000
		if n > 0 {
			sb.WriteString(" ")
		}
	}
	if n > 0 {
		sb.WriteString(belowThousand(n))
	}
	return strings.TrimSpace(sb.String())
}

// ToWords converts a rupee amount to words, splitting rupees from a
// two-digit paise fraction. The rupee and paise clauses are joined with
// "and" only when both are present, and the result always ends in
// "Only".
func ToWords(amount float64) string {
	if amount == 0 {
		return "Zero Rupees Only"
	}
	if amount < 0 {
		return "Minus " + ToWords(math.Abs(amount))
	}

	rupees := int(math.Floor(amount))
	paise := int(math.Round((amount - math.Floor(amount)) * 100))
	if paise == 100 {
		rupees++
		paise = 0
	}

	var sb strings.Builder
	if rupees > 0 {
		sb.WriteString(rupeesToWords(rupees))
		sb.WriteString(" Rupees")
	}
	if paise > 0 {
		if sb.Len() > 0 {
			sb.WriteString(" and ")
		}
		sb.WriteString(belowHundred(paise))
		sb.WriteString(" Paise")
	}
	sb.WriteString(" Only")
	return sb.String()
}
