package tds

import "regexp"

var panPattern = regexp.MustCompile(`^[A-Z]{5}\d{4}[A-Z]$`)

// ValidPAN reports whether the identifier matches the PAN format
// (5 letters, 4 digits, 1 letter).
func ValidPAN(pan string) bool {
	return panPattern.MatchString(pan)
}
