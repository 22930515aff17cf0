package gst

import "regexp"

// GSTIN layout: 2-digit state code, 10-character PAN, entity code,
// literal Z, checksum character.
var gstinPattern = regexp.MustCompile(`^\d{2}[A-Z]{5}\d{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)

// ValidGSTIN reports whether the identifier matches the GSTIN format.
func ValidGSTIN(gstin string) bool {
	return gstinPattern.MatchString(gstin)
}

// StateCodeFromGSTIN extracts the two-digit state code from a GSTIN.
// The second return is false when the GSTIN is malformed; callers must
// treat that as a validation failure rather than defaulting the state.
func StateCodeFromGSTIN(gstin string) (string, bool) {
	if !ValidGSTIN(gstin) {
		return "", false
	}
	return gstin[:2], true
}
