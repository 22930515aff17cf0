package billing

import "fmt"

// DocumentNumber renders a document number from a series prefix and
// the company-owned counter, e.g. ("INV", 7) → "INV-0007". The counter
// itself is incremented atomically by the persistence layer; a number
// is assigned exactly once at creation and never reassigned on edit.
func DocumentNumber(prefix string, counter int64) string {
	return fmt.Sprintf("%s-%04d", prefix, counter)
}
