// Package ledger builds the running-balance transaction ledger and the
// aged-receivables report for a party. Both are pure projections over
// current document state: callers recompute them on demand rather than
// caching, and supply an explicit evaluation time.
package ledger

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"lekha/internal/domain"
)

// EntryType labels a ledger entry.
type EntryType string

const (
	EntryOpening EntryType = "Opening"
	EntryInvoice EntryType = "Invoice"
	EntryPayment EntryType = "Payment"
)

// Entry is one row of the ledger. Balance is a snapshot of the running
// balance after this entry took effect, not a derivable value.
type Entry struct {
	Date        time.Time  `json:"date"`
	Description string     `json:"description"`
	Debit       float64    `json:"debit"`
	Credit      float64    `json:"credit"`
	Balance     float64    `json:"balance"`
	Type        EntryType  `json:"type"`
	Reference   *uuid.UUID `json:"reference,omitempty"`
}

// Summary totals a statement.
type Summary struct {
	OpeningBalance float64 `json:"opening_balance"`
	ClosingBalance float64 `json:"closing_balance"`
	TotalDebits    float64 `json:"total_debits"`
	TotalCredits   float64 `json:"total_credits"`
}

// Statement is the full ledger of a party.
type Statement struct {
	Entries []Entry `json:"transactions"`
	Summary Summary `json:"summary"`
}

// PartyInfo is the slice of a party the ledger needs.
type PartyInfo struct {
	Name           string
	OpeningBalance float64
	CreatedAt      time.Time
}

// DocumentEvent is one finalized document feeding the ledger: its gross
// amount debits the party, each recorded payment credits it.
type DocumentEvent struct {
	ID         uuid.UUID
	Number     string
	Date       time.Time
	GrandTotal float64
	Payments   []domain.Payment
}

// Build replays a party's documents into a chronological ledger. The
// caller must supply documents (and their payments) in non-decreasing
// date order; the builder does not sort defensively, since each entry's
// stored balance snapshot depends on replay order.
func Build(party PartyInfo, docs []DocumentEvent) Statement {
	balance := party.OpeningBalance

	opening := Entry{
		Date:        party.CreatedAt,
		Description: "Opening Balance",
		Balance:     balance,
		Type:        EntryOpening,
	}
	if party.OpeningBalance > 0 {
		opening.Debit = party.OpeningBalance
	} else if party.OpeningBalance < 0 {
		opening.Credit = -party.OpeningBalance
	}

	entries := []Entry{opening}

	for _, doc := range docs {
		balance += doc.GrandTotal
		entries = append(entries, Entry{
			Date:        doc.Date,
			Description: fmt.Sprintf("Invoice %s", doc.Number),
			Debit:       doc.GrandTotal,
			Balance:     balance,
			Type:        EntryInvoice,
			Reference:   &doc.ID,
		})

		for _, p := range doc.Payments {
			balance -= p.Amount
			entries = append(entries, Entry{
				Date:        p.PaymentDate,
				Description: fmt.Sprintf("Payment for Invoice %s", doc.Number),
				Credit:      p.Amount,
				Balance:     balance,
				Type:        EntryPayment,
				Reference:   &doc.ID,
			})
		}
	}

	summary := Summary{
		OpeningBalance: party.OpeningBalance,
		ClosingBalance: balance,
	}
	for _, e := range entries {
		summary.TotalDebits += e.Debit
		summary.TotalCredits += e.Credit
	}

	return Statement{Entries: entries, Summary: summary}
}
