package ledger_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lekha/internal/domain"
	"lekha/internal/ledger"
)

func day(d int) time.Time {
	return time.Date(2025, 4, d, 0, 0, 0, 0, time.UTC)
}

func TestBuild_OpeningOnly(t *testing.T) {
	t.Run("positive_opening_is_debit", func(t *testing.T) {
		s := ledger.Build(ledger.PartyInfo{Name: "Acme", OpeningBalance: 500, CreatedAt: day(1)}, nil)
		require.Len(t, s.Entries, 1)
		e := s.Entries[0]
		assert.Equal(t, ledger.EntryOpening, e.Type)
		assert.Equal(t, 500.0, e.Debit)
		assert.Equal(t, 0.0, e.Credit)
		assert.Equal(t, 500.0, e.Balance)
		assert.Equal(t, 500.0, s.Summary.ClosingBalance)
	})

	t.Run("negative_opening_is_credit", func(t *testing.T) {
		s := ledger.Build(ledger.PartyInfo{OpeningBalance: -300, CreatedAt: day(1)}, nil)
		e := s.Entries[0]
		assert.Equal(t, 0.0, e.Debit)
		assert.Equal(t, 300.0, e.Credit)
		assert.Equal(t, -300.0, e.Balance)
	})

	t.Run("zero_opening", func(t *testing.T) {
		s := ledger.Build(ledger.PartyInfo{CreatedAt: day(1)}, nil)
		e := s.Entries[0]
		assert.Equal(t, 0.0, e.Debit)
		assert.Equal(t, 0.0, e.Credit)
		assert.Equal(t, 0.0, e.Balance)
	})
}

func TestBuild_InvoiceAndPayment(t *testing.T) {
	docID := uuid.New()
	s := ledger.Build(
		ledger.PartyInfo{Name: "Acme", OpeningBalance: 0, CreatedAt: day(1)},
		[]ledger.DocumentEvent{
			{
				ID:         docID,
				Number:     "INV-0001",
				Date:       day(1),
				GrandTotal: 1000,
				Payments: []domain.Payment{
					{PaymentDate: day(1), Amount: 400, Method: domain.PaymentUPI},
				},
			},
		},
	)

	require.Len(t, s.Entries, 3)

	assert.Equal(t, ledger.EntryOpening, s.Entries[0].Type)
	assert.Equal(t, 0.0, s.Entries[0].Balance)

	inv := s.Entries[1]
	assert.Equal(t, ledger.EntryInvoice, inv.Type)
	assert.Equal(t, "Invoice INV-0001", inv.Description)
	assert.Equal(t, 1000.0, inv.Debit)
	assert.Equal(t, 1000.0, inv.Balance)
	require.NotNil(t, inv.Reference)
	assert.Equal(t, docID, *inv.Reference)

	pay := s.Entries[2]
	assert.Equal(t, ledger.EntryPayment, pay.Type)
	assert.Equal(t, "Payment for Invoice INV-0001", pay.Description)
	assert.Equal(t, 400.0, pay.Credit)
	assert.Equal(t, 600.0, pay.Balance)

	assert.Equal(t, 600.0, s.Summary.ClosingBalance)
	assert.Equal(t, 1000.0, s.Summary.TotalDebits)
	assert.Equal(t, 400.0, s.Summary.TotalCredits)
}

// Entries appear in the order they hit the running balance; every
// stored balance is a snapshot of that replay.
func TestBuild_RunningBalanceAcrossDocuments(t *testing.T) {
	s := ledger.Build(
		ledger.PartyInfo{OpeningBalance: 100, CreatedAt: day(1)},
		[]ledger.DocumentEvent{
			{Number: "INV-0001", Date: day(2), GrandTotal: 1000,
				Payments: []domain.Payment{{PaymentDate: day(3), Amount: 1000}}},
			{Number: "INV-0002", Date: day(5), GrandTotal: 750},
		},
	)

	require.Len(t, s.Entries, 4)
	balances := []float64{100, 1100, 100, 850}
	for i, want := range balances {
		assert.Equal(t, want, s.Entries[i].Balance, "entry %d", i)
	}
	assert.Equal(t, 850.0, s.Summary.ClosingBalance)
	assert.Equal(t, 1850.0, s.Summary.TotalDebits)
	assert.Equal(t, 1000.0, s.Summary.TotalCredits)
}
