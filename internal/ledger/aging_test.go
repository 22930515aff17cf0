package ledger_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lekha/internal/domain"
	"lekha/internal/ledger"
)

var now = time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

func outstanding(balance float64, daysOverdue int, status domain.DocumentStatus) ledger.OutstandingDoc {
	return ledger.OutstandingDoc{
		Number:        "INV-0001",
		DueDate:       now.AddDate(0, 0, -daysOverdue),
		BalanceAmount: balance,
		Status:        status,
	}
}

func TestAge_Buckets(t *testing.T) {
	tests := []struct {
		name        string
		daysOverdue int
		want        ledger.AgeBucket
	}{
		{"not_yet_due", -10, ledger.BucketCurrent},
		{"due_today", 0, ledger.BucketCurrent},
		{"thirty_days", 30, ledger.BucketCurrent},
		{"thirty_one_days", 31, ledger.Bucket31to60},
		{"forty_five_days", 45, ledger.Bucket31to60},
		{"sixty_days", 60, ledger.Bucket31to60},
		{"sixty_one_days", 61, ledger.Bucket61to90},
		{"ninety_days", 90, ledger.Bucket61to90},
		{"ninety_one_days", 91, ledger.BucketOver90},
		{"half_year", 180, ledger.BucketOver90},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ledger.Age([]ledger.OutstandingDoc{
				outstanding(500, tt.daysOverdue, domain.StatusSent),
			}, 0, now)
			require.Len(t, r.Docs, 1)
			assert.Equal(t, tt.want, r.Docs[0].AgeCategory)
		})
	}
}

func TestAge_DaysOverdueClampedForDisplay(t *testing.T) {
	r := ledger.Age([]ledger.OutstandingDoc{
		outstanding(500, -15, domain.StatusSent),
	}, 0, now)
	require.Len(t, r.Docs, 1)
	assert.Equal(t, 0, r.Docs[0].DaysOverdue)
	assert.Equal(t, ledger.BucketCurrent, r.Docs[0].AgeCategory)
}

func TestAge_FiltersDocuments(t *testing.T) {
	r := ledger.Age([]ledger.OutstandingDoc{
		outstanding(0, 45, domain.StatusSent),            // no balance
		outstanding(100, 45, domain.StatusPaid),          // settled
		outstanding(100, 45, domain.StatusDraft),         // not issued
		outstanding(100, 45, domain.StatusCancelled),     // cancelled
		outstanding(200, 45, domain.StatusPartiallyPaid), // counted
	}, 0, now)

	require.Len(t, r.Docs, 1)
	assert.Equal(t, 200.0, r.TotalOutstanding)
	assert.Equal(t, 200.0, r.Aging.D31to60)
}

func TestAge_TotalsAndCredit(t *testing.T) {
	docs := []ledger.OutstandingDoc{
		outstanding(1000, 5, domain.StatusSent),
		outstanding(500, 45, domain.StatusSent),
		outstanding(250, 75, domain.StatusPartiallyPaid),
		outstanding(100, 120, domain.StatusSent),
	}
	r := ledger.Age(docs, 5000, now)

	assert.Equal(t, 1000.0, r.Aging.Current)
	assert.Equal(t, 500.0, r.Aging.D31to60)
	assert.Equal(t, 250.0, r.Aging.D61to90)
	assert.Equal(t, 100.0, r.Aging.Over90)
	assert.Equal(t, 1850.0, r.TotalOutstanding)
	assert.Equal(t, 850.0, r.OverdueAmount)
	assert.Equal(t, 3150.0, r.CreditAvailable)
}

func TestAge_CreditAvailableFloorsAtZero(t *testing.T) {
	r := ledger.Age([]ledger.OutstandingDoc{
		outstanding(9000, 10, domain.StatusSent),
	}, 5000, now)
	assert.Equal(t, 0.0, r.CreditAvailable)
}

func TestAge_NoDueDate(t *testing.T) {
	doc := outstanding(500, 0, domain.StatusSent)
	doc.DueDate = time.Time{}
	r := ledger.Age([]ledger.OutstandingDoc{doc}, 0, now)
	require.Len(t, r.Docs, 1)
	assert.Equal(t, 0, r.Docs[0].DaysOverdue)
	assert.Equal(t, ledger.BucketCurrent, r.Docs[0].AgeCategory)
}
