package ledger

import (
	"time"

	"github.com/google/uuid"

	"lekha/internal/domain"
)

// AgeBucket labels how long past due an outstanding document is.
type AgeBucket string

const (
	BucketCurrent AgeBucket = "current"
	Bucket31to60  AgeBucket = "days31to60"
	Bucket61to90  AgeBucket = "days61to90"
	BucketOver90  AgeBucket = "over90"
)

// OutstandingDoc is one document considered for aging.
type OutstandingDoc struct {
	ID            uuid.UUID             `json:"id"`
	Number        string                `json:"number"`
	Date          time.Time             `json:"date"`
	DueDate       time.Time             `json:"due_date"`
	GrandTotal    float64               `json:"grand_total"`
	PaidAmount    float64               `json:"paid_amount"`
	BalanceAmount float64               `json:"balance_amount"`
	Status        domain.DocumentStatus `json:"status"`
}

// AgedDoc is an outstanding document with its derived age.
type AgedDoc struct {
	OutstandingDoc
	DaysOverdue int       `json:"days_overdue"`
	AgeCategory AgeBucket `json:"age_category"`
}

// Buckets holds the outstanding balance per age band.
type Buckets struct {
	Current float64 `json:"current"`
	D31to60 float64 `json:"days31to60"`
	D61to90 float64 `json:"days61to90"`
	Over90  float64 `json:"over90"`
}

// Report is the aged-receivables breakdown for a party.
type Report struct {
	Docs             []AgedDoc `json:"outstanding_invoices"`
	Aging            Buckets   `json:"aging"`
	TotalOutstanding float64   `json:"total_outstanding"`
	OverdueAmount    float64   `json:"overdue_amount"`
	CreditAvailable  float64   `json:"credit_available"`
}

// daysOverdue is the whole number of days between the due date and the
// evaluation time; negative when not yet due.
func daysOverdue(dueDate, now time.Time) int {
	if dueDate.IsZero() {
		return 0
	}
	return int(now.Sub(dueDate).Hours() / 24)
}

// bucket assigns an overdue age to a band. Boundaries are strict: day
// 30 is still current, day 31 falls in the 31-60 band.
func bucket(days int) AgeBucket {
	switch {
	case days > 90:
		return BucketOver90
	case days > 60:
		return Bucket61to90
	case days > 30:
		return Bucket31to60
	default:
		return BucketCurrent
	}
}

// Age buckets the outstanding documents of a party by days overdue at
// the given evaluation time. Only documents with a positive balance in
// Sent or Partially Paid count; everything else is skipped. The
// reported DaysOverdue is clamped to zero for display, but bucketing
// uses the raw value.
func Age(docs []OutstandingDoc, creditLimit float64, now time.Time) Report {
	report := Report{Docs: make([]AgedDoc, 0, len(docs))}

	for _, d := range docs {
		if d.BalanceAmount <= 0 {
			continue
		}
		if d.Status != domain.StatusSent && d.Status != domain.StatusPartiallyPaid {
			continue
		}

		days := daysOverdue(d.DueDate, now)
		cat := bucket(days)
		switch cat {
		case BucketOver90:
			report.Aging.Over90 += d.BalanceAmount
		case Bucket61to90:
			report.Aging.D61to90 += d.BalanceAmount
		case Bucket31to60:
			report.Aging.D31to60 += d.BalanceAmount
		default:
			report.Aging.Current += d.BalanceAmount
		}

		if days < 0 {
			days = 0
		}
		report.Docs = append(report.Docs, AgedDoc{
			OutstandingDoc: d,
			DaysOverdue:    days,
			AgeCategory:    cat,
		})
	}

	report.TotalOutstanding = report.Aging.Current + report.Aging.D31to60 +
		report.Aging.D61to90 + report.Aging.Over90
	report.OverdueAmount = report.Aging.D31to60 + report.Aging.D61to90 + report.Aging.Over90

	if available := creditLimit - report.TotalOutstanding; available > 0 {
		report.CreditAvailable = available
	}

	return report
}
