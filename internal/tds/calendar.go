package tds

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Quarter is one TDS return period within a financial year.
type Quarter struct {
	Quarter   string    `json:"quarter"`
	Period    string    `json:"period"`
	DueDate   string    `json:"due_date"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// Installment is one advance-tax due date with its cumulative obligation.
type Installment struct {
	Installment int     `json:"installment"`
	DueDate     string  `json:"due_date"`
	Percentage  float64 `json:"percentage"`
	Description string  `json:"description"`
}

// baseYear parses a financial-year label like "2024-25" or "24-25" into
// the calendar year the FY starts in.
func baseYear(financialYear string) int {
	start, _ := strconv.Atoi(strings.SplitN(financialYear, "-", 2)[0])
	if start > 2000 {
		return start
	}
	return 2000 + start
}

// FinancialYearOf returns the "2024-25" style label of the financial
// year containing t. The Indian financial year runs April to March.
func FinancialYearOf(t time.Time) string {
	y := t.Year()
	if t.Month() < time.April {
		y--
	}
	return fmt.Sprintf("%d-%02d", y, (y+1)%100)
}

// Quarters returns the four TDS return periods of a financial year with
// their statutory filing deadlines. These are fixed dates, generated
// from a table rather than derived.
func Quarters(financialYear string) [4]Quarter {
	y := baseYear(financialYear)
	return [4]Quarter{
		{
			Quarter:   "Q1",
			Period:    fmt.Sprintf("Apr %d - Jun %d", y, y),
			DueDate:   fmt.Sprintf("31-Jul-%d", y),
			StartDate: time.Date(y, time.April, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(y, time.June, 30, 0, 0, 0, 0, time.UTC),
		},
		{
			Quarter:   "Q2",
			Period:    fmt.Sprintf("Jul %d - Sep %d", y, y),
			DueDate:   fmt.Sprintf("31-Oct-%d", y),
			StartDate: time.Date(y, time.July, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(y, time.September, 30, 0, 0, 0, 0, time.UTC),
		},
		{
			Quarter:   "Q3",
			Period:    fmt.Sprintf("Oct %d - Dec %d", y, y),
			DueDate:   fmt.Sprintf("31-Jan-%d", y+1),
			StartDate: time.Date(y, time.October, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(y, time.December, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			Quarter:   "Q4",
			Period:    fmt.Sprintf("Jan %d - Mar %d", y+1, y+1),
			DueDate:   fmt.Sprintf("31-May-%d", y+1),
			StartDate: time.Date(y+1, time.January, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(y+1, time.March, 31, 0, 0, 0, 0, time.UTC),
		},
	}
}

// AdvanceTaxSchedule returns the four advance-tax installments of a
// financial year. Percentages are cumulative obligations.
func AdvanceTaxSchedule(financialYear string) [4]Installment {
	y := baseYear(financialYear)
	return [4]Installment{
		{
			Installment: 1,
			DueDate:     fmt.Sprintf("15-Jun-%d", y),
			Percentage:  15,
			Description: "First installment - 15% of advance tax",
		},
		{
			Installment: 2,
			DueDate:     fmt.Sprintf("15-Sep-%d", y),
			Percentage:  45,
			Description: "Second installment - 45% of advance tax",
		},
		{
			Installment: 3,
			DueDate:     fmt.Sprintf("15-Dec-%d", y),
			Percentage:  75,
			Description: "Third installment - 75% of advance tax",
		},
		{
			Installment: 4,
			DueDate:     fmt.Sprintf("15-Mar-%d", y+1),
			Percentage:  100,
			Description: "Fourth installment - 100% of advance tax",
		},
	}
}
