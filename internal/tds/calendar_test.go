package tds_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"lekha/internal/tds"
)

func TestQuarters(t *testing.T) {
	q := tds.Quarters("2024-25")

	assert.Equal(t, "Q1", q[0].Quarter)
	assert.Equal(t, "Apr 2024 - Jun 2024", q[0].Period)
	assert.Equal(t, "31-Jul-2024", q[0].DueDate)
	assert.Equal(t, time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC), q[0].StartDate)
	assert.Equal(t, time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC), q[0].EndDate)

	assert.Equal(t, "31-Oct-2024", q[1].DueDate)
	assert.Equal(t, "31-Jan-2025", q[2].DueDate)

	// Q4 spills into the next calendar year.
	assert.Equal(t, "Jan 2025 - Mar 2025", q[3].Period)
	assert.Equal(t, "31-May-2025", q[3].DueDate)
	assert.Equal(t, time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC), q[3].EndDate)
}

func TestQuarters_ShortYearLabel(t *testing.T) {
	q := tds.Quarters("24-25")
	assert.Equal(t, "31-Jul-2024", q[0].DueDate)
}

func TestAdvanceTaxSchedule(t *testing.T) {
	s := tds.AdvanceTaxSchedule("2024-25")

	assert.Equal(t, "15-Jun-2024", s[0].DueDate)
	assert.Equal(t, "15-Sep-2024", s[1].DueDate)
	assert.Equal(t, "15-Dec-2024", s[2].DueDate)
	assert.Equal(t, "15-Mar-2025", s[3].DueDate)

	wantPct := []float64{15, 45, 75, 100}
	for i, inst := range s {
		assert.Equal(t, i+1, inst.Installment)
		assert.Equal(t, wantPct[i], inst.Percentage)
	}
}
