package tds_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lekha/internal/tds"
)

func TestCalculate_UnknownCategory(t *testing.T) {
	r := tds.Calculate("Royalty", 100000, tds.PayeeIndividual, true)
	assert.False(t, r.Applicable)
	assert.Equal(t, "TDS category not found", r.Reason)
	assert.Equal(t, 0.0, r.TDSAmount)
	assert.Equal(t, 100000.0, r.NetPayable)
}

func TestCalculate_BelowThreshold(t *testing.T) {
	r := tds.Calculate("Rent", 200000, tds.PayeeIndividual, true)
	assert.False(t, r.Applicable)
	assert.Equal(t, "194I", r.Section)
	assert.Equal(t, 240000.0, r.Threshold)
	assert.Contains(t, r.Reason, "240000")
	assert.Equal(t, 200000.0, r.NetPayable)
}

func TestCalculate_RentAboveThreshold(t *testing.T) {
	r := tds.Calculate("Rent", 250000, tds.PayeeIndividual, true)
	require.True(t, r.Applicable)
	assert.Equal(t, 10.0, r.Rate)
	assert.Equal(t, 25000.0, r.TDSAmount)
	assert.Equal(t, 225000.0, r.NetPayable)
	assert.Equal(t, "194I", r.Section)
}

func TestCalculate_ContractorCompanyRate(t *testing.T) {
	individual := tds.Calculate("Contractor Payment", 50000, tds.PayeeIndividual, true)
	require.True(t, individual.Applicable)
	assert.Equal(t, 1.0, individual.Rate)
	assert.Equal(t, 500.0, individual.TDSAmount)

	company := tds.Calculate("Contractor Payment", 50000, tds.PayeeCompany, true)
	require.True(t, company.Applicable)
	assert.Equal(t, 2.0, company.Rate)
	assert.Equal(t, 1000.0, company.TDSAmount)
}

func TestCalculate_NoPANPenalty(t *testing.T) {
	r := tds.Calculate("Professional Fees", 50000, tds.PayeeIndividual, false)
	require.True(t, r.Applicable)
	assert.Equal(t, 20.0, r.Rate)
	assert.Equal(t, 10000.0, r.TDSAmount)
	assert.Equal(t, 40000.0, r.NetPayable)
	assert.Equal(t, "Higher rate applied due to no PAN", r.Reason)
}

// Deducted amounts round half away from zero, matching filing
// conventions rather than banker's rounding.
func TestCalculate_Rounding(t *testing.T) {
	// 30005 * 10% = 3000.5 → 3001
	r := tds.Calculate("Professional Fees", 30005, tds.PayeeIndividual, true)
	require.True(t, r.Applicable)
	assert.Equal(t, 3001.0, r.TDSAmount)
	assert.Equal(t, 27004.0, r.NetPayable)
}

func TestCheckCumulativeThreshold(t *testing.T) {
	t.Run("crossing_with_current_payment", func(t *testing.T) {
		r := tds.CheckCumulativeThreshold("Professional Fees", 20000, 15000)
		assert.True(t, r.ShouldDeduct)
		assert.Equal(t, 20000.0, r.ApplicableAmount)
		assert.Equal(t, "Threshold crossed with current payment", r.Reason)
	})

	t.Run("already_crossed", func(t *testing.T) {
		r := tds.CheckCumulativeThreshold("Professional Fees", 5000, 40000)
		assert.True(t, r.ShouldDeduct)
		assert.Equal(t, 5000.0, r.ApplicableAmount)
		assert.Equal(t, "Threshold already crossed", r.Reason)
	})

	t.Run("still_below", func(t *testing.T) {
		r := tds.CheckCumulativeThreshold("Professional Fees", 5000, 10000)
		assert.False(t, r.ShouldDeduct)
		assert.Contains(t, r.Reason, "below threshold")
	})

	t.Run("exact_crossing", func(t *testing.T) {
		r := tds.CheckCumulativeThreshold("Professional Fees", 10000, 20000)
		assert.True(t, r.ShouldDeduct)
		assert.Equal(t, "Threshold crossed with current payment", r.Reason)
	})

	t.Run("invalid_category", func(t *testing.T) {
		r := tds.CheckCumulativeThreshold("Royalty", 5000, 0)
		assert.False(t, r.ShouldDeduct)
		assert.Equal(t, "Invalid category", r.Reason)
	})
}

func TestLookup(t *testing.T) {
	rule, ok := tds.Lookup("Commission")
	require.True(t, ok)
	assert.Equal(t, "194H", rule.Section)
	assert.Equal(t, 5.0, rule.Rate)
	assert.Equal(t, 15000.0, rule.Threshold)

	_, ok = tds.Lookup("Unknown")
	assert.False(t, ok)
}

func TestValidPAN(t *testing.T) {
	assert.True(t, tds.ValidPAN("ABCDE1234F"))
	assert.False(t, tds.ValidPAN("ABCDE12345"))
	assert.False(t, tds.ValidPAN("abcde1234f"))
	assert.False(t, tds.ValidPAN(""))
}

func TestBuildCertificate(t *testing.T) {
	res := tds.Calculate("Professional Fees", 50000, tds.PayeeIndividual, true)
	require.True(t, res.Applicable)

	paid := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)
	cert := tds.BuildCertificate(
		tds.Party{Name: "Acme Traders", PAN: "AAPFU0939F", TAN: "MUMA12345B", Address: "Mumbai"},
		tds.Party{Name: "Sharma & Co", PAN: "FGHIJ5678K", Address: "Pune"},
		50000, res, paid, "CH-991", "0510308",
	)

	assert.Equal(t, "Sharma & Co", cert.Deductee.Name)
	assert.Equal(t, "MUMA12345B", cert.Deductor.TAN)
	assert.Equal(t, 50000.0, cert.Payment.Amount)
	assert.Equal(t, 5000.0, cert.Payment.TDSAmount)
	assert.Equal(t, 45000.0, cert.Payment.NetAmount)
	assert.Equal(t, "194J", cert.Payment.Section)
	assert.Equal(t, paid, cert.Payment.PaymentDate)
	assert.Equal(t, "0510308", cert.Payment.BSRCode)
}
