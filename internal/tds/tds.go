// Package tds implements the withholding-tax engine: applicability and
// rate resolution over a static category table, cumulative-threshold
// checks, and the statutory filing calendars. All functions are pure.
package tds

import (
	"fmt"
	"math"
)

// PayeeType distinguishes payees where the law applies different rates.
type PayeeType string

const (
	PayeeIndividual PayeeType = "Individual"
	PayeeCompany    PayeeType = "Company"
	PayeeHUF        PayeeType = "HUF"
)

// Result is the outcome of a TDS computation. Applicable=false with a
// Reason is a valid policy outcome, not an error; an unknown category is
// the only validation failure and is also reported through Reason.
type Result struct {
	Rate       float64 `json:"tds_rate"`
	TDSAmount  float64 `json:"tds_amount"`
	NetPayable float64 `json:"net_payable"`
	Section    string  `json:"section"`
	Threshold  float64 `json:"threshold"`
	Applicable bool    `json:"is_applicable"`
	Reason     string  `json:"reason"`
}

// Calculate resolves TDS on a single payment. The rounding of the
// deducted amount is half-away-from-zero to match filing conventions,
// not banker's rounding.
func Calculate(category string, amount float64, payeeType PayeeType, hasPAN bool) Result {
	result := Result{NetPayable: amount}

	rule, ok := Lookup(category)
	if !ok {
		result.Reason = "TDS category not found"
		return result
	}

	result.Section = rule.Section
	result.Threshold = rule.Threshold

	if amount < rule.Threshold {
		result.Reason = fmt.Sprintf("Amount below threshold of ₹%.0f", rule.Threshold)
		return result
	}

	rate := rule.Rate
	if payeeType == PayeeCompany && rule.CompanyRate > 0 {
		rate = rule.CompanyRate
	}

	// Section 206AA: flat 20% when the payee has no PAN.
	if !hasPAN {
		rate = PenaltyRate
		result.Reason = "Higher rate applied due to no PAN"
	}

	result.Applicable = true
	result.Rate = rate
	result.TDSAmount = math.Round(amount * rate / 100)
	result.NetPayable = amount - result.TDSAmount
	return result
}

// ThresholdResult reports whether a payment in a running financial year
// must suffer deduction given the cumulative amount already paid.
type ThresholdResult struct {
	ShouldDeduct     bool    `json:"should_deduct"`
	ApplicableAmount float64 `json:"applicable_amount"`
	Reason           string  `json:"reason"`
}

// CheckCumulativeThreshold models the annual-threshold rule: once the
// payee's cumulative payments in a category reach the threshold, the
// crossing payment and every later one are subject to TDS.
func CheckCumulativeThreshold(category string, currentAmount, cumulativeAmount float64) ThresholdResult {
	rule, ok := Lookup(category)
	if !ok {
		return ThresholdResult{Reason: "Invalid category"}
	}

	total := cumulativeAmount + currentAmount
	switch {
	case total >= rule.Threshold && cumulativeAmount < rule.Threshold:
		return ThresholdResult{
			ShouldDeduct:     true,
			ApplicableAmount: currentAmount,
			Reason:           "Threshold crossed with current payment",
		}
	case cumulativeAmount >= rule.Threshold:
		return ThresholdResult{
			ShouldDeduct:     true,
			ApplicableAmount: currentAmount,
			Reason:           "Threshold already crossed",
		}
	default:
		return ThresholdResult{
			Reason: fmt.Sprintf("Cumulative amount ₹%.0f below threshold ₹%.0f", total, rule.Threshold),
		}
	}
}
