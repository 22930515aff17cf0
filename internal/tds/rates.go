package tds

// Rule holds the statutory parameters for one TDS payment category.
// CompanyRate is non-zero only where the law differentiates company
// payees from individuals.
type Rule struct {
	Section     string
	Rate        float64
	CompanyRate float64
	Threshold   float64
	Description string
}

// PenaltyRate is the flat rate applied under section 206AA when the
// payee has no PAN, overriding the category rate.
const PenaltyRate = 20

// rates is the FY 2024-25 rate table. Immutable after init; there is no
// mutation path, so concurrent reads need no synchronization.
var rates = map[string]Rule{
	"Professional Fees": {
		Section:     "194J",
		Rate:        10,
		Threshold:   30000,
		Description: "Payment to professionals like doctors, lawyers, engineers, etc.",
	},
	"Rent": {
		Section:     "194I",
		Rate:        10,
		Threshold:   240000,
		Description: "Rent payment for land, building, or furniture",
	},
	"Commission": {
		Section:     "194H",
		Rate:        5,
		Threshold:   15000,
		Description: "Commission or brokerage payment",
	},
	"Interest": {
		Section:     "194A",
		Rate:        10,
		Threshold:   5000,
		Description: "Interest payment other than on securities",
	},
	"Contractor Payment": {
		Section:     "194C",
		Rate:        1,
		CompanyRate: 2,
		Threshold:   30000,
		Description: "Payment to contractors and sub-contractors",
	},
	"Transport": {
		Section:     "194C",
		Rate:        1,
		Threshold:   30000,
		Description: "Payment for transport of goods",
	},
	"Salary": {
		Section:     "192",
		Rate:        0, // slab-dependent, resolved outside this table
		Threshold:   0,
		Description: "Salary payment to employees",
	},
	"Dividend": {
		Section:     "194",
		Rate:        10,
		Threshold:   5000,
		Description: "Dividend payment",
	},
	"Insurance Commission": {
		Section:     "194D",
		Rate:        5,
		Threshold:   15000,
		Description: "Insurance commission payment",
	},
	"NSS/NSC/ELSS": {
		Section:     "194EE",
		Rate:        30,
		Threshold:   0,
		Description: "Payment on NSS, NSC, ELSS deposits",
	},
}

// Lookup returns the rule for a payment category.
func Lookup(category string) (Rule, bool) {
	r, ok := rates[category]
	return r, ok
}

// Categories returns the known payment categories.
func Categories() []string {
	out := make([]string, 0, len(rates))
	for c := range rates {
		out = append(out, c)
	}
	return out
}
