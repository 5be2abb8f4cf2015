package indicator

import "fmt"

// dsoTarget is the benchmark collection period in days.
const dsoTarget = 45.0

// Lower is healthier for DSO, so the bands are evaluated with <=.
var dsoBands = []band{
	{30, StatusExcellent},
	{45, StatusGood},
	{60, StatusWarning},
}

// CalculateDSO computes days sales outstanding:
//
//	dso = (receivables / monthlyRevenue) * 30
//
// A missing or zero monthlyRevenue falls back to a denominator of 1
// instead of failing; same historical caveat as CalculateEBITDA.
func CalculateDSO(f FinancialFigures) (*IndicatorResult, error) {
	receivables := val(f.Receivables)
	monthlyRevenue := val(f.MonthlyRevenue)
	if monthlyRevenue == 0 {
		monthlyRevenue = 1
	}

	dso := (receivables / monthlyRevenue) * 30
	status := classifyAtMost(dso, dsoBands)

	// Projected cash unlocked by collecting 20% faster. Recomputed from
	// the actual receivables figure on every call.
	cashRelease := receivables * 0.20

	var recs []string
	switch status {
	case StatusCritical:
		recs = append(recs,
			"Start a collections push on all invoices past 60 days",
			"Require deposits or partial prepayment on new orders",
			fmt.Sprintf("Cutting DSO by 20%% would release about %.0f in cash", cashRelease),
		)
	case StatusWarning:
		recs = append(recs,
			"Tighten payment terms on new contracts",
			fmt.Sprintf("Cutting DSO by 20%% would release about %.0f in cash", cashRelease),
		)
	case StatusGood:
		recs = append(recs,
			fmt.Sprintf("Cutting DSO by 20%% would release about %.0f in cash", cashRelease),
		)
	}

	return &IndicatorResult{
		Name:   NameDSO,
		Value:  dso,
		Unit:   "days",
		Status: status,
		Target: dsoTarget,
		Interpretation: fmt.Sprintf(
			"Receivables take %.0f days to collect against a %.0f-day benchmark",
			dso, dsoTarget),
		Recommendations: recs,
	}, nil
}
