package indicator

import "fmt"

var ebitdaBands = []band{
	{20, StatusExcellent},
	{15, StatusGood},
	{10, StatusWarning},
}

// CalculateEBITDA computes earnings before interest, taxes, depreciation
// and amortization, and its margin over revenue:
//
//	ebitda = operatingProfit + depreciation + amortization
//	ebitdaMargin = ebitda / revenue * 100
//
// operatingProfit is meaningful even at zero. Depreciation and
// amortization default to 0 when absent. A missing or zero revenue falls
// back to a denominator of 1 instead of failing; that matches the
// historical behavior and is flagged for review with the product owner.
func CalculateEBITDA(f FinancialFigures) (*IndicatorResult, error) {
	ebitda := val(f.OperatingProfit) + val(f.Depreciation) + val(f.Amortization)

	revenue := val(f.Revenue)
	if revenue == 0 {
		revenue = 1
	}

	ebitdaMargin := ebitda / revenue * 100
	status := classifyAtLeast(ebitdaMargin, ebitdaBands)
	target := revenue * 0.15

	var recs []string
	switch status {
	case StatusCritical:
		recs = append(recs,
			"Cut discretionary operating expenses this quarter",
			"Review staffing levels against billable workload",
		)
	case StatusWarning:
		recs = append(recs,
			"Benchmark overhead spend against the 15% EBITDA target",
		)
	}

	return &IndicatorResult{
		Name:   NameEBITDA,
		Value:  ebitdaMargin,
		Unit:   "%",
		Status: status,
		Target: target,
		Interpretation: fmt.Sprintf(
			"EBITDA of %.0f, a %.1f%% margin over revenue", ebitda, ebitdaMargin),
		Recommendations: recs,
	}, nil
}
