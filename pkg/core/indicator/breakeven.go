package indicator

import "fmt"

// Classification is on revenue as a percent of the break-even point;
// anything under 100% means the business is operating at a loss.
var breakEvenBands = []band{
	{150, StatusExcellent},
	{120, StatusGood},
	{100, StatusWarning},
}

// CalculateBreakEven computes the monthly revenue needed to cover fixed
// costs, and how far current revenue sits above it:
//
//	contributionRatio = (revenue - variableCosts) / revenue
//	breakEven = fixedCosts / contributionRatio
//	percentOfBreakEven = (revenue / breakEven) * 100
//
// Requires fixedCosts, revenue and variableCosts. Returns ErrZeroRevenue
// when revenue is zero, and ErrNonPositiveContributionMargin when the
// contribution ratio is zero or negative (break-even is undefined).
// The target is the computed break-even value itself, not a constant.
func CalculateBreakEven(f FinancialFigures) (*IndicatorResult, error) {
	revenue := val(f.Revenue)
	if revenue == 0 {
		return nil, ErrZeroRevenue
	}

	contributionRatio := (revenue - val(f.VariableCosts)) / revenue
	if contributionRatio <= 0 {
		return nil, ErrNonPositiveContributionMargin
	}

	breakEven := val(f.FixedCosts) / contributionRatio
	percentOfBreakEven := (revenue / breakEven) * 100
	status := classifyAtLeast(percentOfBreakEven, breakEvenBands)

	var recs []string
	switch status {
	case StatusCritical:
		// Below break-even is always urgent, no matter how close to 100%.
		recs = append(recs,
			"Operating below break-even: cut fixed costs immediately",
			"Raise volume or prices until revenue clears the break-even point",
		)
	case StatusWarning:
		recs = append(recs,
			"Build a revenue buffer of at least 20% above break-even",
		)
	}

	return &IndicatorResult{
		Name:   NameBreakEven,
		Value:  breakEven,
		Unit:   "currency/month",
		Status: status,
		Target: breakEven,
		Interpretation: fmt.Sprintf(
			"Revenue sits at %.0f%% of the %.0f break-even point",
			percentOfBreakEven, breakEven),
		Recommendations: recs,
	}, nil
}
