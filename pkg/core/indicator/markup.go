package indicator

import "fmt"

// markupTarget is the benchmark multiplier of unit cost.
const markupTarget = 2.0

var markupBands = []band{
	{2.5, StatusExcellent},
	{2.0, StatusGood},
	{1.5, StatusWarning},
}

// CalculateMarkup computes the selling-price multiplier over unit cost:
//
//	markup = sellingPrice / unitCost
//	equivalentMargin = (markup - 1) / markup * 100
//
// Requires sellingPrice and unitCost; returns ErrZeroUnitCost when
// unitCost is zero or not supplied.
func CalculateMarkup(f FinancialFigures) (*IndicatorResult, error) {
	unitCost := val(f.UnitCost)
	if unitCost == 0 {
		return nil, ErrZeroUnitCost
	}

	markup := val(f.SellingPrice) / unitCost
	equivalentMargin := (markup - 1) / markup * 100
	status := classifyAtLeast(markup, markupBands)

	// The pricing band advice holds regardless of current status.
	recs := []string{"Price with a markup between 2.0x and 2.5x of unit cost"}
	switch status {
	case StatusCritical:
		recs = append(recs,
			"Reprice the catalog immediately: current markup does not cover overhead",
		)
	case StatusWarning:
		recs = append(recs,
			"Raise prices on low-markup items toward the 2.0x floor",
		)
	}

	return &IndicatorResult{
		Name:   NameMarkup,
		Value:  markup,
		Unit:   "x",
		Status: status,
		Target: markupTarget,
		Interpretation: fmt.Sprintf(
			"Markup of %.1fx, equivalent to a %.1f%% margin on selling price",
			markup, equivalentMargin),
		Recommendations: recs,
	}, nil
}
