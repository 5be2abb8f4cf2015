package indicator

import "fmt"

// marginTarget is the benchmark contribution margin in percent.
const marginTarget = 30.0

var marginBands = []band{
	{30, StatusExcellent},
	{25, StatusGood},
	{20, StatusWarning},
}

// CalculateMargin computes the contribution margin:
//
//	margin = (revenue - variableCosts) / revenue * 100
//
// Requires revenue and variableCosts; returns ErrZeroRevenue when
// revenue is zero or not supplied.
func CalculateMargin(f FinancialFigures) (*IndicatorResult, error) {
	revenue := val(f.Revenue)
	if revenue == 0 {
		return nil, ErrZeroRevenue
	}

	margin := (revenue - val(f.VariableCosts)) / revenue * 100
	status := classifyAtLeast(margin, marginBands)

	var recs []string
	switch status {
	case StatusCritical:
		recs = append(recs,
			"Freeze new investment until margins recover",
			"Audit unprofitable product and service lines",
		)
	case StatusWarning:
		recs = append(recs,
			"Renegotiate terms with your top suppliers",
			"Review pricing of best-selling items",
		)
	case StatusGood:
		recs = append(recs,
			"Trim variable costs on low-margin jobs",
		)
	}
	if status != StatusExcellent {
		recs = append(recs, "Work toward a 30% contribution margin within 90 days")
	}

	return &IndicatorResult{
		Name:   NameMargin,
		Value:  margin,
		Unit:   "%",
		Status: status,
		Target: marginTarget,
		Interpretation: fmt.Sprintf(
			"Contribution margin of %.1f%% against a %.0f%% benchmark", margin, marginTarget),
		Recommendations: recs,
	}, nil
}
