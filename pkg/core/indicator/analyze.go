package indicator

// Overall status thresholds on the 0-100 score.
var overallBands = []band{
	{90, StatusExcellent},
	{70, StatusGood},
	{50, StatusWarning},
}

// maxPriorityActions caps the flattened action list.
const maxPriorityActions = 5

// calculator pairs a presence precondition with the calculator itself.
// The precondition checks only that the minimum required fields were
// supplied; domain errors on degenerate values are handled separately
// by the guarded call in AnalyzeComplete.
type calculator struct {
	ready func(FinancialFigures) bool
	run   func(FinancialFigures) (*IndicatorResult, error)
}

// calculators in the fixed report order: Margin, Markup, EBITDA, DSO,
// Inventory Turnover, Break-Even.
var calculators = []calculator{
	{
		ready: func(f FinancialFigures) bool { return f.Revenue != nil && f.VariableCosts != nil },
		run:   CalculateMargin,
	},
	{
		ready: func(f FinancialFigures) bool { return f.SellingPrice != nil && f.UnitCost != nil },
		run:   CalculateMarkup,
	},
	{
		// A supplied zero operating profit is a meaningful zero, so only
		// presence matters here.
		ready: func(f FinancialFigures) bool { return f.OperatingProfit != nil },
		run:   CalculateEBITDA,
	},
	{
		ready: func(f FinancialFigures) bool { return f.Receivables != nil && f.MonthlyRevenue != nil },
		run:   CalculateDSO,
	},
	{
		ready: func(f FinancialFigures) bool {
			return f.CostOfGoodsSold != nil && f.OpeningInventory != nil && f.ClosingInventory != nil
		},
		run: CalculateInventoryTurnover,
	},
	{
		ready: func(f FinancialFigures) bool {
			return f.FixedCosts != nil && f.Revenue != nil && f.VariableCosts != nil
		},
		run: CalculateBreakEven,
	},
}

// AnalyzeComplete runs every calculator whose required fields are present
// and combines the successes into an overall assessment. A calculator
// that raises a domain error is silently excluded: partial financial
// data is common, and one bad ratio must not block the rest of the
// report. Direct calculator calls remain strict; only aggregation is
// best-effort.
func AnalyzeComplete(f FinancialFigures) OverallAssessment {
	indicators := []IndicatorResult{}
	for _, c := range calculators {
		if !c.ready(f) {
			continue
		}
		result, err := c.run(f)
		if err != nil {
			// Insufficient or degenerate data for this one indicator.
			continue
		}
		indicators = append(indicators, *result)
	}

	// Zero indicators is a legal input state, not a crash.
	if len(indicators) == 0 {
		return OverallAssessment{
			Indicators:      indicators,
			OverallScore:    0,
			OverallStatus:   StatusCritical,
			PriorityActions: []string{},
		}
	}

	total := 0.0
	for _, ind := range indicators {
		total += ind.Status.Score()
	}
	overallScore := total / float64(len(indicators))

	// Recommendations from unhealthy indicators, flattened in indicator
	// order and truncated at the cap. Repeated phrasings across
	// indicators are kept as-is.
	actions := []string{}
	for _, ind := range indicators {
		if ind.Status != StatusWarning && ind.Status != StatusCritical {
			continue
		}
		actions = append(actions, ind.Recommendations...)
	}
	if len(actions) > maxPriorityActions {
		actions = actions[:maxPriorityActions]
	}

	return OverallAssessment{
		Indicators:      indicators,
		OverallScore:    overallScore,
		OverallStatus:   classifyAtLeast(overallScore, overallBands),
		PriorityActions: actions,
	}
}
