package indicator

import (
	"fmt"
	"math"
)

// turnoverTarget is the benchmark number of inventory turns per year.
const turnoverTarget = 6.0

var turnoverBands = []band{
	{8, StatusExcellent},
	{6, StatusGood},
	{4, StatusWarning},
}

// CalculateInventoryTurnover computes how many times inventory turns over:
//
//	averageInventory = (openingInventory + closingInventory) / 2
//	turnover = costOfGoodsSold / averageInventory
//
// Requires costOfGoodsSold, openingInventory and closingInventory;
// returns ErrZeroAverageInventory when the average of the two inventory
// figures is zero.
func CalculateInventoryTurnover(f FinancialFigures) (*IndicatorResult, error) {
	averageInventory := (val(f.OpeningInventory) + val(f.ClosingInventory)) / 2
	if averageInventory == 0 {
		return nil, ErrZeroAverageInventory
	}

	turnover := val(f.CostOfGoodsSold) / averageInventory
	status := classifyAtLeast(turnover, turnoverBands)

	var recs []string
	if turnover > 0 {
		daysOfInventory := math.Round(365 / turnover)
		recs = append(recs, fmt.Sprintf("Stock currently covers about %.0f days of sales", daysOfInventory))
	}
	switch status {
	case StatusCritical:
		recs = append(recs,
			"Liquidate slow-moving stock, even at a discount",
			"Stop reordering items with no sales in the last quarter",
		)
	case StatusWarning:
		recs = append(recs,
			"Reduce order quantities on slow movers",
		)
	}

	return &IndicatorResult{
		Name:   NameInventoryTurnover,
		Value:  turnover,
		Unit:   "x",
		Status: status,
		Target: turnoverTarget,
		Interpretation: fmt.Sprintf(
			"Inventory turned over %.1fx against a %.0fx benchmark", turnover, turnoverTarget),
		Recommendations: recs,
	}, nil
}
