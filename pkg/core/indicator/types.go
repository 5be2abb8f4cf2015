// Package indicator turns raw financial figures into classified,
// benchmarked business indicators and an overall health assessment.
// Every function in this package is pure: no I/O, no shared state,
// safe under arbitrary concurrent use.
package indicator

// =============================================================================
// INPUT
// =============================================================================

// FinancialFigures is the flat input record supplied by the data layer.
// All fields are optional; a nil pointer means "not supplied", which is
// distinct from a supplied zero. Each calculator declares its own
// required fields. Values share a single currency unit.
type FinancialFigures struct {
	Revenue          *float64 `json:"revenue,omitempty"`
	VariableCosts    *float64 `json:"variable_costs,omitempty"`
	FixedCosts       *float64 `json:"fixed_costs,omitempty"`
	Receivables      *float64 `json:"receivables,omitempty"`
	MonthlyRevenue   *float64 `json:"monthly_revenue,omitempty"`
	CostOfGoodsSold  *float64 `json:"cost_of_goods_sold,omitempty"`
	OpeningInventory *float64 `json:"opening_inventory,omitempty"`
	ClosingInventory *float64 `json:"closing_inventory,omitempty"`
	OperatingProfit  *float64 `json:"operating_profit,omitempty"`
	Depreciation     *float64 `json:"depreciation,omitempty"`
	Amortization     *float64 `json:"amortization,omitempty"`
	SellingPrice     *float64 `json:"selling_price,omitempty"`
	UnitCost         *float64 `json:"unit_cost,omitempty"`
}

// val dereferences an optional figure, treating "not supplied" as zero.
func val(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

// =============================================================================
// STATUS
// =============================================================================

// Status is the four-level health classification, ordered from best to
// worst: excellent > good > warning > critical.
type Status string

const (
	StatusExcellent Status = "excellent"
	StatusGood      Status = "good"
	StatusWarning   Status = "warning"
	StatusCritical  Status = "critical"
)

// statusScores maps each status to its contribution to the overall score.
var statusScores = map[Status]float64{
	StatusExcellent: 100,
	StatusGood:      75,
	StatusWarning:   50,
	StatusCritical:  25,
}

// Score returns the numeric score for a status (excellent=100 ... critical=25).
func (s Status) Score() float64 {
	return statusScores[s]
}

// band pairs a threshold with the status granted when the value clears it.
type band struct {
	limit  float64
	status Status
}

// classifyAtLeast walks bands best-to-worst and returns the status of the
// first band the value meets (value >= limit). Falls through to critical.
func classifyAtLeast(value float64, bands []band) Status {
	for _, b := range bands {
		if value >= b.limit {
			return b.status
		}
	}
	return StatusCritical
}

// classifyAtMost is the inverted variant for lower-is-better indicators
// (value <= limit).
func classifyAtMost(value float64, bands []band) Status {
	for _, b := range bands {
		if value <= b.limit {
			return b.status
		}
	}
	return StatusCritical
}

// =============================================================================
// OUTPUT
// =============================================================================

// Indicator identifiers, in the fixed order used by AnalyzeComplete.
const (
	NameMargin            = "contribution_margin"
	NameMarkup            = "markup"
	NameEBITDA            = "ebitda_margin"
	NameDSO               = "dso"
	NameInventoryTurnover = "inventory_turnover"
	NameBreakEven         = "break_even"
)

// IndicatorResult is the classified outcome of one calculator. It is a
// value with no identity beyond the inputs it was computed from.
// Status is the machine-readable signal; Interpretation and
// Recommendations are display-only strings.
type IndicatorResult struct {
	Name            string   `json:"name"`
	Value           float64  `json:"value"`
	Unit            string   `json:"unit"`
	Status          Status   `json:"status"`
	Target          float64  `json:"target"`
	Interpretation  string   `json:"interpretation"`
	Recommendations []string `json:"recommendations"`
}

// OverallAssessment combines whichever indicators could be computed into
// a single score, status and prioritized action list.
type OverallAssessment struct {
	Indicators      []IndicatorResult `json:"indicators"`
	OverallScore    float64           `json:"overall_score"`
	OverallStatus   Status            `json:"overall_status"`
	PriorityActions []string          `json:"priority_actions"`
}
