package indicator

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"
)

func fp(v float64) *float64 { return &v }

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 0.0001
}

func TestCalculateMargin(t *testing.T) {
	// (100 - 70) / 100 * 100 = 30 -> excellent (boundary inclusive)
	res, err := CalculateMargin(FinancialFigures{Revenue: fp(100), VariableCosts: fp(70)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(res.Value, 30) {
		t.Errorf("expected margin 30, got %f", res.Value)
	}
	if res.Status != StatusExcellent {
		t.Errorf("expected excellent, got %s", res.Status)
	}
	if res.Target != 30 {
		t.Errorf("expected target 30, got %f", res.Target)
	}

	// (100 - 82) / 100 * 100 = 18 -> critical
	res, err = CalculateMargin(FinancialFigures{Revenue: fp(100), VariableCosts: fp(82)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(res.Value, 18) {
		t.Errorf("expected margin 18, got %f", res.Value)
	}
	if res.Status != StatusCritical {
		t.Errorf("expected critical, got %s", res.Status)
	}
}

func TestCalculateMarginBands(t *testing.T) {
	cases := []struct {
		variableCosts float64
		want          Status
	}{
		{70, StatusExcellent}, // 30
		{71, StatusGood},      // 29
		{75, StatusGood},      // 25 boundary
		{76, StatusWarning},   // 24
		{80, StatusWarning},   // 20 boundary
		{81, StatusCritical},  // 19
	}
	for _, c := range cases {
		res, err := CalculateMargin(FinancialFigures{Revenue: fp(100), VariableCosts: fp(c.variableCosts)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != c.want {
			t.Errorf("variableCosts=%f: expected %s, got %s", c.variableCosts, c.want, res.Status)
		}
	}
}

func TestCalculateMarginZeroRevenue(t *testing.T) {
	_, err := CalculateMargin(FinancialFigures{Revenue: fp(0), VariableCosts: fp(10)})
	if !errors.Is(err, ErrZeroRevenue) {
		t.Errorf("expected ErrZeroRevenue, got %v", err)
	}

	// Absent revenue behaves like zero on a direct call.
	_, err = CalculateMargin(FinancialFigures{VariableCosts: fp(10)})
	if !errors.Is(err, ErrZeroRevenue) {
		t.Errorf("expected ErrZeroRevenue for absent revenue, got %v", err)
	}
}

func TestCalculateMarginRecommendations(t *testing.T) {
	const reminder = "Work toward a 30% contribution margin within 90 days"

	// Excellent: no 90-day reminder.
	res, _ := CalculateMargin(FinancialFigures{Revenue: fp(100), VariableCosts: fp(60)})
	for _, r := range res.Recommendations {
		if r == reminder {
			t.Error("excellent margin should not carry the 90-day reminder")
		}
	}

	// Anything below excellent carries it.
	for _, vc := range []float64{72, 78, 85} {
		res, _ := CalculateMargin(FinancialFigures{Revenue: fp(100), VariableCosts: fp(vc)})
		found := false
		for _, r := range res.Recommendations {
			if r == reminder {
				found = true
			}
		}
		if !found {
			t.Errorf("variableCosts=%f: missing 90-day reminder in %v", vc, res.Recommendations)
		}
	}
}

func TestCalculateMarkup(t *testing.T) {
	// 250 / 100 = 2.5 -> excellent; equivalent margin = 1.5/2.5*100 = 60
	res, err := CalculateMarkup(FinancialFigures{SellingPrice: fp(250), UnitCost: fp(100)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(res.Value, 2.5) {
		t.Errorf("expected markup 2.5, got %f", res.Value)
	}
	if res.Status != StatusExcellent {
		t.Errorf("expected excellent, got %s", res.Status)
	}
	if res.Target != 2.0 {
		t.Errorf("expected target 2.0, got %f", res.Target)
	}
	// Interpretation reports both the ratio and the equivalent margin
	// to one decimal place.
	if !strings.Contains(res.Interpretation, "2.5x") || !strings.Contains(res.Interpretation, "60.0%") {
		t.Errorf("interpretation missing ratio or equivalent margin: %q", res.Interpretation)
	}
}

func TestCalculateMarkupBands(t *testing.T) {
	cases := []struct {
		sellingPrice float64
		want         Status
	}{
		{250, StatusExcellent}, // 2.5 boundary
		{240, StatusGood},      // 2.4
		{200, StatusGood},      // 2.0 boundary
		{190, StatusWarning},   // 1.9
		{150, StatusWarning},   // 1.5 boundary
		{149, StatusCritical},  // 1.49
	}
	for _, c := range cases {
		res, err := CalculateMarkup(FinancialFigures{SellingPrice: fp(c.sellingPrice), UnitCost: fp(100)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != c.want {
			t.Errorf("sellingPrice=%f: expected %s, got %s", c.sellingPrice, c.want, res.Status)
		}
	}
}

func TestCalculateMarkupZeroUnitCost(t *testing.T) {
	_, err := CalculateMarkup(FinancialFigures{SellingPrice: fp(250), UnitCost: fp(0)})
	if !errors.Is(err, ErrZeroUnitCost) {
		t.Errorf("expected ErrZeroUnitCost, got %v", err)
	}
}

func TestCalculateMarkupBandAdviceAlwaysPresent(t *testing.T) {
	for _, sp := range []float64{300, 210, 160, 110} {
		res, _ := CalculateMarkup(FinancialFigures{SellingPrice: fp(sp), UnitCost: fp(100)})
		if len(res.Recommendations) == 0 || !strings.Contains(res.Recommendations[0], "2.0x and 2.5x") {
			t.Errorf("sellingPrice=%f: missing pricing band advice in %v", sp, res.Recommendations)
		}
	}
}

func TestCalculateEBITDA(t *testing.T) {
	// ebitda = 15 + 3 + 2 = 20; margin = 20/100*100 = 20 -> excellent
	// target = 100 * 0.15 = 15
	res, err := CalculateEBITDA(FinancialFigures{
		OperatingProfit: fp(15),
		Depreciation:    fp(3),
		Amortization:    fp(2),
		Revenue:         fp(100),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(res.Value, 20) {
		t.Errorf("expected margin 20, got %f", res.Value)
	}
	if res.Status != StatusExcellent {
		t.Errorf("expected excellent, got %s", res.Status)
	}
	if !almostEqual(res.Target, 15) {
		t.Errorf("expected target 15, got %f", res.Target)
	}
}

func TestCalculateEBITDADefaults(t *testing.T) {
	// Depreciation and amortization default to 0 when absent.
	res, err := CalculateEBITDA(FinancialFigures{OperatingProfit: fp(12), Revenue: fp(100)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(res.Value, 12) {
		t.Errorf("expected margin 12, got %f", res.Value)
	}
	if res.Status != StatusWarning {
		t.Errorf("expected warning, got %s", res.Status)
	}

	// Historical behavior: missing revenue falls back to a denominator
	// of 1 rather than failing. 5 / 1 * 100 = 500.
	res, err = CalculateEBITDA(FinancialFigures{OperatingProfit: fp(5)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(res.Value, 500) {
		t.Errorf("expected margin 500 with denominator fallback, got %f", res.Value)
	}

	// A meaningful zero operating profit computes, it does not fail.
	res, err = CalculateEBITDA(FinancialFigures{OperatingProfit: fp(0), Revenue: fp(100)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(res.Value, 0) {
		t.Errorf("expected margin 0, got %f", res.Value)
	}
	if res.Status != StatusCritical {
		t.Errorf("expected critical, got %s", res.Status)
	}
}

func TestCalculateDSO(t *testing.T) {
	// (150000 / 50000) * 30 = 90 -> critical (90 > 60)
	res, err := CalculateDSO(FinancialFigures{Receivables: fp(150000), MonthlyRevenue: fp(50000)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(res.Value, 90) {
		t.Errorf("expected DSO 90, got %f", res.Value)
	}
	if res.Status != StatusCritical {
		t.Errorf("expected critical, got %s", res.Status)
	}
	if res.Target != 45 {
		t.Errorf("expected target 45, got %f", res.Target)
	}

	// Cash release estimate is recomputed from the input:
	// 150000 * 0.20 = 30000.
	found := false
	for _, r := range res.Recommendations {
		if strings.Contains(r, "30000") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected cash release estimate 30000 in %v", res.Recommendations)
	}
}

func TestCalculateDSOBands(t *testing.T) {
	// Lower is healthier; boundaries are inclusive on the healthy side.
	cases := []struct {
		receivables float64
		want        Status
	}{
		{50000, StatusExcellent}, // 30 boundary
		{51000, StatusGood},      // 30.6
		{75000, StatusGood},      // 45 boundary
		{76000, StatusWarning},   // 45.6
		{100000, StatusWarning},  // 60 boundary
		{101000, StatusCritical}, // 60.6
	}
	for _, c := range cases {
		res, err := CalculateDSO(FinancialFigures{Receivables: fp(c.receivables), MonthlyRevenue: fp(50000)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != c.want {
			t.Errorf("receivables=%f: expected %s, got %s", c.receivables, c.want, res.Status)
		}
	}
}

func TestCalculateDSODenominatorFallback(t *testing.T) {
	// Same historical default-to-1 behavior as EBITDA.
	res, err := CalculateDSO(FinancialFigures{Receivables: fp(100), MonthlyRevenue: fp(0)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(res.Value, 3000) {
		t.Errorf("expected DSO 3000 with denominator fallback, got %f", res.Value)
	}
}

func TestCalculateInventoryTurnover(t *testing.T) {
	// avg = (50000 + 70000) / 2 = 60000; turnover = 480000/60000 = 8 -> excellent
	res, err := CalculateInventoryTurnover(FinancialFigures{
		CostOfGoodsSold:  fp(480000),
		OpeningInventory: fp(50000),
		ClosingInventory: fp(70000),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(res.Value, 8) {
		t.Errorf("expected turnover 8, got %f", res.Value)
	}
	if res.Status != StatusExcellent {
		t.Errorf("expected excellent, got %s", res.Status)
	}
	if res.Target != 6 {
		t.Errorf("expected target 6, got %f", res.Target)
	}

	// days of inventory = round(365/8) = 46
	found := false
	for _, r := range res.Recommendations {
		if strings.Contains(r, "46 days") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected days-of-inventory figure in %v", res.Recommendations)
	}
}

func TestCalculateInventoryTurnoverBands(t *testing.T) {
	cases := []struct {
		cogs float64
		want Status
	}{
		{80000, StatusExcellent}, // 8 boundary
		{70000, StatusGood},      // 7
		{60000, StatusGood},      // 6 boundary
		{50000, StatusWarning},   // 5
		{40000, StatusWarning},   // 4 boundary
		{39000, StatusCritical},  // 3.9
	}
	for _, c := range cases {
		res, err := CalculateInventoryTurnover(FinancialFigures{
			CostOfGoodsSold:  fp(c.cogs),
			OpeningInventory: fp(10000),
			ClosingInventory: fp(10000),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != c.want {
			t.Errorf("cogs=%f: expected %s, got %s", c.cogs, c.want, res.Status)
		}
	}
}

func TestCalculateInventoryTurnoverZeroAverage(t *testing.T) {
	_, err := CalculateInventoryTurnover(FinancialFigures{
		CostOfGoodsSold:  fp(1000),
		OpeningInventory: fp(0),
		ClosingInventory: fp(0),
	})
	if !errors.Is(err, ErrZeroAverageInventory) {
		t.Errorf("expected ErrZeroAverageInventory, got %v", err)
	}
}

func TestCalculateBreakEven(t *testing.T) {
	// contributionRatio = (100000-60000)/100000 = 0.4
	// breakEven = 20000/0.4 = 50000
	// percent = 100000/50000*100 = 200 -> excellent
	res, err := CalculateBreakEven(FinancialFigures{
		FixedCosts:    fp(20000),
		Revenue:       fp(100000),
		VariableCosts: fp(60000),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(res.Value, 50000) {
		t.Errorf("expected break-even 50000, got %f", res.Value)
	}
	if res.Status != StatusExcellent {
		t.Errorf("expected excellent, got %s", res.Status)
	}
	// Target is the computed break-even itself.
	if !almostEqual(res.Target, 50000) {
		t.Errorf("expected target 50000, got %f", res.Target)
	}
}

func TestCalculateBreakEvenBands(t *testing.T) {
	// Fixed costs 500 with a 0.5 contribution ratio puts break-even at
	// 1000, so percent = revenue / 10.
	cases := []struct {
		revenue float64
		want    Status
	}{
		{1500, StatusExcellent}, // 150 boundary
		{1400, StatusGood},      // 140
		{1200, StatusGood},      // 120 boundary
		{1100, StatusWarning},   // 110
		{1000, StatusWarning},   // 100 boundary
		{900, StatusCritical},   // 90: below break-even
	}
	for _, c := range cases {
		res, err := CalculateBreakEven(FinancialFigures{
			FixedCosts:    fp(500),
			Revenue:       fp(c.revenue),
			VariableCosts: fp(c.revenue / 2),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != c.want {
			t.Errorf("revenue=%f: expected %s, got %s", c.revenue, c.want, res.Status)
		}
	}
}

func TestCalculateBreakEvenErrors(t *testing.T) {
	// Negative contribution margin: (100-150)/100 = -0.5
	_, err := CalculateBreakEven(FinancialFigures{
		FixedCosts:    fp(1000),
		Revenue:       fp(100),
		VariableCosts: fp(150),
	})
	if !errors.Is(err, ErrNonPositiveContributionMargin) {
		t.Errorf("expected ErrNonPositiveContributionMargin, got %v", err)
	}

	// Zero contribution margin is equally undefined.
	_, err = CalculateBreakEven(FinancialFigures{
		FixedCosts:    fp(1000),
		Revenue:       fp(100),
		VariableCosts: fp(100),
	})
	if !errors.Is(err, ErrNonPositiveContributionMargin) {
		t.Errorf("expected ErrNonPositiveContributionMargin for zero ratio, got %v", err)
	}

	_, err = CalculateBreakEven(FinancialFigures{
		FixedCosts:    fp(1000),
		Revenue:       fp(0),
		VariableCosts: fp(50),
	})
	if !errors.Is(err, ErrZeroRevenue) {
		t.Errorf("expected ErrZeroRevenue, got %v", err)
	}
}

func TestCalculatorsAreDeterministic(t *testing.T) {
	figures := FinancialFigures{
		Revenue:          fp(120000),
		VariableCosts:    fp(80000),
		FixedCosts:       fp(20000),
		Receivables:      fp(90000),
		MonthlyRevenue:   fp(40000),
		CostOfGoodsSold:  fp(300000),
		OpeningInventory: fp(40000),
		ClosingInventory: fp(60000),
		OperatingProfit:  fp(15000),
		Depreciation:     fp(2000),
		Amortization:     fp(1000),
		SellingPrice:     fp(180),
		UnitCost:         fp(100),
	}

	calls := []func(FinancialFigures) (*IndicatorResult, error){
		CalculateMargin,
		CalculateMarkup,
		CalculateEBITDA,
		CalculateDSO,
		CalculateInventoryTurnover,
		CalculateBreakEven,
	}
	for i, call := range calls {
		first, err1 := call(figures)
		second, err2 := call(figures)
		if err1 != nil || err2 != nil {
			t.Fatalf("call %d: unexpected errors %v / %v", i, err1, err2)
		}
		if !reflect.DeepEqual(first, second) {
			t.Errorf("call %d: identical input produced different output", i)
		}
	}
}
