package store

import (
	"context"
	"fmt"

	"finhealth/pkg/core/indicator"

	"github.com/jackc/pgx/v5"
)

// FiguresRepo reads the flat financial figures the engine consumes.
// One row per organization and period; every amount column is nullable
// so that "never entered" survives the round trip as a nil field.
type FiguresRepo struct{}

// NewFiguresRepo creates a new repository instance.
func NewFiguresRepo() *FiguresRepo {
	return &FiguresRepo{}
}

// Schema assumption (managed by migrations elsewhere):
//
// CREATE TABLE IF NOT EXISTS financial_figures (
//   org_id      UUID NOT NULL,
//   period      TEXT NOT NULL,        -- e.g. '2026-08'
//   revenue            NUMERIC,
//   variable_costs     NUMERIC,
//   fixed_costs        NUMERIC,
//   receivables        NUMERIC,
//   monthly_revenue    NUMERIC,
//   cost_of_goods_sold NUMERIC,
//   opening_inventory  NUMERIC,
//   closing_inventory  NUMERIC,
//   operating_profit   NUMERIC,
//   depreciation       NUMERIC,
//   amortization       NUMERIC,
//   selling_price      NUMERIC,
//   unit_cost          NUMERIC,
//   updated_at  TIMESTAMPTZ,
//   PRIMARY KEY (org_id, period)
// );

// Load fetches the figures for one organization and period. NULL columns
// come back as nil pointers, which the engine treats as "not supplied".
func (r *FiguresRepo) Load(ctx context.Context, orgID, period string) (*indicator.FinancialFigures, error) {
	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}

	query := `
		SELECT revenue, variable_costs, fixed_costs, receivables,
		       monthly_revenue, cost_of_goods_sold, opening_inventory,
		       closing_inventory, operating_profit, depreciation,
		       amortization, selling_price, unit_cost
		FROM financial_figures
		WHERE org_id = $1 AND period = $2`

	var f indicator.FinancialFigures
	err := pool.QueryRow(ctx, query, orgID, period).Scan(
		&f.Revenue, &f.VariableCosts, &f.FixedCosts, &f.Receivables,
		&f.MonthlyRevenue, &f.CostOfGoodsSold, &f.OpeningInventory,
		&f.ClosingInventory, &f.OperatingProfit, &f.Depreciation,
		&f.Amortization, &f.SellingPrice, &f.UnitCost,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("no figures found for org %s period %s", orgID, period)
		}
		return nil, fmt.Errorf("failed to load figures: %w", err)
	}

	return &f, nil
}
