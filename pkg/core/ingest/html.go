// Package ingest converts external figure sources (bookkeeping HTML
// exports, hand-maintained json/hjson files) into the engine's input
// record. It populates fields it can recognize and leaves the rest nil;
// validating provenance or period alignment is the supplier's job.
package ingest

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"finhealth/pkg/core/indicator"

	"github.com/PuerkitoBio/goquery"
)

// ParseLedgerExport reads a two-column HTML table (label, amount) as
// produced by common bookkeeping exports and maps recognized labels onto
// FinancialFigures. Unknown labels are ignored; unparseable amounts for
// a recognized label are an error.
func ParseLedgerExport(r io.Reader) (*indicator.FinancialFigures, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	figures := &indicator.FinancialFigures{}
	var parseErr error

	doc.Find("table tr").Each(func(_ int, row *goquery.Selection) {
		if parseErr != nil {
			return
		}
		cells := row.Find("td, th")
		if cells.Length() < 2 {
			return
		}
		label := normalizeLabel(cells.Eq(0).Text())
		target := fieldForLabel(figures, label)
		if target == nil {
			return
		}
		amount, err := parseAmount(cells.Eq(1).Text())
		if err != nil {
			parseErr = fmt.Errorf("row %q: %w", label, err)
			return
		}
		*target = &amount
	})
	if parseErr != nil {
		return nil, parseErr
	}

	return figures, nil
}

func normalizeLabel(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// fieldForLabel maps an export label (including common aliases) to the
// figure field it populates.
func fieldForLabel(f *indicator.FinancialFigures, label string) **float64 {
	switch label {
	case "revenue", "total revenue", "sales":
		return &f.Revenue
	case "variable costs", "variable expenses":
		return &f.VariableCosts
	case "fixed costs", "fixed expenses":
		return &f.FixedCosts
	case "receivables", "accounts receivable":
		return &f.Receivables
	case "monthly revenue":
		return &f.MonthlyRevenue
	case "cost of goods sold", "cogs":
		return &f.CostOfGoodsSold
	case "opening inventory":
		return &f.OpeningInventory
	case "closing inventory":
		return &f.ClosingInventory
	case "operating profit", "operating income":
		return &f.OperatingProfit
	case "depreciation":
		return &f.Depreciation
	case "amortization":
		return &f.Amortization
	case "selling price", "average selling price":
		return &f.SellingPrice
	case "unit cost", "average unit cost":
		return &f.UnitCost
	default:
		return nil
	}
}

// parseAmount tolerates currency symbols, thousand separators and
// accounting-style parentheses for negatives.
func parseAmount(s string) (float64, error) {
	cleaned := strings.TrimSpace(s)

	negative := false
	if strings.HasPrefix(cleaned, "(") && strings.HasSuffix(cleaned, ")") {
		negative = true
		cleaned = cleaned[1 : len(cleaned)-1]
	}

	var b strings.Builder
	for _, r := range cleaned {
		switch {
		case r >= '0' && r <= '9', r == '.', r == '-':
			b.WriteRune(r)
		case r == ',', r == ' ', r == ' ':
			// thousand separators
		case r == '$', r == '€', r == '£':
			// currency symbols
		default:
			return 0, fmt.Errorf("unexpected character %q in amount %q", r, s)
		}
	}
	if b.Len() == 0 {
		return 0, fmt.Errorf("empty amount %q", s)
	}

	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if negative {
		v = -v
	}
	return v, nil
}
