// Package report renders an OverallAssessment for human consumption.
// It only formats what the engine produced; it never recomputes or
// reclassifies anything.
package report

import (
	"fmt"
	"strings"

	"finhealth/pkg/core/indicator"
)

// statusGlyphs give each status a scannable marker in text reports.
var statusGlyphs = map[indicator.Status]string{
	indicator.StatusExcellent: "🟢",
	indicator.StatusGood:      "🟡",
	indicator.StatusWarning:   "🟠",
	indicator.StatusCritical:  "🔴",
}

// displayNames maps indicator identifiers to report headings.
var displayNames = map[string]string{
	indicator.NameMargin:            "Contribution Margin",
	indicator.NameMarkup:            "Markup",
	indicator.NameEBITDA:            "EBITDA Margin",
	indicator.NameDSO:               "Days Sales Outstanding",
	indicator.NameInventoryTurnover: "Inventory Turnover",
	indicator.NameBreakEven:         "Break-Even Point",
}

// BuildMarkdown renders the assessment as a Markdown report: overall
// header, one section per computed indicator, and the priority actions.
func BuildMarkdown(a indicator.OverallAssessment) string {
	var sb strings.Builder

	sb.WriteString("# Financial Health Report\n\n")
	sb.WriteString(fmt.Sprintf("**Overall:** %s %s — score %.0f/100\n\n",
		statusGlyphs[a.OverallStatus], a.OverallStatus, a.OverallScore))

	if len(a.Indicators) == 0 {
		sb.WriteString("No indicators could be computed from the supplied figures.\n")
		return sb.String()
	}

	sb.WriteString("## Indicators\n\n")
	sb.WriteString("| Indicator | Value | Target | Status |\n")
	sb.WriteString("|---|---|---|---|\n")
	for _, ind := range a.Indicators {
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s %s |\n",
			displayName(ind.Name),
			formatValue(ind.Value, ind.Unit),
			formatValue(ind.Target, ind.Unit),
			statusGlyphs[ind.Status], ind.Status))
	}
	sb.WriteString("\n")

	for _, ind := range a.Indicators {
		sb.WriteString(fmt.Sprintf("### %s\n\n%s.\n\n", displayName(ind.Name), ind.Interpretation))
		for _, rec := range ind.Recommendations {
			sb.WriteString(fmt.Sprintf("- %s\n", rec))
		}
		if len(ind.Recommendations) > 0 {
			sb.WriteString("\n")
		}
	}

	if len(a.PriorityActions) > 0 {
		sb.WriteString("## Priority Actions\n\n")
		for i, action := range a.PriorityActions {
			sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, action))
		}
	}

	return sb.String()
}

func displayName(name string) string {
	if dn, ok := displayNames[name]; ok {
		return dn
	}
	return name
}

// formatValue keeps number formatting plain: the engine deals in raw
// figures, not locale-aware currency strings.
func formatValue(v float64, unit string) string {
	switch unit {
	case "%":
		return fmt.Sprintf("%.1f%%", v)
	case "x":
		return fmt.Sprintf("%.1fx", v)
	case "days":
		return fmt.Sprintf("%.0f days", v)
	default:
		return fmt.Sprintf("%.0f %s", v, unit)
	}
}
