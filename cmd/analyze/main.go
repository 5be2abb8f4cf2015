// Command analyze computes a financial health assessment from a figures
// file and prints it in the requested format.
//
// Usage:
//
//	analyze -input figures.hjson [-format json|markdown|html]
//
// The input format follows the file extension: .json and .hjson are
// figure records, .html is a bookkeeping ledger export.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"finhealth/pkg/core/indicator"
	"finhealth/pkg/core/ingest"
	"finhealth/pkg/core/report"
)

func main() {
	input := flag.String("input", "", "path to figures file (.json, .hjson or .html)")
	format := flag.String("format", "markdown", "output format: json, markdown or html")
	flag.Parse()

	if *input == "" {
		fmt.Fprintln(os.Stderr, "usage: analyze -input figures.hjson [-format json|markdown|html]")
		os.Exit(2)
	}

	figures, err := loadFigures(*input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] %v\n", err)
		os.Exit(1)
	}

	assessment := indicator.AnalyzeComplete(*figures)

	switch *format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(assessment); err != nil {
			fmt.Fprintf(os.Stderr, "[FATAL] %v\n", err)
			os.Exit(1)
		}
	case "markdown":
		fmt.Print(report.BuildMarkdown(assessment))
	case "html":
		html, err := report.BuildHTML(assessment)
		if err != nil {
			fmt.Fprintf(os.Stderr, "[FATAL] %v\n", err)
			os.Exit(1)
		}
		fmt.Print(html)
	default:
		fmt.Fprintf(os.Stderr, "[FATAL] unknown format %q\n", *format)
		os.Exit(2)
	}
}

func loadFigures(path string) (*indicator.FinancialFigures, error) {
	if strings.EqualFold(filepath.Ext(path), ".html") {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open ledger export: %w", err)
		}
		defer f.Close()
		return ingest.ParseLedgerExport(f)
	}
	return ingest.ReadFiguresFile(path)
}
