package ingest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"finhealth/pkg/core/indicator"

	hjson "github.com/hjson/hjson-go/v4"
)

// ReadFiguresFile loads a FinancialFigures record from a .json or .hjson
// file. Hjson is accepted because operators hand-edit figure files and
// appreciate comments and optional commas.
func ReadFiguresFile(path string) (*indicator.FinancialFigures, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read figures file: %w", err)
	}
	return DecodeFigures(data, filepath.Ext(path))
}

// DecodeFigures decodes raw figure bytes. ext selects the format:
// ".hjson" goes through the Hjson reader, anything else is strict JSON.
func DecodeFigures(data []byte, ext string) (*indicator.FinancialFigures, error) {
	if strings.EqualFold(ext, ".hjson") {
		// Hjson is normalized through an intermediate map so struct
		// decoding stays plain encoding/json.
		var raw map[string]interface{}
		if err := hjson.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse hjson: %w", err)
		}
		normalized, err := json.Marshal(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to normalize hjson: %w", err)
		}
		data = normalized
	}

	var figures indicator.FinancialFigures
	if err := json.Unmarshal(data, &figures); err != nil {
		return nil, fmt.Errorf("failed to decode figures: %w", err)
	}
	return &figures, nil
}
