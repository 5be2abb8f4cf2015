package narrative

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// promptSet holds the prompt templates the narrator sends.
type promptSet struct {
	System  string `yaml:"system"`
	Summary string `yaml:"summary"` // %s receives the assessment JSON
}

func defaultPrompts() promptSet {
	return promptSet{
		System: "You are a financial advisor for small field-service businesses. " +
			"You receive a computed health assessment as JSON. The statuses and " +
			"numbers in it are authoritative: never recompute, soften or contradict " +
			"them. Reply with JSON only, matching the schema " +
			`{"headline": string, "commentary": string, "next_steps": [string]}.`,
		Summary: "Summarize this financial health assessment for the business " +
			"owner in plain language. Lead with the overall picture, then explain " +
			"the weakest indicators and why the priority actions matter.\n\n%s",
	}
}

var prompts = defaultPrompts()

// LoadPromptsFile overrides the built-in prompt templates from a YAML
// file. Missing keys keep their defaults.
func LoadPromptsFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read prompts file: %w", err)
	}

	var loaded promptSet
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to parse prompts file: %w", err)
	}

	if loaded.System != "" {
		prompts.System = loaded.System
	}
	if loaded.Summary != "" {
		prompts.Summary = loaded.Summary
	}
	return nil
}
