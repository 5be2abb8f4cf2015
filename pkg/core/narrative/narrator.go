package narrative

import (
	"context"
	"encoding/json"
	"fmt"

	"finhealth/pkg/core/indicator"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
)

// Summary is the structured commentary the narrator asks the model for.
type Summary struct {
	Headline   string   `json:"headline"`
	Commentary string   `json:"commentary"`
	NextSteps  []string `json:"next_steps"`
}

// Narrator generates owner-facing commentary for an assessment.
type Narrator struct {
	provider Provider
}

// NewNarrator wraps a provider. The provider must not be nil.
func NewNarrator(p Provider) *Narrator {
	return &Narrator{provider: p}
}

// Summarize sends the assessment to the model and decodes its reply.
// Model output is repaired before decoding: LLMs routinely emit trailing
// commas, markdown fences or single quotes around otherwise valid JSON.
func (n *Narrator) Summarize(ctx context.Context, a indicator.OverallAssessment) (*Summary, error) {
	assessmentJSON, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal assessment: %w", err)
	}

	prompt := fmt.Sprintf(prompts.Summary, string(assessmentJSON))
	raw, err := n.provider.GenerateResponse(ctx, prompt, prompts.System, nil)
	if err != nil {
		return nil, fmt.Errorf("narrative generation failed: %w", err)
	}

	repaired, err := jsonrepair.RepairJSON(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to repair narrative reply: %w", err)
	}

	var summary Summary
	if err := json.Unmarshal([]byte(repaired), &summary); err != nil {
		return nil, fmt.Errorf("failed to decode narrative reply: %w", err)
	}

	// Zero tolerance on the fields downstream rendering depends on.
	if summary.Headline == "" {
		return nil, fmt.Errorf("narrative reply missing required field 'headline'")
	}
	if summary.Commentary == "" {
		return nil, fmt.Errorf("narrative reply missing required field 'commentary'")
	}
	return &summary, nil
}
