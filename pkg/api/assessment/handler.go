package assessment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"finhealth/pkg/core/indicator"
	"finhealth/pkg/core/narrative"
	"finhealth/pkg/core/report"
	"finhealth/pkg/core/store"
)

var (
	assessmentRepo *store.AssessmentRepo
	figuresRepo    *store.FiguresRepo
	narrator       *narrative.Narrator
)

// InitHandler wires the optional collaborators. Either may be nil: the
// handlers degrade to compute-only behavior.
func InitHandler(repo *store.AssessmentRepo, provider narrative.Provider) {
	assessmentRepo = repo
	if repo != nil {
		figuresRepo = store.NewFiguresRepo()
	}
	if provider != nil {
		narrator = narrative.NewNarrator(provider)
	}
}

// AnalyzeRequest carries the raw figures plus optional persistence keys.
type AnalyzeRequest struct {
	Figures indicator.FinancialFigures `json:"figures"`
	OrgID   string                     `json:"org_id,omitempty"`
	Period  string                     `json:"period,omitempty"`
}

// ReportRequest selects the rendering format for a report.
type ReportRequest struct {
	Figures indicator.FinancialFigures `json:"figures"`
	Format  string                     `json:"format"` // "markdown" (default) or "html"
}

func allowCORS(w http.ResponseWriter, r *http.Request) bool {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return false
	}
	return true
}

// HandleAnalyze runs the full assessment over whatever figures were
// supplied and returns it as JSON. When org/period keys are present and
// storage is configured, the result is persisted best-effort: a storage
// failure is logged, never surfaced to the caller.
func HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	if !allowCORS(w, r) {
		return
	}

	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	assessment := indicator.AnalyzeComplete(req.Figures)
	fmt.Printf("[ASSESSMENT] Computed %d indicators, score %.0f (%s)\n",
		len(assessment.Indicators), assessment.OverallScore, assessment.OverallStatus)

	if assessmentRepo != nil && req.OrgID != "" && req.Period != "" {
		if id, err := assessmentRepo.Save(context.Background(), req.OrgID, req.Period, assessment); err != nil {
			fmt.Printf("[ASSESSMENT] WARN: failed to persist: %v\n", err)
		} else {
			fmt.Printf("[ASSESSMENT] Persisted as %s\n", id)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(assessment)
}

// HandleReport renders the assessment as Markdown or HTML.
func HandleReport(w http.ResponseWriter, r *http.Request) {
	if !allowCORS(w, r) {
		return
	}

	var req ReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	assessment := indicator.AnalyzeComplete(req.Figures)

	switch req.Format {
	case "html":
		html, err := report.BuildHTML(assessment)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, html)
	case "", "markdown":
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		fmt.Fprint(w, report.BuildMarkdown(assessment))
	default:
		http.Error(w, fmt.Sprintf("unknown format %q", req.Format), http.StatusBadRequest)
	}
}

// StoredRequest addresses figures or assessments already in the store.
type StoredRequest struct {
	OrgID  string `json:"org_id"`
	Period string `json:"period"`
}

// HandleRecompute loads the stored figures for an organization and
// period, reruns the assessment and persists the fresh result.
func HandleRecompute(w http.ResponseWriter, r *http.Request) {
	if !allowCORS(w, r) {
		return
	}

	if figuresRepo == nil {
		http.Error(w, "storage not configured", http.StatusServiceUnavailable)
		return
	}

	var req StoredRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.OrgID == "" || req.Period == "" {
		http.Error(w, "org_id and period are required", http.StatusBadRequest)
		return
	}

	figures, err := figuresRepo.Load(r.Context(), req.OrgID, req.Period)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	assessment := indicator.AnalyzeComplete(*figures)
	if id, err := assessmentRepo.Save(r.Context(), req.OrgID, req.Period, assessment); err != nil {
		fmt.Printf("[ASSESSMENT] WARN: failed to persist: %v\n", err)
	} else {
		fmt.Printf("[ASSESSMENT] Recomputed %s/%s as %s\n", req.OrgID, req.Period, id)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(assessment)
}

// HandleStored returns the last persisted assessment without recomputing.
func HandleStored(w http.ResponseWriter, r *http.Request) {
	if !allowCORS(w, r) {
		return
	}

	if assessmentRepo == nil {
		http.Error(w, "storage not configured", http.StatusServiceUnavailable)
		return
	}

	var req StoredRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.OrgID == "" || req.Period == "" {
		http.Error(w, "org_id and period are required", http.StatusBadRequest)
		return
	}

	assessment, err := assessmentRepo.Load(r.Context(), req.OrgID, req.Period)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(assessment)
}

// HandleNarrative runs the assessment and asks the configured LLM
// provider for owner-facing commentary.
func HandleNarrative(w http.ResponseWriter, r *http.Request) {
	if !allowCORS(w, r) {
		return
	}

	if narrator == nil {
		http.Error(w, "no narrative provider configured", http.StatusServiceUnavailable)
		return
	}

	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	assessment := indicator.AnalyzeComplete(req.Figures)
	summary, err := narrator.Summarize(r.Context(), assessment)
	if err != nil {
		fmt.Printf("[ASSESSMENT] Narrative failed: %v\n", err)
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(struct {
		Assessment indicator.OverallAssessment `json:"assessment"`
		Narrative  *narrative.Summary          `json:"narrative"`
	}{assessment, summary})
}
