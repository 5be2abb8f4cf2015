package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"finhealth/pkg/api/assessment"
	"finhealth/pkg/core/narrative"
	"finhealth/pkg/core/store"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type serverConfig struct {
	Port        int    `yaml:"port"`
	PromptsPath string `yaml:"prompts_path"`
}

func main() {
	// Load environment variables
	godotenv.Load()

	cfg := serverConfig{Port: 8080}
	if data, err := os.ReadFile("config/server.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			fmt.Printf("[WARNING] Invalid config/server.yaml: %v\n", err)
		}
	}

	// Storage is optional: without DATABASE_URL the API still computes,
	// it just never persists.
	var assessmentRepo *store.AssessmentRepo
	if os.Getenv("DATABASE_URL") != "" {
		if err := store.InitDB(context.Background()); err != nil {
			fmt.Printf("[WARNING] Database unavailable, persistence disabled: %v\n", err)
		} else {
			assessmentRepo = store.NewAssessmentRepo()
			defer store.Close()
			fmt.Println("[STORE] Connected")
		}
	}

	// Narrative provider is optional too.
	provider := narrative.NewProviderFromEnv()
	if provider == nil {
		fmt.Println("[NARRATIVE] No provider configured (set NARRATIVE_PROVIDER to enable)")
	} else if cfg.PromptsPath != "" {
		if err := narrative.LoadPromptsFile(cfg.PromptsPath); err != nil {
			fmt.Printf("[WARNING] Failed to load prompts: %v\n", err)
			fmt.Println("  Falling back to built-in prompts")
		}
	}

	assessment.InitHandler(assessmentRepo, provider)
	http.HandleFunc("/api/assessment/analyze", assessment.HandleAnalyze)
	http.HandleFunc("/api/assessment/report", assessment.HandleReport)
	http.HandleFunc("/api/assessment/narrative", assessment.HandleNarrative)
	http.HandleFunc("/api/assessment/recompute", assessment.HandleRecompute)
	http.HandleFunc("/api/assessment/stored", assessment.HandleStored)

	addr := fmt.Sprintf(":%d", cfg.Port)
	fmt.Printf("API server starting on %s...\n", addr)
	fmt.Println("  - POST /api/assessment/analyze")
	fmt.Println("  - POST /api/assessment/report")
	fmt.Println("  - POST /api/assessment/narrative")
	fmt.Println("  - POST /api/assessment/recompute")
	fmt.Println("  - POST /api/assessment/stored")

	if err := http.ListenAndServe(addr, nil); err != nil {
		fmt.Printf("[FATAL] Server failed to start: %v\n", err)
		os.Exit(1)
	}
}
