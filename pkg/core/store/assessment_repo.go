package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"finhealth/pkg/core/indicator"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// AssessmentRepo persists computed health assessments so reports can be
// served without recomputing. The engine itself never touches storage;
// callers decide when to save.
type AssessmentRepo struct{}

// NewAssessmentRepo creates a new repository instance.
func NewAssessmentRepo() *AssessmentRepo {
	return &AssessmentRepo{}
}

// Save upserts the assessment for an organization and period and returns
// the row id. A single JSONB blob keeps the schema stable while the
// indicator set evolves.
//
// Schema assumption:
//
// CREATE TABLE IF NOT EXISTS health_assessments (
//   id            UUID PRIMARY KEY,
//   org_id        UUID NOT NULL,
//   period        TEXT NOT NULL,
//   assessment    JSONB NOT NULL,
//   created_at    TIMESTAMPTZ,
//   UNIQUE (org_id, period)
// );
func (r *AssessmentRepo) Save(ctx context.Context, orgID, period string, a indicator.OverallAssessment) (string, error) {
	pool := GetPool()
	if pool == nil {
		return "", fmt.Errorf("database pool not initialized")
	}

	jsonData, err := json.Marshal(a)
	if err != nil {
		return "", fmt.Errorf("failed to marshal assessment: %w", err)
	}

	id := uuid.New().String()
	query := `
		INSERT INTO health_assessments (id, org_id, period, assessment, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (org_id, period)
		DO UPDATE SET
			assessment = EXCLUDED.assessment,
			created_at = EXCLUDED.created_at
		RETURNING id;
	`

	var savedID string
	if err := pool.QueryRow(ctx, query, id, orgID, period, jsonData, time.Now()).Scan(&savedID); err != nil {
		return "", fmt.Errorf("failed to save assessment: %w", err)
	}
	return savedID, nil
}

// Load retrieves the stored assessment for an organization and period.
func (r *AssessmentRepo) Load(ctx context.Context, orgID, period string) (*indicator.OverallAssessment, error) {
	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}

	query := `SELECT assessment FROM health_assessments WHERE org_id = $1 AND period = $2`

	var jsonData []byte
	err := pool.QueryRow(ctx, query, orgID, period).Scan(&jsonData)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("no assessment found for org %s period %s", orgID, period)
		}
		return nil, fmt.Errorf("failed to load assessment: %w", err)
	}

	var a indicator.OverallAssessment
	if err := json.Unmarshal(jsonData, &a); err != nil {
		return nil, fmt.Errorf("failed to unmarshal assessment: %w", err)
	}
	return &a, nil
}
