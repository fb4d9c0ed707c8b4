// internal/workers/assessment/submit-assessment-record/models.go
package submitassessmentrecord

import "readiness-workers/internal/models"

// Submission statuses.
const (
	StatusSubmitted = "submitted"
	StatusPartial   = "partial"
	StatusFailed    = "failed"
	StatusInFlight  = "in_flight"
)

// Store names and per-store outcomes.
const (
	StorePostgres      = "postgres"
	StoreAirtable      = "airtable"
	StoreElasticsearch = "elasticsearch"

	StoreOK      = "ok"
	StoreFailed  = "failed"
	StoreSkipped = "skipped"
)

type Input struct {
	AssessmentData    *models.AssessmentData    `json:"assessmentData"`
	AssessmentResults *models.AssessmentResults `json:"assessmentResults"`
}

type Output struct {
	RecordID  string        `json:"recordId,omitempty"`
	Status    string        `json:"status"`
	Stores    []StoreResult `json:"stores,omitempty"`
	ErrorCode string        `json:"errorCode,omitempty"`
}

// StoreResult is the outcome of writing the record to one target.
type StoreResult struct {
	Store     string `json:"store"`
	Status    string `json:"status"`
	Reference string `json:"reference,omitempty"`
	ErrorCode string `json:"errorCode,omitempty"`
	Error     string `json:"error,omitempty"`
}

// indexedResult is the analytics document written to Elasticsearch.
type indexedResult struct {
	models.AssessmentRecord
	PillarPercentages   map[models.Pillar]int `json:"pillarPercentages"`
	RecommendationCount int                   `json:"recommendationCount"`
}
