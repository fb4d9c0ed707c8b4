// internal/models/notification.go
package models

import "time"

// Notification records one delivery attempt of an assessment summary.
type Notification struct {
	ID        string                 `json:"id"`
	SessionID string                 `json:"sessionId,omitempty"`
	Type      string                 `json:"type"`    // "assessment_summary", "assessment_completed"
	Channel   string                 `json:"channel"` // "email", "event"
	Status    string                 `json:"status"`  // "sent", "failed", "disabled"
	Payload   map[string]interface{} `json:"payload,omitempty"`
	SentAt    time.Time              `json:"sentAt"`
}

// AssessmentCompletedEvent is published when a session's results are final.
type AssessmentCompletedEvent struct {
	EventID           string    `json:"eventId"`
	EventType         string    `json:"eventType"`
	SessionID         string    `json:"sessionId,omitempty"`
	CompanyName       string    `json:"companyName"`
	Industry          string    `json:"industry"`
	OverallPercentage int       `json:"overallPercentage"`
	OverallLevel      Level     `json:"overallLevel"`
	BenchmarkPosition int       `json:"benchmarkPosition"`
	OccurredAt        time.Time `json:"occurredAt"`
}

// AssessmentRecord is the persisted form of a completed assessment.
type AssessmentRecord struct {
	ID                string    `json:"id" db:"id"`
	SessionID         string    `json:"sessionId" db:"session_id"`
	CompanyName       string    `json:"companyName" db:"company_name"`
	Industry          string    `json:"industry" db:"industry"`
	CompanySize       string    `json:"companySize" db:"company_size"`
	Region            string    `json:"region" db:"region"`
	AssessmentType    string    `json:"assessmentType" db:"assessment_type"`
	OverallPercentage int       `json:"overallPercentage" db:"overall_percentage"`
	OverallLevel      Level     `json:"overallLevel" db:"overall_level"`
	BenchmarkPosition int       `json:"benchmarkPosition" db:"benchmark_position"`
	QuestionsAnswered int       `json:"questionsAnswered" db:"questions_answered"`
	SubmittedAt       time.Time `json:"submittedAt" db:"submitted_at"`
}
