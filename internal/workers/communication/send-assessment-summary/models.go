// internal/workers/communication/send-assessment-summary/models.go
package sendassessmentsummary

import "readiness-workers/internal/models"

const (
	StatusSent     = "sent"
	StatusPartial  = "partial"
	StatusDisabled = "disabled"

	ChannelEmail = "email"
	ChannelEvent = "event"

	EventTypeAssessmentCompleted = "assessment.completed"
)

type Input struct {
	Email             string                    `json:"email"`
	CompanyName       string                    `json:"companyName"`
	SessionID         string                    `json:"sessionId,omitempty"`
	AssessmentResults *models.AssessmentResults `json:"assessmentResults"`
}

type Output struct {
	Status        string                `json:"status"`
	MessageID     string                `json:"messageId,omitempty"`
	EventID       string                `json:"eventId,omitempty"`
	Notifications []models.Notification `json:"notifications"`
}
