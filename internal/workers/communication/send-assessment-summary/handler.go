// internal/workers/communication/send-assessment-summary/handler.go
package sendassessmentsummary

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"

	"readiness-workers/internal/common/aws"
	"readiness-workers/internal/common/errors"
	"readiness-workers/internal/common/logger"
	"readiness-workers/internal/common/metrics"
	"readiness-workers/internal/common/validation"
	"readiness-workers/internal/models"
)

const (
	TaskType = "send-assessment-summary"

	defaultCompanyName = "your organisation"
)

// Mailer delivers the summary email. *aws.SESClient satisfies it.
type Mailer interface {
	Send(ctx context.Context, e aws.Email) (string, error)
}

// Publisher emits the completion event. *aws.SNSClient satisfies it.
type Publisher interface {
	PublishEvent(ctx context.Context, topicARN, eventType string, payload interface{}) (string, error)
}

type Dependencies struct {
	Mailer    Mailer
	Publisher Publisher
	Logger    logger.Logger
	NewID     func() string
	Now       func() time.Time
}

type Handler struct {
	config       *Config
	mailer       Mailer
	publisher    Publisher
	newID        func() string
	now          func() time.Time
	errorHandler *errors.ErrorHandler
	logger       logger.Logger
}

func NewHandler(config *Config, deps Dependencies) *Handler {
	log := deps.Logger
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	log = log.WithFields(map[string]interface{}{"taskType": TaskType})

	h := &Handler{
		config:       config,
		mailer:       deps.Mailer,
		publisher:    deps.Publisher,
		newID:        deps.NewID,
		now:          deps.Now,
		errorHandler: errors.NewErrorHandler(log),
		logger:       log,
	}
	if h.newID == nil {
		h.newID = uuid.NewString
	}
	if h.now == nil {
		h.now = time.Now
	}
	return h
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		h.failJob(context.Background(), client, job,
			errors.NewInvalidAssessmentDataError(fmt.Sprintf("parse input: %v", err)))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	output, err := h.Execute(ctx, &input)
	if err != nil {
		h.failJob(ctx, client, job, err)
		return
	}

	h.completeJob(ctx, client, job, output)
}

func (h *Handler) emailEnabled() bool {
	return h.config.EmailEnabled && h.mailer != nil
}

func (h *Handler) eventsEnabled() bool {
	return h.config.EventsEnabled && h.publisher != nil && h.config.TopicARN != ""
}

// Execute sends the summary email, then publishes the completion event. An
// email failure is returned so the job retries before any event goes out.
// An event failure after a delivered email only downgrades the status to
// partial, since a retry would send the email twice.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	if err := h.validateInput(input); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.CompanyName) == "" {
		input.CompanyName = defaultCompanyName
	}

	output := &Output{Status: StatusDisabled, Notifications: []models.Notification{}}

	if h.emailEnabled() {
		n, err := h.sendEmail(ctx, input)
		output.Notifications = append(output.Notifications, n)
		if err != nil {
			return nil, errors.NewNotificationSendFailedError(ChannelEmail, err)
		}
		output.MessageID = n.ID
		output.Status = StatusSent
	} else {
		output.Notifications = append(output.Notifications, h.disabled(ChannelEmail, input))
	}

	if h.eventsEnabled() {
		n, err := h.publishEvent(ctx, input)
		output.Notifications = append(output.Notifications, n)
		switch {
		case err == nil:
			output.EventID = n.ID
			output.Status = StatusSent
		case output.Status == StatusSent:
			h.logger.Warn("completion event not published after email was sent", map[string]interface{}{
				"sessionId": input.SessionID,
				"error":     err.Error(),
			})
			output.Status = StatusPartial
		default:
			return nil, errors.NewNotificationSendFailedError(ChannelEvent, err)
		}
	} else {
		output.Notifications = append(output.Notifications, h.disabled(ChannelEvent, input))
	}

	h.logger.Info("assessment summary processed", map[string]interface{}{
		"sessionId": input.SessionID,
		"status":    output.Status,
		"messageId": output.MessageID,
		"eventId":   output.EventID,
	})
	return output, nil
}

func (h *Handler) validateInput(input *Input) error {
	if input == nil || input.AssessmentResults == nil {
		return errors.NewInvalidAssessmentDataError("assessmentResults is required")
	}
	if h.emailEnabled() && !validation.ValidateEmail(strings.TrimSpace(input.Email)) {
		return errors.NewAssessmentValidationFailedError(fmt.Sprintf("invalid email address %q", input.Email))
	}
	return nil
}

func (h *Handler) sendEmail(ctx context.Context, input *Input) (models.Notification, error) {
	n := models.Notification{
		SessionID: input.SessionID,
		Type:      "assessment_summary",
		Channel:   ChannelEmail,
		SentAt:    h.now().UTC(),
	}

	input.Email = strings.TrimSpace(input.Email)
	email, err := renderEmail(h.config.FromEmail, input, h.config.ReportURL)
	if err == nil {
		n.ID, err = h.mailer.Send(ctx, email)
	}
	if err != nil {
		n.Status = "failed"
		metrics.NotificationsSent.WithLabelValues(ChannelEmail, n.Status).Inc()
		h.logger.Error("summary email failed", map[string]interface{}{
			"sessionId": input.SessionID,
			"error":     err.Error(),
		})
		return n, err
	}

	n.Status = StatusSent
	n.Payload = map[string]interface{}{"to": input.Email, "subject": email.Subject}
	metrics.NotificationsSent.WithLabelValues(ChannelEmail, n.Status).Inc()
	return n, nil
}

func (h *Handler) publishEvent(ctx context.Context, input *Input) (models.Notification, error) {
	results := input.AssessmentResults
	event := models.AssessmentCompletedEvent{
		EventID:           h.newID(),
		EventType:         EventTypeAssessmentCompleted,
		SessionID:         input.SessionID,
		CompanyName:       input.CompanyName,
		Industry:          results.Industry,
		OverallPercentage: results.OverallPercentage,
		OverallLevel:      results.OverallLevel,
		BenchmarkPosition: results.BenchmarkPosition,
		OccurredAt:        h.now().UTC(),
	}

	n := models.Notification{
		ID:        event.EventID,
		SessionID: input.SessionID,
		Type:      "assessment_completed",
		Channel:   ChannelEvent,
		SentAt:    event.OccurredAt,
	}

	messageID, err := h.publisher.PublishEvent(ctx, h.config.TopicARN, EventTypeAssessmentCompleted, event)
	if err != nil {
		n.Status = "failed"
		metrics.NotificationsSent.WithLabelValues(ChannelEvent, n.Status).Inc()
		return n, err
	}

	n.Status = StatusSent
	n.Payload = map[string]interface{}{"snsMessageId": messageID}
	metrics.NotificationsSent.WithLabelValues(ChannelEvent, n.Status).Inc()
	return n, nil
}

func (h *Handler) disabled(channel string, input *Input) models.Notification {
	metrics.NotificationsSent.WithLabelValues(channel, StatusDisabled).Inc()
	return models.Notification{
		SessionID: input.SessionID,
		Channel:   channel,
		Status:    StatusDisabled,
		SentAt:    h.now().UTC(),
	}
}

func (h *Handler) completeJob(ctx context.Context, client worker.JobClient, job entities.Job, output *Output) {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		h.logger.Error("failed to create complete job command", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}
	if _, err = cmd.Send(ctx); err != nil {
		h.logger.Error("failed to send complete job command", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}
	metrics.JobCompleted(TaskType)
}

func (h *Handler) failJob(ctx context.Context, client worker.JobClient, job entities.Job, err error) {
	metrics.JobFailed(TaskType, string(errors.Normalize(err).Code))
	h.errorHandler.HandleJobError(ctx, client, job, err)
}
