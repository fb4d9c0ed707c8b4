// internal/workers/assessment/submit-assessment-record/handler.go
package submitassessmentrecord

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"readiness-workers/internal/common/errors"
	"readiness-workers/internal/common/logger"
	"readiness-workers/internal/common/metrics"
	"readiness-workers/internal/common/validation"
	"readiness-workers/internal/models"
)

const (
	TaskType = "submit-assessment-record"

	lockKeyPrefix = "submission:"
)

// Locker guards a session against concurrent submissions. *database.RedisClient satisfies it.
type Locker interface {
	AcquireLock(ctx context.Context, key, token string, ttl time.Duration) (bool, error)
	ReleaseLock(ctx context.Context, key, token string) error
}

// RecordStore is the external record API. *airtable.Client satisfies it.
type RecordStore interface {
	CreateRecord(ctx context.Context, fields map[string]interface{}) (string, error)
}

// ResultIndexer writes analytics documents. *database.ElasticsearchClient satisfies it.
type ResultIndexer interface {
	IndexDocument(ctx context.Context, index, id string, doc interface{}) error
}

// Dependencies are the submission targets. Any of them may be nil, in which
// case that store is reported as skipped.
type Dependencies struct {
	DB      *sql.DB
	Locker  Locker
	Records RecordStore
	Indexer ResultIndexer
	Logger  logger.Logger
	NewID   func() string
	Now     func() time.Time
}

type Handler struct {
	config       *Config
	db           *sql.DB
	locker       Locker
	records      RecordStore
	indexer      ResultIndexer
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
		db:           deps.DB,
		locker:       deps.Locker,
		records:      deps.Records,
		indexer:      deps.Indexer,
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

// Execute writes the record to every configured store. Store failures are
// reported in the output rather than returned; only invalid input is an error.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	sessionID := strings.TrimSpace(input.AssessmentData.SessionID)
	if sessionID == "" {
		sessionID = h.newID()
	}

	if h.locker != nil {
		lockKey := lockKeyPrefix + sessionID
		token := h.newID()
		acquired, err := h.locker.AcquireLock(ctx, lockKey, token, h.config.LockTTL)
		switch {
		case err != nil:
			h.logger.Warn("submission lock unavailable, continuing unlocked", map[string]interface{}{
				"sessionId": sessionID,
				"error":     err.Error(),
			})
		case !acquired:
			inFlight := errors.NewSubmissionInFlightError(sessionID)
			h.logger.Info("submission already in flight", map[string]interface{}{
				"sessionId": sessionID,
				"code":      inFlight.Code,
			})
			metrics.AssessmentSubmissions.WithLabelValues(StatusInFlight).Inc()
			return &Output{Status: StatusInFlight, ErrorCode: string(inFlight.Code)}, nil
		default:
			defer h.release(lockKey, token)
		}
	}

	record := h.buildRecord(sessionID, input)
	stores := h.writeAll(ctx, record, input)
	status := overallStatus(stores)

	output := &Output{RecordID: record.ID, Status: status, Stores: stores}

	metrics.AssessmentSubmissions.WithLabelValues(status).Inc()
	if status == StatusFailed {
		failure := errors.NewRecordSubmissionFailedError(
			fmt.Errorf("no store accepted record %s", record.ID))
		output.ErrorCode = string(failure.Code)
		h.logger.Error("assessment submission failed in every store", map[string]interface{}{
			"recordId":  record.ID,
			"sessionId": sessionID,
			"code":      failure.Code,
			"error":     failure.Details,
		})
		return output, nil
	}
	h.logger.Info("assessment submitted", map[string]interface{}{
		"recordId":  record.ID,
		"sessionId": sessionID,
		"status":    status,
	})
	return output, nil
}

func validateInput(input *Input) error {
	if input == nil || input.AssessmentData == nil || input.AssessmentResults == nil {
		return errors.NewInvalidAssessmentDataError("assessmentData and assessmentResults are required")
	}
	if result := validation.ValidateStruct(input.AssessmentData.Company); !result.Valid {
		return errors.NewAssessmentValidationFailedError(result.Summary())
	}
	return nil
}

// release runs on its own deadline so an expired job context still frees the lock.
func (h *Handler) release(key, token string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := h.locker.ReleaseLock(ctx, key, token); err != nil {
		h.logger.Warn("failed to release submission lock", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
}

func (h *Handler) buildRecord(sessionID string, input *Input) models.AssessmentRecord {
	company := input.AssessmentData.Company
	region := company.Region
	if region == "" {
		region = "Global"
	}
	assessmentType := string(company.AssessmentType)
	if assessmentType == "" {
		assessmentType = string(models.AssessmentTypeFree)
	}
	results := input.AssessmentResults

	return models.AssessmentRecord{
		ID:                h.newID(),
		SessionID:         sessionID,
		CompanyName:       company.Name,
		Industry:          company.Industry,
		CompanySize:       company.Size,
		Region:            region,
		AssessmentType:    assessmentType,
		OverallPercentage: results.OverallPercentage,
		OverallLevel:      results.OverallLevel,
		BenchmarkPosition: results.BenchmarkPosition,
		QuestionsAnswered: len(input.AssessmentData.Responses),
		SubmittedAt:       h.now().UTC(),
	}
}

// writeAll fans the record out to every store concurrently. Each writer
// reports into its own slot, so none of them returns an error to the group.
func (h *Handler) writeAll(ctx context.Context, record models.AssessmentRecord, input *Input) []StoreResult {
	writers := []struct {
		name  string
		ready bool
		write func(context.Context) (string, error)
	}{
		{StorePostgres, h.db != nil, func(ctx context.Context) (string, error) {
			return record.ID, h.insertPostgres(ctx, record, input)
		}},
		{StoreAirtable, h.records != nil, func(ctx context.Context) (string, error) {
			return h.createAirtableRecord(ctx, record, input)
		}},
		{StoreElasticsearch, h.indexer != nil, func(ctx context.Context) (string, error) {
			return record.ID, h.indexResult(ctx, record, input)
		}},
	}

	results := make([]StoreResult, len(writers))
	var g errgroup.Group
	for i, w := range writers {
		i, w := i, w
		if !w.ready {
			results[i] = StoreResult{Store: w.name, Status: StoreSkipped}
			continue
		}
		g.Go(func() error {
			ref, err := w.write(ctx)
			if err != nil {
				stdErr := errors.Normalize(err)
				h.logger.Error("store write failed", map[string]interface{}{
					"store":    w.name,
					"recordId": record.ID,
					"code":     stdErr.Code,
					"error":    err.Error(),
				})
				results[i] = StoreResult{
					Store:     w.name,
					Status:    StoreFailed,
					ErrorCode: string(stdErr.Code),
					Error:     stdErr.Details,
				}
				return nil
			}
			results[i] = StoreResult{Store: w.name, Status: StoreOK, Reference: ref}
			return nil
		})
	}
	_ = g.Wait()
	return results
}

// overallStatus is submitted when every attempted store succeeded, failed when
// none did (or none was attempted) and partial otherwise.
func overallStatus(stores []StoreResult) string {
	attempted, succeeded := 0, 0
	for _, s := range stores {
		switch s.Status {
		case StoreOK:
			attempted++
			succeeded++
		case StoreFailed:
			attempted++
		}
	}
	switch {
	case attempted == 0 || succeeded == 0:
		return StatusFailed
	case succeeded == attempted:
		return StatusSubmitted
	default:
		return StatusPartial
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
