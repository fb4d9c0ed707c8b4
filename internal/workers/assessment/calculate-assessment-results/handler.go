// internal/workers/assessment/calculate-assessment-results/handler.go
package calculateassessmentresults

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"

	"readiness-workers/internal/common/errors"
	"readiness-workers/internal/common/logger"
	"readiness-workers/internal/common/metrics"
	"readiness-workers/internal/common/observability"
	"readiness-workers/internal/scoring"
)

const (
	TaskType = "calculate-assessment-results"
)

type Handler struct {
	config       *Config
	engine       *scoring.Engine
	obs          *observability.Observability
	errorHandler *errors.ErrorHandler
	logger       logger.Logger
}

// NewHandler builds the handler. obs may be nil.
func NewHandler(config *Config, engine *scoring.Engine, obs *observability.Observability, log logger.Logger) *Handler {
	log = log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:       config,
		engine:       engine,
		obs:          obs,
		errorHandler: errors.NewErrorHandler(log),
		logger:       log,
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	input, err := h.parseInput(job)
	if err != nil {
		h.failJob(ctx, client, job, err)
		return
	}

	output, err := h.Execute(ctx, input)
	if err != nil {
		h.failJob(ctx, client, job, err)
		return
	}

	h.completeJob(ctx, client, job, output)
}

func (h *Handler) parseInput(job entities.Job) (*Input, error) {
	result, err := ValidateInput(job.Variables)
	if err != nil {
		return nil, errors.NewInvalidAssessmentDataError(err.Error())
	}
	if !result.Valid {
		return nil, errors.NewAssessmentValidationFailedError(result.Summary())
	}

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		return nil, errors.NewInvalidAssessmentDataError(fmt.Sprintf("parse input: %v", err))
	}
	return &input, nil
}

// Execute scores the assessment and records the outcome metrics.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	if input == nil || input.AssessmentData == nil {
		return nil, errors.NewInvalidAssessmentDataError("assessmentData is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.NewTimeoutError("scoring", err)
	}

	results, err := h.engine.Compute(input.AssessmentData)
	if err != nil {
		if stderrors.Is(err, scoring.ErrInvalidAssessmentData) {
			return nil, errors.NewInvalidAssessmentDataError(err.Error())
		}
		return nil, errors.NewInternalError(err)
	}

	metrics.AssessmentOverallPercentage.WithLabelValues(results.Industry).Observe(float64(results.OverallPercentage))
	h.obs.RecordAssessmentScored(ctx, results.Industry, string(results.OverallLevel))

	h.logger.Info("assessment scored", map[string]interface{}{
		"sessionId":         input.AssessmentData.SessionID,
		"industry":          results.Industry,
		"overallPercentage": results.OverallPercentage,
		"overallLevel":      results.OverallLevel,
		"benchmarkPosition": results.BenchmarkPosition,
	})

	return &Output{
		AssessmentResults:   results,
		OverallLevel:        results.OverallLevel,
		RecommendationCount: len(results.Recommendations),
	}, nil
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
