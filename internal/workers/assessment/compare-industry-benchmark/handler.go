// internal/workers/assessment/compare-industry-benchmark/handler.go
package compareindustrybenchmark

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"

	"readiness-workers/internal/common/errors"
	"readiness-workers/internal/common/logger"
	"readiness-workers/internal/common/metrics"
	"readiness-workers/internal/scoring"
)

const (
	TaskType = "compare-industry-benchmark"
)

type Handler struct {
	config       *Config
	benchmarks   scoring.BenchmarkTable
	errorHandler *errors.ErrorHandler
	logger       logger.Logger
}

// NewHandler compares against benchmarks, or the built-in table when nil.
func NewHandler(config *Config, benchmarks scoring.BenchmarkTable, log logger.Logger) *Handler {
	if benchmarks == nil {
		benchmarks = scoring.DefaultBenchmarks()
	}
	log = log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:       config,
		benchmarks:   benchmarks,
		errorHandler: errors.NewErrorHandler(log),
		logger:       log,
	}
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

func (h *Handler) Execute(_ context.Context, input *Input) (*Output, error) {
	if input == nil || input.AssessmentResults == nil {
		return nil, errors.NewInvalidAssessmentDataError("assessmentResults is required")
	}

	comparison := h.benchmarks.CompareToBenchmark(input.AssessmentResults)

	h.logger.Debug("benchmark compared", map[string]interface{}{
		"industry":          comparison.Industry,
		"benchmarkPosition": comparison.BenchmarkPosition,
		"gapToTop25":        comparison.GapToTop25,
	})

	return &Output{
		Comparison:      comparison,
		PositionMessage: comparison.PositionMessage,
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
