// internal/workers/assessment/load-question-catalog/handler.go
package loadquestioncatalog

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"

	"readiness-workers/internal/catalog"
	"readiness-workers/internal/common/errors"
	"readiness-workers/internal/common/logger"
	"readiness-workers/internal/common/metrics"
)

const (
	TaskType = "load-question-catalog"
)

type Handler struct {
	config       *Config
	cache        *catalog.Cache
	errorHandler *errors.ErrorHandler
	logger       logger.Logger
}

func NewHandler(config *Config, cache *catalog.Cache, log logger.Logger) *Handler {
	log = log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:       config,
		cache:        cache,
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
		h.failJob(context.Background(), client, job, errors.NewInternalError(fmt.Errorf("parse input: %w", err)))
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

// Execute resolves the requested catalog through the cache. Core and regional
// sources that come back empty fall back to the static catalog.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	source := strings.ToLower(strings.TrimSpace(input.Source))
	if source == "" {
		source = SourceCore
	}
	region := catalog.NormalizeRegion(input.Region)
	if strings.TrimSpace(input.Region) == "" {
		region = catalog.NormalizeRegion(h.config.DefaultRegion)
	}

	var load catalog.LoadFunc
	switch source {
	case SourceStatic:
		return h.static(region), nil
	case SourceCore:
		load = h.fileLoader(h.config.CorePath, catalog.ParseCatalogUnique)
	case SourceRegional:
		load = h.fileLoader(h.config.RegionalPath, func(r io.Reader) *catalog.Grouping {
			return catalog.ParseCatalogByRegion(r, region)
		})
	default:
		return nil, errors.NewCatalogSourceNotFoundError(input.Source)
	}

	key := catalog.CacheKey(source, region)
	if input.Refresh {
		if err := h.cache.Invalidate(ctx, key); err != nil {
			h.logger.Warn("catalog invalidation failed", map[string]interface{}{
				"key":   key,
				"error": err.Error(),
			})
		}
	}

	grouping, hit, err := h.cache.GetOrLoad(ctx, key, load)
	if err != nil {
		return nil, errors.NewCatalogLoadFailedError(source, err)
	}
	if grouping.Empty() {
		h.logger.Warn("catalog source empty, using static catalog", map[string]interface{}{
			"source": source,
			"region": region,
		})
		return h.static(region), nil
	}

	h.logger.Info("catalog loaded", map[string]interface{}{
		"source":        source,
		"region":        region,
		"questionCount": grouping.Len(),
		"cacheHit":      hit,
	})

	return &Output{
		Catalog:       grouping,
		QuestionCount: grouping.Len(),
		Source:        source,
		Region:        region,
		CacheHit:      hit,
	}, nil
}

func (h *Handler) static(region string) *Output {
	g := catalog.StaticGrouping()
	return &Output{
		Catalog:       g,
		QuestionCount: g.Len(),
		Source:        SourceStatic,
		Region:        region,
	}
}

// fileLoader parses path with parse. A missing file reads as an empty catalog.
func (h *Handler) fileLoader(path string, parse func(io.Reader) *catalog.Grouping) catalog.LoadFunc {
	return func(ctx context.Context) (*catalog.Grouping, error) {
		if path == "" {
			return catalog.NewGrouping(), nil
		}
		f, err := os.Open(path)
		if err != nil {
			if stderrors.Is(err, fs.ErrNotExist) {
				h.logger.Warn("catalog file not found", map[string]interface{}{"path": path})
				return catalog.NewGrouping(), nil
			}
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
		defer f.Close()
		return parse(f), nil
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
