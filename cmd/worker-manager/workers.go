// cmd/worker-manager/workers.go
package main

import (
	"os"
	"sync"

	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"

	"readiness-workers/internal/catalog"
	"readiness-workers/internal/common/airtable"
	"readiness-workers/internal/common/aws"
	"readiness-workers/internal/common/camunda"
	"readiness-workers/internal/common/config"
	"readiness-workers/internal/common/database"
	"readiness-workers/internal/common/logger"
	"readiness-workers/internal/common/observability"
	"readiness-workers/internal/scoring"
	calculateassessmentresults "readiness-workers/internal/workers/assessment/calculate-assessment-results"
	compareindustrybenchmark "readiness-workers/internal/workers/assessment/compare-industry-benchmark"
	loadquestioncatalog "readiness-workers/internal/workers/assessment/load-question-catalog"
	submitassessmentrecord "readiness-workers/internal/workers/assessment/submit-assessment-record"
	sendassessmentsummary "readiness-workers/internal/workers/communication/send-assessment-summary"
)

// workerTaskTypes lists every job type this process can serve.
var workerTaskTypes = []string{
	loadquestioncatalog.TaskType,
	calculateassessmentresults.TaskType,
	compareindustrybenchmark.TaskType,
	submitassessmentrecord.TaskType,
	sendassessmentsummary.TaskType,
}

// dependencies carries the shared clients. Optional integrations are nil when disabled.
type dependencies struct {
	postgres      *database.PostgresClient
	elasticsearch *database.ElasticsearchClient
	redis         *database.RedisClient
	airtable      *airtable.Client
	ses           *aws.SESClient
	sns           *aws.SNSClient
}

// newEngine builds the scoring engine, replacing the built-in recommendation
// rules when a rules file is configured and readable.
func newEngine(cfg *config.Config, log logger.Logger) *scoring.Engine {
	opts := []scoring.Option{scoring.WithLogger(log)}

	path := cfg.Assessment.RulesPath
	if path == "" {
		return scoring.NewEngine(opts...)
	}
	f, err := os.Open(path)
	if err != nil {
		log.Warn("recommendation rules not loaded, using built-in rules", map[string]interface{}{
			"path":  path,
			"error": err.Error(),
		})
		return scoring.NewEngine(opts...)
	}
	defer f.Close()

	rules, skipped := scoring.ParseRecommendationRules(f)
	if rules.Len() == 0 {
		log.Warn("recommendation rules file has no usable rows, using built-in rules", map[string]interface{}{
			"path":    path,
			"skipped": skipped,
		})
		return scoring.NewEngine(opts...)
	}
	log.Info("recommendation rules loaded", map[string]interface{}{
		"path":    path,
		"rules":   rules.Len(),
		"skipped": skipped,
	})
	return scoring.NewEngine(append(opts, scoring.WithRules(rules))...)
}

// submissionDeps converts the shared clients into the submit worker's
// interfaces. A disabled integration must stay a nil interface, not a typed nil.
func submissionDeps(deps dependencies, log logger.Logger) submitassessmentrecord.Dependencies {
	d := submitassessmentrecord.Dependencies{Logger: log}
	if deps.postgres != nil {
		d.DB = deps.postgres.GetDB()
	}
	if deps.redis != nil {
		d.Locker = deps.redis
	}
	if deps.airtable != nil {
		d.Records = deps.airtable
	}
	if deps.elasticsearch != nil {
		d.Indexer = deps.elasticsearch
	}
	return d
}

func notificationDeps(deps dependencies, log logger.Logger) sendassessmentsummary.Dependencies {
	d := sendassessmentsummary.Dependencies{Logger: log}
	if deps.ses != nil {
		d.Mailer = deps.ses
	}
	if deps.sns != nil {
		d.Publisher = deps.sns
	}
	return d
}

func registerWorkers(
	cfg *config.Config,
	zc zbc.Client,
	deps dependencies,
	log logger.Logger,
	obs *observability.Observability,
) []*camunda.CamundaWorker {
	engine := newEngine(cfg, log)

	var cacheStore catalog.CacheStore
	if deps.redis != nil {
		cacheStore = deps.redis
	}
	cache := catalog.NewCache(cacheStore, cfg.Assessment.Catalog.CacheTTL(), log)

	handlers := map[string]camunda.HandlerFunc{
		loadquestioncatalog.TaskType: loadquestioncatalog.NewHandler(
			loadquestioncatalog.LoadConfig(cfg), cache, log).Handle,
		calculateassessmentresults.TaskType: calculateassessmentresults.NewHandler(
			calculateassessmentresults.LoadConfig(cfg), engine, obs, log).Handle,
		compareindustrybenchmark.TaskType: compareindustrybenchmark.NewHandler(
			compareindustrybenchmark.LoadConfig(cfg), engine.Benchmarks(), log).Handle,
		submitassessmentrecord.TaskType: submitassessmentrecord.NewHandler(
			submitassessmentrecord.LoadConfig(cfg), submissionDeps(deps, log)).Handle,
		sendassessmentsummary.TaskType: sendassessmentsummary.NewHandler(
			sendassessmentsummary.LoadConfig(cfg), notificationDeps(deps, log)).Handle,
	}

	var workers []*camunda.CamundaWorker
	for _, taskType := range workerTaskTypes {
		if !config.IsWorkerEnabled(cfg, taskType) {
			log.Info("worker disabled", map[string]interface{}{"taskType": taskType})
			continue
		}
		workers = append(workers, camunda.NewWorker(
			zc, taskType, config.GetWorkerConfig(cfg, taskType), handlers[taskType], log, obs))
	}
	return workers
}

// stopWorkers closes every poller concurrently and waits for in-flight jobs.
func stopWorkers(workers []*camunda.CamundaWorker) {
	var wg sync.WaitGroup
	for _, w := range workers {
		wg.Add(1)
		go func(w *camunda.CamundaWorker) {
			defer wg.Done()
			w.Stop()
		}(w)
	}
	wg.Wait()
}
