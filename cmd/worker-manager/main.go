// cmd/worker-manager/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"readiness-workers/internal/common/airtable"
	"readiness-workers/internal/common/aws"
	"readiness-workers/internal/common/camunda"
	"readiness-workers/internal/common/config"
	"readiness-workers/internal/common/database"
	"readiness-workers/internal/common/logger"
	"readiness-workers/internal/common/observability"
	"readiness-workers/pkg/registry"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.NewWithOutput(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Output)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog).WithFields(map[string]interface{}{
		"service": cfg.App.Name,
		"version": cfg.App.Version,
	})

	zapLog.Info("Starting worker manager...")

	obs := observability.New("worker-manager", log)
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Zeebe ---
	var zeebe *camunda.Client
	err = retryWithBackoff(func() error {
		var err error
		zeebe, err = camunda.NewClientWithConfig(&camunda.ClientConfig{
			GatewayAddress:         cfg.Camunda.BrokerAddress,
			UsePlaintextConnection: true,
			ConnectionTimeout:      10 * time.Second,
			RequestTimeout:         config.GetDuration(cfg.Camunda.RequestTimeout),
		})
		return err
	}, 10, 2*time.Second, zapLog, "Zeebe client initialization")
	if err != nil {
		zapLog.Fatal("zeebe client failed after retries", zap.Error(err))
	}
	zapLog.Info("Zeebe client connected successfully")

	// --- PostgreSQL ---
	var pg *database.PostgresClient
	err = retryWithBackoff(func() error {
		var err error
		pg, err = database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return err
		}
		return pg.Ping(ctx)
	}, 15, 2*time.Second, zapLog, "PostgreSQL connection")
	if err != nil {
		zapLog.Fatal("postgres failed after retries", zap.Error(err))
	}
	defer pg.Close()
	if err := pg.EnsureSchema(ctx); err != nil {
		zapLog.Fatal("postgres schema setup failed", zap.Error(err))
	}
	zapLog.Info("PostgreSQL connected successfully")

	// --- Elasticsearch ---
	var esClient *database.ElasticsearchClient
	err = retryWithBackoff(func() error {
		var err error
		esClient, err = database.NewElasticsearch(cfg.Database.Elasticsearch)
		if err != nil {
			return err
		}
		return esClient.Ping()
	}, 15, 2*time.Second, zapLog, "Elasticsearch connection")
	if err != nil {
		zapLog.Fatal("elasticsearch failed after retries", zap.Error(err))
	}
	zapLog.Info("Elasticsearch connected successfully")

	// --- Redis ---
	var redis *database.RedisClient
	err = retryWithBackoff(func() error {
		var err error
		redis, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return err
		}
		return redis.Ping(ctx)
	}, 10, 2*time.Second, zapLog, "Redis connection")
	if err != nil {
		zapLog.Fatal("redis failed after retries", zap.Error(err))
	}
	defer redis.Close()
	zapLog.Info("Redis connected successfully")

	// --- External services ---
	deps := dependencies{
		postgres:      pg,
		elasticsearch: esClient,
		redis:         redis,
	}
	if cfg.Integrations.Airtable.Enabled {
		deps.airtable = airtable.NewClient(cfg.Integrations.Airtable)
	}
	if cfg.Integrations.AWS.SES.Enabled {
		if deps.ses, err = aws.NewSESClient(ctx, cfg.Integrations.AWS.Region); err != nil {
			zapLog.Fatal("ses client failed", zap.Error(err))
		}
	}
	if cfg.Integrations.AWS.SNS.Enabled {
		if deps.sns, err = aws.NewSNSClient(ctx, cfg.Integrations.AWS.Region); err != nil {
			zapLog.Fatal("sns client failed", zap.Error(err))
		}
	}
	zapLog.Info("External service clients initialized",
		zap.Bool("airtable", deps.airtable != nil),
		zap.Bool("ses", deps.ses != nil),
		zap.Bool("sns", deps.sns != nil),
	)

	checkRegistry(cfg, log)

	workers := registerWorkers(cfg, zeebe.GetClient(), deps, log, obs)
	zapLog.Info("Workers registered", zap.Int("count", len(workers)))

	server := newHealthServer(cfg.App.Port, readinessChecks(zeebe, deps), log)
	go func() {
		zapLog.Info("Health/Metrics server listening", zap.Int("port", cfg.App.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Error("Health/Metrics server failed", zap.Error(err))
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping workers...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	stopWorkers(workers)
	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("Error stopping health server", zap.Error(err))
	}
	if err := zeebe.Close(); err != nil {
		zapLog.Error("Error closing Zeebe client", zap.Error(err))
	}

	zapLog.Info("Worker manager stopped gracefully")
}

// checkRegistry warns about enabled workers the activity registry does not describe.
func checkRegistry(cfg *config.Config, log logger.Logger) {
	reg, err := registry.LoadRegistry(cfg.App.RegistryPath)
	if err != nil {
		log.Warn("activity registry not loaded", map[string]interface{}{
			"path":  cfg.App.RegistryPath,
			"error": err.Error(),
		})
		return
	}
	if err := reg.Validate(); err != nil {
		log.Warn("activity registry invalid", map[string]interface{}{"error": err.Error()})
		return
	}
	for _, taskType := range workerTaskTypes {
		if !config.IsWorkerEnabled(cfg, taskType) {
			continue
		}
		if _, ok := reg.Find(taskType); !ok {
			log.Warn("enabled worker missing from activity registry", map[string]interface{}{
				"taskType": taskType,
			})
		}
	}
}

// readinessChecks pings every backing service the workers write to.
func readinessChecks(zeebe *camunda.Client, deps dependencies) map[string]checkFunc {
	return map[string]checkFunc{
		"zeebe":         zeebe.HealthCheck,
		"postgres":      deps.postgres.Ping,
		"redis":         deps.redis.Ping,
		"elasticsearch": func(context.Context) error { return deps.elasticsearch.Ping() },
	}
}
