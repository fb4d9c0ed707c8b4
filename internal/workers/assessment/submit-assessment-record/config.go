// internal/workers/assessment/submit-assessment-record/config.go
package submitassessmentrecord

import (
	"time"

	"readiness-workers/internal/common/config"
)

type Config struct {
	Timeout time.Duration
	// LockTTL bounds how long one session may hold the submission lock.
	LockTTL      time.Duration
	ResultsIndex string
}

func LoadConfig(cfg *config.Config) *Config {
	c := &Config{
		Timeout:      30 * time.Second,
		LockTTL:      2 * time.Minute,
		ResultsIndex: "assessment-results",
	}
	if cfg == nil {
		return c
	}
	if wc := config.GetWorkerConfig(cfg, TaskType); wc.Timeout > 0 {
		c.Timeout = config.GetDuration(wc.Timeout)
	}
	if cfg.Assessment.SubmissionLockSeconds > 0 {
		c.LockTTL = time.Duration(cfg.Assessment.SubmissionLockSeconds) * time.Second
	}
	if cfg.Database.Elasticsearch.ResultsIndex != "" {
		c.ResultsIndex = cfg.Database.Elasticsearch.ResultsIndex
	}
	return c
}
