// internal/workers/assessment/calculate-assessment-results/config.go
package calculateassessmentresults

import (
	"time"

	"readiness-workers/internal/common/config"
)

type Config struct {
	Timeout time.Duration
}

// LoadConfig reads the worker timeout from the app config, or uses 5s.
func LoadConfig(cfg *config.Config) *Config {
	c := &Config{Timeout: 5 * time.Second}
	if cfg != nil {
		if wc := config.GetWorkerConfig(cfg, TaskType); wc.Timeout > 0 {
			c.Timeout = config.GetDuration(wc.Timeout)
		}
	}
	return c
}
