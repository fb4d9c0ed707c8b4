// internal/workers/assessment/compare-industry-benchmark/config.go
package compareindustrybenchmark

import (
	"time"

	"readiness-workers/internal/common/config"
)

type Config struct {
	Timeout time.Duration
}

func LoadConfig(cfg *config.Config) *Config {
	c := &Config{Timeout: 5 * time.Second}
	if cfg != nil {
		if wc := config.GetWorkerConfig(cfg, TaskType); wc.Timeout > 0 {
			c.Timeout = config.GetDuration(wc.Timeout)
		}
	}
	return c
}
