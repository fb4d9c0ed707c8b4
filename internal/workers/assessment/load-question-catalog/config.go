// internal/workers/assessment/load-question-catalog/config.go
package loadquestioncatalog

import (
	"time"

	"readiness-workers/internal/common/config"
)

type Config struct {
	Timeout       time.Duration
	CorePath      string
	RegionalPath  string
	DefaultRegion string
}

func LoadConfig(cfg *config.Config) *Config {
	c := &Config{
		Timeout:       10 * time.Second,
		DefaultRegion: "global",
	}
	if cfg == nil {
		return c
	}
	if wc := config.GetWorkerConfig(cfg, TaskType); wc.Timeout > 0 {
		c.Timeout = config.GetDuration(wc.Timeout)
	}
	c.CorePath = cfg.Assessment.Catalog.CorePath
	c.RegionalPath = cfg.Assessment.Catalog.RegionalPath
	if cfg.Assessment.Catalog.DefaultRegion != "" {
		c.DefaultRegion = cfg.Assessment.Catalog.DefaultRegion
	}
	return c
}
