// internal/workers/communication/send-assessment-summary/config.go
package sendassessmentsummary

import (
	"time"

	"readiness-workers/internal/common/config"
)

type Config struct {
	Timeout       time.Duration
	EmailEnabled  bool
	FromEmail     string
	EventsEnabled bool
	TopicARN      string
	// ReportURL, when set, is linked from the email with the session ID appended.
	ReportURL string
}

func LoadConfig(cfg *config.Config) *Config {
	c := &Config{
		Timeout:   15 * time.Second,
		FromEmail: "assessments@example.com",
	}
	if cfg == nil {
		return c
	}
	if wc := config.GetWorkerConfig(cfg, TaskType); wc.Timeout > 0 {
		c.Timeout = config.GetDuration(wc.Timeout)
	}
	aws := cfg.Integrations.AWS
	c.EmailEnabled = aws.SES.Enabled
	if aws.SES.FromEmail != "" {
		c.FromEmail = aws.SES.FromEmail
	}
	c.EventsEnabled = aws.SNS.Enabled && aws.SNS.TopicARN != ""
	c.TopicARN = aws.SNS.TopicARN
	c.ReportURL = cfg.Integrations.ReportURL
	return c
}
