// internal/workers/assessment/load-question-catalog/models.go
package loadquestioncatalog

import "readiness-workers/internal/catalog"

const (
	SourceStatic   = "static"
	SourceCore     = "core"
	SourceRegional = "regional"
)

type Input struct {
	Region  string `json:"region,omitempty"`
	Source  string `json:"source,omitempty"`
	Refresh bool   `json:"refresh,omitempty"`
}

type Output struct {
	Catalog       *catalog.Grouping `json:"catalog"`
	QuestionCount int               `json:"questionCount"`
	// Source is where the catalog actually came from; it is "static" after a fallback.
	Source   string `json:"source"`
	Region   string `json:"region"`
	CacheHit bool   `json:"cacheHit"`
}
