// internal/workers/assessment/compare-industry-benchmark/models.go
package compareindustrybenchmark

import (
	"readiness-workers/internal/models"
	"readiness-workers/internal/scoring"
)

type Input struct {
	AssessmentResults *models.AssessmentResults `json:"assessmentResults"`
}

type Output struct {
	Comparison      scoring.Comparison `json:"comparison"`
	PositionMessage string             `json:"positionMessage"`
}
