// internal/workers/assessment/calculate-assessment-results/models.go
package calculateassessmentresults

import "readiness-workers/internal/models"

type Input struct {
	AssessmentData *models.AssessmentData `json:"assessmentData"`
}

type Output struct {
	AssessmentResults   *models.AssessmentResults `json:"assessmentResults"`
	OverallLevel        models.Level              `json:"overallLevel"`
	RecommendationCount int                       `json:"recommendationCount"`
}
