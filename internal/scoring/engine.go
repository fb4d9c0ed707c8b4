// Package scoring turns questionnaire answers into pillar scores, levels, a
// benchmark position and recommendations. Everything here is pure: engines
// hold only immutable tables and may be shared across goroutines.
package scoring

import (
	"errors"
	"fmt"
	"math"

	"readiness-workers/internal/catalog"
	"readiness-workers/internal/common/logger"
	"readiness-workers/internal/models"
)

// ErrInvalidAssessmentData is returned when the input has no responses map.
var ErrInvalidAssessmentData = errors.New("INVALID_ASSESSMENT_DATA")

// Engine scores assessments against a fixed catalog, benchmark table and rule set.
type Engine struct {
	byPillar   map[models.Pillar][]models.Question
	total      int
	benchmarks BenchmarkTable
	rules      RuleSet
	log        logger.Logger
}

type Option func(*Engine)

// WithQuestions scores against questions instead of the embedded catalog.
func WithQuestions(questions []models.Question) Option {
	return func(e *Engine) {
		e.byPillar = catalog.PartitionByPillar(questions)
	}
}

func WithBenchmarks(t BenchmarkTable) Option {
	return func(e *Engine) {
		if _, ok := t[FallbackIndustry]; !ok {
			t = mergeFallback(t)
		}
		e.benchmarks = t
	}
}

func WithRules(rs RuleSet) Option {
	return func(e *Engine) {
		e.rules = rs
	}
}

func WithLogger(l logger.Logger) Option {
	return func(e *Engine) {
		e.log = l
	}
}

// mergeFallback copies t and adds the built-in "Other" row.
func mergeFallback(t BenchmarkTable) BenchmarkTable {
	out := make(BenchmarkTable, len(t)+1)
	for k, v := range t {
		out[k] = v
	}
	out[FallbackIndustry] = DefaultBenchmarks()[FallbackIndustry]
	return out
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		byPillar:   catalog.StaticByPillar(),
		benchmarks: defaultBenchmarks,
		rules:      defaultRules,
		log:        logger.NewNoOpLogger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	for _, qs := range e.byPillar {
		e.total += len(qs)
	}
	return e
}

var defaultEngine = NewEngine()

// Compute scores data with the embedded catalog and built-in tables.
func Compute(data *models.AssessmentData) (*models.AssessmentResults, error) {
	return defaultEngine.Compute(data)
}

// QuestionCount is the number of questions the engine scores against.
func (e *Engine) QuestionCount() int {
	return e.total
}

// Benchmarks exposes the engine's table for comparison views.
func (e *Engine) Benchmarks() BenchmarkTable {
	return e.benchmarks
}

func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

// answerValue applies the defaulting policy: unanswered or below-scale values
// count as "No", values above the scale count as "Yes".
func answerValue(responses map[string]int, id string) int {
	v := responses[id]
	if v < models.AnswerNo {
		return models.AnswerNo
	}
	if v > models.MaxAnswerValue {
		return models.MaxAnswerValue
	}
	return v
}

// PillarPercentage averages the answers to questions as a percentage of the
// maximum answer. A pillar without questions scores 0.
func PillarPercentage(questions []models.Question, responses map[string]int) int {
	if len(questions) == 0 {
		return 0
	}
	sum := 0
	for _, q := range questions {
		sum += answerValue(responses, q.ID)
	}
	average := float64(sum) / float64(len(questions))
	return roundHalfUp(average / models.MaxAnswerValue * 100)
}

// Compute produces the full results for data. It fails only when data or its
// responses map is missing; an empty map is scored as all "No".
func (e *Engine) Compute(data *models.AssessmentData) (*models.AssessmentResults, error) {
	if data == nil || data.Responses == nil {
		return nil, fmt.Errorf("%w: responses are required", ErrInvalidAssessmentData)
	}

	percentages := make(map[models.Pillar]int, len(models.ResultPillarOrder))
	scores := make([]models.PillarScore, 0, len(models.ResultPillarOrder))
	sum := 0
	for _, p := range models.ResultPillarOrder {
		questions := e.byPillar[p]
		pct := PillarPercentage(questions, data.Responses)
		percentages[p] = pct
		sum += pct

		n := len(questions)
		scores = append(scores, models.PillarScore{
			Pillar:        p,
			Name:          p.DisplayName(),
			Score:         roundHalfUp(float64(pct) / 100 * float64(n) * models.MaxAnswerValue),
			MaxScore:      n * models.MaxAnswerValue,
			Percentage:    pct,
			Level:         LevelFor(pct),
			Color:         p.Color(),
			QuestionCount: n,
		})
	}

	overall := roundHalfUp(float64(sum) / float64(len(models.ResultPillarOrder)))
	bench := e.benchmarks.Lookup(data.Company.Industry)

	results := &models.AssessmentResults{
		OverallScore:      roundHalfUp(float64(overall) / 100 * float64(e.total) * models.MaxAnswerValue),
		OverallPercentage: overall,
		OverallLevel:      LevelFor(overall),
		PillarScores:      scores,
		Industry:          bench.Industry,
		BenchmarkPosition: roundHalfUp(e.benchmarks.Position(float64(overall), data.Company.Industry)),
		Recommendations:   BuildRecommendations(percentages, e.rules),
		QuestionCount:     e.total,
	}

	e.log.Debug("assessment scored", map[string]interface{}{
		"overallPercentage": results.OverallPercentage,
		"overallLevel":      results.OverallLevel,
		"industry":          results.Industry,
		"recommendations":   len(results.Recommendations),
	})

	return results, nil
}
