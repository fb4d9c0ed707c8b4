package scoring

import "readiness-workers/internal/models"

// ComparisonRow is one bar of the benchmark comparison chart.
type ComparisonRow struct {
	Label string `json:"label"`
	Score int    `json:"score"`
	Color string `json:"color"`
}

// PillarComparison sets a pillar's percentage against the industry's pillar value.
type PillarComparison struct {
	Pillar    models.Pillar `json:"pillar"`
	Name      string        `json:"name"`
	Score     int           `json:"score"`
	Benchmark int           `json:"benchmark"`
	Delta     int           `json:"delta"`
}

// Comparison is the benchmarking view of one result set.
type Comparison struct {
	Industry          string             `json:"industry"`
	BenchmarkPosition int                `json:"benchmarkPosition"`
	PositionMessage   string             `json:"positionMessage"`
	PositionTone      string             `json:"positionTone"`
	Rows              []ComparisonRow    `json:"rows"`
	Pillars           []PillarComparison `json:"pillars"`
	GapToTop25        int                `json:"gapToTop25"`
	GapToTop10        int                `json:"gapToTop10"`
}

// CompareToBenchmark lays results out against their industry row in t.
func (t BenchmarkTable) CompareToBenchmark(results *models.AssessmentResults) Comparison {
	bench := t.Lookup(results.Industry)
	c := Comparison{
		Industry:          bench.Industry,
		BenchmarkPosition: results.BenchmarkPosition,
		PositionMessage:   PositionMessage(results.BenchmarkPosition),
		PositionTone:      PositionTone(results.BenchmarkPosition),
		Rows: []ComparisonRow{
			{Label: "Your Score", Score: results.OverallPercentage, Color: "#2563EB"},
			{Label: "Industry Average", Score: bench.Average, Color: "#6B7280"},
			{Label: "Top 25%", Score: bench.Top25, Color: "#10B981"},
			{Label: "Top 10%", Score: bench.Top10, Color: "#F59E0B"},
		},
		GapToTop25: gap(bench.Top25, results.OverallPercentage),
		GapToTop10: gap(bench.Top10, results.OverallPercentage),
	}
	for _, ps := range results.PillarScores {
		b := bench.Pillars[ps.Pillar]
		c.Pillars = append(c.Pillars, PillarComparison{
			Pillar:    ps.Pillar,
			Name:      ps.Name,
			Score:     ps.Percentage,
			Benchmark: b,
			Delta:     ps.Percentage - b,
		})
	}
	return c
}

// CompareToBenchmark compares against the built-in table.
func CompareToBenchmark(results *models.AssessmentResults) Comparison {
	return defaultBenchmarks.CompareToBenchmark(results)
}

func gap(target, score int) int {
	if score >= target {
		return 0
	}
	return target - score
}
