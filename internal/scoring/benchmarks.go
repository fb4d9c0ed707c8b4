package scoring

import (
	"math"
	"strings"

	"readiness-workers/internal/models"
)

// FallbackIndustry is used for any industry without its own row.
const FallbackIndustry = "Other"

// IndustryBenchmark holds the reference scores for one industry.
type IndustryBenchmark struct {
	Industry string                `json:"industry"`
	Pillars  map[models.Pillar]int `json:"pillars"`
	Average  int                   `json:"average"`
	Top25    int                   `json:"top25"`
	Top10    int                   `json:"top10"`
}

// PillarAverage is the mean of the seven pillar benchmarks.
func (b IndustryBenchmark) PillarAverage() float64 {
	sum := 0
	for _, p := range models.ResultPillarOrder {
		sum += b.Pillars[p]
	}
	return float64(sum) / float64(len(models.ResultPillarOrder))
}

// BenchmarkTable is keyed by industry name.
type BenchmarkTable map[string]IndustryBenchmark

func row(industry string, strategy, culture, business, data, infrastructure, people, governance, average, top25, top10 int) IndustryBenchmark {
	return IndustryBenchmark{
		Industry: industry,
		Pillars: map[models.Pillar]int{
			models.PillarStrategy:       strategy,
			models.PillarCulture:        culture,
			models.PillarBusiness:       business,
			models.PillarData:           data,
			models.PillarInfrastructure: infrastructure,
			models.PillarPeople:         people,
			models.PillarGovernance:     governance,
		},
		Average: average,
		Top25:   top25,
		Top10:   top10,
	}
}

var defaultBenchmarks = BenchmarkTable{
	"Technology":         row("Technology", 78, 75, 75, 82, 85, 80, 77, 79, 88, 93),
	"Healthcare":         row("Healthcare", 65, 63, 68, 70, 72, 66, 70, 68, 78, 85),
	"Financial Services": row("Financial Services", 72, 70, 74, 78, 80, 73, 75, 75, 84, 90),
	"Manufacturing":      row("Manufacturing", 68, 65, 70, 65, 75, 67, 68, 68, 79, 86),
	"Retail":             row("Retail", 70, 68, 78, 68, 72, 70, 69, 71, 81, 87),
	"Education":          row("Education", 62, 60, 65, 58, 68, 63, 65, 63, 72, 80),
	"Government":         row("Government", 58, 56, 60, 62, 65, 59, 68, 61, 70, 78),
	FallbackIndustry:     row(FallbackIndustry, 65, 63, 70, 68, 72, 66, 67, 67, 78, 84),
}

// DefaultBenchmarks returns a copy of the built-in industry table.
func DefaultBenchmarks() BenchmarkTable {
	out := make(BenchmarkTable, len(defaultBenchmarks))
	for k, v := range defaultBenchmarks {
		pillars := make(map[models.Pillar]int, len(v.Pillars))
		for p, s := range v.Pillars {
			pillars[p] = s
		}
		v.Pillars = pillars
		out[k] = v
	}
	return out
}

// Industries lists the industries with their own rows, fallback last.
func (t BenchmarkTable) Industries() []string {
	order := []string{"Technology", "Healthcare", "Financial Services", "Manufacturing", "Retail", "Education", "Government"}
	out := make([]string, 0, len(t))
	for _, name := range order {
		if _, ok := t[name]; ok {
			out = append(out, name)
		}
	}
	for name := range t {
		if !contains(order, name) && name != FallbackIndustry {
			out = append(out, name)
		}
	}
	if _, ok := t[FallbackIndustry]; ok {
		out = append(out, FallbackIndustry)
	}
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// Lookup returns the row for industry, falling back to "Other". Matching is
// exact first, then case-insensitive.
func (t BenchmarkTable) Lookup(industry string) IndustryBenchmark {
	if b, ok := t[industry]; ok {
		return b
	}
	trimmed := strings.TrimSpace(industry)
	for name, b := range t {
		if strings.EqualFold(name, trimmed) {
			return b
		}
	}
	return t[FallbackIndustry]
}

// Position computes the benchmark position score for score against industry.
// It is a linear heuristic centered on 50 at the industry pillar average and
// clamped to [5, 95]; it is not a population percentile.
func (t BenchmarkTable) Position(score float64, industry string) float64 {
	avg := t.Lookup(industry).PillarAverage()
	if avg <= 0 {
		return 50
	}
	if score > avg {
		return math.Min(95, 50+(score-avg)/avg*45)
	}
	return math.Max(5, 50-(avg-score)/avg*45)
}

// BenchmarkPosition computes the position score against the built-in table.
func BenchmarkPosition(score float64, industry string) float64 {
	return defaultBenchmarks.Position(score, industry)
}
