package scoring

import (
	"encoding/csv"
	"errors"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"readiness-workers/internal/catalog"
	"readiness-workers/internal/models"
)

// Rule emits its recommendation when a pillar's percentage is below Threshold.
type Rule struct {
	Threshold      int                   `json:"threshold"`
	Recommendation models.Recommendation `json:"recommendation"`
}

// RuleSet holds the recommendation rules of each pillar in evaluation order.
type RuleSet map[models.Pillar][]Rule

// Len counts the rules across all pillars.
func (rs RuleSet) Len() int {
	n := 0
	for _, rules := range rs {
		n += len(rules)
	}
	return n
}

func rule(p models.Pillar, threshold int, category string, priority models.Priority, title, description, timeline string) Rule {
	return Rule{
		Threshold: threshold,
		Recommendation: models.Recommendation{
			Pillar:      p.DisplayName(),
			Category:    category,
			Priority:    priority,
			Title:       title,
			Description: description,
			Timeline:    timeline,
		},
	}
}

var defaultRules = RuleSet{
	models.PillarStrategy: {
		rule(models.PillarStrategy, 70, "AI Vision Alignment", models.PriorityHigh,
			"Develop AI Strategy and Leadership",
			"Establish a clear AI strategy with designated leadership and governance framework aligned with corporate strategy.",
			"3-6 months"),
		rule(models.PillarStrategy, 60, "Executive Sponsorship", models.PriorityHigh,
			"Secure Executive Sponsorship",
			"Ensure executives actively sponsor and communicate AI initiatives across the organization.",
			"2-4 months"),
	},
	models.PillarCulture: {
		rule(models.PillarCulture, 70, "Change Management", models.PriorityHigh,
			"Build AI-Ready Culture",
			"Foster a culture of innovation and experimentation that supports AI adoption.",
			"6-12 months"),
		rule(models.PillarCulture, 60, "Organizational Alignment", models.PriorityMedium,
			"Establish Cross-Functional Collaboration",
			"Create channels for collaboration and knowledge sharing across departments.",
			"3-6 months"),
	},
	models.PillarBusiness: {
		rule(models.PillarBusiness, 70, "AI Use Cases", models.PriorityHigh,
			"Define AI Business Cases",
			"Identify and validate priority AI use cases with clear ROI frameworks.",
			"2-4 months"),
		rule(models.PillarBusiness, 60, "Innovation Pipeline", models.PriorityMedium,
			"Integrate AI into Innovation Pipeline",
			"Make AI part of the innovation and product development pipeline.",
			"3-6 months"),
	},
	models.PillarData: {
		rule(models.PillarData, 70, "Data Quality", models.PriorityHigh,
			"Improve Data Quality and Governance",
			"Implement data quality solutions and establish clear data governance frameworks.",
			"3-9 months"),
		rule(models.PillarData, 60, "Cybersecurity & Compliance", models.PriorityHigh,
			"Strengthen Data Security",
			"Enhance cybersecurity measures and ensure compliance with data protection regulations.",
			"2-6 months"),
	},
	models.PillarInfrastructure: {
		rule(models.PillarInfrastructure, 70, "Cloud Readiness", models.PriorityHigh,
			"Modernize IT Infrastructure",
			"Invest in cloud computing and scalable infrastructure to support AI workloads.",
			"6-12 months"),
		rule(models.PillarInfrastructure, 60, "AI Tools and Technology", models.PriorityMedium,
			"Implement MLOps Pipeline",
			"Establish MLOps practices for AI model development, deployment, and monitoring.",
			"4-8 months"),
	},
	models.PillarPeople: {
		rule(models.PillarPeople, 70, "Talent Development", models.PriorityHigh,
			"Build AI Talent Pipeline",
			"Invest in AI talent acquisition and upskilling programs for existing employees.",
			"6-12 months"),
		rule(models.PillarPeople, 60, "Training Programs", models.PriorityMedium,
			"Implement AI Training Programs",
			"Develop comprehensive AI literacy and skills development programs.",
			"3-9 months"),
	},
	models.PillarGovernance: {
		rule(models.PillarGovernance, 70, "Ethical Framework", models.PriorityHigh,
			"Establish AI Ethics Framework",
			"Develop and implement responsible AI practices and ethical guidelines.",
			"3-6 months"),
		rule(models.PillarGovernance, 60, "Compliance", models.PriorityHigh,
			"Ensure Regulatory Compliance",
			"Establish mechanisms for compliance with AI-related regulations and standards.",
			"2-5 months"),
	},
}

// DefaultRules returns a copy of the built-in rule table.
func DefaultRules() RuleSet {
	out := make(RuleSet, len(defaultRules))
	for p, rules := range defaultRules {
		out[p] = append([]Rule(nil), rules...)
	}
	return out
}

// BuildRecommendations evaluates rules against per-pillar percentages. Pillars
// missing from percentages are skipped. Output follows result pillar order,
// then rule order.
func BuildRecommendations(percentages map[models.Pillar]int, rules RuleSet) []models.Recommendation {
	out := make([]models.Recommendation, 0)
	for _, p := range models.ResultPillarOrder {
		pct, ok := percentages[p]
		if !ok {
			continue
		}
		for _, r := range rules[p] {
			if pct < r.Threshold {
				out = append(out, r.Recommendation)
			}
		}
	}
	return out
}

// SortByPriority returns recs ordered High, Medium, Low. Ties keep their input order.
func SortByPriority(recs []models.Recommendation) []models.Recommendation {
	out := append([]models.Recommendation(nil), recs...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority.Rank() < out[j].Priority.Rank()
	})
	return out
}

// PillarRecommendations is one pillar's slice of a recommendation list.
type PillarRecommendations struct {
	Pillar          string                  `json:"pillar"`
	Recommendations []models.Recommendation `json:"recommendations"`
}

// GroupByPillar buckets recs by pillar. Known pillars come first in result
// order, unknown pillar names follow in first-seen order.
func GroupByPillar(recs []models.Recommendation) []PillarRecommendations {
	order := make([]string, 0, len(models.ResultPillarOrder))
	seen := make(map[string]bool)
	for _, p := range models.ResultPillarOrder {
		order = append(order, p.DisplayName())
		seen[p.DisplayName()] = true
	}
	buckets := make(map[string][]models.Recommendation)
	for _, r := range recs {
		if !seen[r.Pillar] {
			seen[r.Pillar] = true
			order = append(order, r.Pillar)
		}
		buckets[r.Pillar] = append(buckets[r.Pillar], r)
	}

	var groups []PillarRecommendations
	for _, name := range order {
		if len(buckets[name]) == 0 {
			continue
		}
		groups = append(groups, PillarRecommendations{Pillar: name, Recommendations: buckets[name]})
	}
	return groups
}

// Columns of a recommendation rule document.
const (
	RuleColPillar      = "Pillar"
	RuleColResultType  = "ResultType"
	RuleColPriority    = "Priority"
	RuleColTitle       = "Title"
	RuleColDescription = "Description"
	RuleColTimeline    = "Timeline"
	RuleColCategory    = "Category"
)

var thresholdPattern = regexp.MustCompile(`(?i)^\s*(?:<|below|under|less than)?\s*(\d{1,3})\s*%?\s*$`)

// parseThreshold reads a ResultType cell such as "<70", "below 60" or "70".
func parseThreshold(s string) (int, bool) {
	m := thresholdPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 0 || n > 100 {
		return 0, false
	}
	return n, true
}

func parsePriority(s string) (models.Priority, bool) {
	for _, p := range []models.Priority{models.PriorityHigh, models.PriorityMedium, models.PriorityLow} {
		if strings.EqualFold(strings.TrimSpace(s), string(p)) {
			return p, true
		}
	}
	return "", false
}

// ParseRecommendationRules reads a rule table from a tabular document. Rows
// with an unknown pillar, unreadable ResultType, invalid priority or empty
// title are skipped and counted in the second return value.
func ParseRecommendationRules(r io.Reader) (RuleSet, int) {
	rules := make(RuleSet)
	skipped := 0
	if r == nil {
		return rules, 0
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	head, err := reader.Read()
	if err != nil {
		return rules, 0
	}
	index := make(map[string]int, len(head))
	for i, name := range head {
		index[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = i
	}
	get := func(record []string, col string) string {
		if pos, ok := index[col]; ok && pos < len(record) {
			return strings.TrimSpace(record[pos])
		}
		return ""
	}

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				skipped++
				continue
			}
			break
		}

		pillar, ok := catalog.ResolvePillar(get(record, RuleColPillar))
		if !ok {
			skipped++
			continue
		}
		threshold, ok := parseThreshold(get(record, RuleColResultType))
		if !ok {
			skipped++
			continue
		}
		priority, ok := parsePriority(get(record, RuleColPriority))
		if !ok {
			skipped++
			continue
		}
		title := get(record, RuleColTitle)
		if title == "" {
			skipped++
			continue
		}
		category := get(record, RuleColCategory)
		if category == "" {
			category = pillar.DisplayName()
		}
		rules[pillar] = append(rules[pillar], rule(pillar, threshold, category, priority,
			title, get(record, RuleColDescription), get(record, RuleColTimeline)))
	}
	return rules, skipped
}
