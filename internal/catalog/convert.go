package catalog

import (
	"strings"

	"readiness-workers/internal/models"
)

// pillarKeywords resolves free-form pillar labels. Order matters: the first
// keyword found in the label wins.
var pillarKeywords = []struct {
	keyword string
	pillar  models.Pillar
}{
	{"strategy", models.PillarStrategy},
	{"culture", models.PillarCulture},
	{"business", models.PillarBusiness},
	{"infrastructure", models.PillarInfrastructure},
	{"data", models.PillarData},
	{"people", models.PillarPeople},
	{"skills", models.PillarPeople},
	{"talent", models.PillarPeople},
	{"governance", models.PillarGovernance},
	{"ethics", models.PillarGovernance},
}

// ResolvePillar maps a pillar key ("data"), display name ("Data Readiness") or
// similar label to a Pillar.
func ResolvePillar(label string) (models.Pillar, bool) {
	l := strings.ToLower(strings.TrimSpace(label))
	if l == "" {
		return "", false
	}
	for _, p := range models.ResultPillarOrder {
		if l == string(p) || l == strings.ToLower(p.DisplayName()) {
			return p, true
		}
	}
	for _, kw := range pillarKeywords {
		if strings.Contains(l, kw.keyword) {
			return kw.pillar, true
		}
	}
	return "", false
}

// ToQuestions converts a parsed grouping into engine questions. Questions under
// an unrecognized pillar are dropped.
func ToQuestions(g *Grouping) []models.Question {
	if g == nil {
		return nil
	}
	out := make([]models.Question, 0, g.Len())
	for _, pg := range g.Pillars {
		pillar, ok := ResolvePillar(pg.Name)
		if !ok {
			continue
		}
		for _, s := range pg.Subcategories {
			for _, q := range s.Questions {
				out = append(out, newQuestion(q.Key(), q.Question, s.Name, pillar))
			}
		}
	}
	return out
}
