package catalog

import "readiness-workers/internal/models"

func newQuestion(id, text, category string, pillar models.Pillar) models.Question {
	return models.Question{
		ID:       id,
		Text:     text,
		Category: category,
		Pillar:   pillar,
		Options:  models.StandardOptions(),
	}
}

// Static returns the embedded question catalog. Callers receive their own copy.
func Static() []models.Question {
	out := make([]models.Question, len(staticQuestions))
	for i, q := range staticQuestions {
		q.Options = models.StandardOptions()
		out[i] = q
	}
	return out
}

// StaticByPillar partitions the embedded catalog by pillar, keeping catalog order.
func StaticByPillar() map[models.Pillar][]models.Question {
	return PartitionByPillar(Static())
}

// PartitionByPillar groups questions by pillar. Every known pillar gets an entry,
// even when it has no questions.
func PartitionByPillar(questions []models.Question) map[models.Pillar][]models.Question {
	out := make(map[models.Pillar][]models.Question, len(models.ResultPillarOrder))
	for _, p := range models.ResultPillarOrder {
		out[p] = nil
	}
	for _, q := range questions {
		if !q.Pillar.Valid() {
			continue
		}
		out[q.Pillar] = append(out[q.Pillar], q)
	}
	return out
}

// StaticGrouping exposes the embedded catalog in the same shape the CSV parsers return,
// keyed by pillar display name and question category.
func StaticGrouping() *Grouping {
	g := NewGrouping()
	byPillar := StaticByPillar()
	for _, p := range models.FormPillarOrder {
		for _, q := range byPillar[p] {
			g.add(CatalogQuestion{
				ID:          q.ID,
				Pillar:      p.DisplayName(),
				Subcategory: q.Category,
				Question:    q.Text,
				Region:      "Global",
			})
		}
	}
	return g
}
