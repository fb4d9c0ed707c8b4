package catalog

// RecommendationRef is one recommendation lookup row attached to a CSV question.
type RecommendationRef struct {
	MaturityLevel  string `json:"maturityLevel,omitempty"`
	ReadinessLevel string `json:"readinessLevel,omitempty"`
	ScoreRange     string `json:"scoreRange,omitempty"`
	Recommendation string `json:"recommendation,omitempty"`
}

// CatalogQuestion is a question record sourced from a tabular document.
type CatalogQuestion struct {
	ID             string `json:"id,omitempty"`
	Pillar         string `json:"pillar"`
	Subcategory    string `json:"subcategory"`
	Question       string `json:"question"`
	Region         string `json:"region,omitempty"`
	AssessmentType string `json:"assessmentType,omitempty"`

	MaturityLevel  string `json:"maturityLevel,omitempty"`
	ReadinessLevel string `json:"readinessLevel,omitempty"`
	ScoreRange     string `json:"scoreRange,omitempty"`
	Recommendation string `json:"recommendation,omitempty"`

	// Recommendations is filled by the de-duplicating parser only.
	Recommendations []RecommendationRef `json:"recommendations,omitempty"`
}

// Key is the response-map key for the question: its ID, or its text when it has none.
func (q CatalogQuestion) Key() string {
	if q.ID != "" {
		return q.ID
	}
	return q.Question
}

type SubcategoryGroup struct {
	Name      string            `json:"name"`
	Questions []CatalogQuestion `json:"questions"`
}

type PillarGroup struct {
	Name          string              `json:"name"`
	Subcategories []*SubcategoryGroup `json:"subcategories"`
}

func (p *PillarGroup) subcategory(name string) *SubcategoryGroup {
	for _, s := range p.Subcategories {
		if s.Name == name {
			return s
		}
	}
	s := &SubcategoryGroup{Name: name}
	p.Subcategories = append(p.Subcategories, s)
	return s
}

func (p *PillarGroup) clone() *PillarGroup {
	c := &PillarGroup{Name: p.Name, Subcategories: make([]*SubcategoryGroup, len(p.Subcategories))}
	for i, s := range p.Subcategories {
		qs := make([]CatalogQuestion, len(s.Questions))
		copy(qs, s.Questions)
		for j := range qs {
			if qs[j].Recommendations != nil {
				qs[j].Recommendations = append([]RecommendationRef(nil), qs[j].Recommendations...)
			}
		}
		c.Subcategories[i] = &SubcategoryGroup{Name: s.Name, Questions: qs}
	}
	return c
}

// Grouping is an ordered pillar -> subcategory -> questions mapping.
// Pillars and subcategories keep the order they were first seen in.
type Grouping struct {
	Pillars []*PillarGroup `json:"pillars"`
}

func NewGrouping() *Grouping {
	return &Grouping{}
}

func (g *Grouping) pillar(name string, create bool) *PillarGroup {
	for _, p := range g.Pillars {
		if p.Name == name {
			return p
		}
	}
	if !create {
		return nil
	}
	p := &PillarGroup{Name: name}
	g.Pillars = append(g.Pillars, p)
	return p
}

func (g *Grouping) add(q CatalogQuestion) {
	s := g.pillar(q.Pillar, true).subcategory(q.Subcategory)
	s.Questions = append(s.Questions, q)
}

// addMerged folds rows with identical question text in the same bucket into one entry.
func (g *Grouping) addMerged(q CatalogQuestion) {
	ref := RecommendationRef{
		MaturityLevel:  q.MaturityLevel,
		ReadinessLevel: q.ReadinessLevel,
		ScoreRange:     q.ScoreRange,
		Recommendation: q.Recommendation,
	}
	s := g.pillar(q.Pillar, true).subcategory(q.Subcategory)
	for i := range s.Questions {
		if s.Questions[i].Question == q.Question {
			s.Questions[i].Recommendations = append(s.Questions[i].Recommendations, ref)
			return
		}
	}
	merged := CatalogQuestion{
		ID:             q.ID,
		Pillar:         q.Pillar,
		Subcategory:    q.Subcategory,
		Question:       q.Question,
		Region:         q.Region,
		AssessmentType: q.AssessmentType,
	}
	merged.Recommendations = []RecommendationRef{ref}
	s.Questions = append(s.Questions, merged)
}

// Len counts every question in the grouping.
func (g *Grouping) Len() int {
	if g == nil {
		return 0
	}
	n := 0
	for _, p := range g.Pillars {
		for _, s := range p.Subcategories {
			n += len(s.Questions)
		}
	}
	return n
}

func (g *Grouping) Empty() bool {
	return g.Len() == 0
}

// PillarNames returns pillar names in grouping order.
func (g *Grouping) PillarNames() []string {
	if g == nil {
		return nil
	}
	names := make([]string, 0, len(g.Pillars))
	for _, p := range g.Pillars {
		names = append(names, p.Name)
	}
	return names
}

// Subcategories returns the buckets of one pillar, or nil if the pillar is absent.
func (g *Grouping) Subcategories(pillar string) []*SubcategoryGroup {
	if g == nil {
		return nil
	}
	if p := g.pillar(pillar, false); p != nil {
		return p.Subcategories
	}
	return nil
}

// Questions flattens one pillar's buckets in order.
func (g *Grouping) Questions(pillar string) []CatalogQuestion {
	var out []CatalogQuestion
	for _, s := range g.Subcategories(pillar) {
		out = append(out, s.Questions...)
	}
	return out
}

// Clone returns a deep copy of g.
func (g *Grouping) Clone() *Grouping {
	return g.Merge(nil)
}

// Merge returns a new grouping holding g's pillars with any pillar present in
// override replaced wholesale by the override's version. Pillars only in
// override are appended.
func (g *Grouping) Merge(override *Grouping) *Grouping {
	out := NewGrouping()
	if g != nil {
		for _, p := range g.Pillars {
			out.Pillars = append(out.Pillars, p.clone())
		}
	}
	if override == nil {
		return out
	}
	for _, p := range override.Pillars {
		replaced := false
		for i, existing := range out.Pillars {
			if existing.Name == p.Name {
				out.Pillars[i] = p.clone()
				replaced = true
				break
			}
		}
		if !replaced {
			out.Pillars = append(out.Pillars, p.clone())
		}
	}
	return out
}
