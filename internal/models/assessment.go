package models

// Pillar is one of the seven fixed readiness dimensions.
type Pillar string

const (
	PillarStrategy       Pillar = "strategy"
	PillarCulture        Pillar = "culture"
	PillarBusiness       Pillar = "business"
	PillarData           Pillar = "data"
	PillarInfrastructure Pillar = "infrastructure"
	PillarPeople         Pillar = "people"
	PillarGovernance     Pillar = "governance"
)

// ResultPillarOrder is the order pillar scores appear in AssessmentResults.
var ResultPillarOrder = []Pillar{
	PillarStrategy,
	PillarCulture,
	PillarBusiness,
	PillarData,
	PillarInfrastructure,
	PillarPeople,
	PillarGovernance,
}

// FormPillarOrder is the order the questionnaire walks through the pillars.
var FormPillarOrder = []Pillar{
	PillarStrategy,
	PillarBusiness,
	PillarInfrastructure,
	PillarPeople,
	PillarGovernance,
	PillarCulture,
	PillarData,
}

var pillarDisplayNames = map[Pillar]string{
	PillarStrategy:       "Strategy & Leadership",
	PillarCulture:        "AI Organization & Culture",
	PillarBusiness:       "Business Readiness",
	PillarData:           "Data Readiness",
	PillarInfrastructure: "Infrastructure Readiness",
	PillarPeople:         "People & Skills",
	PillarGovernance:     "AI Governance & Ethics",
}

var pillarColors = map[Pillar]string{
	PillarStrategy:       "#2563EB",
	PillarCulture:        "#7C3AED",
	PillarBusiness:       "#F59E0B",
	PillarData:           "#10B981",
	PillarInfrastructure: "#EF4444",
	PillarPeople:         "#06B6D4",
	PillarGovernance:     "#EC4899",
}

// DisplayName returns the human readable pillar name, or the raw key if unknown.
func (p Pillar) DisplayName() string {
	if name, ok := pillarDisplayNames[p]; ok {
		return name
	}
	return string(p)
}

// Color returns the fixed chart color for the pillar.
func (p Pillar) Color() string {
	return pillarColors[p]
}

func (p Pillar) Valid() bool {
	_, ok := pillarDisplayNames[p]
	return ok
}

// AnswerOption is one point on the No/Partial/Yes scale.
type AnswerOption struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

const (
	AnswerNo      = 1
	AnswerPartial = 3
	AnswerYes     = 5

	// MaxAnswerValue is the highest value a response can contribute.
	MaxAnswerValue = AnswerYes
)

// StandardOptions returns a fresh copy of the three answer options.
func StandardOptions() []AnswerOption {
	return []AnswerOption{
		{Value: AnswerNo, Label: "No"},
		{Value: AnswerPartial, Label: "Partial"},
		{Value: AnswerYes, Label: "Yes"},
	}
}

// Question is a single catalog item.
type Question struct {
	ID       string         `json:"id"`
	Text     string         `json:"text"`
	Category string         `json:"category"`
	Pillar   Pillar         `json:"pillar"`
	Options  []AnswerOption `json:"options"`
}

// AssessmentType tags the offering the assessment was taken under.
type AssessmentType string

const (
	AssessmentTypeFree AssessmentType = "free"
	AssessmentTypePaid AssessmentType = "paid"
)

// Company is the respondent metadata collected before the questionnaire.
type Company struct {
	Name           string         `json:"companyName" validate:"required,max=255"`
	Industry       string         `json:"industry" validate:"required"`
	Size           string         `json:"companySize" validate:"required"`
	Region         string         `json:"region,omitempty"`
	AssessmentType AssessmentType `json:"assessmentType,omitempty" validate:"omitempty,oneof=free paid"`
}

// AssessmentData is the raw input to the scoring engine.
type AssessmentData struct {
	SessionID string         `json:"sessionId,omitempty"`
	Company   Company        `json:"company"`
	Responses map[string]int `json:"responses"`
}

// Level is the engine's qualitative band for a percentage.
type Level string

const (
	LevelExceptional      Level = "Exceptional"
	LevelAdvanced         Level = "Advanced"
	LevelProficient       Level = "Proficient"
	LevelDeveloping       Level = "Developing"
	LevelBasic            Level = "Basic"
	LevelNeedsImprovement Level = "Needs Improvement"
)

// PillarScore is the derived score snapshot for one pillar.
type PillarScore struct {
	Pillar        Pillar `json:"pillar"`
	Name          string `json:"name"`
	Score         int    `json:"score"`
	MaxScore      int    `json:"maxScore"`
	Percentage    int    `json:"percentage"`
	Level         Level  `json:"level"`
	Color         string `json:"color"`
	QuestionCount int    `json:"questionCount"`
}

// Priority orders recommendations for display.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Rank returns 0 for High, 1 for Medium, 2 for Low and 3 for anything else.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}

func (p Priority) Valid() bool {
	return p.Rank() < 3
}

// Recommendation is one canned action item.
type Recommendation struct {
	Pillar      string   `json:"pillar"`
	Category    string   `json:"category"`
	Priority    Priority `json:"priority"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Timeline    string   `json:"timeline"`
}

// AssessmentResults is the full output of a scoring run.
type AssessmentResults struct {
	OverallScore      int              `json:"overallScore"`
	OverallPercentage int              `json:"overallPercentage"`
	OverallLevel      Level            `json:"overallLevel"`
	PillarScores      []PillarScore    `json:"pillarScores"`
	Industry          string           `json:"industry"`
	BenchmarkPosition int              `json:"benchmarkPosition"`
	Recommendations   []Recommendation `json:"recommendations"`
	QuestionCount     int              `json:"questionCount"`
}

// PillarScore returns the score for p, if present.
func (r *AssessmentResults) PillarScore(p Pillar) (PillarScore, bool) {
	for _, ps := range r.PillarScores {
		if ps.Pillar == p {
			return ps, true
		}
	}
	return PillarScore{}, false
}
