package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"readiness-workers/internal/models"
)

// ==========================
// Static catalog
// ==========================

func TestStatic_PillarCounts(t *testing.T) {
	questions := Static()
	require.Len(t, questions, 160)

	byPillar := StaticByPillar()
	expected := map[models.Pillar]int{
		models.PillarStrategy:       21,
		models.PillarCulture:        4,
		models.PillarBusiness:       30,
		models.PillarData:           53,
		models.PillarInfrastructure: 40,
		models.PillarPeople:         8,
		models.PillarGovernance:     4,
	}
	for p, n := range expected {
		assert.Len(t, byPillar[p], n, "pillar %s", p)
	}
}

func TestStatic_QuestionShape(t *testing.T) {
	seen := make(map[string]bool)
	for _, q := range Static() {
		assert.NotEmpty(t, q.ID)
		assert.NotEmpty(t, q.Text)
		assert.NotEmpty(t, q.Category)
		assert.True(t, q.Pillar.Valid(), "question %s has pillar %q", q.ID, q.Pillar)
		assert.False(t, seen[q.ID], "duplicate id %s", q.ID)
		seen[q.ID] = true

		require.Len(t, q.Options, 3)
		assert.Equal(t, models.AnswerOption{Value: 1, Label: "No"}, q.Options[0])
		assert.Equal(t, models.AnswerOption{Value: 3, Label: "Partial"}, q.Options[1])
		assert.Equal(t, models.AnswerOption{Value: 5, Label: "Yes"}, q.Options[2])
	}
}

func TestStatic_ReturnsIndependentCopies(t *testing.T) {
	first := Static()
	first[0].Text = "mutated"
	first[0].Options[0].Label = "mutated"

	second := Static()
	assert.NotEqual(t, "mutated", second[0].Text)
	assert.Equal(t, "No", second[0].Options[0].Label)
}

func TestStaticGrouping_FollowsFormOrder(t *testing.T) {
	g := StaticGrouping()
	assert.Equal(t, 160, g.Len())
	assert.Equal(t, []string{
		"Strategy & Leadership",
		"Business Readiness",
		"Infrastructure Readiness",
		"People & Skills",
		"AI Governance & Ethics",
		"AI Organization & Culture",
		"Data Readiness",
	}, g.PillarNames())
}

// ==========================
// Generic parser
// ==========================

const coreCSV = `Pillar,Subcategory,Question,Maturity Level,Readiness Level,Score Range,Recommendation
Data Readiness,Data Quality,Is data profiled?,Low,Not Ready,0-40,Profile your data
Data Readiness,Data Quality,Is data profiled?,High,Ready,80-100,Keep profiling
Data Readiness,Data Availability,Is data available?,Mid,Partially Ready,40-80,Open access
Strategy & Leadership,Vision,Is there an AI vision?,Low,Not Ready,0-40,Write one
,Vision,Missing pillar row,Low,Not Ready,0-40,skip
Strategy & Leadership,,Missing subcategory,Low,Not Ready,0-40,skip
Strategy & Leadership,Vision,,Low,Not Ready,0-40,skip
Strategy & Leadership,Vision
`

func TestParseCatalog_KeepsDuplicatesAndOrder(t *testing.T) {
	g := ParseCatalog(strings.NewReader(coreCSV))

	assert.Equal(t, []string{"Data Readiness", "Strategy & Leadership"}, g.PillarNames())
	assert.Equal(t, 4, g.Len())

	subs := g.Subcategories("Data Readiness")
	require.Len(t, subs, 2)
	assert.Equal(t, "Data Quality", subs[0].Name)
	require.Len(t, subs[0].Questions, 2)
	assert.Equal(t, "Low", subs[0].Questions[0].MaturityLevel)
	assert.Equal(t, "High", subs[0].Questions[1].MaturityLevel)
	assert.Equal(t, "Profile your data", subs[0].Questions[0].Recommendation)
	assert.Empty(t, subs[0].Questions[0].Recommendations)
}

func TestParseCatalog_EmptyInputs(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "empty document", doc: ""},
		{name: "header only", doc: "Pillar,Subcategory,Question\n"},
		{name: "missing required columns", doc: "Pillar,Question\nData,Is it?\n"},
		{name: "only blank required cells", doc: "Pillar,Subcategory,Question\n , , \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := ParseCatalog(strings.NewReader(tt.doc))
			assert.True(t, g.Empty())
			assert.Empty(t, g.PillarNames())
		})
	}

	assert.True(t, ParseCatalog(nil).Empty())
}

func TestParseCatalog_StripsByteOrderMark(t *testing.T) {
	doc := "\ufeffPillar,Subcategory,Question\nData Readiness,Data Quality,Is data profiled?\n"
	g := ParseCatalog(strings.NewReader(doc))
	assert.Equal(t, 1, g.Len())
}

func TestParseCatalog_QuotedFields(t *testing.T) {
	doc := "Pillar,Subcategory,Question\n" +
		`"Data Readiness","Data Quality","Is data cleaned, validated and profiled?"` + "\n"
	g := ParseCatalog(strings.NewReader(doc))
	qs := g.Questions("Data Readiness")
	require.Len(t, qs, 1)
	assert.Equal(t, "Is data cleaned, validated and profiled?", qs[0].Question)
}

// ==========================
// De-duplicating parser
// ==========================

func TestParseCatalogUnique_MergesByQuestionText(t *testing.T) {
	g := ParseCatalogUnique(strings.NewReader(coreCSV))

	assert.Equal(t, 3, g.Len())
	quality := g.Subcategories("Data Readiness")[0]
	require.Len(t, quality.Questions, 1)

	q := quality.Questions[0]
	assert.Equal(t, "Is data profiled?", q.Question)
	require.Len(t, q.Recommendations, 2)
	assert.Equal(t, RecommendationRef{
		MaturityLevel:  "Low",
		ReadinessLevel: "Not Ready",
		ScoreRange:     "0-40",
		Recommendation: "Profile your data",
	}, q.Recommendations[0])
	assert.Equal(t, "Keep profiling", q.Recommendations[1].Recommendation)
}

func TestParseCatalogUnique_SameTextDifferentBucketsStaySeparate(t *testing.T) {
	doc := "Pillar,Subcategory,Question,Recommendation\n" +
		"Data Readiness,Data Quality,Same question?,A\n" +
		"Data Readiness,Data Accuracy,Same question?,B\n"
	g := ParseCatalogUnique(strings.NewReader(doc))
	assert.Equal(t, 2, g.Len())
}

// ==========================
// Regional parser
// ==========================

const regionalCSV = `Question ID,Subcategory ID,Pillar,Subcategory,Question,Region,Assessment Type,Active?
q1,s1,Data Readiness,Data Quality,Global question,Global,free,TRUE
q2,s1,Data Readiness,Data Quality,Gulf question,Gulf,free,true
q3,s1,Data Readiness,Data Quality,Europe question,"EU, UK",paid,True
q4,s1,Data Readiness,Data Quality,Inactive question,Global,free,false
q5,s1,Data Readiness,Data Quality,Blank active,Global,free,
q6,s2,Strategy & Leadership,Vision,Regionless question,,free,true
q7,s2,Strategy & Leadership,Vision,Asia question,APAC,free,true
q8,s2,Strategy & Leadership,Vision,Mixed question,"mena, global",free,true
`

func questionIDs(g *Grouping) []string {
	var ids []string
	for _, p := range g.Pillars {
		for _, s := range p.Subcategories {
			for _, q := range s.Questions {
				ids = append(ids, q.ID)
			}
		}
	}
	return ids
}

func TestParseCatalogByRegion(t *testing.T) {
	tests := []struct {
		name     string
		region   string
		expected []string
	}{
		{name: "global sees every active row", region: "Global", expected: []string{"q1", "q2", "q3", "q6", "q7", "q8"}},
		{name: "empty region means global", region: "", expected: []string{"q1", "q2", "q3", "q6", "q7", "q8"}},
		{name: "middle east alias matches gulf", region: "Middle East", expected: []string{"q1", "q2", "q6", "q8"}},
		{name: "short alias me", region: "me", expected: []string{"q1", "q2", "q6", "q8"}},
		{name: "europe matches eu token", region: "europe", expected: []string{"q1", "q3", "q6", "q8"}},
		{name: "plain token match", region: "uk", expected: []string{"q1", "q3", "q6", "q8"}},
		{name: "unknown region keeps global rows only", region: "Antarctica", expected: []string{"q1", "q6", "q8"}},
		{name: "apac", region: "APAC", expected: []string{"q1", "q6", "q7", "q8"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := ParseCatalogByRegion(strings.NewReader(regionalCSV), tt.region)
			assert.Equal(t, tt.expected, questionIDs(g))
		})
	}
}

func TestParseCatalogByRegion_MissingActiveColumnExcludesRows(t *testing.T) {
	doc := "Question ID,Pillar,Subcategory,Question,Region\nq1,Data Readiness,Data Quality,Q?,Global\n"
	g := ParseCatalogByRegion(strings.NewReader(doc), "Global")
	assert.True(t, g.Empty())
}

func TestParseCatalogByRegion_MissingRegionColumnIsGlobal(t *testing.T) {
	doc := "Question ID,Pillar,Subcategory,Question,Active?\nq1,Data Readiness,Data Quality,Q?,true\n"
	g := ParseCatalogByRegion(strings.NewReader(doc), "Europe")
	assert.Equal(t, []string{"q1"}, questionIDs(g))
}

func TestRegionMatches(t *testing.T) {
	tests := []struct {
		cell      string
		requested string
		expected  bool
	}{
		{"", "europe", true},
		{"GLOBAL", "europe", true},
		{"eu", "Global", true},
		{"eu", "europa", true},
		{"mena", "gulf", true},
		{"us", "europe", false},
		{" us , ca ", "CA", true},
		{"middle east", "eu", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, RegionMatches(tt.cell, tt.requested), "cell=%q requested=%q", tt.cell, tt.requested)
	}
}

// ==========================
// Grouping helpers
// ==========================

func TestGrouping_MergeReplacesWholePillars(t *testing.T) {
	fallback := ParseCatalog(strings.NewReader(coreCSV))
	regional := ParseCatalogByRegion(strings.NewReader(regionalCSV), "Global")

	merged := fallback.Merge(regional)

	assert.Equal(t, []string{"Data Readiness", "Strategy & Leadership"}, merged.PillarNames())
	data := merged.Questions("Data Readiness")
	require.Len(t, data, 3)
	assert.Equal(t, "q1", data[0].ID)
	assert.Len(t, merged.Questions("Strategy & Leadership"), 3)

	// inputs untouched
	assert.Equal(t, 4, fallback.Len())
}

func TestGrouping_CloneIsDeep(t *testing.T) {
	g := ParseCatalogUnique(strings.NewReader(coreCSV))
	c := g.Clone()
	c.Pillars[0].Subcategories[0].Questions[0].Recommendations[0].Recommendation = "changed"
	c.Pillars[0].Name = "changed"

	assert.Equal(t, "Profile your data", g.Pillars[0].Subcategories[0].Questions[0].Recommendations[0].Recommendation)
	assert.Equal(t, "Data Readiness", g.Pillars[0].Name)
}

func TestResolvePillar(t *testing.T) {
	tests := []struct {
		label    string
		expected models.Pillar
		ok       bool
	}{
		{"data", models.PillarData, true},
		{"Data Readiness", models.PillarData, true},
		{"AI Organization & Culture", models.PillarCulture, true},
		{"Infrastructure Readiness", models.PillarInfrastructure, true},
		{"People & Skills", models.PillarPeople, true},
		{"AI Governance & Ethics", models.PillarGovernance, true},
		{" strategy & leadership ", models.PillarStrategy, true},
		{"Finance", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		p, ok := ResolvePillar(tt.label)
		assert.Equal(t, tt.ok, ok, tt.label)
		assert.Equal(t, tt.expected, p, tt.label)
	}
}

func TestToQuestions(t *testing.T) {
	doc := "Question ID,Pillar,Subcategory,Question\n" +
		"q1,Data Readiness,Data Quality,Is data profiled?\n" +
		",Strategy & Leadership,Vision,Is there a vision?\n" +
		"q3,Finance,Budget,Unknown pillar?\n"
	questions := ToQuestions(ParseCatalog(strings.NewReader(doc)))

	require.Len(t, questions, 2)
	assert.Equal(t, "q1", questions[0].ID)
	assert.Equal(t, models.PillarData, questions[0].Pillar)
	assert.Equal(t, "Data Quality", questions[0].Category)
	assert.Equal(t, "Is there a vision?", questions[1].ID)
	assert.Len(t, questions[1].Options, 3)

	assert.Nil(t, ToQuestions(nil))
}
