// cmd/readiness/readiness_test.go
package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"readiness-workers/internal/catalog"
	"readiness-workers/internal/models"
)

// ==========================
// Test Helper Functions
// ==========================

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func writeAssessment(t *testing.T, value int) string {
	t.Helper()
	responses := make(map[string]int)
	for _, q := range catalog.Static() {
		responses[q.ID] = value
	}
	raw, err := json.Marshal(models.AssessmentData{
		Company:   models.Company{Name: "Acme", Industry: "Retail", Size: "51-200"},
		Responses: responses,
	})
	require.NoError(t, err)
	return writeFile(t, "data.json", string(raw))
}

const regionalCSV = `Question ID,Pillar,Subcategory,Question,Region,Active?
q1,Data Readiness,Data Quality,Is data profiled?,Global,true
q2,Data Readiness,Data Quality,Is data catalogued?,EU,true
q3,Data Readiness,Data Access,Is access audited?,US,true
q4,Strategy & Leadership,Vision,Is there an AI vision?,,false
`

// ==========================
// score
// ==========================

func TestScoreCommand(t *testing.T) {
	out, err := run(t, "score", "--in", writeAssessment(t, models.AnswerPartial))
	require.NoError(t, err)

	var report scoreReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 60, report.Results.OverallPercentage)
	assert.Equal(t, models.LevelDeveloping, report.Results.OverallLevel)
	assert.Len(t, report.Results.Recommendations, 7)
	assert.Equal(t, "Retail", report.Comparison.Industry)
}

func TestScoreCommand_YAML(t *testing.T) {
	out, err := run(t, "score", "--in", writeAssessment(t, models.AnswerNo), "-o", "yaml")
	require.NoError(t, err)

	var report map[string]interface{}
	require.NoError(t, yaml.Unmarshal([]byte(out), &report))
	results := report["results"].(map[string]interface{})
	assert.Equal(t, 20, results["overallPercentage"])
	assert.Equal(t, "Needs Improvement", results["overallLevel"])
	comparison := report["comparison"].(map[string]interface{})
	assert.Equal(t, "Significant improvement needed", comparison["positionMessage"])
}

func TestScoreCommand_CustomCatalog(t *testing.T) {
	catalogFile := writeFile(t, "core.csv", regionalCSV)
	dataFile := writeFile(t, "data.json", `{"company":{"companyName":"Acme","industry":"Retail","companySize":"1-10"},"responses":{"q1":5,"q2":1}}`)

	out, err := run(t, "score", "--in", dataFile, "--catalog", catalogFile)
	require.NoError(t, err)

	var report scoreReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 4, report.Results.QuestionCount)
	data, ok := report.Results.PillarScore(models.PillarData)
	require.True(t, ok)
	assert.Equal(t, 3, data.QuestionCount)
	assert.Equal(t, 47, data.Percentage)
}

func TestScoreCommand_Errors(t *testing.T) {
	dataFile := writeAssessment(t, models.AnswerYes)
	empty := writeFile(t, "empty.csv", "Pillar,Subcategory,Question\n")

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"missing in flag", []string{"score"}, `required flag(s) "in" not set`},
		{"unreadable data file", []string{"score", "--in", "nope.json"}, "failed to read assessment data file"},
		{"no responses", []string{"score", "--in", writeFile(t, "bad.json", `{"company":{}}`)}, "failed to score assessment"},
		{"empty catalog", []string{"score", "--in", dataFile, "--catalog", empty}, "no usable questions"},
		{"empty rules", []string{"score", "--in", dataFile, "--rules", empty}, "no usable rows"},
		{"bad format", []string{"score", "--in", dataFile, "-o", "xml"}, "unknown output format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

// ==========================
// catalog
// ==========================

func TestCatalogCommand(t *testing.T) {
	csvFile := writeFile(t, "regional.csv", regionalCSV)

	tests := []struct {
		name      string
		args      []string
		wantCount int
	}{
		{"static", []string{"catalog"}, len(catalog.Static())},
		{"all rows", []string{"catalog", "--csv", csvFile}, 4},
		{"eu region", []string{"catalog", "--csv", csvFile, "--region", "EU"}, 2},
		{"unique", []string{"catalog", "--csv", csvFile, "--unique"}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			require.NoError(t, err)

			var report catalogReport
			require.NoError(t, json.Unmarshal([]byte(out), &report))
			assert.Equal(t, tt.wantCount, report.QuestionCount)
			assert.Equal(t, tt.wantCount, report.Catalog.Len())
		})
	}
}

func TestCatalogCommand_RegionAndUniqueExclusive(t *testing.T) {
	_, err := run(t, "catalog", "--csv", writeFile(t, "c.csv", regionalCSV), "--region", "EU", "--unique")
	assert.Error(t, err)
}

// ==========================
// benchmark
// ==========================

func TestBenchmarkCommand(t *testing.T) {
	out, err := run(t, "benchmark", "--industry", "Retail", "--score", "20")
	require.NoError(t, err)

	var report benchmarkReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "Retail", report.Benchmark.Industry)
	assert.Less(t, report.Position, 25)
	assert.Equal(t, "Significant improvement needed", report.PositionMessage)

	out, err = run(t, "benchmark", "--industry", "Underwater Basket Weaving", "--score", "100")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "Other", report.Benchmark.Industry)
	assert.Equal(t, 72, report.Position)
	assert.Equal(t, "Above average performance", report.PositionMessage)
}

func TestBenchmarkCommand_Errors(t *testing.T) {
	_, err := run(t, "benchmark", "--industry", "Retail")
	assert.Error(t, err)

	_, err = run(t, "benchmark", "--industry", "Retail", "--score", "140")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "between 0 and 100")
}
