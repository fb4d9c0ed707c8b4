// pkg/registry/registry_test.go
package registry

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	calculateassessmentresults "readiness-workers/internal/workers/assessment/calculate-assessment-results"
	compareindustrybenchmark "readiness-workers/internal/workers/assessment/compare-industry-benchmark"
	loadquestioncatalog "readiness-workers/internal/workers/assessment/load-question-catalog"
	submitassessmentrecord "readiness-workers/internal/workers/assessment/submit-assessment-record"
	sendassessmentsummary "readiness-workers/internal/workers/communication/send-assessment-summary"
)

const registryFile = "../../configs/activity-registry.json"

var testNow = time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

func TestLoadRegistry_ShippedFile(t *testing.T) {
	reg, err := LoadRegistry(registryFile)
	require.NoError(t, err)
	require.NoError(t, reg.Validate())

	assert.ElementsMatch(t, []string{
		loadquestioncatalog.TaskType,
		calculateassessmentresults.TaskType,
		compareindustrybenchmark.TaskType,
		submitassessmentrecord.TaskType,
		sendassessmentsummary.TaskType,
	}, reg.TaskTypes())
}

func TestActivityRegistry_ValidateInput(t *testing.T) {
	reg, err := LoadRegistry(registryFile)
	require.NoError(t, err)

	tests := []struct {
		name     string
		taskType string
		vars     string
		valid    bool
	}{
		{"scoring ok", calculateassessmentresults.TaskType, `{"assessmentData": {"responses": {"strategy_1": 3}}}`, true},
		{"scoring out of range", calculateassessmentresults.TaskType, `{"assessmentData": {"responses": {"strategy_1": 9}}}`, false},
		{"catalog refresh not boolean", loadquestioncatalog.TaskType, `{"refresh": "yes"}`, false},
		{"catalog defaults", loadquestioncatalog.TaskType, `{}`, true},
		{"summary missing results", sendassessmentsummary.TaskType, `{"email": "a@b.io"}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := reg.ValidateInput(tt.taskType, tt.vars)
			require.NoError(t, err)
			assert.Equal(t, tt.valid, result.Valid, result.Summary())
		})
	}

	_, err = reg.ValidateInput("unknown-task", `{}`)
	assert.ErrorIs(t, err, ErrActivityNotFound)
}

func TestActivityRegistry_AddUpdateSave(t *testing.T) {
	reg := New(testNow)
	activity := Activity{
		ID:          "export-results",
		DisplayName: "Export Results",
		Category:    "persistence",
		TaskType:    "export-results",
		Timeout:     "10s",
	}
	require.NoError(t, reg.Add(activity, testNow))
	assert.ErrorIs(t, reg.Add(activity, testNow), ErrDuplicateID)

	later := testNow.Add(time.Hour)
	require.NoError(t, reg.Update("export-results", "status", StatusInProgress, later))
	require.NoError(t, reg.Update("export-results", "retries", "5", later))
	assert.Error(t, reg.Update("export-results", "status", "shipped", later))
	assert.Error(t, reg.Update("export-results", "timeout", "soon", later))
	assert.Error(t, reg.Update("export-results", "owner", "me", later))
	assert.ErrorIs(t, reg.Update("missing", "status", StatusPlanned, later), ErrActivityNotFound)

	path := filepath.Join(t.TempDir(), "nested", "registry.json")
	require.NoError(t, reg.Save(path))

	loaded, err := LoadRegistry(path)
	require.NoError(t, err)
	a, ok := loaded.Find("export-results")
	require.True(t, ok)
	assert.Equal(t, StatusInProgress, a.ImplementationStatus)
	assert.Equal(t, 5, a.Retries)
	assert.Equal(t, "2025-06-02T10:00:00Z", loaded.LastUpdated)
}

func TestActivityRegistry_Validate(t *testing.T) {
	valid := func() Activity {
		return Activity{ID: "a", DisplayName: "A", Category: "c", TaskType: "a"}
	}

	tests := []struct {
		name   string
		mutate func(*ActivityRegistry)
	}{
		{"empty", func(r *ActivityRegistry) { r.Activities = nil }},
		{"missing id", func(r *ActivityRegistry) { r.Activities[0].ID = "" }},
		{"missing task type", func(r *ActivityRegistry) { r.Activities[0].TaskType = "" }},
		{"duplicate id", func(r *ActivityRegistry) {
			b := valid()
			b.TaskType = "b"
			r.Activities = append(r.Activities, b)
		}},
		{"duplicate task type", func(r *ActivityRegistry) {
			b := valid()
			b.ID = "b"
			r.Activities = append(r.Activities, b)
		}},
		{"bad status", func(r *ActivityRegistry) { r.Activities[0].ImplementationStatus = "done-ish" }},
		{"bad timeout", func(r *ActivityRegistry) { r.Activities[0].Timeout = "ten seconds" }},
		{"bad schema", func(r *ActivityRegistry) {
			r.Activities[0].InputSchema = map[string]interface{}{"type": 12}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := &ActivityRegistry{Activities: []Activity{valid()}}
			require.NoError(t, reg.Validate())
			tt.mutate(reg)
			assert.Error(t, reg.Validate())
		})
	}
}
