// internal/workers/assessment/calculate-assessment-results/handler_test.go
package calculateassessmentresults

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/pb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"readiness-workers/internal/catalog"
	"readiness-workers/internal/common/errors"
	"readiness-workers/internal/common/logger"
	"readiness-workers/internal/models"
	"readiness-workers/internal/scoring"
)

// ==========================
// Test Helper Functions
// ==========================

func createTestHandler(t *testing.T) *Handler {
	return NewHandler(&Config{Timeout: 5 * time.Second}, scoring.NewEngine(), nil, logger.NewTestLogger(t))
}

func uniformResponses(value int) map[string]int {
	responses := make(map[string]int)
	for _, q := range catalog.Static() {
		responses[q.ID] = value
	}
	return responses
}

func createInput(industry string, responses map[string]int) *Input {
	return &Input{AssessmentData: &models.AssessmentData{
		SessionID: "sess-1",
		Company:   models.Company{Name: "Acme", Industry: industry, Size: "51-200"},
		Responses: responses,
	}}
}

func createMockJob(t *testing.T, variables interface{}) entities.Job {
	raw, err := json.Marshal(variables)
	require.NoError(t, err)
	return entities.Job{ActivatedJob: &pb.ActivatedJob{
		Key:       1001,
		Type:      TaskType,
		Retries:   3,
		Variables: string(raw),
	}}
}

func requireCode(t *testing.T, err error, code errors.ErrorCode) {
	t.Helper()
	require.Error(t, err)
	stdErr, ok := errors.AsStandardError(err)
	require.True(t, ok, "expected StandardError, got %T", err)
	assert.Equal(t, code, stdErr.Code)
}

// ==========================
// Core Functionality Tests
// ==========================

func TestHandler_Execute_Success(t *testing.T) {
	tests := []struct {
		name            string
		value           int
		percentage      int
		level           models.Level
		recommendations int
	}{
		{"all yes", models.AnswerYes, 100, models.LevelExceptional, 0},
		{"all partial", models.AnswerPartial, 60, models.LevelDeveloping, 7},
		{"all no", models.AnswerNo, 20, models.LevelNeedsImprovement, 14},
	}

	h := createTestHandler(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := h.Execute(context.Background(), createInput("Technology", uniformResponses(tt.value)))
			require.NoError(t, err)
			require.NotNil(t, output.AssessmentResults)
			assert.Equal(t, tt.percentage, output.AssessmentResults.OverallPercentage)
			assert.Equal(t, tt.level, output.OverallLevel)
			assert.Equal(t, tt.recommendations, output.RecommendationCount)
			assert.Len(t, output.AssessmentResults.PillarScores, len(models.ResultPillarOrder))
		})
	}
}

func TestHandler_Execute_UnknownIndustryFallsBack(t *testing.T) {
	output, err := createTestHandler(t).Execute(context.Background(), createInput("Aerospace", uniformResponses(models.AnswerYes)))
	require.NoError(t, err)
	assert.Equal(t, scoring.FallbackIndustry, output.AssessmentResults.Industry)
}

// ==========================
// Error Handling Tests
// ==========================

func TestHandler_Execute_InvalidData(t *testing.T) {
	h := createTestHandler(t)

	_, err := h.Execute(context.Background(), nil)
	requireCode(t, err, errors.ErrCodeInvalidAssessmentData)

	_, err = h.Execute(context.Background(), &Input{})
	requireCode(t, err, errors.ErrCodeInvalidAssessmentData)

	_, err = h.Execute(context.Background(), createInput("Retail", nil))
	requireCode(t, err, errors.ErrCodeInvalidAssessmentData)
}

func TestHandler_Execute_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := createTestHandler(t).Execute(ctx, createInput("Retail", uniformResponses(3)))
	requireCode(t, err, errors.ErrCodeTimeout)
}

func TestInvalidDataIsThrownNotRetried(t *testing.T) {
	_, err := createTestHandler(t).Execute(context.Background(), &Input{})
	outcome := errors.NewErrorHandler(logger.NewNoOpLogger()).Resolve(err, 3)

	assert.True(t, outcome.Throw())
	assert.Equal(t, "INVALID_ASSESSMENT_DATA", outcome.BPMNError.Code)
}

// ==========================
// Input Validation Tests
// ==========================

func TestValidateInput(t *testing.T) {
	tests := []struct {
		name  string
		vars  string
		valid bool
	}{
		{"valid", `{"assessmentData": {"responses": {"strategy_1": 5, "data_2": 0}}}`, true},
		{"valid with company", `{"assessmentData": {"company": {"companyName": "Acme", "assessmentType": "paid"}, "responses": {}}}`, true},
		{"missing assessmentData", `{"responses": {"strategy_1": 5}}`, false},
		{"missing responses", `{"assessmentData": {"company": {}}}`, false},
		{"answer above scale", `{"assessmentData": {"responses": {"strategy_1": 6}}}`, false},
		{"answer not integer", `{"assessmentData": {"responses": {"strategy_1": 2.5}}}`, false},
		{"unknown assessment type", `{"assessmentData": {"company": {"assessmentType": "gold"}, "responses": {}}}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ValidateInput(tt.vars)
			require.NoError(t, err)
			assert.Equal(t, tt.valid, result.Valid, result.Summary())
		})
	}
}

func TestHandler_ParseInput(t *testing.T) {
	h := createTestHandler(t)

	input, err := h.parseInput(createMockJob(t, map[string]interface{}{
		"assessmentData": map[string]interface{}{
			"sessionId": "sess-9",
			"company":   map[string]interface{}{"companyName": "Acme", "industry": "Retail"},
			"responses": map[string]int{"strategy_1": 5},
		},
	}))
	require.NoError(t, err)
	assert.Equal(t, "sess-9", input.AssessmentData.SessionID)
	assert.Equal(t, "Retail", input.AssessmentData.Company.Industry)
	assert.Equal(t, 5, input.AssessmentData.Responses["strategy_1"])

	_, err = h.parseInput(createMockJob(t, map[string]interface{}{"assessmentData": map[string]interface{}{}}))
	requireCode(t, err, errors.ErrCodeAssessmentValidationFailed)

	_, err = h.parseInput(entities.Job{ActivatedJob: &pb.ActivatedJob{Variables: "{not json"}})
	requireCode(t, err, errors.ErrCodeInvalidAssessmentData)
}

func TestLoadConfig(t *testing.T) {
	assert.Equal(t, 5*time.Second, LoadConfig(nil).Timeout)
}
