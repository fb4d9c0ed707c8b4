package airtable

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"readiness-workers/internal/common/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(config.AirtableConfig{
		BaseURL:   srv.URL + "/",
		BaseID:    "appTEST",
		Table:     "AI Assessments",
		APIKey:    "key-123",
		TimeoutMS: 2000,
	})
}

func TestCleanFields(t *testing.T) {
	long := strings.Repeat("x", maxFieldValueLength+10)
	longName := strings.Repeat("n", 150)

	cleaned := CleanFields(map[string]interface{}{
		"Company Name":   "Acme",
		"Score (%)":      64,
		"Notes!?":        nil,
		"@#$":            "dropped",
		"Raw Responses":  long,
		longName:         true,
		" Region-Code ":  "EU",
		"Overall Level*": "Developing",
	})

	assert.Equal(t, "Acme", cleaned["Company Name"])
	assert.Equal(t, 64, cleaned["Score"])
	assert.Equal(t, "EU", cleaned["Region-Code"])
	assert.Equal(t, "Developing", cleaned["Overall Level"])
	assert.NotContains(t, cleaned, "Notes")
	assert.NotContains(t, cleaned, "")
	assert.Len(t, cleaned["Raw Responses"], maxFieldValueLength)
	assert.Equal(t, true, cleaned[longName[:maxFieldNameLength]])
	assert.Len(t, cleaned, 6)
}

func TestClient_CreateRecord(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody createRequest

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		gotAuth = r.Header.Get("Authorization")
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"records":[{"id":"rec42","fields":{}}]}`))
	})

	id, err := client.CreateRecord(context.Background(), map[string]interface{}{"Company Name": "Acme", "Skip": nil})
	require.NoError(t, err)
	assert.Equal(t, "rec42", id)
	assert.Equal(t, "/v0/appTEST/AI%20Assessments", gotPath)
	assert.Equal(t, "Bearer key-123", gotAuth)
	require.Len(t, gotBody.Records, 1)
	assert.Equal(t, map[string]interface{}{"Company Name": "Acme"}, gotBody.Records[0].Fields)
}

func TestClient_CreateRecordError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"error":{"type":"UNKNOWN_FIELD_NAME"}}`))
	})

	_, err := client.CreateRecord(context.Background(), map[string]interface{}{"Bogus": 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UNKNOWN_FIELD_NAME")
}

func TestAssessmentFields_Map(t *testing.T) {
	submitted := time.Date(2025, 3, 4, 10, 30, 0, 0, time.UTC)
	fields := AssessmentFields{
		CompanyName:       "Acme",
		Industry:          "Retail",
		CompanySize:       "51-200",
		SubmittedAt:       submitted,
		Responses:         map[string]int{"a": 5, "b": 3},
		RawResponses:      `{"a":5,"b":3}`,
		OverallPercentage: 64,
		OverallLevel:      "Developing",
	}.Map()

	assert.Equal(t, "Global", fields["Region"])
	assert.Equal(t, "free", fields["Assessment Type"])
	assert.Equal(t, "2025-03-04T10:30:00Z", fields["Submitted At"])
	assert.Equal(t, 2, fields["Total Questions Answered"])
	assert.Equal(t, "Completed", fields["Assessment Status"])
	assert.Equal(t, `{"a":5,"b":3}`, fields["Raw Responses"])
	assert.Equal(t, 64, fields["Overall Percentage"])
}
