// Package airtable is a minimal client for the Airtable records REST API.
package airtable

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"readiness-workers/internal/common/config"
	commonhttp "readiness-workers/internal/common/http"
)

const (
	maxFieldNameLength  = 100
	maxFieldValueLength = 100000
)

var invalidFieldChars = regexp.MustCompile(`[^\w\s-]`)

type Client struct {
	baseURL string
	baseID  string
	table   string
	apiKey  string
	http    *commonhttp.Client
}

// Record is one Airtable row.
type Record struct {
	ID          string                 `json:"id,omitempty"`
	CreatedTime string                 `json:"createdTime,omitempty"`
	Fields      map[string]interface{} `json:"fields"`
}

type createRequest struct {
	Records []Record `json:"records"`
}

type recordsResponse struct {
	Records []Record `json:"records"`
}

func NewClient(cfg config.AirtableConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		baseID:  cfg.BaseID,
		table:   cfg.Table,
		apiKey:  cfg.APIKey,
		http:    commonhttp.NewClient(config.GetDuration(cfg.TimeoutMS)),
	}
}

func (c *Client) tableURL() string {
	return fmt.Sprintf("%s/v0/%s/%s", c.baseURL, c.baseID, url.PathEscape(c.table))
}

func (c *Client) headers() map[string]string {
	return map[string]string{"Authorization": "Bearer " + c.apiKey}
}

// CleanFields makes field names and values acceptable to Airtable: names keep
// only word characters, spaces and hyphens and are cut to 100 characters; nil
// values are dropped and long strings are truncated.
func CleanFields(fields map[string]interface{}) map[string]interface{} {
	cleaned := make(map[string]interface{}, len(fields))
	for key, value := range fields {
		if value == nil {
			continue
		}
		name := strings.TrimSpace(invalidFieldChars.ReplaceAllString(key, ""))
		if len(name) > maxFieldNameLength {
			name = name[:maxFieldNameLength]
		}
		if name == "" {
			continue
		}
		if s, ok := value.(string); ok && len(s) > maxFieldValueLength {
			value = s[:maxFieldValueLength]
		}
		cleaned[name] = value
	}
	return cleaned
}

// CreateRecord writes one row and returns its record ID.
func (c *Client) CreateRecord(ctx context.Context, fields map[string]interface{}) (string, error) {
	var resp recordsResponse
	err := c.http.DoJSON(ctx, http.MethodPost, c.tableURL(), c.headers(),
		createRequest{Records: []Record{{Fields: CleanFields(fields)}}}, &resp)
	if err != nil {
		return "", fmt.Errorf("airtable create: %w", err)
	}
	if len(resp.Records) == 0 {
		return "", fmt.Errorf("airtable create: no records in response")
	}
	return resp.Records[0].ID, nil
}

// AssessmentFields is the main record written for a completed assessment.
type AssessmentFields struct {
	CompanyName       string
	Industry          string
	CompanySize       string
	Region            string
	AssessmentType    string
	SubmittedAt       time.Time
	Responses         map[string]int
	OverallPercentage int
	OverallLevel      string
	RawResponses      string
}

// Map renders the record with the column names used in the assessments base.
func (f AssessmentFields) Map() map[string]interface{} {
	region := f.Region
	if region == "" {
		region = "Global"
	}
	assessmentType := f.AssessmentType
	if assessmentType == "" {
		assessmentType = "free"
	}
	raw := f.RawResponses
	if raw == "" {
		raw = "{}"
	}
	return map[string]interface{}{
		"Company Name":             f.CompanyName,
		"Industry":                 f.Industry,
		"Company Size":             f.CompanySize,
		"Region":                   region,
		"Assessment Type":          assessmentType,
		"Submitted At":             f.SubmittedAt.UTC().Format(time.RFC3339),
		"Total Questions Answered": len(f.Responses),
		"Assessment Status":        "Completed",
		"Raw Responses":            raw,
		"Overall Percentage":       f.OverallPercentage,
		"Overall Level":            f.OverallLevel,
	}
}
