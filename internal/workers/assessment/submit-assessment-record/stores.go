// internal/workers/assessment/submit-assessment-record/stores.go
package submitassessmentrecord

import (
	"context"
	"encoding/json"
	"fmt"

	"readiness-workers/internal/common/airtable"
	"readiness-workers/internal/common/errors"
	"readiness-workers/internal/models"
)

const insertResultSQL = `
INSERT INTO assessment_results (
	id, session_id, company_name, industry, company_size, region, assessment_type,
	overall_percentage, overall_level, benchmark_position, results, responses, submitted_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

func (h *Handler) insertPostgres(ctx context.Context, record models.AssessmentRecord, input *Input) error {
	results, err := json.Marshal(input.AssessmentResults)
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	responses, err := json.Marshal(input.AssessmentData.Responses)
	if err != nil {
		return fmt.Errorf("marshal responses: %w", err)
	}

	_, err = h.db.ExecContext(ctx, insertResultSQL,
		record.ID,
		record.SessionID,
		record.CompanyName,
		record.Industry,
		record.CompanySize,
		record.Region,
		record.AssessmentType,
		record.OverallPercentage,
		string(record.OverallLevel),
		record.BenchmarkPosition,
		results,
		responses,
		record.SubmittedAt,
	)
	if err != nil {
		return errors.NewDatabaseError("insert assessment result", err)
	}
	return nil
}

func (h *Handler) createAirtableRecord(ctx context.Context, record models.AssessmentRecord, input *Input) (string, error) {
	raw, err := json.Marshal(input.AssessmentData.Responses)
	if err != nil {
		return "", fmt.Errorf("marshal responses: %w", err)
	}

	fields := airtable.AssessmentFields{
		CompanyName:       record.CompanyName,
		Industry:          record.Industry,
		CompanySize:       record.CompanySize,
		Region:            record.Region,
		AssessmentType:    record.AssessmentType,
		SubmittedAt:       record.SubmittedAt,
		Responses:         input.AssessmentData.Responses,
		OverallPercentage: record.OverallPercentage,
		OverallLevel:      string(record.OverallLevel),
		RawResponses:      string(raw),
	}.Map()

	id, err := h.records.CreateRecord(ctx, fields)
	if err != nil {
		return "", errors.NewExternalAPIError("airtable", err)
	}
	return id, nil
}

func (h *Handler) indexResult(ctx context.Context, record models.AssessmentRecord, input *Input) error {
	doc := indexedResult{
		AssessmentRecord:    record,
		PillarPercentages:   make(map[models.Pillar]int, len(input.AssessmentResults.PillarScores)),
		RecommendationCount: len(input.AssessmentResults.Recommendations),
	}
	for _, ps := range input.AssessmentResults.PillarScores {
		doc.PillarPercentages[ps.Pillar] = ps.Percentage
	}
	if err := h.indexer.IndexDocument(ctx, h.config.ResultsIndex, record.ID, doc); err != nil {
		return errors.NewExternalAPIError("elasticsearch", err)
	}
	return nil
}
