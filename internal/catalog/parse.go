package catalog

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"
)

// Column names recognized in question source documents.
const (
	ColQuestionID     = "Question ID"
	ColPillar         = "Pillar"
	ColSubcategory    = "Subcategory"
	ColQuestion       = "Question"
	ColRegion         = "Region"
	ColAssessmentType = "Assessment Type"
	ColActive         = "Active?"
	ColMaturityLevel  = "Maturity Level"
	ColReadinessLevel = "Readiness Level"
	ColScoreRange     = "Score Range"
	ColRecommendation = "Recommendation"
)

// header maps column names to positions for one document.
type header map[string]int

func newHeader(names []string) header {
	h := make(header, len(names))
	for i, name := range names {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, dup := h[name]; !dup {
			h[name] = i
		}
	}
	return h
}

// field returns the trimmed cell for a column and whether the column exists in this row.
func (h header) field(record []string, name string) (string, bool) {
	pos, ok := h[name]
	if !ok || pos >= len(record) {
		return "", false
	}
	return strings.TrimSpace(record[pos]), true
}

// catalogRow is the typed view of one document row.
type catalogRow struct {
	CatalogQuestion
	active    bool
	hasActive bool
}

// decodeRow applies the row schema: Pillar, Subcategory and Question must be
// non-empty, everything else defaults to "".
func decodeRow(h header, record []string) (catalogRow, bool) {
	var row catalogRow
	var ok bool
	if row.Pillar, ok = h.field(record, ColPillar); !ok || row.Pillar == "" {
		return row, false
	}
	if row.Subcategory, ok = h.field(record, ColSubcategory); !ok || row.Subcategory == "" {
		return row, false
	}
	if row.Question, ok = h.field(record, ColQuestion); !ok || row.Question == "" {
		return row, false
	}
	row.ID, _ = h.field(record, ColQuestionID)
	row.Region, _ = h.field(record, ColRegion)
	row.AssessmentType, _ = h.field(record, ColAssessmentType)
	row.MaturityLevel, _ = h.field(record, ColMaturityLevel)
	row.ReadinessLevel, _ = h.field(record, ColReadinessLevel)
	row.ScoreRange, _ = h.field(record, ColScoreRange)
	row.Recommendation, _ = h.field(record, ColRecommendation)

	var active string
	active, row.hasActive = h.field(record, ColActive)
	row.active = strings.EqualFold(active, "true")
	return row, true
}

// readRows streams records through visit. Structurally broken records are
// skipped; a read failure ends the document early.
func readRows(r io.Reader, visit func(h header, record []string)) {
	if r == nil {
		return
	}
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	first, err := reader.Read()
	if err != nil {
		return
	}
	h := newHeader(first)

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				continue
			}
			return
		}
		visit(h, record)
	}
}

// ParseCatalog groups every structurally valid row. Duplicate question text is
// kept as separate entries.
func ParseCatalog(r io.Reader) *Grouping {
	g := NewGrouping()
	readRows(r, func(h header, record []string) {
		if row, ok := decodeRow(h, record); ok {
			g.add(row.CatalogQuestion)
		}
	})
	return g
}

// ParseCatalogUnique groups rows like ParseCatalog but folds rows with the same
// question text inside a pillar/subcategory bucket into one question carrying
// all of their recommendation rows.
func ParseCatalogUnique(r io.Reader) *Grouping {
	g := NewGrouping()
	readRows(r, func(h header, record []string) {
		if row, ok := decodeRow(h, record); ok {
			g.addMerged(row.CatalogQuestion)
		}
	})
	return g
}

// ParseCatalogByRegion keeps only active rows visible to region. A row whose
// Active? cell is missing or not "true" is excluded; a row with no Region is
// treated as global.
func ParseCatalogByRegion(r io.Reader, region string) *Grouping {
	g := NewGrouping()
	readRows(r, func(h header, record []string) {
		row, ok := decodeRow(h, record)
		if !ok || !row.hasActive || !row.active {
			return
		}
		if !RegionMatches(row.Region, region) {
			return
		}
		g.add(row.CatalogQuestion)
	})
	return g
}
