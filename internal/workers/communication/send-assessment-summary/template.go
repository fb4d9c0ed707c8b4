// internal/workers/communication/send-assessment-summary/template.go
package sendassessmentsummary

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"net/url"
	texttemplate "text/template"

	"readiness-workers/internal/common/aws"
	"readiness-workers/internal/models"
	"readiness-workers/internal/scoring"
)

// maxEmailRecommendations caps the list in the email; the full set is in the report.
const maxEmailRecommendations = 5

type summaryView struct {
	CompanyName     string
	Percentage      int
	Level           models.Level
	Industry        string
	PositionMessage string
	Pillars         []models.PillarScore
	Recommendations []models.Recommendation
	ReportURL       string
}

var htmlSummary = htmltemplate.Must(htmltemplate.New("summary.html").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #1f2937;">
<h2>AI Readiness Assessment for {{.CompanyName}}</h2>
<p>Overall readiness: <strong>{{.Percentage}}%</strong> ({{.Level}})</p>
<p>{{.PositionMessage}} compared with {{.Industry}} organisations.</p>
<table cellpadding="6" style="border-collapse: collapse;">
<tr><th align="left">Pillar</th><th align="right">Score</th><th align="left">Level</th></tr>
{{- range .Pillars}}
<tr><td style="border-left: 4px solid {{.Color}};">{{.Name}}</td><td align="right">{{.Percentage}}%</td><td>{{.Level}}</td></tr>
{{- end}}
</table>
{{- if .Recommendations}}
<h3>Top recommendations</h3>
<ol>
{{- range .Recommendations}}
<li><strong>{{.Title}}</strong> ({{.Priority}}, {{.Timeline}})<br>{{.Description}}</li>
{{- end}}
</ol>
{{- end}}
{{- if .ReportURL}}
<p><a href="{{.ReportURL}}">View the full report</a></p>
{{- end}}
</body>
</html>
`))

var textSummary = texttemplate.Must(texttemplate.New("summary.txt").
	Funcs(texttemplate.FuncMap{"inc": func(i int) int { return i + 1 }}).
	Parse(`AI Readiness Assessment for {{.CompanyName}}

Overall readiness: {{.Percentage}}% ({{.Level}})
{{.PositionMessage}} compared with {{.Industry}} organisations.

Pillars:
{{- range .Pillars}}
  - {{.Name}}: {{.Percentage}}% ({{.Level}})
{{- end}}
{{- if .Recommendations}}

Top recommendations:
{{- range $i, $r := .Recommendations}}
  {{inc $i}}. {{$r.Title}} ({{$r.Priority}}, {{$r.Timeline}})
{{- end}}
{{- end}}
{{- if .ReportURL}}

Full report: {{.ReportURL}}
{{- end}}
`))

func newSummaryView(input *Input, reportURL string) summaryView {
	results := input.AssessmentResults
	recs := results.Recommendations
	if len(recs) > maxEmailRecommendations {
		recs = recs[:maxEmailRecommendations]
	}
	return summaryView{
		CompanyName:     input.CompanyName,
		Percentage:      results.OverallPercentage,
		Level:           results.OverallLevel,
		Industry:        results.Industry,
		PositionMessage: scoring.PositionMessage(results.BenchmarkPosition),
		Pillars:         results.PillarScores,
		Recommendations: recs,
		ReportURL:       reportLink(reportURL, input.SessionID),
	}
}

func reportLink(base, sessionID string) string {
	if base == "" || sessionID == "" {
		return base
	}
	u, err := url.Parse(base)
	if err != nil {
		return ""
	}
	q := u.Query()
	q.Set("session", sessionID)
	u.RawQuery = q.Encode()
	return u.String()
}

// renderEmail builds the multipart summary for input.
func renderEmail(from string, input *Input, reportURL string) (aws.Email, error) {
	view := newSummaryView(input, reportURL)

	var html, text bytes.Buffer
	if err := htmlSummary.Execute(&html, view); err != nil {
		return aws.Email{}, fmt.Errorf("render html summary: %w", err)
	}
	if err := textSummary.Execute(&text, view); err != nil {
		return aws.Email{}, fmt.Errorf("render text summary: %w", err)
	}

	return aws.Email{
		From:    from,
		To:      []string{input.Email},
		Subject: fmt.Sprintf("Your AI readiness results: %d%% (%s)", view.Percentage, view.Level),
		HTML:    html.String(),
		Text:    text.String(),
	}, nil
}
