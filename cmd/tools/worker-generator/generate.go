// cmd/tools/worker-generator/generate.go
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"readiness-workers/pkg/registry"
)

// WorkerData is what the scaffold templates render from.
type WorkerData struct {
	Name        string
	PackageName string
	Dir         string
	TaskType    string
	Description string
	Timeout     string
	ErrorCodes  []string
	Inputs      []Field
	Outputs     []Field
}

// Field is one top-level schema property rendered as a struct field.
type Field struct {
	Name     string
	GoType   string
	JSONName string
	Comment  string
	Required bool
}

func newWorkerData(a registry.Activity) WorkerData {
	return WorkerData{
		Name:        a.DisplayName,
		PackageName: strings.ReplaceAll(a.ID, "-", ""),
		Dir:         filepath.Join(categoryDir(a.Category), a.ID),
		TaskType:    a.TaskType,
		Description: a.Description,
		Timeout:     timeoutLiteral(a.Timeout),
		ErrorCodes:  a.ErrorCodes,
		Inputs:      schemaFields(a.InputSchema),
		Outputs:     schemaFields(a.OutputSchema),
	}
}

// schemaFields lists the top-level properties of an object schema, sorted by name.
func schemaFields(schema map[string]interface{}) []Field {
	required := requiredFields(schema)
	props, _ := schema["properties"].(map[string]interface{})
	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names)

	fields := make([]Field, 0, len(names))
	for _, name := range names {
		details, _ := props[name].(map[string]interface{})
		desc, _ := details["description"].(string)
		fields = append(fields, Field{
			Name:     exportedName(name),
			GoType:   goType(details),
			JSONName: name,
			Comment:  desc,
			Required: required[name],
		})
	}
	return fields
}

func requiredFields(schema map[string]interface{}) map[string]bool {
	raw, _ := schema["required"].([]interface{})
	out := make(map[string]bool, len(raw))
	for _, r := range raw {
		if s, ok := r.(string); ok {
			out[s] = true
		}
	}
	return out
}

// goType maps a JSON schema property to a Go type.
func goType(details map[string]interface{}) string {
	switch details["type"] {
	case "string":
		return "string"
	case "integer":
		return "int"
	case "number":
		return "float64"
	case "boolean":
		return "bool"
	case "array":
		if items, ok := details["items"].(map[string]interface{}); ok {
			return "[]" + goType(items)
		}
		return "[]interface{}"
	case "object":
		return "map[string]interface{}"
	default:
		return "interface{}"
	}
}

// exportedName turns "companyName" or "company_name" into "CompanyName".
func exportedName(s string) string {
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == '_' || r == '-' })
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(strings.ToUpper(p[:1]) + p[1:])
	}
	name := b.String()
	if name == "" {
		return "Field"
	}
	if strings.HasSuffix(name, "Id") {
		name = strings.TrimSuffix(name, "Id") + "ID"
	}
	return name
}

// timeoutLiteral renders a registry timeout ("10s") as a Go duration expression.
func timeoutLiteral(timeout string) string {
	switch {
	case strings.HasSuffix(timeout, "ms"):
		return strings.TrimSuffix(timeout, "ms") + " * time.Millisecond"
	case strings.HasSuffix(timeout, "s"):
		return strings.TrimSuffix(timeout, "s") + " * time.Second"
	case strings.HasSuffix(timeout, "m"):
		return strings.TrimSuffix(timeout, "m") + " * time.Minute"
	default:
		return "30 * time.Second"
	}
}

func categoryDir(category string) string {
	switch category {
	case "assessment", "scoring", "catalog", "persistence":
		return "assessment"
	case "communication", "notification":
		return "communication"
	case "":
		return "misc"
	default:
		return strings.ToLower(category)
	}
}

var scaffoldFiles = map[string]string{
	"config.go":       configTemplate,
	"models.go":       modelsTemplate,
	"handler.go":      handlerTemplate,
	"handler_test.go": testTemplate,
}

// Generate writes a worker scaffold for a under workersDir and returns the
// files it created. Existing files are never overwritten.
func Generate(a registry.Activity, workersDir string) ([]string, error) {
	data := newWorkerData(a)
	dir := filepath.Join(workersDir, data.Dir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create worker directory: %w", err)
	}

	names := make([]string, 0, len(scaffoldFiles))
	for name := range scaffoldFiles {
		names = append(names, name)
	}
	sort.Strings(names)

	var written []string
	for _, name := range names {
		src, err := render(name, scaffoldFiles[name], data)
		if err != nil {
			return written, err
		}
		path := filepath.Join(dir, name)
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err != nil {
			return written, fmt.Errorf("create %s: %w", path, err)
		}
		_, err = f.Write(src)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return written, fmt.Errorf("write %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}

// render executes one template and gofmts the result.
func render(name, tmpl string, data WorkerData) ([]byte, error) {
	t, err := template.New(name).Parse(tmpl)
	if err != nil {
		return nil, fmt.Errorf("parse template %s: %w", name, err)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", name, err)
	}
	return src, nil
}

const configTemplate = `// internal/workers/{{ .Dir }}/config.go
package {{ .PackageName }}

import (
	"time"

	"readiness-workers/internal/common/config"
)

type Config struct {
	Timeout time.Duration
}

func LoadConfig(cfg *config.Config) *Config {
	c := &Config{Timeout: {{ .Timeout }}}
	if cfg != nil {
		if wc := config.GetWorkerConfig(cfg, TaskType); wc.Timeout > 0 {
			c.Timeout = config.GetDuration(wc.Timeout)
		}
	}
	return c
}
`

const modelsTemplate = `// internal/workers/{{ .Dir }}/models.go
package {{ .PackageName }}

type Input struct {
{{- range .Inputs }}
	{{ .Name }} {{ .GoType }} ` + "`json:\"{{ .JSONName }}{{ if not .Required }},omitempty{{ end }}\"`" + `{{ if .Comment }} // {{ .Comment }}{{ end }}
{{- end }}
}

type Output struct {
{{- range .Outputs }}
	{{ .Name }} {{ .GoType }} ` + "`json:\"{{ .JSONName }},omitempty\"`" + `{{ if .Comment }} // {{ .Comment }}{{ end }}
{{- end }}
}
`

const handlerTemplate = `// internal/workers/{{ .Dir }}/handler.go
package {{ .PackageName }}

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"

	"readiness-workers/internal/common/errors"
	"readiness-workers/internal/common/logger"
	"readiness-workers/internal/common/metrics"
)

const (
	TaskType = "{{ .TaskType }}"
)
{{ if .ErrorCodes }}
// Error codes this worker reports:{{ range .ErrorCodes }} {{ . }}{{ end }}
{{ end }}
type Handler struct {
	config       *Config
	errorHandler *errors.ErrorHandler
	logger       logger.Logger
}
{{ if .Description }}
// NewHandler builds the {{ .Name }} worker. {{ .Description }}.
{{- end }}
func NewHandler(config *Config, log logger.Logger) *Handler {
	log = log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:       config,
		errorHandler: errors.NewErrorHandler(log),
		logger:       log,
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		h.failJob(context.Background(), client, job,
			errors.NewInvalidAssessmentDataError(fmt.Sprintf("parse input: %v", err)))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	output, err := h.Execute(ctx, &input)
	if err != nil {
		h.failJob(ctx, client, job, err)
		return
	}

	h.completeJob(ctx, client, job, output)
}

func (h *Handler) Execute(_ context.Context, input *Input) (*Output, error) {
	if input == nil {
		return nil, errors.NewInvalidAssessmentDataError("input is required")
	}
	return &Output{}, nil
}

func (h *Handler) completeJob(ctx context.Context, client worker.JobClient, job entities.Job, output *Output) {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		h.logger.Error("failed to create complete job command", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}
	if _, err = cmd.Send(ctx); err != nil {
		h.logger.Error("failed to send complete job command", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}
	metrics.JobCompleted(TaskType)
}

func (h *Handler) failJob(ctx context.Context, client worker.JobClient, job entities.Job, err error) {
	metrics.JobFailed(TaskType, string(errors.Normalize(err).Code))
	h.errorHandler.HandleJobError(ctx, client, job, err)
}
`

const testTemplate = `// internal/workers/{{ .Dir }}/handler_test.go
package {{ .PackageName }}

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"readiness-workers/internal/common/logger"
)

func TestHandler_Execute(t *testing.T) {
	h := NewHandler(LoadConfig(nil), logger.NewTestLogger(t))

	output, err := h.Execute(context.Background(), &Input{})
	require.NoError(t, err)
	assert.NotNil(t, output)

	_, err = h.Execute(context.Background(), nil)
	assert.Error(t, err)
}
`
