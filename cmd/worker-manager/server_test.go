// cmd/worker-manager/server_test.go
package main

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"readiness-workers/internal/common/config"
	"readiness-workers/internal/common/database"
	"readiness-workers/internal/common/logger"
)

var fixedNow = time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

func serve(t *testing.T, checks map[string]checkFunc, path string) (int, map[string]interface{}) {
	t.Helper()
	mux := healthMux(checks, logger.NewTestLogger(t), func() time.Time { return fixedNow })
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	var body map[string]interface{}
	if path != "/metrics" {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec.Code, body
}

// ==========================
// Health Server Tests
// ==========================

func TestHealthMux_Health(t *testing.T) {
	code, body := serve(t, nil, "/health")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "2025-06-02T09:00:00Z", body["time"])
}

func TestHealthMux_Ready(t *testing.T) {
	mr := miniredis.RunT(t)
	redis, err := database.NewRedis(config.RedisConfig{Address: mr.Addr()})
	require.NoError(t, err)

	ok := func(context.Context) error { return nil }

	tests := []struct {
		name       string
		checks     map[string]checkFunc
		wantCode   int
		wantStatus string
		wantChecks map[string]interface{}
	}{
		{
			name:       "all backends up",
			checks:     map[string]checkFunc{"redis": redis.Ping, "postgres": ok},
			wantCode:   http.StatusOK,
			wantStatus: "ready",
			wantChecks: map[string]interface{}{"redis": "ok", "postgres": "ok"},
		},
		{
			name: "one backend down",
			checks: map[string]checkFunc{
				"redis":         redis.Ping,
				"elasticsearch": func(context.Context) error { return stderrors.New("connection refused") },
			},
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: "not_ready",
			wantChecks: map[string]interface{}{"redis": "ok", "elasticsearch": "connection refused"},
		},
		{
			name:       "no checks",
			checks:     map[string]checkFunc{},
			wantCode:   http.StatusOK,
			wantStatus: "ready",
			wantChecks: map[string]interface{}{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := serve(t, tt.checks, "/ready")
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantStatus, body["status"])
			assert.Equal(t, tt.wantChecks, body["checks"])
		})
	}
}

func TestHealthMux_ReadyAfterRedisStops(t *testing.T) {
	mr := miniredis.RunT(t)
	redis, err := database.NewRedis(config.RedisConfig{Address: mr.Addr()})
	require.NoError(t, err)
	mr.Close()

	code, body := serve(t, map[string]checkFunc{"redis": redis.Ping}, "/ready")
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "not_ready", body["status"])
}

func TestHealthMux_Metrics(t *testing.T) {
	mux := healthMux(nil, logger.NewTestLogger(t), time.Now)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

// ==========================
// Wiring Tests
// ==========================

func TestNewEngine_RulesFile(t *testing.T) {
	log := logger.NewTestLogger(t)
	cfg := &config.Config{}

	builtIn := newEngine(cfg, log)
	require.NotNil(t, builtIn)

	cfg.Assessment.RulesPath = filepath.Join(t.TempDir(), "missing.csv")
	assert.NotNil(t, newEngine(cfg, log), "missing rules file falls back to built-in rules")

	path := filepath.Join(t.TempDir(), "rules.csv")
	require.NoError(t, os.WriteFile(path, []byte("Pillar,Title\n"), 0o644))
	cfg.Assessment.RulesPath = path
	assert.NotNil(t, newEngine(cfg, log), "empty rules file falls back to built-in rules")
}

func TestDependencyConversion_DisabledIntegrationsStayNil(t *testing.T) {
	log := logger.NewTestLogger(t)

	sub := submissionDeps(dependencies{}, log)
	assert.Nil(t, sub.DB)
	assert.Nil(t, sub.Locker)
	assert.Nil(t, sub.Records)
	assert.Nil(t, sub.Indexer)

	notify := notificationDeps(dependencies{}, log)
	assert.Nil(t, notify.Mailer)
	assert.Nil(t, notify.Publisher)
}
