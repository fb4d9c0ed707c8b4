package database

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"readiness-workers/internal/common/config"
)

func newMiniRedis(t *testing.T) (*miniredis.Miniredis, *RedisClient) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client, err := NewRedis(config.RedisConfig{Address: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisClient_GetSetDel(t *testing.T) {
	_, client := newMiniRedis(t)
	ctx := context.Background()

	require.NoError(t, client.Ping(ctx))
	require.NoError(t, client.Set(ctx, "k", "v", time.Minute))

	v, err := client.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", v)

	require.NoError(t, client.Del(ctx, "k"))
	_, err = client.Get(ctx, "k")
	assert.True(t, errors.Is(err, redis.Nil))
}

func TestRedisClient_Lock(t *testing.T) {
	mr, client := newMiniRedis(t)
	ctx := context.Background()

	ok, err := client.AcquireLock(ctx, "lock:s-1", "token-a", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = client.AcquireLock(ctx, "lock:s-1", "token-b", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	// a stale holder cannot release someone else's lock
	require.NoError(t, client.ReleaseLock(ctx, "lock:s-1", "token-b"))
	assert.True(t, mr.Exists("lock:s-1"))

	require.NoError(t, client.ReleaseLock(ctx, "lock:s-1", "token-a"))
	assert.False(t, mr.Exists("lock:s-1"))

	ok, err = client.AcquireLock(ctx, "lock:s-1", "token-b", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedisClient_LockExpires(t *testing.T) {
	mr, client := newMiniRedis(t)
	ctx := context.Background()

	ok, err := client.AcquireLock(ctx, "lock:s-2", "a", 10*time.Second)
	require.NoError(t, err)
	require.True(t, ok)

	mr.FastForward(11 * time.Second)
	ok, err = client.AcquireLock(ctx, "lock:s-2", "b", 10*time.Second)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPostgresClient_EnsureSchema(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	client := &PostgresClient{DB: db}
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS assessment_results")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, client.EnsureSchema(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresClient_EnsureSchemaError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	client := &PostgresClient{DB: db}
	mock.ExpectExec("CREATE TABLE").WillReturnError(errors.New("permission denied"))

	err = client.EnsureSchema(context.Background())
	assert.ErrorContains(t, err, "permission denied")
}

func newFakeElasticsearch(t *testing.T, status int, capture *map[string]interface{}, path *string) *ElasticsearchClient {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*path = r.Method + " " + r.URL.Path
		if capture != nil && r.Body != nil {
			_ = json.NewDecoder(r.Body).Decode(capture)
		}
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{"result":"created"}`))
	}))
	t.Cleanup(srv.Close)

	client, err := NewElasticsearch(config.ElasticsearchConfig{URL: srv.URL})
	require.NoError(t, err)
	return client
}

func TestElasticsearchClient_IndexDocument(t *testing.T) {
	var body map[string]interface{}
	var path string
	client := newFakeElasticsearch(t, http.StatusCreated, &body, &path)

	err := client.IndexDocument(context.Background(), "assessment-results", "rec-1", map[string]interface{}{
		"companyName":       "Acme",
		"overallPercentage": 64,
	})
	require.NoError(t, err)
	assert.Equal(t, "PUT /assessment-results/_doc/rec-1", path)
	assert.Equal(t, "Acme", body["companyName"])
}

func TestElasticsearchClient_IndexDocumentError(t *testing.T) {
	var path string
	client := newFakeElasticsearch(t, http.StatusBadRequest, nil, &path)

	err := client.IndexDocument(context.Background(), "assessment-results", "rec-1", map[string]string{"a": "b"})
	assert.ErrorContains(t, err, "elasticsearch index error")
}
