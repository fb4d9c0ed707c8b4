// internal/common/database/postgres.go
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"readiness-workers/internal/common/config"

	_ "github.com/lib/pq"
)

// PostgresClient wraps the SQL database connection
type PostgresClient struct {
	DB *sql.DB
}

// NewPostgres creates a new PostgreSQL client
func NewPostgres(cfg config.PostgresConfig) (*PostgresClient, error) {
	db, err := sql.Open("postgres", cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxConnections)
	db.SetMaxIdleConns(cfg.MaxIdle)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(5 * time.Minute)

	return &PostgresClient{DB: db}, nil
}

// Ping tests the database connection
func (c *PostgresClient) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}

// Close closes the database connection
func (c *PostgresClient) Close() error {
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}

// AssessmentResultsSchema creates the results table used by submit-assessment-record.
const AssessmentResultsSchema = `
CREATE TABLE IF NOT EXISTS assessment_results (
	id                 UUID PRIMARY KEY,
	session_id         TEXT NOT NULL,
	company_name       TEXT NOT NULL,
	industry           TEXT NOT NULL,
	company_size       TEXT NOT NULL,
	region             TEXT NOT NULL DEFAULT 'Global',
	assessment_type    TEXT NOT NULL DEFAULT 'free',
	overall_percentage INTEGER NOT NULL,
	overall_level      TEXT NOT NULL,
	benchmark_position INTEGER NOT NULL,
	results            JSONB NOT NULL,
	responses          JSONB NOT NULL,
	submitted_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_assessment_results_session ON assessment_results (session_id);
CREATE INDEX IF NOT EXISTS idx_assessment_results_industry ON assessment_results (industry);
`

// EnsureSchema creates the tables this service writes to.
func (c *PostgresClient) EnsureSchema(ctx context.Context) error {
	if _, err := c.DB.ExecContext(ctx, AssessmentResultsSchema); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}

// GetDB returns the underlying *sql.DB for compatibility
func (c *PostgresClient) GetDB() *sql.DB {
	return c.DB
}
