// Package db provides PostgreSQL persistence for analysis reports.
package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Nitish-kumar7/web-scraping/internal/types"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

const schema = `
CREATE TABLE IF NOT EXISTS analyses (
	id UUID PRIMARY KEY,
	portfolio_url TEXT NOT NULL DEFAULT '',
	overall_score DOUBLE PRECISION NOT NULL DEFAULT 0,
	is_qualified BOOLEAN NOT NULL DEFAULT false,
	report JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS analyses_created_at_idx ON analyses (created_at DESC);
`

// EnsureSchema creates the analyses table when it does not exist yet.
func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}

// SaveAnalysis stores a finished analysis report as JSONB along with its
// queryable columns.
func (db *DB) SaveAnalysis(ctx context.Context, report *types.AnalysisReport) error {
	id, err := uuid.Parse(report.ID)
	if err != nil {
		return fmt.Errorf("invalid report id %q: %w", report.ID, err)
	}

	reportJSON, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	var overallScore float64
	var qualified bool
	if report.Evaluation != nil {
		overallScore = report.Evaluation.OverallScore
		qualified = report.Evaluation.IsQualified
	}

	var portfolioURL string
	if report.Portfolio != nil {
		portfolioURL = report.Portfolio.URL
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO analyses (id, portfolio_url, overall_score, is_qualified, report)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (id) DO UPDATE SET portfolio_url = $2, overall_score = $3, is_qualified = $4, report = $5`,
		id, portfolioURL, overallScore, qualified, reportJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to save analysis %s: %w", report.ID, err)
	}
	return nil
}

// GetAnalysis retrieves a stored analysis report by ID.
// Returns nil when no report exists with that ID.
func (db *DB) GetAnalysis(ctx context.Context, id uuid.UUID) (*types.AnalysisReport, error) {
	var reportJSON []byte
	err := db.pool.QueryRow(ctx,
		`SELECT report FROM analyses WHERE id = $1`, id,
	).Scan(&reportJSON)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}

	var report types.AnalysisReport
	if err := json.Unmarshal(reportJSON, &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal analysis %s: %w", id, err)
	}
	return &report, nil
}

// AnalysisSummary is a lightweight view of a stored analysis for listing
type AnalysisSummary struct {
	ID           uuid.UUID `json:"id"`
	PortfolioURL string    `json:"portfolio_url"`
	OverallScore float64   `json:"overall_score"`
	IsQualified  bool      `json:"is_qualified"`
	CreatedAt    string    `json:"created_at"`
}

// ListFilters holds optional filters for listing analyses
type ListFilters struct {
	QualifiedOnly bool
	Limit         int
}

// ListAnalyses retrieves recent analyses, newest first.
func (db *DB) ListAnalyses(ctx context.Context, filters ListFilters) ([]AnalysisSummary, error) {
	if filters.Limit == 0 {
		filters.Limit = 50
	}

	query := `SELECT id, portfolio_url, overall_score, is_qualified, created_at
		FROM analyses WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.QualifiedOnly {
		query += " AND is_qualified = true"
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", argNum)
	args = append(args, filters.Limit)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	var analyses []AnalysisSummary
	for rows.Next() {
		var a AnalysisSummary
		var createdAt any
		if err := rows.Scan(&a.ID, &a.PortfolioURL, &a.OverallScore, &a.IsQualified, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		if t, ok := createdAt.(interface{ String() string }); ok {
			a.CreatedAt = t.String()
		}
		analyses = append(analyses, a)
	}
	return analyses, nil
}

// DeleteAnalysis removes a stored analysis report.
func (db *DB) DeleteAnalysis(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM analyses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete analysis: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("analysis not found: %s", id)
	}
	return nil
}
