package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/yumyai/taxaboard/logger"
	"github.com/yumyai/taxaboard/pkg/model"
)

const defaultListLimit = 50

const jobsSchema = `
CREATE TABLE IF NOT EXISTS analysis_jobs (
	id TEXT PRIMARY KEY,
	filename TEXT NOT NULL,
	metadata TEXT,
	analysis_result TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_analysis_jobs_created_at
	ON analysis_jobs (created_at DESC);
`

// SQLiteJobStore persists analysis jobs in a single sqlite table, metadata
// and result stored as JSON text columns.
type SQLiteJobStore struct {
	jobsSQL *sql.DB
}

// NewSQLiteJobStore prepares the schema and wraps the connection.
func NewSQLiteJobStore(db *sql.DB) (*SQLiteJobStore, error) {
	if _, err := db.Exec(jobsSchema); err != nil {
		return nil, fmt.Errorf("%w: schema setup failed: %v", ErrStoreUnavailable, err)
	}
	return &SQLiteJobStore{jobsSQL: db}, nil
}

func (s *SQLiteJobStore) Store(ctx context.Context, filename string, metadata map[string]any, result *model.AnalysisResult) (string, error) {

	resultJSON, err := json.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("marshal analysis result: %w", err)
	}

	var metadataJSON []byte
	if metadata != nil {
		metadataJSON, err = json.Marshal(metadata)
		if err != nil {
			return "", fmt.Errorf("marshal metadata: %w", err)
		}
	}

	jobID := uuid.New().String()

	_, err = s.jobsSQL.ExecContext(ctx,
		`INSERT INTO analysis_jobs (id, filename, metadata, analysis_result, created_at) VALUES (?, ?, ?, ?, ?)`,
		jobID, filename, nullableText(metadataJSON), string(resultJSON), time.Now().UTC(),
	)
	if err != nil {
		return "", fmt.Errorf("%w: insert failed: %v", ErrStoreUnavailable, err)
	}

	logger.Debug("Stored analysis job", zap.String("job_id", jobID), zap.String("filename", filename))
	return jobID, nil
}

func (s *SQLiteJobStore) Get(ctx context.Context, jobID string) (*model.JobRecord, error) {

	row := s.jobsSQL.QueryRowContext(ctx,
		`SELECT id, filename, metadata, analysis_result, created_at FROM analysis_jobs WHERE id = ?`,
		jobID,
	)

	var (
		record       model.JobRecord
		metadataJSON sql.NullString
		resultJSON   string
	)
	err := row.Scan(&record.ID, &record.Filename, &metadataJSON, &resultJSON, &record.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrJobNotFound, jobID)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: query failed: %v", ErrStoreUnavailable, err)
	}

	if metadataJSON.Valid && metadataJSON.String != "" {
		if err := json.Unmarshal([]byte(metadataJSON.String), &record.Metadata); err != nil {
			return nil, fmt.Errorf("unmarshal metadata for job %s: %w", jobID, err)
		}
	}
	if err := json.Unmarshal([]byte(resultJSON), &record.AnalysisResult); err != nil {
		return nil, fmt.Errorf("unmarshal analysis result for job %s: %w", jobID, err)
	}

	return &record, nil
}

func (s *SQLiteJobStore) GetMany(ctx context.Context, jobIDs []string) ([]*model.JobRecord, error) {

	records := make([]*model.JobRecord, 0, len(jobIDs))
	for _, jobID := range jobIDs {
		record, err := s.Get(ctx, jobID)
		if errors.Is(err, ErrJobNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

func (s *SQLiteJobStore) List(ctx context.Context, limit int) ([]*model.JobSummary, error) {

	if limit <= 0 {
		limit = defaultListLimit
	}

	rows, err := s.jobsSQL.QueryContext(ctx,
		`SELECT id, filename, metadata, created_at FROM analysis_jobs ORDER BY created_at DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: query failed: %v", ErrStoreUnavailable, err)
	}
	defer rows.Close()

	summaries := make([]*model.JobSummary, 0, limit)
	for rows.Next() {
		var (
			summary      model.JobSummary
			metadataJSON sql.NullString
		)
		if err := rows.Scan(&summary.ID, &summary.Filename, &metadataJSON, &summary.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan job summary: %w", err)
		}
		if metadataJSON.Valid && metadataJSON.String != "" {
			if err := json.Unmarshal([]byte(metadataJSON.String), &summary.Metadata); err != nil {
				return nil, fmt.Errorf("unmarshal metadata for job %s: %w", summary.ID, err)
			}
		}
		summaries = append(summaries, &summary)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: row iteration failed: %v", ErrStoreUnavailable, err)
	}

	return summaries, nil
}

func nullableText(b []byte) any {
	if len(b) == 0 {
		return nil
	}
	return string(b)
}
