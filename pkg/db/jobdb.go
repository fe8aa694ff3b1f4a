package db

import (
	"context"
	"errors"

	"github.com/yumyai/taxaboard/pkg/model"
)

// Defining possible error
var (
	ErrJobNotFound      = errors.New("analysis job not found")
	ErrStoreUnavailable = errors.New("job store unavailable")
)

// JobStore is the read/write facade over persisted analysis results. The
// formatting layer never performs storage logic itself; it goes through
// this and maps the two error kinds above onto HTTP statuses.
type JobStore interface {
	// Store persists one analysis result and returns the new job ID.
	Store(ctx context.Context, filename string, metadata map[string]any, result *model.AnalysisResult) (string, error)

	// Get fetches a full job record, ErrJobNotFound when absent.
	Get(ctx context.Context, jobID string) (*model.JobRecord, error)

	// GetMany fetches the records found for the given IDs, keeping request
	// order. Missing IDs are skipped rather than failing the batch, so
	// multi-sample charts render whatever samples exist.
	GetMany(ctx context.Context, jobIDs []string) ([]*model.JobRecord, error)

	// List returns job summaries, newest first, up to limit.
	List(ctx context.Context, limit int) ([]*model.JobSummary, error)
}
