package db

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/yumyai/taxaboard/pkg/model"
)

// MemJobStore keeps analysis jobs in memory, indexed by job ID. It backs the
// server when no data directory is configured (results are then lost on
// restart, same as the original backend running without its database) and
// serves as the store for handler tests.
type MemJobStore struct {
	mu    sync.RWMutex
	jobs  map[string]*model.JobRecord
	order []string // insertion order, oldest first
}

// NewMemJobStore constructs an empty in-memory store.
func NewMemJobStore() *MemJobStore {
	return &MemJobStore{
		jobs: make(map[string]*model.JobRecord),
	}
}

func (m *MemJobStore) Store(_ context.Context, filename string, metadata map[string]any, result *model.AnalysisResult) (string, error) {

	record := &model.JobRecord{
		ID:             generateJobID(),
		Filename:       filename,
		Metadata:       metadata,
		AnalysisResult: result,
		CreatedAt:      time.Now().UTC(),
	}

	m.mu.Lock()
	m.jobs[record.ID] = record
	m.order = append(m.order, record.ID)
	m.mu.Unlock()

	return record.ID, nil
}

func (m *MemJobStore) Get(_ context.Context, jobID string) (*model.JobRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.jobs[jobID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrJobNotFound, jobID)
	}
	return record, nil
}

func (m *MemJobStore) GetMany(ctx context.Context, jobIDs []string) ([]*model.JobRecord, error) {

	records := make([]*model.JobRecord, 0, len(jobIDs))
	for _, jobID := range jobIDs {
		record, err := m.Get(ctx, jobID)
		if err != nil {
			continue // only ErrJobNotFound is possible here
		}
		records = append(records, record)
	}
	return records, nil
}

func (m *MemJobStore) List(_ context.Context, limit int) ([]*model.JobSummary, error) {

	if limit <= 0 {
		limit = defaultListLimit
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	summaries := make([]*model.JobSummary, 0, limit)
	for i := len(m.order) - 1; i >= 0 && len(summaries) < limit; i-- {
		record := m.jobs[m.order[i]]
		summaries = append(summaries, &model.JobSummary{
			ID:        record.ID,
			Filename:  record.Filename,
			Metadata:  record.Metadata,
			CreatedAt: record.CreatedAt,
		})
	}
	return summaries, nil
}

func generateJobID() string {
	var buf [16]byte
	if _, err := rand.Read(buf[:]); err == nil {
		return hex.EncodeToString(buf[:])
	}
	return strconv.FormatInt(time.Now().UnixNano(), 16)
}
