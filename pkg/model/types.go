package model

import "time"

// SequenceRecord is one classified read as produced by the external
// pipeline: a semicolon-delimited lineage plus the accession it matched and
// the classifier confidence.
type SequenceRecord struct {
	Taxonomy   string  `json:"taxonomy"`
	Accession  string  `json:"accession"`
	Confidence float64 `json:"confidence"`
}

// AnalysisResult holds everything the pipeline reports for one uploaded
// file. Results are written once and never mutated afterwards.
type AnalysisResult struct {
	Metadata        map[string]any   `json:"metadata,omitempty"`
	Sequences       []SequenceRecord `json:"sequences"`
	TaxonomySummary []NameValue      `json:"taxonomy_summary,omitempty"`
}

type NameValue struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// JobRecord is a persisted analysis job.
type JobRecord struct {
	ID             string          `json:"id"`
	Filename       string          `json:"filename"`
	Metadata       map[string]any  `json:"metadata,omitempty"`
	AnalysisResult *AnalysisResult `json:"analysis_result"`
	CreatedAt      time.Time       `json:"created_at"`
}

// JobSummary is the listing view of a job, without the stored result.
type JobSummary struct {
	ID        string         `json:"id"`
	Filename  string         `json:"filename"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// Sequences is nil-safe access to the stored sequence collection.
func (j *JobRecord) Sequences() []SequenceRecord {
	if j == nil || j.AnalysisResult == nil {
		return nil
	}
	return j.AnalysisResult.Sequences
}

// Sample pairs a display name (the uploaded filename) with the classified
// sequences of one job. Multi-sample charts work over these.
type Sample struct {
	Name      string
	Sequences []SequenceRecord
}
