package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/ats-tracker/internal/types"
)

// ResumeRecord is a stored resume with its extracted model.
type ResumeRecord struct {
	ID        uuid.UUID         `json:"id"`
	Name      string            `json:"name"`
	RawText   string            `json:"raw_text,omitempty"`
	Extracted types.ResumeModel `json:"extracted"`
	CreatedAt time.Time         `json:"created_at"`
}

// JobRecord is a stored job description with its extracted model.
type JobRecord struct {
	ID        uuid.UUID      `json:"id"`
	Title     string         `json:"title"`
	RawText   string         `json:"raw_text,omitempty"`
	Extracted types.JobModel `json:"extracted"`
	SourceURL string         `json:"source_url,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// RunRecord is a stored match run for a resume/job pair.
type RunRecord struct {
	ID        uuid.UUID         `json:"id"`
	ResumeID  uuid.UUID         `json:"resume_id"`
	JobID     uuid.UUID         `json:"job_id"`
	Result    types.MatchResult `json:"result"`
	CreatedAt time.Time         `json:"created_at"`
}
