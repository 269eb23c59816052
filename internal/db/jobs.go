package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/ats-tracker/internal/types"
)

// AddJob inserts a job description and returns the stored record.
func (db *DB) AddJob(ctx context.Context, title, rawText, sourceURL string, extracted types.JobModel) (*JobRecord, error) {
	rec := &JobRecord{Title: title, RawText: rawText, SourceURL: sourceURL, Extracted: extracted}
	err := db.pool.QueryRow(ctx,
		`INSERT INTO jobs (title, raw_text, extracted, source_url) VALUES ($1, $2, $3, $4) RETURNING id, created_at`,
		title, rawText, extracted, sourceURL,
	).Scan(&rec.ID, &rec.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert job: %w", err)
	}
	return rec, nil
}

// GetJob fetches a job by id, including its raw text.
func (db *DB) GetJob(ctx context.Context, id uuid.UUID) (*JobRecord, error) {
	rec := &JobRecord{}
	err := db.pool.QueryRow(ctx,
		`SELECT id, title, raw_text, extracted, source_url, created_at FROM jobs WHERE id = $1`,
		id,
	).Scan(&rec.ID, &rec.Title, &rec.RawText, &rec.Extracted, &rec.SourceURL, &rec.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to get job %s: %w", id, err)
	}
	return rec, nil
}

// ListJobs returns all jobs, newest first, without raw text.
func (db *DB) ListJobs(ctx context.Context) ([]JobRecord, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, title, extracted, source_url, created_at FROM jobs ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	var out []JobRecord
	for rows.Next() {
		var rec JobRecord
		if err := rows.Scan(&rec.ID, &rec.Title, &rec.Extracted, &rec.SourceURL, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan job row: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate jobs: %w", err)
	}
	return out, nil
}

// DeleteJob removes a job and its match runs.
func (db *DB) DeleteJob(ctx context.Context, id uuid.UUID) error {
	tag, err := db.pool.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete job %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("job %s not found", id)
	}
	return nil
}
