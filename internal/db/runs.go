package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/ats-tracker/internal/config"
	"github.com/jonathan/ats-tracker/internal/types"
)

// ErrNoRuns is returned when no match run exists for a resume/job pair.
var ErrNoRuns = errors.New("no match runs recorded")

// AddRun records a match result for a resume/job pair.
func (db *DB) AddRun(ctx context.Context, resumeID, jobID uuid.UUID, result types.MatchResult) (*RunRecord, error) {
	rec := &RunRecord{ResumeID: resumeID, JobID: jobID, Result: result}
	err := db.pool.QueryRow(ctx,
		`INSERT INTO match_runs (resume_id, job_id, result) VALUES ($1, $2, $3) RETURNING id, created_at`,
		resumeID, jobID, result,
	).Scan(&rec.ID, &rec.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert match run: %w", err)
	}
	return rec, nil
}

// LatestRun returns the most recent match run for a resume/job pair.
func (db *DB) LatestRun(ctx context.Context, resumeID, jobID uuid.UUID) (*RunRecord, error) {
	rec := &RunRecord{}
	err := db.pool.QueryRow(ctx,
		`SELECT id, resume_id, job_id, result, created_at FROM match_runs
		 WHERE resume_id = $1 AND job_id = $2
		 ORDER BY created_at DESC LIMIT 1`,
		resumeID, jobID,
	).Scan(&rec.ID, &rec.ResumeID, &rec.JobID, &rec.Result, &rec.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNoRuns
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest run: %w", err)
	}
	return rec, nil
}

// ListRuns returns all runs for a resume, newest first.
func (db *DB) ListRuns(ctx context.Context, resumeID uuid.UUID) ([]RunRecord, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, resume_id, job_id, result, created_at FROM match_runs
		 WHERE resume_id = $1 ORDER BY created_at DESC`,
		resumeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var out []RunRecord
	for rows.Next() {
		var rec RunRecord
		if err := rows.Scan(&rec.ID, &rec.ResumeID, &rec.JobID, &rec.Result, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run row: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate runs: %w", err)
	}
	return out, nil
}

// SnapshotConfig stores the scoring config used for a batch of runs.
func (db *DB) SnapshotConfig(ctx context.Context, cfg *config.Scoring) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO config_snapshots (config) VALUES ($1) RETURNING id`,
		cfg,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to snapshot config: %w", err)
	}
	return id, nil
}
