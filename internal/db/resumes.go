package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/ats-tracker/internal/types"
)

// AddResume inserts a resume and returns the stored record.
func (db *DB) AddResume(ctx context.Context, name, rawText string, extracted types.ResumeModel) (*ResumeRecord, error) {
	rec := &ResumeRecord{Name: name, RawText: rawText, Extracted: extracted}
	err := db.pool.QueryRow(ctx,
		`INSERT INTO resumes (name, raw_text, extracted) VALUES ($1, $2, $3) RETURNING id, created_at`,
		name, rawText, extracted,
	).Scan(&rec.ID, &rec.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert resume: %w", err)
	}
	return rec, nil
}

// GetResume fetches a resume by id, including its raw text.
func (db *DB) GetResume(ctx context.Context, id uuid.UUID) (*ResumeRecord, error) {
	rec := &ResumeRecord{}
	err := db.pool.QueryRow(ctx,
		`SELECT id, name, raw_text, extracted, created_at FROM resumes WHERE id = $1`,
		id,
	).Scan(&rec.ID, &rec.Name, &rec.RawText, &rec.Extracted, &rec.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to get resume %s: %w", id, err)
	}
	return rec, nil
}

// ListResumes returns all resumes, newest first, without raw text.
func (db *DB) ListResumes(ctx context.Context) ([]ResumeRecord, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, name, extracted, created_at FROM resumes ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	var out []ResumeRecord
	for rows.Next() {
		var rec ResumeRecord
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Extracted, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan resume row: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate resumes: %w", err)
	}
	return out, nil
}

// DeleteResume removes a resume and its match runs.
func (db *DB) DeleteResume(ctx context.Context, id uuid.UUID) error {
	tag, err := db.pool.Exec(ctx, `DELETE FROM resumes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete resume %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("resume %s not found", id)
	}
	return nil
}

// ListResumeTexts returns id, name, and raw text for every resume,
// used by the search engine's full scan.
func (db *DB) ListResumeTexts(ctx context.Context) ([]ResumeRecord, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, name, raw_text FROM resumes ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list resume texts: %w", err)
	}
	defer rows.Close()

	var out []ResumeRecord
	for rows.Next() {
		var rec ResumeRecord
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.RawText); err != nil {
			return nil, fmt.Errorf("failed to scan resume text row: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate resume texts: %w", err)
	}
	return out, nil
}
