package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/ats-tracker/internal/db"
	"github.com/jonathan/ats-tracker/internal/scoring"
	"github.com/jonathan/ats-tracker/internal/types"
)

// matchConcurrency bounds parallel scoring workers.
const matchConcurrency = 4

// matchRequest scores one resume against selected jobs, or all of them.
type matchRequest struct {
	ResumeID uuid.UUID   `json:"resume_id" validate:"required"`
	JobIDs   []uuid.UUID `json:"job_ids"`
}

// matchEntry is one scored job in the ranked response.
type matchEntry struct {
	JobID    uuid.UUID          `json:"job_id"`
	JobTitle string             `json:"job_title"`
	RunID    uuid.UUID          `json:"run_id"`
	Result   *types.MatchResult `json:"result"`
}

// handleMatch scores the resume against each requested job in parallel
// and returns the entries ranked by final score. A run is recorded for
// every scored pair.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req matchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		s.errorFor(w, &ErrValidation{Field: "resume_id", Message: "resume_id is required"})
		return
	}

	ctx := r.Context()
	resume, err := s.db.GetResume(ctx, req.ResumeID)
	if err != nil {
		s.errorFor(w, &ErrNotFound{Kind: "resume", ID: req.ResumeID})
		return
	}

	jobs, err := s.loadJobs(r, req.JobIDs)
	if err != nil {
		s.errorFor(w, err)
		return
	}
	if len(jobs) == 0 {
		s.errorFor(w, &ErrValidation{Field: "job_ids", Message: "no jobs to match"})
		return
	}

	cfg := s.scoringConfig()
	if _, err := s.db.SnapshotConfig(ctx, cfg); err != nil {
		s.logger.Warn("failed to snapshot scoring config", zap.Error(err))
	}

	synonyms := s.synonyms()
	entries := make([]matchEntry, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(matchConcurrency)
	for i, job := range jobs {
		g.Go(func() error {
			result := scoring.Score(&resume.Extracted, &job.Extracted,
				resume.RawText, job.RawText, cfg, synonyms)
			run, err := s.db.AddRun(gctx, resume.ID, job.ID, *result)
			if err != nil {
				return err
			}
			entries[i] = matchEntry{
				JobID:    job.ID,
				JobTitle: job.Title,
				RunID:    run.ID,
				Result:   result,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.errorFor(w, err)
		return
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Result.Scores.Final > entries[j].Result.Scores.Final
	})

	s.logger.Info("match completed",
		zap.String("resume_id", resume.ID.String()),
		zap.Int("jobs", len(entries)))

	s.jsonResponse(w, http.StatusOK, entries)
}

// loadJobs fetches the requested jobs with raw text, or every stored job
// when ids is empty.
func (s *Server) loadJobs(r *http.Request, ids []uuid.UUID) ([]*db.JobRecord, error) {
	ctx := r.Context()

	if len(ids) == 0 {
		all, err := s.db.ListJobs(ctx)
		if err != nil {
			return nil, err
		}
		ids = make([]uuid.UUID, len(all))
		for i, rec := range all {
			ids[i] = rec.ID
		}
	}

	jobs := make([]*db.JobRecord, 0, len(ids))
	for _, id := range ids {
		rec, err := s.db.GetJob(ctx, id)
		if err != nil {
			return nil, &ErrNotFound{Kind: "job", ID: id}
		}
		jobs = append(jobs, rec)
	}
	return jobs, nil
}

// handleLatestRun returns the most recent run for a resume/job pair,
// identified by query parameters.
func (s *Server) handleLatestRun(w http.ResponseWriter, r *http.Request) {
	resumeID, err := uuid.Parse(r.URL.Query().Get("resume_id"))
	if err != nil {
		s.errorFor(w, &ErrValidation{Field: "resume_id", Message: "must be a valid UUID"})
		return
	}
	jobID, err := uuid.Parse(r.URL.Query().Get("job_id"))
	if err != nil {
		s.errorFor(w, &ErrValidation{Field: "job_id", Message: "must be a valid UUID"})
		return
	}

	run, err := s.db.LatestRun(r.Context(), resumeID, jobID)
	if errors.Is(err, db.ErrNoRuns) {
		s.errorResponse(w, http.StatusNotFound, "no runs recorded for this pair")
		return
	}
	if err != nil {
		s.errorFor(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, run)
}
