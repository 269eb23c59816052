package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/ats-tracker/internal/extract"
	"github.com/jonathan/ats-tracker/internal/ingestion"
)

// createJobRequest creates a job from raw text or by fetching a posting URL.
type createJobRequest struct {
	Title      string `json:"title"`
	Text       string `json:"text" validate:"required_without=URL"`
	URL        string `json:"url" validate:"omitempty,url"`
	UseBrowser *bool  `json:"use_browser"`
}

// createJobResponse reports the stored job and its inferred title.
type createJobResponse struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Platform string    `json:"platform,omitempty"`
}

// handleCreateJob stores a job description. When a URL is given the posting
// is fetched and its main content extracted before term extraction runs.
func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	var req createJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		s.errorFor(w, &ErrValidation{Field: "text/url", Message: "either text or a valid url is required"})
		return
	}

	text := ingestion.CleanText(req.Text)
	platform := ""
	if req.URL != "" {
		useBrowser := s.useBrowser
		if req.UseBrowser != nil {
			useBrowser = *req.UseBrowser
		}
		fetched, meta, err := ingestion.IngestFromURL(r.Context(), req.URL, useBrowser, s.logger)
		if err != nil {
			s.errorResponse(w, http.StatusBadGateway, "failed to fetch job posting: "+err.Error())
			return
		}
		text = fetched
		platform = meta.Platform
	}

	model := extract.BuildJobModel(text)
	title := req.Title
	if title == "" {
		title = model.Title
	}

	rec, err := s.db.AddJob(r.Context(), title, text, req.URL, *model)
	if err != nil {
		s.errorFor(w, err)
		return
	}

	s.logger.Info("job stored",
		zap.String("id", rec.ID.String()),
		zap.String("title", title),
		zap.Int("terms", len(model.Terms)),
		zap.Int("required_terms", len(model.RequiredTerms)))

	s.jsonResponse(w, http.StatusCreated, createJobResponse{
		ID:       rec.ID,
		Title:    title,
		Platform: platform,
	})
}

func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := s.db.ListJobs(r.Context())
	if err != nil {
		s.errorFor(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, jobs)
}

func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}
	rec, err := s.db.GetJob(r.Context(), id)
	if err != nil {
		s.errorFor(w, &ErrNotFound{Kind: "job", ID: id})
		return
	}
	s.jsonResponse(w, http.StatusOK, rec)
}

func (s *Server) handleDeleteJob(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}
	if err := s.db.DeleteJob(r.Context(), id); err != nil {
		s.errorFor(w, &ErrNotFound{Kind: "job", ID: id})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
