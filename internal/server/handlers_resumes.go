package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/ats-tracker/internal/extract"
	"github.com/jonathan/ats-tracker/internal/ingestion"
)

// maxUploadBytes bounds resume uploads at 10 MiB.
const maxUploadBytes = 10 << 20

// createResumeRequest is the JSON form of resume creation.
type createResumeRequest struct {
	Name string `json:"name" validate:"required"`
	Text string `json:"text" validate:"required"`
}

// createResumeResponse reports the stored resume and any ingestion warning.
type createResumeResponse struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Warning string    `json:"warning,omitempty"`
}

// handleCreateResume stores a resume from either a multipart file upload
// (field "file", optional field "name") or a JSON body with raw text.
func (s *Server) handleCreateResume(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	var name, text, warning string
	contentType := r.Header.Get("Content-Type")

	if isMultipart(contentType) {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			s.errorResponse(w, http.StatusBadRequest, "invalid multipart form")
			return
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			s.errorFor(w, &ErrValidation{Field: "file", Message: "file part is required"})
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			s.errorFor(w, err)
			return
		}

		text, warning, err = ingestion.ReadUpload(header.Filename, data)
		var unsupported *ingestion.ErrUnsupportedFormat
		if errors.As(err, &unsupported) {
			s.errorFor(w, &ErrUnsupportedUpload{FileName: header.Filename})
			return
		}
		if err != nil {
			s.errorFor(w, err)
			return
		}

		name = r.FormValue("name")
		if name == "" {
			name = header.Filename
		}
	} else {
		var req createResumeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if err := s.validate.Struct(&req); err != nil {
			s.errorFor(w, &ErrValidation{Field: "name/text", Message: "name and text are required"})
			return
		}
		name = req.Name
		text = ingestion.CleanText(req.Text)
	}

	model := extract.BuildResumeModel(text)
	rec, err := s.db.AddResume(r.Context(), name, text, *model)
	if err != nil {
		s.errorFor(w, err)
		return
	}

	s.logger.Info("resume stored",
		zap.String("id", rec.ID.String()),
		zap.String("name", name),
		zap.Int("terms", len(model.Terms)))

	s.jsonResponse(w, http.StatusCreated, createResumeResponse{
		ID:      rec.ID,
		Name:    rec.Name,
		Warning: warning,
	})
}

func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	resumes, err := s.db.ListResumes(r.Context())
	if err != nil {
		s.errorFor(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, resumes)
}

func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}
	rec, err := s.db.GetResume(r.Context(), id)
	if err != nil {
		s.errorFor(w, &ErrNotFound{Kind: "resume", ID: id})
		return
	}
	s.jsonResponse(w, http.StatusOK, rec)
}

func (s *Server) handleDeleteResume(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}
	if err := s.db.DeleteResume(r.Context(), id); err != nil {
		s.errorFor(w, &ErrNotFound{Kind: "resume", ID: id})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}
	runs, err := s.db.ListRuns(r.Context(), id)
	if err != nil {
		s.errorFor(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, runs)
}

// pathUUID parses a UUID path parameter, writing a 400 on failure.
func (s *Server) pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		s.errorFor(w, &ErrValidation{Field: name, Message: "must be a valid UUID"})
		return uuid.Nil, false
	}
	return id, true
}

func isMultipart(contentType string) bool {
	return len(contentType) >= 19 && contentType[:19] == "multipart/form-data"
}
