package server

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/jonathan/ats-tracker/internal/search"
)

// searchRequest runs a boolean query over the stored resume corpus.
type searchRequest struct {
	Query string `json:"query" validate:"required"`
}

// searchResponse lists the resumes the query matched.
type searchResponse struct {
	Query string       `json:"query"`
	Hits  []search.Hit `json:"hits"`
}

// handleSearch evaluates a boolean query (AND, OR, NOT, parentheses,
// quoted phrases) against every stored resume's raw text.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		s.errorFor(w, &ErrValidation{Field: "query", Message: "query is required"})
		return
	}

	resumes, err := s.db.ListResumeTexts(r.Context())
	if err != nil {
		s.errorFor(w, err)
		return
	}

	docs := make([]search.Document, len(resumes))
	for i, rec := range resumes {
		docs[i] = search.Document{ID: rec.ID, Name: rec.Name, Text: rec.RawText}
	}

	hits := search.Run(req.Query, docs)
	s.logger.Info("search completed",
		zap.String("query", req.Query),
		zap.Int("corpus", len(docs)),
		zap.Int("hits", len(hits)))

	s.jsonResponse(w, http.StatusOK, searchResponse{Query: req.Query, Hits: hits})
}
