package server

import (
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/jonathan/ats-tracker/internal/config"
	"github.com/jonathan/ats-tracker/internal/normalize"
)

// handleGetNormalization returns the active synonym map.
func (s *Server) handleGetNormalization(w http.ResponseWriter, _ *http.Request) {
	s.normMu.RLock()
	defer s.normMu.RUnlock()
	s.jsonResponse(w, http.StatusOK, s.norms)
}

// handleUpdateNormalization replaces the synonym map. The body is validated
// against the normalization schema before being applied, and persisted when
// a normalization path is configured.
func (s *Server) handleUpdateNormalization(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 1<<20))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "failed to read body")
		return
	}

	norms, err := normalize.Parse(body)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	s.normMu.Lock()
	s.norms = norms
	path := s.normPath
	s.normMu.Unlock()

	if path != "" {
		if err := norms.Save(path); err != nil {
			s.errorFor(w, err)
			return
		}
	}

	s.logger.Info("normalization map updated", zap.Int("synonyms", len(norms.Synonyms)))
	s.jsonResponse(w, http.StatusOK, norms)
}

// handleGetScoring returns the active scoring configuration.
func (s *Server) handleGetScoring(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.scoringConfig())
}

// handleUpdateScoring replaces the active scoring configuration. The body is
// checked against the scoring schema and snapshotted for run provenance.
func (s *Server) handleUpdateScoring(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 1<<20))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "failed to read body")
		return
	}

	cfg, err := config.ParseScoring(body)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	s.scoringMu.Lock()
	s.scoring = cfg
	s.scoringMu.Unlock()

	if _, err := s.db.SnapshotConfig(r.Context(), cfg); err != nil {
		s.logger.Warn("failed to snapshot scoring config", zap.Error(err))
	}

	s.logger.Info("scoring config updated")
	s.jsonResponse(w, http.StatusOK, cfg)
}
