package server

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// tokenRequest is the operator login payload.
type tokenRequest struct {
	Password string `json:"password" validate:"required"`
}

// tokenResponse carries an issued bearer token.
type tokenResponse struct {
	Token string `json:"token"`
}

// handleToken exchanges the operator password for a JWT.
func (s *Server) handleToken(w http.ResponseWriter, r *http.Request) {
	if s.jwtService == nil {
		s.errorResponse(w, http.StatusNotFound, "authentication is not configured")
		return
	}

	var req tokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		s.errorFor(w, &ErrValidation{Field: "password", Message: "password is required"})
		return
	}

	if !s.password.VerifyOperator(req.Password) {
		s.logger.Warn("failed operator login", zap.String("remote", r.RemoteAddr))
		s.errorFor(w, &ErrInvalidCredentials{})
		return
	}

	token, err := s.jwtService.GenerateToken()
	if err != nil {
		s.errorFor(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, tokenResponse{Token: token})
}
