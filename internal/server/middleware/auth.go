// Package middleware provides HTTP middleware for operator authentication.
package middleware

import (
	"net/http"
	"strings"
)

// TokenValidator validates bearer tokens. A nil validator means
// authentication is disabled.
type TokenValidator interface {
	ValidateToken(tokenString string) error
}

// RequireAuth wraps a handler so it only runs with a valid bearer token.
// When validator is nil the handler runs unprotected.
func RequireAuth(validator TokenValidator, next http.Handler) http.Handler {
	if validator == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r.Header.Get("Authorization"))
		if !ok {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		if err := validator.ValidateToken(token); err != nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// bearerToken extracts the token from an Authorization header.
// The "Bearer" prefix is matched case-insensitively.
func bearerToken(header string) (string, bool) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}
