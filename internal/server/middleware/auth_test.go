package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// testValidator accepts a single fixed token.
type testValidator struct {
	valid string
}

func (v *testValidator) ValidateToken(tokenString string) error {
	if tokenString != v.valid {
		return fmt.Errorf("invalid token")
	}
	return nil
}

func protectedHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAuth_ValidToken(t *testing.T) {
	handler := RequireAuth(&testValidator{valid: "token-123"}, protectedHandler())

	req := httptest.NewRequest(http.MethodPost, "/resumes", nil)
	req.Header.Set("Authorization", "Bearer token-123")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAuth_CaseInsensitiveBearer(t *testing.T) {
	handler := RequireAuth(&testValidator{valid: "token-123"}, protectedHandler())

	req := httptest.NewRequest(http.MethodPost, "/resumes", nil)
	req.Header.Set("Authorization", "bearer token-123")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAuth_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "wrong scheme", header: "Basic dXNlcjpwYXNz"},
		{name: "no token", header: "Bearer"},
		{name: "invalid token", header: "Bearer wrong-token"},
		{name: "extra parts", header: "Bearer a b"},
	}

	handler := RequireAuth(&testValidator{valid: "token-123"}, protectedHandler())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/resumes", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestRequireAuth_NilValidatorDisablesAuth(t *testing.T) {
	handler := RequireAuth(nil, protectedHandler())

	req := httptest.NewRequest(http.MethodPost, "/resumes", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
