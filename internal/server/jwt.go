// Package server provides the HTTP REST API for the ATS tracker.
package server

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jonathan/ats-tracker/internal/config"
)

// operatorSubject is the only principal this service issues tokens for.
const operatorSubject = "operator"

// JWTService issues and validates operator tokens.
type JWTService struct {
	config *config.JWTConfig
}

// NewJWTService creates a JWT service. Returns nil when cfg is nil,
// which disables authentication.
func NewJWTService(cfg *config.JWTConfig) *JWTService {
	if cfg == nil {
		return nil
	}
	return &JWTService{config: cfg}
}

// GenerateToken issues an operator token.
func (s *JWTService) GenerateToken() (string, error) {
	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Subject:   operatorSubject,
		ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TokenTTL)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken checks a token's signature, expiry, and subject.
func (s *JWTService) ValidateToken(tokenString string) error {
	if tokenString == "" {
		return fmt.Errorf("token string is empty")
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.Secret), nil
	})
	if err != nil {
		return fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return fmt.Errorf("token is not valid")
	}
	if claims.Subject != operatorSubject {
		return fmt.Errorf("unexpected token subject: %q", claims.Subject)
	}
	return nil
}
