package config

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

// PasswordConfig holds the operator password hash and bcrypt settings for
// the single-operator auth flow.
type PasswordConfig struct {
	OperatorHash string // bcrypt hash of the operator password
	BcryptCost   int
}

// NewPasswordConfig creates a password configuration from environment variables.
// It reads OPERATOR_PASSWORD_HASH (required when auth is enabled) and
// BCRYPT_COST (default: 12).
func NewPasswordConfig() (*PasswordConfig, error) {
	costStr := os.Getenv("BCRYPT_COST")
	if costStr == "" {
		costStr = "12"
	}

	cost, err := strconv.Atoi(costStr)
	if err != nil {
		return nil, fmt.Errorf("invalid BCRYPT_COST: %v", err)
	}
	if cost < 10 || cost > 14 {
		return nil, fmt.Errorf("bcrypt cost out of range: %d (must be 10-14)", cost)
	}

	return &PasswordConfig{
		OperatorHash: os.Getenv("OPERATOR_PASSWORD_HASH"),
		BcryptCost:   cost,
	}, nil
}

// HashPassword hashes a password using bcrypt.
func (c *PasswordConfig) HashPassword(pw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pw), c.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyOperator checks a password attempt against the configured operator hash.
func (c *PasswordConfig) VerifyOperator(pw string) bool {
	if c.OperatorHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(c.OperatorHash), []byte(pw)) == nil
}
