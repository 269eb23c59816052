package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJWTConfig_DisabledWhenSecretUnset(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	cfg, err := NewJWTConfig()
	require.NoError(t, err)
	assert.Nil(t, cfg, "auth should be disabled without JWT_SECRET")
}

func TestNewJWTConfig_DefaultTTL(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key")
	t.Setenv("JWT_EXPIRATION_HOURS", "")

	cfg, err := NewJWTConfig()
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "test-secret-key", cfg.Secret)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
}

func TestNewJWTConfig_CustomTTL(t *testing.T) {
	tests := []struct {
		name     string
		hours    string
		expected time.Duration
		wantErr  bool
	}{
		{name: "twelve hours", hours: "12", expected: 12 * time.Hour},
		{name: "one week", hours: "168", expected: 168 * time.Hour},
		{name: "minimum one hour", hours: "1", expected: time.Hour},
		{name: "non-numeric", hours: "invalid", wantErr: true},
		{name: "zero", hours: "0", wantErr: true},
		{name: "negative", hours: "-1", wantErr: true},
		{name: "float", hours: "12.5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("JWT_SECRET", "test-secret-key")
			t.Setenv("JWT_EXPIRATION_HOURS", tt.hours)

			cfg, err := NewJWTConfig()
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, cfg)
				assert.Contains(t, err.Error(), "JWT_EXPIRATION_HOURS")
				return
			}
			require.NoError(t, err)
			require.NotNil(t, cfg)
			assert.Equal(t, tt.expected, cfg.TokenTTL)
		})
	}
}
