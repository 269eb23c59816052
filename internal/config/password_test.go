package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPasswordConfig_Defaults(t *testing.T) {
	t.Setenv("BCRYPT_COST", "")
	t.Setenv("OPERATOR_PASSWORD_HASH", "")

	cfg, err := NewPasswordConfig()
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Empty(t, cfg.OperatorHash)
}

func TestNewPasswordConfig_CostValidation(t *testing.T) {
	tests := []struct {
		name    string
		cost    string
		wantErr bool
	}{
		{name: "minimum", cost: "10"},
		{name: "maximum", cost: "14"},
		{name: "too low", cost: "9", wantErr: true},
		{name: "too high", cost: "15", wantErr: true},
		{name: "non-numeric", cost: "fast", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("BCRYPT_COST", tt.cost)

			cfg, err := NewPasswordConfig()
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, cfg)
		})
	}
}

func TestVerifyOperator_RoundTrip(t *testing.T) {
	cfg := &PasswordConfig{BcryptCost: 10}

	hash, err := cfg.HashPassword("correct horse battery staple")
	require.NoError(t, err)

	cfg.OperatorHash = hash
	assert.True(t, cfg.VerifyOperator("correct horse battery staple"))
	assert.False(t, cfg.VerifyOperator("wrong password"))
}

func TestVerifyOperator_NoHashConfigured(t *testing.T) {
	cfg := &PasswordConfig{BcryptCost: 10}

	assert.False(t, cfg.VerifyOperator("anything"))
}
