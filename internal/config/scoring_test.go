package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadScoring_FullDocument(t *testing.T) {
	path := writeConfig(t, `{
		"weights": {"must_have": 0.4, "recency": 0.1},
		"evidence_weights": {"skills": 0.5},
		"recency": {"recent_years": 2, "mid_years": 6}
	}`)

	cfg, err := LoadScoring(path)

	require.NoError(t, err)
	assert.Equal(t, 0.4, cfg.Weights.MustHave)
	assert.Equal(t, 0.1, cfg.Weights.Recency)
	assert.Equal(t, 0.5, cfg.EvidenceWeights["skills"])
	assert.Equal(t, 2, cfg.Recency.Recent())
	assert.Equal(t, 6, cfg.Recency.Mid())
}

func TestLoadScoring_AbsentKeysUseDefaults(t *testing.T) {
	path := writeConfig(t, `{"weights": {"must_have": 1.0}}`)

	cfg, err := LoadScoring(path)

	require.NoError(t, err)
	// Absent weights contribute nothing.
	assert.Equal(t, 0.0, cfg.Weights.NiceToHave)
	assert.Equal(t, 0.0, cfg.Weights.SearchDiscoverability)
	// Absent recency thresholds fall back to 3 and 5.
	assert.Equal(t, DefaultRecentYears, cfg.Recency.Recent())
	assert.Equal(t, DefaultMidYears, cfg.Recency.Mid())
}

func TestLoadScoring_MalformedJSONIsAnError(t *testing.T) {
	path := writeConfig(t, `{"weights": `)

	_, err := LoadScoring(path)

	assert.Error(t, err)
}

func TestLoadScoring_UnknownKeyRejectedBySchema(t *testing.T) {
	path := writeConfig(t, `{"wieghts": {"must_have": 1.0}}`)

	_, err := LoadScoring(path)

	assert.Error(t, err)
}

func TestLoadScoring_NegativeWeightRejected(t *testing.T) {
	path := writeConfig(t, `{"weights": {"must_have": -0.5}}`)

	_, err := LoadScoring(path)

	assert.Error(t, err)
}

func TestLoadScoring_MissingFile(t *testing.T) {
	_, err := LoadScoring(filepath.Join(t.TempDir(), "missing.json"))

	assert.Error(t, err)
}

func TestLoadScoring_EmptyPath(t *testing.T) {
	_, err := LoadScoring("")

	assert.Error(t, err)
}

func TestEvidenceWeight_Fallbacks(t *testing.T) {
	cfg := &Scoring{EvidenceWeights: map[string]float64{"skills": 0.5, "other": 0.1}}

	assert.Equal(t, 0.5, cfg.EvidenceWeight("skills"))
	assert.Equal(t, 0.1, cfg.EvidenceWeight("projects"))

	cfg = &Scoring{EvidenceWeights: map[string]float64{"skills": 0.5}}
	assert.Equal(t, DefaultEvidenceWeight, cfg.EvidenceWeight("projects"))
}

func TestDefaultScoring_Validates(t *testing.T) {
	assert.NoError(t, DefaultScoring().Validate())
}

func TestScoring_ValidateNegativeEvidenceWeight(t *testing.T) {
	cfg := &Scoring{EvidenceWeights: map[string]float64{"skills": -1}}

	assert.Error(t, cfg.Validate())
}
