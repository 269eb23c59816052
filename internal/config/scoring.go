// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/ats-tracker/internal/schemas"
)

// Defaults applied when the corresponding key is absent from the scoring
// configuration document.
const (
	DefaultEvidenceWeight = 0.2
	DefaultRecentYears    = 3
	DefaultMidYears       = 5
)

// Weights holds the linear-combination weight for each sub-score. Absent
// keys unmarshal to 0.0 and therefore contribute nothing to the final score;
// no normalization is applied, so the caller owns making them sum to a
// meaningful total.
type Weights struct {
	MustHave              float64 `json:"must_have,omitempty"`
	NiceToHave            float64 `json:"nice_to_have,omitempty"`
	TitleAlignment        float64 `json:"title_alignment,omitempty"`
	EvidenceStrength      float64 `json:"evidence_strength,omitempty"`
	Recency               float64 `json:"recency,omitempty"`
	SearchDiscoverability float64 `json:"search_discoverability,omitempty"`
}

// RecencyThresholds holds the year thresholds for the recency sub-score.
// Pointers distinguish "absent" (use default) from an explicit zero.
type RecencyThresholds struct {
	RecentYears *int `json:"recent_years,omitempty"`
	MidYears    *int `json:"mid_years,omitempty"`
}

// Recent returns the recent-years threshold, defaulting to 3.
func (r RecencyThresholds) Recent() int {
	if r.RecentYears != nil {
		return *r.RecentYears
	}
	return DefaultRecentYears
}

// Mid returns the mid-years threshold, defaulting to 5.
func (r RecencyThresholds) Mid() int {
	if r.MidYears != nil {
		return *r.MidYears
	}
	return DefaultMidYears
}

// Scoring is the scoring configuration document consumed by the scoring
// engine. EvidenceWeights maps section name to a non-negative weight;
// sections without an entry weigh DefaultEvidenceWeight.
type Scoring struct {
	Weights         Weights            `json:"weights"`
	EvidenceWeights map[string]float64 `json:"evidence_weights,omitempty"`
	Recency         RecencyThresholds  `json:"recency,omitempty"`
}

// DefaultScoring returns the built-in scoring configuration used when no
// config file is supplied.
func DefaultScoring() *Scoring {
	return &Scoring{
		Weights: Weights{
			MustHave:              0.30,
			NiceToHave:            0.15,
			TitleAlignment:        0.15,
			EvidenceStrength:      0.20,
			Recency:               0.10,
			SearchDiscoverability: 0.10,
		},
		EvidenceWeights: map[string]float64{
			"skills":     0.40,
			"experience": 0.35,
			"projects":   0.30,
			"summary":    0.20,
			"other":      0.20,
		},
	}
}

// LoadScoring loads a scoring configuration from a JSON file. The document is
// checked against the embedded JSON Schema before unmarshaling so a malformed
// config surfaces as an error rather than silently scoring everything 0.0.
func LoadScoring(path string) (*Scoring, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return ParseScoring(data)
}

// ParseScoring validates and unmarshals a scoring configuration document.
func ParseScoring(data []byte) (*Scoring, error) {
	if err := schemas.ValidateScoringConfig(data); err != nil {
		return nil, fmt.Errorf("invalid scoring config: %w", err)
	}

	var cfg Scoring
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Scoring) Validate() error {
	for name, value := range map[string]float64{
		"must_have":              c.Weights.MustHave,
		"nice_to_have":           c.Weights.NiceToHave,
		"title_alignment":        c.Weights.TitleAlignment,
		"evidence_strength":      c.Weights.EvidenceStrength,
		"recency":                c.Weights.Recency,
		"search_discoverability": c.Weights.SearchDiscoverability,
	} {
		if value < 0 {
			return fmt.Errorf("config error: weight %q must be non-negative", name)
		}
	}

	for section, weight := range c.EvidenceWeights {
		if weight < 0 {
			return fmt.Errorf("config error: evidence weight for %q must be non-negative", section)
		}
	}

	if c.Recency.RecentYears != nil && *c.Recency.RecentYears < 0 {
		return fmt.Errorf("config error: 'recent_years' must be non-negative")
	}
	if c.Recency.MidYears != nil && *c.Recency.MidYears < 0 {
		return fmt.Errorf("config error: 'mid_years' must be non-negative")
	}

	return nil
}

// EvidenceWeight returns the configured weight for a section, falling back
// to the "other" entry and then to DefaultEvidenceWeight.
func (c *Scoring) EvidenceWeight(section string) float64 {
	if weight, ok := c.EvidenceWeights[section]; ok {
		return weight
	}
	if weight, ok := c.EvidenceWeights["other"]; ok {
		return weight
	}
	return DefaultEvidenceWeight
}
