// Package normalize manages the file-backed synonym map that canonicalizes
// raw term spellings. The map is owned by the CLI and server surfaces; the
// scoring engine only consumes it as an optional lookup table.
package normalize

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/jonathan/ats-tracker/internal/schemas"
)

// Map is a normalization map from lowercase raw term to canonical term.
type Map struct {
	Synonyms map[string]string `json:"synonyms"`
}

// NewMap returns an empty normalization map.
func NewMap() *Map {
	return &Map{Synonyms: make(map[string]string)}
}

// Load reads a normalization map from a JSON file. A missing file yields an
// empty map; a malformed one is surfaced as an error.
func Load(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewMap(), nil
		}
		return nil, fmt.Errorf("failed to read normalization file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse validates and unmarshals a normalization map document.
func Parse(data []byte) (*Map, error) {
	if err := schemas.ValidateNormalization(data); err != nil {
		return nil, fmt.Errorf("invalid normalization map: %w", err)
	}

	var m Map
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse normalization JSON: %w", err)
	}
	if m.Synonyms == nil {
		m.Synonyms = make(map[string]string)
	}
	return &m, nil
}

// Save writes the map to a JSON file, indented for hand editing.
func (m *Map) Save(path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal normalization map: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write normalization file %s: %w", path, err)
	}
	return nil
}

// NormalizeTerm maps a raw term to its canonical spelling. Terms without a
// synonym entry pass through unchanged. A nil map is a no-op.
func (m *Map) NormalizeTerm(term string) string {
	if m == nil {
		return strings.TrimSpace(term)
	}
	if canonical, ok := m.Synonyms[strings.ToLower(term)]; ok {
		return strings.TrimSpace(canonical)
	}
	return strings.TrimSpace(term)
}

// NormalizeTerms normalizes every term, dropping empties and duplicates, and
// returns the result sorted.
func (m *Map) NormalizeTerms(terms []string) []string {
	seen := make(map[string]bool, len(terms))
	for _, term := range terms {
		normalized := m.NormalizeTerm(term)
		if normalized != "" {
			seen[normalized] = true
		}
	}

	out := make([]string, 0, len(seen))
	for term := range seen {
		out = append(out, term)
	}
	sort.Strings(out)
	return out
}

// AddSynonyms registers each term as its own canonical form, keyed by its
// lowercase spelling. Existing entries are not overwritten.
func (m *Map) AddSynonyms(terms []string) {
	if m.Synonyms == nil {
		m.Synonyms = make(map[string]string)
	}
	for _, term := range terms {
		trimmed := strings.TrimSpace(term)
		key := strings.ToLower(trimmed)
		if key == "" {
			continue
		}
		if _, ok := m.Synonyms[key]; !ok {
			m.Synonyms[key] = trimmed
		}
	}
}

// Has reports whether the term (by lowercase form) has a synonym entry.
func (m *Map) Has(term string) bool {
	if m == nil {
		return false
	}
	_, ok := m.Synonyms[strings.ToLower(term)]
	return ok
}
