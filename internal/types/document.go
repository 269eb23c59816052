// Package types provides type definitions for structured data shared across
// the ats-tracker system.
package types

// JobModel is the structured extraction output for one job description.
// Terms are sorted and deduplicated; Sections maps section name to the
// concatenated body text belonging to that section.
type JobModel struct {
	Title          string            `json:"title"`
	Terms          []string          `json:"terms"`
	RequiredTerms  []string          `json:"required_terms"`
	PreferredTerms []string          `json:"preferred_terms"`
	Sections       map[string]string `json:"sections"`
}

// ResumeModel is the structured extraction output for one resume.
// SectionTerms holds the term set extracted per section; Terms is the union
// of all section terms. Titles are candidate role titles found in the
// experience section.
type ResumeModel struct {
	Sections     map[string]string   `json:"sections"`
	SectionTerms map[string][]string `json:"section_terms"`
	Titles       []string            `json:"titles"`
	Terms        []string            `json:"terms"`
}
