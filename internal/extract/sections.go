// Package extract derives structured signal (sections, terms, titles, date
// ranges) from raw resume and job posting text using deterministic,
// rule-based detection.
package extract

import "strings"

// Section names form a fixed vocabulary. Text that precedes any recognized
// heading accumulates under SectionOther.
const (
	SectionSummary        = "summary"
	SectionExperience     = "experience"
	SectionProjects       = "projects"
	SectionSkills         = "skills"
	SectionEducation      = "education"
	SectionCertifications = "certifications"
	SectionRequirements   = "requirements"
	SectionPreferred      = "preferred"
	SectionOther          = "other"
)

// sectionHeadings maps each section name to the heading synonyms that open it.
// A heading matches only when the entire trimmed line equals a synonym,
// case-insensitively.
var sectionHeadings = map[string][]string{
	SectionSummary:        {"summary", "profile", "professional summary"},
	SectionExperience:     {"experience", "work experience", "employment"},
	SectionProjects:       {"projects", "project experience"},
	SectionSkills:         {"skills", "core skills", "competencies"},
	SectionEducation:      {"education"},
	SectionCertifications: {"certifications", "certificates", "licenses"},
	SectionRequirements:   {"requirements", "required qualifications", "must have", "must-have"},
	SectionPreferred:      {"preferred", "preferred qualifications", "nice to have", "nice-to-have", "bonus"},
}

// DetectSections splits text into named sections by heading match. It walks
// the text line by line with a current-section cursor initialized to "other".
// A line that exactly matches a heading synonym (case-insensitive, trimmed)
// switches the cursor and is itself discarded; blank lines are dropped; every
// other line is appended to the body of the current section in source order.
func DetectSections(text string) map[string]string {
	bodies := make(map[string][]string)
	current := SectionOther

	for _, line := range strings.Split(text, "\n") {
		stripped := strings.TrimSpace(line)
		if stripped == "" {
			continue
		}
		if name, ok := matchHeading(stripped); ok {
			current = name
			continue
		}
		bodies[current] = append(bodies[current], stripped)
	}

	sections := make(map[string]string, len(bodies))
	for name, lines := range bodies {
		sections[name] = strings.Join(lines, "\n")
	}
	return sections
}

// matchHeading reports whether the trimmed line is a recognized section
// heading and, if so, which section it opens.
func matchHeading(stripped string) (string, bool) {
	lowered := strings.ToLower(stripped)
	for name, headings := range sectionHeadings {
		for _, heading := range headings {
			if lowered == heading {
				return name, true
			}
		}
	}
	return "", false
}

// SectionNames returns the fixed section vocabulary in canonical order.
func SectionNames() []string {
	return []string{
		SectionSummary,
		SectionExperience,
		SectionProjects,
		SectionSkills,
		SectionEducation,
		SectionCertifications,
		SectionRequirements,
		SectionPreferred,
		SectionOther,
	}
}
