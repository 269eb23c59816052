package extract

import (
	"sort"
	"strings"

	"github.com/jonathan/ats-tracker/internal/types"
)

// titleScanLines is how many leading lines are scanned for a job title.
const titleScanLines = 10

// fallbackTitle is used when no title-shaped line appears near the top of a
// job description.
const fallbackTitle = "Job Title"

// BuildJobModel produces the structured model for a job description: detected
// sections, the full-text term set, required and preferred term sets drawn
// from the matching sections, and the inferred title.
func BuildJobModel(text string) *types.JobModel {
	sections := DetectSections(text)

	requiredText := joinSections(sections, func(name string) bool {
		return strings.Contains(name, "require") || strings.Contains(name, "must")
	})
	preferredText := joinSections(sections, func(name string) bool {
		return strings.Contains(name, "prefer") || strings.Contains(name, "bonus") || strings.Contains(name, "nice")
	})

	var required, preferred []string
	if requiredText != "" {
		required = ExtractTerms(requiredText)
	}
	if preferredText != "" {
		preferred = ExtractTerms(preferredText)
	}

	return &types.JobModel{
		Title:          InferTitle(text),
		Terms:          ExtractTerms(text),
		RequiredTerms:  required,
		PreferredTerms: preferred,
		Sections:       sections,
	}
}

// joinSections concatenates the bodies of every section whose name satisfies
// the predicate, in canonical section order.
func joinSections(sections map[string]string, match func(name string) bool) string {
	var bodies []string
	for _, name := range SectionNames() {
		if body, ok := sections[name]; ok && match(name) {
			bodies = append(bodies, body)
		}
	}
	return strings.Join(bodies, "\n")
}

// InferTitle returns the first title-shaped line within the first ten lines
// of the text, or a generic placeholder when none is found.
func InferTitle(text string) string {
	lines := strings.Split(text, "\n")
	if len(lines) > titleScanLines {
		lines = lines[:titleScanLines]
	}
	for _, line := range lines {
		if IsTitleLine(line) {
			return strings.TrimSpace(line)
		}
	}
	return fallbackTitle
}

// BuildResumeModel produces the structured model for a resume: detected
// sections, the term set per section, candidate role titles from the
// experience section, and the union of all section terms.
func BuildResumeModel(text string) *types.ResumeModel {
	sections := DetectSections(text)

	sectionTerms := make(map[string][]string, len(sections))
	union := make(map[string]bool)
	for name, body := range sections {
		terms := ExtractTerms(body)
		sectionTerms[name] = terms
		for _, term := range terms {
			union[term] = true
		}
	}

	terms := make([]string, 0, len(union))
	for term := range union {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	return &types.ResumeModel{
		Sections:     sections,
		SectionTerms: sectionTerms,
		Titles:       ExtractTitles(sections[SectionExperience]),
		Terms:        terms,
	}
}

// ExtractTitles returns candidate role titles from experience text: lines
// that are title-shaped and do not contain a date range, in source order.
func ExtractTitles(experienceText string) []string {
	var titles []string
	for _, line := range strings.Split(experienceText, "\n") {
		if HasDateRange(line) {
			continue
		}
		if IsTitleLine(line) {
			titles = append(titles, strings.TrimSpace(line))
		}
	}
	return titles
}

// FindTermsInSections maps each section name to the terms whose lowercase
// form appears as a substring of that section's body.
func FindTermsInSections(terms []string, sections map[string]string) map[string][]string {
	lowered := make(map[string]string, len(sections))
	for name, body := range sections {
		lowered[name] = strings.ToLower(body)
	}

	matches := make(map[string][]string)
	for _, term := range terms {
		needle := strings.ToLower(term)
		for name, body := range lowered {
			if strings.Contains(body, needle) {
				matches[name] = append(matches[name], term)
			}
		}
	}
	return matches
}
