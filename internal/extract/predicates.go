package extract

import (
	"regexp"
	"strings"
)

// maxTitleWords caps how many space-separated words a title-shaped line may have.
const maxTitleWords = 8

var (
	// titleLine matches lines that look like a role or job title: starts with
	// an uppercase letter and contains only letters, spaces, hyphens and slashes.
	titleLine = regexp.MustCompile(`^[A-Z][A-Za-z\s\-/]+$`)

	// dateRange matches "Month? Year <sep> Month? Year" and "Month? Year <sep>
	// Present", where the separator is a hyphen, "to", or an en-dash.
	dateRange = regexp.MustCompile(`(?i)((?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Sept|Oct|Nov|Dec)?\s?\d{4})\s*(?:-|to|–)\s*(Present|(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Sept|Oct|Nov|Dec)?\s?\d{4})`)

	// acronymToken matches bare uppercase runs of 2-6 letters.
	acronymToken = regexp.MustCompile(`\b[A-Z]{2,6}\b`)

	// acronymExact anchors the acronym shape for single-token checks.
	acronymExact = regexp.MustCompile(`^[A-Z]{2,6}$`)

	// yearToken matches a four-digit year inside a date-range token.
	yearToken = regexp.MustCompile(`\d{4}`)
)

// IsTitleLine reports whether the trimmed line has the shape of a role title:
// uppercase start, letters/spaces/hyphens/slashes only, at most eight words.
func IsTitleLine(line string) bool {
	stripped := strings.TrimSpace(line)
	if !titleLine.MatchString(stripped) {
		return false
	}
	return len(strings.Fields(stripped)) <= maxTitleWords
}

// IsAcronym reports whether the token is a bare uppercase run of 2-6 letters.
func IsAcronym(token string) bool {
	return acronymExact.MatchString(token)
}

// DateRange is one recognized employment date span. End is either a year
// token or the literal "Present".
type DateRange struct {
	Start string
	End   string
}

// HasDateRange reports whether the line contains a recognizable date range.
func HasDateRange(line string) bool {
	return dateRange.MatchString(line)
}

// DetectDateRanges returns every date range found in text, in source order.
func DetectDateRanges(text string) []DateRange {
	matches := dateRange.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}
	ranges := make([]DateRange, 0, len(matches))
	for _, m := range matches {
		ranges = append(ranges, DateRange{Start: strings.TrimSpace(m[1]), End: strings.TrimSpace(m[2])})
	}
	return ranges
}

// Years extracts every four-digit year mentioned in the range.
func (r DateRange) Years() []int {
	var years []int
	for _, token := range yearToken.FindAllString(r.Start+" "+r.End, -1) {
		year := 0
		for _, c := range token {
			year = year*10 + int(c-'0')
		}
		years = append(years, year)
	}
	return years
}
