package fetch

import (
	"net/url"
	"strings"
)

// Platform represents a known job board platform.
type Platform string

// Recognized job board platforms.
const (
	PlatformGreenhouse Platform = "greenhouse"
	PlatformLever      Platform = "lever"
	PlatformWorkday    Platform = "workday"
	PlatformUnknown    Platform = "unknown"
)

// DetectPlatform identifies the job board platform from a URL.
func DetectPlatform(urlStr string) Platform {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return PlatformUnknown
	}

	host := strings.ToLower(parsed.Host)
	switch {
	case strings.Contains(host, "greenhouse.io"):
		return PlatformGreenhouse
	case strings.Contains(host, "lever.co"):
		return PlatformLever
	case strings.Contains(host, "workday.com"), strings.Contains(host, "myworkdayjobs.com"):
		return PlatformWorkday
	}
	return PlatformUnknown
}

// ContentSelectors returns content selectors for the platform, most specific
// first, ending with generic job posting fallbacks.
func (p Platform) ContentSelectors() []string {
	var specific []string
	switch p {
	case PlatformGreenhouse:
		specific = []string{".job__description.body", ".job__description", "#content"}
	case PlatformLever:
		specific = []string{".posting-page", ".section-wrapper.page-full-width", ".posting-content"}
	case PlatformWorkday:
		specific = []string{"[data-automation-id='jobPostingDescription']", ".jobPostingDescription"}
	}
	return append(specific,
		".job-description",
		".job-content",
		"#job-description",
		".posting-content",
		".job-details",
		"main",
		"article",
		".content",
		"#content",
	)
}

// NoiseSelectors returns platform-specific elements to strip before text
// extraction (application forms, share widgets, related postings).
func (p Platform) NoiseSelectors() []string {
	switch p {
	case PlatformGreenhouse:
		return []string{"#application", ".application--form", "#apply_button"}
	case PlatformLever:
		return []string{".postings-btn-wrapper", ".posting-apply", "footer.main-footer-wrapper"}
	case PlatformWorkday:
		return []string{"[data-automation-id='applyButton']", "[data-automation-id='similarJobs']"}
	}
	return nil
}
