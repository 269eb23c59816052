package scoring

import (
	"strings"

	"github.com/jonathan/ats-tracker/internal/types"
)

// knockoutRule is one hard gate: if any trigger phrase appears in the job
// text, the resume must contain at least one evidence keyword or the check
// fails with the given reason.
type knockoutRule struct {
	triggers []string
	evidence []string
	reason   string
}

// knockoutRules run in fixed order; failure reasons preserve this order.
var knockoutRules = []knockoutRule{
	{
		triggers: []string{"must be located", "location"},
		evidence: []string{"remote", "location"},
		reason:   "Location requirement not found in resume",
	},
	{
		triggers: []string{"work authorization", "authorized to work"},
		evidence: []string{"authorized", "visa"},
		reason:   "Work authorization not evidenced",
	},
	{
		triggers: []string{"certification", "license", "degree"},
		evidence: []string{"certification", "degree"},
		reason:   "Required certification/degree not evidenced",
	},
}

// KnockoutChecks scans the job text for trigger phrases and, for each
// triggered category, fails when the resume lacks the corresponding
// evidence. Knockouts are independent boolean gates, not part of the
// weighted score.
func KnockoutChecks(jobText, resumeText string) types.Knockout {
	jobLower := strings.ToLower(jobText)
	resumeLower := strings.ToLower(resumeText)

	failures := make([]string, 0)
	for _, rule := range knockoutRules {
		if !containsAny(jobLower, rule.triggers) {
			continue
		}
		if !containsAny(resumeLower, rule.evidence) {
			failures = append(failures, rule.reason)
		}
	}

	return types.Knockout{
		Passed:   len(failures) == 0,
		Failures: failures,
	}
}

func containsAny(haystack string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}
