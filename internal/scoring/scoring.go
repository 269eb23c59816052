// Package scoring computes weighted compatibility scores between resume and
// job description models. The engine is stateless: every score is a pure
// function of the two models, the two raw texts, and the configuration.
package scoring

import (
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/jonathan/ats-tracker/internal/config"
	"github.com/jonathan/ats-tracker/internal/extract"
	"github.com/jonathan/ats-tracker/internal/normalize"
	"github.com/jonathan/ats-tracker/internal/types"
)

// Recency band scores by distance from the latest experience end year.
const (
	recencyRecent = 1.0
	recencyMid    = 0.6
	recencyOld    = 0.3

	// unmatchedRecencyFactor halves recency when date ranges exist but no
	// job term matched anywhere in the resume.
	unmatchedRecencyFactor = 0.5
)

// Score computes the match result for one resume/job pair. The synonym map
// is optional: when non-nil, both term sets are canonicalized before
// coverage comparison; a nil map compares raw lowercase spellings.
func Score(resume *types.ResumeModel, job *types.JobModel, resumeText, jobText string, cfg *config.Scoring, synonyms *normalize.Map) *types.MatchResult {
	return scoreAt(resume, job, resumeText, jobText, cfg, synonyms, time.Now().Year())
}

// scoreAt is Score with an explicit reference year, so recency banding is
// testable without depending on the wall clock.
func scoreAt(resume *types.ResumeModel, job *types.JobModel, resumeText, jobText string, cfg *config.Scoring, synonyms *normalize.Map, currentYear int) *types.MatchResult {
	resumeTerms := lowerTermSet(resume.Terms, synonyms)
	sectionMatches := extract.FindTermsInSections(job.Terms, resume.Sections)

	niceTerms := job.PreferredTerms
	if len(niceTerms) == 0 {
		// Documented fallback: with no preferred section, nice-to-have
		// coverage is measured against the full job term set.
		niceTerms = job.Terms
	}

	scores := types.Scores{
		MustHave:              termCoverage(job.RequiredTerms, resumeTerms, synonyms),
		NiceToHave:            termCoverage(niceTerms, resumeTerms, synonyms),
		TitleAlignment:        titleAlignment(job.Title, resume.Titles),
		EvidenceStrength:      evidenceStrength(sectionMatches, cfg),
		Recency:               recencyAt(resume.Sections, sectionMatches, cfg, currentYear),
		SearchDiscoverability: searchDiscoverability(job.Terms, resumeText),
	}
	scores.Final = scores.MustHave*cfg.Weights.MustHave +
		scores.NiceToHave*cfg.Weights.NiceToHave +
		scores.TitleAlignment*cfg.Weights.TitleAlignment +
		scores.EvidenceStrength*cfg.Weights.EvidenceStrength +
		scores.Recency*cfg.Weights.Recency +
		scores.SearchDiscoverability*cfg.Weights.SearchDiscoverability

	matched := make([]string, 0, len(job.Terms))
	missing := make([]string, 0)
	for _, term := range job.Terms {
		if resumeTerms[termKey(term, synonyms)] {
			matched = append(matched, term)
		} else {
			missing = append(missing, term)
		}
	}

	return &types.MatchResult{
		Knockout:     KnockoutChecks(jobText, resumeText),
		Scores:       scores,
		MatchedTerms: matched,
		MissingTerms: missing,
		SectionHits:  sectionHits(sectionMatches),
		Explanation: types.Explanation{
			RequiredTerms:  job.RequiredTerms,
			PreferredTerms: job.PreferredTerms,
			JobTerms:       job.Terms,
			ResumeTitles:   resume.Titles,
		},
	}
}

// termKey reduces a term to its comparison key: canonical spelling under the
// synonym map, lowercased.
func termKey(term string, synonyms *normalize.Map) string {
	return strings.ToLower(synonyms.NormalizeTerm(term))
}

// lowerTermSet builds the lookup set of comparison keys for a term list.
func lowerTermSet(terms []string, synonyms *normalize.Map) map[string]bool {
	set := make(map[string]bool, len(terms))
	for _, term := range terms {
		set[termKey(term, synonyms)] = true
	}
	return set
}

// termCoverage returns the fraction of terms present in the resume term set,
// or 0.0 when the term list is empty.
func termCoverage(terms []string, resumeTerms map[string]bool, synonyms *normalize.Map) float64 {
	if len(terms) == 0 {
		return 0.0
	}
	matched := 0
	for _, term := range terms {
		if resumeTerms[termKey(term, synonyms)] {
			matched++
		}
	}
	return float64(matched) / float64(len(terms))
}

// titleAlignment returns the best token-overlap ratio between the job title
// and any candidate resume title. The ratio denominator is the job title's
// token count, so a resume title that covers every job title token scores 1.0.
func titleAlignment(jobTitle string, resumeTitles []string) float64 {
	jobTokens := alphaTokens(jobTitle)
	if len(jobTokens) == 0 || len(resumeTitles) == 0 {
		return 0.0
	}

	best := 0.0
	for _, title := range resumeTitles {
		titleTokens := alphaTokens(title)
		if len(titleTokens) == 0 {
			continue
		}
		overlap := 0
		for token := range titleTokens {
			if jobTokens[token] {
				overlap++
			}
		}
		if ratio := float64(overlap) / float64(len(jobTokens)); ratio > best {
			best = ratio
		}
	}
	return best
}

// alphaTokens returns the set of purely alphabetic tokens, lowercased.
func alphaTokens(s string) map[string]bool {
	tokens := make(map[string]bool)
	for _, token := range strings.Fields(s) {
		if isAlpha(token) {
			tokens[strings.ToLower(token)] = true
		}
	}
	return tokens
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// evidenceStrength accumulates section weight times matched-term count per
// section, normalized by max(1.0, 10 * max configured weight) and clamped to
// 1.0. With no configured evidence weights the sub-score is 0.0.
func evidenceStrength(sectionMatches map[string][]string, cfg *config.Scoring) float64 {
	totalWeight := 0.0
	maxWeight := 0.0
	for _, weight := range cfg.EvidenceWeights {
		totalWeight += weight
		if weight > maxWeight {
			maxWeight = weight
		}
	}
	if totalWeight == 0 {
		return 0.0
	}

	score := 0.0
	for section, terms := range sectionMatches {
		score += cfg.EvidenceWeight(section) * float64(len(terms))
	}

	maxScore := maxWeight * 10
	if maxScore < 1.0 {
		maxScore = 1.0
	}
	if score/maxScore > 1.0 {
		return 1.0
	}
	return score / maxScore
}

// recencyAt scores how recent the resume's experience is. The latest end
// year across all experience date ranges selects a band; no ranges at all
// floors the score at 0.0, and matching zero job terms halves it.
func recencyAt(sections map[string]string, sectionMatches map[string][]string, cfg *config.Scoring, currentYear int) float64 {
	ranges := extract.DetectDateRanges(sections[extract.SectionExperience])

	latest := 0
	for _, r := range ranges {
		for _, year := range r.Years() {
			if year > latest {
				latest = year
			}
		}
	}
	if latest == 0 {
		return 0.0
	}

	var score float64
	switch age := currentYear - latest; {
	case age <= cfg.Recency.Recent():
		score = recencyRecent
	case age <= cfg.Recency.Mid():
		score = recencyMid
	default:
		score = recencyOld
	}

	matchedTerms := 0
	for _, terms := range sectionMatches {
		matchedTerms += len(terms)
	}
	if matchedTerms == 0 {
		return score * unmatchedRecencyFactor
	}
	return score
}

// searchDiscoverability returns the fraction of job terms whose lowercase
// form appears anywhere in the raw resume text. This is a looser, text-scan
// coverage check than must-have: it is not restricted to extracted terms.
func searchDiscoverability(jobTerms []string, resumeText string) float64 {
	if len(jobTerms) == 0 {
		return 0.0
	}
	resumeLower := strings.ToLower(resumeText)
	matched := 0
	for _, term := range jobTerms {
		if strings.Contains(resumeLower, strings.ToLower(term)) {
			matched++
		}
	}
	return float64(matched) / float64(len(jobTerms))
}

// sectionHits converts per-section matched term lists into per-term counts,
// with section term lists kept deterministic by sorting.
func sectionHits(sectionMatches map[string][]string) map[string]map[string]int {
	hits := make(map[string]map[string]int, len(sectionMatches))
	for section, terms := range sectionMatches {
		counts := make(map[string]int, len(terms))
		sorted := append([]string(nil), terms...)
		sort.Strings(sorted)
		for _, term := range sorted {
			counts[term]++
		}
		hits[section] = counts
	}
	return hits
}
