package types

// Knockout is the hard pass/fail verdict for a resume/job pair, independent
// of the weighted score. Failures preserves the fixed check order.
type Knockout struct {
	Passed   bool     `json:"passed"`
	Failures []string `json:"failures"`
}

// Scores holds the six independent sub-scores, each in [0.0, 1.0], plus the
// weighted final score.
type Scores struct {
	MustHave              float64 `json:"must_have"`
	NiceToHave            float64 `json:"nice_to_have"`
	TitleAlignment        float64 `json:"title_alignment"`
	EvidenceStrength      float64 `json:"evidence_strength"`
	Recency               float64 `json:"recency"`
	SearchDiscoverability float64 `json:"search_discoverability"`
	Final                 float64 `json:"final"`
}

// Explanation carries the term and title evidence behind a match result,
// for drill-down display.
type Explanation struct {
	RequiredTerms  []string `json:"required_terms"`
	PreferredTerms []string `json:"preferred_terms"`
	JobTerms       []string `json:"jd_terms"`
	ResumeTitles   []string `json:"resume_titles"`
}

// MatchResult is the immutable outcome of scoring one resume against one
// job description. SectionHits maps section name to matched term to hit
// count. The engine produces a fresh result per pair; persistence is the
// caller's concern.
type MatchResult struct {
	Knockout     Knockout                  `json:"knockout"`
	Scores       Scores                    `json:"scores"`
	MatchedTerms []string                  `json:"matched_terms"`
	MissingTerms []string                  `json:"missing_terms"`
	SectionHits  map[string]map[string]int `json:"section_hits"`
	Explanation  Explanation               `json:"explanation"`
}
