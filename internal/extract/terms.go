package extract

import (
	"regexp"
	"sort"
	"strings"
)

// stopwords are connective and boilerplate words excluded from term output.
// The lowercase form of a candidate term must not appear here.
var stopwords = map[string]bool{
	"and": true, "or": true, "the": true, "a": true, "an": true,
	"to": true, "of": true, "for": true, "in": true, "with": true,
	"on": true, "at": true, "by": true, "as": true, "from": true,
	"is": true, "are": true, "be": true, "this": true, "that": true,
	"will": true, "must": true, "required": true, "preferred": true,
	"plus": true, "bonus": true,
}

// junkPhrases are multi-word phrases that carry no skill signal.
var junkPhrases = map[string]bool{
	"years of experience":      true,
	"responsible for":          true,
	"responsibilities include": true,
	"equal opportunity":        true,
	"we are":                   true,
	"you will":                 true,
	"job description":          true,
	"position summary":         true,
}

var (
	// phrasePunct strips punctuation before phrase windowing, keeping
	// hyphen, plus, dot and slash so tokens like "CI/CD" and "C++" survive.
	phrasePunct = regexp.MustCompile(`[^A-Za-z0-9\s\-\+\./]`)

	// capitalizedToken matches product-like tokens: uppercase start, length
	// three or more, digits/plus/hyphen allowed.
	capitalizedToken = regexp.MustCompile(`\b[A-Z][a-zA-Z0-9\+\-]{2,}\b`)
)

// ExtractTerms derives the deduplicated, sorted term set for a block of text.
// Three detectors run over the same input and their outputs are unioned:
// contiguous word windows of length one to three, bare uppercase acronyms,
// and capitalized product-like tokens. Output is case-preserving; any term
// whose lowercase form is a stopword is excluded. The result is a pure
// function of the input text.
func ExtractTerms(text string) []string {
	combined := extractPhrases(text)
	for _, acronym := range acronymToken.FindAllString(text, -1) {
		combined[acronym] = true
	}
	for _, token := range capitalizedToken.FindAllString(text, -1) {
		if !stopwords[strings.ToLower(token)] {
			combined[token] = true
		}
	}

	terms := make([]string, 0, len(combined))
	for term := range combined {
		term = strings.TrimSpace(term)
		if term == "" || stopwords[strings.ToLower(term)] {
			continue
		}
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return dedupe(terms)
}

// extractPhrases generates all 1-3 word windows over the whitespace-split
// token stream, discarding windows that touch a stopword, match a junk
// phrase, or are shorter than two characters.
func extractPhrases(text string) map[string]bool {
	cleaned := phrasePunct.ReplaceAllString(text, " ")
	words := strings.Fields(cleaned)

	phrases := make(map[string]bool)
	for i := range words {
		for window := 1; window <= 3; window++ {
			if i+window > len(words) {
				continue
			}
			chunk := words[i : i+window]
			if containsStopword(chunk) {
				continue
			}
			phrase := strings.Join(chunk, " ")
			lower := strings.ToLower(phrase)
			if junkPhrases[lower] || len(lower) < 2 {
				continue
			}
			phrases[phrase] = true
		}
	}
	return phrases
}

func containsStopword(chunk []string) bool {
	for _, word := range chunk {
		if stopwords[strings.ToLower(word)] {
			return true
		}
	}
	return false
}

// IsStopword reports whether the word's lowercase form is in the stopword set.
func IsStopword(word string) bool {
	return stopwords[strings.ToLower(word)]
}

// dedupe removes adjacent duplicates from a sorted slice.
func dedupe(sorted []string) []string {
	out := sorted[:0]
	for i, term := range sorted {
		if i == 0 || term != sorted[i-1] {
			out = append(out, term)
		}
	}
	return out
}
