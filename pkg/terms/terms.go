// Package terms normalizes free text into candidate keywords and implements
// the keyword-overlap relevance test used by the retrieval strategies.
//
// Extraction is deliberately cheap and recall-oriented: lower-case, strip
// punctuation, split on whitespace, drop short tokens. Precision is recovered
// downstream by exact-match lookups against stored facts.
package terms

import (
	"regexp"
	"strings"
)

// MinTermLength is the exclusive lower bound on token length; tokens of this
// length or shorter are discarded.
const MinTermLength = 3

var nonWord = regexp.MustCompile(`[^\w\s]`)

// Extract normalizes text into candidate keywords: lower-cased, punctuation
// stripped, whitespace-split, tokens of length <= MinTermLength dropped.
// Duplicates are removed; first-seen order is preserved. Deterministic and
// pure.
func Extract(text string) []string {
	cleaned := nonWord.ReplaceAllString(strings.ToLower(text), " ")

	var out []string
	seen := make(map[string]struct{})
	for _, word := range strings.Fields(cleaned) {
		if len(word) <= MinTermLength {
			continue
		}
		if _, ok := seen[word]; ok {
			continue
		}
		seen[word] = struct{}{}
		out = append(out, word)
	}
	return out
}

// IsRelevant reports whether query and text share at least one extracted
// keyword. This is the only relevance signal the FAQ matcher uses.
func IsRelevant(query, text string) bool {
	textTerms := make(map[string]struct{})
	for _, term := range Extract(text) {
		textTerms[term] = struct{}{}
	}
	for _, term := range Extract(query) {
		if _, ok := textTerms[term]; ok {
			return true
		}
	}
	return false
}
