// Package analysis turns a free-text dream narrative into structured
// signals: a dominant emotion, theme tags, a lucidity estimate, and a
// complexity score. Every extractor is a pure function of the text plus a
// static keyword table — no I/O, no state, deterministic output.
package analysis

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	// allowedRe keeps word characters, whitespace, and basic punctuation.
	allowedRe = regexp.MustCompile(`[^\w\s.,!?;:\-'"()]`)
	wordRe    = regexp.MustCompile(`[a-zA-Z]+`)
)

// CleanText normalizes a narrative for storage: runs of whitespace collapse
// to a single space and characters outside the basic punctuation set are
// stripped.
func CleanText(text string) string {
	if text == "" {
		return ""
	}
	text = whitespaceRe.ReplaceAllString(strings.TrimSpace(text), " ")
	return allowedRe.ReplaceAllString(text, "")
}

// minKeywordLength is the shortest token ExtractKeywords will keep.
const minKeywordLength = 3

// ExtractKeywords returns the distinct lower-cased alphabetic tokens of the
// text, stop-words removed, in order of first occurrence.
func ExtractKeywords(text string) []string {
	words := wordRe.FindAllString(strings.ToLower(text), -1)

	seen := make(map[string]struct{}, len(words))
	var keywords []string
	for _, w := range words {
		if len(w) < minKeywordLength {
			continue
		}
		if _, stop := stopWords[w]; stop {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		keywords = append(keywords, w)
	}
	return keywords
}
