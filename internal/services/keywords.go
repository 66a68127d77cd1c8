package services

import (
	"regexp"
	"strings"
)

var wordPattern = regexp.MustCompile(`[a-z]+`)

// ExtractKeywords tokenizes text into normalized keywords. The input
// is lower-cased, maximal runs of ASCII letters become tokens (digits
// and punctuation separate tokens and are dropped), tokens shorter
// than 3 characters and stop-words are excluded. Duplicates are kept
// in order of appearance; callers that need a set use KeywordSet.
func ExtractKeywords(text string) []string {
	words := wordPattern.FindAllString(strings.ToLower(text), -1)

	var keywords []string
	for _, w := range words {
		if len(w) < 3 {
			continue
		}
		if _, stop := stopWords[w]; stop {
			continue
		}
		keywords = append(keywords, w)
	}
	return keywords
}

// KeywordSet collapses a keyword list into a set.
func KeywordSet(keywords []string) map[string]struct{} {
	set := make(map[string]struct{}, len(keywords))
	for _, k := range keywords {
		set[k] = struct{}{}
	}
	return set
}

func intersect(a, b map[string]struct{}) map[string]struct{} {
	if len(b) < len(a) {
		a, b = b, a
	}
	out := make(map[string]struct{})
	for k := range a {
		if _, ok := b[k]; ok {
			out[k] = struct{}{}
		}
	}
	return out
}
