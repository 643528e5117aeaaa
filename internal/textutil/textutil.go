package textutil

import (
	"regexp"
	"strings"
)

var sentenceEnd = regexp.MustCompile(`[.!?]+`)

// SplitSentences splits text on terminal punctuation, returning trimmed pieces
// strictly longer than minLen characters.
func SplitSentences(text string, minLen int) []string {
	parts := sentenceEnd.Split(text, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if len(p) > minLen {
			out = append(out, p)
		}
	}
	return out
}

// ContainsAny reports whether the lowercased text contains any of the keywords.
func ContainsAny(text string, keywords []string) bool {
	l := strings.ToLower(text)
	for _, k := range keywords {
		if strings.Contains(l, k) {
			return true
		}
	}
	return false
}

// CountMatches counts how many of the keywords occur in the lowercased text.
// Each keyword counts once regardless of repetition.
func CountMatches(text string, keywords []string) int {
	l := strings.ToLower(text)
	n := 0
	for _, k := range keywords {
		if strings.Contains(l, k) {
			n++
		}
	}
	return n
}

// Truncate hard-cuts s to max characters, not sentence-aware.
func Truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

// Dedupe returns unique, non-empty, trimmed strings in first-seen order.
func Dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, it := range items {
		it = strings.TrimSpace(it)
		if it == "" {
			continue
		}
		if _, ok := seen[it]; ok {
			continue
		}
		seen[it] = struct{}{}
		out = append(out, it)
	}
	return out
}
