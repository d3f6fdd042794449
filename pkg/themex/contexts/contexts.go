package contexts

import (
	"strings"
	"unicode/utf8"
)

const (
	// DefaultWindow is the number of characters kept on each side of a match.
	DefaultWindow = 50

	// MaxPerTerm caps how many snippets are stored for one term.
	MaxPerTerm = 3
)

// Sample extracts bounded text windows around occurrences of each term.
// The scan is case-insensitive and non-overlapping: after a match it
// resumes immediately past the matched term. Snippets keep the original
// casing, are clipped to document bounds and whitespace-trimmed, and are
// stored in document order.
func Sample(text string, terms []string, window, maxPerTerm int) map[string][]string {
	if window <= 0 {
		window = DefaultWindow
	}
	if maxPerTerm <= 0 {
		maxPerTerm = MaxPerTerm
	}

	lower := strings.ToLower(text)
	out := make(map[string][]string, len(terms))

	for _, term := range terms {
		if term == "" {
			continue
		}
		var snippets []string
		pos := 0
		for len(snippets) < maxPerTerm {
			idx := strings.Index(lower[pos:], term)
			if idx < 0 {
				break
			}
			at := pos + idx
			snippets = append(snippets, snippet(text, at-window, at+len(term)+window))
			pos = at + len(term)
		}
		if len(snippets) > 0 {
			out[term] = snippets
		}
	}

	return out
}

// snippet slices text between the given byte offsets, clamped to the
// document bounds and to rune boundaries.
func snippet(text string, start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > len(text) {
		end = len(text)
	}
	for start < len(text) && !utf8.RuneStart(text[start]) {
		start++
	}
	for end > start && end < len(text) && !utf8.RuneStart(text[end]) {
		end--
	}
	return strings.TrimSpace(text[start:end])
}
