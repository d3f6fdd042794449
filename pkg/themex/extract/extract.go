package extract

import "strings"

// MinTermLength is the shortest run of letters kept as a term.
const MinTermLength = 3

// Extractor normalizes raw text into an ordered sequence of candidate
// terms: lowercase maximal runs of alphabet letters, length-filtered and
// stopword-filtered. The alphabet and stoplist are fixed at construction.
type Extractor struct {
	stopwords map[string]struct{}
	extras    map[rune]struct{}
}

// New creates an extractor for the given alphabet extension and stopword
// list. extraLetters holds the accented characters accepted in addition to
// the base a-z range.
func New(extraLetters string, stopwords []string) *Extractor {
	stops := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		stops[strings.ToLower(w)] = struct{}{}
	}
	extras := make(map[rune]struct{}, len(extraLetters))
	for _, r := range strings.ToLower(extraLetters) {
		extras[r] = struct{}{}
	}
	return &Extractor{stopwords: stops, extras: extras}
}

// Terms splits text into filtered terms. The output is ordered,
// non-deduplicated and identical for identical input.
func (e *Extractor) Terms(text string) []string {
	var terms []string
	var current []rune

	for _, r := range strings.ToLower(text) {
		if e.inAlphabet(r) {
			current = append(current, r)
			continue
		}
		if term := e.accept(current); term != "" {
			terms = append(terms, term)
		}
		current = current[:0]
	}
	if term := e.accept(current); term != "" {
		terms = append(terms, term)
	}

	return terms
}

func (e *Extractor) inAlphabet(r rune) bool {
	if r >= 'a' && r <= 'z' {
		return true
	}
	_, ok := e.extras[r]
	return ok
}

// accept applies the length and stopword filters to a finished run.
func (e *Extractor) accept(run []rune) string {
	if len(run) < MinTermLength {
		return ""
	}
	term := string(run)
	if _, stop := e.stopwords[term]; stop {
		return ""
	}
	return term
}

// IsStopword reports whether the extractor filters the given word.
func (e *Extractor) IsStopword(word string) bool {
	_, ok := e.stopwords[strings.ToLower(word)]
	return ok
}
