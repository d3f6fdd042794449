package cooccur

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultWindow is the proximity radius in characters. It is wider than
// the context-snippet window on purpose; the two are independent knobs.
const DefaultWindow = 100

// Graph is a symmetric weighted co-occurrence graph stored as a two-level
// ordered map. Every update goes through Increment, which mirrors both
// directions, so graph[a][b] == graph[b][a] holds structurally. Neighbor
// order is first-increment order, which keeps ranked ties stable.
type Graph struct {
	nodes map[string]*neighborSet
	order []string
}

type neighborSet struct {
	counts map[string]int
	order  []string
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{nodes: make(map[string]*neighborSet)}
}

// Increment adds one co-occurrence between a and b in both directions.
func (g *Graph) Increment(a, b string) {
	if a == "" || b == "" || a == b {
		return
	}
	g.node(a).inc(b)
	g.node(b).inc(a)
}

func (g *Graph) node(term string) *neighborSet {
	ns, ok := g.nodes[term]
	if !ok {
		ns = &neighborSet{counts: make(map[string]int)}
		g.nodes[term] = ns
		g.order = append(g.order, term)
	}
	return ns
}

func (ns *neighborSet) inc(term string) {
	if _, seen := ns.counts[term]; !seen {
		ns.order = append(ns.order, term)
	}
	ns.counts[term]++
}

// Count returns the co-occurrence count between a and b.
func (g *Graph) Count(a, b string) int {
	ns, ok := g.nodes[a]
	if !ok {
		return 0
	}
	return ns.counts[b]
}

// Terms returns every term with at least one neighbor, in the order each
// first entered the graph.
func (g *Graph) Terms() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// Neighbor pairs a co-occurring term with its count.
type Neighbor struct {
	Term  string
	Count int
}

// Top returns term's n strongest neighbors, count descending. Equal counts
// keep first-increment order.
func (g *Graph) Top(term string, n int) []Neighbor {
	ns, ok := g.nodes[term]
	if !ok {
		return nil
	}
	out := make([]Neighbor, 0, len(ns.order))
	for _, t := range ns.order {
		out = append(out, Neighbor{Term: t, Count: ns.counts[t]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// Build scans text for whole-word, case-insensitive occurrences of each
// significant term and counts every later-listed term appearing as a
// substring inside the surrounding window. Repeated windows of the same
// pair accumulate; nothing is deduplicated per document.
func Build(text string, terms []string, window int) *Graph {
	if window <= 0 {
		window = DefaultWindow
	}

	lower := strings.ToLower(text)
	g := NewGraph()

	for i, term := range terms {
		if term == "" {
			continue
		}
		for _, pos := range wordPositions(lower, term) {
			start := pos - window
			if start < 0 {
				start = 0
			}
			end := pos + window
			if end > len(lower) {
				end = len(lower)
			}
			windowText := lower[start:end]
			for _, other := range terms[i+1:] {
				if other == "" {
					continue
				}
				if strings.Contains(windowText, other) {
					g.Increment(term, other)
				}
			}
		}
	}

	return g
}

// wordPositions returns the byte offsets of all non-overlapping whole-word
// occurrences of term in text. Candidates glued to letters or digits are
// skipped.
func wordPositions(text, term string) []int {
	var out []int
	pos := 0
	for pos <= len(text)-len(term) {
		idx := strings.Index(text[pos:], term)
		if idx < 0 {
			break
		}
		at := pos + idx
		if wholeWordAt(text, at, at+len(term)) {
			out = append(out, at)
			pos = at + len(term)
		} else {
			pos = at + 1
		}
	}
	return out
}

func wholeWordAt(text string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(text[:start])
		if isWordRune(r) {
			return false
		}
	}
	if end < len(text) {
		r, _ := utf8.DecodeRuneInString(text[end:])
		if isWordRune(r) {
			return false
		}
	}
	return true
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
