package freq

import "sort"

// Table accumulates term occurrence counts in a single pass while
// remembering first-insertion order. The order matters twice downstream:
// top-N ties resolve to the earlier-seen term, and gap examples are
// reported in encounter order.
type Table struct {
	counts map[string]int
	order  []string
}

// New creates an empty frequency table.
func New() *Table {
	return &Table{counts: make(map[string]int)}
}

// Add records one occurrence of term.
func (t *Table) Add(term string) {
	if term == "" {
		return
	}
	if _, seen := t.counts[term]; !seen {
		t.order = append(t.order, term)
	}
	t.counts[term]++
}

// AddAll records every term in the sequence.
func (t *Table) AddAll(terms []string) {
	for _, term := range terms {
		t.Add(term)
	}
}

// Count returns the occurrence count for term, zero if absent.
func (t *Table) Count(term string) int {
	return t.counts[term]
}

// Unique returns the number of distinct terms.
func (t *Table) Unique() int {
	return len(t.counts)
}

// Total returns the sum of all occurrence counts.
func (t *Table) Total() int {
	var sum int
	for _, c := range t.counts {
		sum += c
	}
	return sum
}

// Terms returns all distinct terms in first-insertion order.
func (t *Table) Terms() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Entry pairs a term with its count.
type Entry struct {
	Term  string
	Count int
}

// Top returns the n most frequent terms, count descending. Equal counts
// keep first-insertion order.
func (t *Table) Top(n int) []Entry {
	entries := make([]Entry, 0, len(t.order))
	for _, term := range t.order {
		entries = append(entries, Entry{Term: term, Count: t.counts[term]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// Singletons reports how many terms occur exactly once, plus up to max
// example terms in encounter order.
func (t *Table) Singletons(max int) (int, []string) {
	count := 0
	examples := []string{}
	for _, term := range t.order {
		if t.counts[term] != 1 {
			continue
		}
		count++
		if max <= 0 || len(examples) < max {
			examples = append(examples, term)
		}
	}
	return count, examples
}
