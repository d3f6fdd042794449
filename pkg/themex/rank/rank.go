package rank

import (
	"math"
	"sort"

	"github.com/cognicore/themex/pkg/themex/cooccur"
	"github.com/cognicore/themex/pkg/themex/freq"
)

const (
	// Depth is how many of the most frequent terms are ranked at all.
	Depth = 30

	// DominantLimit caps the externally exposed dominant themes.
	DominantLimit = 5

	// EmergingMin and EmergingMax bound the frequency band, inclusive,
	// that qualifies a ranked theme as emerging.
	EmergingMin = 3
	EmergingMax = 10

	// EmergingLimit caps the emerging theme list.
	EmergingLimit = 5

	// RelatedLimit caps the co-occurring neighbors attached to a theme.
	RelatedLimit = 5

	// ContextLimit caps the sample contexts attached to a theme.
	ContextLimit = 3
)

// Related is a co-occurring neighbor with its co-occurrence strength.
type Related struct {
	Term     string `json:"term"`
	Strength int    `json:"strength"`
}

// Theme is one ranked term with its supporting evidence.
type Theme struct {
	Term           string    `json:"term"`
	Frequency      int       `json:"frequency"`
	Importance     float64   `json:"importance"`
	RelatedTerms   []Related `json:"related_terms"`
	SampleContexts []string  `json:"sample_contexts"`
}

// Importance scores a frequency with a diminishing-return correction:
// frequency * (1 + 1/(1+frequency)), rounded to two decimals. The score
// grows monotonically with frequency, so it reorders nothing; it only
// compresses the spread between heavy and light terms.
func Importance(frequency int) float64 {
	f := float64(frequency)
	return math.Round(f*(1+1/(1+f))*100) / 100
}

// Themes builds the ranked theme list: the Depth most frequent terms,
// sorted by importance descending. Equal importance keeps the frequency
// order. Neighbors and contexts are attached from the graph and sampler
// output.
func Themes(table *freq.Table, graph *cooccur.Graph, samples map[string][]string) []Theme {
	entries := table.Top(Depth)
	themes := make([]Theme, 0, len(entries))

	for _, e := range entries {
		th := Theme{
			Term:           e.Term,
			Frequency:      e.Count,
			Importance:     Importance(e.Count),
			RelatedTerms:   []Related{},
			SampleContexts: []string{},
		}
		for _, nb := range graph.Top(e.Term, RelatedLimit) {
			th.RelatedTerms = append(th.RelatedTerms, Related{Term: nb.Term, Strength: nb.Count})
		}
		ctxs := samples[e.Term]
		if len(ctxs) > ContextLimit {
			ctxs = ctxs[:ContextLimit]
		}
		th.SampleContexts = append(th.SampleContexts, ctxs...)
		themes = append(themes, th)
	}

	sort.SliceStable(themes, func(i, j int) bool {
		return themes[i].Importance > themes[j].Importance
	})

	return themes
}

// Dominant returns the top themes of the ranked list.
func Dominant(themes []Theme) []Theme {
	out := make([]Theme, 0, DominantLimit)
	for _, th := range themes {
		if len(out) >= DominantLimit {
			break
		}
		out = append(out, th)
	}
	return out
}

// Emerging returns ranked themes whose frequency falls inside the
// [EmergingMin, EmergingMax] band, preserving rank order.
func Emerging(themes []Theme) []Theme {
	out := make([]Theme, 0, EmergingLimit)
	for _, th := range themes {
		if th.Frequency < EmergingMin || th.Frequency > EmergingMax {
			continue
		}
		out = append(out, th)
		if len(out) >= EmergingLimit {
			break
		}
	}
	return out
}
