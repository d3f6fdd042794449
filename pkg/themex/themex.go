package themex

import (
	"path/filepath"

	"github.com/cognicore/themex/internal/docs"
	"github.com/cognicore/themex/pkg/themex/cluster"
	"github.com/cognicore/themex/pkg/themex/config"
	"github.com/cognicore/themex/pkg/themex/contexts"
	"github.com/cognicore/themex/pkg/themex/cooccur"
	"github.com/cognicore/themex/pkg/themex/extract"
	"github.com/cognicore/themex/pkg/themex/freq"
	"github.com/cognicore/themex/pkg/themex/rank"
)

const (
	// SignificantLimit is how many of the most frequent terms are eligible
	// for context sampling and co-occurrence analysis.
	SignificantLimit = 50

	// GapExampleLimit caps the example terms in a gap report.
	GapExampleLimit = 10
)

// Options configures an Analyzer. Zero values select the defaults the
// engine was tuned with.
type Options struct {
	Language      config.Language
	ContextWindow int
	CooccurWindow int
	Significant   int
}

// Analyzer runs the full theme extraction pipeline. It holds only fixed
// configuration; every analysis call builds and discards its own derived
// structures, so one Analyzer can serve any number of documents.
type Analyzer struct {
	extractor   *extract.Extractor
	ctxWindow   int
	coWindow    int
	significant int
}

// New creates an analyzer with the given options.
func New(opts Options) *Analyzer {
	lang := opts.Language
	if lang.IsZero() {
		lang = config.DefaultLanguage()
	}
	a := &Analyzer{
		extractor:   extract.New(lang.ExtraLetters, lang.Stopwords),
		ctxWindow:   opts.ContextWindow,
		coWindow:    opts.CooccurWindow,
		significant: opts.Significant,
	}
	if a.ctxWindow <= 0 {
		a.ctxWindow = contexts.DefaultWindow
	}
	if a.coWindow <= 0 {
		a.coWindow = cooccur.DefaultWindow
	}
	if a.significant <= 0 {
		a.significant = SignificantLimit
	}
	return a
}

// GapReport flags rarely-mentioned terms as potential coverage gaps.
type GapReport struct {
	Count    int      `json:"count"`
	Examples []string `json:"examples"`
}

// CorpusStatistics summarizes the document's vocabulary.
type CorpusStatistics struct {
	UniqueTerms int `json:"unique_terms"`
	TotalTerms  int `json:"total_terms"`
}

// AnalysisResult is the per-document output record. It contains no
// timestamps and no randomness: analyzing the same text twice produces
// byte-identical JSON.
type AnalysisResult struct {
	SourceFile      string            `json:"source_file"`
	DominantThemes  []rank.Theme      `json:"dominant_themes"`
	EmergingThemes  []rank.Theme      `json:"emerging_themes"`
	ConceptClusters []cluster.Cluster `json:"concept_clusters"`
	PotentialGaps   GapReport         `json:"potential_gaps"`
	CorpusStats     CorpusStatistics  `json:"corpus_statistics"`
}

// AnalyzeText runs the pipeline over already-loaded text. Empty text is
// not an error; it yields a well-formed result with zero counts.
func (a *Analyzer) AnalyzeText(text, sourceName string) *AnalysisResult {
	table := freq.New()
	table.AddAll(a.extractor.Terms(text))

	top := table.Top(a.significant)
	significant := make([]string, len(top))
	for i, e := range top {
		significant[i] = e.Term
	}

	samples := contexts.Sample(text, significant, a.ctxWindow, contexts.MaxPerTerm)
	graph := cooccur.Build(text, significant, a.coWindow)

	themes := rank.Themes(table, graph, samples)
	gapCount, gapExamples := table.Singletons(GapExampleLimit)

	return &AnalysisResult{
		SourceFile:      sourceName,
		DominantThemes:  rank.Dominant(themes),
		EmergingThemes:  rank.Emerging(themes),
		ConceptClusters: cluster.Build(themes, table),
		PotentialGaps:   GapReport{Count: gapCount, Examples: gapExamples},
		CorpusStats: CorpusStatistics{
			UniqueTerms: table.Unique(),
			TotalTerms:  table.Total(),
		},
	}
}

// AnalyzeFile loads a document, skips its metadata preamble and analyzes
// the remaining text.
func (a *Analyzer) AnalyzeFile(path string) (*AnalysisResult, error) {
	text, err := docs.Read(path)
	if err != nil {
		return nil, err
	}
	return a.AnalyzeText(docs.StripMetadata(text), filepath.Base(path)), nil
}
