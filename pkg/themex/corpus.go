package themex

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/cognicore/themex/internal/docs"
	"github.com/cognicore/themex/pkg/themex/internalerr"
)

// CorpusThemeLimit caps the combined cross-document theme ranking.
const CorpusThemeLimit = 20

// DocumentResult pairs one document with its analysis.
type DocumentResult struct {
	Filename string          `json:"filename"`
	Insights *AnalysisResult `json:"insights"`
}

// FailedDocument records a per-document failure inside a batch.
type FailedDocument struct {
	Filename string `json:"filename"`
	Error    string `json:"error"`
}

// ThemeCount is one entry of the combined corpus ranking.
type ThemeCount struct {
	Term           string `json:"term"`
	TotalFrequency int    `json:"total_frequency"`
}

// CorpusResult aggregates a batch run. Only the flat frequency sums of
// dominant themes are combined across documents; graphs, clusters and
// snippets stay per-document.
type CorpusResult struct {
	TotalDocuments     int              `json:"total_documents"`
	SuccessfulAnalyses int              `json:"successful_analyses"`
	Processed          []DocumentResult `json:"processed"`
	Failed             []FailedDocument `json:"failed"`
	TopThemes          []ThemeCount     `json:"top_themes_across_corpus"`
}

// AnalyzeFiles processes documents strictly sequentially, in the order
// given. A failing document lands in the failed list with its message and
// never aborts its siblings. Callers wanting reproducible output should
// hand in a sorted list.
func (a *Analyzer) AnalyzeFiles(paths []string) *CorpusResult {
	res := &CorpusResult{
		TotalDocuments: len(paths),
		Processed:      []DocumentResult{},
		Failed:         []FailedDocument{},
		TopThemes:      []ThemeCount{},
	}

	totals := make(map[string]int)
	var seen []string

	for _, path := range paths {
		name := filepath.Base(path)
		insights, err := a.AnalyzeFile(path)
		if err != nil {
			res.Failed = append(res.Failed, FailedDocument{Filename: name, Error: err.Error()})
			continue
		}
		res.Processed = append(res.Processed, DocumentResult{Filename: name, Insights: insights})

		// Only dominant themes feed the combined ranking.
		for _, th := range insights.DominantThemes {
			if _, ok := totals[th.Term]; !ok {
				seen = append(seen, th.Term)
			}
			totals[th.Term] += th.Frequency
		}
	}
	res.SuccessfulAnalyses = len(res.Processed)

	ranking := make([]ThemeCount, 0, len(seen))
	for _, term := range seen {
		ranking = append(ranking, ThemeCount{Term: term, TotalFrequency: totals[term]})
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].TotalFrequency > ranking[j].TotalFrequency
	})
	if len(ranking) > CorpusThemeLimit {
		ranking = ranking[:CorpusThemeLimit]
	}
	res.TopThemes = ranking

	return res
}

// AnalyzeDir analyzes every document in dir. Enumeration is sorted by
// filename so batch output is stable run to run.
func (a *Analyzer) AnalyzeDir(dir string) (*CorpusResult, error) {
	paths, err := docs.List(dir)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: no analyzable documents in %s", internalerr.ErrNotFound, dir)
	}
	return a.AnalyzeFiles(paths), nil
}
