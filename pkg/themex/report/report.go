package report

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/cognicore/themex/pkg/themex"
)

// contextLimit is how many sample contexts the report prints per theme.
// Narrower than the JSON record on purpose; the report is a summary.
const contextLimit = 2

// Render produces the human-readable markdown companion of an analysis
// record. Section order is fixed: corpus statistics, dominant themes,
// concept clusters, emerging themes, potential gaps.
func Render(res *themex.AnalysisResult, generatedAt time.Time) []byte {
	var b strings.Builder

	b.WriteString("# Theme Analysis Report\n\n")
	fmt.Fprintf(&b, "**Generated:** %s\n\n", generatedAt.Format("2006-01-02 15:04:05"))

	b.WriteString("## Corpus Statistics\n\n")
	fmt.Fprintf(&b, "- **Unique Terms:** %d\n", res.CorpusStats.UniqueTerms)
	fmt.Fprintf(&b, "- **Total Term Occurrences:** %d\n\n", res.CorpusStats.TotalTerms)

	b.WriteString("## Dominant Themes\n\n")
	for _, theme := range res.DominantThemes {
		fmt.Fprintf(&b, "### %s\n\n", titleCase(theme.Term))
		fmt.Fprintf(&b, "- **Frequency:** %d occurrences\n", theme.Frequency)
		fmt.Fprintf(&b, "- **Importance Score:** %.2f\n", theme.Importance)

		if len(theme.RelatedTerms) > 0 {
			b.WriteString("- **Related Terms:**\n")
			for _, rel := range theme.RelatedTerms {
				fmt.Fprintf(&b, "  - %s (co-occurs %d times)\n", rel.Term, rel.Strength)
			}
		}

		if len(theme.SampleContexts) > 0 {
			b.WriteString("\n**Sample Contexts:**\n")
			for i, ctx := range theme.SampleContexts {
				if i >= contextLimit {
					break
				}
				fmt.Fprintf(&b, "%d. \"...%s...\"\n\n", i+1, ctx)
			}
		}

		b.WriteString("\n---\n\n")
	}

	if len(res.ConceptClusters) > 0 {
		b.WriteString("## Concept Clusters\n\n")
		for _, cl := range res.ConceptClusters {
			fmt.Fprintf(&b, "### Cluster: %s\n\n", titleCase(cl.CentralTerm))
			fmt.Fprintf(&b, "- **Related Terms:** %s\n", strings.Join(cl.RelatedTerms, ", "))
			fmt.Fprintf(&b, "- **Total Mentions:** %d\n\n", cl.TotalMentions)
		}
	}

	if len(res.EmergingThemes) > 0 {
		b.WriteString("## Emerging Themes\n\n")
		for _, theme := range res.EmergingThemes {
			fmt.Fprintf(&b, "- **%s** (%d mentions)\n", titleCase(theme.Term), theme.Frequency)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Potential Research Gaps\n\n")
	fmt.Fprintf(&b, "Found **%d** terms mentioned only once.\n\n", res.PotentialGaps.Count)
	b.WriteString("Sample underrepresented topics:\n")
	for _, term := range res.PotentialGaps.Examples {
		fmt.Fprintf(&b, "- %s\n", term)
	}

	return []byte(b.String())
}

func titleCase(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
