package cluster

import (
	"reflect"
	"testing"

	"github.com/cognicore/themex/pkg/themex/freq"
	"github.com/cognicore/themex/pkg/themex/rank"
)

func table(counts map[string]int) *freq.Table {
	t := freq.New()
	for term, c := range counts {
		for i := 0; i < c; i++ {
			t.Add(term)
		}
	}
	return t
}

func theme(term string, related ...string) rank.Theme {
	th := rank.Theme{Term: term, RelatedTerms: []rank.Related{}}
	for i, r := range related {
		th.RelatedTerms = append(th.RelatedTerms, rank.Related{Term: r, Strength: len(related) - i})
	}
	return th
}

func TestBuildBasic(t *testing.T) {
	themes := []rank.Theme{
		theme("participation", "democracy", "requires", "strengthens"),
	}
	counts := table(map[string]int{
		"participation": 3, "democracy": 2, "requires": 1, "strengthens": 1,
	})

	clusters := Build(themes, counts)
	if len(clusters) != 1 {
		t.Fatalf("clusters length = %d, want 1", len(clusters))
	}
	got := clusters[0]
	if got.CentralTerm != "participation" {
		t.Errorf("central = %s, want participation", got.CentralTerm)
	}
	if !reflect.DeepEqual(got.RelatedTerms, []string{"democracy", "requires", "strengthens"}) {
		t.Errorf("related = %v", got.RelatedTerms)
	}
	if got.Cohesion != 4 {
		t.Errorf("cohesion = %d, want 4", got.Cohesion)
	}
	if got.TotalMentions != 7 {
		t.Errorf("total mentions = %d, want 7", got.TotalMentions)
	}
}

func TestBuildSkipsThemesWithoutNeighbors(t *testing.T) {
	themes := []rank.Theme{theme("isolated")}
	if got := Build(themes, table(map[string]int{"isolated": 4})); len(got) != 0 {
		t.Errorf("expected no clusters, got %v", got)
	}
}

func TestBuildTruncatesRelated(t *testing.T) {
	themes := []rank.Theme{theme("hub", "one", "two", "three", "four", "five")}
	clusters := Build(themes, table(map[string]int{"hub": 2}))

	if len(clusters[0].RelatedTerms) != RelatedLimit {
		t.Errorf("related length = %d, want %d", len(clusters[0].RelatedTerms), RelatedLimit)
	}
	if clusters[0].Cohesion != RelatedLimit+1 {
		t.Errorf("cohesion = %d, want %d", clusters[0].Cohesion, RelatedLimit+1)
	}
}

func TestBuildStopsAtMaxClusters(t *testing.T) {
	var themes []rank.Theme
	for _, term := range []string{"aaa", "bbb", "ccc", "ddd", "eee", "fff", "ggg"} {
		themes = append(themes, theme(term, "shared"))
	}
	clusters := Build(themes, table(map[string]int{"shared": 1}))

	if len(clusters) != MaxClusters {
		t.Errorf("clusters length = %d, want %d", len(clusters), MaxClusters)
	}
}

func TestBuildDeduplicatesCentralTermsOnly(t *testing.T) {
	themes := []rank.Theme{
		theme("alpha", "bravo"),
		theme("alpha", "charlie"), // duplicate central term, skipped
		theme("delta", "bravo"),   // bravo may recur as a related member
	}
	clusters := Build(themes, table(map[string]int{"alpha": 2, "bravo": 1, "delta": 1}))

	if len(clusters) != 2 {
		t.Fatalf("clusters length = %d, want 2", len(clusters))
	}
	if clusters[0].CentralTerm != "alpha" || clusters[1].CentralTerm != "delta" {
		t.Errorf("centrals = %s, %s", clusters[0].CentralTerm, clusters[1].CentralTerm)
	}
	if clusters[1].RelatedTerms[0] != "bravo" {
		t.Error("related terms are not deduplicated across clusters")
	}
}
