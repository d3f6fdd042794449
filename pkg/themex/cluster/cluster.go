package cluster

import (
	"github.com/cognicore/themex/pkg/themex/freq"
	"github.com/cognicore/themex/pkg/themex/rank"
)

const (
	// WalkDepth is how far down the ranked theme list clustering looks.
	WalkDepth = 20

	// RelatedLimit caps the members attached to one central term.
	RelatedLimit = 3

	// MaxClusters caps the produced cluster list.
	MaxClusters = 5
)

// Cluster groups a central term with its strongest co-occurring neighbors.
type Cluster struct {
	CentralTerm   string   `json:"central_term"`
	RelatedTerms  []string `json:"related_terms"`
	Cohesion      int      `json:"cohesion"`
	TotalMentions int      `json:"total_mentions"`
}

// Build walks the ranked themes in importance order and forms a cluster
// around each theme that has neighbors. Only central terms are
// deduplicated; a term may recur as a related member of several clusters.
func Build(themes []rank.Theme, table *freq.Table) []Cluster {
	clusters := []Cluster{}
	used := make(map[string]struct{})

	depth := WalkDepth
	if len(themes) < depth {
		depth = len(themes)
	}

	for _, th := range themes[:depth] {
		if len(clusters) >= MaxClusters {
			break
		}
		if _, ok := used[th.Term]; ok {
			continue
		}
		if len(th.RelatedTerms) == 0 {
			continue
		}

		related := th.RelatedTerms
		if len(related) > RelatedLimit {
			related = related[:RelatedLimit]
		}

		members := make([]string, len(related))
		mentions := table.Count(th.Term)
		for i, r := range related {
			members[i] = r.Term
			mentions += table.Count(r.Term)
		}

		clusters = append(clusters, Cluster{
			CentralTerm:   th.Term,
			RelatedTerms:  members,
			Cohesion:      len(members) + 1,
			TotalMentions: mentions,
		})
		used[th.Term] = struct{}{}
	}

	return clusters
}
