package store

import (
	"context"
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Store archives analysis results across runs. Analysis itself never needs
// one; the archive exists so batch runs can be queried later without
// re-reading the output files.
type Store interface {
	Close() error

	SaveAnalysis(ctx context.Context, a Analysis) error
	GetAnalysis(ctx context.Context, id string) (Analysis, bool, error)
	ListAnalyses(ctx context.Context, limit int) ([]Analysis, error)
	TopThemes(ctx context.Context, limit int) ([]ThemeTotal, error)
}

// Analysis is one archived analysis record.
type Analysis struct {
	ID          string
	SourceFile  string
	CreatedAt   time.Time
	UniqueTerms int
	TotalTerms  int
	Themes      []ThemeEntry
	Payload     []byte // the full JSON record as written to disk
}

// ThemeEntry is one dominant theme of an archived analysis.
type ThemeEntry struct {
	Term      string
	Frequency int
}

// ThemeTotal is one entry of the archive-wide theme aggregation.
type ThemeTotal struct {
	Term           string
	TotalFrequency int
}

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(rand.Reader, 0)
)

// NewID returns a lexicographically sortable unique analysis id.
func NewID() string {
	entropyMu.Lock()
	defer entropyMu.Unlock()
	return ulid.MustNew(ulid.Now(), entropy).String()
}
