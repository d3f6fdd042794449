package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/cognicore/themex/pkg/themex/store"
)

// Store is an in-memory implementation of store.Store for tests and
// short-lived runs.
type Store struct {
	mu       sync.RWMutex
	analyses map[string]store.Analysis
	order    []string
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{analyses: make(map[string]store.Analysis)}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// SaveAnalysis inserts or replaces an analysis record, keyed by ID.
func (s *Store) SaveAnalysis(ctx context.Context, a store.Analysis) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.analyses[a.ID]; !ok {
		s.order = append(s.order, a.ID)
	}
	s.analyses[a.ID] = copyAnalysis(a)
	return nil
}

// GetAnalysis returns the record with the given id.
func (s *Store) GetAnalysis(ctx context.Context, id string) (store.Analysis, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.analyses[id]
	if !ok {
		return store.Analysis{}, false, nil
	}
	return copyAnalysis(a), true, nil
}

// ListAnalyses returns up to limit records ordered by creation time, then id.
func (s *Store) ListAnalyses(ctx context.Context, limit int) ([]store.Analysis, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]store.Analysis, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, copyAnalysis(s.analyses[id]))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// TopThemes sums dominant-theme frequencies across every archived analysis
// and returns the strongest terms, frequency descending, term ascending on
// ties.
func (s *Store) TopThemes(ctx context.Context, limit int) ([]store.ThemeTotal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	totals := make(map[string]int)
	for _, id := range s.order {
		for _, th := range s.analyses[id].Themes {
			totals[th.Term] += th.Frequency
		}
	}

	out := make([]store.ThemeTotal, 0, len(totals))
	for term, total := range totals {
		out = append(out, store.ThemeTotal{Term: term, TotalFrequency: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalFrequency == out[j].TotalFrequency {
			return out[i].Term < out[j].Term
		}
		return out[i].TotalFrequency > out[j].TotalFrequency
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func copyAnalysis(a store.Analysis) store.Analysis {
	out := a
	out.Themes = make([]store.ThemeEntry, len(a.Themes))
	copy(out.Themes, a.Themes)
	out.Payload = make([]byte, len(a.Payload))
	copy(out.Payload, a.Payload)
	return out
}
