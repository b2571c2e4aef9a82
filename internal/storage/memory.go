// Package storage provides selection persistence implementations.
package storage

import (
	"context"
	"slices"
	"sync"

	"github.com/hammamikhairi/recipepick/internal/domain"
	"github.com/hammamikhairi/recipepick/internal/logger"
)

// Compile-time interface check.
var _ domain.SelectionStore = (*MemoryStore)(nil)

// MemoryStore keeps the current selection in memory. Safe for concurrent
// access. Slices are copied on the way in and out.
type MemoryStore struct {
	mu       sync.RWMutex
	selected []string
	saves    int
	log      *logger.Logger
}

// NewMemoryStore creates a store holding a copy of initial.
func NewMemoryStore(log *logger.Logger, initial []string) *MemoryStore {
	return &MemoryStore{
		selected: slices.Clone(initial),
		log:      log,
	}
}

// Save replaces the stored selection.
func (s *MemoryStore) Save(ctx context.Context, ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.log.Debug("saving selection %v (was %v)", ids, s.selected)
	s.selected = slices.Clone(ids)
	s.saves++
	return nil
}

// Load returns the stored selection. The result is never nil.
func (s *MemoryStore) Load(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, len(s.selected))
	copy(out, s.selected)
	return out, nil
}

// Saves returns how many times Save has been called.
func (s *MemoryStore) Saves() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saves
}

// Normalize drops duplicate IDs and IDs not present in recipes, keeping
// the first occurrence of each. Dropped IDs are returned separately.
func Normalize(ids []string, recipes []domain.Recipe) (kept, dropped []string) {
	known := make(map[string]struct{}, len(recipes))
	for _, r := range recipes {
		known[r.ID] = struct{}{}
	}
	seen := make(map[string]struct{}, len(ids))
	kept = make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := known[id]; !ok {
			dropped = append(dropped, id)
			continue
		}
		if _, dup := seen[id]; dup {
			dropped = append(dropped, id)
			continue
		}
		seen[id] = struct{}{}
		kept = append(kept, id)
	}
	return kept, dropped
}
