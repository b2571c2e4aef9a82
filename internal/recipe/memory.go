// Package recipe provides recipe source implementations.
package recipe

import (
	"context"
	"fmt"
	"sync"

	"github.com/hammamikhairi/recipepick/internal/domain"
	"github.com/hammamikhairi/recipepick/internal/logger"
)

// Compile-time interface check.
var _ domain.RecipeSource = (*MemorySource)(nil)

// MemorySource holds recipes in memory in the order they were added.
// Safe for concurrent reads.
type MemorySource struct {
	mu      sync.RWMutex
	recipes []domain.Recipe
	index   map[string]int
	log     *logger.Logger
}

// NewMemorySource creates a source preloaded with the built-in sample
// suggestions.
func NewMemorySource(log *logger.Logger) *MemorySource {
	src, err := newSource(log, samples())
	if err != nil {
		// The samples are static; a failure here is a programming error.
		panic(fmt.Sprintf("recipe: invalid built-in samples: %v", err))
	}
	return src
}

// NewMemorySourceFrom creates a source holding exactly the given recipes.
// Recipes must have non-blank IDs and names, and IDs must be unique.
func NewMemorySourceFrom(log *logger.Logger, recipes []domain.Recipe) (*MemorySource, error) {
	return newSource(log, recipes)
}

func newSource(log *logger.Logger, recipes []domain.Recipe) (*MemorySource, error) {
	if err := validate(recipes); err != nil {
		return nil, err
	}
	src := &MemorySource{
		recipes: make([]domain.Recipe, len(recipes)),
		index:   make(map[string]int, len(recipes)),
		log:     log,
	}
	copy(src.recipes, recipes)
	for i, r := range src.recipes {
		src.index[r.ID] = i
	}
	log.Debug("loaded %d recipes", len(recipes))
	return src, nil
}

// List returns all recipes in their original order.
func (s *MemorySource) List(ctx context.Context) ([]domain.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	s.log.Debug("listing all recipes, count=%d", len(s.recipes))

	out := make([]domain.Recipe, len(s.recipes))
	copy(out, s.recipes)
	return out, nil
}

// Get returns a recipe by ID.
func (s *MemorySource) Get(ctx context.Context, id string) (*domain.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		s.log.Debug("recipe not found: %s", id)
		return nil, domain.ErrNotFound
	}
	r := s.recipes[i]
	return &r, nil
}

// validate checks the invariants every source guarantees to the picker.
func validate(recipes []domain.Recipe) error {
	if len(recipes) == 0 {
		return domain.ErrEmptySource
	}
	seen := make(map[string]struct{}, len(recipes))
	for i, r := range recipes {
		if r.ID == "" {
			return fmt.Errorf("recipe %d: blank id: %w", i, domain.ErrInvalidRecipe)
		}
		if r.Name == "" {
			return fmt.Errorf("recipe %q: blank name: %w", r.ID, domain.ErrInvalidRecipe)
		}
		if _, dup := seen[r.ID]; dup {
			return fmt.Errorf("recipe %q: %w", r.ID, domain.ErrDuplicateID)
		}
		seen[r.ID] = struct{}{}
	}
	return nil
}
