package domain

import "context"

// RecipeSource provides the recipe suggestions to choose from.
// Implementations can be in-memory (hardcoded), file-based, or
// backed by whatever generated the suggestions.
type RecipeSource interface {
	List(ctx context.Context) ([]Recipe, error)
	Get(ctx context.Context, id string) (*Recipe, error)
}

// SelectionStore holds the current selection on behalf of the screen that
// owns it. The picker only reads from it and writes whole new selections
// back; it never edits a stored slice in place.
type SelectionStore interface {
	Save(ctx context.Context, ids []string) error
	Load(ctx context.Context) ([]string, error)
}
