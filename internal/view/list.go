package view

import (
	"slices"

	"github.com/hammamikhairi/recipepick/internal/domain"
)

// SelectionFunc receives the complete selection after a toggle.
type SelectionFunc func(selectedIDs []string)

// Toggle returns the selection with id flipped: removed if present,
// appended otherwise. The input slice is never modified.
func Toggle(selectedIDs []string, id string) []string {
	if slices.Contains(selectedIDs, id) {
		out := make([]string, 0, len(selectedIDs)-1)
		for _, s := range selectedIDs {
			if s != id {
				out = append(out, s)
			}
		}
		return out
	}
	out := make([]string, len(selectedIDs), len(selectedIDs)+1)
	copy(out, selectedIDs)
	return append(out, id)
}

// Render builds one card per recipe, in input order. The cards are not
// wired to any callback; use a List for that.
func Render(recipes []domain.Recipe, selectedIDs []string) []Card {
	return render(recipes, selectedIDs, nil)
}

func render(recipes []domain.Recipe, selectedIDs []string, onToggle ToggleFunc) []Card {
	cards := make([]Card, len(recipes))
	for i, r := range recipes {
		cards[i] = NewCard(r, selectedIDs, onToggle)
	}
	return cards
}

// List coordinates a set of cards with the selection sink owned by the
// caller. A List is built for one render: it keeps the inputs it was given
// and never updates them, so callers rebuild it whenever the recipes or
// the selection change.
type List struct {
	recipes           []domain.Recipe
	selectedIDs       []string
	onSelectionChange SelectionFunc
}

// NewList creates a coordinator. onSelectionChange may be nil.
func NewList(recipes []domain.Recipe, selectedIDs []string, onSelectionChange SelectionFunc) *List {
	return &List{
		recipes:           recipes,
		selectedIDs:       selectedIDs,
		onSelectionChange: onSelectionChange,
	}
}

// Cards renders the cards with their toggles wired to HandleToggle.
func (l *List) Cards() []Card {
	return render(l.recipes, l.selectedIDs, l.HandleToggle)
}

// Len returns the number of recipes in the list.
func (l *List) Len() int { return len(l.recipes) }

// HandleToggle computes the next selection for id and passes it to the
// sink, once per call.
func (l *List) HandleToggle(id string) {
	next := Toggle(l.selectedIDs, id)
	if l.onSelectionChange != nil {
		l.onSelectionChange(next)
	}
}
