// Package view turns recipes and the current selection into display
// models for the recipe picker.
//
// Everything here is a pure function of its inputs. The package never
// stores a selection; it derives the next one from the one it is given
// and hands it back through a callback.
package view

import (
	"fmt"
	"slices"

	"github.com/hammamikhairi/recipepick/internal/domain"
)

// Note labels, in display order.
const (
	LabelTips                   = "Tips"
	LabelVariations             = "Variations"
	LabelServingSuggestions     = "Serving Suggestions"
	LabelNutritionalInformation = "Nutritional Information"
)

// ToggleFunc receives the ID of the recipe whose toggle was activated.
type ToggleFunc func(id string)

// Note is one labeled line of additional information. Value may be empty.
type Note struct {
	Label string
	Value string
}

// Card is the display model for a single recipe.
type Card struct {
	RecipeID     string
	Name         string
	Selected     bool
	Ingredients  []string
	Tags         []string
	Instructions []string
	Notes        []Note

	onToggle ToggleFunc
}

// NewCard builds the card for r. Selected reports whether r.ID is in
// selectedIDs. onToggle may be nil, in which case Toggle does nothing.
func NewCard(r domain.Recipe, selectedIDs []string, onToggle ToggleFunc) Card {
	c := Card{
		RecipeID:     r.ID,
		Name:         r.Name,
		Selected:     slices.Contains(selectedIDs, r.ID),
		Ingredients:  make([]string, len(r.Ingredients)),
		Tags:         slices.Clone(r.DietaryPreference),
		Instructions: make([]string, len(r.Instructions)),
		Notes:        Notes(r.AdditionalInformation),
		onToggle:     onToggle,
	}
	for i, ing := range r.Ingredients {
		c.Ingredients[i] = FormatIngredient(ing)
	}
	for i, step := range r.Instructions {
		c.Instructions[i] = FormatInstruction(i, step)
	}
	return c
}

// Toggle requests a selection change for this card's recipe. The card
// itself does not flip Selected; a fresh render does.
func (c Card) Toggle() {
	if c.onToggle != nil {
		c.onToggle(c.RecipeID)
	}
}

// FormatIngredient renders "name (quantity)", or just "name" when no
// quantity is given.
func FormatIngredient(ing domain.Ingredient) string {
	if ing.Quantity == "" {
		return ing.Name
	}
	return fmt.Sprintf("%s (%s)", ing.Name, ing.Quantity)
}

// FormatInstruction renders the 0-based step idx as a numbered line.
func FormatInstruction(idx int, step string) string {
	return fmt.Sprintf("%d. %s", idx+1, step)
}

// Notes returns all four additional-information fields in display order.
// Empty fields are kept so every card has the same layout.
func Notes(info domain.AdditionalInfo) []Note {
	return []Note{
		{Label: LabelTips, Value: info.Tips},
		{Label: LabelVariations, Value: info.Variations},
		{Label: LabelServingSuggestions, Value: info.ServingSuggestions},
		{Label: LabelNutritionalInformation, Value: info.NutritionalInformation},
	}
}
