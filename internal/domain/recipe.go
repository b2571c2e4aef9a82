// Package domain defines the core types and interfaces for the recipe picker.
// All other packages depend on domain; domain depends on nothing.
package domain

// Recipe is a single generated recipe suggestion. Recipes are supplied by
// the caller and are never modified by the picker.
type Recipe struct {
	ID                    string         `json:"id"`
	Name                  string         `json:"name"`
	Ingredients           []Ingredient   `json:"ingredients"`
	DietaryPreference     []string       `json:"dietaryPreference"`
	Instructions          []string       `json:"instructions"`
	AdditionalInformation AdditionalInfo `json:"additionalInformation"`
}

// Ingredient is an ingredient name with an optional free-text quantity
// ("1 tsp", "2 cups"). An empty Quantity means none was given.
type Ingredient struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity,omitempty"`
}

// AdditionalInfo holds the supplementary notes shown under each recipe.
// Any field may be empty.
type AdditionalInfo struct {
	Tips                   string `json:"tips,omitempty"`
	Variations             string `json:"variations,omitempty"`
	ServingSuggestions     string `json:"servingSuggestions,omitempty"`
	NutritionalInformation string `json:"nutritionalInformation,omitempty"`
}
