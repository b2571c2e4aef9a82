package recipe

import "github.com/hammamikhairi/recipepick/internal/domain"

// samples are the suggestions shown when no recipe file is given.
func samples() []domain.Recipe {
	return []domain.Recipe{
		{
			ID:   "garlic-butter-pasta",
			Name: "Garlic Butter Pasta",
			Ingredients: []domain.Ingredient{
				{Name: "spaghetti", Quantity: "250 g"},
				{Name: "butter", Quantity: "3 tbsp"},
				{Name: "garlic", Quantity: "4 cloves"},
				{Name: "parmesan", Quantity: "1/2 cup"},
				{Name: "salt"},
				{Name: "black pepper"},
			},
			DietaryPreference: []string{"vegetarian"},
			Instructions: []string{
				"Boil water",
				"Add pasta and cook until al dente, reserving a cup of pasta water",
				"Melt butter in a pan and cook the minced garlic until fragrant",
				"Toss the pasta in the butter with parmesan, loosening with pasta water",
			},
			AdditionalInformation: domain.AdditionalInfo{
				Tips:               "Salt the water until it tastes like the sea.",
				Variations:         "Add chili flakes or lemon zest.",
				ServingSuggestions: "Serve with a green salad.",
			},
		},
		{
			ID:   "vegetable-stir-fry",
			Name: "Vegetable Stir Fry",
			Ingredients: []domain.Ingredient{
				{Name: "bell pepper", Quantity: "1 large"},
				{Name: "broccoli florets", Quantity: "2 cups"},
				{Name: "carrot", Quantity: "1 medium"},
				{Name: "soy sauce", Quantity: "2 tbsp"},
				{Name: "sesame oil", Quantity: "1 tbsp"},
				{Name: "fresh ginger"},
			},
			DietaryPreference: []string{"vegan", "dairy-free"},
			Instructions: []string{
				"Prep all vegetables before the pan goes on",
				"Heat the wok until it just starts to smoke",
				"Stir-fry broccoli and carrot for 2 minutes, then add the pepper",
				"Add ginger, pour in the sauce and toss to coat",
			},
			AdditionalInformation: domain.AdditionalInfo{
				Tips:                   "Do not overcrowd the pan.",
				ServingSuggestions:     "Serve over steamed rice.",
				NutritionalInformation: "About 220 kcal per serving.",
			},
		},
		{
			ID:   "chickpea-salad",
			Name: "Lemon Chickpea Salad",
			Ingredients: []domain.Ingredient{
				{Name: "chickpeas", Quantity: "1 can"},
				{Name: "cucumber", Quantity: "1"},
				{Name: "red onion", Quantity: "1/2"},
				{Name: "lemon juice", Quantity: "2 tbsp"},
				{Name: "olive oil", Quantity: "2 tbsp"},
				{Name: "parsley"},
			},
			DietaryPreference: []string{"vegan", "gluten-free"},
			Instructions: []string{
				"Drain and rinse the chickpeas",
				"Dice the cucumber and onion",
				"Whisk lemon juice and olive oil, then toss everything together",
			},
			AdditionalInformation: domain.AdditionalInfo{
				Variations:             "Add feta if not keeping it vegan.",
				NutritionalInformation: "High in fiber and plant protein.",
			},
		},
	}
}
