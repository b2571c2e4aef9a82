package recipe

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hammamikhairi/recipepick/internal/domain"
	"github.com/hammamikhairi/recipepick/internal/logger"
)

const arrayJSON = `[
  {
    "id": "r1",
    "name": "Pasta",
    "ingredients": [{"name": "Salt"}, {"name": "Pasta", "quantity": "200 g"}],
    "dietaryPreference": ["vegetarian"],
    "instructions": ["Boil water", "Add pasta"],
    "additionalInformation": {
      "tips": "Stir often",
      "servingSuggestions": "Hot"
    }
  },
  {"id": "r2", "name": "Salad", "ingredients": [], "dietaryPreference": [], "instructions": [], "additionalInformation": {}}
]`

func TestDecodeArray(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)

	src, err := Decode(strings.NewReader(arrayJSON), log)
	require.NoError(t, err)

	recipes, err := src.List(context.Background())
	require.NoError(t, err)
	require.Len(t, recipes, 2)

	r := recipes[0]
	assert.Equal(t, "r1", r.ID)
	assert.Equal(t, []domain.Ingredient{{Name: "Salt"}, {Name: "Pasta", Quantity: "200 g"}}, r.Ingredients)
	assert.Equal(t, []string{"vegetarian"}, r.DietaryPreference)
	assert.Equal(t, []string{"Boil water", "Add pasta"}, r.Instructions)
	assert.Equal(t, domain.AdditionalInfo{Tips: "Stir often", ServingSuggestions: "Hot"}, r.AdditionalInformation)
	assert.Equal(t, "r2", recipes[1].ID)
}

func TestDecodeEnvelopeAssignsIDs(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	in := `{"recipes": [{"name": "Soup"}, {"id": "  ", "name": "Bread"}]}`

	src, err := Decode(strings.NewReader(in), log)
	require.NoError(t, err)

	recipes, err := src.List(context.Background())
	require.NoError(t, err)
	require.Len(t, recipes, 2)
	for _, r := range recipes {
		_, err := uuid.Parse(r.ID)
		assert.NoError(t, err, "recipe %q", r.Name)
	}
	assert.NotEqual(t, recipes[0].ID, recipes[1].ID)
}

func TestDecodeErrors(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)

	tests := []struct {
		name    string
		in      string
		wantErr error
	}{
		{"blank input", "  \n", domain.ErrEmptySource},
		{"empty array", "[]", domain.ErrEmptySource},
		{"empty envelope", "{}", domain.ErrEmptySource},
		{"duplicate ids", `[{"id":"a","name":"A"},{"id":"a","name":"B"}]`, domain.ErrDuplicateID},
		{"missing name", `[{"id":"a"}]`, domain.ErrInvalidRecipe},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.in), log)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	_, err := Decode(strings.NewReader("[{"), log)
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	path := filepath.Join(t.TempDir(), "recipes.json")
	require.NoError(t, os.WriteFile(path, []byte(arrayJSON), 0o644))

	src, err := LoadFile(path, log)
	require.NoError(t, err)

	r, err := src.Get(context.Background(), "r2")
	require.NoError(t, err)
	assert.Equal(t, "Salad", r.Name)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.json"), log)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
