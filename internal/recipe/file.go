package recipe

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/hammamikhairi/recipepick/internal/domain"
	"github.com/hammamikhairi/recipepick/internal/logger"
)

// envelope is the object form of a recipe file: {"recipes": [...]}.
type envelope struct {
	Recipes []domain.Recipe `json:"recipes"`
}

// LoadFile reads recipes from a JSON file. See Decode for the format.
func LoadFile(path string, log *logger.Logger) (*MemorySource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening recipe file: %w", err)
	}
	defer f.Close()

	src, err := Decode(f, log)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Info("loaded %d recipes from %s", len(src.recipes), path)
	return src, nil
}

// Decode reads recipes from r. The input is either a JSON array of
// recipes or an object with a "recipes" array. Recipes without an id are
// given a random one; names are required and ids must be unique.
func Decode(r io.Reader, log *logger.Logger) (*MemorySource, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading recipes: %w", err)
	}

	var recipes []domain.Recipe
	trimmed := bytes.TrimSpace(data)
	switch {
	case len(trimmed) == 0:
		return nil, domain.ErrEmptySource
	case trimmed[0] == '[':
		if err := json.Unmarshal(trimmed, &recipes); err != nil {
			return nil, fmt.Errorf("decoding recipes: %w", err)
		}
	default:
		var env envelope
		if err := json.Unmarshal(trimmed, &env); err != nil {
			return nil, fmt.Errorf("decoding recipes: %w", err)
		}
		recipes = env.Recipes
	}

	for i := range recipes {
		recipes[i].ID = strings.TrimSpace(recipes[i].ID)
		if recipes[i].ID == "" {
			recipes[i].ID = uuid.NewString()
			log.Debug("assigned id %s to recipe %q", recipes[i].ID, recipes[i].Name)
		}
	}
	return newSource(log, recipes)
}
