package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hammamikhairi/recipepick/internal/domain"
	"github.com/hammamikhairi/recipepick/internal/logger"
)

func TestMemoryStoreSaveLoad(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	initial := []string{"r1"}
	store := NewMemoryStore(log, initial)
	ctx := context.Background()

	// Initial value is copied.
	initial[0] = "changed"
	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"r1"}, got)

	// Save.
	next := []string{"r1", "r2"}
	require.NoError(t, store.Save(ctx, next))
	next[1] = "changed"

	// Load.
	got, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"r1", "r2"}, got)

	// Mutating a loaded slice does not leak back.
	got[0] = "changed"
	again, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"r1", "r2"}, again)

	assert.Equal(t, 1, store.Saves())
}

func TestMemoryStoreEmpty(t *testing.T) {
	store := NewMemoryStore(logger.New(logger.LevelOff, nil), nil)

	got, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestNormalize(t *testing.T) {
	recipes := []domain.Recipe{{ID: "r1"}, {ID: "r2"}, {ID: "r3"}}

	tests := []struct {
		name        string
		ids         []string
		wantKept    []string
		wantDropped []string
	}{
		{"nil", nil, []string{}, nil},
		{"all known", []string{"r3", "r1"}, []string{"r3", "r1"}, nil},
		{"duplicates", []string{"r1", "r2", "r1"}, []string{"r1", "r2"}, []string{"r1"}},
		{"unknown", []string{"x", "r2"}, []string{"r2"}, []string{"x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kept, dropped := Normalize(tt.ids, recipes)
			assert.Equal(t, tt.wantKept, kept)
			assert.Equal(t, tt.wantDropped, dropped)
		})
	}
}
