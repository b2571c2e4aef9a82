package config

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hammamikhairi/recipepick/internal/logger"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(nil, envMap(nil), io.Discard)
	require.NoError(t, err)

	assert.Empty(t, cfg.RecipesPath)
	assert.Empty(t, cfg.Selected)
	assert.Equal(t, DefaultLogFile, cfg.LogFile)
	assert.Empty(t, cfg.OutputPath)
	assert.Equal(t, logger.LevelNormal, cfg.LogLevel)
	assert.Zero(t, cfg.Width)
}

func TestParseEnvAndFlags(t *testing.T) {
	env := envMap(map[string]string{
		EnvRecipes:  "from-env.json",
		EnvSelected: "r1, r2",
		EnvLogFile:  "stderr",
		EnvOutput:   "out.json",
	})

	cfg, err := Parse(nil, env, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "from-env.json", cfg.RecipesPath)
	assert.Equal(t, []string{"r1", "r2"}, cfg.Selected)
	assert.Equal(t, "stderr", cfg.LogFile)
	assert.Equal(t, "out.json", cfg.OutputPath)

	cfg, err = Parse([]string{"-recipes", "flag.json", "-select", "r3", "-verbose", "-width", "100"}, env, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "flag.json", cfg.RecipesPath)
	assert.Equal(t, []string{"r3"}, cfg.Selected)
	assert.Equal(t, logger.LevelVerbose, cfg.LogLevel)
	assert.Equal(t, 100, cfg.Width)
}

func TestParseQuietWins(t *testing.T) {
	cfg, err := Parse([]string{"-verbose", "-quiet"}, envMap(nil), io.Discard)
	require.NoError(t, err)
	assert.Equal(t, logger.LevelOff, cfg.LogLevel)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"-nope"}},
		{"stray args", []string{"extra"}},
		{"negative width", []string{"-width", "-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.args, envMap(nil), io.Discard)
			assert.Error(t, err)
		})
	}
}

func TestSplitIDs(t *testing.T) {
	assert.Nil(t, SplitIDs(""))
	assert.Nil(t, SplitIDs(" , ,"))
	assert.Equal(t, []string{"a", "b"}, SplitIDs("a,,b "))
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(EnvSelected+"=from-dotenv\n"), 0o644))
	t.Setenv(EnvSelected, "")
	os.Unsetenv(EnvSelected)

	LoadDotEnv(path)
	assert.Equal(t, "from-dotenv", os.Getenv(EnvSelected))

	// Missing files are ignored.
	assert.NotPanics(t, func() { LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")) })
}
