// Package config resolves runtime settings from flags, environment
// variables and an optional .env file. Flags win over the environment.
package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/hammamikhairi/recipepick/internal/logger"
)

// Env var names read as flag defaults.
const (
	EnvRecipes  = "RECIPEPICK_RECIPES"
	EnvSelected = "RECIPEPICK_SELECTED"
	EnvLogFile  = "RECIPEPICK_LOG_FILE"
	EnvOutput   = "RECIPEPICK_OUTPUT"
)

// DefaultLogFile keeps log output away from the terminal UI.
const DefaultLogFile = ".recipepick/recipepick.log"

// Config holds everything the binary needs to start.
type Config struct {
	RecipesPath string   // empty: built-in samples
	Selected    []string // initial selection
	LogFile     string   // "stderr" logs to the console
	OutputPath  string   // empty: stdout
	LogLevel    logger.Level
	Width       int // 0: detect from the terminal
}

// LoadDotEnv reads .env files into the process environment. Missing
// files are not an error.
func LoadDotEnv(files ...string) {
	_ = godotenv.Load(files...)
}

// Parse builds a Config from command-line args (without the program
// name), using getenv for defaults. Usage errors are written to errOut.
func Parse(args []string, getenv func(string) string, errOut io.Writer) (*Config, error) {
	if getenv == nil {
		getenv = os.Getenv
	}

	fs := flag.NewFlagSet("recipepick", flag.ContinueOnError)
	fs.SetOutput(errOut)

	recipes := fs.String("recipes", getenv(EnvRecipes), "JSON file with recipe suggestions (default: built-in samples)")
	selected := fs.String("select", getenv(EnvSelected), "comma-separated recipe ids selected at start")
	logFile := fs.String("log-file", orDefault(getenv(EnvLogFile), DefaultLogFile), "file to write logs to (use \"stderr\" to log to console)")
	out := fs.String("out", getenv(EnvOutput), "file to write the final selection to (default: stdout)")
	verbose := fs.Bool("verbose", false, "enable verbose/debug logging")
	quiet := fs.Bool("quiet", false, "disable all logging")
	width := fs.Int("width", 0, "render width in columns (default: terminal width)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	if *width < 0 {
		return nil, fmt.Errorf("invalid -width %d", *width)
	}

	level := logger.LevelNormal
	if *verbose {
		level = logger.LevelVerbose
	}
	if *quiet {
		level = logger.LevelOff
	}

	return &Config{
		RecipesPath: strings.TrimSpace(*recipes),
		Selected:    SplitIDs(*selected),
		LogFile:     *logFile,
		OutputPath:  strings.TrimSpace(*out),
		LogLevel:    level,
		Width:       *width,
	}, nil
}

// SplitIDs parses a comma-separated id list, dropping blanks.
func SplitIDs(s string) []string {
	var ids []string
	for _, part := range strings.Split(s, ",") {
		if id := strings.TrimSpace(part); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
