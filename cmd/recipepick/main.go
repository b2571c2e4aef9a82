// recipepick — choose which generated recipe suggestions move on to the
// next step of recipe creation.
//
// The picker reads suggestions from a JSON file (or uses built-in samples),
// lets the user toggle them in a terminal UI, and on confirm prints
// {"selectedRecipes": [...]} to stdout or the -out file.
//
// Usage:
//
//	recipepick [-recipes file.json] [-select id,id] [-out file] [-verbose] [-quiet]
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/hammamikhairi/recipepick/internal/config"
	"github.com/hammamikhairi/recipepick/internal/display"
	"github.com/hammamikhairi/recipepick/internal/domain"
	"github.com/hammamikhairi/recipepick/internal/logger"
	"github.com/hammamikhairi/recipepick/internal/recipe"
	"github.com/hammamikhairi/recipepick/internal/storage"
)

// Exit codes.
const (
	exitOK        = 0
	exitCancelled = 1
	exitUsage     = 2
	exitFailure   = 3
)

func main() {
	os.Exit(run())
}

func run() int {
	config.LoadDotEnv()

	cfg, err := config.Parse(os.Args[1:], os.Getenv, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return exitUsage
	}

	logOut, closeLog := openLog(cfg.LogFile)
	defer closeLog()

	// Route the standard logger to the same place so nothing writes over
	// the UI.
	stdlog.SetOutput(logOut)
	stdlog.SetFlags(stdlog.Ltime)

	log := logger.New(cfg.LogLevel, logOut)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Wire dependencies.
	src, err := openSource(cfg.RecipesPath, log.Named("recipe"))
	if err != nil {
		log.Error("loading recipes: %v", err)
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return exitFailure
	}
	recipes, err := src.List(ctx)
	if err != nil {
		log.Error("listing recipes: %v", err)
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return exitFailure
	}

	initial, dropped := storage.Normalize(cfg.Selected, recipes)
	if len(dropped) > 0 {
		log.Warn("ignoring unknown or repeated ids in initial selection: %s", strings.Join(dropped, ", "))
	}
	store := storage.NewMemoryStore(log.Named("storage"), initial)

	var opts []display.Option
	if cfg.Width > 0 {
		opts = append(opts, display.WithWidth(cfg.Width))
	}
	model := display.New(recipes, store, log.Named("display"), opts...)

	log.Info("picker started with %d recipes, %d preselected", len(recipes), len(initial))
	res, err := display.Run(ctx, model)
	if err != nil {
		log.Error("display: %v", err)
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return exitFailure
	}
	if !res.Confirmed {
		log.Info("selection not submitted")
		return exitCancelled
	}

	if err := writeSelection(cfg.OutputPath, res.Selected); err != nil {
		log.Error("writing selection: %v", err)
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return exitFailure
	}
	log.Info("submitted %d recipes", len(res.Selected))
	return exitOK
}

// openSource returns the file source for path, or the built-in samples
// when path is empty.
func openSource(path string, log *logger.Logger) (domain.RecipeSource, error) {
	if path == "" {
		log.Debug("no recipe file given, using built-in samples")
		return recipe.NewMemorySource(log), nil
	}
	src, err := recipe.LoadFile(path, log)
	if err != nil {
		return nil, err
	}
	return src, nil
}

// openLog opens the log destination. Logs go to a file by default so the
// UI stays clean; "stderr" keeps them on the console.
func openLog(path string) (io.Writer, func()) {
	if path == "" || path == "stderr" {
		return os.Stderr, func() {}
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		os.MkdirAll(dir, 0o755)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not open log file %s: %v (falling back to stderr)\n", path, err)
		return os.Stderr, func() {}
	}
	return f, func() { f.Close() }
}

// submission is the JSON written on confirm.
type submission struct {
	SelectedRecipes []string `json:"selectedRecipes"`
}

// encodeSelection writes ids as a submission. A nil selection is encoded
// as an empty array.
func encodeSelection(w io.Writer, ids []string) error {
	if ids == nil {
		ids = []string{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(submission{SelectedRecipes: ids})
}

// writeSelection writes the submission to path, or stdout when path is
// empty.
func writeSelection(path string, ids []string) error {
	if path == "" {
		return encodeSelection(os.Stdout, ids)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	if err := encodeSelection(f, ids); err != nil {
		f.Close()
		return fmt.Errorf("encoding selection: %w", err)
	}
	return f.Close()
}
