package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/libx/arena"
	"github.com/joshuapare/libx/internal/config"
	"github.com/joshuapare/libx/internal/logger"
	"github.com/joshuapare/libx/str"
	"github.com/joshuapare/libx/xfile"
)

var (
	// Global flags
	configPath string
	verbose    bool
	jsonOut    bool
)

var rootCmd = &cobra.Command{
	Use:   "libxctl",
	Short: "Exercise the libx arena, string and list primitives on files",
	Long: `libxctl loads files into a bump arena and runs the libx string and list
operations over them: splitting with a cursor, case conversion inside a
temporary arena, substring search and arena statistics.

Settings are read from a TOML file (see --config). A missing file means
built-in defaults.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().
		StringVarP(&configPath, "config", "c", "libx.toml", "Path to TOML configuration")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging to stderr")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// env is the per-command state built from the configuration.
type env struct {
	settings config.Settings
	arena    *arena.Arena
}

// openEnv loads the configuration, initialises logging and creates the root
// arena. Callers must close the returned env.
func openEnv() (*env, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	s, err := cfg.Resolve()
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", configPath, err)
	}

	level := s.LogLevel
	if verbose {
		level = slog.LevelDebug
	}
	logger.Init(logger.Options{Enabled: true, Level: level, JSON: s.LogJSON})

	a := arena.New(s.ArenaSize, arena.WithBacking(s.Backing), arena.WithLogger(logger.L))
	if !a.Ok() {
		return nil, fmt.Errorf("creating %s arena of %d bytes: %w", s.BackingName, s.ArenaSize, a.Err())
	}
	logger.Debug("libxctl: arena ready", "size", s.ArenaSize, "backing", s.BackingName)
	return &env{settings: s, arena: a}, nil
}

// load copies path into the root arena using the configured encoding.
func (e *env) load(path string) (str.String, error) {
	s := xfile.Load(e.arena, path,
		xfile.WithEncoding(e.settings.Encoding),
		xfile.WithLogger(logger.L),
	)
	if !s.Ok() {
		return s, fmt.Errorf("loading %s: %w", path, s.Err())
	}
	return s, nil
}

func (e *env) close() {
	if err := e.arena.Destroy(); err != nil {
		logger.Warn("libxctl: destroying arena", "err", err)
	}
}

// Helper functions for output

// printInfo prints to stdout
func printInfo(format string, args ...interface{}) {
	fmt.Fprintf(os.Stdout, format, args...)
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
