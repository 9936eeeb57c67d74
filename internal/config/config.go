// Package config loads the libxctl TOML configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/joshuapare/libx/arena"
	"github.com/joshuapare/libx/internal/logger"
	"github.com/joshuapare/libx/list"
	"github.com/joshuapare/libx/xfile"
)

// Config mirrors the TOML file layout.
type Config struct {
	Arena ArenaConfig `toml:"arena"`
	List  ListConfig  `toml:"list"`
	File  FileConfig  `toml:"file"`
	Log   LogConfig   `toml:"log"`
}

type ArenaConfig struct {
	Size    string `toml:"size"`    // bytes, with optional k/m/g suffix
	Backing string `toml:"backing"` // heap | mmap
}

type ListConfig struct {
	Capacity int    `toml:"capacity"`
	Overflow string `toml:"overflow"` // reject | drop-newest | replace-oldest
}

type FileConfig struct {
	Encoding string `toml:"encoding"` // utf-8 | windows-1252
}

type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // text | json
}

// Settings is a validated Config with every field resolved to the type the
// library consumes.
type Settings struct {
	ArenaSize    int
	Backing      arena.Backing
	BackingName  string
	ListCapacity int
	Overflow     list.Policy
	Encoding     xfile.Encoding
	LogLevel     slog.Level
	LogJSON      bool
}

// ParseError reports a malformed configuration file.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string { return fmt.Sprintf("config %s: %v", e.Path, e.Err) }

func (e *ParseError) Unwrap() error { return e.Err }

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Arena: ArenaConfig{Size: "64k", Backing: "heap"},
		List:  ListConfig{Capacity: 1024, Overflow: list.Reject.String()},
		File:  FileConfig{Encoding: xfile.UTF8.String()},
		Log:   LogConfig{Level: "warn", Format: "text"},
	}
}

// Load reads path on top of Default. A missing file is not an error.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, &ParseError{Path: path, Err: err}
	}
	return cfg, nil
}

// Parse decodes TOML data on top of Default. Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid field in c.
func (c Config) Validate() error {
	_, err := c.Resolve()
	return err
}

// Resolve validates c and converts it to Settings.
func (c Config) Resolve() (Settings, error) {
	var s Settings
	var err error

	if s.ArenaSize, err = ParseSize(c.Arena.Size); err != nil {
		return Settings{}, fmt.Errorf("arena.size: %w", err)
	}

	s.BackingName = c.Arena.Backing
	switch c.Arena.Backing {
	case "", "heap":
		s.Backing, s.BackingName = arena.Heap, "heap"
	case "mmap":
		s.Backing = arena.Mmap
	default:
		return Settings{}, fmt.Errorf("arena.backing: unknown backing %q", c.Arena.Backing)
	}

	if c.List.Capacity < 0 {
		return Settings{}, fmt.Errorf("list.capacity: must be >= 0, got %d", c.List.Capacity)
	}
	s.ListCapacity = c.List.Capacity
	if s.Overflow, err = list.ParsePolicy(c.List.Overflow); err != nil {
		return Settings{}, fmt.Errorf("list.overflow: %w", err)
	}

	if s.Encoding, err = xfile.ParseEncoding(c.File.Encoding); err != nil {
		return Settings{}, fmt.Errorf("file.encoding: %w", err)
	}

	if s.LogLevel, err = logger.ParseLevel(c.Log.Level); err != nil {
		return Settings{}, fmt.Errorf("log.level: %w", err)
	}
	switch c.Log.Format {
	case "", "text":
	case "json":
		s.LogJSON = true
	default:
		return Settings{}, fmt.Errorf("log.format: unknown format %q", c.Log.Format)
	}
	return s, nil
}
