package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/joshuapare/libx/arena"
	"github.com/joshuapare/libx/list"
	"github.com/joshuapare/libx/xfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Resolves(t *testing.T) {
	s, err := Default().Resolve()
	require.NoError(t, err)
	assert.Equal(t, 64<<10, s.ArenaSize)
	assert.Equal(t, arena.Heap, s.Backing)
	assert.Equal(t, "heap", s.BackingName)
	assert.Equal(t, 1024, s.ListCapacity)
	assert.Equal(t, list.Reject, s.Overflow)
	assert.Equal(t, xfile.UTF8, s.Encoding)
	assert.Equal(t, slog.LevelWarn, s.LogLevel)
	assert.False(t, s.LogJSON)
}

func TestParse(t *testing.T) {
	data := []byte(`
[arena]
size = "1m"
backing = "mmap"

[list]
capacity = 16
overflow = "replace-oldest"

[file]
encoding = "windows-1252"

[log]
level = "debug"
format = "json"
`)
	cfg, err := Parse(data)
	require.NoError(t, err)

	s, err := cfg.Resolve()
	require.NoError(t, err)
	assert.Equal(t, 1<<20, s.ArenaSize)
	assert.Equal(t, "mmap", s.BackingName)
	assert.Equal(t, 16, s.ListCapacity)
	assert.Equal(t, list.ReplaceOldest, s.Overflow)
	assert.Equal(t, xfile.Windows1252, s.Encoding)
	assert.Equal(t, slog.LevelDebug, s.LogLevel)
	assert.True(t, s.LogJSON)
}

func TestParse_PartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("[list]\ncapacity = 3\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.List.Capacity)
	assert.Equal(t, "64k", cfg.Arena.Size)
	assert.Equal(t, "reject", cfg.List.Overflow)
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse([]byte("[arena\nsize = 1"))
	assert.Error(t, err, "malformed TOML")

	_, err = Parse([]byte("[arena]\ncolour = \"red\"\n"))
	assert.Error(t, err, "unknown key")
}

func TestResolve_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad size", func(c *Config) { c.Arena.Size = "lots" }},
		{"bad backing", func(c *Config) { c.Arena.Backing = "disk" }},
		{"negative capacity", func(c *Config) { c.List.Capacity = -1 }},
		{"bad overflow", func(c *Config) { c.List.Overflow = "grow" }},
		{"bad encoding", func(c *Config) { c.File.Encoding = "ebcdic" }},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			_, err := cfg.Resolve()
			assert.Error(t, err)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(filepath.Join(dir, "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	path := filepath.Join(dir, "libx.toml")
	require.NoError(t, os.WriteFile(path, []byte("[arena]\nsize = \"2k\"\n"), 0o644))
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "2k", cfg.Arena.Size)

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("not = [toml"), 0o644))
	_, err = Load(bad)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, bad, perr.Path)
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"0", 0, false},
		{"512", 512, false},
		{"64k", 64 << 10, false},
		{"64K", 64 << 10, false},
		{" 4m ", 4 << 20, false},
		{"1g", 1 << 30, false},
		{"", 0, true},
		{"k", 0, true},
		{"-1k", 0, true},
		{"12x", 0, true},
		{"9999999999999999999g", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSize(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
