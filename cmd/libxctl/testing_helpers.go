package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/libx/internal/testutil"
)

// resetFlags restores every command flag to its default and points --config
// at a file that does not exist, so built-in defaults apply.
func resetFlags(t *testing.T) {
	t.Helper()
	configPath = filepath.Join(t.TempDir(), "absent.toml")
	verbose = false
	jsonOut = false
	splitDelim = ","
	caseUpper = false
	caseLower = false
}

// useConfig writes a TOML configuration and selects it with --config.
func useConfig(t *testing.T, toml string) {
	t.Helper()
	configPath = testutil.WriteFile(t, "libx.toml", []byte(toml))
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err, "failed to create pipe")
	os.Stdout = w

	fnErr := fn()

	w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	_, err = buf.ReadFrom(r)
	require.NoError(t, err, "failed to read output")
	return buf.String(), fnErr
}

// decodeJSON unmarshals captured output into v.
func decodeJSON(t *testing.T, output string, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal([]byte(output), v), "invalid JSON output: %s", output)
}
