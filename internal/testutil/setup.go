// Package testutil holds fixtures shared by the libx test suites.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joshuapare/libx/arena"
	"github.com/joshuapare/libx/status"
)

// WriteFile creates name under a fresh t.TempDir with the given contents and
// returns its path. Calls t.Fatal if the write fails.
//
// Example:
//
//	path := testutil.WriteFile(t, "in.csv", []byte("a,b,,c"))
func WriteFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}

// NewArena creates a root arena of size bytes that is checked and destroyed
// when the test ends. The check fails the test if a temporary carved from the
// arena is still live. Tests may destroy the arena themselves.
//
// Example:
//
//	a := testutil.NewArena(t, 64)
//	s := str.AllocString(a, "hello")
func NewArena(t *testing.T, size int, opts ...arena.Option) *arena.Arena {
	t.Helper()
	a := arena.New(size, opts...)
	t.Cleanup(func() {
		if a.Status() == status.Freed {
			return
		}
		if live := a.Metrics().LiveTemps; live != 0 {
			t.Errorf("arena leaked %d live temporaries", live)
		}
		if err := a.Destroy(); err != nil {
			t.Errorf("Failed to destroy arena: %v", err)
		}
	})
	return a
}
