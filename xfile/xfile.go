package xfile

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/joshuapare/libx/arena"
	"github.com/joshuapare/libx/internal/mmfile"
	"github.com/joshuapare/libx/status"
	"github.com/joshuapare/libx/str"
)

// File is a read-only file loaded outside any arena. Release it with Close.
type File struct {
	path string
	m    *mmfile.Mapping
}

// Open loads the file at path. Failures wrap status.ErrNotFound when the
// file does not exist and status.ErrReadFailure otherwise.
func Open(path string) (*File, error) {
	if path == "" {
		return nil, fmt.Errorf("xfile: open: %w", status.ErrNullInput)
	}
	m, err := mmfile.Open(path)
	if err != nil {
		return nil, classify(path, err)
	}
	return &File{path: path, m: m}, nil
}

// Path is the path the file was opened from.
func (f *File) Path() string { return f.path }

// Size is the file length in bytes.
func (f *File) Size() int { return f.m.Len() }

// Bytes returns the contents. Invalid after Close.
func (f *File) Bytes() []byte { return f.m.Bytes() }

// String returns the contents as a managed string view. The view fails with
// status.Freed once the file is closed.
func (f *File) String() str.String {
	b := f.m.Bytes()
	if b == nil {
		return str.Failed(status.Freed)
	}
	return str.View(b)
}

// Close releases the contents. Closing twice returns status.ErrDoubleFree.
func (f *File) Close() error {
	if err := f.m.Close(); err != nil {
		if errors.Is(err, mmfile.ErrClosed) {
			return fmt.Errorf("xfile: close %s: %w", f.path, status.ErrDoubleFree)
		}
		return fmt.Errorf("xfile: close %s: %w", f.path, err)
	}
	return nil
}

// Load copies the file at path into a as a managed string, decoding it first
// if an encoding other than UTF8 is configured.
//
// The result carries NotFound or ReadFailure for file errors and the arena's
// code when the copy does not fit.
func Load(a *arena.Arena, path string, opts ...Option) str.String {
	o := buildOptions(opts)
	if a == nil {
		return str.Failed(status.NullInput)
	}
	if !a.Ok() {
		return str.Failed(a.Status())
	}

	f, err := Open(path)
	if err != nil {
		o.logger.Debug("xfile: load failed", "path", path, "err", err)
		return str.Failed(status.Of(err))
	}
	defer closeLogged(f, o.logger)

	data, err := decode(o.encoding, f.Bytes())
	if err != nil {
		o.logger.Debug("xfile: decode failed", "path", path, "encoding", o.encoding, "err", err)
		return str.Failed(status.ReadFailure)
	}

	s := str.Alloc(a, data)
	if !s.Ok() {
		o.logger.Debug("xfile: arena too small", "path", path, "size", len(data), "remaining", a.Remaining())
	}
	return s
}

// closeLogged closes f, logging a failure at debug level.
func closeLogged(f *File, l *slog.Logger) {
	if err := f.Close(); err != nil {
		l.Debug("xfile: close failed", "path", f.path, "err", err)
	}
}

func classify(path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("xfile: %s: %w", path, status.ErrNotFound)
	}
	return fmt.Errorf("xfile: %s: %w: %v", path, status.ErrReadFailure, err)
}
