// Package mmfile maps files read-only into memory, falling back to a plain
// read where mapping is unavailable.
package mmfile

import "errors"

// ErrClosed is returned by Close on a mapping that was already closed.
var ErrClosed = errors.New("mmfile: already closed")

// Mapping is a read-only view of a file's contents.
type Mapping struct {
	data   []byte
	unmap  func([]byte) error
	closed bool
}

// Bytes returns the file contents. The slice is invalid after Close.
func (m *Mapping) Bytes() []byte { return m.data }

// Len is the file size in bytes.
func (m *Mapping) Len() int { return len(m.data) }

// Mapped reports whether the contents are backed by a memory mapping rather
// than a heap copy.
func (m *Mapping) Mapped() bool { return m.unmap != nil }

// Close releases the mapping. A second Close returns ErrClosed.
func (m *Mapping) Close() error {
	if m.closed {
		return ErrClosed
	}
	m.closed = true
	data := m.data
	m.data = nil
	if m.unmap == nil || len(data) == 0 {
		return nil
	}
	return m.unmap(data)
}
