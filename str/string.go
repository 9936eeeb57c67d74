package str

import (
	"unsafe"

	"github.com/joshuapare/libx/arena"
	"github.com/joshuapare/libx/status"
)

// String is an immutable view over bytes that carries its own status.
//
// The bytes are borrowed: they belong to the caller or to an arena, and the
// view is valid only while that storage is. Operations never write through
// an input String; transformations allocate a new range in an arena.
type String struct {
	b    []byte
	code status.Code
}

// Failed returns a String that carries c and no bytes.
func Failed(c status.Code) String { return String{code: c} }

// Lit returns a view over the bytes of a Go string literal. The bytes must
// not be modified through Bytes.
func Lit(s string) String {
	if s == "" {
		return String{b: []byte{}}
	}
	return String{b: unsafe.Slice(unsafe.StringData(s), len(s))}
}

// View wraps caller-owned bytes without copying. A nil slice yields NullInput.
func View(b []byte) String {
	if b == nil {
		return Failed(status.NullInput)
	}
	return String{b: b}
}

// Alloc copies raw into a new arena allocation.
//
// It fails with NullInput if a or raw is nil, and with the arena's code
// (usually OutOfMemory) if the allocation fails.
func Alloc(a *arena.Arena, raw []byte) String {
	if a == nil || raw == nil {
		return Failed(status.NullInput)
	}
	dst, err := a.Alloc(len(raw))
	if err != nil {
		return Failed(status.Of(err))
	}
	copy(dst, raw)
	return String{b: dst}
}

// AllocString is Alloc for a Go string.
func AllocString(a *arena.Arena, s string) String {
	return Alloc(a, Lit(s).b)
}

// Len is the number of bytes in the view; 0 for a failed String.
func (s String) Len() int { return len(s.b) }

// Bytes returns the underlying bytes. Callers must not modify them.
func (s String) Bytes() []byte { return s.b }

// String returns a Go string copy of the bytes.
func (s String) String() string { return string(s.b) }

// Status is the code carried by s.
func (s String) Status() status.Code { return s.code }

// Ok reports whether s is usable.
func (s String) Ok() bool { return s.code == status.Ok }

// Err returns the sentinel error for s's status, or nil.
func (s String) Err() error { return s.code.Err() }
