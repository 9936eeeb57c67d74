package str

import (
	"github.com/joshuapare/libx/arena"
	"github.com/joshuapare/libx/status"
)

// dup allocates n bytes in a, or returns the failure to propagate.
func dup(a *arena.Arena, n int) ([]byte, status.Code) {
	if a == nil {
		return nil, status.NullInput
	}
	dst, err := a.Alloc(n)
	if err != nil {
		return nil, status.Of(err)
	}
	return dst, status.Ok
}

// Copy duplicates s into a.
func Copy(a *arena.Arena, s String) String {
	if !s.Ok() {
		return s
	}
	dst, code := dup(a, len(s.b))
	if code != status.Ok {
		return Failed(code)
	}
	copy(dst, s.b)
	return String{b: dst}
}

// ToUpper returns an upper-cased copy of s in a. Only ASCII a-z change.
func ToUpper(a *arena.Arena, s String) String {
	return mapBytes(a, s, upper)
}

// ToLower returns a lower-cased copy of s in a. Only ASCII A-Z change.
func ToLower(a *arena.Arena, s String) String {
	return mapBytes(a, s, lower)
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

func mapBytes(a *arena.Arena, s String, conv func(byte) byte) String {
	if !s.Ok() {
		return s
	}
	dst, code := dup(a, len(s.b))
	if code != status.Ok {
		return Failed(code)
	}
	for i, c := range s.b {
		dst[i] = conv(c)
	}
	return String{b: dst}
}

// Concat returns x followed by y in a new allocation from a.
func Concat(a *arena.Arena, x, y String) String {
	if !x.Ok() {
		return x
	}
	if !y.Ok() {
		return y
	}
	dst, code := dup(a, len(x.b)+len(y.b))
	if code != status.Ok {
		return Failed(code)
	}
	n := copy(dst, x.b)
	copy(dst[n:], y.b)
	return String{b: dst}
}

// Slice returns the view s[start:end] without copying.
//
// A range outside [0, Len] or with start > end is a programmer error and
// panics with a *status.Fatal.
func Slice(s String, start, end int) String {
	if !s.Ok() {
		return s
	}
	if start < 0 || end > len(s.b) || start > end {
		status.Panic(status.IndexOutOfRange, "str.Slice",
			"[%d:%d] of length %d", start, end, len(s.b))
	}
	return String{b: s.b[start:end:end]}
}

// CharAt returns the byte at pos.
//
// Indexing past the end, or into a failed String, is a programmer error and
// panics with a *status.Fatal.
func CharAt(s String, pos int) byte {
	if !s.Ok() {
		status.Panic(s.code, "str.CharAt", "index %d into failed string", pos)
	}
	if pos < 0 || pos >= len(s.b) {
		status.Panic(status.IndexOutOfRange, "str.CharAt",
			"index %d of length %d", pos, len(s.b))
	}
	return s.b[pos]
}

// Count returns how many times c occurs in s; 0 for a failed String.
func Count(s String, c byte) int {
	if !s.Ok() {
		return 0
	}
	n := 0
	for _, b := range s.b {
		if b == c {
			n++
		}
	}
	return n
}

// IndexByte returns the index of the first c in s, or -1.
func IndexByte(s String, c byte) int {
	if !s.Ok() {
		return -1
	}
	for i, b := range s.b {
		if b == c {
			return i
		}
	}
	return -1
}

// Index returns the index of the first occurrence of needle in s, or -1 if
// there is none or either input failed. An empty needle matches at 0.
func Index(s, needle String) int {
	if !s.Ok() || !needle.Ok() {
		return -1
	}
	m := len(needle.b)
	if m == 0 {
		return 0
	}
	first := needle.b[0]
	for i := 0; i+m <= len(s.b); i++ {
		if s.b[i] != first {
			continue
		}
		j := 1
		for j < m && s.b[i+j] == needle.b[j] {
			j++
		}
		if j == m {
			return i
		}
	}
	return -1
}

// Equal reports whether x and y hold the same bytes. Failed inputs are never
// equal to anything.
func Equal(x, y String) bool {
	if !x.Ok() || !y.Ok() || len(x.b) != len(y.b) {
		return false
	}
	for i := range x.b {
		if x.b[i] != y.b[i] {
			return false
		}
	}
	return true
}

// HasPrefix reports whether s begins with prefix.
func HasPrefix(s, prefix String) bool {
	if !s.Ok() || !prefix.Ok() || len(prefix.b) > len(s.b) {
		return false
	}
	return Equal(String{b: s.b[:len(prefix.b)]}, prefix)
}
