// Package buf holds the overflow-safe offset arithmetic shared by the arena
// and list packages.
package buf

import "math"

// Add returns a+b for non-negative operands, ok = false on overflow.
func Add(a, b int) (int, bool) {
	if a < 0 || b < 0 || a > math.MaxInt-b {
		return 0, false
	}
	return a + b, true
}

// Mul returns a*b for non-negative operands, ok = false on overflow.
// Used for count * elementSize.
func Mul(a, b int) (int, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}

// Fits reports whether [off, off+n) lies within a buffer of length limit.
// Filling the buffer exactly is allowed.
func Fits(limit, off, n int) (end int, ok bool) {
	end, ok = Add(off, n)
	if !ok || end > limit {
		return 0, false
	}
	return end, true
}

// Pad returns the number of bytes needed to move addr up to the next
// multiple of align. align must be a power of two.
func Pad(addr uintptr, align int) int {
	mask := uintptr(align) - 1
	return int((addr+mask)&^mask - addr)
}

// PowerOfTwo reports whether n is a positive power of two.
func PowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
