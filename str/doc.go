// Package str implements managed strings: immutable byte views that carry a
// status code and are allocated from an arena.
//
// Transformations (Copy, ToUpper, ToLower, Concat) allocate their result in
// a caller-supplied arena and short-circuit on failed input, so they can be
// chained without checking each step:
//
//	a := arena.New(1024)
//	s := str.ToUpper(a, str.Concat(a, str.Lit("hello, "), name))
//	if !s.Ok() {
//	    return s.Err()
//	}
//
// Queries (Count, IndexByte, Index, Equal) return a safe default for failed
// input. Indexing out of range (CharAt, Slice) is a programmer error and
// panics with a *status.Fatal.
package str
