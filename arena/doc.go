// Package arena provides a fixed-capacity bump allocator with nested
// temporary arenas.
//
// # Overview
//
// An Arena owns one contiguous block obtained once from a Backing. Alloc hands
// out consecutive, non-overlapping ranges of that block in O(1) and never
// grows it. Freeing is all-at-once: Destroy returns the whole block.
//
//	a := arena.New(64 << 10)
//	defer a.Destroy()
//
//	b, err := a.Alloc(128)
//	if err != nil {
//	    return err
//	}
//
// # Temporary Arenas
//
// Temp carves a child arena out of the parent's next free range. The child
// is a checkpoint: releasing it rewinds the parent's bump pointer to where it
// was before the child was opened, discarding everything allocated in the
// child at once.
//
//	t := a.Temp(4096)
//	// ... scratch work in t ...
//	if err := t.ReleaseTemp(a); err != nil {
//	    return err
//	}
//
// Temporaries must be released in reverse order of creation. ReleaseTemp
// checks that the child is still the tail of its parent and fails with
// status.ReleasedOutOfOrder otherwise, leaving both arenas untouched.
// Scoped wraps the open/use/release sequence.
//
// # Failure Model
//
// Arena follows the fallible-value convention of package status. A failed
// allocation sets the arena's status to OutOfMemory; subsequent allocations
// return that status without touching memory until Reset. Destroying twice
// yields DoubleFree. Destroying a temporary, or a root whose temporaries are
// still live, yields FreedWhileNested.
//
// # Backings
//
//   - Heap: a Go byte slice (default)
//   - Mmap: a private anonymous mapping outside the Go heap
//   - Budget: caps total outstanding bytes across arenas
//
// # Thread Safety
//
// Arena instances are not thread-safe. Callers must synchronize access
// externally.
package arena
