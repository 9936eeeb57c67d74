package arena

import (
	"fmt"

	"github.com/joshuapare/libx/status"
)

// Temp carves a temporary arena of size bytes out of a.
//
// The temporary's block is the range the parent hands out for an ordinary
// Alloc of size bytes; its own pos starts at 0 and its depth is one more than
// the parent's. If that allocation fails the temporary carries the parent's
// failure code and allocations from it fail.
//
// Temporaries nest: the last one opened must be the first one released.
func (a *Arena) Temp(size int) *Arena {
	if a == nil {
		return &Arena{status: status.NullInput, backing: Heap, log: discard}
	}

	t := &Arena{
		depth:   a.depth + 1,
		parent:  a,
		backing: a.backing,
		log:     a.log,
	}
	mem, err := a.Alloc(size)
	if err != nil {
		t.status = status.Of(err)
		return t
	}

	t.mem = mem
	t.base = a.pos - size
	t.carved = true
	a.open++
	return t
}

// ReleaseTemp returns a temporary's block to parent, rewinding the parent's
// bump pointer to where it was before the temporary was opened.
//
// The release only succeeds if the temporary is still the most recent
// allocation in parent. Any allocation made in parent after Temp, or a
// temporary that still has live temporaries of its own, fails with
// ReleasedOutOfOrder and leaves both arenas unchanged. Releasing the same
// temporary twice fails with DoubleFree.
func (a *Arena) ReleaseTemp(parent *Arena) error {
	if a == nil || parent == nil {
		return status.ErrNullInput
	}
	if a.status == status.Freed {
		a.log.Warn("arena: temporary released twice", "depth", a.depth)
		return fmt.Errorf("arena: release temporary: %w", status.ErrDoubleFree)
	}
	if a.parent != parent {
		a.log.Warn("arena: temporary released into wrong parent", "depth", a.depth)
		return fmt.Errorf("arena: release temporary into foreign parent: %w",
			status.ErrReleasedOutOfOrder)
	}
	if parent.status == status.Freed {
		a.mem = nil
		a.pos = 0
		a.carved = false
		a.status = status.Freed
		return fmt.Errorf("arena: release temporary: parent %w", status.ErrFreed)
	}

	if !a.carved {
		// Open failed; the parent never moved.
		a.status = status.Freed
		return nil
	}

	if a.open > 0 {
		a.log.Warn("arena: temporary released with live children", "depth", a.depth, "open", a.open)
		return fmt.Errorf("arena: release temporary with %d live temporaries: %w",
			a.open, status.ErrReleasedOutOfOrder)
	}

	size := len(a.mem)
	if parent.pos-size != a.base {
		a.log.Warn("arena: temporary released after parent allocation",
			"depth", a.depth, "base", a.base, "size", size, "parent_pos", parent.pos)
		return fmt.Errorf("arena: release temporary at %d+%d with parent pos %d: %w",
			a.base, size, parent.pos, status.ErrReleasedOutOfOrder)
	}

	parent.pos -= size
	parent.open--
	a.mem = nil
	a.pos = 0
	a.carved = false
	a.status = status.Freed
	return nil
}

// Parent returns the arena a temporary was carved from, or nil for a root.
func (a *Arena) Parent() *Arena { return a.parent }

// Scoped opens a temporary of size bytes, runs fn with it, and releases it.
// The error from fn is returned first; a release failure is returned if fn
// succeeded.
func (a *Arena) Scoped(size int, fn func(t *Arena) error) error {
	t := a.Temp(size)
	if !t.Ok() {
		err := t.Err()
		_ = t.ReleaseTemp(a)
		return err
	}
	fnErr := fn(t)
	relErr := t.ReleaseTemp(a)
	if fnErr != nil {
		return fnErr
	}
	return relErr
}
