package arena

import (
	"fmt"
	"log/slog"
	"unsafe"

	"github.com/joshuapare/libx/internal/buf"
	"github.com/joshuapare/libx/status"
)

// Arena is a fixed-capacity bump allocator over one contiguous block.
//
// A root arena owns its block and must be released with Destroy. A temporary
// arena (see Temp) is an index range inside its parent's block and must be
// released with ReleaseTemp, in reverse order of creation.
//
// Arena is not safe for concurrent use.
type Arena struct {
	mem   []byte // this arena's range; a sub-slice of the parent's for temporaries
	base  int    // offset of mem within parent.mem
	pos   int    // next free offset, 0 <= pos <= len(mem)
	depth int

	status status.Code

	parent *Arena
	carved bool // temporary was successfully carved from parent
	open   int  // live temporaries carved from this arena

	peak   int
	allocs int

	backing Backing
	log     *slog.Logger
}

// New allocates a root arena of size bytes from the configured Backing
// (Heap by default).
//
// New never returns nil. If the block cannot be obtained the arena carries
// status OutOfMemory and every allocation from it fails; a negative size
// yields InvalidArgument.
func New(size int, opts ...Option) *Arena {
	o := buildOptions(opts)
	a := &Arena{backing: o.backing, log: o.logger}

	if size < 0 {
		a.status = status.InvalidArgument
		return a
	}

	mem, err := o.backing.Alloc(size)
	if err != nil {
		a.status = status.OutOfMemory
		a.log.Warn("arena: create failed", "size", size, "err", err)
		return a
	}
	a.mem = mem
	return a
}

// Alloc returns the next n bytes of the arena and advances the bump pointer.
//
// The returned slice has its capacity clipped to n so appends cannot spill
// into neighbouring allocations. Contents are not zeroed.
//
// If the arena already carries a failure, Alloc returns it without touching
// memory. If n bytes do not fit, the arena's status becomes OutOfMemory and
// pos is left unchanged.
func (a *Arena) Alloc(n int) ([]byte, error) {
	if a == nil {
		return nil, status.ErrNullInput
	}
	if a.status != status.Ok {
		return nil, a.status.Err()
	}
	if n < 0 {
		return nil, fmt.Errorf("arena: alloc %d bytes: %w", n, status.ErrInvalidArgument)
	}

	end, ok := buf.Fits(len(a.mem), a.pos, n)
	if !ok {
		a.status = status.OutOfMemory
		return nil, fmt.Errorf("arena: alloc %d bytes at %d/%d: %w",
			n, a.pos, len(a.mem), status.ErrOutOfMemory)
	}
	return a.bump(a.pos, end), nil
}

// AllocAligned is Alloc with the start of the returned range aligned in
// memory to align bytes, which must be a power of two. Padding bytes are
// consumed from the arena.
func (a *Arena) AllocAligned(n, align int) ([]byte, error) {
	if a == nil {
		return nil, status.ErrNullInput
	}
	if a.status != status.Ok {
		return nil, a.status.Err()
	}
	if n < 0 || !buf.PowerOfTwo(align) {
		return nil, fmt.Errorf("arena: alloc %d bytes aligned %d: %w",
			n, align, status.ErrInvalidArgument)
	}

	start := a.pos + buf.Pad(a.addr()+uintptr(a.pos), align)
	end, ok := buf.Fits(len(a.mem), start, n)
	if !ok {
		a.status = status.OutOfMemory
		return nil, fmt.Errorf("arena: alloc %d bytes aligned %d at %d/%d: %w",
			n, align, a.pos, len(a.mem), status.ErrOutOfMemory)
	}
	return a.bump(start, end), nil
}

// bump hands out mem[start:end] and moves pos to end.
func (a *Arena) bump(start, end int) []byte {
	a.pos = end
	a.allocs++
	if a.pos > a.peak {
		a.peak = a.pos
	}
	return a.mem[start:end:end]
}

func (a *Arena) addr() uintptr {
	if len(a.mem) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(unsafe.SliceData(a.mem)))
}

// Destroy returns a root arena's block to its Backing.
//
// Destroying an arena twice fails with DoubleFree. Temporaries cannot be
// destroyed (FreedWhileNested); release them with ReleaseTemp instead. A root
// with live temporaries is not destroyed either: the call fails with
// FreedWhileNested and changes nothing.
// After Destroy the arena's status is Freed and its memory must not be used.
func (a *Arena) Destroy() error {
	if a == nil {
		return status.ErrNullInput
	}
	if a.status == status.Freed {
		a.log.Warn("arena: double free", "size", len(a.mem), "depth", a.depth)
		return fmt.Errorf("arena: destroy: %w", status.ErrDoubleFree)
	}
	if a.depth != 0 {
		a.log.Warn("arena: destroy on temporary", "depth", a.depth)
		return fmt.Errorf("arena: destroy at depth %d: %w", a.depth, status.ErrFreedWhileNested)
	}
	if a.open > 0 {
		a.log.Warn("arena: destroy with live temporaries", "open", a.open)
		return fmt.Errorf("arena: destroy with %d live temporaries: %w",
			a.open, status.ErrFreedWhileNested)
	}

	var err error
	if a.mem != nil {
		err = a.backing.Free(a.mem)
	}
	a.log.Debug("arena: destroyed", "size", len(a.mem), "peak", a.peak, "allocs", a.allocs)
	a.mem = nil
	a.pos = 0
	a.status = status.Freed
	if err != nil {
		return fmt.Errorf("arena: release block: %w", err)
	}
	return nil
}

// Reset rewinds the arena to empty and clears a sticky OutOfMemory status.
// It fails while temporaries carved from the arena are still live.
func (a *Arena) Reset() error {
	if a == nil {
		return status.ErrNullInput
	}
	if a.status == status.Freed {
		return status.ErrFreed
	}
	if a.open > 0 {
		return fmt.Errorf("arena: reset with %d live temporaries: %w",
			a.open, status.ErrReleasedOutOfOrder)
	}
	a.pos = 0
	if a.status == status.OutOfMemory && a.mem != nil {
		a.status = status.Ok
	}
	return nil
}

// Pos is the number of bytes handed out so far.
func (a *Arena) Pos() int { return a.pos }

// Cap is the arena's fixed capacity in bytes.
func (a *Arena) Cap() int { return len(a.mem) }

// Remaining is Cap minus Pos.
func (a *Arena) Remaining() int { return len(a.mem) - a.pos }

// Depth is 0 for a root arena and parent depth + 1 for a temporary.
func (a *Arena) Depth() int { return a.depth }

// Status is the arena's current code.
func (a *Arena) Status() status.Code {
	if a == nil {
		return status.NullInput
	}
	return a.status
}

// Ok reports whether the arena can still allocate.
func (a *Arena) Ok() bool { return a.Status() == status.Ok }

// Err returns the sentinel error for the arena's status, or nil.
func (a *Arena) Err() error { return a.Status().Err() }
