package arena

import (
	"fmt"

	"github.com/joshuapare/libx/internal/buf"
	"github.com/joshuapare/libx/status"
)

// Backing supplies and reclaims the single block behind a root arena.
// It is the only place libx asks the process for memory.
type Backing interface {
	// Alloc returns a block of exactly size bytes, or an error if the
	// request cannot be satisfied.
	Alloc(size int) ([]byte, error)

	// Free returns a block previously obtained from Alloc.
	Free(b []byte) error
}

// Heap allocates blocks from the Go heap. Free is a no-op; the block is
// reclaimed once nothing references it.
var Heap Backing = heapBacking{}

type heapBacking struct{}

func (heapBacking) Alloc(size int) ([]byte, error) {
	if size < 0 {
		return nil, status.ErrInvalidArgument
	}
	return make([]byte, size), nil
}

func (heapBacking) Free([]byte) error { return nil }

// Budget wraps another Backing and refuses requests that would push the total
// of outstanding blocks past Limit.
type Budget struct {
	limit int
	used  int
	inner Backing
}

// NewBudget returns a Budget of limit bytes drawing from inner (Heap if nil).
func NewBudget(limit int, inner Backing) *Budget {
	if inner == nil {
		inner = Heap
	}
	return &Budget{limit: limit, inner: inner}
}

func (b *Budget) Alloc(size int) ([]byte, error) {
	total, ok := buf.Add(b.used, size)
	if !ok || total > b.limit {
		return nil, fmt.Errorf("arena: budget %d/%d cannot fit %d bytes: %w",
			b.used, b.limit, size, status.ErrOutOfMemory)
	}
	mem, err := b.inner.Alloc(size)
	if err != nil {
		return nil, err
	}
	b.used = total
	return mem, nil
}

func (b *Budget) Free(mem []byte) error {
	if err := b.inner.Free(mem); err != nil {
		return err
	}
	b.used -= len(mem)
	return nil
}

// Used is the number of bytes currently handed out.
func (b *Budget) Used() int { return b.used }

// Limit is the configured ceiling.
func (b *Budget) Limit() int { return b.limit }
