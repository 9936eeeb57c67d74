//go:build linux || darwin || freebsd

package arena

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// Mmap allocates blocks as private anonymous mappings outside the Go heap.
// Blocks are zero-filled by the kernel and unmapped on Free.
var Mmap Backing = mmapBacking{}

type mmapBacking struct{}

func (mmapBacking) Alloc(size int) ([]byte, error) {
	if size < 0 {
		return nil, fmt.Errorf("arena: mmap %d bytes: invalid size", size)
	}
	if size == 0 {
		return []byte{}, nil
	}
	mem, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("arena: mmap %d bytes: %w", size, err)
	}
	return mem, nil
}

func (mmapBacking) Free(mem []byte) error {
	if len(mem) == 0 {
		return nil
	}
	err := unix.Munmap(mem)
	if errors.Is(err, unix.EINVAL) {
		// Already unmapped.
		return nil
	}
	return err
}
