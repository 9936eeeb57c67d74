//go:build !linux && !darwin && !freebsd

package arena

// Mmap falls back to Heap where anonymous mappings are not wired up.
var Mmap Backing = heapBacking{}
