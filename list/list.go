package list

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/joshuapare/libx/arena"
	"github.com/joshuapare/libx/internal/buf"
	"github.com/joshuapare/libx/status"
)

// List is a fixed-capacity array of T with a length header.
//
// The capacity is set at creation and never changes. What happens when an
// Append would exceed it is decided by the list's Policy.
type List[T any] struct {
	items    []T // len(items) == capacity; items[:length] are populated
	length   int
	elemSize int
	policy   Policy
	code     status.Code
}

// New returns a heap-backed list with room for capacity elements.
func New[T any](capacity int, opts ...Option) *List[T] {
	o := buildOptions(opts)
	l := &List[T]{elemSize: sizeOf[T](), policy: o.policy}
	if capacity < 0 {
		l.code = status.InvalidArgument
		return l
	}
	l.items = make([]T, capacity)
	return l
}

// NewIn returns a list whose element storage is carved from a.
//
// The storage lives exactly as long as the arena range it came from. T must
// not contain pointers, since arena memory is invisible to the garbage
// collector; such types yield InvalidArgument.
func NewIn[T any](a *arena.Arena, capacity int, opts ...Option) *List[T] {
	o := buildOptions(opts)
	l := &List[T]{elemSize: sizeOf[T](), policy: o.policy}

	switch {
	case a == nil:
		l.code = status.NullInput
		return l
	case capacity < 0 || hasPointers(reflect.TypeOf((*T)(nil)).Elem()):
		l.code = status.InvalidArgument
		return l
	}

	total, ok := buf.Mul(capacity, l.elemSize)
	if !ok {
		l.code = status.OutOfMemory
		return l
	}
	mem, err := a.AllocAligned(total, alignOf[T]())
	if err != nil {
		l.code = status.Of(err)
		return l
	}
	if capacity == 0 || l.elemSize == 0 {
		l.items = make([]T, capacity)
		return l
	}
	l.items = unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(mem))), capacity)
	clear(l.items)
	return l
}

// Append adds item at the end.
//
// On a full list the policy decides: Reject returns CapacityExceeded,
// DropNewest discards item and returns nil, ReplaceOldest shifts every
// element down by one and stores item last.
func (l *List[T]) Append(item T) error {
	if l.code != status.Ok {
		return l.code.Err()
	}
	if l.length < len(l.items) {
		l.items[l.length] = item
		l.length++
		return nil
	}

	switch l.policy {
	case DropNewest:
		return nil
	case ReplaceOldest:
		if len(l.items) == 0 {
			return nil
		}
		copy(l.items, l.items[1:])
		l.items[len(l.items)-1] = item
		return nil
	default:
		return fmt.Errorf("list: append to full list of %d: %w",
			len(l.items), status.ErrCapacityExceeded)
	}
}

// Pop removes the last element and returns a pointer to its slot. The slot
// stays valid until the next Append overwrites it. Pop on an empty or failed
// list returns nil, false.
func (l *List[T]) Pop() (*T, bool) {
	if l.code != status.Ok || l.length == 0 {
		return nil, false
	}
	l.length--
	return &l.items[l.length], true
}

// At returns the element at i. An index outside [0, Len) panics with a
// *status.Fatal.
func (l *List[T]) At(i int) T {
	if l.code != status.Ok {
		status.Panic(l.code, "list.At", "index %d into failed list", i)
	}
	if i < 0 || i >= l.length {
		status.Panic(status.IndexOutOfRange, "list.At", "index %d of length %d", i, l.length)
	}
	return l.items[i]
}

// Items returns the populated elements. The slice aliases the list.
func (l *List[T]) Items() []T {
	if l.code != status.Ok {
		return nil
	}
	return l.items[:l.length:l.length]
}

// Reset empties the list without releasing storage.
func (l *List[T]) Reset() {
	if l.code == status.Ok {
		l.length = 0
	}
}

// Free drops the element storage. Freeing twice returns DoubleFree; every
// other operation on a freed list reports Freed.
func (l *List[T]) Free() error {
	if l.code == status.Freed {
		return fmt.Errorf("list: free: %w", status.ErrDoubleFree)
	}
	l.items = nil
	l.length = 0
	l.code = status.Freed
	return nil
}

// Len is the number of populated elements.
func (l *List[T]) Len() int { return l.length }

// Cap is the fixed capacity.
func (l *List[T]) Cap() int { return len(l.items) }

// ElemSize is the width of one element in bytes.
func (l *List[T]) ElemSize() int { return l.elemSize }

// Policy is the overflow policy in effect.
func (l *List[T]) Policy() Policy { return l.policy }

// Full reports whether Len == Cap.
func (l *List[T]) Full() bool { return l.length == len(l.items) }

// Status is the list's code.
func (l *List[T]) Status() status.Code { return l.code }

// Err returns the sentinel error for the list's status, or nil.
func (l *List[T]) Err() error { return l.code.Err() }

func sizeOf[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

func alignOf[T any]() int {
	var zero T
	return int(unsafe.Alignof(zero))
}

// hasPointers reports whether values of t hold anything the garbage
// collector must trace.
func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return t.Len() > 0 && hasPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		return true
	}
}
