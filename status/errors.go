package status

import "errors"

// Sentinel errors, one per non-Ok code. Compare with errors.Is.
var (
	ErrOutOfMemory        = errors.New("libx: " + descriptions[OutOfMemory])
	ErrFreed              = errors.New("libx: " + descriptions[Freed])
	ErrDoubleFree         = errors.New("libx: " + descriptions[DoubleFree])
	ErrReleasedOutOfOrder = errors.New("libx: " + descriptions[ReleasedOutOfOrder])
	ErrFreedWhileNested   = errors.New("libx: " + descriptions[FreedWhileNested])
	ErrNullInput          = errors.New("libx: " + descriptions[NullInput])
	ErrIteratorExhausted  = errors.New("libx: " + descriptions[IteratorExhausted])
	ErrIndexOutOfRange    = errors.New("libx: " + descriptions[IndexOutOfRange])
	ErrInvalidArgument    = errors.New("libx: " + descriptions[InvalidArgument])
	ErrNotFound           = errors.New("libx: " + descriptions[NotFound])
	ErrReadFailure        = errors.New("libx: " + descriptions[ReadFailure])
	ErrCapacityExceeded   = errors.New("libx: " + descriptions[CapacityExceeded])
)

var sentinels = [numCodes]error{
	OutOfMemory:        ErrOutOfMemory,
	Freed:              ErrFreed,
	DoubleFree:         ErrDoubleFree,
	ReleasedOutOfOrder: ErrReleasedOutOfOrder,
	FreedWhileNested:   ErrFreedWhileNested,
	NullInput:          ErrNullInput,
	IteratorExhausted:  ErrIteratorExhausted,
	IndexOutOfRange:    ErrIndexOutOfRange,
	InvalidArgument:    ErrInvalidArgument,
	NotFound:           ErrNotFound,
	ReadFailure:        ErrReadFailure,
	CapacityExceeded:   ErrCapacityExceeded,
}
