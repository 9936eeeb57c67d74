package status

import "errors"

// Code is the failure kind carried inline by every fallible value in libx.
// The zero value is Ok.
type Code uint8

const (
	Ok                 Code = iota
	OutOfMemory             // arena or backing capacity exhausted
	Freed                   // value used after release
	DoubleFree              // released more than once
	ReleasedOutOfOrder      // temporary arena released out of LIFO order
	FreedWhileNested        // destroy called on a temporary arena
	NullInput               // required argument absent
	IteratorExhausted       // cursor advanced past its last segment
	IndexOutOfRange         // programmer error, reported through Fatal
	InvalidArgument         // negative size, bad alignment, unsupported type
	NotFound                // file does not exist
	ReadFailure             // file exists but could not be read
	CapacityExceeded        // bounded list is full

	numCodes
)

var descriptions = [numCodes]string{
	Ok:                 "no error",
	OutOfMemory:        "out of memory",
	Freed:              "memory already freed",
	DoubleFree:         "memory freed more than once",
	ReleasedOutOfOrder: "temporary arena released after parent allocation",
	FreedWhileNested:   "temporary arena freed directly",
	NullInput:          "required input is nil",
	IteratorExhausted:  "iterator exhausted",
	IndexOutOfRange:    "index out of range",
	InvalidArgument:    "invalid argument",
	NotFound:           "file not found",
	ReadFailure:        "failed to read from file",
	CapacityExceeded:   "capacity exceeded",
}

// Describe returns the human-readable message for c.
func Describe(c Code) string {
	if c >= numCodes {
		return "unknown error"
	}
	return descriptions[c]
}

// String implements fmt.Stringer.
func (c Code) String() string { return Describe(c) }

// Ok reports whether c is the success code.
func (c Code) Ok() bool { return c == Ok }

// Err returns the sentinel error for c, or nil when c is Ok.
func (c Code) Err() error {
	if c == Ok {
		return nil
	}
	if c >= numCodes {
		return errors.New("libx: " + Describe(c))
	}
	return sentinels[c]
}

// Of maps err back to its Code. A nil error is Ok; errors that wrap none of
// the sentinels map to InvalidArgument.
func Of(err error) Code {
	if err == nil {
		return Ok
	}
	var f *Fatal
	if errors.As(err, &f) {
		return f.Code
	}
	for c := OutOfMemory; c < numCodes; c++ {
		if errors.Is(err, sentinels[c]) {
			return c
		}
	}
	return InvalidArgument
}

// Codes returns every defined code in declaration order, Ok first.
func Codes() []Code {
	out := make([]Code, 0, numCodes)
	for c := Ok; c < numCodes; c++ {
		out = append(out, c)
	}
	return out
}
