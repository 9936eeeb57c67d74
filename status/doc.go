// Package status defines the failure codes shared by every libx value.
//
// # Fallible values
//
// Arenas, managed strings and bounded lists carry a Code inline instead of
// returning a separate error alongside every result. Any operation that
// receives a value whose Code is not Ok returns immediately with that Code and
// does not touch memory it would otherwise write. This lets calls chain:
//
//	s := str.ToUpper(a, str.Copy(a, raw))
//	if !s.Ok() {
//	    return s.Err()
//	}
//
// Code.Err converts a Code into a sentinel error for use with errors.Is, and
// Of maps an error back.
//
// # Programmer errors
//
// Contract violations (an index past the end of a string, for example) are not
// data errors. They panic with a *Fatal. Catch recovers only *Fatal values so a
// host application can log the failure before shutting down.
package status
