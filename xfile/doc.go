// Package xfile loads files for the arena and string layers.
//
// Open maps a file read-only and hands back its bytes; Close releases them.
// Load copies a file straight into an arena as a str.String, which is the
// usual way an editor buffer is read:
//
//	a := arena.New(1 << 20)
//	text := xfile.Load(a, "notes.txt", xfile.WithEncoding(xfile.Windows1252))
//	if !text.Ok() {
//	    return text.Err() // status.ErrNotFound, status.ErrReadFailure, ...
//	}
//
// Errors are reported with the codes of package status: NotFound when the
// path does not exist, ReadFailure for anything else the OS refuses.
package xfile
