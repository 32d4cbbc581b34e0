// Package sdbytes defines the contract between byte-building log
// layers and the destinations that receive their output.
package sdbytes

// BytesWriter receives fully-formed log lines.  Implementations
// must tolerate Line being called from multiple threads; each call
// carries one complete newline-terminated document.  The byte slice
// is only valid for the duration of the call.
type BytesWriter interface {
	Line([]byte) error
	Buffered() bool
	Close() // no point in returning an error
}
