package sdjson

import (
	"github.com/pkg/errors"
)

type ErrorKind int

const (
	FormattingError    ErrorKind = iota // formatting
	SerializationError                  // serialization
	TimeError                           // time
	IoError                             // io
)

func (kind ErrorKind) String() string {
	switch kind {
	case FormattingError:
		return "formatting"
	case SerializationError:
		return "serialization"
	case TimeError:
		return "time"
	case IoError:
		return "io"
	default:
		return "unknown"
	}
}

type emitError struct {
	kind ErrorKind
	err  error
}

func (e *emitError) Error() string { return e.kind.String() + " error: " + e.err.Error() }
func (e *emitError) Unwrap() error { return e.err }

func classify(kind ErrorKind, err error) error {
	if err == nil {
		return nil
	}
	return &emitError{kind: kind, err: err}
}

// KindOf reports the taxonomy class of an error produced by this
// package.  ok is false for errors from elsewhere.
func KindOf(err error) (kind ErrorKind, ok bool) {
	var e *emitError
	if errors.As(err, &e) {
		return e.kind, true
	}
	return 0, false
}
