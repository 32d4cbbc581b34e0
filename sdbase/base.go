// Package sdbase defines the contract between event sources and the
// layers that serialize events.  Event sources build Events; layers
// consume them through the Visitor callbacks.
package sdbase

import (
	"time"

	"github.com/sdlog/sdlog/sdnum"
)

// Event is one discrete log record.  File and Line are nil when the
// source position is unknown.
type Event struct {
	Time   time.Time
	Level  sdnum.Level
	Logger string // target category, emitted verbatim
	File   *string
	Line   *uint32
	Fields []Field
}

// Visitor receives one callback per attached field.  A visitor is
// single-use and single-pass: Finish must be called exactly once,
// after all field callbacks have been delivered, and no callback may
// be invoked afterwards.
type Visitor interface {
	Int64(k string, v int64)
	Uint64(k string, v uint64)
	Float64(k string, v float64)
	Bool(k string, v bool)
	String(k string, v string)

	// Any receives values that have no dedicated callback.  They
	// are serialized from their generic display representation so
	// that no field is ever dropped.
	Any(k string, v interface{})

	// Error receives error-valued fields so that cause chains can
	// be preserved rather than flattened into a single string.
	Error(k string, v error)

	Finish() error
}
