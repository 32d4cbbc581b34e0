package sdjson

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/sdlog/sdlog/sdbytes"
	"github.com/sdlog/sdlog/sdutil"

	"github.com/Masterminds/semver/v3"
	"github.com/google/uuid"
)

const (
	maxBufferToKeep = 1024 * 10
	minBuffer       = 1024
)

// sourceLocationKey is the full LogEntry field name; Cloud Logging
// only recognizes source locations under this key.
const sourceLocationKey = "logging.googleapis.com/sourceLocation"

type Option func(*Layer)

// TimeFormatter is the function signature for custom time formatters
// if anything other than quoted RFC3339 UTC is desired.  The value
// must be appended to the byte slice (which must be returned) as a
// complete JSON value.  The slice may not be safely accessed outside
// of the duration of the call.  The only acceptable operation on the
// slice is to append.
type TimeFormatter func(b []byte, t time.Time) ([]byte, error)

type Layer struct {
	writer         sdbytes.BytesWriter
	id             uuid.UUID
	logSpans       bool
	fastKeys       bool
	service        string
	serviceVersion *semver.Version
	timeFormatter  TimeFormatter
	errorFunc      func(error)
	builderPool    sync.Pool // filled with *builder
}

type builder struct {
	sdutil.JBuilder
	encoder *json.Encoder
	layer   *Layer
}

// WithSpanLogging controls whether events carry a "span" entry for
// the current span.  The default is false: no "span" key is ever
// emitted.
func WithSpanLogging(b bool) Option {
	return func(layer *Layer) {
		layer.logSpans = b
	}
}

// WithServiceContext adds a "serviceContext" entry to every document,
// which Cloud Error Reporting uses to group errors by service.
// version may be nil.
func WithServiceContext(service string, version *semver.Version) Option {
	return func(layer *Layer) {
		layer.service = service
		layer.serviceVersion = version
	}
}

// WithTimeFormatter specifies how the "time" value is serialized.
// The default appends a quoted RFC3339 UTC timestamp.  If the
// formatter returns an error the document is still emitted with an
// empty "time" value and the error is reported as a diagnostic.
func WithTimeFormatter(formatter TimeFormatter) Option {
	return func(layer *Layer) {
		layer.timeFormatter = formatter
	}
}

// WithUncheckedKeys skips escape-checking of field keys.  Only safe
// when every call site uses keys that need no JSON escaping.
func WithUncheckedKeys(b bool) Option {
	return func(layer *Layer) {
		layer.fastKeys = b
	}
}

// WithErrorReporter replaces the default stderr diagnostic reporter.
// Dropped events are surfaced only through this function.
func WithErrorReporter(reporter func(error)) Option {
	return func(layer *Layer) {
		layer.errorFunc = reporter
	}
}

func defaultTimeFormatter(b []byte, t time.Time) ([]byte, error) {
	b = append(b, '"')
	b = t.UTC().AppendFormat(b, time.RFC3339)
	b = append(b, '"')
	return b, nil
}
