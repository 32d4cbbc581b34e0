/*
sdjson serializes structured log events into single-line JSON documents
that conform to the Google Cloud Logging (formerly Stackdriver)
ingestion schema.

Each event produces exactly one newline-terminated JSON object:

	{
		"time": "2026-08-28T09:30:00Z",
		"severity": "WARNING",
		"logger": "db",
		"logging.googleapis.com/sourceLocation": {
			"file": "pool.go",
			"line": 42
		},
		"span": {
			"name": "checkout",
			"order": "ab39d"
		},
		"retries": 3
	}

"time" is an RFC3339 UTC timestamp.  If the configured time formatter
fails, the document is still emitted with an empty "time" value.

"severity" is drawn from the Cloud Logging severity vocabulary; see
sdnum.Level.Severity for the mapping.

"logger" is the event's target category, verbatim.

"logging.googleapis.com/sourceLocation" is always present; "file" and
"line" are null when the source position is unknown.

"serviceContext" appears between "logger" and the source location when
WithServiceContext was used.

"span" is only present when WithSpanLogging(true) was used and the
context carries a current span (see sdregistry).  It holds the span's
name plus every field that was recorded on the span when it was
entered.

All remaining entries are the event's own fields, in the order they
were attached.  Caller keys that collide with envelope keys are not
deduplicated; consumers see the later value.

Emission is best-effort: any failure drops the event and reports a
diagnostic through the error reporter (stderr by default).  No error
and no panic ever reaches the code that logged the event.
*/
package sdjson
