/*
Package sdotel bridges OpenTelemetry trace context into Cloud Logging
trace-correlation fields.  When a context carries a valid OTEL span
context, Fields returns the LogEntry keys that let Cloud Logging
associate the log line with the trace:

	logging.googleapis.com/trace
	logging.googleapis.com/spanId
	logging.googleapis.com/trace_sampled

Attach the returned fields to the event before handing it to a layer.
The core packages have no dependency on OTEL; this bridge is read-only
and one-directional.
*/
package sdotel

import (
	"context"

	"github.com/sdlog/sdlog/sdbase"

	"go.opentelemetry.io/otel/trace"
)

const (
	traceKey        = "logging.googleapis.com/trace"
	spanIDKey       = "logging.googleapis.com/spanId"
	traceSampledKey = "logging.googleapis.com/trace_sampled"
)

// Fields extracts trace-correlation fields from ctx.  projectID is
// the Google Cloud project the trace belongs to; Cloud Logging
// expects the trace reference in projects/<id>/traces/<traceID> form.
// Returns nil when ctx carries no valid span context.
func Fields(ctx context.Context, projectID string) []sdbase.Field {
	spanContext := trace.SpanContextFromContext(ctx)
	if !spanContext.IsValid() {
		return nil
	}
	fields := []sdbase.Field{
		sdbase.String(traceKey, "projects/"+projectID+"/traces/"+spanContext.TraceID().String()),
		sdbase.String(spanIDKey, spanContext.SpanID().String()),
	}
	if spanContext.IsSampled() {
		fields = append(fields, sdbase.Bool(traceSampledKey, true))
	}
	return fields
}
