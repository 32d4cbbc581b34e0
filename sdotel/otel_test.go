package sdotel_test

import (
	"context"
	"strings"
	"testing"

	"github.com/sdlog/sdlog/sdbase"
	"github.com/sdlog/sdlog/sdotel"
	"github.com/sdlog/sdlog/sdutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestFieldsWithoutSpanContext(t *testing.T) {
	assert.Nil(t, sdotel.Fields(context.Background(), "my-project"))
}

func TestFieldsFromActiveSpan(t *testing.T) {
	var buffer sdutil.Buffer
	exporter, err := stdouttrace.New(
		stdouttrace.WithWriter(&buffer),
	)
	require.NoError(t, err, "exporter")

	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
	)
	ctx := context.Background()
	defer func() {
		assert.NoError(t, tracerProvider.Shutdown(context.Background()), "shutdown")
	}()

	tracer := tracerProvider.Tracer("")
	ctx, span := tracer.Start(ctx, "test-span")
	span.SetAttributes(attribute.String("kind", "test"))
	defer span.End()

	fields := sdotel.Fields(ctx, "my-project")
	require.Len(t, fields, 3, "trace, spanId, sampled")

	byKey := make(map[string]sdbase.Field)
	for _, field := range fields {
		byKey[field.Key] = field
	}

	traceField, ok := byKey["logging.googleapis.com/trace"]
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(traceField.String, "projects/my-project/traces/"), traceField.String)
	assert.Equal(t,
		"projects/my-project/traces/"+span.SpanContext().TraceID().String(),
		traceField.String)

	spanField, ok := byKey["logging.googleapis.com/spanId"]
	require.True(t, ok)
	assert.Equal(t, span.SpanContext().SpanID().String(), spanField.String)

	sampledField, ok := byKey["logging.googleapis.com/trace_sampled"]
	require.True(t, ok)
	assert.Equal(t, sdbase.BoolType, sampledField.Type)
	assert.Equal(t, true, sampledField.Any)
}
