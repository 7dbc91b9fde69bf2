package otel_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel/infras/otel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func record(t *testing.T, fn func(scope otel.Scope)) trace.ReadOnlySpan {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	provider := trace.NewTracerProvider(trace.WithSpanProcessor(recorder))

	_, span := provider.Tracer("test").Start(context.Background(), "span")

	scope := otel.NewScope(span)
	fn(scope)
	scope.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	return spans[0]
}

func TestScope_SetAttributes(t *testing.T) {
	day := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	span := record(t, func(scope otel.Scope) {
		scope.SetAttribute("booking.id", int64(7))
		scope.SetAttributes(map[string]any{
			"room.id":   "101",
			"nights":    3,
			"active":    true,
			"check_in":  day,
			"rooms":     []string{"101", "102"},
			"occupancy": 0.5,
			"other":     struct{ A int }{A: 1},
		})
	})

	attributes := map[attribute.Key]attribute.Value{}
	for _, kv := range span.Attributes() {
		attributes[kv.Key] = kv.Value
	}

	assert.Equal(t, int64(7), attributes["booking.id"].AsInt64())
	assert.Equal(t, "101", attributes["room.id"].AsString())
	assert.Equal(t, int64(3), attributes["nights"].AsInt64())
	assert.True(t, attributes["active"].AsBool())
	assert.Equal(t, "2025-01-01T00:00:00Z", attributes["check_in"].AsString())
	assert.Equal(t, []string{"101", "102"}, attributes["rooms"].AsStringSlice())
	assert.InDelta(t, 0.5, attributes["occupancy"].AsFloat64(), 0.0001)
	assert.Equal(t, "{1}", attributes["other"].AsString())
}

func TestScope_TraceIfError(t *testing.T) {
	span := record(t, func(scope otel.Scope) {
		scope.TraceIfError(nil)
	})
	assert.Equal(t, codes.Unset, span.Status().Code)

	span = record(t, func(scope otel.Scope) {
		scope.AddEvent("booking created")
		scope.TraceIfError(errors.New("room unavailable"))
	})
	assert.Equal(t, codes.Error, span.Status().Code)
	assert.Equal(t, "room unavailable", span.Status().Description)
	assert.Len(t, span.Events(), 2)
}
