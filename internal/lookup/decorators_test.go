package lookup

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/zjrosen/leifetch/internal/cachemanager"
	"github.com/zjrosen/leifetch/internal/entity"
	"github.com/zjrosen/leifetch/internal/tracing"
)

const testLEI = "5493001KJTIIGC8Y1R12"

type countingClient struct {
	calls []string
	rec   entity.Record
	err   error
}

func (c *countingClient) Lookup(_ context.Context, lei string) (entity.Record, error) {
	c.calls = append(c.calls, lei)
	return c.rec, c.err
}

func newRecordCache() *cachemanager.InMemoryCacheManager[string, entity.Record] {
	return cachemanager.NewInMemoryCacheManager[string, entity.Record]("test", time.Minute, time.Minute)
}

func TestCachedClient_ServesRepeatFromCache(t *testing.T) {
	next := &countingClient{rec: entity.Record{LEI: testLEI, LegalName: "Test Corp"}}
	client := NewCachedClient(next, newRecordCache(), time.Minute)

	for i := 0; i < 3; i++ {
		rec, err := client.Lookup(context.Background(), testLEI)
		require.NoError(t, err)
		require.Equal(t, "Test Corp", rec.LegalName)
	}
	require.Equal(t, []string{testLEI}, next.calls)
	require.Equal(t, cachemanager.Stats{Hits: 2, Misses: 1}, client.Stats())
}

func TestCachedClient_DoesNotCacheFailures(t *testing.T) {
	next := &countingClient{err: &Error{Status: 404, Body: &ErrorBody{Message: "Not Found"}}}
	client := NewCachedClient(next, newRecordCache(), 0)

	_, err := client.Lookup(context.Background(), testLEI)
	require.Error(t, err)
	_, err = client.Lookup(context.Background(), testLEI)
	require.Error(t, err)

	require.Len(t, next.calls, 2)
}

func TestCachedClient_KeysAreVerbatim(t *testing.T) {
	next := &countingClient{rec: entity.Record{LegalName: "Test Corp"}}
	client := NewCachedClient(next, newRecordCache(), time.Minute)

	_, _ = client.Lookup(context.Background(), testLEI)
	_, _ = client.Lookup(context.Background(), " "+testLEI[1:])

	require.Len(t, next.calls, 2)
}

func newRecorder() (*tracetest.SpanRecorder, *sdktrace.TracerProvider) {
	recorder := tracetest.NewSpanRecorder()
	return recorder, sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
}

func attrMap(attrs []attribute.KeyValue) map[string]attribute.Value {
	m := make(map[string]attribute.Value, len(attrs))
	for _, kv := range attrs {
		m[string(kv.Key)] = kv.Value
	}
	return m
}

func TestTracedClient_Success(t *testing.T) {
	recorder, tp := newRecorder()
	next := &countingClient{rec: entity.Record{LEI: testLEI}}
	client := NewTracedClient(next, tp.Tracer("test"))

	ctx := tracing.ContextWithRequestID(context.Background(), "req-42")
	_, err := client.Lookup(ctx, testLEI)
	require.NoError(t, err)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	require.Equal(t, tracing.SpanLookup, spans[0].Name())
	require.Equal(t, codes.Ok, spans[0].Status().Code)

	attrs := attrMap(spans[0].Attributes())
	require.Equal(t, testLEI, attrs[tracing.AttrLEI].AsString())
	require.Equal(t, "req-42", attrs[tracing.AttrRequestID].AsString())
	require.Equal(t, tracing.OutcomeFound, attrs[tracing.AttrOutcome].AsString())
}

func TestTracedClient_Failure(t *testing.T) {
	recorder, tp := newRecorder()
	failure := &Error{Status: 404, Body: &ErrorBody{Message: "Not Found"}}
	client := NewTracedClient(&countingClient{err: failure}, tp.Tracer("test"))

	_, err := client.Lookup(context.Background(), testLEI)
	require.True(t, errors.Is(err, failure))

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	require.Equal(t, codes.Error, spans[0].Status().Code)
	require.Equal(t, "Not Found", spans[0].Status().Description)

	attrs := attrMap(spans[0].Attributes())
	require.Equal(t, tracing.OutcomeFailed, attrs[tracing.AttrOutcome].AsString())
	require.Equal(t, int64(404), attrs[tracing.AttrHTTPStatus].AsInt64())
	_, hasRequestID := attrs[tracing.AttrRequestID]
	require.False(t, hasRequestID)
}

func TestClientFunc(t *testing.T) {
	var got string
	client := ClientFunc(func(_ context.Context, lei string) (entity.Record, error) {
		got = lei
		return entity.Record{LEI: lei}, nil
	})

	rec, err := client.Lookup(context.Background(), testLEI)
	require.NoError(t, err)
	require.Equal(t, testLEI, got)
	require.Equal(t, testLEI, rec.LEI)
}
