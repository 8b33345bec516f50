package lookup

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/zjrosen/leifetch/internal/entity"
	"github.com/zjrosen/leifetch/internal/tracing"
)

// TracedClient records one span per lookup.
type TracedClient struct {
	next   Client
	tracer trace.Tracer
}

// NewTracedClient wraps next so every Lookup runs inside a span.
func NewTracedClient(next Client, tracer trace.Tracer) *TracedClient {
	return &TracedClient{next: next, tracer: tracer}
}

// Lookup implements Client.
func (c *TracedClient) Lookup(ctx context.Context, lei string) (entity.Record, error) {
	ctx, span := c.tracer.Start(ctx, tracing.SpanLookup,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String(tracing.AttrLEI, lei)),
	)
	defer span.End()

	if id := tracing.RequestIDFromContext(ctx); id != "" {
		span.SetAttributes(attribute.String(tracing.AttrRequestID, id))
	}

	rec, err := c.next.Lookup(ctx, lei)
	if err != nil {
		msg := Message(err)
		span.SetAttributes(
			attribute.String(tracing.AttrOutcome, tracing.OutcomeFailed),
			attribute.String(tracing.AttrErrorMessage, msg),
		)
		var le *Error
		if errors.As(err, &le) && le.Status != 0 {
			span.SetAttributes(attribute.Int(tracing.AttrHTTPStatus, le.Status))
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, msg)
		return rec, err
	}

	span.SetAttributes(attribute.String(tracing.AttrOutcome, tracing.OutcomeFound))
	span.SetStatus(codes.Ok, "")
	return rec, nil
}
