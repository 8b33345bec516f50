package tracing

// Span names.
const (
	SpanLookup = "lookup.lei_record"
)

// Span attribute keys.
const (
	AttrLEI          = "lei.identifier"
	AttrRequestID    = "lookup.request_id"
	AttrHTTPStatus   = "http.status_code"
	AttrOutcome      = "lookup.outcome"
	AttrErrorMessage = "error.message"
)

// Outcome values for AttrOutcome.
const (
	OutcomeFound  = "found"
	OutcomeFailed = "failed"
)
