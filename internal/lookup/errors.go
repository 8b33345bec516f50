package lookup

import "errors"

// FallbackMessage is shown when a failure carries no message at all.
const FallbackMessage = "Error fetching data."

// ErrorBody is the structured payload a registry returns with a failure.
type ErrorBody struct {
	Message string `json:"message"`
}

// Error is a failed lookup. Body is set when the registry returned a
// structured error payload; Message is the transport-level description.
type Error struct {
	Status  int
	Body    *ErrorBody
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Body != nil && e.Body.Message != "" {
		return e.Body.Message
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "lookup failed"
}

func (e *Error) Unwrap() error {
	return e.Err
}

// messageExtractor pulls a user-facing message out of a failure.
// ok is false when the extractor does not apply or found nothing.
type messageExtractor func(err error) (msg string, ok bool)

// messageExtractors are tried in priority order; the first hit wins.
var messageExtractors = []messageExtractor{
	bodyMessage,
	topLevelMessage,
}

// Message returns the text to display for a failed lookup.
func Message(err error) string {
	if err == nil {
		return ""
	}
	for _, extract := range messageExtractors {
		if msg, ok := extract(err); ok {
			return msg
		}
	}
	return FallbackMessage
}

func bodyMessage(err error) (string, bool) {
	var le *Error
	if errors.As(err, &le) && le.Body != nil && le.Body.Message != "" {
		return le.Body.Message, true
	}
	return "", false
}

// topLevelMessage reads only the outermost error. A wrapper's own text
// describes the failure better than a *Error it wraps.
func topLevelMessage(err error) (string, bool) {
	if le, ok := err.(*Error); ok { //nolint:errorlint // outermost error only
		return le.Message, le.Message != ""
	}
	msg := err.Error()
	return msg, msg != ""
}
