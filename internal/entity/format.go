package entity

import (
	"strings"
	"time"
)

// DisplayLayout renders dates as "DD Mon YYYY", e.g. "18 Mar 2025".
const DisplayLayout = "02 Jan 2006"

// InvalidDate is returned by FormatDate for input that cannot be parsed.
const InvalidDate = "Invalid Date"

// parseLayouts are tried in order. They cover ISO-8601 date-times with
// second or minute precision and a Z, ±hh:mm, ±hhmm or ±hh offset, the same
// without an offset, and a bare date. A fraction after the seconds, with a
// dot or a comma, is accepted by time.Parse without a layout of its own.
var parseLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05Z07",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04Z0700",
	"2006-01-02T15:04Z07",
	"2006-01-02T15:04",
	time.DateOnly,
}

// FormatDate renders an ISO-8601 timestamp in the viewer's local timezone.
func FormatDate(s string) string {
	return FormatDateIn(s, time.Local)
}

// FormatDateIn renders an ISO-8601 timestamp in loc using DisplayLayout.
// Empty input yields "", unparseable input yields InvalidDate.
// Timestamps without an offset are read as UTC.
func FormatDateIn(s string, loc *time.Location) string {
	if s == "" {
		return ""
	}
	if loc == nil {
		loc = time.Local
	}
	t, ok := parse(s)
	if !ok {
		return InvalidDate
	}
	return t.In(loc).Format(DisplayLayout)
}

func parse(s string) (time.Time, bool) {
	// ISO-8601 allows lowercase t and z designators.
	s = strings.ToUpper(s)
	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
