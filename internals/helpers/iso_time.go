package helper

import (
	"strings"
	"time"
)

const (
	// ISOMillisLayout is the wire format of every timestamp: 2024-02-10T00:00:00.000Z
	ISOMillisLayout = "2006-01-02T15:04:05.000Z"
	// DateLayout is the date-only format used by range queries.
	DateLayout = "2006-01-02"
)

// FormatISO renders t in UTC with millisecond precision.
func FormatISO(t time.Time) string {
	return t.UTC().Format(ISOMillisLayout)
}

// FormatISOPtr is FormatISO for optional timestamps; nil stays nil.
func FormatISOPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := FormatISO(*t)
	return &s
}

// ParseISOStrict accepts exactly YYYY-MM-DDTHH:MM:SS.sssZ.
func ParseISOStrict(s string) (time.Time, bool) {
	t, err := time.Parse(ISOMillisLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return t.UTC(), true
}

// ParseTimestamp accepts any RFC 3339 timestamp (fractional seconds optional).
func ParseTimestamp(s string) (time.Time, bool) {
	t, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return t.UTC(), true
}

// ParseDateYYYYMMDD parses YYYY-MM-DD into UTC midnight.
func ParseDateYYYYMMDD(s string) (time.Time, bool) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
}
