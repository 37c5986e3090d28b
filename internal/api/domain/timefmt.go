package domain

import (
	"strings"
	"time"
)

const (
	// TimeLayout is the stored timestamp layout.
	TimeLayout = "2006-01-02 15:04:05"
	// DateLayout is the date layout used by the date-range filters.
	DateLayout = "2006-01-02"
)

// timeLayouts are the accepted input layouts, tried in order. The first two
// are what the web client's datetime-local inputs produce.
var timeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	TimeLayout,
	"2006-01-02 15:04",
	time.RFC3339,
}

// NormalizeTime parses a caller-supplied timestamp and re-renders it in the
// stored layout. Anything unparseable is ErrInvalidTime.
func NormalizeTime(s string) (string, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(TimeLayout), nil
		}
	}
	return "", ErrInvalidTime
}

// NormalizeDate validates a date-only value used as a filter bound.
func NormalizeDate(s string) (string, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return "", ErrInvalidTime
	}
	return t.Format(DateLayout), nil
}
