package util

import (
	"fmt"
	"time"

	"github.com/araddon/dateparse"
)

const ISO8601 = "2006-01-02T15:04:05.000Z"

const ISO8601_milli = "2006-01-02T15:04:05.000000Z"

const ISO8601_numtz = "2006-01-02T15:04:05.000-07:00"

const ISO8601_numtz_milli = "2006-01-02T15:04:05.000000-07:00"

const ISO8601_sec = "2006-01-02T15:04:05Z"

const ISO8601_numtz_sec = "2006-01-02T15:04:05-07:00"

var timestampLayouts = []string{
	ISO8601,
	ISO8601_milli,
	ISO8601_numtz,
	ISO8601_numtz_milli,
	ISO8601_sec,
	ISO8601_numtz_sec,
}

// ParseTimestamp parses the datetime formats which show up in atproto records. The strict layouts are tried
// first; anything else falls through to dateparse, since createdAt is client-supplied and not always
// well-formed.
func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
	}

	t, err := dateparse.ParseAny(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %q as timestamp: %w", s, err)
	}
	return t, nil
}
