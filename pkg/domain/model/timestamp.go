package model

import (
	"time"

	"github.com/dd2482/submitcheck/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Accepted timestamp layouts. The slash format has no zone information and is
// interpreted as UTC; the ISO-8601 layout requires an explicit offset
// ("Z" or ±HHMM), which is what GitHub payloads carry.
const (
	layoutSlash = "01/02/2006 15:04:05"
	layoutISO   = "2006-01-02T15:04:05Z0700"
)

// ParseTimestamp parses a timestamp in either MM/DD/YYYY HH:MM:SS (UTC) or
// ISO-8601 with explicit offset. The slash format is attempted first.
func ParseTimestamp(raw string) (time.Time, error) {
	if ts, err := time.ParseInLocation(layoutSlash, raw, time.UTC); err == nil {
		return ts, nil
	}

	ts, err := time.Parse(layoutISO, raw)
	if err != nil {
		return time.Time{}, goerr.Wrap(types.ErrMalformedTimestamp, "unsupported timestamp format", goerr.V("raw", raw))
	}

	return ts, nil
}
