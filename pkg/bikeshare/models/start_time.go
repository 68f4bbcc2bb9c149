package models

import (
	"fmt"
	"strings"
	"time"
)

// startTimeLayouts are tried in order. The city exports use the first one;
// the rest cover re-saved spreadsheets and database dumps.
var startTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02 15:04",
	"1/2/2006 15:04",
}

// ParseStartTime parses a trip timestamp. Timestamps carry no zone and are
// kept as wall-clock times in UTC so that derived month, weekday and hour
// match the text.
func ParseStartTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}

	var parseErr error
	for _, layout := range startTimeLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			if layout == time.RFC3339 {
				// Keep the local wall clock rather than converting.
				t = time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
			}
			return t, nil
		}
		parseErr = err
	}

	return time.Time{}, fmt.Errorf("unable to parse time %q: %w", s, parseErr)
}
