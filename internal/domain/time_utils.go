package domain

import (
	"fmt"
	"strings"
	"time"
)

const (
	DatetimeLayout      = "2006-01-02T15:04:05Z"
	NaiveDatetimeLayout = "2006-01-02T15:04:05.999999999"
	OnlyDateTimeLayout  = "2006-01-02 15:04:05.999999999"
)

// timestampLayouts are tried in order. Layouts without a zone are read as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	NaiveDatetimeLayout,
	OnlyDateTimeLayout,
}

// ParseTimestamp parses an ISO-8601 timestamp as emitted by the history service.
// Timestamps without a zone offset are treated as UTC.
func ParseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", value)
}

// FormatTimestamp formats t the way history timestamps are rendered
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(DatetimeLayout)
}
