package translate

import (
	"strings"
	"time"
)

// Accepted updated_at layouts. Fractional seconds are accepted by time.Parse
// even when the layout omits them.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	time.DateOnly,
}

// NormalizeTimestamp re-renders an ISO-8601 timestamp in UTC with a trailing
// Z. Values without a zone are taken as UTC. Anything unparseable yields "".
func NormalizeTimestamp(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	for _, layout := range timestampLayouts {
		if ts, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			return ts.UTC().Format(time.RFC3339Nano)
		}
	}
	return ""
}
