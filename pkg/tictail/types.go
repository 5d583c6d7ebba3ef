package tictail

import (
	"strings"
	"time"
)

// Item is one field of a resource.
type Item struct {
	Key   string      `json:"key"   yaml:"key"`
	Value interface{} `json:"value" yaml:"value"`
}

// isoLayouts are tried in order when parsing API timestamps. The API sends
// naive UTC timestamps with optional microseconds.
var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// ParseTime parses an ISO-8601 timestamp. Timestamps without a zone are UTC.
func ParseTime(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	for _, layout := range isoLayouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return parsed, true
		}
	}

	return time.Time{}, false
}

// FormatTime renders t the way the API expects time filters: naive UTC,
// with six fractional digits unless the time has no sub-second part.
func FormatTime(t time.Time) string {
	t = t.UTC()
	if t.Nanosecond()/int(time.Microsecond) == 0 {
		return t.Format("2006-01-02T15:04:05")
	}

	return t.Format("2006-01-02T15:04:05.000000")
}
