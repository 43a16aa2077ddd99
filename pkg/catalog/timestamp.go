package catalog

import (
	"strings"
	"time"
)

// timestampLayouts are tried in order when parsing text timestamps. Naive
// layouts (no zone) are interpreted in local time.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseTimestamp normalizes a heterogeneous date value into comparable epoch
// seconds. Absent, empty, or unparseable input degrades to 0.0; it never
// fails the caller.
func ParseTimestamp(value any) float64 {
	switch v := value.(type) {
	case nil:
		return 0.0
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		return parseTextTimestamp(v)
	default:
		return 0.0
	}
}

// parseTextTimestamp parses an ISO-8601-like string, accepting a trailing
// "Z" UTC suffix.
func parseTextTimestamp(text string) float64 {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0.0
	}

	if zoned, err := time.Parse(time.RFC3339, strings.Replace(text, "Z", "+00:00", 1)); err == nil {
		return toEpochSeconds(zoned)
	}

	for _, layout := range timestampLayouts[1:] {
		if naive, err := time.ParseInLocation(layout, text, time.Local); err == nil {
			return toEpochSeconds(naive)
		}
	}

	return 0.0
}

func toEpochSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}

// NewestTimestamp orders records by recency of addition: addedAt when
// present, otherwise updatedAt.
func (r *Record) NewestTimestamp() float64 {
	if strings.TrimSpace(r.AddedAt) != "" {
		return ParseTimestamp(r.AddedAt)
	}
	return ParseTimestamp(r.UpdatedAt)
}

// UpdatedTimestamp orders records by last modification: updatedAt when
// present, otherwise addedAt.
func (r *Record) UpdatedTimestamp() float64 {
	if strings.TrimSpace(r.UpdatedAt) != "" {
		return ParseTimestamp(r.UpdatedAt)
	}
	return ParseTimestamp(r.AddedAt)
}
