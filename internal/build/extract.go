package build

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

// jsonBlockPattern matches the first fenced ```json block in a discussion
// body.
var jsonBlockPattern = regexp.MustCompile("(?i)```json\\s*([\\s\\S]*?)```")

// ExtractJSONBlock locates and decodes the first fenced JSON block in a
// discussion body. The second result is false when no block exists or the
// block is not a JSON object.
func ExtractJSONBlock(body string) (map[string]any, bool) {
	match := jsonBlockPattern.FindStringSubmatch(body)
	if match == nil {
		return nil, false
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(match[1]), &payload); err != nil {
		return nil, false
	}
	return payload, true
}

// Lenient accessors over decoded submission payloads. Submissions are
// user-authored JSON, so every field may be absent or of the wrong type;
// mismatches read as zero values rather than failing the build.

// stringValue returns v when it is a string, else "".
func stringValue(v any) string {
	s, _ := v.(string)
	return s
}

// textValue coerces a string or number into text, for fields like id that
// submissions sometimes write unquoted.
func textValue(v any) string {
	switch value := v.(type) {
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case json.Number:
		return value.String()
	default:
		return ""
	}
}

// stringList keeps the string elements of a decoded JSON array, in order.
func stringList(v any) []string {
	switch values := v.(type) {
	case []string:
		return values
	case []any:
		var result []string
		for _, item := range values {
			if s, ok := item.(string); ok {
				result = append(result, s)
			}
		}
		return result
	default:
		return nil
	}
}

// mapValue returns v when it is a JSON object, else nil.
func mapValue(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

// intValue reads a JSON number as int, with a fallback for absent or
// non-numeric values.
func intValue(v any, fallback int) int {
	switch value := v.(type) {
	case float64:
		return int(value)
	case int:
		return value
	case json.Number:
		if n, err := value.Int64(); err == nil {
			return int(n)
		}
	}
	return fallback
}

// truncateDay reduces an ISO timestamp to day precision.
func truncateDay(timestamp string) string {
	timestamp = strings.TrimSpace(timestamp)
	if len(timestamp) > 10 {
		return timestamp[:10]
	}
	return timestamp
}
