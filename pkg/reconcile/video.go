package reconcile

import "strings"

// ExtractVideoURL pulls a playable URL out of an arbitrarily shaped movies
// value as decoded from JSON. The rules are ordered and the first match
// wins:
//
//  1. a string is returned trimmed
//  2. a sequence yields the first element producing a non-empty URL
//  3. a keyed structure is probed for, in order: hls_h264, a nested hls
//     object (hls_h264, max, 480), hls as a plain string, url, a nested
//     webm object (max, 480), and a nested mp4 object (max, 480)
//
// The function is total over arbitrary shapes: unsupported values yield the
// empty string and nothing ever panics.
func ExtractVideoURL(value any) string {
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v)

	case []any:
		for _, item := range v {
			if url := ExtractVideoURL(item); url != "" {
				return url
			}
		}
		return ""

	case []string:
		for _, item := range v {
			if url := strings.TrimSpace(item); url != "" {
				return url
			}
		}
		return ""

	case map[string]any:
		return extractFromObject(v)

	default:
		return ""
	}
}

// extractFromObject probes the known movie-object keys in priority order.
func extractFromObject(obj map[string]any) string {
	if url := trimmedString(obj["hls_h264"]); url != "" {
		return url
	}

	if hls, ok := obj["hls"].(map[string]any); ok {
		for _, key := range []string{"hls_h264", "max", "480"} {
			if url := trimmedString(hls[key]); url != "" {
				return url
			}
		}
	}

	if url := trimmedString(obj["hls"]); url != "" {
		return url
	}

	if url := trimmedString(obj["url"]); url != "" {
		return url
	}

	for _, variant := range []string{"webm", "mp4"} {
		if nested, ok := obj[variant].(map[string]any); ok {
			for _, key := range []string{"max", "480"} {
				if url := trimmedString(nested[key]); url != "" {
					return url
				}
			}
		}
	}

	return ""
}

// trimmedString returns the trimmed value when it is a string, else "".
func trimmedString(value any) string {
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}
