// Package reconcile implements the field-level precedence rules that decide,
// for every field of a game record, which candidate source wins. Candidates
// are evaluated left to right; the first meaningful value is selected and
// the field kind's placeholder default is used when none qualifies.
package reconcile

import "strings"

// Reserved placeholder media references. A media field holding one of these
// (or any value under the placeholder prefix) is treated as unset when a
// real source is available.
const (
	PlaceholderPrefix = "assets/img/placeholder-"

	PlaceholderCover = "assets/img/placeholder-cover.svg"
	PlaceholderHero  = "assets/img/placeholder-hero.svg"
	PlaceholderIcon  = "assets/img/placeholder-icon.svg"

	// PlaceholderScreenshot fills the screenshots list when no real
	// screenshot is known. The cover placeholder doubles as the screenshot
	// placeholder.
	PlaceholderScreenshot = PlaceholderCover
)

// IsPlaceholder reports whether a media reference is a reserved placeholder.
func IsPlaceholder(value string) bool {
	return strings.HasPrefix(strings.TrimSpace(value), PlaceholderPrefix)
}

// MeaningfulString reports whether a text value is non-empty after trimming.
func MeaningfulString(value string) bool {
	return strings.TrimSpace(value) != ""
}

// MeaningfulList reports whether a list holds at least one non-empty element.
func MeaningfulList(values []string) bool {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return true
		}
	}
	return false
}

// MeaningfulImage reports whether a media reference is non-empty and not a
// placeholder.
func MeaningfulImage(value string) bool {
	return MeaningfulString(value) && !IsPlaceholder(value)
}

// MeaningfulScreenshots reports whether a screenshot list holds at least one
// non-placeholder entry.
func MeaningfulScreenshots(values []string) bool {
	if !MeaningfulList(values) {
		return false
	}
	for _, value := range values {
		if strings.TrimSpace(value) == "" {
			continue
		}
		if !IsPlaceholder(value) {
			return true
		}
	}
	return false
}

// CleanList trims every element and drops the empty ones. It always returns
// a non-nil slice so list fields serialize as [] rather than null.
func CleanList(values []string) []string {
	cleaned := make([]string, 0, len(values))
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	return cleaned
}

// Text selects the first meaningful text candidate, trimmed. Candidates
// that are absent or whitespace lose; an empty string is the default.
func Text(candidates ...string) string {
	for _, candidate := range candidates {
		if MeaningfulString(candidate) {
			return strings.TrimSpace(candidate)
		}
	}
	return ""
}

// List selects the first meaningful list candidate, cleaned. An empty list
// is the default.
func List(candidates ...[]string) []string {
	for _, candidate := range candidates {
		if MeaningfulList(candidate) {
			return CleanList(candidate)
		}
	}
	return []string{}
}

// Image selects the first meaningful (non-placeholder) image candidate,
// falling back to the given placeholder.
func Image(placeholder string, candidates ...string) string {
	for _, candidate := range candidates {
		if MeaningfulImage(candidate) {
			return strings.TrimSpace(candidate)
		}
	}
	return placeholder
}

// Screenshots selects the first candidate list containing a real (non-
// placeholder) screenshot, falling back to a single-element placeholder
// list. The winning list is kept as-is; screenshots are ordered upstream.
func Screenshots(placeholder string, candidates ...[]string) []string {
	for _, candidate := range candidates {
		if MeaningfulScreenshots(candidate) {
			return candidate
		}
	}
	return []string{placeholder}
}

// Video selects the first candidate from which a video URL can be
// extracted. Candidates may be plain strings or nested movie structures;
// the empty string means "no video".
func Video(candidates ...any) string {
	for _, candidate := range candidates {
		if url := ExtractVideoURL(candidate); url != "" {
			return url
		}
	}
	return ""
}
