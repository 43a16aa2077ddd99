// Package steam provides the Steam store metadata source: the appdetails
// API client with per-run memoization, and the deterministic media and link
// URL templates derived from an app id.
package steam

import "github.com/game-club/library/pkg/reconcile"

// Details is the subset of the appdetails payload the record builder uses.
type Details struct {
	HeaderImage      string       `json:"header_image"`
	CapsuleImage     string       `json:"capsule_image"`
	ShortDescription string       `json:"short_description"`
	Website          string       `json:"website"`
	Categories       []Descriptor `json:"categories"`
	Genres           []Descriptor `json:"genres"`
	Screenshots      []Screenshot `json:"screenshots"`
	Movies           any          `json:"movies"`
}

// Descriptor is a labeled entry in the categories/genres lists.
type Descriptor struct {
	Description string `json:"description"`
}

// Screenshot is one screenshot entry; only the full-size path is used.
type Screenshot struct {
	PathFull string `json:"path_full"`
}

// CategoryNames returns the non-empty category descriptions in order.
func (d *Details) CategoryNames() []string {
	if d == nil {
		return nil
	}
	return descriptions(d.Categories)
}

// GenreNames returns the non-empty genre descriptions in order.
func (d *Details) GenreNames() []string {
	if d == nil {
		return nil
	}
	return descriptions(d.Genres)
}

// ScreenshotPaths returns the non-empty full-size screenshot paths in order.
func (d *Details) ScreenshotPaths() []string {
	if d == nil {
		return nil
	}
	paths := make([]string, 0, len(d.Screenshots))
	for _, shot := range d.Screenshots {
		if shot.PathFull != "" {
			paths = append(paths, shot.PathFull)
		}
	}
	return paths
}

// VideoURL extracts a playable URL from the movies structure, or "" when
// none is present.
func (d *Details) VideoURL() string {
	if d == nil {
		return ""
	}
	return reconcile.ExtractVideoURL(d.Movies)
}

func descriptions(entries []Descriptor) []string {
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.Description != "" {
			names = append(names, entry.Description)
		}
	}
	return names
}
