// Package catalog defines the canonical game record model and the keyed
// catalog collection built from user submissions, store metadata, and
// previously persisted records.
package catalog

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Record is the canonical entity for a single game. Field order matches the
// persisted JSON layout.
type Record struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Genres      []string       `json:"genres"`
	Categories  []string       `json:"categories"`
	Players     Players        `json:"players"`
	AddedAt     string         `json:"addedAt"`
	UpdatedAt   string         `json:"updatedAt"`
	Homepage    *string        `json:"homepage,omitempty"`
	StartLink   string         `json:"startLink"`
	Downloads   map[string]any `json:"downloads"`
	Steam       *SteamLink     `json:"steam,omitempty"`
	Media       Media          `json:"media"`

	// Legacy alias for Categories. Folded in and cleared during
	// normalization; never present in emitted records.
	Tags []string `json:"tags,omitempty"`

	// Record-level movies structure some older submissions carry. Used as a
	// video candidate during normalization and passed through otherwise.
	Movies any `json:"movies,omitempty"`

	// Top-level store identifier used by hand-authored records; the builder
	// always folds it into Steam.AppID instead.
	SteamAppID AppID `json:"steamAppId,omitzero"`
}

// Players describes the supported player capacity.
type Players struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// DefaultPlayers is the capacity assumed when a submission carries none.
func DefaultPlayers() Players {
	return Players{Min: 1, Max: 1}
}

// Media holds the resolved media references for a record.
type Media struct {
	Cover       string   `json:"cover"`
	Hero        string   `json:"hero"`
	Icon        string   `json:"icon"`
	Screenshots []string `json:"screenshots"`
	Video       string   `json:"video"`

	// Raw movies structure from a submission, kept only until the media
	// fallback pass resolves Video.
	Movies any `json:"movies,omitempty"`
}

// SteamLink is the external store linkage for a record.
type SteamLink struct {
	AppID   AppID  `json:"appid,omitzero"`
	SteamDB string `json:"steamdb,omitempty"`
	Store   string `json:"store,omitempty"`
}

// AppID is a store identifier that may arrive as a JSON string or number.
// It remembers which shape it had so persisted records round-trip unchanged.
type AppID struct {
	value   string
	numeric bool
}

// AppIDFromString creates an AppID from a string identifier.
func AppIDFromString(s string) AppID {
	return AppID{value: s}
}

// AppIDFromNumber creates an AppID from a numeric identifier.
func AppIDFromNumber(n float64) AppID {
	return AppID{value: strconv.FormatFloat(n, 'f', -1, 64), numeric: true}
}

// AppIDFrom coerces a decoded JSON value into an AppID. Unsupported shapes
// yield the zero AppID.
func AppIDFrom(v any) AppID {
	switch value := v.(type) {
	case string:
		return AppIDFromString(value)
	case float64:
		return AppIDFromNumber(value)
	case int:
		return AppID{value: strconv.Itoa(value), numeric: true}
	case json.Number:
		return AppID{value: value.String(), numeric: true}
	case AppID:
		return value
	default:
		return AppID{}
	}
}

// String returns the identifier as text.
func (a AppID) String() string {
	return a.value
}

// IsZero reports whether the identifier is absent or blank after trimming.
func (a AppID) IsZero() bool {
	return strings.TrimSpace(a.value) == ""
}

// MarshalJSON preserves the original string-or-number shape.
func (a AppID) MarshalJSON() ([]byte, error) {
	if a.numeric {
		return []byte(a.value), nil
	}
	return json.Marshal(a.value)
}

// UnmarshalJSON accepts both string and numeric identifiers.
func (a *AppID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = AppID{value: s}
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*a = AppID{value: n.String(), numeric: true}
		return nil
	}
	// Unsupported shape (object, array, bool); treat as absent.
	*a = AppID{}
	return nil
}

// AppID returns the record's store identifier, preferring the top-level
// legacy field over the steam linkage.
func (r *Record) AppID() AppID {
	if !r.SteamAppID.IsZero() {
		return r.SteamAppID
	}
	if r.Steam != nil && !r.Steam.AppID.IsZero() {
		return r.Steam.AppID
	}
	return AppID{}
}
