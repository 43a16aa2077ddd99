package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/game-club/library/pkg/catalog"
)

func TestParseTimestampDegradesToZero(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{"nil", nil},
		{"empty string", ""},
		{"whitespace", "   "},
		{"garbage", "not a date"},
		{"pure numeric string", "1234"},
		{"date with stray suffix", "2024-01-02Z"},
		{"bool", true},
		{"object", map[string]any{"at": "2024-01-02"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, 0.0, catalog.ParseTimestamp(tt.value))
		})
	}
}

func TestParseTimestampNumeric(t *testing.T) {
	assert.Equal(t, 1700000000.0, catalog.ParseTimestamp(1700000000.0))
	assert.Equal(t, 42.0, catalog.ParseTimestamp(42))
}

func TestParseTimestampText(t *testing.T) {
	// RFC3339 with explicit offset is timezone independent.
	utc := catalog.ParseTimestamp("2024-01-02T10:00:00+00:00")
	assert.Equal(t, 1704189600.0, utc)

	// A trailing Z means UTC and must parse to the same instant.
	assert.Equal(t, utc, catalog.ParseTimestamp("2024-01-02T10:00:00Z"))

	// Day-precision dates parse and order correctly.
	earlier := catalog.ParseTimestamp("2024-01-01")
	later := catalog.ParseTimestamp("2024-06-01")
	assert.Greater(t, later, earlier)
	assert.Greater(t, earlier, 0.0)
}

func TestRecordOrderings(t *testing.T) {
	record := &catalog.Record{AddedAt: "2024-01-01", UpdatedAt: "2024-06-01"}

	newest := record.NewestTimestamp()
	updated := record.UpdatedTimestamp()
	assert.Equal(t, catalog.ParseTimestamp("2024-01-01"), newest)
	assert.Equal(t, catalog.ParseTimestamp("2024-06-01"), updated)

	// Each ordering falls back to the other field when its own is empty.
	onlyAdded := &catalog.Record{AddedAt: "2024-01-01"}
	assert.Equal(t, catalog.ParseTimestamp("2024-01-01"), onlyAdded.UpdatedTimestamp())

	onlyUpdated := &catalog.Record{UpdatedAt: "2024-06-01"}
	assert.Equal(t, catalog.ParseTimestamp("2024-06-01"), onlyUpdated.NewestTimestamp())

	// Fully absent history markers degrade to the epoch sentinel.
	empty := &catalog.Record{}
	assert.Equal(t, 0.0, empty.NewestTimestamp())
	assert.Equal(t, 0.0, empty.UpdatedTimestamp())
}
