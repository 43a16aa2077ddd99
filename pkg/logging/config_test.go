package logging

import (
	"io"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewLoggerFromConfigLevels(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  zerolog.Level
	}{
		{"debug", "debug", zerolog.DebugLevel},
		{"warn", "warn", zerolog.WarnLevel},
		{"uppercase", "ERROR", zerolog.ErrorLevel},
		{"invalid falls back", "loud", zerolog.InfoLevel},
		{"empty falls back", "", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := NewLoggerFromConfig(&Config{Level: tt.level, Output: "discard"})
			assert.Equal(t, tt.want, logger.GetLevel())
		})
	}
}

func TestNewLoggerFromConfigNilUsesDefaults(t *testing.T) {
	logger := NewLoggerFromConfig(nil)
	assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
}

func TestConfigureReplacesDefault(t *testing.T) {
	original := *Default()
	defer SetDefault(original)

	Configure(&Config{Level: "error", Output: "discard"})
	assert.Equal(t, zerolog.ErrorLevel, Default().GetLevel())
}

func TestGetWriter(t *testing.T) {
	w := getWriter(&Config{Format: "json", Output: "discard"})
	assert.Equal(t, io.Discard, w)

	w = getWriter(&Config{Format: "console", Output: "stdout"})
	console, ok := w.(zerolog.ConsoleWriter)
	assert.True(t, ok)
	assert.Equal(t, os.Stdout, console.Out)

	w = getWriter(&Config{Format: "json", Output: "stdout"})
	assert.Equal(t, os.Stdout, w)

	// Auto format off a terminal stays structured.
	w = getWriter(&Config{Output: "discard"})
	assert.Equal(t, io.Discard, w)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.TraceLevel, parseLevel("trace"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("bogus"))
}
