package cmd_test

import (
	"context"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/game-club/library/cmd/library/app"
	"github.com/game-club/library/cmd/library/cmd"
)

// newTestApp builds an application with the GitHub configuration cleared so
// a build run degrades to the persisted catalog and touches no network.
func newTestApp(t *testing.T) *app.App {
	t.Helper()
	for _, key := range []string{"REPO_OWNER", "REPO_NAME", "GITHUB_TOKEN", "LOG_LEVEL"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	application, err := app.New("test", "none", "none")
	require.NoError(t, err)
	return application
}

func TestLoggingFlagsApplyAfterParsing(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want zerolog.Level
	}{
		{"default", nil, zerolog.InfoLevel},
		{"log-level flag", []string{"--log-level", "debug"}, zerolog.DebugLevel},
		{"verbose shortcut", []string{"-v"}, zerolog.DebugLevel},
		{"quiet shortcut", []string{"-q"}, zerolog.WarnLevel},
		{"explicit level wins over verbose", []string{"-v", "--log-level", "error"}, zerolog.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			application := newTestApp(t)
			root := cmd.New(application)
			root.SetArgs(append([]string{"build", "--root", t.TempDir()}, tt.args...))

			require.NoError(t, root.ExecuteContext(context.Background()))
			assert.Equal(t, tt.want, application.Logger().GetLevel())
		})
	}
}
