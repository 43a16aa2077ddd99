// Package app provides the application context and dependency management
// for the library CLI. It centralizes configuration loading, logger setup,
// and process exit behavior so commands stay thin.
package app

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/game-club/library/pkg/errors"
)

// App represents the library application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// runID tags every log line of one build so a CI log can be traced to a
	// single run. It survives logger rebuilds.
	runID string
}

// New creates a new App instance with the given version information.
// Configuration is loaded once here, at the process boundary; components
// receive explicit values instead of reading the environment themselves.
func New(version, commit, date string) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = config
	app.runID = uuid.NewString()
	app.SetupLogger()

	return app, nil
}

// SetupLogger builds the logger from the current configuration. It runs once
// during New and again after cobra has parsed the persistent flags, so
// -v/-q/--log-level/--no-color take effect. The run id is re-attached on
// every rebuild.
func (a *App) SetupLogger() {
	logger := NewLogger(a.config).With().Str("run_id", a.runID).Logger()
	a.logger = &logger
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// ExitOnError prints an error to stderr and exits with status 1.
func ExitOnError(err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}
