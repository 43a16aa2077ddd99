// Package main provides the entry point for the library CLI tool.
package main

import (
	"context"
	"os"

	"github.com/game-club/library/cmd/library/app"
	"github.com/game-club/library/cmd/library/cmd"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	application, err := app.New(version, commit, date)
	if err != nil {
		app.ExitOnError(err)
	}

	// Create context with signal handling for graceful shutdown
	ctx, cancel := app.ContextWithSignals(context.Background())
	defer cancel()

	root := cmd.New(application)
	root.SetArgs(os.Args[1:])

	if err := root.ExecuteContext(ctx); err != nil {
		application.Logger().Error().Err(err).Msg("Run failed")
		os.Exit(1)
	}
}
