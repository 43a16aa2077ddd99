package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/game-club/library/cmd/library/app"
	"github.com/game-club/library/internal/build"
	"github.com/game-club/library/pkg/constants"
)

// NewBuildCommand creates the build command running the catalog pipeline.
func NewBuildCommand(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the game catalog from discussions and persisted records",
		Long: `Build fetches the latest game submissions from GitHub discussions,
reconciles each with Steam store metadata, merges the result with the
persisted catalog, and rewrites the api output files.

Without REPO_OWNER, REPO_NAME, and GITHUB_TOKEN configured the discussion
fetch is skipped and the persisted catalog is re-normalized on its own.`,
		Example: `  library build                 # build into <root>/api
  library build --root /srv/site  # explicit repository root
  library build --newest 10       # larger newest slice`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			config := a.Config()
			logger := a.Logger()

			newest, err := cmd.Flags().GetInt("newest")
			if err == nil && cmd.Flags().Changed("newest") {
				config.NewestLimit = newest
			}

			pipeline := build.New(build.Config{
				Owner:       config.Owner,
				Repo:        config.Repo,
				Token:       config.Token,
				NewestLimit: config.NewestLimit,
				APIDir:      config.APIDir(),
			}, *logger)

			ctx, cancel := context.WithTimeout(cmd.Context(), constants.BuildTimeout)
			defer cancel()

			return pipeline.Run(ctx)
		},
	}

	cmd.Flags().Int("newest", 0, "number of games in the newest slice (default from NEW_GAMES_LIMIT)")

	return cmd
}
