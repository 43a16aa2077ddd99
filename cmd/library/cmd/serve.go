package cmd

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/game-club/library/cmd/library/app"
)

// NewServeCommand creates the serve command, a local preview server for the
// generated api directory. Production serves these files statically; this
// exists so catalog changes can be checked before pushing.
func NewServeCommand(a *app.App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the generated api directory for local preview",
		Example: `  library serve                # serve <root>/api on :8080
  library serve --addr :3000   # custom listen address`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			config := a.Config()
			logger := a.Logger()
			apiDir := config.APIDir()

			router := chi.NewRouter()
			router.Use(middleware.RequestID)
			router.Use(middleware.Recoverer)
			router.Handle("/api/*", http.StripPrefix("/api/", http.FileServer(http.Dir(apiDir))))

			server := &http.Server{
				Addr:              addr,
				Handler:           router,
				ReadHeaderTimeout: 10 * time.Second,
			}

			go func() {
				<-cmd.Context().Done()
				_ = server.Close()
			}()

			logger.Info().Str("addr", addr).Str("dir", apiDir).Msg("Serving api directory")
			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")

	return cmd
}
