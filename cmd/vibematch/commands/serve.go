// ABOUTME: Serve command that runs the HTTP API
// ABOUTME: Builds the engine and starts the chi router with graceful shutdown
package commands

import (
	"github.com/spf13/cobra"

	"github.com/stylistiq/vibematch/internal/api"
)

// NewServeCmd creates the serve command
func NewServeCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Long: `Starts the Vibe Matcher HTTP API.

Serves search, product management, and metrics endpoints under /api,
plus a /health probe. The server shuts down gracefully on SIGINT or
SIGTERM.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, cfg, cleanup, err := loadEngine()
			if err != nil {
				return err
			}
			defer cleanup()

			if port == "" {
				port = cfg.Port
			}

			handler := api.NewHandler(engine)
			router := api.NewRouter(handler, cfg.CORSOrigins)

			info(cmd.OutOrStdout(), "Vibe Matcher API listening on :%s\n", port)
			return api.Serve(":"+port, router)
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (default from PORT env)")

	return cmd
}
