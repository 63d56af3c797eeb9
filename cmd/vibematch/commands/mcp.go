// ABOUTME: MCP command that runs the stdio tool server
// ABOUTME: Exposes search and catalog operations to LLM agents
package commands

import (
	"fmt"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/stylistiq/vibematch/internal/api"
	vibemcp "github.com/stylistiq/vibematch/internal/mcp"
)

// NewMCPCmd creates the mcp command
func NewMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Run the MCP server on stdio",
		Long: `Starts a Model Context Protocol server over stdio.

Exposes search_vibe, add_product, list_products, seed_catalog,
clear_catalog, and recent_metrics tools so LLM agents can drive the
matching engine directly.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, _, cleanup, err := loadEngine()
			if err != nil {
				return err
			}
			defer cleanup()

			server := mcpserver.NewMCPServer(
				"Vibe Matcher",
				api.Version,
			)
			vibemcp.RegisterTools(server, engine)

			if err := mcpserver.ServeStdio(server); err != nil {
				return fmt.Errorf("mcp server error: %w", err)
			}
			return nil
		},
	}
}
