// ABOUTME: Root CLI command with global flags
// ABOUTME: Wires all subcommands and handles quiet/format output modes
package commands

import (
	"github.com/spf13/cobra"
)

var (
	quiet        bool
	outputFormat string
)

// NewRootCmd creates the root command with all subcommands attached
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vibematch",
		Short: "Match fashion products to free-text vibes",
		Long: `Vibe Matcher - semantic fashion search

Matches a free-text "vibe" description against a catalog of fashion
products by cosine similarity over cached OpenAI embeddings.

Run the HTTP API with 'vibematch serve', expose the engine to LLM
agents with 'vibematch mcp', or search directly from the terminal.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress informational output")
	cmd.PersistentFlags().StringVar(&outputFormat, "format", "text", "Output format: text or json")

	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewMCPCmd())
	cmd.AddCommand(NewSeedCmd())
	cmd.AddCommand(NewSearchCmd())
	cmd.AddCommand(NewProductsCmd())
	cmd.AddCommand(NewMetricsCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
