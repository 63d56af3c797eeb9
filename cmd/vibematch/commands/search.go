// ABOUTME: Search command for querying the catalog from the terminal
// ABOUTME: Runs a vibe search and prints ranked results
package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/stylistiq/vibematch/internal/core"
)

// NewSearchCmd creates the search command
func NewSearchCmd() *cobra.Command {
	var (
		limit     int
		threshold float64
	)

	cmd := &cobra.Command{
		Use:   "search <vibe>",
		Short: "Search the catalog for a vibe",
		Long: `Embeds the given vibe text and ranks catalog products by cosine
similarity, printing the matches above the threshold.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, _, cleanup, err := loadEngine()
			if err != nil {
				return err
			}
			defer cleanup()

			params := core.SearchParams{Vibe: args[0]}
			if cmd.Flags().Changed("limit") {
				params.Limit = &limit
			}
			if cmd.Flags().Changed("threshold") {
				params.Threshold = &threshold
			}

			resp, err := engine.Search(cmd.Context(), params)
			if err != nil {
				return fmt.Errorf("search failed: %w", err)
			}

			if outputFormat == "json" {
				return printJSON(cmd.OutOrStdout(), resp)
			}

			out := cmd.OutOrStdout()
			info(out, "%s\n", resp.Metrics.Message)
			if len(resp.Results) == 0 {
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "SCORE\tNAME\tCATEGORY\tDESCRIPTION")
			for _, r := range resp.Results {
				fmt.Fprintf(w, "%.4f\t%s\t%s\t%s\n", r.SimilarityScore, r.Name, r.Category, truncate(r.Description, 50))
			}
			if err := w.Flush(); err != nil {
				return err
			}
			info(out, "\n%d result(s) in %.2fms\n", resp.Metrics.ResultsCount, resp.Metrics.LatencyMS)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 3, "Maximum number of results (1-10)")
	cmd.Flags().Float64VarP(&threshold, "threshold", "t", 0.7, "Minimum similarity score (0-1)")

	return cmd
}
