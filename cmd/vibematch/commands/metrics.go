// ABOUTME: Metrics command that shows recent query telemetry
// ABOUTME: Prints the latest search metrics, most recent first
package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewMetricsCmd creates the metrics command
func NewMetricsCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "Show recent search metrics",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, _, cleanup, err := loadEngine()
			if err != nil {
				return err
			}
			defer cleanup()

			metrics, err := engine.RecentMetrics(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("failed to load metrics: %w", err)
			}

			if outputFormat == "json" {
				return printJSON(cmd.OutOrStdout(), metrics)
			}

			out := cmd.OutOrStdout()
			if len(metrics) == 0 {
				info(out, "No metrics recorded yet.\n")
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "TIME\tQUERY\tRESULTS\tTOP\tLATENCY\tMESSAGE")
			for _, m := range metrics {
				top := "-"
				if m.TopScore != nil {
					top = fmt.Sprintf("%.4f", *m.TopScore)
				}
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%.2fms\t%s\n",
					m.Timestamp.Format("15:04:05"), truncate(m.Query, 30), m.ResultsCount, top, m.LatencyMS, m.Message)
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 10, "Number of metrics to show")

	return cmd
}
