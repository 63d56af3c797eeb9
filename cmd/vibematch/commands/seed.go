// ABOUTME: Seed command that loads the demo catalog
// ABOUTME: Embeds and inserts the built-in demo products
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewSeedCmd creates the seed command
func NewSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed the catalog with demo products",
		Long: `Embeds and inserts the built-in demo product set. Items that fail to
embed are reported individually and do not abort the run.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, _, cleanup, err := loadEngine()
			if err != nil {
				return err
			}
			defer cleanup()

			report, err := engine.SeedCatalog(cmd.Context())
			if err != nil {
				return fmt.Errorf("seeding failed: %w", err)
			}

			if outputFormat == "json" {
				return printJSON(cmd.OutOrStdout(), report)
			}

			out := cmd.OutOrStdout()
			info(out, "%s\n", report.Message)
			for _, name := range report.Products {
				info(out, "  + %s\n", name)
			}
			for _, name := range report.Failed {
				info(out, "  ! failed: %s\n", name)
			}
			return nil
		},
	}
}
