// ABOUTME: Products command group for catalog management
// ABOUTME: Lists and clears stored products
package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewProductsCmd creates the products command group
func NewProductsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Manage the product catalog",
	}

	cmd.AddCommand(newProductsListCmd())
	cmd.AddCommand(newProductsClearCmd())

	return cmd
}

func newProductsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all products in the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, _, cleanup, err := loadEngine()
			if err != nil {
				return err
			}
			defer cleanup()

			products, err := engine.ListProducts(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list products: %w", err)
			}

			if outputFormat == "json" {
				return printJSON(cmd.OutOrStdout(), products)
			}

			out := cmd.OutOrStdout()
			if len(products) == 0 {
				info(out, "Catalog is empty. Run 'vibematch seed' to load demo products.\n")
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tCATEGORY\tVIBES\tDESCRIPTION")
			for _, p := range products {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.Name, p.Category, strings.Join(p.VibeTags, ","), truncate(p.Description, 40))
			}
			if err := w.Flush(); err != nil {
				return err
			}
			info(out, "\n%d product(s)\n", len(products))
			return nil
		},
	}
}

func newProductsClearCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all products from the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				return fmt.Errorf("refusing to clear the catalog without --force")
			}

			engine, _, cleanup, err := loadEngine()
			if err != nil {
				return err
			}
			defer cleanup()

			deleted, err := engine.ClearCatalog(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to clear catalog: %w", err)
			}

			info(cmd.OutOrStdout(), "Deleted %d product(s)\n", deleted)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Confirm deletion of all products")

	return cmd
}
