package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tictail/tictail-go/pkg/tictail"
)

var categoryColumns = []string{"id", "title", "parent_id", "position"}

// NewCategoriesCommand creates the categories command group.
func NewCategoriesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "categories",
		Aliases: []string{"category"},
		Short:   "Inspect product categories",
		Long:    "List the product categories of a Tictail store",
	}

	cmd.AddCommand(newCategoriesListCommand())

	return cmd
}

func newCategoriesListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List categories",
		Long:  "List the categories of a store, parents before their children",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInStore(cmd, func(ctx context.Context, client tictail.Client, storeID string) error {
				categories, err := client.Categories(storeID)
				if err != nil {
					return err
				}

				list, err := categories.List(ctx, nil)
				if err != nil {
					return fmt.Errorf("failed to list categories: %w", err)
				}

				return renderResources(cmd, list, categoryColumns...)
			})
		},
	}

	addStoreFlag(cmd)

	return cmd
}
