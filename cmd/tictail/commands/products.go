package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tictail/tictail-go/pkg/tictail"
)

var productColumns = []string{"id", "title", "price", "currency", "status", "modified_at"}

// NewProductsCommand creates the products command group.
func NewProductsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "products",
		Aliases: []string{"product"},
		Short:   "Inspect store products",
		Long:    "List and fetch the products of a Tictail store",
	}

	cmd.AddCommand(newProductsListCommand())
	cmd.AddCommand(newProductsGetCommand())

	return cmd
}

func newProductsListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products",
		Long:  "List the products of a store, optionally filtered by category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			categories, _ := cmd.Flags().GetStringSlice("categories")

			return runInStore(cmd, func(ctx context.Context, client tictail.Client, storeID string) error {
				products, err := client.Products(storeID)
				if err != nil {
					return err
				}

				params := listParamsFromFlags(cmd)
				if len(categories) > 0 {
					params.WithCategories(categories...)
				}

				list, err := products.List(ctx, params)
				if err != nil {
					return fmt.Errorf("failed to list products: %w", err)
				}

				return renderResources(cmd, list, productColumns...)
			})
		},
	}

	addStoreFlag(cmd)
	addListFlags(cmd)
	cmd.Flags().StringSlice("categories", nil, "only products in these category IDs")

	return cmd
}

func newProductsGetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get PRODUCT_ID",
		Short: "Get product details",
		Long:  "Display every field of a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInStore(cmd, func(ctx context.Context, client tictail.Client, storeID string) error {
				products, err := client.Products(storeID)
				if err != nil {
					return err
				}

				product, err := products.Get(ctx, args[0])
				if err != nil {
					return fmt.Errorf("failed to get product: %w", err)
				}

				return renderResource(cmd, product)
			})
		},
	}

	addStoreFlag(cmd)

	return cmd
}
