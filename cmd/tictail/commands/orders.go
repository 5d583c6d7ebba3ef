package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tictail/tictail-go/pkg/tictail"
)

var orderColumns = []string{"id", "number", "price", "currency", "created_at", "modified_at"}

// NewOrdersCommand creates the orders command group.
func NewOrdersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "orders",
		Aliases: []string{"order"},
		Short:   "Inspect store orders",
		Long:    "List and fetch the orders of a Tictail store",
	}

	cmd.AddCommand(newOrdersListCommand())
	cmd.AddCommand(newOrdersGetCommand())

	return cmd
}

func newOrdersListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List orders",
		Long: `List the orders of a store.

--modified-before and --modified-after take ISO-8601 timestamps such as
2014-05-10T23:07:49 or 2014-05-10T23:07:49+02:00 and are sent in UTC.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params := listParamsFromFlags(cmd)

			modifiedBefore, ok, err := parseTimeFlag(cmd, "modified-before")
			if err != nil {
				return err
			}

			if ok {
				params.WithModifiedBefore(modifiedBefore)
			}

			modifiedAfter, ok, err := parseTimeFlag(cmd, "modified-after")
			if err != nil {
				return err
			}

			if ok {
				params.WithModifiedAfter(modifiedAfter)
			}

			return runInStore(cmd, func(ctx context.Context, client tictail.Client, storeID string) error {
				orders, err := client.Orders(storeID)
				if err != nil {
					return err
				}

				list, err := orders.List(ctx, params)
				if err != nil {
					return fmt.Errorf("failed to list orders: %w", err)
				}

				return renderResources(cmd, list, orderColumns...)
			})
		},
	}

	addStoreFlag(cmd)
	addListFlags(cmd)
	cmd.Flags().String("modified-before", "", "only orders modified before this time")
	cmd.Flags().String("modified-after", "", "only orders modified after this time")

	return cmd
}

func newOrdersGetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get ORDER_ID",
		Short: "Get order details",
		Long:  "Display every field of an order, including its items and transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInStore(cmd, func(ctx context.Context, client tictail.Client, storeID string) error {
				orders, err := client.Orders(storeID)
				if err != nil {
					return err
				}

				order, err := orders.Get(ctx, args[0])
				if err != nil {
					return fmt.Errorf("failed to get order: %w", err)
				}

				return renderResource(cmd, order)
			})
		},
	}

	addStoreFlag(cmd)

	return cmd
}
