package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tictail/tictail-go/pkg/tictail"
)

var customerColumns = []string{"id", "email", "name", "language", "created_at"}

// NewCustomersCommand creates the customers command group.
func NewCustomersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "customers",
		Aliases: []string{"customer"},
		Short:   "Inspect store customers",
		Long:    "List and fetch the customers of a Tictail store",
	}

	cmd.AddCommand(newCustomersListCommand())
	cmd.AddCommand(newCustomersGetCommand())

	return cmd
}

func newCustomersListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List customers",
		Long:  "List the customers of a store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInStore(cmd, func(ctx context.Context, client tictail.Client, storeID string) error {
				customers, err := client.Customers(storeID)
				if err != nil {
					return err
				}

				list, err := customers.List(ctx, listParamsFromFlags(cmd))
				if err != nil {
					return fmt.Errorf("failed to list customers: %w", err)
				}

				return renderResources(cmd, list, customerColumns...)
			})
		},
	}

	addStoreFlag(cmd)
	addListFlags(cmd)

	return cmd
}

func newCustomersGetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get CUSTOMER_ID",
		Short: "Get customer details",
		Long:  "Display every field of a customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInStore(cmd, func(ctx context.Context, client tictail.Client, storeID string) error {
				customers, err := client.Customers(storeID)
				if err != nil {
					return err
				}

				customer, err := customers.Get(ctx, args[0])
				if err != nil {
					return fmt.Errorf("failed to get customer: %w", err)
				}

				return renderResource(cmd, customer)
			})
		},
	}

	addStoreFlag(cmd)

	return cmd
}
