package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewStoresCommand creates the stores command group.
func NewStoresCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "stores",
		Aliases: []string{"store"},
		Short:   "Inspect stores",
		Long:    "Fetch Tictail stores by ID",
	}

	cmd.AddCommand(newStoresGetCommand())

	return cmd
}

func newStoresGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get STORE_ID",
		Short: "Get store details",
		Long:  "Display every field of a store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			store, err := client.Stores().Get(commandContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("failed to get store: %w", err)
			}

			return renderResource(cmd, store)
		},
	}
}
