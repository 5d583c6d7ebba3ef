package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewMeCommand creates the me command.
func NewMeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the store that owns the access token",
		Long:  "Fetch /me and display the store the configured access token belongs to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			store, err := client.Me().Get(commandContext(cmd))
			if err != nil {
				return fmt.Errorf("failed to get store: %w", err)
			}

			return renderResource(cmd, store)
		},
	}
}
