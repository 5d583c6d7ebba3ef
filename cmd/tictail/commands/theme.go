package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tictail/tictail-go/pkg/tictail"
)

// NewThemeCommand creates the theme command group.
func NewThemeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Inspect the store theme",
		Long:  "Fetch the theme of a Tictail store",
	}

	cmd.AddCommand(newThemeGetCommand())

	return cmd
}

func newThemeGetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get theme details",
		Long:  "Display every field of the store theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInStore(cmd, func(ctx context.Context, client tictail.Client, storeID string) error {
				themeClient, err := client.Theme(storeID)
				if err != nil {
					return err
				}

				theme, err := themeClient.Get(ctx)
				if err != nil {
					return fmt.Errorf("failed to get theme: %w", err)
				}

				return renderResource(cmd, theme)
			})
		},
	}

	addStoreFlag(cmd)

	return cmd
}
