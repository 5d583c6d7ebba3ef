package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tictail/tictail-go/internal/constants"
	"github.com/tictail/tictail-go/pkg/tictail"
)

var followerColumns = []string{"id", "email", "created_at"}

// NewFollowersCommand creates the followers command group.
func NewFollowersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "followers",
		Aliases: []string{"follower"},
		Short:   "Manage store followers",
		Long:    "List, add and remove the followers of a Tictail store",
	}

	cmd.AddCommand(newFollowersListCommand())
	cmd.AddCommand(newFollowersCreateCommand())
	cmd.AddCommand(newFollowersDeleteCommand())

	return cmd
}

func newFollowersListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List followers",
		Long:  "List the followers of a store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInStore(cmd, func(ctx context.Context, client tictail.Client, storeID string) error {
				followers, err := client.Followers(storeID)
				if err != nil {
					return err
				}

				list, err := followers.List(ctx, listParamsFromFlags(cmd))
				if err != nil {
					return fmt.Errorf("failed to list followers: %w", err)
				}

				return renderResources(cmd, list, followerColumns...)
			})
		},
	}

	addStoreFlag(cmd)
	addListFlags(cmd)

	return cmd
}

func newFollowersCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create EMAIL",
		Short: "Add a follower",
		Long:  "Subscribe an email address to a store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInStore(cmd, func(ctx context.Context, client tictail.Client, storeID string) error {
				followers, err := client.Followers(storeID)
				if err != nil {
					return err
				}

				follower, err := followers.Create(ctx, map[string]interface{}{"email": args[0]})
				if err != nil {
					return fmt.Errorf("failed to create follower: %w", err)
				}

				return renderResource(cmd, follower)
			})
		},
	}

	addStoreFlag(cmd)

	return cmd
}

func newFollowersDeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete FOLLOWER_ID",
		Short: "Remove a follower",
		Long:  "Unsubscribe a follower from a store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInStore(cmd, func(ctx context.Context, client tictail.Client, storeID string) error {
				followers, err := client.Followers(storeID)
				if err != nil {
					return err
				}

				deleted, err := followers.Delete(ctx, args[0])
				if err != nil {
					return fmt.Errorf("failed to delete follower: %w", err)
				}

				if !deleted {
					return fmt.Errorf("follower %s: %w", args[0], constants.ErrDeleteFailed)
				}

				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted follower %s\n", args[0])

				return nil
			})
		},
	}

	addStoreFlag(cmd)

	return cmd
}
