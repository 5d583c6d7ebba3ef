package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tictail/tictail-go/cmd/tictail/commands"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tictail",
		Short: "Tictail API CLI",
		Long: `A command-line interface for the Tictail REST API.

Read stores, products, customers, orders, categories and themes, and manage
followers and feed cards from the terminal.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cobra.OnInitialize(commands.InitConfig)

	commands.AddGlobalFlags(rootCmd)

	rootCmd.AddCommand(commands.NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(commands.NewLoginCommand())
	rootCmd.AddCommand(commands.NewConfigCommand())
	rootCmd.AddCommand(commands.NewMeCommand())
	rootCmd.AddCommand(commands.NewStoresCommand())
	rootCmd.AddCommand(commands.NewProductsCommand())
	rootCmd.AddCommand(commands.NewCustomersCommand())
	rootCmd.AddCommand(commands.NewFollowersCommand())
	rootCmd.AddCommand(commands.NewOrdersCommand())
	rootCmd.AddCommand(commands.NewThemeCommand())
	rootCmd.AddCommand(commands.NewCategoriesCommand())
	rootCmd.AddCommand(commands.NewCardsCommand())

	return rootCmd
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
