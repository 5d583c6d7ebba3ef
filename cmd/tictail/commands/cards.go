package commands

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tictail/tictail-go/internal/constants"
	"github.com/tictail/tictail-go/pkg/tictail"
)

// NewCardsCommand creates the cards command group.
func NewCardsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "cards",
		Aliases: []string{"card"},
		Short:   "Post cards to a store feed",
		Long:    "Create cards in the feed of a Tictail store",
	}

	cmd.AddCommand(newCardsCreateCommand())

	return cmd
}

func newCardsCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a card",
		Long: `Create a card from a JSON object, for example:

  tictail cards create --data '{"card_type": "text", "title": "Hello"}'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, _ := cmd.Flags().GetString("data")

			body, err := parseJSONObject(data)
			if err != nil {
				return err
			}

			return runInStore(cmd, func(ctx context.Context, client tictail.Client, storeID string) error {
				cards, err := client.Cards(storeID)
				if err != nil {
					return err
				}

				card, err := cards.Create(ctx, body)
				if err != nil {
					return fmt.Errorf("failed to create card: %w", err)
				}

				return renderResource(cmd, card)
			})
		},
	}

	addStoreFlag(cmd)
	cmd.Flags().String("data", "", "card body as a JSON object")
	_ = cmd.MarkFlagRequired("data")

	return cmd
}

func parseJSONObject(data string) (map[string]interface{}, error) {
	var body map[string]interface{}

	err := json.Unmarshal([]byte(data), &body)
	if err != nil || body == nil {
		return nil, constants.ErrInvalidJSONData
	}

	return body, nil
}
