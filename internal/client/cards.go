package client

import (
	"context"

	"github.com/tictail/tictail-go/internal/resource"
	"github.com/tictail/tictail-go/pkg/tictail"
)

// Card implements tictail.Card.
type Card struct {
	*resource.Resource
}

func newCard(r *resource.Resource) tictail.Card {
	return &Card{Resource: r}
}

// CardsClient implements tictail.CardsClient.
type CardsClient struct {
	collection *resource.Collection[tictail.Card]
}

// NewCardsClient creates a new cards client under a store URI.
func NewCardsClient(parent string, transport resource.Transport) *CardsClient {
	return newCardsClient(resource.Prefix(parent), transport)
}

func newCardsClient(parent resource.Parent, transport resource.Transport) *CardsClient {
	return &CardsClient{
		collection: resource.NewCollectionUnder(cardKind, parent, transport, newCard),
	}
}

// URI implements tictail.CardsClient.URI.
func (c *CardsClient) URI() string {
	return c.collection.URI()
}

// Create implements tictail.CardsClient.Create.
func (c *CardsClient) Create(ctx context.Context, body map[string]interface{}) (tictail.Card, error) {
	return resource.Create(ctx, c.collection, body)
}
