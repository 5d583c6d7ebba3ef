package client

import (
	"context"

	"github.com/tictail/tictail-go/internal/resource"
	"github.com/tictail/tictail-go/pkg/tictail"
)

// Order implements tictail.Order.
type Order struct {
	*resource.Resource
}

func newOrder(r *resource.Resource) tictail.Order {
	return &Order{Resource: r}
}

// OrdersClient implements tictail.OrdersClient.
type OrdersClient struct {
	collection *resource.Collection[tictail.Order]
}

// NewOrdersClient creates a new orders client under a store URI.
func NewOrdersClient(parent string, transport resource.Transport) *OrdersClient {
	return newOrdersClient(resource.Prefix(parent), transport)
}

func newOrdersClient(parent resource.Parent, transport resource.Transport) *OrdersClient {
	collection := resource.NewCollectionUnder(orderKind, parent, transport, newOrder).
		WithParamsFormatter(resource.ISOTimes(
			tictail.ParamBefore,
			tictail.ParamAfter,
			tictail.ParamModifiedBefore,
			tictail.ParamModifiedAfter,
		))

	return &OrdersClient{collection: collection}
}

// URI implements tictail.OrdersClient.URI.
func (c *OrdersClient) URI() string {
	return c.collection.URI()
}

// Get implements tictail.OrdersClient.Get.
func (c *OrdersClient) Get(ctx context.Context, id string) (tictail.Order, error) {
	return resource.GetByID(ctx, c.collection, id)
}

// List implements tictail.OrdersClient.List.
func (c *OrdersClient) List(ctx context.Context, params *tictail.ListParams) ([]tictail.Order, error) {
	return resource.List(ctx, c.collection, params.ToParams())
}
