package client

import (
	"context"

	"github.com/tictail/tictail-go/internal/resource"
	"github.com/tictail/tictail-go/pkg/tictail"
)

// Customer implements tictail.Customer.
type Customer struct {
	*resource.Resource
}

func newCustomer(r *resource.Resource) tictail.Customer {
	return &Customer{Resource: r}
}

// CustomersClient implements tictail.CustomersClient.
type CustomersClient struct {
	collection *resource.Collection[tictail.Customer]
}

// NewCustomersClient creates a new customers client under a store URI.
func NewCustomersClient(parent string, transport resource.Transport) *CustomersClient {
	return newCustomersClient(resource.Prefix(parent), transport)
}

func newCustomersClient(parent resource.Parent, transport resource.Transport) *CustomersClient {
	return &CustomersClient{
		collection: resource.NewCollectionUnder(customerKind, parent, transport, newCustomer),
	}
}

// URI implements tictail.CustomersClient.URI.
func (c *CustomersClient) URI() string {
	return c.collection.URI()
}

// Get implements tictail.CustomersClient.Get.
func (c *CustomersClient) Get(ctx context.Context, id string) (tictail.Customer, error) {
	return resource.GetByID(ctx, c.collection, id)
}

// List implements tictail.CustomersClient.List.
func (c *CustomersClient) List(ctx context.Context, params *tictail.ListParams) ([]tictail.Customer, error) {
	return resource.List(ctx, c.collection, params.ToParams())
}
