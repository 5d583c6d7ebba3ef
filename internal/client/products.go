package client

import (
	"context"

	"github.com/tictail/tictail-go/internal/resource"
	"github.com/tictail/tictail-go/pkg/tictail"
)

// Product implements tictail.Product.
type Product struct {
	*resource.Resource
}

func newProduct(r *resource.Resource) tictail.Product {
	return &Product{Resource: r}
}

// ProductsClient implements tictail.ProductsClient.
type ProductsClient struct {
	collection *resource.Collection[tictail.Product]
}

// NewProductsClient creates a new products client under a store URI.
func NewProductsClient(parent string, transport resource.Transport) *ProductsClient {
	return newProductsClient(resource.Prefix(parent), transport)
}

func newProductsClient(parent resource.Parent, transport resource.Transport) *ProductsClient {
	collection := resource.NewCollectionUnder(productKind, parent, transport, newProduct).
		WithParamsFormatter(resource.JoinValues(tictail.ParamCategories))

	return &ProductsClient{collection: collection}
}

// URI implements tictail.ProductsClient.URI.
func (c *ProductsClient) URI() string {
	return c.collection.URI()
}

// Get implements tictail.ProductsClient.Get.
func (c *ProductsClient) Get(ctx context.Context, id string) (tictail.Product, error) {
	return resource.GetByID(ctx, c.collection, id)
}

// List implements tictail.ProductsClient.List. Categories are sent as one
// comma separated value.
func (c *ProductsClient) List(ctx context.Context, params *tictail.ListParams) ([]tictail.Product, error) {
	return resource.List(ctx, c.collection, params.ToParams())
}
