package client

import (
	"context"

	"github.com/tictail/tictail-go/internal/resource"
	"github.com/tictail/tictail-go/pkg/tictail"
)

// Category implements tictail.Category.
type Category struct {
	*resource.Resource
}

func newCategory(r *resource.Resource) tictail.Category {
	return &Category{Resource: r}
}

// CategoriesClient implements tictail.CategoriesClient.
type CategoriesClient struct {
	collection *resource.Collection[tictail.Category]
}

// NewCategoriesClient creates a new categories client under a store URI.
func NewCategoriesClient(parent string, transport resource.Transport) *CategoriesClient {
	return newCategoriesClient(resource.Prefix(parent), transport)
}

func newCategoriesClient(parent resource.Parent, transport resource.Transport) *CategoriesClient {
	return &CategoriesClient{
		collection: resource.NewCollectionUnder(categoryKind, parent, transport, newCategory),
	}
}

// URI implements tictail.CategoriesClient.URI.
func (c *CategoriesClient) URI() string {
	return c.collection.URI()
}

// List implements tictail.CategoriesClient.List.
func (c *CategoriesClient) List(ctx context.Context, params *tictail.ListParams) ([]tictail.Category, error) {
	return resource.List(ctx, c.collection, params.ToParams())
}
