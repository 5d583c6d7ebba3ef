package client

import (
	"context"

	"github.com/tictail/tictail-go/internal/resource"
	"github.com/tictail/tictail-go/pkg/tictail"
)

// Store implements tictail.Store.
type Store struct {
	*resource.Resource
}

func newStore(r *resource.Resource) tictail.Store {
	return &Store{Resource: r}
}

// subresource returns a child registered by storeKind. Every store carries
// all of them.
func (s *Store) subresource(name string) interface{} {
	sub, _ := s.Subresource(name)

	return sub
}

// Cards implements tictail.Store.Cards.
func (s *Store) Cards() tictail.CardsClient {
	return s.subresource(subCards).(*CardsClient)
}

// Products implements tictail.Store.Products.
func (s *Store) Products() tictail.ProductsClient {
	return s.subresource(subProducts).(*ProductsClient)
}

// Customers implements tictail.Store.Customers.
func (s *Store) Customers() tictail.CustomersClient {
	return s.subresource(subCustomers).(*CustomersClient)
}

// Followers implements tictail.Store.Followers.
func (s *Store) Followers() tictail.FollowersClient {
	return s.subresource(subFollowers).(*FollowersClient)
}

// Orders implements tictail.Store.Orders.
func (s *Store) Orders() tictail.OrdersClient {
	return s.subresource(subOrders).(*OrdersClient)
}

// Theme implements tictail.Store.Theme.
func (s *Store) Theme() tictail.ThemeClient {
	return s.subresource(subTheme).(*ThemeClient)
}

// Categories implements tictail.Store.Categories.
func (s *Store) Categories() tictail.CategoriesClient {
	return s.subresource(subCategories).(*CategoriesClient)
}

// StoresClient implements tictail.StoresClient.
type StoresClient struct {
	collection *resource.Collection[tictail.Store]
}

// NewStoresClient creates a new stores client.
func NewStoresClient(transport resource.Transport) *StoresClient {
	return &StoresClient{
		collection: resource.NewCollection(storeKind, "", transport, newStore),
	}
}

// URI implements tictail.StoresClient.URI.
func (c *StoresClient) URI() string {
	return c.collection.URI()
}

// Get implements tictail.StoresClient.Get.
func (c *StoresClient) Get(ctx context.Context, id string) (tictail.Store, error) {
	return resource.GetByID(ctx, c.collection, id)
}

// MeClient implements tictail.MeClient.
type MeClient struct {
	me     *resource.Resource
	stores *resource.Collection[tictail.Store]
}

// NewMeClient creates a client for the store owning the access token.
func NewMeClient(transport resource.Transport) *MeClient {
	return &MeClient{
		me:     resource.New(meKind, "", nil, transport),
		stores: resource.NewCollection(storeKind, "", transport, newStore),
	}
}

// URI implements tictail.MeClient.URI.
func (c *MeClient) URI() string {
	return c.me.URI()
}

// Get implements tictail.MeClient.Get. The store is placed under /stores so
// its subresources resolve like a store fetched by id.
func (c *MeClient) Get(ctx context.Context) (tictail.Store, error) {
	return resource.Fetch(ctx, c.me, c.stores)
}
