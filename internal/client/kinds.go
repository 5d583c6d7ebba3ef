package client

import (
	"github.com/tictail/tictail-go/internal/resource"
)

// Subresource names under a store.
const (
	subCards      = "cards"
	subProducts   = "products"
	subCustomers  = "customers"
	subFollowers  = "followers"
	subOrders     = "orders"
	subTheme      = "theme"
	subCategories = "categories"
)

var (
	cardKind     = &resource.Kind{Name: "card", Endpoint: "cards"}
	productKind  = &resource.Kind{Name: "product", Endpoint: "products"}
	customerKind = &resource.Kind{Name: "customer", Endpoint: "customers"}
	followerKind = &resource.Kind{Name: "follower", Endpoint: "followers"}
	orderKind    = &resource.Kind{Name: "order", Endpoint: "orders"}
	categoryKind = &resource.Kind{Name: "category", Endpoint: "categories"}
	themeKind    = &resource.Kind{Name: "theme", Endpoint: "theme", Singleton: true}
	meKind       = &resource.Kind{Name: "me", Endpoint: "me", Singleton: true}

	storeKind = &resource.Kind{
		Name:     "store",
		Endpoint: "stores",
		Subresources: []resource.Subresource{
			{Name: subCards, New: func(parent resource.Parent, t resource.Transport) interface{} {
				return newCardsClient(parent, t)
			}},
			{Name: subProducts, New: func(parent resource.Parent, t resource.Transport) interface{} {
				return newProductsClient(parent, t)
			}},
			{Name: subCustomers, New: func(parent resource.Parent, t resource.Transport) interface{} {
				return newCustomersClient(parent, t)
			}},
			{Name: subFollowers, New: func(parent resource.Parent, t resource.Transport) interface{} {
				return newFollowersClient(parent, t)
			}},
			{Name: subOrders, New: func(parent resource.Parent, t resource.Transport) interface{} {
				return newOrdersClient(parent, t)
			}},
			{Name: subTheme, New: func(parent resource.Parent, t resource.Transport) interface{} {
				return newThemeClient(parent, t)
			}},
			{Name: subCategories, New: func(parent resource.Parent, t resource.Transport) interface{} {
				return newCategoriesClient(parent, t)
			}},
		},
	}
)
