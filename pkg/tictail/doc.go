// Package tictail provides types, interfaces, and helpers for working with the
// Tictail REST API.
//
// # Overview
//
// The tictail package defines the resource interfaces (Store, Product,
// Order, ...) and the clients that reach them (StoresClient,
// ProductsClient, ...). A concrete implementation is provided by the
// tictailclient package, which wires configuration, transport and
// authentication.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/tictail/tictail-go/pkg/tictail"
//	  "github.com/tictail/tictail-go/pkg/tictailclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := tictailclient.NewWithToken("my-access-token")
//	  if err != nil { log.Fatal(err) }
//
//	  store, err := cli.Me().Get(ctx)
//	  if err != nil { log.Fatal(err) }
//
//	  products, err := store.Products().List(ctx, tictail.NewListParams().WithCategories("47dv"))
//	  if err != nil { log.Fatal(err) }
//	  _ = products
//	}
//
// # Resources
//
// A store owns its subresources: Cards, Products, Customers, Followers,
// Orders, Theme and Categories. Each is reachable from a fetched store, or
// directly from the client by store id:
//
//	followers, err := cli.Followers("KGu")
//
// Resource fields are read with Lookup and the typed GetString, GetInt,
// GetTime, ... helpers. Fields named created_at and modified_at are parsed
// into time.Time values wherever they appear, including inside nested
// objects and lists.
//
// # Errors
//
// Failed calls return a *Error whose Kind is one of ErrConnectionFailure,
// ErrBadRequest, ErrForbidden, ErrNotFound, ErrValidationFailed,
// ErrServerError or ErrAPI. Use errors.Is or the IsNotFound, IsForbidden,
// ... helpers to branch on the kind and AsError to read the status, message
// and decoded error body.
//
// # Interceptors
//
// Config.Interceptors runs hooks around every call. Request interceptors may
// add headers or abort the call; response interceptors see the status and
// latency of every finished call:
//
//	metrics := tictail.NewMetricsCollector()
//	chain := tictail.NewInterceptorChain().
//	  AddRequestInterceptor(tictail.RateLimitInterceptor(5)).
//	  AddResponseInterceptor(tictail.MetricsResponseInterceptor(metrics))
package tictail
