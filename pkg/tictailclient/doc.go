// Package tictailclient is the entry point for constructing a Tictail API
// client that implements the tictail.Client interface.
//
// It layers configuration, the HTTP transport and bearer authentication on
// top of the interfaces defined in the tictail package.
//
// Quick start
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
//
//	  cli, err := tictailclient.NewWithToken("accesstoken_...")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with full control over the transport:
//	  cli, err = tictailclient.New(&tictail.Config{
//	    AccessToken: "accesstoken_...",
//	    Timeout:     5 * time.Second,
//	    RetryMax:    2,
//	  })
//
//	  store, err := cli.Me().Get(ctx)
//	  if err != nil { log.Fatal(err) }
//
//	  orders, err := store.Orders().List(ctx, tictail.NewListParams().
//	    WithModifiedAfter(time.Now().Add(-24*time.Hour)))
//	  _ = orders
//	}
//
// Every call blocks for exactly one HTTP round trip unless retries are
// enabled in the config. Values returned by the client hold no connection
// state and may be shared between goroutines as long as Set is not called
// concurrently.
package tictailclient
