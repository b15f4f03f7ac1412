// Package rcloud provides types, interfaces, and helpers for working with the
// Redis Cloud REST API.
//
// # Overview
//
// The rcloud package defines the domain types (e.g., Subscription, Database,
// ACLRule, VpcPeering, Task) and the interfaces for resource-oriented clients
// (e.g., SubscriptionsClient, DatabasesClient). A concrete implementation of
// these clients is provided by the rcclient package, which wires
// configuration, transport, and authentication. Most consumers should import
// rcclient to construct a client and then interact with the resource client
// interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/rediscloud-community/rediscloud-go/pkg/rcclient"
//	  "github.com/rediscloud-community/rediscloud-go/pkg/rcloud"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := rcclient.New(&rcloud.Config{
//	    APIKey:    "your-api-key",
//	    APISecret: "your-api-secret",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // List the databases of subscription 123
//	  dbs, err := cli.Databases().List(ctx, 123, rcloud.NewQueryParams().WithLimit(50))
//	  if err != nil { log.Fatal(err) }
//	  _ = dbs
//	}
//
// # Queries and pagination
//
// Use QueryParams to express common list options (offset, limit, filters).
// List endpoints that paginate use offset/limit semantics; helpers are
// provided for iterating or collecting paginated results:
//
//	it := rcloud.NewPaginationIterator[rcloud.Database](ctx, lister, "/subscriptions/123/databases", nil)
//	for it.HasNext() {
//	  db, err := it.Next()
//	  if err != nil { break }
//	  _ = db
//	}
//
// # Asynchronous operations
//
// Most mutating operations (creating subscriptions, databases, peerings, and
// so on) are asynchronous: the API answers 202 Accepted with a TaskStateUpdate
// envelope. Use TasksClient.WaitForTask to poll a task to its terminal state.
//
// # Errors
//
// API errors are represented by APIError. Helpers such as IsNotFound,
// IsUnauthorized, and IsRateLimited make it easy to branch on common cases,
// and APIError.Retryable reports whether a failure is worth retrying.
//
// # Interceptors and caching
//
// The package includes generic building blocks such as request/response
// interceptors (for logging, auth headers, metrics, rate limiting, circuit
// breaking) and a simple pluggable Cache abstraction. The rcclient package
// composes these pieces for a sensible default client; applications with
// advanced needs can also use these primitives directly.
package rcloud
