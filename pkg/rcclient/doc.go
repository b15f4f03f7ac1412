// Package rcclient provides the primary entry point for constructing a
// Redis Cloud API client that implements the rcloud.Client interface.
//
// It layers configuration, HTTP transport, and authentication on top of the
// resource interfaces and types defined in the rcloud package. Most
// applications should import rcclient to build a client, then use the
// returned rcloud.Client to access resource-specific clients, for example
// Subscriptions(), Databases(), Tasks(), etc.
//
// Quick start
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
//
//	  cli, err := rcclient.New(&rcloud.Config{
//	    APIKey:    "account-api-key",
//	    APISecret: "account-secret-key",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // Or pick the key pair up from REDIS_CLOUD_API_KEY and
//	  // REDIS_CLOUD_API_SECRET:
//	  cli, err = rcclient.NewFromEnv()
//	  if err != nil { log.Fatal(err) }
//
//	  // Use resource clients via the rcloud.Client interface
//	  subs, err := cli.Subscriptions().List(ctx)
//	  if err != nil { log.Fatal(err) }
//	  _ = subs
//	}
//
// # Asynchronous operations
//
// Mutating operations (create, update, delete) answer with a task envelope
// rather than the final resource. Use Tasks().WaitForTask or
// Tasks().WaitForResourceID to block until the task settles:
//
//	task, err := cli.Subscriptions().Create(ctx, req)
//	if err != nil { log.Fatal(err) }
//
//	subID, err := cli.Tasks().WaitForResourceID(ctx, task.TaskID, nil)
//	if err != nil { log.Fatal(err) }
//
// # Helpers
//
// The package also provides convenience constructors NewWithKeys,
// NewWithEndpoint, and NewFromEnv that wrap New with the appropriate
// configuration.
package rcclient
