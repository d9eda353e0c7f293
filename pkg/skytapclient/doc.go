// Package skytapclient provides the primary entry point for constructing a
// Skytap REST API client that implements the skytap.Client interface.
//
// It layers configuration, HTTP transport, and basic authentication on top
// of the resource interfaces and types defined in the skytap package. Most
// applications should import skytapclient to build a client, then use the
// returned skytap.Client to access resource-specific clients, for example
// Environments(), Templates(), Users(), etc.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/skytap-client/pkg/skytap"
//	  "github.com/fivetwenty-io/skytap-client/pkg/skytapclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  cli, err := skytapclient.New(&skytap.Config{
//	    BaseURL:  "https://cloud.skytap.com",
//	    Username: "user@example.com",
//	    APIKey:   "api-key",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // Use resource clients via the skytap.Client interface
//	  environments, err := cli.Environments().List(ctx)
//	  if err != nil { log.Fatal(err) }
//	  _ = environments
//	}
//
// The base URL may be given without a scheme, in which case https is
// assumed. Every request authenticates with HTTP basic credentials built
// from Username and APIKey, and the configuration is treated as read-only
// once a client exists, so a single client is safe for concurrent use.
//
// # Helpers
//
// The package also provides the convenience constructor NewWithCredentials
// that wraps New with the appropriate configuration.
package skytapclient
