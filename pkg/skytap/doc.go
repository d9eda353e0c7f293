// Package skytap provides types, interfaces, and helpers for working with
// the Skytap REST API.
//
// # Overview
//
// The skytap package defines the domain types (e.g., User, Environment,
// Template, VM, Network) and the interfaces for resource-oriented clients
// (e.g., UsersClient, EnvironmentsClient). A concrete implementation of
// these clients is provided by the skytapclient package, which wires
// configuration, transport, and authentication together. Most consumers
// should import skytapclient to construct a client and then interact with
// the resource client interfaces exposed here.
//
// Getting a client
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
//	  cli, err := skytapclient.New(&skytap.Config{
//	    BaseURL:  "https://cloud.skytap.com",
//	    Username: "user@example.com",
//	    APIKey:   "api-key",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  env, err := cli.Environments().Get(ctx, "12345")
//	  if err != nil { log.Fatal(err) }
//	  _ = env
//	}
//
// # Requests
//
// Every client call performs exactly one authenticated round trip against
// the API. The client never retries, caches, or paginates on the caller's
// behalf; list operations return whatever window the API served, and
// ListOptions exposes the count and offset parameters for callers that
// page manually.
//
// # Errors
//
// Failures divide into three families. APIError carries the status code and
// raw body of any non-2xx response, TransportError wraps network and timeout
// failures that prevented a response, and DecodeError reports a 2xx response
// whose body was not valid JSON. Helpers such as IsNotFound, IsUnauthorized,
// IsBusy, and IsTimeout make it easy to branch on common cases.
//
// # Resources
//
// Resource clients follow a consistent pattern across Skytap resources
// (Users, Environments, Templates, Departments, Projects, VMs, Networks,
// Interfaces, PublishedServices, PublishSets, VPNs, PublicIPs). The
// Resources client offers the same operations over any resource type,
// returning untyped Record maps. See the individual interfaces in
// resource_clients.go for the full surface area.
package skytap
