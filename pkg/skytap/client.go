package skytap

import (
	"time"
)

// AccountClients provides access to account-level resource clients.
type AccountClients interface {
	Users() UsersClient
	Departments() DepartmentsClient
	Projects() ProjectsClient
}

// ComputeClients provides access to compute resource clients.
type ComputeClients interface {
	Environments() EnvironmentsClient
	Templates() TemplatesClient
	VMs() VMsClient
}

// NetworkingClients provides access to networking resource clients.
type NetworkingClients interface {
	Networks() NetworksClient
	Interfaces() InterfacesClient
	PublishedServices() PublishedServicesClient
	PublishSets() PublishSetsClient
	VPNs() VPNsClient
	PublicIPs() PublicIPsClient
}

// ResourceClients provides access to all resource-specific clients.
type ResourceClients interface {
	// Composite interfaces for resource groups
	AccountClients
	ComputeClients
	NetworkingClients
}

type Client interface {
	// Composite interfaces for related resource groups
	ResourceClients

	// Resources returns the schema-free client addressing any resource
	// collection by path segment and returning Records.
	Resources() ResourcesClient
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a skytap.Client.
//
// # Authentication
//
// Every request is sent with HTTP Basic Authentication using Username and
// APIKey. All three of BaseURL, Username, and APIKey are required;
// skytapclient.New validates them and fails with an error satisfying
// errors.Is(err, ErrInvalidConfig) otherwise. The configuration is read
// once at construction and never mutated afterwards, which is what makes a
// constructed client safe for concurrent use.
//
// # Timeouts
//
// HTTPTimeout bounds the full round trip of each request; when zero a
// default is applied. Expiry surfaces as a *TransportError. Per-call
// deadlines can additionally be set through the context passed to client
// methods.
//
// # Round trips
//
// Each client call performs exactly one HTTP request. The client never
// retries, caches, or persists anything; failures propagate to the caller
// as typed errors (APIError, TransportError, DecodeError).
type Config struct {
	// Required fields
	// BaseURL: base URL for the Skytap API (e.g. "https://cloud.skytap.com").
	// skytapclient.New normalizes this value by trimming a trailing slash
	// and adding "https://" if no scheme is present.
	BaseURL string
	// Username: login name of the API user.
	Username string
	// APIKey: the user's API security token.
	APIKey string

	// Optional configurations
	// HTTPTimeout: bounds each request round trip. Zero selects the default.
	HTTPTimeout time.Duration
	// Debug: enables verbose HTTP request/response logging when a Logger is
	// provided. Without it the library emits nothing.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer in debug mode.
	Logger Logger
	// UserAgent: overrides the default User-Agent header sent by the client.
	UserAgent string
	// Interceptors: optional chain run around every request. Interceptors
	// observe or adjust requests and responses but cannot add round trips.
	Interceptors *InterceptorChain
}
