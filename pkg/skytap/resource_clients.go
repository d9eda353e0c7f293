package skytap

import "context"

// UsersClient provides user account operations.
type UsersClient interface {
	// Get retrieves a user by ID
	Get(ctx context.Context, id string) (*User, error)

	// List retrieves all users visible to the caller
	List(ctx context.Context) ([]User, error)

	// Create adds a new user account
	Create(ctx context.Context, request *CreateUserRequest) (*User, error)

	// Update changes user attributes by name
	Update(ctx context.Context, id string, updates map[string]string) (*User, error)
}

// EnvironmentsClient provides environment operations. Environments are
// called "configurations" on the wire.
type EnvironmentsClient interface {
	// Get retrieves an environment by ID
	Get(ctx context.Context, id string) (*Environment, error)

	// List retrieves all environments visible to the caller
	List(ctx context.Context) ([]Environment, error)

	// Create builds a new environment from a template
	Create(ctx context.Context, templateID string) (*Environment, error)

	// Update changes environment attributes by name
	Update(ctx context.Context, id string, updates map[string]string) (*Environment, error)

	// Delete removes an environment
	Delete(ctx context.Context, id string) error

	// SetRunstate transitions the environment, or only the given VMs when
	// vmIDs is non-empty, to the requested runstate
	SetRunstate(ctx context.Context, id string, runstate Runstate, vmIDs ...string) (*Environment, error)
}

// TemplatesClient provides template operations.
type TemplatesClient interface {
	// Get retrieves a template by ID
	Get(ctx context.Context, id string) (*Template, error)

	// List retrieves all templates visible to the caller
	List(ctx context.Context) ([]Template, error)

	// CreateFromVMs creates a template from selected VMs of an environment
	CreateFromVMs(ctx context.Context, environmentID string, vmIDs []string) (*Template, error)

	// Update changes template attributes by name
	Update(ctx context.Context, id string, updates map[string]string) (*Template, error)

	// Delete removes a template
	Delete(ctx context.Context, id string) error
}

// DepartmentsClient provides department and quota operations.
type DepartmentsClient interface {
	// Get retrieves a department by ID
	Get(ctx context.Context, id string) (*Department, error)

	// List retrieves departments; opts may bound the page with count/offset
	List(ctx context.Context, opts *ListOptions) ([]Department, error)

	// ListUsers retrieves the members of a department
	ListUsers(ctx context.Context, id string, opts *ListOptions) ([]User, error)

	// AddUser adds a user to a department
	AddUser(ctx context.Context, departmentID, userID string) (*User, error)

	// Quotas retrieves the department's quotas with current usage
	Quotas(ctx context.Context, id string) ([]Quota, error)

	// SetQuotas updates the department's quota limits (v2 API)
	SetQuotas(ctx context.Context, id string, limits []QuotaLimit) ([]Quota, error)

	// SetDescription updates the department description (v2 API)
	SetDescription(ctx context.Context, id, description string) (*Department, error)
}

// ProjectsClient provides project operations.
type ProjectsClient interface {
	// Get retrieves a project by ID
	Get(ctx context.Context, id string) (*Project, error)

	// List retrieves all projects visible to the caller
	List(ctx context.Context) ([]Project, error)

	// GetEnvironment retrieves one environment within a project
	GetEnvironment(ctx context.Context, projectID, environmentID string) (*Environment, error)

	// ListEnvironments retrieves the environments in a project
	ListEnvironments(ctx context.Context, projectID string) ([]Environment, error)

	// ListTemplates retrieves the templates in a project
	ListTemplates(ctx context.Context, projectID string) ([]Template, error)

	// AddEnvironment adds an environment to a project
	AddEnvironment(ctx context.Context, projectID, environmentID string) (*Environment, error)

	// AddTemplate adds a template to a project
	AddTemplate(ctx context.Context, projectID, templateID string) (*Template, error)
}

// VMsClient provides operations on VMs within an environment.
type VMsClient interface {
	// Get retrieves a VM by ID
	Get(ctx context.Context, environmentID, id string) (*VM, error)

	// List retrieves the VMs of an environment
	List(ctx context.Context, environmentID string) ([]VM, error)

	// Update changes VM attributes by name
	Update(ctx context.Context, environmentID, id string, updates map[string]string) (*VM, error)
}

// NetworksClient provides operations on environment networks.
type NetworksClient interface {
	// Get retrieves a network by ID
	Get(ctx context.Context, environmentID, id string) (*Network, error)

	// List retrieves the networks of an environment
	List(ctx context.Context, environmentID string) ([]Network, error)
}

// InterfacesClient provides operations on VM network adapters.
type InterfacesClient interface {
	// Get retrieves a network adapter by ID
	Get(ctx context.Context, environmentID, vmID, id string) (*Interface, error)

	// List retrieves the network adapters of a VM
	List(ctx context.Context, environmentID, vmID string) ([]Interface, error)

	// Create adds a network adapter to a VM
	Create(ctx context.Context, environmentID, vmID string) (*Interface, error)

	// Attach connects a network adapter to an environment network
	Attach(ctx context.Context, environmentID, vmID, id, networkID string) (*Interface, error)
}

// PublishedServicesClient provides operations on published services of a
// VM network adapter.
type PublishedServicesClient interface {
	// Get retrieves a published service by ID
	Get(ctx context.Context, environmentID, vmID, interfaceID, id string) (*PublishedService, error)

	// List retrieves the published services of a network adapter
	List(ctx context.Context, environmentID, vmID, interfaceID string) ([]PublishedService, error)

	// Create publishes an internal port of the network adapter
	Create(ctx context.Context, environmentID, vmID, interfaceID string, port int) (*PublishedService, error)

	// Delete unpublishes a service
	Delete(ctx context.Context, environmentID, vmID, interfaceID, id string) error
}

// PublishSetsClient provides operations on environment publish sets.
type PublishSetsClient interface {
	// Get retrieves a publish set by ID
	Get(ctx context.Context, environmentID, id string) (*PublishSet, error)

	// List retrieves the publish sets of an environment
	List(ctx context.Context, environmentID string) ([]PublishSet, error)

	// Delete removes a publish set
	Delete(ctx context.Context, environmentID, id string) error
}

// VPNsClient provides read access to VPN connections.
type VPNsClient interface {
	// Get retrieves a VPN by ID
	Get(ctx context.Context, id string) (*VPN, error)

	// List retrieves all VPNs visible to the caller
	List(ctx context.Context) ([]VPN, error)
}

// PublicIPsClient provides read access to the account's public IPs.
type PublicIPsClient interface {
	// Get retrieves a public IP by ID
	Get(ctx context.Context, id string) (*PublicIP, error)

	// List retrieves all public IPs owned by the account
	List(ctx context.Context) ([]PublicIP, error)
}

// ResourcesClient is the schema-free facade over the API: it addresses any
// resource collection by its path segment and returns the response body
// decoded verbatim into Records. Use it for endpoints that have no typed
// client, or when the raw mapping is preferable to a typed projection.
type ResourcesClient interface {
	// Get retrieves one resource as a Record, e.g. Get(ctx, "users", "1")
	Get(ctx context.Context, resourceType, id string) (Record, error)

	// List retrieves a resource collection as Records
	List(ctx context.Context, resourceType string, opts *ListOptions) ([]Record, error)
}
