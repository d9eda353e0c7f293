package client

import (
	"fmt"

	"github.com/fivetwenty-io/skytap-client/internal/auth"
	"github.com/fivetwenty-io/skytap-client/internal/http"
	"github.com/fivetwenty-io/skytap-client/pkg/skytap"
)

// Client implements the skytap.Client interface.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     skytap.Logger

	// Resource clients
	users             skytap.UsersClient
	environments      skytap.EnvironmentsClient
	templates         skytap.TemplatesClient
	departments       skytap.DepartmentsClient
	projects          skytap.ProjectsClient
	vms               skytap.VMsClient
	networks          skytap.NetworksClient
	interfaces        skytap.InterfacesClient
	publishedServices skytap.PublishedServicesClient
	publishSets       skytap.PublishSetsClient
	vpns              skytap.VPNsClient
	publicIPs         skytap.PublicIPsClient
	resources         skytap.ResourcesClient
}

// New creates a new Skytap API client. The configuration is read once here;
// the returned client holds no reference to it, so later mutation of config
// does not affect the client.
func New(config *skytap.Config) (*Client, error) {
	if config == nil {
		return nil, skytap.ErrConfigRequired
	}

	if config.BaseURL == "" {
		return nil, skytap.ErrBaseURLRequired
	}

	if config.Username == "" {
		return nil, skytap.ErrUsernameRequired
	}

	if config.APIKey == "" {
		return nil, skytap.ErrAPIKeyRequired
	}

	credentials, err := auth.NewBasicCredentials(config.Username, config.APIKey)
	if err != nil {
		return nil, fmt.Errorf("building credentials: %w", err)
	}

	httpClient := http.NewClient(config.BaseURL, credentials, createHTTPClientOptions(config)...)

	client := &Client{
		httpClient: httpClient,
		baseURL:    config.BaseURL,
		logger:     config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *skytap.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.Interceptors != nil {
		httpOpts = append(httpOpts, http.WithInterceptors(config.Interceptors))
	}

	return httpOpts
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.users = NewUsersClient(c.httpClient)
	c.environments = NewEnvironmentsClient(c.httpClient)
	c.templates = NewTemplatesClient(c.httpClient)
	c.departments = NewDepartmentsClient(c.httpClient)
	c.projects = NewProjectsClient(c.httpClient)
	c.vms = NewVMsClient(c.httpClient)
	c.networks = NewNetworksClient(c.httpClient)
	c.interfaces = NewInterfacesClient(c.httpClient)
	c.publishedServices = NewPublishedServicesClient(c.httpClient)
	c.publishSets = NewPublishSetsClient(c.httpClient)
	c.vpns = NewVPNsClient(c.httpClient)
	c.publicIPs = NewPublicIPsClient(c.httpClient)
	c.resources = NewResourcesClient(c.httpClient)
}

// Resource client accessors

// Users implements skytap.Client.Users.
func (c *Client) Users() skytap.UsersClient {
	return c.users
}

// Environments implements skytap.Client.Environments.
func (c *Client) Environments() skytap.EnvironmentsClient {
	return c.environments
}

// Templates implements skytap.Client.Templates.
func (c *Client) Templates() skytap.TemplatesClient {
	return c.templates
}

// Departments implements skytap.Client.Departments.
func (c *Client) Departments() skytap.DepartmentsClient {
	return c.departments
}

// Projects implements skytap.Client.Projects.
func (c *Client) Projects() skytap.ProjectsClient {
	return c.projects
}

// VMs implements skytap.Client.VMs.
func (c *Client) VMs() skytap.VMsClient {
	return c.vms
}

// Networks implements skytap.Client.Networks.
func (c *Client) Networks() skytap.NetworksClient {
	return c.networks
}

// Interfaces implements skytap.Client.Interfaces.
func (c *Client) Interfaces() skytap.InterfacesClient {
	return c.interfaces
}

// PublishedServices implements skytap.Client.PublishedServices.
func (c *Client) PublishedServices() skytap.PublishedServicesClient {
	return c.publishedServices
}

// PublishSets implements skytap.Client.PublishSets.
func (c *Client) PublishSets() skytap.PublishSetsClient {
	return c.publishSets
}

// VPNs implements skytap.Client.VPNs.
func (c *Client) VPNs() skytap.VPNsClient {
	return c.vpns
}

// PublicIPs implements skytap.Client.PublicIPs.
func (c *Client) PublicIPs() skytap.PublicIPsClient {
	return c.publicIPs
}

// Resources implements skytap.Client.Resources.
func (c *Client) Resources() skytap.ResourcesClient {
	return c.resources
}

// BaseURL returns the normalized base URL the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// loggerAdapter adapts skytap.Logger to http.Logger.
type loggerAdapter struct {
	logger skytap.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}
