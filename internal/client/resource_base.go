package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/fivetwenty-io/skytap-client/internal/constants"
	"github.com/fivetwenty-io/skytap-client/internal/http"
	"github.com/fivetwenty-io/skytap-client/pkg/skytap"
)

// decode parses a response body, reporting failures as *skytap.DecodeError
// so callers can distinguish a malformed payload from an API error.
func decode(body []byte, target interface{}) error {
	err := json.Unmarshal(body, target)
	if err != nil {
		return &skytap.DecodeError{Body: body, Err: err}
	}

	return nil
}

// listWindow converts list options to query values. A nil opts selects the
// API default window of count=100 starting at offset=0, sent explicitly.
func listWindow(opts *skytap.ListOptions) url.Values {
	if opts == nil {
		return url.Values{
			"count":  []string{strconv.Itoa(constants.DefaultListCount)},
			"offset": []string{strconv.Itoa(constants.DefaultListOffset)},
		}
	}

	return opts.ToValues()
}

// updateValues converts attribute updates to query values. Skytap accepts
// resource updates as request parameters rather than a JSON body.
func updateValues(updates map[string]string) url.Values {
	values := url.Values{}
	for key, value := range updates {
		values.Set(key, value)
	}

	return values
}

// boolValue renders an optional bool as the string the API expects,
// falling back to the given default when unset.
func boolValue(value *bool, fallback bool) string {
	if value != nil {
		return strconv.FormatBool(*value)
	}

	return strconv.FormatBool(fallback)
}

// SimpleResource constrains the resource types served by the generic
// resource client.
type SimpleResource interface {
	skytap.VPN | skytap.PublicIP
}

// resourceClient provides Get and List for top-level resources that expose
// no other operations.
type resourceClient[T SimpleResource] struct {
	httpClient   *http.Client
	resourcePath string
	singular     string
	plural       string
}

// newResourceClient creates a generic resource client.
func newResourceClient[T SimpleResource](httpClient *http.Client, resourcePath, singular, plural string) *resourceClient[T] {
	return &resourceClient[T]{
		httpClient:   httpClient,
		resourcePath: resourcePath,
		singular:     singular,
		plural:       plural,
	}
}

// Get retrieves a resource by ID.
func (c *resourceClient[T]) Get(ctx context.Context, id string) (*T, error) {
	path := c.resourcePath + "/" + id

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting %s: %w", c.singular, err)
	}

	var resource T

	err = decode(resp.Body, &resource)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", c.singular, err)
	}

	return &resource, nil
}

// List retrieves all resources of the type.
func (c *resourceClient[T]) List(ctx context.Context) ([]T, error) {
	resp, err := c.httpClient.Get(ctx, c.resourcePath, nil)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", c.plural, err)
	}

	var resources []T

	err = decode(resp.Body, &resources)
	if err != nil {
		return nil, fmt.Errorf("parsing %s list: %w", c.plural, err)
	}

	return resources, nil
}
