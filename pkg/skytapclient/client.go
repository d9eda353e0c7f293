// Package skytapclient provides the main entry point for creating Skytap API clients
package skytapclient

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/fivetwenty-io/skytap-client/internal/client"
	"github.com/fivetwenty-io/skytap-client/pkg/skytap"
)

// New creates a new Skytap API client from the given configuration. The
// configuration is validated up front and never modified, so one config
// value can build any number of clients.
func New(config *skytap.Config) (skytap.Client, error) {
	if config == nil {
		return nil, skytap.ErrConfigRequired
	}

	if config.BaseURL == "" {
		return nil, skytap.ErrBaseURLRequired
	}

	baseURL, err := normalizeBaseURL(config.BaseURL)
	if err != nil {
		return nil, err
	}

	// Work on a copy so the caller's config stays untouched
	normalized := *config
	normalized.BaseURL = baseURL

	apiClient, err := client.New(&normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return apiClient, nil
}

// normalizeBaseURL trims trailing slashes and applies the https scheme when
// none is given. Anything that does not parse as an absolute HTTP or HTTPS
// URL is rejected.
func normalizeBaseURL(raw string) (string, error) {
	baseURL := raw
	if !strings.Contains(baseURL, "://") {
		baseURL = "https://" + baseURL
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("%w: %q", skytap.ErrInvalidBaseURL, raw)
	}

	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return "", fmt.Errorf("%w: %q", skytap.ErrInvalidBaseURL, raw)
	}

	return strings.TrimRight(baseURL, "/"), nil
}

// NewWithCredentials creates a new client from a base URL, login name, and
// API key.
func NewWithCredentials(baseURL, username, apiKey string) (skytap.Client, error) {
	return New(&skytap.Config{
		BaseURL:  baseURL,
		Username: username,
		APIKey:   apiKey,
	})
}
