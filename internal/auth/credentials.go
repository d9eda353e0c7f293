package auth

import (
	"context"
	"encoding/base64"
	"errors"
)

// Static errors for err113 compliance.
var (
	ErrUsernameRequired = errors.New("username is required")
	ErrAPIKeyRequired   = errors.New("API key is required")
)

// CredentialsProvider supplies the Authorization header value for API requests.
type CredentialsProvider interface {
	AuthorizationHeader(ctx context.Context) (string, error)
}

// BasicCredentials holds a Skytap username and API key pair. The basic
// Authorization header is computed once at construction and never changes,
// so a BasicCredentials value is safe for concurrent use.
type BasicCredentials struct {
	username string
	header   string
}

// NewBasicCredentials creates credentials from a username and API key.
func NewBasicCredentials(username, apiKey string) (*BasicCredentials, error) {
	if username == "" {
		return nil, ErrUsernameRequired
	}

	if apiKey == "" {
		return nil, ErrAPIKeyRequired
	}

	encoded := base64.StdEncoding.EncodeToString([]byte(username + ":" + apiKey))

	return &BasicCredentials{
		username: username,
		header:   "Basic " + encoded,
	}, nil
}

// AuthorizationHeader implements CredentialsProvider.
func (c *BasicCredentials) AuthorizationHeader(_ context.Context) (string, error) {
	return c.header, nil
}

// Username returns the account name the credentials belong to.
func (c *BasicCredentials) Username() string {
	return c.username
}
