package constants

import "errors"

// Configuration errors.
var (
	ErrNoCredentialsConfigured = errors.New("no credentials configured, use 'skytap config set' or 'skytap login' to add them")
	ErrNoBaseURLConfigured     = errors.New("no API URL configured, use 'skytap config set base-url <url>' to set one")
	ErrUnknownConfigKey        = errors.New("unknown configuration key")
)

// Validation errors.
var (
	ErrInvalidAttributeFormat = errors.New("attributes must be key=value pairs")
	ErrInvalidRunstate        = errors.New("runstate must be one of: running, stopped, suspended, halted, reset")
	ErrInvalidQuotaLimit      = errors.New("quota limit must be an integer or 'unlimited'")
	ErrInvalidPort            = errors.New("port must be a positive integer")
)

// Required field errors.
var (
	ErrTemplateRequired    = errors.New("--template flag is required")
	ErrEnvironmentRequired = errors.New("--environment flag is required")
	ErrNetworkRequired     = errors.New("--network flag is required")
)

// File system errors.
var (
	ErrNotRegularFile = errors.New("path is not a regular file")
)
