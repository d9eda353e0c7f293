package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ExtendedHTTPTimeout is used for longer operations.
	ExtendedHTTPTimeout = 45 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// API endpoints and versions.
const (
	// DefaultBaseURL is the hosted Skytap API endpoint.
	DefaultBaseURL = "https://cloud.skytap.com"

	// APIVersionV1 selects the default API behavior.
	APIVersionV1 = "v1"

	// APIVersionV2 selects version 2 API behavior.
	APIVersionV2 = "v2"

	// V2PathPrefix is prepended to request paths for v2 API calls.
	V2PathPrefix = "v2/"
)

// Media types.
const (
	// ContentTypeJSON is the media type for request bodies.
	ContentTypeJSON = "application/json"

	// AcceptJSON is the accepted response media type for v1 calls.
	AcceptJSON = "application/json"

	// AcceptV2JSON is the accepted response media type for v2 calls.
	AcceptV2JSON = "application/vnd.skytap.api.v2+json"
)

// Concurrency and batching limits.
const (
	// DefaultBatchConcurrency limits concurrent batch operations.
	DefaultBatchConcurrency = 5
)

// User account defaults applied on creation.
const (
	// DefaultAccountRole is the role given to new users.
	DefaultAccountRole = "standard_user"

	// DefaultTimeZone is the time zone given to new users.
	DefaultTimeZone = "Pacific Time (US & Canada)"
)

// List window defaults.
const (
	// DefaultListCount is the number of items requested per list call.
	DefaultListCount = 100

	// DefaultListOffset is the starting offset for list calls.
	DefaultListOffset = 0
)

// Format constants.
const (
	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"
)

// UI and display constants.
const (
	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// Unlimited is used for quotas without a limit.
	Unlimited = "unlimited"

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"

	// DescriptionDisplayLength is the default length for displaying descriptions.
	DescriptionDisplayLength = 60
)

// Validation and parsing.
const (
	// KeyValueSplitParts is the number of parts when splitting key=value strings.
	KeyValueSplitParts = 2

	// MinimumArgumentCount is used by commands taking two positional arguments.
	MinimumArgumentCount = 2
)
