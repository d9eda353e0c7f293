package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fivetwenty-io/skytap-client/internal/constants"
	"github.com/fivetwenty-io/skytap-client/pkg/skytap"
	"github.com/fivetwenty-io/skytap-client/pkg/skytapclient"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	// YAML block indentation for rendered output.
	defaultYAMLIndent = 2

	// Raw record values are cut to this length in table output.
	rawValueDisplayLength = 80
)

// Common static errors used throughout the commands package.
var (
	ErrUsernameRequired   = errors.New("username is required")
	ErrAPIKeyRequired     = errors.New("API key is required")
	ErrQuotaFormatInvalid = errors.New("quotas must be id=limit pairs")
)

// CreateClient builds an authenticated API client from the resolved
// configuration (flags, environment, config file).
func CreateClient() (skytap.Client, error) {
	baseURL := viper.GetString("base_url")
	if baseURL == "" {
		return nil, constants.ErrNoBaseURLConfigured
	}

	username := viper.GetString("username")
	apiKey := viper.GetString("api_key")

	if username == "" || apiKey == "" {
		return nil, constants.ErrNoCredentialsConfigured
	}

	client, err := skytapclient.NewWithCredentials(baseURL, username, apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// StandardJSONRenderer creates a standard JSON encoder.
func StandardJSONRenderer[T any](data T) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to JSON: %w", err)
	}

	return nil
}

// StandardYAMLRenderer creates a standard YAML encoder.
func StandardYAMLRenderer[T any](data T) error {
	encoder := yaml.NewEncoder(os.Stdout)
	encoder.SetIndent(defaultYAMLIndent)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}

	return nil
}

// confirmDeletion prompts before destructive operations unless forced.
func confirmDeletion(entityType, id string, force bool) bool {
	if force {
		return true
	}

	_, _ = fmt.Fprintf(os.Stdout, "Really delete %s '%s'? (y/N): ", entityType, id)

	var response string

	_, _ = fmt.Scanln(&response)

	if response != "y" && response != "Y" {
		_, _ = os.Stdout.WriteString("Cancelled\n")

		return false
	}

	return true
}

// parseAttributes converts key=value arguments into the attribute map the
// update operations expect.
func parseAttributes(pairs []string) (map[string]string, error) {
	attributes := make(map[string]string, len(pairs))

	for _, pair := range pairs {
		parts := strings.SplitN(pair, "=", constants.KeyValueSplitParts)
		if len(parts) != constants.KeyValueSplitParts || parts[0] == "" {
			return nil, fmt.Errorf("%w: %q", constants.ErrInvalidAttributeFormat, pair)
		}

		attributes[parts[0]] = parts[1]
	}

	return attributes, nil
}

// parseRunstate validates a user-supplied runstate value. "busy" is a
// state the API reports but never accepts.
func parseRunstate(value string) (skytap.Runstate, error) {
	runstate := skytap.Runstate(value)

	switch runstate {
	case skytap.RunstateRunning, skytap.RunstateStopped, skytap.RunstateSuspended,
		skytap.RunstateHalted, skytap.RunstateReset:
		return runstate, nil
	default:
		return "", fmt.Errorf("%w, got %q", constants.ErrInvalidRunstate, value)
	}
}

// formatLimit renders a quota limit, where nil means no limit.
func formatLimit(limit *int64) string {
	if limit == nil {
		return constants.Unlimited
	}

	return strconv.FormatInt(*limit, 10)
}

// stringOrNA substitutes a placeholder for empty table cells.
func stringOrNA(value string) string {
	if value == "" {
		return constants.NotAvailable
	}

	return value
}

// truncateString shortens long values for table display.
func truncateString(value string, maxLen int) string {
	if len(value) <= maxLen {
		return value
	}

	return value[:maxLen-3] + "..."
}
