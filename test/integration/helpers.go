// +build integration

package integration

import (
	"bytes"
	"os"
	"os/exec"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/fivetwenty-io/skytap-client/internal/constants"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	BaseURL    string
	Username   string
	APIKey     string
	TemplateID string
	SkytapPath string
	Verbose    bool
}

// LoadTestConfig loads configuration from environment variables
func LoadTestConfig() *TestConfig {
	baseURL := os.Getenv("SKYTAP_BASE_URL")
	if baseURL == "" {
		baseURL = constants.DefaultBaseURL
	}

	return &TestConfig{
		BaseURL:    baseURL,
		Username:   os.Getenv("SKYTAP_USERNAME"),
		APIKey:     os.Getenv("SKYTAP_API_KEY"),
		TemplateID: os.Getenv("SKYTAP_TEMPLATE_ID"),
		SkytapPath: getSkytapPath(),
		Verbose:    os.Getenv("SKYTAP_VERBOSE") == "true",
	}
}

// getSkytapPath determines the path to the skytap binary
func getSkytapPath() string {
	if path := os.Getenv("SKYTAP_BINARY_PATH"); path != "" {
		return path
	}

	// Try common locations
	candidates := []string{
		"../../skytap",
		"./skytap",
		"../skytap",
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "skytap" // Fallback to PATH
}

// SkipIfMissingConfig skips test if required config is missing
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	config.SkipIfMissingCredentials(t)

	if _, err := os.Stat(config.SkytapPath); os.IsNotExist(err) {
		t.Skipf("skytap binary not found at %s, skipping integration test", config.SkytapPath)
	}
}

// SkipIfMissingCredentials skips test if no API credentials are set. Library
// level tests need only credentials, not the built binary.
func (config *TestConfig) SkipIfMissingCredentials(t *testing.T) {
	if config.Username == "" || config.APIKey == "" {
		t.Skip("SKYTAP_USERNAME or SKYTAP_API_KEY not set, skipping integration test")
	}
}

// SkipIfMissingTemplate skips test if no template ID was provided
func (config *TestConfig) SkipIfMissingTemplate(t *testing.T) {
	if config.TemplateID == "" {
		t.Skip("SKYTAP_TEMPLATE_ID not set, skipping lifecycle test")
	}
}

// CommandRunner provides utilities for running skytap commands
type CommandRunner struct {
	config *TestConfig
	t      *testing.T
}

// NewCommandRunner creates a new command runner
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	return &CommandRunner{
		config: config,
		t:      t,
	}
}

// Run executes a skytap command and returns output. Credentials flow in
// through the inherited SKYTAP_* environment variables.
func (runner *CommandRunner) Run(args ...string) (stdout, stderr string, err error) {
	cmd := exec.Command(runner.config.SkytapPath, args...)

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	if runner.config.Verbose {
		runner.t.Logf("Running: %s %s", runner.config.SkytapPath, strings.Join(args, " "))
	}

	err = cmd.Run()
	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()

	if runner.config.Verbose && err != nil {
		runner.t.Logf("Command failed: %v\nStdout: %s\nStderr: %s", err, stdout, stderr)
	}

	return stdout, stderr, err
}

// RunIsolated executes a skytap command with a scrubbed environment so
// neither the inherited SKYTAP_* variables nor the caller's config file
// can leak credentials into the command. The home directory is pointed at
// homeDir, which tests usually set to t.TempDir().
func (runner *CommandRunner) RunIsolated(homeDir string, args ...string) (stdout, stderr string, err error) {
	cmd := exec.Command(runner.config.SkytapPath, args...)

	env := []string{"HOME=" + homeDir}

	for _, entry := range os.Environ() {
		if strings.HasPrefix(entry, "PATH=") {
			env = append(env, entry)
		}
	}

	cmd.Env = env

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	if runner.config.Verbose {
		runner.t.Logf("Running isolated: %s %s", runner.config.SkytapPath, strings.Join(args, " "))
	}

	err = cmd.Run()
	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()

	if runner.config.Verbose && err != nil {
		runner.t.Logf("Command failed: %v\nStdout: %s\nStderr: %s", err, stdout, stderr)
	}

	return stdout, stderr, err
}

// idPattern matches the "(ID: xxx)" suffix of success messages.
var idPattern = regexp.MustCompile(`\(ID: ([^)]+)\)`)

// ExtractID pulls the resource ID out of a success message
func ExtractID(t *testing.T, output string) string {
	matches := idPattern.FindStringSubmatch(output)
	if len(matches) != 2 {
		t.Fatalf("No resource ID found in output: %s", output)
	}

	return matches[1]
}

// GenerateTestName creates a unique test resource name
func GenerateTestName(prefix string) string {
	return prefix + "-" + strings.ReplaceAll(time.Now().Format("20060102-150405"), " ", "")
}

// CleanupResource attempts to delete a test resource
func (runner *CommandRunner) CleanupResource(resourceType, id string) {
	var args []string

	switch resourceType {
	case "environment":
		args = []string{"environments", "delete", id, "--force"}
	case "template":
		args = []string{"templates", "delete", id, "--force"}
	default:
		runner.t.Logf("Unknown resource type for cleanup: %s", resourceType)

		return
	}

	stdout, stderr, err := runner.Run(args...)
	if err != nil && runner.config.Verbose {
		runner.t.Logf("Cleanup warning for %s %s: %s\nStderr: %s", resourceType, id, stdout, stderr)
	}
}

// WaitForCondition waits for a condition to be met with timeout
func WaitForCondition(t *testing.T, condition func() bool, timeout time.Duration, message string) {
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	timeoutChan := time.After(timeout)

	for {
		select {
		case <-ticker.C:
			if condition() {
				return
			}
		case <-timeoutChan:
			t.Fatalf("Timeout waiting for condition: %s", message)
		}
	}
}

// AssertJSONOutput verifies command output is valid JSON
func AssertJSONOutput(t *testing.T, output string) {
	// Basic JSON validation
	output = strings.TrimSpace(output)
	if !strings.HasPrefix(output, "{") && !strings.HasPrefix(output, "[") {
		t.Errorf("Output does not appear to be JSON: %s", output)
	}
}

// AssertYAMLOutput verifies command output is valid YAML
func AssertYAMLOutput(t *testing.T, output string) {
	// Basic YAML validation
	output = strings.TrimSpace(output)
	if strings.Contains(output, "---") || strings.Contains(output, ":") {
		return // Looks like YAML
	}
	t.Errorf("Output does not appear to be YAML: %s", output)
}
