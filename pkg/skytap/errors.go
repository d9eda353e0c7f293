package skytap

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"strings"
)

// ErrInvalidConfig is the root of all construction failures. Every
// configuration error returned by skytapclient.New satisfies
// errors.Is(err, ErrInvalidConfig).
var ErrInvalidConfig = errors.New("invalid client configuration")

// Field-specific configuration errors. Each wraps ErrInvalidConfig so
// callers can branch on the family or on the precise cause.
var (
	ErrConfigRequired   = fmt.Errorf("%w: config is required", ErrInvalidConfig)
	ErrBaseURLRequired  = fmt.Errorf("%w: base URL is required", ErrInvalidConfig)
	ErrInvalidBaseURL   = fmt.Errorf("%w: base URL must be a valid http(s) URL", ErrInvalidConfig)
	ErrUsernameRequired = fmt.Errorf("%w: username is required", ErrInvalidConfig)
	ErrAPIKeyRequired   = fmt.Errorf("%w: API key is required", ErrInvalidConfig)
)

// ErrResourceTypeRequired is returned by the generic resources client when
// the resource type argument is empty.
var ErrResourceTypeRequired = errors.New("resource type is required")

// APIError represents a non-success response from the Skytap API. It
// carries the HTTP status and the raw response body for caller inspection.
type APIError struct {
	// StatusCode is the HTTP status code of the response.
	StatusCode int
	// Status is the HTTP status line text, e.g. "404 Not Found".
	Status string
	// Method and URL identify the request that failed.
	Method string
	URL    string
	// Body is the raw response body.
	Body []byte
	// Message is the error message extracted from a JSON error payload,
	// when the API provided one.
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("skytap: %s %s: %s: %s", e.Method, e.URL, e.Status, e.Message)
	}

	return fmt.Sprintf("skytap: %s %s: %s", e.Method, e.URL, e.Status)
}

// ParseAPIError builds an APIError from a non-2xx response, extracting the
// message from the Skytap error payload ({"error": "..."} or
// {"errors": ["..."]}) when the body contains one.
func ParseAPIError(method, url string, statusCode int, status string, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: statusCode,
		Status:     status,
		Method:     method,
		URL:        url,
		Body:       body,
	}

	if apiErr.Status == "" {
		apiErr.Status = http.StatusText(statusCode)
	}

	var payload struct {
		Error  string   `json:"error"`
		Errors []string `json:"errors"`
	}

	if err := json.Unmarshal(body, &payload); err == nil {
		switch {
		case payload.Error != "":
			apiErr.Message = payload.Error
		case len(payload.Errors) > 0:
			apiErr.Message = strings.Join(payload.Errors, "; ")
		}
	}

	return apiErr
}

// TransportError represents a network-level failure: DNS resolution,
// connection refused, TLS, or timeout. The underlying error is available
// via Unwrap.
type TransportError struct {
	// Op is the request method, e.g. "GET".
	Op  string
	URL string
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("skytap: %s %s: %v", e.Op, e.URL, e.Err)
}

// Unwrap returns the underlying transport error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the failure was a timeout or deadline expiry.
func (e *TransportError) Timeout() bool {
	var netErr net.Error
	if errors.As(e.Err, &netErr) && netErr.Timeout() {
		return true
	}

	return errors.Is(e.Err, context.DeadlineExceeded) || errors.Is(e.Err, os.ErrDeadlineExceeded)
}

// DecodeError represents a 2xx response whose body could not be parsed as
// JSON. The offending body is preserved for caller inspection.
type DecodeError struct {
	Body []byte
	Err  error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("skytap: decoding response body: %v", e.Err)
}

// Unwrap returns the underlying JSON error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// AsAPIError returns the APIError in err's chain, if any.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}

	return nil, false
}

// IsNotFound returns true if the error is a 404 Not Found response.
func IsNotFound(err error) bool {
	apiErr, ok := AsAPIError(err)

	return ok && apiErr.StatusCode == http.StatusNotFound
}

// IsUnauthorized returns true if the error is a 401 Unauthorized response.
func IsUnauthorized(err error) bool {
	apiErr, ok := AsAPIError(err)

	return ok && apiErr.StatusCode == http.StatusUnauthorized
}

// IsForbidden returns true if the error is a 403 Forbidden response.
func IsForbidden(err error) bool {
	apiErr, ok := AsAPIError(err)

	return ok && apiErr.StatusCode == http.StatusForbidden
}

// IsBusy returns true if the error is a 409 Conflict or 423 Locked
// response, the statuses Skytap uses while a resource is busy. The client
// performs no retry on them; callers own any retry policy.
func IsBusy(err error) bool {
	apiErr, ok := AsAPIError(err)

	return ok && (apiErr.StatusCode == http.StatusConflict || apiErr.StatusCode == http.StatusLocked)
}

// IsTimeout returns true if the error is a transport-level timeout,
// including expiry of the configured HTTP timeout or a context deadline.
func IsTimeout(err error) bool {
	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return transportErr.Timeout()
	}

	return false
}

// IsDecodeError returns true if the error chain contains a DecodeError.
func IsDecodeError(err error) bool {
	var decodeErr *DecodeError

	return errors.As(err, &decodeErr)
}
