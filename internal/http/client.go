package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fivetwenty-io/skytap-client/internal/auth"
	"github.com/fivetwenty-io/skytap-client/internal/constants"
	"github.com/fivetwenty-io/skytap-client/pkg/skytap"
	"github.com/hashicorp/go-retryablehttp"
)

// defaultUserAgent identifies the client to the API.
const defaultUserAgent = "skytap-client/1.0.0"

// Logger defines the logging interface used by the HTTP client.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Request represents an API request.
type Request struct {
	Method     string
	Path       string
	Query      url.Values
	Body       interface{}
	Headers    map[string]string
	APIVersion string
}

// Version returns the API version the request targets. An unset APIVersion
// selects v1.
func (r *Request) Version() string {
	if r.APIVersion == "" {
		return constants.APIVersionV1
	}

	return r.APIVersion
}

// Response represents an API response.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client performs HTTP requests against the Skytap API. Every call issues
// exactly one round trip; the underlying engine never retries.
type Client struct {
	baseURL      string
	credentials  auth.CredentialsProvider
	engine       *retryablehttp.Client
	userAgent    string
	logger       Logger
	debug        bool
	interceptors *skytap.InterceptorChain
}

// Option configures the HTTP client.
type Option func(*Client)

// WithLogger sets the logger for the client.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables debug logging of requests and responses.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent sets a custom User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithTimeout sets the timeout applied to each request.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.engine.HTTPClient.Timeout = timeout
	}
}

// WithInterceptors sets the interceptor chain run around each request.
func WithInterceptors(chain *skytap.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// NewClient creates a new HTTP client for the given base URL. A nil
// credentials provider sends unauthenticated requests.
func NewClient(baseURL string, credentials auth.CredentialsProvider, opts ...Option) *Client {
	engine := retryablehttp.NewClient()
	engine.RetryMax = 0
	engine.Logger = nil
	engine.HTTPClient.Timeout = constants.DefaultHTTPTimeout

	// One attempt per call. Responses of any status are returned to the
	// caller instead of being consumed by the retry policy.
	engine.CheckRetry = func(_ context.Context, _ *http.Response, _ error) (bool, error) {
		return false, nil
	}

	client := &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		credentials: credentials,
		engine:      engine,
		userAgent:   defaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Do executes a request and returns the response. Responses with a non-2xx
// status are returned together with an *skytap.APIError describing them.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL := c.buildURL(req)

	body, err := marshalBody(req.Body)
	if err != nil {
		return nil, err
	}

	headers, err := c.buildHeaders(ctx, req, body != nil)
	if err != nil {
		return nil, err
	}

	intercepted := &skytap.Request{
		Method:  req.Method,
		Path:    fullURL,
		Headers: headers,
		Body:    body,
	}

	if c.interceptors != nil {
		err = c.interceptors.ExecuteRequestInterceptors(ctx, intercepted)
		if err != nil {
			return nil, err
		}

		headers = intercepted.Headers
		body = intercepted.Body
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
		})
	}

	start := time.Now()

	httpResp, err := c.send(ctx, req.Method, fullURL, headers, body)
	if err != nil {
		return nil, &skytap.TransportError{Op: req.Method, URL: fullURL, Err: err}
	}
	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &skytap.TransportError{Op: req.Method, URL: fullURL, Err: fmt.Errorf("reading response body: %w", err)}
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status":   httpResp.StatusCode,
			"duration": time.Since(start).String(),
		})
	}

	return c.buildResponse(ctx, intercepted, fullURL, httpResp, respBody)
}

// send performs the single HTTP round trip.
func (c *Client) send(ctx context.Context, method, fullURL string, headers http.Header, body []byte) (*http.Response, error) {
	var rawBody interface{}
	if body != nil {
		rawBody = body
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, method, fullURL, rawBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	for key, values := range headers {
		for _, value := range values {
			httpReq.Header.Add(key, value)
		}
	}

	resp, err := c.engine.Do(httpReq)
	if err != nil {
		return nil, err
	}

	return resp, nil
}

// buildResponse converts the HTTP response, running response interceptors
// and mapping non-2xx statuses to an APIError.
func (c *Client) buildResponse(ctx context.Context, req *skytap.Request, fullURL string, httpResp *http.Response, respBody []byte) (*Response, error) {
	var apiErr error

	if httpResp.StatusCode < http.StatusOK || httpResp.StatusCode >= http.StatusMultipleChoices {
		apiErr = skytap.ParseAPIError(req.Method, fullURL, httpResp.StatusCode, httpResp.Status, respBody)
	}

	if c.interceptors != nil {
		intercepted := &skytap.Response{
			StatusCode: httpResp.StatusCode,
			Headers:    httpResp.Header,
			Body:       respBody,
			Error:      apiErr,
		}

		err := c.interceptors.ExecuteResponseInterceptors(ctx, req, intercepted)
		if err != nil {
			return nil, err
		}
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}, apiErr
}

// buildURL joins the base URL, optional v2 prefix, path, and query string.
// Trailing slashes on the path are stripped before joining.
func (c *Client) buildURL(req *Request) string {
	path := strings.Trim(req.Path, "/")

	if req.Version() == constants.APIVersionV2 {
		path = constants.V2PathPrefix + path
	}

	fullURL := c.baseURL + "/" + path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	return fullURL
}

// buildHeaders assembles the headers for a request. Explicit request
// headers override the computed defaults.
func (c *Client) buildHeaders(ctx context.Context, req *Request, hasBody bool) (http.Header, error) {
	headers := http.Header{}

	if req.Version() == constants.APIVersionV2 {
		headers.Set("Accept", constants.AcceptV2JSON)
	} else {
		headers.Set("Accept", constants.AcceptJSON)
	}

	if hasBody {
		headers.Set("Content-Type", constants.ContentTypeJSON)
	}

	headers.Set("User-Agent", c.userAgent)

	if c.credentials != nil {
		authorization, err := c.credentials.AuthorizationHeader(ctx)
		if err != nil {
			return nil, fmt.Errorf("resolving credentials: %w", err)
		}

		headers.Set("Authorization", authorization)
	}

	for key, value := range req.Headers {
		headers.Set(key, value)
	}

	return headers, nil
}

// marshalBody encodes a request body as JSON.
func marshalBody(body interface{}) ([]byte, error) {
	if body == nil {
		return nil, nil
	}

	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling request body: %w", err)
	}

	return data, nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodGet,
		Path:   path,
		Query:  query,
	})
}

// Post performs a POST request.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodPost,
		Path:   path,
		Body:   body,
	})
}

// Put performs a PUT request.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodPut,
		Path:   path,
		Body:   body,
	})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodDelete,
		Path:   path,
	})
}
