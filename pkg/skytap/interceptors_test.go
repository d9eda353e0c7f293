package skytap_test

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/skytap-client/pkg/skytap"
)

func TestInterceptorChain_RequestInterceptors(t *testing.T) {
	chain := skytap.NewInterceptorChain()
	ctx := context.Background()

	var executionOrder []string

	// Add multiple interceptors
	chain.AddRequestInterceptor(func(ctx context.Context, req *skytap.Request) error {
		executionOrder = append(executionOrder, "first")
		return nil
	})

	chain.AddRequestInterceptor(func(ctx context.Context, req *skytap.Request) error {
		executionOrder = append(executionOrder, "second")
		return nil
	})

	req := &skytap.Request{
		Method: "GET",
		Path:   "/configurations",
	}

	err := chain.ExecuteRequestInterceptors(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, []string{"first", "second"}, executionOrder)
}

func TestInterceptorChain_ResponseInterceptors(t *testing.T) {
	chain := skytap.NewInterceptorChain()
	ctx := context.Background()

	var executionOrder []string

	chain.AddResponseInterceptor(func(ctx context.Context, req *skytap.Request, resp *skytap.Response) error {
		executionOrder = append(executionOrder, "first")
		return nil
	})

	chain.AddResponseInterceptor(func(ctx context.Context, req *skytap.Request, resp *skytap.Response) error {
		executionOrder = append(executionOrder, "second")
		return nil
	})

	req := &skytap.Request{
		Method: "GET",
		Path:   "/configurations",
	}
	resp := &skytap.Response{
		StatusCode: 200,
	}

	err := chain.ExecuteResponseInterceptors(ctx, req, resp)
	require.NoError(t, err)

	assert.Equal(t, []string{"first", "second"}, executionOrder)
}

func TestInterceptorChain_RequestErrorStopsChain(t *testing.T) {
	chain := skytap.NewInterceptorChain()
	ctx := context.Background()

	interceptorErr := errors.New("rejected")
	secondRan := false

	chain.AddRequestInterceptor(func(ctx context.Context, req *skytap.Request) error {
		return interceptorErr
	})

	chain.AddRequestInterceptor(func(ctx context.Context, req *skytap.Request) error {
		secondRan = true
		return nil
	})

	err := chain.ExecuteRequestInterceptors(ctx, &skytap.Request{Method: "GET", Path: "/users"})
	require.Error(t, err)
	require.ErrorIs(t, err, interceptorErr)
	assert.False(t, secondRan)
}

func TestHeaderInterceptor(t *testing.T) {
	headers := map[string]string{
		"X-Custom-Header": "custom-value",
		"X-Request-ID":    "123456",
	}

	interceptor := skytap.HeaderInterceptor(headers)
	ctx := context.Background()
	req := &skytap.Request{
		Method: "GET",
		Path:   "/configurations",
	}

	err := interceptor(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, "custom-value", req.Headers.Get("X-Custom-Header"))
	assert.Equal(t, "123456", req.Headers.Get("X-Request-ID"))
}

func TestBasicAuthInterceptor(t *testing.T) {
	interceptor := skytap.BasicAuthInterceptor("jane.doe", "api-token")
	ctx := context.Background()
	req := &skytap.Request{
		Method: "GET",
		Path:   "/configurations",
	}

	err := interceptor(ctx, req)
	require.NoError(t, err)

	expected := "Basic " + base64.StdEncoding.EncodeToString([]byte("jane.doe:api-token"))
	assert.Equal(t, expected, req.Headers.Get("Authorization"))
}

func TestBasicAuthInterceptor_PreservesHeaders(t *testing.T) {
	interceptor := skytap.BasicAuthInterceptor("jane.doe", "api-token")
	ctx := context.Background()

	req := &skytap.Request{
		Method:  "GET",
		Path:    "/configurations",
		Headers: http.Header{"Accept": []string{"application/json"}},
	}

	err := interceptor(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, "application/json", req.Headers.Get("Accept"))
	assert.NotEmpty(t, req.Headers.Get("Authorization"))
}

// capturingLogger records log calls for assertions.
type capturingLogger struct {
	debugCalls []string
	errorCalls []string
}

func (l *capturingLogger) Debug(msg string, fields map[string]interface{}) {
	l.debugCalls = append(l.debugCalls, msg)
}

func (l *capturingLogger) Info(msg string, fields map[string]interface{})  {}
func (l *capturingLogger) Warn(msg string, fields map[string]interface{}) {}

func (l *capturingLogger) Error(msg string, fields map[string]interface{}) {
	l.errorCalls = append(l.errorCalls, msg)
}

func TestLoggingInterceptors(t *testing.T) {
	logger := &capturingLogger{}
	ctx := context.Background()

	req := &skytap.Request{Method: "GET", Path: "/configurations"}

	err := skytap.LoggingInterceptor(logger)(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, []string{"API Request"}, logger.debugCalls)

	// Successful responses log at debug level
	err = skytap.LoggingResponseInterceptor(logger)(ctx, req, &skytap.Response{StatusCode: 200})
	require.NoError(t, err)
	assert.Equal(t, []string{"API Request", "API Response"}, logger.debugCalls)
	assert.Empty(t, logger.errorCalls)

	// Failed responses log at error level
	err = skytap.LoggingResponseInterceptor(logger)(ctx, req, &skytap.Response{
		StatusCode: 500,
		Error:      errors.New("boom"),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"API Response Error"}, logger.errorCalls)
}
