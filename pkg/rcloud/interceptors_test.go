package rcloud_test

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/rediscloud-community/rediscloud-go/pkg/rcloud"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterceptorChain_RequestInterceptors(t *testing.T) {
	chain := rcloud.NewInterceptorChain()
	ctx := context.Background()

	var executionOrder []string

	chain.AddRequestInterceptor(func(ctx context.Context, req *rcloud.Request) error {
		executionOrder = append(executionOrder, "first")
		return nil
	})

	chain.AddRequestInterceptor(func(ctx context.Context, req *rcloud.Request) error {
		executionOrder = append(executionOrder, "second")
		return nil
	})

	req := &rcloud.Request{
		Method: "GET",
		Path:   "/subscriptions",
	}

	err := chain.ExecuteRequestInterceptors(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, []string{"first", "second"}, executionOrder)
}

func TestInterceptorChain_ResponseInterceptors(t *testing.T) {
	chain := rcloud.NewInterceptorChain()
	ctx := context.Background()

	var executionOrder []string

	chain.AddResponseInterceptor(func(ctx context.Context, req *rcloud.Request, resp *rcloud.Response) error {
		executionOrder = append(executionOrder, "first")
		return nil
	})

	chain.AddResponseInterceptor(func(ctx context.Context, req *rcloud.Request, resp *rcloud.Response) error {
		executionOrder = append(executionOrder, "second")
		return nil
	})

	req := &rcloud.Request{
		Method: "GET",
		Path:   "/subscriptions",
	}
	resp := &rcloud.Response{
		StatusCode: 200,
	}

	err := chain.ExecuteResponseInterceptors(ctx, req, resp)
	require.NoError(t, err)

	assert.Equal(t, []string{"first", "second"}, executionOrder)
}

func TestInterceptorChain_RequestInterceptorError(t *testing.T) {
	chain := rcloud.NewInterceptorChain()

	chain.AddRequestInterceptor(func(ctx context.Context, req *rcloud.Request) error {
		return assert.AnError
	})

	var reached bool

	chain.AddRequestInterceptor(func(ctx context.Context, req *rcloud.Request) error {
		reached = true
		return nil
	})

	err := chain.ExecuteRequestInterceptors(context.Background(), &rcloud.Request{})
	require.Error(t, err)
	require.ErrorIs(t, err, assert.AnError)
	assert.False(t, reached)
}

func TestAuthenticationInterceptor(t *testing.T) {
	interceptor := rcloud.AuthenticationInterceptor("test-key", "test-secret")

	req := &rcloud.Request{
		Method: "GET",
		Path:   "/",
	}

	err := interceptor(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "test-key", req.Headers.Get("x-api-key"))
	assert.Equal(t, "test-secret", req.Headers.Get("x-api-secret-key"))
}

func TestHeaderInterceptor(t *testing.T) {
	headers := map[string]string{
		"X-Custom-Header": "custom-value",
		"X-Request-ID":    "123456",
	}

	interceptor := rcloud.HeaderInterceptor(headers)

	req := &rcloud.Request{
		Method:  "GET",
		Path:    "/subscriptions",
		Headers: make(http.Header),
	}

	err := interceptor(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "custom-value", req.Headers.Get("X-Custom-Header"))
	assert.Equal(t, "123456", req.Headers.Get("X-Request-ID"))
}

func TestRateLimitInterceptor(t *testing.T) {
	interceptor := rcloud.RateLimitInterceptor(100)

	req := &rcloud.Request{Method: "GET", Path: "/subscriptions"}

	// The bucket starts full, so the first calls pass immediately.
	for i := 0; i < 10; i++ {
		err := interceptor(context.Background(), req)
		require.NoError(t, err)
	}

	t.Run("honors context cancellation", func(t *testing.T) {
		drained := rcloud.RateLimitInterceptor(1)
		require.NoError(t, drained(context.Background(), req))

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		err := drained(ctx, req)
		require.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestMetricsInterceptors(t *testing.T) {
	collector := rcloud.NewMetricsCollector()

	var changed string

	collector.SetOnChange(func(endpoint string, metrics *rcloud.Metrics) {
		changed = endpoint
	})

	reqInterceptor := rcloud.MetricsRequestInterceptor(collector)
	respInterceptor := rcloud.MetricsResponseInterceptor(collector)

	ctx := context.Background()
	req := &rcloud.Request{Method: "GET", Path: "/subscriptions"}

	require.NoError(t, reqInterceptor(ctx, req))
	require.NoError(t, respInterceptor(ctx, req, &rcloud.Response{StatusCode: 200}))
	require.NoError(t, reqInterceptor(ctx, req))
	require.NoError(t, respInterceptor(ctx, req, &rcloud.Response{StatusCode: 500}))

	metrics := collector.GetMetrics("GET /subscriptions")
	require.NotNil(t, metrics)
	assert.Equal(t, int64(2), metrics.TotalRequests)
	assert.Equal(t, int64(1), metrics.TotalErrors)
	assert.False(t, metrics.LastRequestTime.IsZero())
	assert.Equal(t, "GET /subscriptions", changed)

	assert.Nil(t, collector.GetMetrics("GET /unknown"))
}

func TestMetricsCollector_Concurrent(t *testing.T) {
	collector := rcloud.NewMetricsCollector()

	reqInterceptor := rcloud.MetricsRequestInterceptor(collector)
	respInterceptor := rcloud.MetricsResponseInterceptor(collector)

	ctx := context.Background()

	var wg sync.WaitGroup

	for i := 0; i < 10; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for j := 0; j < 20; j++ {
				req := &rcloud.Request{Method: "GET", Path: "/subscriptions"}
				require.NoError(t, reqInterceptor(ctx, req))
				require.NoError(t, respInterceptor(ctx, req, &rcloud.Response{StatusCode: 200}))
			}
		}()
	}

	wg.Wait()

	metrics := collector.GetMetrics("GET /subscriptions")
	require.NotNil(t, metrics)
	assert.Equal(t, int64(200), metrics.TotalRequests)
	assert.Equal(t, int64(0), metrics.TotalErrors)
}

func TestCircuitBreaker(t *testing.T) {
	breaker := rcloud.NewCircuitBreaker(&rcloud.CircuitBreakerConfig{
		Threshold:        2,
		Timeout:          50 * time.Millisecond,
		SuccessThreshold: 1,
	})

	reqInterceptor := rcloud.CircuitBreakerRequestInterceptor(breaker)
	respInterceptor := rcloud.CircuitBreakerResponseInterceptor(breaker)

	ctx := context.Background()
	req := &rcloud.Request{Method: "GET", Path: "/subscriptions"}

	// Two failures open the circuit.
	require.NoError(t, respInterceptor(ctx, req, &rcloud.Response{StatusCode: 500}))
	require.NoError(t, respInterceptor(ctx, req, &rcloud.Response{StatusCode: 503}))

	err := reqInterceptor(ctx, req)
	require.ErrorIs(t, err, rcloud.ErrCircuitBreakerOpen)

	// After the timeout the breaker half-opens, and one success closes it.
	time.Sleep(60 * time.Millisecond)

	require.NoError(t, reqInterceptor(ctx, req))
	require.NoError(t, respInterceptor(ctx, req, &rcloud.Response{StatusCode: 200}))
	require.NoError(t, reqInterceptor(ctx, req))
}

func TestLoggingInterceptors(t *testing.T) {
	logger := &capturingLogger{}

	reqInterceptor := rcloud.LoggingInterceptor(logger)
	respInterceptor := rcloud.LoggingResponseInterceptor(logger)

	ctx := context.Background()
	req := &rcloud.Request{Method: "GET", Path: "/subscriptions"}

	require.NoError(t, reqInterceptor(ctx, req))
	require.NoError(t, respInterceptor(ctx, req, &rcloud.Response{StatusCode: 200}))
	require.NoError(t, respInterceptor(ctx, req, &rcloud.Response{StatusCode: 500, Error: assert.AnError}))

	assert.Equal(t, []string{"debug", "debug", "error"}, logger.levels)
}

type capturingLogger struct {
	levels []string
}

func (l *capturingLogger) Debug(msg string, fields map[string]interface{}) {
	l.levels = append(l.levels, "debug")
}

func (l *capturingLogger) Info(msg string, fields map[string]interface{}) {
	l.levels = append(l.levels, "info")
}

func (l *capturingLogger) Warn(msg string, fields map[string]interface{}) {
	l.levels = append(l.levels, "warn")
}

func (l *capturingLogger) Error(msg string, fields map[string]interface{}) {
	l.levels = append(l.levels, "error")
}
