package tictail

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"
)

// Request is an outgoing API call as seen by interceptors. Changes to
// Header are sent; changes to Method and URL are not.
type Request struct {
	Method   string
	URL      string
	Header   http.Header
	Metadata map[string]interface{}
}

// Response is a finished API call as seen by interceptors. Err is set when
// no response arrived.
type Response struct {
	StatusCode int
	Header     http.Header
	Duration   time.Duration
	Err        error
}

// RequestInterceptor is called before a request is sent. An error aborts
// the call.
type RequestInterceptor func(ctx context.Context, req *Request) error

// ResponseInterceptor is called after a call finishes, successful or not.
type ResponseInterceptor func(ctx context.Context, req *Request, resp *Response) error

// InterceptorChain runs interceptors in the order they were added. A nil
// chain runs nothing.
type InterceptorChain struct {
	mu                   sync.RWMutex
	requestInterceptors  []RequestInterceptor
	responseInterceptors []ResponseInterceptor
}

// NewInterceptorChain creates an empty chain.
func NewInterceptorChain() *InterceptorChain {
	return &InterceptorChain{}
}

// AddRequestInterceptor appends a request interceptor.
func (c *InterceptorChain) AddRequestInterceptor(interceptor RequestInterceptor) *InterceptorChain {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.requestInterceptors = append(c.requestInterceptors, interceptor)

	return c
}

// AddResponseInterceptor appends a response interceptor.
func (c *InterceptorChain) AddResponseInterceptor(interceptor ResponseInterceptor) *InterceptorChain {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.responseInterceptors = append(c.responseInterceptors, interceptor)

	return c
}

// ExecuteRequestInterceptors runs the request interceptors, stopping at the
// first error.
func (c *InterceptorChain) ExecuteRequestInterceptors(ctx context.Context, req *Request) error {
	if c == nil {
		return nil
	}

	c.mu.RLock()
	interceptors := c.requestInterceptors
	c.mu.RUnlock()

	for _, interceptor := range interceptors {
		err := interceptor(ctx, req)
		if err != nil {
			return fmt.Errorf("request interceptor failed: %w", err)
		}
	}

	return nil
}

// ExecuteResponseInterceptors runs the response interceptors, stopping at
// the first error.
func (c *InterceptorChain) ExecuteResponseInterceptors(ctx context.Context, req *Request, resp *Response) error {
	if c == nil {
		return nil
	}

	c.mu.RLock()
	interceptors := c.responseInterceptors
	c.mu.RUnlock()

	for _, interceptor := range interceptors {
		err := interceptor(ctx, req, resp)
		if err != nil {
			return fmt.Errorf("response interceptor failed: %w", err)
		}
	}

	return nil
}

// HeaderInterceptor sets fixed headers on every request.
func HeaderInterceptor(headers map[string]string) RequestInterceptor {
	return func(ctx context.Context, req *Request) error {
		if req.Header == nil {
			req.Header = make(http.Header)
		}

		for key, value := range headers {
			req.Header.Set(key, value)
		}

		return nil
	}
}

// LoggingResponseInterceptor logs every finished call at debug level and
// failures at error level.
func LoggingResponseInterceptor(logger Logger) ResponseInterceptor {
	return func(ctx context.Context, req *Request, resp *Response) error {
		fields := map[string]interface{}{
			"method":      req.Method,
			"url":         req.URL,
			"status_code": resp.StatusCode,
			"duration":    resp.Duration.String(),
		}

		if resp.Err != nil || resp.StatusCode >= http.StatusBadRequest {
			logger.Error("API Response Error", fields)
		} else {
			logger.Debug("API Response", fields)
		}

		return nil
	}
}

// RateLimitInterceptor spaces requests so that no more than
// requestsPerSecond start in any second. Waiting honours ctx.
func RateLimitInterceptor(requestsPerSecond int) RequestInterceptor {
	if requestsPerSecond <= 0 {
		return func(ctx context.Context, req *Request) error { return nil }
	}

	interval := time.Second / time.Duration(requestsPerSecond)

	var (
		mu   sync.Mutex
		next time.Time
	)

	return func(ctx context.Context, req *Request) error {
		mu.Lock()

		now := time.Now()
		if next.Before(now) {
			next = now
		}

		wait := next.Sub(now)
		next = next.Add(interval)

		mu.Unlock()

		if wait <= 0 {
			return nil
		}

		timer := time.NewTimer(wait)
		defer timer.Stop()

		select {
		case <-timer.C:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Metrics are call statistics for one endpoint.
type Metrics struct {
	TotalRequests   int64
	TotalErrors     int64
	TotalLatency    time.Duration
	AverageLatency  time.Duration
	LastRequestTime time.Time
}

// MetricsCollector aggregates Metrics per "METHOD /path".
type MetricsCollector struct {
	mu      sync.Mutex
	metrics map[string]*Metrics
}

// NewMetricsCollector creates an empty collector.
func NewMetricsCollector() *MetricsCollector {
	return &MetricsCollector{metrics: make(map[string]*Metrics)}
}

// GetMetrics returns a copy of the metrics for endpoint.
func (m *MetricsCollector) GetMetrics(endpoint string) (Metrics, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	metrics, ok := m.metrics[endpoint]
	if !ok {
		return Metrics{}, false
	}

	return *metrics, true
}

// Endpoints lists every endpoint seen so far.
func (m *MetricsCollector) Endpoints() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	endpoints := make([]string, 0, len(m.metrics))
	for endpoint := range m.metrics {
		endpoints = append(endpoints, endpoint)
	}

	return endpoints
}

func (m *MetricsCollector) record(endpoint string, resp *Response) {
	m.mu.Lock()
	defer m.mu.Unlock()

	metrics, ok := m.metrics[endpoint]
	if !ok {
		metrics = &Metrics{}
		m.metrics[endpoint] = metrics
	}

	metrics.TotalRequests++
	metrics.LastRequestTime = time.Now()
	metrics.TotalLatency += resp.Duration
	metrics.AverageLatency = metrics.TotalLatency / time.Duration(metrics.TotalRequests)

	if resp.Err != nil || resp.StatusCode >= http.StatusBadRequest {
		metrics.TotalErrors++
	}
}

// MetricsResponseInterceptor records every finished call in collector.
func MetricsResponseInterceptor(collector *MetricsCollector) ResponseInterceptor {
	return func(ctx context.Context, req *Request, resp *Response) error {
		path := req.URL
		if parsed, err := url.Parse(req.URL); err == nil {
			path = parsed.Path
		}

		collector.record(req.Method+" "+path, resp)

		return nil
	}
}
