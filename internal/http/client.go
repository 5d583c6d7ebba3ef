// Package http is the transport under every resource: it builds absolute
// URLs, attaches auth headers, performs one round trip and maps failures to
// *tictail.Error values.
package http

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	nethttp "net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/tictail/tictail-go/internal/auth"
	"github.com/tictail/tictail-go/internal/constants"
	"github.com/tictail/tictail-go/pkg/tictail"
)

// HTTP methods understood by the transport.
const (
	MethodGet    = nethttp.MethodGet
	MethodPost   = nethttp.MethodPost
	MethodPut    = nethttp.MethodPut
	MethodDelete = nethttp.MethodDelete
)

// Header values sent with every request.
const (
	acceptHeader        = "application/json;charset=UTF-8"
	acceptCharsetHeader = "UTF-8"
	contentTypeHeader   = "application/json"
	requestIDHeader     = "X-Request-Id"
)

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Request describes one API call. Path is relative to the versioned base.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
}

// Response is a completed API call.
type Response struct {
	StatusCode int
	Header     nethttp.Header
	// Body is the raw response body.
	Body []byte
	// Content is the decoded JSON body, nil when the body was empty.
	// Numbers are decoded as json.Number.
	Content interface{}
}

// Client performs API calls.
type Client struct {
	baseURL       string
	apiVersion    int
	tokenManager  auth.TokenManager
	httpClient    *retryablehttp.Client
	userAgent     string
	logger        Logger
	debug         bool
	timeout       time.Duration
	skipTLSVerify bool
	interceptors  *tictail.InterceptorChain
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used in debug mode.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug logs every request and response.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithAPIVersion selects the /v{N} path prefix.
func WithAPIVersion(version int) Option {
	return func(c *Client) {
		c.apiVersion = version
	}
}

// WithTimeout bounds each call.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithSkipTLSVerify disables certificate verification.
func WithSkipTLSVerify(skip bool) Option {
	return func(c *Client) {
		c.skipTLSVerify = skip
	}
}

// WithRetryConfig enables retries of connection failures, 429 and 5xx.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// WithInterceptors runs chain around every call.
func WithInterceptors(chain *tictail.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// NewClient creates a transport for baseURL ("https://api.tictail.com").
// A nil tokenManager sends requests without an Authorization header.
func NewClient(baseURL string, tokenManager auth.TokenManager, opts ...Option) *Client {
	httpClient := retryablehttp.NewClient()
	httpClient.RetryMax = constants.DefaultRetryMax
	httpClient.RetryWaitMin = constants.DefaultRetryWaitMin
	httpClient.RetryWaitMax = constants.DefaultRetryWaitMax
	httpClient.Logger = nil
	// Hand back the last response instead of a "giving up" error so status
	// mapping sees the real body.
	httpClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		apiVersion:   constants.DefaultAPIVersion,
		tokenManager: tokenManager,
		httpClient:   httpClient,
		userAgent:    constants.LibraryName + " " + constants.Version,
		timeout:      constants.DefaultHTTPTimeout,
	}

	for _, opt := range opts {
		opt(client)
	}

	client.httpClient.HTTPClient.Timeout = client.timeout

	if client.skipTLSVerify {
		if transport, ok := client.httpClient.HTTPClient.Transport.(*nethttp.Transport); ok {
			transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} // #nosec G402 -- explicit opt-out by the caller
		}
	}

	if client.debug && client.logger != nil {
		client.httpClient.Logger = &leveledLogger{logger: client.logger}
	}

	return client
}

// AbsoluteURI turns a relative resource URI into a full URL. Leading and
// trailing slashes on uri are ignored.
func (c *Client) AbsoluteURI(uri string) string {
	return fmt.Sprintf("%s/v%d/%s", c.baseURL, c.apiVersion, strings.Trim(uri, "/"))
}

// Get issues a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: MethodGet, Path: path, Query: query})
}

// Post issues a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, query url.Values, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: MethodPost, Path: path, Query: query, Body: body})
}

// Put issues a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, query url.Values, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: MethodPut, Path: path, Query: query, Body: body})
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: MethodDelete, Path: path, Query: query})
}

// Do performs the request. On an HTTP error status both the response and a
// *tictail.Error are returned.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	httpReq, requestID, err := c.buildRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	intercepted := &tictail.Request{
		Method:   httpReq.Method,
		URL:      httpReq.URL.String(),
		Header:   httpReq.Header,
		Metadata: map[string]interface{}{"request_id": requestID},
	}

	err = c.interceptors.ExecuteRequestInterceptors(ctx, intercepted)
	if err != nil {
		return nil, err
	}

	c.logDebug("HTTP Request", map[string]interface{}{
		"method":     httpReq.Method,
		"url":        httpReq.URL.String(),
		"request_id": requestID,
	})

	start := time.Now()

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		_ = c.interceptors.ExecuteResponseInterceptors(ctx, intercepted, &tictail.Response{
			Duration: time.Since(start),
			Err:      err,
		})

		return nil, &tictail.Error{
			Kind:    tictail.ErrConnectionFailure,
			Message: err.Error(),
			Cause:   err,
		}
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &tictail.Error{
			Kind:    tictail.ErrConnectionFailure,
			Message: fmt.Sprintf("reading response body: %v", err),
			Status:  httpResp.StatusCode,
			Cause:   err,
		}
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Header:     httpResp.Header,
		Body:       body,
	}

	duration := time.Since(start)

	c.logDebug("HTTP Response", map[string]interface{}{
		"status_code": resp.StatusCode,
		"duration":    duration.String(),
		"request_id":  requestID,
	})

	interceptErr := c.interceptors.ExecuteResponseInterceptors(ctx, intercepted, &tictail.Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Duration:   duration,
	})

	if resp.StatusCode >= nethttp.StatusBadRequest {
		apiErr := newHTTPError(resp.StatusCode, body)
		if interceptErr != nil {
			return resp, errors.Join(apiErr, interceptErr)
		}

		return resp, apiErr
	}

	if interceptErr != nil {
		return resp, interceptErr
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return resp, nil
	}

	content, err := decodeJSON(body)
	if err != nil {
		return resp, &tictail.Error{
			Kind: tictail.ErrAPI,
			Message: fmt.Sprintf("The API should return JSON, but there was a problem decoding it. "+
				"The response content-type was: `%s`.", httpResp.Header.Get("Content-Type")),
			Status: resp.StatusCode,
			Raw:    string(body),
			Cause:  err,
		}
	}

	resp.Content = content

	return resp, nil
}

func (c *Client) buildRequest(ctx context.Context, req *Request) (*retryablehttp.Request, string, error) {
	var body []byte

	if req.Body != nil {
		encoded, err := json.Marshal(req.Body)
		if err != nil {
			return nil, "", fmt.Errorf("encoding request body: %w", err)
		}

		body = encoded
	}

	absURL := c.AbsoluteURI(req.Path)
	if len(req.Query) > 0 {
		absURL += "?" + req.Query.Encode()
	}

	var reqBody interface{}
	if body != nil {
		reqBody = body
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, strings.ToUpper(req.Method), absURL, reqBody)
	if err != nil {
		return nil, "", fmt.Errorf("creating request: %w", err)
	}

	requestID := uuid.NewString()

	httpReq.Header.Set("Accept", acceptHeader)
	httpReq.Header.Set("Accept-Charset", acceptCharsetHeader)
	httpReq.Header.Set("Content-Type", contentTypeHeader)
	httpReq.Header.Set("User-Agent", c.userAgent)
	httpReq.Header.Set(requestIDHeader, requestID)

	if c.tokenManager != nil {
		token, err := c.tokenManager.GetToken(ctx)
		if err != nil {
			return nil, "", fmt.Errorf("getting access token: %w", err)
		}

		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	return httpReq, requestID, nil
}

func (c *Client) logDebug(msg string, fields map[string]interface{}) {
	if c.debug && c.logger != nil {
		c.logger.Debug(msg, fields)
	}
}

// decodeJSON decodes exactly one JSON value, keeping numbers as json.Number.
func decodeJSON(body []byte) (interface{}, error) {
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()

	var content interface{}

	err := decoder.Decode(&content)
	if err != nil {
		return nil, fmt.Errorf("decoding JSON: %w", err)
	}

	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return nil, ErrTrailingData
	}

	return content, nil
}

// ErrTrailingData is returned when a body holds more than one JSON value.
var ErrTrailingData = errors.New("unexpected data after JSON value")

// newHTTPError maps an error status and body to a *tictail.Error. The API
// sends {status, message, params, support_email}; when the body is not a
// JSON object a message is synthesized and JSON stays nil.
func newHTTPError(status int, body []byte) *tictail.Error {
	apiErr := &tictail.Error{
		Kind:   tictail.KindForStatus(status),
		Status: status,
		Raw:    string(body),
	}

	content, err := decodeJSON(body)

	payload, isObject := content.(map[string]interface{})
	if err != nil || !isObject {
		apiErr.SupportEmail = constants.DefaultSupportEmail

		if status == constants.HTTPStatusBadGateway {
			apiErr.Message = fmt.Sprintf("It seems that the API is unreachable. "+
				"Please contact %s if the problem persists.", apiErr.SupportEmail)
		} else {
			apiErr.Message = fmt.Sprintf("An unexpected error occurred. "+
				"Please contact %s if the problem persists.", apiErr.SupportEmail)
		}

		return apiErr
	}

	apiErr.JSON = payload
	apiErr.Message, _ = payload["message"].(string)
	apiErr.SupportEmail, _ = payload["support_email"].(string)

	if apiErr.Message == "" {
		apiErr.Message = nethttp.StatusText(status)
	}

	return apiErr
}

// leveledLogger routes go-retryablehttp's logging into Logger.
type leveledLogger struct {
	logger Logger
}

func (l *leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, toFields(keysAndValues))
}

func (l *leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info(msg, toFields(keysAndValues))
}

func (l *leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, toFields(keysAndValues))
}

func (l *leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn(msg, toFields(keysAndValues))
}

func toFields(keysAndValues []interface{}) map[string]interface{} {
	fields := make(map[string]interface{}, len(keysAndValues)/2)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		fields[fmt.Sprint(keysAndValues[i])] = keysAndValues[i+1]
	}

	return fields
}
