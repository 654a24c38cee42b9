// Package http executes PayKit API calls. It builds authenticated requests,
// applies the per-call deadline, sends them over go-retryablehttp pinned to
// a single attempt, and maps every outcome to a paykit.Result.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/fivetwenty-io/paykit/internal/constants"
	"github.com/fivetwenty-io/paykit/pkg/paykit"
)

// Logger is the structured logger used by the HTTP layer.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Request describes one call. Body is JSON-encoded when non-nil and omitted
// otherwise.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
}

// Requester is the capability resource clients are given. Every method
// returns a Result and never a Go error.
type Requester interface {
	Get(ctx context.Context, path string, query url.Values) paykit.Result[json.RawMessage]
	Post(ctx context.Context, path string, body interface{}) paykit.Result[json.RawMessage]
	Put(ctx context.Context, path string, body interface{}) paykit.Result[json.RawMessage]
	Delete(ctx context.Context, path string) paykit.Result[json.RawMessage]
}

// Client executes requests against one configured API origin. It holds no
// per-call state and is safe for concurrent use.
type Client struct {
	baseURL      string
	apiKey       string
	timeout      time.Duration
	casing       paykit.CasingPolicy
	userAgent    string
	logger       Logger
	debug        bool
	transport    *http.Client
	interceptors *paykit.InterceptorChain
	httpClient   *retryablehttp.Client
	mapper       *Mapper
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
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

// WithHTTPClient replaces the underlying transport.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.transport = httpClient
	}
}

// WithInterceptors runs chain around every call.
func WithInterceptors(chain *paykit.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// NewClient creates a client for config.
func NewClient(config *paykit.Configuration, opts ...Option) *Client {
	client := &Client{
		baseURL:   config.BaseURL(),
		apiKey:    config.APIKey(),
		timeout:   config.Timeout(),
		casing:    config.Casing(),
		userAgent: constants.DefaultUserAgent,
		mapper:    NewMapper(config.Casing()),
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.transport == nil {
		client.transport = cleanhttp.DefaultPooledClient()
	}

	retryClient := retryablehttp.NewClient()
	retryClient.HTTPClient = client.transport
	retryClient.RetryMax = 0
	retryClient.CheckRetry = neverRetry
	retryClient.Logger = nil

	if client.debug && client.logger != nil {
		retryClient.Logger = &leveledLogger{logger: client.logger}
	}

	client.httpClient = retryClient

	return client
}

// neverRetry keeps every call to a single attempt and hands non-2xx
// responses back untouched.
func neverRetry(ctx context.Context, resp *http.Response, err error) (bool, error) {
	return false, nil
}

// Execute performs req and maps the outcome to a Result.
func (c *Client) Execute(ctx context.Context, req *Request) paykit.Result[json.RawMessage] {
	start := time.Now()

	intercepted := &paykit.Request{
		Method:   req.Method,
		Path:     req.Path,
		Headers:  make(http.Header),
		Metadata: make(map[string]interface{}),
	}

	result := c.execute(ctx, req, intercepted)

	c.afterResponse(ctx, intercepted, result, time.Since(start))

	return result
}

func (c *Client) execute(ctx context.Context, req *Request, intercepted *paykit.Request) paykit.Result[json.RawMessage] {
	body, err := c.encodeBody(req.Body)
	if err != nil {
		return invalidRequest(err)
	}

	intercepted.Body = body

	for key, value := range req.Headers {
		intercepted.Headers.Set(key, value)
	}

	// The deadline covers request interceptors too, so a rate limiter
	// cannot hold a call past it.
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if c.interceptors != nil {
		err = c.interceptors.ExecuteRequestInterceptors(ctx, intercepted)
		if err != nil {
			return c.interceptorFailure(ctx, err)
		}
	}

	httpReq, err := c.newRequest(ctx, intercepted, req.Query)
	if err != nil {
		return invalidRequest(err)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": httpReq.Method,
			"url":    httpReq.URL.String(),
		})
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return c.transportFailure(ctx, err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	result := c.mapper.FromResponse(resp.StatusCode, resp.Body)
	if result.Error != nil && result.Error.Code() == paykit.CodeNetworkError && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return c.timeoutFailure()
	}

	return result
}

func (c *Client) encodeBody(body interface{}) ([]byte, error) {
	if body == nil {
		return nil, nil
	}

	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encoding request body: %w", err)
	}

	if c.casing != paykit.CasingNormalize {
		return encoded, nil
	}

	var generic any

	err = json.Unmarshal(encoded, &generic)
	if err != nil {
		return nil, fmt.Errorf("normalizing request body: %w", err)
	}

	// A typed nil pointer encodes as null; treat it like no body.
	if generic == nil {
		return nil, nil
	}

	encoded, err = json.Marshal(paykit.ToCamelCase(generic))
	if err != nil {
		return nil, fmt.Errorf("encoding request body: %w", err)
	}

	return encoded, nil
}

func (c *Client) newRequest(ctx context.Context, intercepted *paykit.Request, query url.Values) (*retryablehttp.Request, error) {
	fullURL := c.baseURL + "/" + strings.TrimPrefix(intercepted.Path, "/")
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	// Passing a nil []byte would still attach an empty body reader.
	var rawBody interface{}
	if len(intercepted.Body) > 0 && string(intercepted.Body) != "null" {
		rawBody = intercepted.Body
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, intercepted.Method, fullURL, rawBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	for key, values := range intercepted.Headers {
		for _, value := range values {
			httpReq.Header.Set(key, value)
		}
	}

	return httpReq, nil
}

func (c *Client) transportFailure(ctx context.Context, err error) paykit.Result[json.RawMessage] {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		return c.timeoutFailure()
	}

	if errors.Is(err, context.Canceled) {
		return paykit.Failure[json.RawMessage](paykit.NewClientError("request canceled", paykit.CodeNetworkError, 0))
	}

	message := err.Error()

	urlErr := &url.Error{}
	if errors.As(err, &urlErr) {
		message = urlErr.Err.Error()
	}

	return paykit.Failure[json.RawMessage](paykit.NewClientError(
		"Network request failed: "+message,
		paykit.CodeNetworkError,
		0,
	))
}

func (c *Client) interceptorFailure(ctx context.Context, err error) paykit.Result[json.RawMessage] {
	switch {
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded):
		return c.timeoutFailure()
	case errors.Is(err, context.Canceled):
		return paykit.Failure[json.RawMessage](paykit.NewClientError("request canceled", paykit.CodeNetworkError, 0))
	default:
		return invalidRequest(err)
	}
}

func (c *Client) timeoutFailure() paykit.Result[json.RawMessage] {
	return paykit.Failure[json.RawMessage](paykit.NewClientError(
		fmt.Sprintf("Request timed out after %dms", c.timeout.Milliseconds()),
		paykit.CodeTimeoutError,
		0,
	))
}

func (c *Client) afterResponse(ctx context.Context, req *paykit.Request, result paykit.Result[json.RawMessage], elapsed time.Duration) {
	if c.debug && c.logger != nil {
		fields := map[string]interface{}{
			"method":      req.Method,
			"path":        req.Path,
			"status_code": result.StatusCode,
			"duration":    elapsed.String(),
		}

		if result.Error != nil {
			fields["code"] = string(result.Error.Code())
		}

		c.logger.Debug("HTTP Response", fields)
	}

	if c.interceptors == nil {
		return
	}

	resp := &paykit.Response{
		StatusCode: result.StatusCode,
		Error:      result.Error,
		Duration:   elapsed,
	}

	err := c.interceptors.ExecuteResponseInterceptors(ctx, req, resp)
	if err != nil && c.logger != nil {
		c.logger.Warn("response interceptor failed", map[string]interface{}{
			"method": req.Method,
			"path":   req.Path,
			"error":  err.Error(),
		})
	}
}

func invalidRequest(err error) paykit.Result[json.RawMessage] {
	return paykit.Failure[json.RawMessage](paykit.NewClientError(err.Error(), paykit.CodeInvalidRequest, 0))
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) paykit.Result[json.RawMessage] {
	return c.Execute(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post performs a POST request.
func (c *Client) Post(ctx context.Context, path string, body interface{}) paykit.Result[json.RawMessage] {
	return c.Execute(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put performs a PUT request.
func (c *Client) Put(ctx context.Context, path string, body interface{}) paykit.Result[json.RawMessage] {
	return c.Execute(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) paykit.Result[json.RawMessage] {
	return c.Execute(ctx, &Request{Method: http.MethodDelete, Path: path})
}

// leveledLogger routes go-retryablehttp's log lines to Logger.
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
