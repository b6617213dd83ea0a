package webmate

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
)

// DefaultBaseURL is the base URL of the public webmate API.
const DefaultBaseURL = "https://app.webmate.io/api/v1"

// Transport is the capability the subsystem facades are built on. [Client]
// is the production implementation.
type Transport interface {
	SendGET(ctx context.Context, tmpl UriTemplate, pathParams PathParams) ([]byte, error)
	SendPOST(ctx context.Context, tmpl UriTemplate, pathParams PathParams, body any) ([]byte, error)
	Do(ctx context.Context, req Request) ([]byte, error)
	Logger() RequestLogger
}

// Request describes a single API call. Template and Method are required.
type Request struct {
	Method     string
	Template   UriTemplate
	PathParams PathParams
	Query      url.Values

	// Body is serialized as JSON unless it is a []byte, which is sent as is.
	Body any

	// ContentType overrides the default application/json content type.
	ContentType string
}

// Client sends requests to the webmate API. Create it with [New] and call
// [Client.Connect] before use. A connected Client is safe for concurrent use.
type Client struct {
	baseURL   string
	options   *Options
	client    *resty.Client
	connectMu sync.Mutex
	connected bool
}

var _ Transport = (*Client)(nil)

// New creates a Client for baseURL. Options are applied immediately but
// validated by [Client.Connect].
func New(baseURL string, opts ...Option) *Client {
	options := newClientOptions()

	for _, o := range opts {
		o(options)
	}

	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		options: options,
	}
}

// Connect validates the configuration and prepares the HTTP client. If a
// health check path is configured it is probed once. Calling Connect again
// after a successful call is a no-op.
func (c *Client) Connect(ctx context.Context) error {
	if c == nil {
		return errors.New("webmate client is nil")
	}

	c.connectMu.Lock()
	defer c.connectMu.Unlock()

	if c.connected {
		return nil
	}

	if c.baseURL == "" {
		return errors.New("base URL must be set")
	}

	if err := c.options.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	client := resty.New().
		SetBaseURL(c.baseURL).
		SetRetryCount(c.options.retryCount).
		SetRetryWaitTime(c.options.retryWaitTime).
		SetRetryMaxWaitTime(c.options.retryMaxWaitTime).
		AddRetryCondition(c.options.retryPolicy).
		SetLogger(c.options.requestLogger).
		SetTimeout(c.options.timeout).
		SetHeaders(c.options.requestHeaders)

	if c.options.authInfo.Username != "" {
		client.SetHeader(UserHeader, c.options.authInfo.Username)
		client.SetHeader(APITokenHeader, c.options.authInfo.APIToken)
	}

	if c.options.healthCheckPath != "" {
		if err := ping(ctx, client, c.options.healthCheckPath); err != nil {
			return fmt.Errorf("failed to ping webmate API: %w", err)
		}
	}

	c.client = client
	c.connected = true

	return nil
}

// Close releases idle connections held by the underlying HTTP client.
func (c *Client) Close() {
	if c == nil {
		return
	}

	c.connectMu.Lock()
	defer c.connectMu.Unlock()

	if c.client != nil {
		c.client.GetClient().CloseIdleConnections()
	}
}

// Logger returns the configured request logger.
func (c *Client) Logger() RequestLogger {
	if c == nil || c.options == nil {
		return &NoopLogger{}
	}
	return c.options.requestLogger
}

// SendGET sends a GET request for tmpl and returns the response body.
func (c *Client) SendGET(ctx context.Context, tmpl UriTemplate, pathParams PathParams) ([]byte, error) {
	return c.Do(ctx, Request{
		Method:     http.MethodGet,
		Template:   tmpl,
		PathParams: pathParams,
	})
}

// SendPOST sends body as JSON to tmpl and returns the response body.
func (c *Client) SendPOST(ctx context.Context, tmpl UriTemplate, pathParams PathParams, body any) ([]byte, error) {
	return c.Do(ctx, Request{
		Method:     http.MethodPost,
		Template:   tmpl,
		PathParams: pathParams,
		Body:       body,
	})
}

// Do sends req and returns the body of a 2xx response. The request is sent
// once; only the transport retry policy may repeat it.
func (c *Client) Do(ctx context.Context, req Request) ([]byte, error) {
	if c == nil {
		return nil, &Error{Kind: ErrInvalidRequest, Message: "webmate client is nil"}
	}

	c.connectMu.Lock()
	client := c.client
	c.connectMu.Unlock()

	if client == nil {
		return nil, &Error{Kind: ErrInvalidRequest, Message: "client not connected - call Connect() first"}
	}

	if req.Method == "" {
		return nil, &Error{Kind: ErrInvalidRequest, Message: "request method must be set"}
	}

	path, err := req.Template.Expand(req.PathParams)
	if err != nil {
		return nil, &Error{Kind: ErrInvalidRequest, Method: req.Method, Path: req.Template.String(), Err: err}
	}

	r := client.R().SetContext(ctx)

	if len(req.Query) > 0 {
		r.SetQueryParamsFromValues(req.Query)
	}

	if req.ContentType != "" {
		r.SetHeader("Content-Type", req.ContentType)
	}

	if req.Body != nil {
		r.SetBody(req.Body)
	}

	c.options.requestLogger.Debugf("webmate: %s %s", req.Method, path)

	resp, err := r.Execute(req.Method, path)
	if err != nil {
		return nil, &Error{Kind: ErrNoResponse, Method: req.Method, Path: path, Err: err}
	}

	if resp.IsError() {
		return nil, &Error{
			Kind:       ErrUnexpectedStatus,
			Method:     req.Method,
			Path:       path,
			StatusCode: resp.StatusCode(),
			Message:    errorMessageFromBody(resp.Body()),
		}
	}

	return resp.Body(), nil
}

func ping(ctx context.Context, client *resty.Client, path string) error {
	resp, err := client.R().SetContext(ctx).Get(path)
	if err != nil {
		return &Error{Kind: ErrNoResponse, Method: http.MethodGet, Path: path, Err: err}
	}

	if resp.IsError() {
		return &Error{
			Kind:       ErrUnexpectedStatus,
			Method:     http.MethodGet,
			Path:       path,
			StatusCode: resp.StatusCode(),
			Message:    errorMessageFromBody(resp.Body()),
		}
	}

	return nil
}
