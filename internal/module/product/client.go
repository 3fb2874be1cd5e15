package product

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/simp-lee/shopadmin/internal/domain"
)

const productsPath = "/products"

// StatusError reports a non-2xx response from the shop backend.
type StatusError struct {
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d", productsPath, e.StatusCode)
}

// Option configures a Client.
type Option func(*resty.Client)

// WithTimeout bounds each request. Without it only the caller's context
// limits a request.
func WithTimeout(d time.Duration) Option {
	return func(c *resty.Client) {
		c.SetTimeout(d)
	}
}

// WithHeader adds a header to every request.
func WithHeader(key, value string) Option {
	return func(c *resty.Client) {
		c.SetHeader(key, value)
	}
}

// Client talks to the shop backend's REST API.
type Client struct {
	client *resty.Client
}

var _ domain.ProductFetcher = (*Client)(nil)

// NewClient creates a Client for the backend rooted at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	rc := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("Accept", "application/json")
	for _, opt := range opts {
		opt(rc)
	}
	return &Client{client: rc}
}

// FetchAll issues one GET /products and returns the response body as is.
//
// Transport failures and non-2xx responses are returned as a
// domain.CodeUpstream error wrapping the cause. There is no retry.
func (c *Client) FetchAll(ctx context.Context) (json.RawMessage, error) {
	resp, err := c.client.R().SetContext(ctx).Get(productsPath)
	if err != nil {
		return nil, domain.NewAppError(domain.CodeUpstream, "fetch products failed", err)
	}
	if !resp.IsSuccess() {
		return nil, domain.NewAppError(domain.CodeUpstream, "fetch products failed", &StatusError{
			StatusCode: resp.StatusCode(),
			Body:       resp.Body(),
		})
	}
	return json.RawMessage(resp.Body()), nil
}

// Ping checks that the backend answers HTTP at all. Any status counts.
func (c *Client) Ping(ctx context.Context) error {
	if _, err := c.client.R().SetContext(ctx).Head("/"); err != nil {
		return fmt.Errorf("ping products api: %w", err)
	}
	return nil
}
