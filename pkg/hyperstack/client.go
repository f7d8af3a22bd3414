// Package hyperstack provides a typed client for the Hyperstack
// (NexGen Cloud) infrastructure REST API.
//
// Each operation validates its parameters locally, issues exactly one
// HTTP request, and returns the decoded JSON response. The client does
// not force a schema on responses: a 2xx body that parses as JSON is
// returned as the decoded value, anything else is returned as raw text.
// There is no caching, batching, or retrying.
package hyperstack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
)

const (
	// DefaultBaseURL is the production Hyperstack API endpoint.
	DefaultBaseURL = "https://infrahub-api.nexgencloud.com/v1"

	// EnvAPIKey is the environment variable consulted when no API key
	// is passed to New.
	EnvAPIKey = "HYPERSTACK_KEY"
)

// Option customizes a Client at construction time.
type Option func(*Client)

// WithBaseURL points the client at a different API endpoint.
// Used by tests and self-hosted deployments.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// Client talks to the Hyperstack API. Its configuration is immutable
// after New; methods are safe for concurrent use.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// New creates a Client authenticated with apiKey. When apiKey is empty
// the HYPERSTACK_KEY environment variable is consulted; if no key can
// be resolved, ErrMissingAPIKey is returned before any network activity.
func New(apiKey string, opts ...Option) (*Client, error) {
	key := strings.TrimSpace(apiKey)
	if key == "" {
		key = strings.TrimSpace(os.Getenv(EnvAPIKey))
	}
	if key == "" {
		return nil, ErrMissingAPIKey
	}

	c := &Client{
		baseURL:    DefaultBaseURL,
		apiKey:     key,
		httpClient: &http.Client{},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// BaseURL returns the endpoint this client is configured against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do issues a single request and returns the decoded response body.
// The api_key header is attached to every request; body, when non-nil,
// is JSON-encoded.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (any, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("hyperstack: failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("hyperstack: failed to build request: %w", err)
	}
	req.Header.Set("api_key", c.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("hyperstack: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("hyperstack: %s %s: failed to read response: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Method:     method,
			Path:       path,
			Body:       strings.TrimSpace(string(data)),
		}
	}

	return decodeBody(data), nil
}

// decodeBody parses data as JSON, falling back to the raw text when the
// body is not valid JSON. An empty body decodes to nil.
func decodeBody(data []byte) any {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return string(data)
	}
	return v
}
