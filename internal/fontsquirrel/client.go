package fontsquirrel

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// DefaultEndpoint is the Font Squirrel endpoint listing every family.
	DefaultEndpoint    = "https://www.fontsquirrel.com/api/fontlist/all"
	defaultUserAgent   = "FontGet/1.0 (https://github.com/graphixa/fontget)"
	defaultHTTPTimeout = 30 * time.Second
)

// Lister fetches the complete font list.
type Lister interface {
	FetchFonts(ctx context.Context) ([]Record, error)
}

// Client retrieves the Font Squirrel font list.
type Client struct {
	endpoint   string
	userAgent  string
	httpClient *http.Client
}

var _ Lister = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithUserAgent overrides the User-Agent header sent with each request.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if ua := strings.TrimSpace(userAgent); ua != "" {
			c.userAgent = ua
		}
	}
}

// WithTimeout sets the request timeout on the default HTTP client. It has no
// effect when combined with WithHTTPClient.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient = &http.Client{Timeout: timeout}
		}
	}
}

// New creates a client for the given endpoint. An empty endpoint selects
// DefaultEndpoint.
func New(endpoint string, opts ...Option) (*Client, error) {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	parsed, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse font list url: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("font list url must be absolute: %q", endpoint)
	}
	client := &Client{
		endpoint:   parsed.String(),
		userAgent:  defaultUserAgent,
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// Endpoint returns the URL the client fetches.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// FetchFonts issues a single GET and decodes the JSON array response. There is
// no pagination; the response is assumed to be the whole catalog. Only a body
// that is not an array fails the fetch; elements that are not objects come
// back as invalid records so the caller can skip them one by one.
func (c *Client) FetchFonts(ctx context.Context) ([]Record, error) {
	if c == nil {
		return nil, errors.New("fontsquirrel: client is nil")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return nil, fmt.Errorf("execute request (latency=%v): %w", latency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("font list returned %s (latency=%v): %s", resp.Status, latency, strings.TrimSpace(string(body)))
	}

	decoder := json.NewDecoder(resp.Body)
	decoder.UseNumber()
	var items []any
	if err := decoder.Decode(&items); err != nil {
		return nil, fmt.Errorf("decode font list (latency=%v): %w", time.Since(requestStart), err)
	}
	return RecordsFromList(items), nil
}
