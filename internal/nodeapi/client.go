package nodeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// NodeClient is the set of primitive operations the device exposes.
// This interface is implemented by *Client and can be faked in tests.
type NodeClient interface {
	ReadNode(ctx context.Context, path string) (Node, error)
	ReadRows(ctx context.Context, path string, page Page) ([]Node, error)
	WriteNode(ctx context.Context, path, role string, value any) error
}

// Ensure Client implements NodeClient at compile time.
var _ NodeClient = (*Client)(nil)

// Client talks to the device's node API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultUserAgent = "radioctl/0.1"
	defaultTimeout   = 5 * time.Second

	endpointGetData = "/api/getData"
	endpointGetRows = "/api/getRows"
	endpointSetData = "/api/setData"
)

// Option customizes a Client.
type Option func(*Client)

// WithTimeout bounds every round trip. Zero or negative keeps the default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua = strings.TrimSpace(ua); ua != "" {
			c.userAgent = ua
		}
	}
}

// NewClient builds a Client for the device at address (host, host:port or URL).
func NewClient(address string, opts ...Option) (*Client, error) {
	base, err := parseBaseURL(address)
	if err != nil {
		return nil, err
	}
	c := &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: defaultTimeout,
		},
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the device address the client was built for.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// ReadNode fetches every role of a single node.
func (c *Client) ReadNode(ctx context.Context, path string) (Node, error) {
	values := url.Values{}
	values.Set("path", path)
	values.Set("roles", Roles)

	var node Node
	if err := c.get(ctx, endpointGetData, values, &node); err != nil {
		return Node{}, err
	}
	return node, nil
}

// ReadRows fetches the children of a container node in the range [page.From, page.To).
func (c *Client) ReadRows(ctx context.Context, path string, page Page) ([]Node, error) {
	if page.From < 0 || page.To < page.From {
		return nil, fmt.Errorf("invalid row range [%d, %d)", page.From, page.To)
	}
	values := url.Values{}
	values.Set("path", path)
	values.Set("roles", Roles)
	values.Set("from", strconv.Itoa(page.From))
	values.Set("to", strconv.Itoa(page.To))

	var payload RowPage
	if err := c.get(ctx, endpointGetRows, values, &payload); err != nil {
		return nil, err
	}
	return payload.Rows, nil
}

// WriteNode sets one role of a node. value is sent JSON encoded; the response
// body is ignored.
func (c *Client) WriteNode(ctx context.Context, path, role string, value any) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s value: %w", role, err)
	}
	values := url.Values{}
	values.Set("path", path)
	values.Set("role", role)
	values.Set("value", string(encoded))
	return c.get(ctx, endpointSetData, values, nil)
}

func (c *Client) get(ctx context.Context, endpoint string, values url.Values, dest any) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	rel := &url.URL{Path: endpoint, RawQuery: values.Encode()}
	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		log.Debug().Err(err).Str("endpoint", endpoint).Str("path", values.Get("path")).Msg("node request failed")
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	log.Debug().
		Str("endpoint", endpoint).
		Str("path", values.Get("path")).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("node request")

	if resp.StatusCode != http.StatusOK {
		return &StatusError{Endpoint: endpoint, Path: values.Get("path"), Status: resp.StatusCode}
	}
	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(address string) (*url.URL, error) {
	trimmed := strings.TrimSpace(address)
	if trimmed == "" {
		return nil, fmt.Errorf("device address is empty")
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse device address %q: %w", address, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("device address %q has no host", address)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
