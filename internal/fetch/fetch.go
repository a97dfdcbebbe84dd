package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const (
	DefaultUserAgent = "tde-import/1.0 (github.com/bkraemer/tde-import)"
	DefaultTimeout   = 30 * time.Second
)

// Client fetches documents over HTTP. The extraction pipeline never retries
// on its own; if retries are wanted they are configured here, on the
// collaborator, by the caller that owns the retry policy.
type Client struct {
	httpClient *http.Client
	userAgent  string
	maxRetries uint64
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-request network timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithRetries enables up to n retries with exponential backoff on top of
// the initial attempt. Zero (the default) means a single attempt.
func WithRetries(n uint64) Option {
	return func(c *Client) {
		c.maxRetries = n
	}
}

// New creates a Client with the default timeout and user agent.
func New(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch retrieves url and returns the response body. Non-200 responses are
// errors.
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, error) {
	if c.maxRetries == 0 {
		return c.fetchOnce(ctx, url)
	}

	var body []byte
	operation := func() error {
		var err error
		body, err = c.fetchOnce(ctx, url)
		return err
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), c.maxRetries), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, err
	}
	return body, nil
}

func (c *Client) fetchOnce(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	return body, nil
}
