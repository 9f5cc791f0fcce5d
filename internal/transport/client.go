// Package transport provides the HTTP client used by collector plugins.
package transport

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/craig5/range/pkg/errors"
)

// DefaultTimeout is the default timeout for HTTP requests.
const DefaultTimeout = 30 * time.Second

// Client is a thin HTTP client with a per-client timeout and optional
// bearer token authentication.
type Client struct {
	http  *http.Client
	token string
}

// New creates a new transport client. A zero timeout falls back to
// DefaultTimeout.
func New(timeout time.Duration, token string) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		http:  &http.Client{Timeout: timeout},
		token: token,
	}
}

// Get fetches the document at url and returns the response body.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.WrapIO("create", "GET "+url, err)
	}
	req.Header.Set("Accept", "application/x-yaml, application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.WrapIO("fetch", url, err)
	}
	defer func() {
		// Drain any remaining body to allow connection reuse
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, &errors.IOError{
			Operation: "fetch",
			Path:      url,
			Err:       errors.New("unexpected status " + resp.Status),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.WrapIO("read", url, err)
	}
	return body, nil
}
