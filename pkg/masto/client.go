package masto

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fedikit/masto/pkg/httpx"
	"github.com/fedikit/masto/pkg/slogx"
)

// Client is an authenticated client for one Mastodon-style instance.
// It holds the session record and an HTTP transport and nothing else; it is
// stateless between calls and safe for concurrent use.
type Client struct {
	// Data is the session record this client was built from.
	Data AppData

	// HTTPClient is the transport used for every request. Timeouts and
	// cancellation are entirely its (and the caller's context's) business.
	HTTPClient *http.Client

	// Throttle optionally paces outgoing requests to stay inside the
	// instance's request budget. Nil means no client-side pacing.
	Throttle *httpx.Throttle
}

// NewClient builds a client from a session record, typically one persisted
// after a completed registration flow.
func NewClient(data AppData) *Client {
	data.Base = strings.TrimSuffix(data.Base, "/")
	return &Client{
		Data: data,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// url builds a complete URL by appending path to the instance base URL.
func (c *Client) url(path string) string {
	return c.Data.Base + path
}

// do performs one HTTP request with the bearer token attached. rawurl must be
// absolute. Transport failures come back as *NetworkError.
func (c *Client) do(ctx context.Context, method, rawurl string, body io.Reader, contentType string, headers map[string]string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawurl, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.Data.Token)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	if c.Throttle != nil {
		if err := c.Throttle.Wait(ctx); err != nil {
			return nil, &NetworkError{Err: err}
		}
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		slogx.FromContext(ctx).Debug("request failed", "method", method, "url", rawurl, "error", err)
		return nil, &NetworkError{Err: err}
	}

	slogx.FromContext(ctx).Debug("request complete", "method", method, "url", rawurl, "status", resp.StatusCode)
	return resp, nil
}
