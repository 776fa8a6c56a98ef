// ABOUTME: Standard HTTP client implementation with a fixed identifying User-Agent
// ABOUTME: Provides GET and HEAD with per-request headers for feed fetches and image probes

package standard

import (
	"context"
	"io"
	"net/http"
	"time"

	"comic-feed-engine/core/interfaces"
)

const defaultUserAgent = "Mozilla/5.0 (compatible; ComicRSSValidator/1.0)"

// StandardHTTPClient implements the HTTPClient interface using the standard
// library. One instance is safe to share across the batch worker pool; the
// underlying client pools connections.
type StandardHTTPClient struct {
	client    *http.Client
	userAgent string
}

// NewStandardHTTPClient creates a new HTTP client. The timeout is a
// transport-level cap; callers bound individual requests with their context.
// An empty userAgent falls back to the engine's identifying agent.
func NewStandardHTTPClient(timeout time.Duration, userAgent string) *StandardHTTPClient {
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	return &StandardHTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
		userAgent: userAgent,
	}
}

// Get performs an HTTP GET request
func (c *StandardHTTPClient) Get(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error) {
	return c.do(ctx, http.MethodGet, url, headers)
}

// Head performs an HTTP HEAD request
func (c *StandardHTTPClient) Head(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error) {
	return c.do(ctx, http.MethodHead, url, headers)
}

func (c *StandardHTTPClient) do(ctx context.Context, method, url string, headers map[string]string) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", c.userAgent)
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}

	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       resp.Body,
		headers:    resp.Header,
	}, nil
}

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode int
	body       io.ReadCloser
	headers    http.Header
}

// StatusCode returns the HTTP status code
func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

// Body returns the response body
func (r *httpResponse) Body() io.ReadCloser {
	return r.body
}

// Header returns the value of the specified header
func (r *httpResponse) Header(key string) string {
	return r.headers.Get(key)
}
