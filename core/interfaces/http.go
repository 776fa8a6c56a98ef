package interfaces

import (
	"context"
	"io"
)

// HTTPClient defines the interface for making HTTP requests.
// This abstraction allows for easy mocking in tests and lets the concurrent
// batch validator share one connection-pooled client across workers.
type HTTPClient interface {
	// Get performs an HTTP GET request to the specified URL.
	// Extra request headers (such as Referer) may be supplied; a nil map
	// means no extra headers. Returns a Response interface or an error if
	// the request fails at the transport level.
	Get(ctx context.Context, url string, headers map[string]string) (Response, error)

	// Head performs an HTTP HEAD request to the specified URL with the
	// given extra headers. Used for lightweight accessibility probing.
	Head(ctx context.Context, url string, headers map[string]string) (Response, error)
}

// Response defines the interface for HTTP responses.
// This abstraction allows different HTTP client implementations to provide
// their own response types while maintaining a consistent interface.
type Response interface {
	// StatusCode returns the HTTP status code of the response.
	StatusCode() int

	// Body returns the response body as an io.ReadCloser.
	// The caller is responsible for closing the body when done.
	Body() io.ReadCloser

	// Header returns the value of the specified header.
	// Returns an empty string if the header is not present.
	// Header names are case-insensitive.
	Header(key string) string
}
