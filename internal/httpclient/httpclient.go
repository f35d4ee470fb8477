// Package httpclient builds the HTTP client used for generation API calls.
package httpclient

import (
	"net/http"
	"time"
)

// New returns a client with connection pooling tuned for a small number of
// long-running generation requests. A non-positive timeout means no
// client-side deadline; callers still bound requests via context.
func New(timeout time.Duration) *http.Client {
	transport := &http.Transport{
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 4,
		IdleConnTimeout:     90 * time.Second,
	}
	client := &http.Client{Transport: transport}
	if timeout > 0 {
		client.Timeout = timeout
	}
	return client
}
