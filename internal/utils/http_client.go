package utils

import (
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client with its own connection pool and default
// settings.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}

// WithRetries enables retries for transport failures and 5xx answers. A wait
// of zero keeps resty's default backoff.
func (c *HTTPClient) WithRetries(count int, wait time.Duration) *HTTPClient {
	c.SetRetryCount(count).AddRetryCondition(retryable)
	if wait > 0 {
		c.SetRetryWaitTime(wait).SetRetryMaxWaitTime(4 * wait)
	}
	return c
}

// retryable retries network timeouts, refused connections and server errors.
// 4xx answers are the caller's fault and are never retried.
func retryable(resp *resty.Response, err error) bool {
	if err != nil {
		var netErr net.Error
		return errors.As(err, &netErr) || errors.Is(err, net.ErrClosed)
	}
	return resp != nil && resp.StatusCode() >= http.StatusInternalServerError
}
