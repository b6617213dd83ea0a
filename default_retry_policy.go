package webmate

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// DefaultRetryPolicy is the default retry condition used by [Client]. It
// retries idempotent requests on HTTP 429 (rate limit) and 5xx server errors,
// and on transient connection errors. POST requests are never retried, and
// neither are context cancellation, deadline exceeded or DNS resolution
// failures.
//
// Supply a custom function via [WithRetryPolicy] to override this behaviour.
func DefaultRetryPolicy(r *resty.Response, err error) bool {
	if r != nil && r.Request != nil && r.Request.Method == http.MethodPost {
		return false
	}

	if err != nil {
		// Don't retry on context cancellation or deadline exceeded
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return false
		}

		// Don't retry on DNS resolution errors
		var dnsErr *net.DNSError
		if errors.As(err, &dnsErr) {
			return false
		}

		return true
	}

	if r == nil {
		return false
	}

	return r.StatusCode() == http.StatusTooManyRequests || r.StatusCode() >= 500
}
