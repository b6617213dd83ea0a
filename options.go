package webmate

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	// UserHeader carries the webmate user name on every request.
	UserHeader = "webmate.user"

	// APITokenHeader carries the webmate API token on every request.
	APITokenHeader = "webmate.api-token"
)

// AuthInfo identifies the webmate user on whose behalf requests are sent.
type AuthInfo struct {
	Username string
	APIToken string
}

type Option func(*Options)

type Options struct {
	retryCount       int
	retryWaitTime    time.Duration
	retryMaxWaitTime time.Duration
	timeout          time.Duration
	requestLogger    RequestLogger
	retryPolicy      func(*resty.Response, error) bool
	requestHeaders   map[string]string
	authInfo         AuthInfo
	healthCheckPath  string
}

func newClientOptions() *Options {
	return &Options{
		retryCount:       3,
		retryWaitTime:    500 * time.Millisecond,
		retryMaxWaitTime: 3 * time.Second,
		timeout:          60 * time.Second,
		requestLogger:    &NoopLogger{},
		retryPolicy:      DefaultRetryPolicy,
		requestHeaders: map[string]string{
			"Content-Type": "application/json",
			"Accept":       "application/json",
		},
	}
}

func WithRetryCount(count int) Option {
	return func(o *Options) {
		if count >= 0 {
			o.retryCount = count
		}
	}
}

func WithRetryWaitTime(waitTime time.Duration) Option {
	return func(o *Options) {
		if waitTime >= 100*time.Millisecond {
			o.retryWaitTime = waitTime
		}
	}
}

func WithRetryMaxWaitTime(maxWaitTime time.Duration) Option {
	return func(o *Options) {
		if maxWaitTime >= 100*time.Millisecond {
			o.retryMaxWaitTime = maxWaitTime
		}
	}
}

// WithTimeout sets the overall timeout of a single HTTP exchange. Zero
// disables the timeout; negative values are ignored.
func WithTimeout(timeout time.Duration) Option {
	return func(o *Options) {
		if timeout >= 0 {
			o.timeout = timeout
		}
	}
}

func WithRequestLogger(logger RequestLogger) Option {
	return func(o *Options) {
		if logger != nil {
			o.requestLogger = logger
		}
	}
}

func WithRetryPolicy(policy func(*resty.Response, error) bool) Option {
	return func(o *Options) {
		if policy != nil {
			o.retryPolicy = policy
		}
	}
}

func WithRequestHeader(header, value string) Option {
	return func(o *Options) {
		header = strings.TrimSpace(header)

		if header == "" || strings.EqualFold(header, "Content-Type") || strings.EqualFold(header, "Accept") {
			return
		}

		o.requestHeaders[header] = value
	}
}

// WithAuthInfo sets the credentials sent in the webmate.user and
// webmate.api-token headers.
func WithAuthInfo(info AuthInfo) Option {
	return func(o *Options) {
		o.authInfo = AuthInfo{
			Username: strings.TrimSpace(info.Username),
			APIToken: strings.TrimSpace(info.APIToken),
		}
	}
}

// WithHealthCheckPath makes [Client.Connect] issue a GET against path and
// fail unless it answers with a 2xx status. No check is done by default.
func WithHealthCheckPath(path string) Option {
	return func(o *Options) {
		path = strings.TrimSpace(path)
		if path != "" && !strings.HasPrefix(path, "/") {
			path = "/" + path
		}
		o.healthCheckPath = path
	}
}

func (o *Options) Validate() error {
	if o.retryCount < 0 {
		return errors.New("retryCount must be non-negative")
	}

	if o.retryCount > 100 {
		return errors.New("retryCount must not exceed 100")
	}

	if o.retryWaitTime < 100*time.Millisecond {
		return errors.New("retryWaitTime must be at least 100ms")
	}

	if o.retryWaitTime > time.Minute {
		return fmt.Errorf("retryWaitTime must not exceed %v", time.Minute)
	}

	if o.retryMaxWaitTime < 100*time.Millisecond {
		return errors.New("retryMaxWaitTime must be at least 100ms")
	}

	if o.retryMaxWaitTime > 5*time.Minute {
		return fmt.Errorf("retryMaxWaitTime must not exceed %v", 5*time.Minute)
	}

	if o.retryMaxWaitTime < o.retryWaitTime {
		return fmt.Errorf("retryMaxWaitTime (%v) must be greater than or equal to retryWaitTime (%v)", o.retryMaxWaitTime, o.retryWaitTime)
	}

	if o.timeout < 0 {
		return errors.New("timeout must be non-negative")
	}

	if o.requestLogger == nil {
		return errors.New("requestLogger must not be nil")
	}

	if o.retryPolicy == nil {
		return errors.New("retryPolicy must not be nil")
	}

	if (o.authInfo.Username == "") != (o.authInfo.APIToken == "") {
		return errors.New("auth info requires both username and API token")
	}

	return nil
}
