package webmate

import (
	"context"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds client configuration read from the environment.
type Config struct {
	BaseURL    string        `env:"WEBMATE_API_URL,default=https://app.webmate.io/api/v1"`
	Username   string        `env:"WEBMATE_USERNAME,required"`
	APIKey     string        `env:"WEBMATE_API_KEY,required"`
	RetryCount int           `env:"WEBMATE_RETRY_COUNT,default=3"`
	Timeout    time.Duration `env:"WEBMATE_TIMEOUT,default=60s"`
}

// LoadConfig returns a Config populated from environment variables.
func LoadConfig(ctx context.Context) (Config, error) {
	return loadConfig(ctx, envconfig.OsLookuper())
}

func loadConfig(ctx context.Context, lookuper envconfig.Lookuper) (Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Options converts the configuration into client options.
func (c Config) Options() []Option {
	return []Option{
		WithAuthInfo(AuthInfo{Username: c.Username, APIToken: c.APIKey}),
		WithRetryCount(c.RetryCount),
		WithTimeout(c.Timeout),
	}
}

// NewFromConfig creates a Client from cfg. Additional options are applied
// after the configured ones.
func NewFromConfig(cfg Config, opts ...Option) *Client {
	return New(cfg.BaseURL, append(cfg.Options(), opts...)...)
}
