package goodform

import (
	"time"

	"github.com/dmitrymomot/goodform/pkg/remote"
)

// Config is the environment-driven engine configuration. Load it with
// pkg/config:
//
//	cfg, err := config.Load[goodform.Config](config.WithOptionalFiles(".env"))
type Config struct {
	// RemoteURL is the endpoint answering remote checks. Empty disables remote rules.
	RemoteURL string `env:"GOODFORM_REMOTE_URL"`
	// ValidMessage is the default message of valid fields.
	ValidMessage string `env:"GOODFORM_VALID_MESSAGE"`
	// RemoteTimeout bounds each round trip attempt. Zero leaves only the caller's context.
	RemoteTimeout time.Duration `env:"GOODFORM_REMOTE_TIMEOUT" envDefault:"10s"`
	// RemoteRetries is the number of retries after a failed attempt.
	RemoteRetries int `env:"GOODFORM_REMOTE_RETRIES" envDefault:"0"`
}

// NewClient builds the remote client described by the config. extra options
// are applied after the configured ones. It returns nil without error when
// RemoteURL is empty.
func (c Config) NewClient(extra ...remote.ClientOption) (*remote.Client, error) {
	if c.RemoteURL == "" {
		return nil, nil
	}
	opts := append([]remote.ClientOption{
		remote.WithTimeout(c.RemoteTimeout),
		remote.WithMaxRetries(c.RemoteRetries),
	}, extra...)
	return remote.NewClient(c.RemoteURL, opts...)
}

// NewFromConfig builds an engine from cfg. opts are applied after the
// configured ones, so WithTransport or WithValidMessage override cfg.
func NewFromConfig(cfg Config, opts ...Option) (*Engine, error) {
	base := []Option{WithValidMessage(cfg.ValidMessage)}

	client, err := cfg.NewClient()
	if err != nil {
		return nil, err
	}
	if client != nil {
		base = append(base, WithTransport(client))
	}

	return New(append(base, opts...)...), nil
}
