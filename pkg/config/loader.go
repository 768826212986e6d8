package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type options struct {
	prefix   string
	files    []string
	optional bool
	environ  map[string]string
}

// Option configures Load.
type Option func(*options)

// WithPrefix prepends prefix to every env tag.
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// WithFiles reads .env files. Variables already set in the environment win
// over the files; later files win over earlier ones.
func WithFiles(paths ...string) Option {
	return func(o *options) { o.files = append(o.files, paths...) }
}

// WithOptionalFiles is WithFiles where missing files are skipped.
func WithOptionalFiles(paths ...string) Option {
	return func(o *options) {
		o.files = append(o.files, paths...)
		o.optional = true
	}
}

// WithEnvironment replaces the process environment as the variable source.
func WithEnvironment(vars map[string]string) Option {
	return func(o *options) { o.environ = vars }
}

// Load parses the environment into a new T using its env tags.
//
//	type Config struct {
//		RemoteURL string        `env:"REMOTE_URL"`
//		Timeout   time.Duration `env:"REMOTE_TIMEOUT" envDefault:"10s"`
//	}
//
//	cfg, err := config.Load[Config](config.WithPrefix("GOODFORM_"), config.WithOptionalFiles(".env"))
func Load[T any](opts ...Option) (T, error) {
	var cfg T

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	vars, err := o.variables()
	if err != nil {
		return cfg, err
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: o.prefix, Environment: vars}); err != nil {
		return cfg, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// MustLoad works like Load but panics on failure.
func MustLoad[T any](opts ...Option) T {
	cfg, err := Load[T](opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
	return cfg
}

func (o *options) variables() (map[string]string, error) {
	vars := make(map[string]string)

	for _, path := range o.files {
		fileVars, err := godotenv.Read(path)
		if err != nil {
			if o.optional && errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, errors.Join(ErrReadingEnvFile, fmt.Errorf("%s: %w", path, err))
		}
		for k, v := range fileVars {
			vars[k] = v
		}
	}

	environ := o.environ
	if environ == nil {
		environ = processEnvironment()
	}
	for k, v := range environ {
		vars[k] = v
	}

	return vars, nil
}

func processEnvironment() map[string]string {
	vars := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			vars[k] = v
		}
	}
	return vars
}
