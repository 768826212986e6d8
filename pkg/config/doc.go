// Package config loads typed configuration from environment variables.
//
// It wraps github.com/caarlos0/env/v11 for struct-tag parsing and
// github.com/joho/godotenv for .env files. Variables set in the process
// environment always win over values read from files, matching godotenv.Load.
//
//	type Config struct {
//		RemoteURL string        `env:"REMOTE_URL"`
//		Timeout   time.Duration `env:"REMOTE_TIMEOUT" envDefault:"10s"`
//	}
//
//	cfg, err := config.Load[Config](
//		config.WithPrefix("GOODFORM_"),
//		config.WithOptionalFiles(".env"),
//	)
//
// Tests can pass WithEnvironment to parse a fixed map instead of the process
// environment.
//
// Errors wrap ErrParsingConfig or ErrReadingEnvFile.
package config
