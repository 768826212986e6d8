package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/goodform/pkg/config"
)

type appConfig struct {
	Name    string        `env:"NAME"`
	Port    int           `env:"PORT" envDefault:"3000"`
	Tags    []string      `env:"TAGS" envSeparator:","`
	Quoted  string        `env:"QUOTED"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`
}

type requiredConfig struct {
	Secret string `env:"SECRET,required"`
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		cfg, err := config.Load[appConfig](config.WithPrefix("APP_"), config.WithEnvironment(map[string]string{}))
		require.NoError(t, err)
		assert.Equal(t, 3000, cfg.Port)
		assert.Equal(t, 10*time.Second, cfg.Timeout)
		assert.Empty(t, cfg.Name)
	})

	t.Run("environment", func(t *testing.T) {
		cfg, err := config.Load[appConfig](
			config.WithPrefix("APP_"),
			config.WithEnvironment(map[string]string{"APP_NAME": "env", "APP_TIMEOUT": "250ms"}),
		)
		require.NoError(t, err)
		assert.Equal(t, "env", cfg.Name)
		assert.Equal(t, 250*time.Millisecond, cfg.Timeout)
	})

	t.Run("files", func(t *testing.T) {
		cfg, err := config.Load[appConfig](
			config.WithPrefix("APP_"),
			config.WithFiles("testdata/base.env"),
			config.WithEnvironment(map[string]string{}),
		)
		require.NoError(t, err)
		assert.Equal(t, "from_file", cfg.Name)
		assert.Equal(t, 8080, cfg.Port)
		assert.Equal(t, []string{"a", "b", "c"}, cfg.Tags)
		assert.Equal(t, "quoted value", cfg.Quoted)
	})

	t.Run("later files override earlier ones", func(t *testing.T) {
		cfg, err := config.Load[appConfig](
			config.WithPrefix("APP_"),
			config.WithFiles("testdata/base.env", "testdata/override.env"),
			config.WithEnvironment(map[string]string{}),
		)
		require.NoError(t, err)
		assert.Equal(t, 9090, cfg.Port)
	})

	t.Run("environment wins over files", func(t *testing.T) {
		cfg, err := config.Load[appConfig](
			config.WithPrefix("APP_"),
			config.WithFiles("testdata/base.env"),
			config.WithEnvironment(map[string]string{"APP_NAME": "env"}),
		)
		require.NoError(t, err)
		assert.Equal(t, "env", cfg.Name)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := config.Load[appConfig](config.WithFiles("testdata/missing.env"))
		assert.ErrorIs(t, err, config.ErrReadingEnvFile)
	})

	t.Run("optional missing file", func(t *testing.T) {
		_, err := config.Load[appConfig](
			config.WithOptionalFiles("testdata/missing.env"),
			config.WithEnvironment(map[string]string{}),
		)
		assert.NoError(t, err)
	})

	t.Run("required variable", func(t *testing.T) {
		_, err := config.Load[requiredConfig](config.WithEnvironment(map[string]string{}))
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("malformed value", func(t *testing.T) {
		_, err := config.Load[appConfig](
			config.WithPrefix("APP_"),
			config.WithEnvironment(map[string]string{"APP_PORT": "eighty"}),
		)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})
}

func TestLoadProcessEnvironment(t *testing.T) {
	t.Setenv("GFTEST_NAME", "process")

	cfg, err := config.Load[appConfig](config.WithPrefix("GFTEST_"))
	require.NoError(t, err)
	assert.Equal(t, "process", cfg.Name)
}

func TestMustLoad(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		config.MustLoad[requiredConfig](config.WithEnvironment(map[string]string{}))
	})
	assert.NotPanics(t, func() {
		cfg := config.MustLoad[requiredConfig](config.WithEnvironment(map[string]string{"SECRET": "s"}))
		assert.Equal(t, "s", cfg.Secret)
	})
}
