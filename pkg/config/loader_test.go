package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/profiledeck/socialauth/pkg/config"
)

type serverConfig struct {
	Addr  string `env:"TEST_HTTP_ADDR" envDefault:":8080"`
	Debug bool   `env:"TEST_DEBUG" envDefault:"false"`
}

type requiredConfig struct {
	Secret string `env:"TEST_REQUIRED_SECRET,required"`
}

func TestLoad(t *testing.T) {
	t.Run("defaults applied", func(t *testing.T) {
		config.ResetCache()

		var cfg serverConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, ":8080", cfg.Addr)
		assert.False(t, cfg.Debug)
	})

	t.Run("env overrides defaults", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("TEST_HTTP_ADDR", ":9999")

		var cfg serverConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, ":9999", cfg.Addr)
	})

	t.Run("cached between loads", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("TEST_HTTP_ADDR", ":7777")

		var first serverConfig
		require.NoError(t, config.Load(&first))

		// A later env change is invisible without a forced reload.
		t.Setenv("TEST_HTTP_ADDR", ":6666")
		var second serverConfig
		require.NoError(t, config.Load(&second))
		assert.Equal(t, ":7777", second.Addr)

		require.NoError(t, config.ForceReloadConfig(&second))
		assert.Equal(t, ":6666", second.Addr)
	})

	t.Run("missing required variable", func(t *testing.T) {
		config.ResetCache()
		os.Unsetenv("TEST_REQUIRED_SECRET")

		var cfg requiredConfig
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		err := config.Load[serverConfig](nil)
		assert.ErrorIs(t, err, config.ErrNilPointer)
	})
}

func TestLoadEnv(t *testing.T) {
	t.Run("loads variables from file", func(t *testing.T) {
		config.ResetCache()

		envFile := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(envFile, []byte("TEST_HTTP_ADDR=:5555\n"), 0o600))
		t.Setenv("TEST_HTTP_ADDR", "")
		os.Unsetenv("TEST_HTTP_ADDR")

		require.NoError(t, config.LoadEnv(envFile))

		var cfg serverConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, ":5555", cfg.Addr)
	})

	t.Run("missing file", func(t *testing.T) {
		err := config.LoadEnv("does-not-exist.env")
		assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
	})
}
