// Package config loads application configuration from environment variables
// into typed structs, with optional .env file support.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11. Each
// configuration type is parsed at most once per process and served from an
// in-process cache afterwards; ResetCache and ForceReloadConfig exist for
// tests that mutate the environment.
//
// Usage:
//
//	type PostgresConfig struct {
//	    ConnURL string `env:"PG_CONN_URL,required"`
//	}
//
//	var cfg PostgresConfig
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatal(err)
//	}
//
// MustLoad panics instead of returning an error, which suits configuration
// the process cannot start without.
package config
