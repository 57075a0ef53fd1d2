package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// configCache holds one parsed value per config type. Parsing happens at
// most once per type; everything after that is a cache read.
type configCache struct {
	mu     sync.RWMutex
	values map[string]any
	onces  map[string]*sync.Once
}

var (
	globalCache = &configCache{
		values: make(map[string]any),
		onces:  make(map[string]*sync.Once),
	}

	defaultEnvLoaded sync.Once
)

// fromCache copies the cached value for key into v, reporting whether the
// key was present.
func fromCache[T any](key string, v *T) bool {
	globalCache.mu.RLock()
	defer globalCache.mu.RUnlock()
	cached, ok := globalCache.values[key]
	if !ok {
		return false
	}
	*v = cached.(T)
	return true
}

// onceFor returns the sync.Once guarding the parse of key, creating it on
// first use.
func onceFor(key string) *sync.Once {
	globalCache.mu.Lock()
	defer globalCache.mu.Unlock()
	once, ok := globalCache.onces[key]
	if !ok {
		once = new(sync.Once)
		globalCache.onces[key] = once
	}
	return once
}

// Load parses environment variables into v based on its `env` field tags.
// On first use it also loads the default .env file if one exists. Each
// config type is parsed once per process; later calls for the same type
// return the cached value, so an env change after the first Load is not
// observed (use ForceReloadConfig in tests that need that).
//
//	type PostgresConfig struct {
//		ConnURL string `env:"PG_CONN_URL,required"`
//	}
//
//	var cfg PostgresConfig
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// Missing .env is fine; the process env may be complete on its own.
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	key := typeKey[T]()

	if fromCache(key, v) {
		return nil
	}

	var err error
	onceFor(key).Do(func() {
		if parseErr := env.Parse(v); parseErr != nil {
			err = errors.Join(ErrParsingConfig, parseErr)
			return
		}

		globalCache.mu.Lock()
		globalCache.values[key] = *v
		globalCache.mu.Unlock()
	})
	if err != nil {
		return err
	}

	// A concurrent Load may have won the once; read the canonical copy.
	if fromCache(key, v) {
		return nil
	}
	return ErrConfigNotLoaded
}

// MustLoad works like Load but panics on failure. Suits configuration the
// process cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}

// typeKey returns the cache key for the generic type T.
func typeKey[T any]() string {
	var zero T
	t := reflect.TypeOf(zero)
	if t == nil {
		// Interface types have no concrete reflect.Type.
		return fmt.Sprintf("%T", *new(T))
	}
	return t.String()
}
