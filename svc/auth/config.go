package auth

import "time"

// Credentials holds the OAuth client credentials of one provider.
type Credentials struct {
	ClientID     string
	ClientSecret string
}

// Config is the explicit engine configuration. No field is read from the
// process environment here; wiring env vars to this struct is the caller's
// concern.
type Config struct {
	// CallbackBaseURL is the externally visible base URL callbacks arrive
	// on, e.g. "https://app.example.com". The per-provider redirect URI is
	// CallbackBaseURL + "/auth/callback/{provider}".
	CallbackBaseURL string

	// Credentials maps provider id to its client credentials. Providers
	// without credentials are treated as misconfigured at the point of use.
	Credentials map[string]Credentials

	// StateTTL bounds how long an authorization flow may stay pending.
	StateTTL time.Duration

	// RequestTimeout bounds each outbound provider call.
	RequestTimeout time.Duration
}

const (
	defaultStateTTL       = 10 * time.Minute
	defaultRequestTimeout = 10 * time.Second
)

func (c Config) stateTTL() time.Duration {
	if c.StateTTL > 0 {
		return c.StateTTL
	}
	return defaultStateTTL
}

func (c Config) requestTimeout() time.Duration {
	if c.RequestTimeout > 0 {
		return c.RequestTimeout
	}
	return defaultRequestTimeout
}
