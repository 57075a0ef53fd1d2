package provider

// Profile is the canonical identity shape every adapter normalizes into.
// Optional fields are empty strings when the provider cannot supply them.
type Profile struct {
	// ExternalUserID is the provider's stable user identifier as a string.
	// Adapters convert numeric ids (e.g. GitHub) to their decimal form.
	ExternalUserID string

	// Username is the provider handle, used to seed the vanity subdomain.
	Username string

	DisplayName string
	AvatarURL   string
	Bio         string
	Email       string
}

// Repo is one item of supplementary repository-style metadata. Only the
// fields relevant to expertise extraction survive normalization.
type Repo struct {
	Language    string
	Description string
}

// Adapter describes a single OAuth provider. Implementations are pure
// configuration plus normalization logic; all network I/O happens in the
// calling flow.
type Adapter interface {
	// ID returns the stable provider identifier, e.g. "github".
	ID() string

	// AuthorizeURL returns the provider's authorization endpoint.
	AuthorizeURL() string

	// TokenURL returns the provider's token exchange endpoint.
	TokenURL() string

	// UserInfoURL returns the profile endpoint, including any
	// provider-specific query parameters (e.g. Twitter's user.fields).
	UserInfoURL() string

	// Scopes returns the OAuth scopes requested during authorization.
	Scopes() []string

	// Normalize maps the raw profile payload to the canonical Profile.
	// Field-mapping quirks live here and nowhere else.
	Normalize(raw []byte) (Profile, error)
}

// SupplementaryAdapter is implemented by providers that expose an extra
// data endpoint enriching expertise extraction. The fetch is best-effort:
// a failing supplementary call degrades tags, never the login flow.
type SupplementaryAdapter interface {
	Adapter

	// ExtraDataURL returns the supplementary endpoint.
	ExtraDataURL() string

	// NormalizeExtra maps the raw supplementary payload to repository
	// metadata. Malformed payloads yield nil rather than an error.
	NormalizeExtra(raw []byte) []Repo
}
