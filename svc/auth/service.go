package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"github.com/profiledeck/socialauth/pkg/expertise"
	"github.com/profiledeck/socialauth/pkg/identity"
	"github.com/profiledeck/socialauth/pkg/provider"
	"github.com/profiledeck/socialauth/pkg/session"
	"github.com/profiledeck/socialauth/pkg/statestore"
)

// stateSeparator joins the random state prefix with the post-login redirect
// path, e.g. "k3KD1h...:/dashboard". Splitting on the first separator
// recovers the path without a store lookup.
const stateSeparator = ":"

// Result is the outcome of a successful callback.
type Result struct {
	User         *identity.User
	Session      *session.Session
	RedirectPath string
}

// Option is a functional option for configuring the Service.
type Option func(*Service)

// WithHTTPClient sets the client used for provider calls. The default
// client has no timeout of its own; per-call deadlines come from the
// request context.
func WithHTTPClient(client *http.Client) Option {
	return func(s *Service) {
		if client != nil {
			s.httpClient = client
		}
	}
}

// Service is the OAuth engine. It holds no mutable state of its own; all
// shared state lives behind the injected stores.
type Service struct {
	cfg        Config
	registry   *provider.Registry
	states     statestore.Store
	users      identity.Store
	sessions   *session.Manager
	httpClient *http.Client
}

// New creates the engine from its explicit configuration and collaborators.
func New(cfg Config, registry *provider.Registry, states statestore.Store, users identity.Store, sessions *session.Manager, opts ...Option) *Service {
	s := &Service{
		cfg:        cfg,
		registry:   registry,
		states:     states,
		users:      users,
		sessions:   sessions,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Providers returns the ids of registered providers that have client
// credentials configured. Registered-but-uncredentialed providers are
// hidden; starting a flow against them fails anyway.
func (s *Service) Providers() []string {
	ids := make([]string, 0, len(s.cfg.Credentials))
	for _, id := range s.registry.IDs() {
		if creds, ok := s.cfg.Credentials[id]; ok && creds.ClientID != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// BuildAuthorizationURL starts an authorization flow: it generates the PKCE
// verifier and the state token, persists them, and returns the provider
// authorization URL the browser should be redirected to.
func (s *Service) BuildAuthorizationURL(ctx context.Context, providerID, redirectPath string) (string, error) {
	adapter, creds, err := s.resolveProvider(providerID)
	if err != nil {
		return "", err
	}

	verifier := oauth2.GenerateVerifier()

	prefix, err := randomToken(16)
	if err != nil {
		return "", err
	}
	state := prefix + stateSeparator + sanitizeRedirectPath(redirectPath)

	now := time.Now()
	if err := s.states.Put(ctx, &statestore.State{
		Token:        state,
		Verifier:     verifier,
		Provider:     providerID,
		RedirectPath: sanitizeRedirectPath(redirectPath),
		CreatedAt:    now,
		ExpiresAt:    now.Add(s.cfg.stateTTL()),
	}); err != nil {
		return "", err
	}

	conf := s.oauthConfig(adapter, creds)
	return conf.AuthCodeURL(state, oauth2.S256ChallengeOption(verifier)), nil
}

// HandleCallback drives the callback state machine: state validation, token
// exchange, profile fetch, identity reconciliation, session issuance.
func (s *Service) HandleCallback(ctx context.Context, providerID, code, state string) (*Result, error) {
	adapter, creds, err := s.resolveProvider(providerID)
	if err != nil {
		return nil, err
	}

	// State consumption is destructive: a replayed token loses the race here.
	st, err := s.states.Consume(ctx, state)
	if err != nil {
		if errors.Is(err, statestore.ErrStateNotFound) {
			return nil, ErrInvalidState
		}
		return nil, err
	}
	if st.Provider != providerID {
		return nil, fmt.Errorf("%w: %s != %s", ErrProviderMismatch, providerID, st.Provider)
	}

	token, err := s.exchangeCode(ctx, adapter, creds, code, st.Verifier)
	if err != nil {
		return nil, err
	}

	rawProfile, err := s.fetchBearer(ctx, adapter.UserInfoURL(), token.AccessToken)
	if err != nil {
		return nil, errors.Join(ErrProfileFetchFailed, err)
	}

	profile, err := adapter.Normalize(rawProfile)
	if err != nil {
		return nil, errors.Join(ErrProfileFetchFailed, err)
	}

	// Supplementary data is best-effort: failure degrades expertise tags only.
	var repos []provider.Repo
	if supp, ok := adapter.(provider.SupplementaryAdapter); ok {
		if rawExtra, err := s.fetchBearer(ctx, supp.ExtraDataURL(), token.AccessToken); err == nil {
			repos = supp.NormalizeExtra(rawExtra)
		}
	}

	user, err := s.users.Upsert(ctx, identity.UpsertParams{
		ExternalID:     providerID + ":" + profile.ExternalUserID,
		Provider:       providerID,
		Username:       profile.Username,
		DisplayName:    profile.DisplayName,
		Email:          profile.Email,
		AvatarURL:      profile.AvatarURL,
		Bio:            profile.Bio,
		Expertise:      expertise.Extract(profile.Bio, repos),
		AccessToken:    token.AccessToken,
		RefreshToken:   token.RefreshToken,
		TokenExpiresAt: token.Expiry,
	})
	if err != nil {
		return nil, err
	}

	sess, err := s.sessions.Issue(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &Result{User: user, Session: sess, RedirectPath: st.RedirectPath}, nil
}

// CurrentUser resolves a session id to its canonical user. Expired and
// unknown sessions both yield session.ErrSessionNotFound.
func (s *Service) CurrentUser(ctx context.Context, sessionID string) (*identity.User, error) {
	sess, err := s.sessions.Resolve(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.users.GetByID(ctx, sess.UserID)
}

// Logout revokes the session. Revoking an unknown session is a no-op.
func (s *Service) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Revoke(ctx, sessionID)
}

func (s *Service) resolveProvider(providerID string) (provider.Adapter, Credentials, error) {
	adapter, err := s.registry.Get(providerID)
	if err != nil {
		return nil, Credentials{}, errors.Join(ErrUnknownProvider, err)
	}

	creds, ok := s.cfg.Credentials[providerID]
	if !ok || creds.ClientID == "" {
		return nil, Credentials{}, fmt.Errorf("%w: %s", ErrMissingCredentials, providerID)
	}
	return adapter, creds, nil
}

func (s *Service) oauthConfig(adapter provider.Adapter, creds Credentials) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		RedirectURL:  strings.TrimSuffix(s.cfg.CallbackBaseURL, "/") + "/auth/callback/" + adapter.ID(),
		Scopes:       adapter.Scopes(),
		Endpoint: oauth2.Endpoint{
			AuthURL:  adapter.AuthorizeURL(),
			TokenURL: adapter.TokenURL(),
		},
	}
}

func (s *Service) exchangeCode(ctx context.Context, adapter provider.Adapter, creds Credentials, code, verifier string) (*oauth2.Token, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.requestTimeout())
	defer cancel()

	// Route the oauth2 exchange through the service's HTTP client.
	ctx = context.WithValue(ctx, oauth2.HTTPClient, s.httpClient)

	token, err := s.oauthConfig(adapter, creds).Exchange(ctx, code, oauth2.VerifierOption(verifier))
	if err != nil {
		return nil, errors.Join(ErrTokenExchangeFailed, err)
	}
	return token, nil
}

func (s *Service) fetchBearer(ctx context.Context, url, accessToken string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.requestTimeout())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}

	return io.ReadAll(resp.Body)
}

// sanitizeRedirectPath keeps redirects on-site: only relative paths are
// accepted, everything else falls back to "/".
func sanitizeRedirectPath(path string) string {
	if path == "" || !strings.HasPrefix(path, "/") || strings.HasPrefix(path, "//") {
		return "/"
	}
	return path
}

// randomToken returns n crypto-random bytes base64url-encoded without padding.
func randomToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
