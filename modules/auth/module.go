package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/profiledeck/socialauth/pkg/cookie"
	"github.com/profiledeck/socialauth/pkg/identity"
	"github.com/profiledeck/socialauth/pkg/session"
	authsvc "github.com/profiledeck/socialauth/svc/auth"
)

const (
	sessionCookie    = "session_id"
	sessionMaxAge    = 30 * 24 * 60 * 60 // seconds, matches the session TTL
	failureRedirect  = "/"
	failureParamName = "error"
)

// Module is the HTTP front of the authentication service.
type Module struct {
	svc          *authsvc.Service
	cookies      *cookie.Manager
	log          *slog.Logger
	secureCookie bool
}

// Option configures the Module.
type Option func(*Module)

// WithLogger sets the logger for handler failures.
func WithLogger(log *slog.Logger) Option {
	return func(m *Module) {
		if log != nil {
			m.log = log
		}
	}
}

// WithSecureCookies marks the session cookie Secure. Enable in production,
// where callbacks arrive over TLS.
func WithSecureCookies(secure bool) Option {
	return func(m *Module) {
		m.secureCookie = secure
	}
}

// New creates the module around the engine and a cookie manager.
func New(svc *authsvc.Service, cookies *cookie.Manager, opts ...Option) *Module {
	m := &Module{
		svc:     svc,
		cookies: cookies,
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Router returns the module routes, meant to be mounted under /auth.
func (m *Module) Router() chi.Router {
	r := chi.NewRouter()

	r.Get("/providers", m.handleProviders)
	r.With(m.Authenticate).Get("/me", m.handleMe)
	r.Post("/logout", m.handleLogout)
	r.Get("/callback/{provider}", m.handleCallback)
	r.Get("/{provider}", m.handleLogin)

	return r
}

// Authenticate resolves the session cookie and stores the user in the
// request context. Requests without a valid session get 401; the stale
// cookie is cleared so browsers stop resending it.
func (m *Module) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID, err := m.cookies.GetSigned(r, sessionCookie)
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, errorBody("unauthorized"))
			return
		}

		user, err := m.svc.CurrentUser(r.Context(), sessionID)
		if err != nil {
			if errors.Is(err, session.ErrSessionNotFound) || errors.Is(err, identity.ErrUserNotFound) {
				m.cookies.Delete(w, sessionCookie)
				writeJSON(w, http.StatusUnauthorized, errorBody("unauthorized"))
				return
			}
			m.writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(authsvc.SetUserToContext(r.Context(), user)))
	})
}

func (m *Module) handleLogin(w http.ResponseWriter, r *http.Request) {
	providerID := chi.URLParam(r, "provider")
	redirectPath := r.URL.Query().Get("redirect")

	authURL, err := m.svc.BuildAuthorizationURL(r.Context(), providerID, redirectPath)
	if err != nil {
		m.writeError(w, r, err)
		return
	}

	http.Redirect(w, r, authURL, http.StatusFound)
}

func (m *Module) handleCallback(w http.ResponseWriter, r *http.Request) {
	providerID := chi.URLParam(r, "provider")
	q := r.URL.Query()

	// The user denied consent upstream; there is nothing to exchange.
	if denied := q.Get("error"); denied != "" {
		http.Redirect(w, r, failureRedirect+"?"+failureParamName+"="+url.QueryEscape(denied), http.StatusFound)
		return
	}

	code, state := q.Get("code"), q.Get("state")
	if code == "" || state == "" {
		m.writeError(w, r, authsvc.ErrInvalidState)
		return
	}

	result, err := m.svc.HandleCallback(r.Context(), providerID, code, state)
	if err != nil {
		m.writeError(w, r, err)
		return
	}

	m.cookies.SetSigned(w, sessionCookie, result.Session.ID,
		cookie.WithMaxAge(sessionMaxAge),
		cookie.WithSecure(m.secureCookie),
	)
	http.Redirect(w, r, result.RedirectPath, http.StatusFound)
}

func (m *Module) handleMe(w http.ResponseWriter, r *http.Request) {
	user := authsvc.GetUserFromContext(r.Context())
	if user == nil {
		writeJSON(w, http.StatusUnauthorized, errorBody("unauthorized"))
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (m *Module) handleLogout(w http.ResponseWriter, r *http.Request) {
	if sessionID, err := m.cookies.GetSigned(r, sessionCookie); err == nil {
		if err := m.svc.Logout(r.Context(), sessionID); err != nil {
			m.writeError(w, r, err)
			return
		}
	}

	m.cookies.Delete(w, sessionCookie)
	w.WriteHeader(http.StatusNoContent)
}

func (m *Module) handleProviders(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"providers": m.svc.Providers()})
}

func (m *Module) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, key := statusFor(err)
	if status >= http.StatusInternalServerError {
		m.log.ErrorContext(r.Context(), "auth request failed",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
	}
	writeJSON(w, status, errorBody(key))
}
