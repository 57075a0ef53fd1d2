package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/profiledeck/socialauth/pkg/identity"
	authsvc "github.com/profiledeck/socialauth/svc/auth"
)

// statusFor maps service errors to an HTTP status and a stable error key
// clients can branch on. Anything the client could have asked differently
// (provider name, state token) is 400; upstream provider failures are the
// server's problem and map to 500.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, authsvc.ErrUnknownProvider):
		return http.StatusBadRequest, "unknown_provider"
	case errors.Is(err, authsvc.ErrMissingCredentials):
		return http.StatusBadRequest, "missing_credentials"
	case errors.Is(err, authsvc.ErrInvalidState):
		return http.StatusBadRequest, "invalid_state"
	case errors.Is(err, authsvc.ErrProviderMismatch):
		return http.StatusBadRequest, "provider_mismatch"
	case errors.Is(err, identity.ErrUsernameTaken):
		return http.StatusConflict, "username_taken"
	case errors.Is(err, authsvc.ErrTokenExchangeFailed):
		return http.StatusInternalServerError, "token_exchange_failed"
	case errors.Is(err, authsvc.ErrProfileFetchFailed):
		return http.StatusInternalServerError, "profile_fetch_failed"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

func errorBody(key string) map[string]string {
	return map[string]string{"error": key}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
