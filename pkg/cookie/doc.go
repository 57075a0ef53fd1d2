// Package cookie manages HTTP cookies with sane defaults (HttpOnly,
// SameSite=Lax, path "/") and optional HMAC-SHA256 signing.
//
// Signing is meant for values whose integrity matters but whose content
// is not secret, such as an opaque session id. Multiple secrets are
// supported so keys can rotate: the first secret signs, all verify.
//
// Usage:
//
//	manager, err := cookie.New([]string{secret}, cookie.WithSecure(true))
//	if err != nil { ... }
//
//	manager.SetSigned(w, "session_id", sessionID, cookie.WithMaxAge(2592000))
//	id, err := manager.GetSigned(r, "session_id")
package cookie
