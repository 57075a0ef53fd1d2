// Package auth exposes the authentication flows over HTTP. It mounts the
// browser-facing endpoints under one router:
//
//	GET  /{provider}           start an authorization flow, redirect upstream
//	GET  /callback/{provider}  finish the flow, set the session cookie, redirect
//	GET  /me                   return the authenticated user as JSON
//	POST /logout               revoke the session, clear the cookie
//	GET  /providers            list the configured provider ids
//
// The module owns cookie handling and the error-to-status mapping; all
// protocol logic lives in svc/auth.
package auth
