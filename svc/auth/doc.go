// Package auth implements the multi-provider OAuth 2.0 authorization-code
// engine with PKCE. It builds provider authorization URLs, validates
// callbacks, exchanges codes for tokens, normalizes provider profiles into
// one canonical identity, reconciles that identity against stored users and
// issues opaque sessions.
//
// The engine owns the protocol security invariants: every flow binds a
// single-use state token to a PKCE verifier and a provider; a callback
// naming a different provider than the one recorded in the state fails; a
// state token consumed twice fails the second time. Provider network calls
// (token exchange, profile fetch, supplementary fetch) carry a bounded
// timeout and honor caller cancellation.
//
// Everything around the engine (routing, persistence mechanics, page
// serving) is a collaborator injected through interfaces.
package auth
