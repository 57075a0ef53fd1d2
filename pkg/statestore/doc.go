// Package statestore persists short-lived OAuth authorization state: the
// opaque state token handed to the provider together with the PKCE code
// verifier, the provider id and the post-login redirect path.
//
// Entries are strictly single-use. Consume removes the entry atomically with
// the lookup, so two concurrent callbacks presenting the same token race to
// exactly one winner; the loser observes ErrStateNotFound. Entries past
// their expiry are treated as absent even before physical cleanup.
//
// Three implementations ship with the package: an in-memory store for tests
// and single-node setups, a Redis store (GETDEL consume) and a Postgres
// store (DELETE ... RETURNING consume).
package statestore
