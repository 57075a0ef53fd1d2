// Package session manages opaque login sessions issued after a successful
// OAuth callback. A Manager issues, resolves and revokes sessions against a
// pluggable Store; an in-memory and a Postgres implementation ship with the
// package.
//
// Session ids come from a cryptographically secure source with 256 bits of
// entropy. Resolve treats an expired session exactly like an unknown one,
// so callers cannot learn whether a given id ever existed. Bulk cleanup of expired rows is left to an external
// maintenance job; the engine only destroys sessions it happens to observe
// expired.
//
// # Usage
//
//	manager := session.New(session.WithStore(store))
//
//	sess, err := manager.Issue(ctx, user.ID)
//	// set sess.ID as the session cookie
//
//	sess, err = manager.Resolve(ctx, cookieValue)
//	if errors.Is(err, session.ErrSessionNotFound) {
//	    // not logged in
//	}
package session
