// Package identity persists canonical users reconciled from provider
// profiles. A user is keyed by their external identity, the pair
// "{provider}:{providerUserID}", which is unique and immutable once
// assigned.
//
// The single correctness-critical contract lives in Store.Upsert: two
// concurrent first-time logins for the same external identity must resolve
// to exactly one stored user. Both shipped implementations enforce this at
// the storage boundary: the Postgres store with a unique index plus
// INSERT ... ON CONFLICT DO UPDATE, the memory store with one mutex-guarded
// check-and-insert. Neither does a separate read-then-write.
//
// Username and vanity-subdomain uniqueness is enforced the same way; a
// collision with a different external identity surfaces as ErrUsernameTaken.
package identity
