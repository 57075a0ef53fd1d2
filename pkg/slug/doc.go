// Package slug turns arbitrary strings into DNS-safe labels. It is used to
// seed vanity subdomains from provider usernames: lowercase ASCII letters
// and digits pass through, common Latin diacritics fold to ASCII, and
// everything else collapses into a single separator.
package slug
