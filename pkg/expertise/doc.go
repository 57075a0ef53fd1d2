// Package expertise derives skill tags from profile text and repository
// metadata using a fixed keyword vocabulary. Extraction is a pure function:
// the same inputs always yield the same alphabetically sorted, lowercase
// tag set regardless of input order.
package expertise
