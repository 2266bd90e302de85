// Package domain defines the four tracked data domains (finance, health,
// sleep, reading) and their entity types. Each domain is a single record
// per user: the struct here is exactly the shape that round-trips through
// the remote store, so user-entered numeric fields stay strings and are
// parsed tolerantly by the analytics package.
package domain
