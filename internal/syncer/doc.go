// Package syncer holds the local-first synchronization engine: per-domain
// application state kept in memory, mutated optimistically, and persisted
// asynchronously to one remote record per user per domain. Mutations are
// visible to readers immediately; persistence is fire-and-forget with
// last-write-wins semantics at the remote store.
package syncer
