// Package postgres implements the store.RemoteStore interface against a
// PostgreSQL database. All four domains share one table keyed by
// (domain, owner_id) with the snapshot held in a jsonb column.
package postgres
