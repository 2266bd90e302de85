package store

import "errors"

// Common store errors used across all RemoteStore implementations.
var (
	// ErrRecordNotFound is returned by FetchOne when no record exists for
	// the requested domain and owner. Callers treat this the same as "no
	// data yet" and fall back to domain defaults.
	ErrRecordNotFound = errors.New("domain record not found")

	// ErrUnknownDomain is returned when a record names a domain outside the
	// fixed set of four.
	ErrUnknownDomain = errors.New("unknown domain")

	// ErrInvalidRecord is returned when a record cannot be stored, for
	// example because its payload is not valid JSON.
	ErrInvalidRecord = errors.New("invalid record")
)
