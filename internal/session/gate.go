// Package session defines the identity boundary: an opaque provider of the
// current owner id and session lifecycle transitions, plus the JWT verifier
// used by the HTTP layer.
package session

import "context"

// Change is one session transition. An empty OwnerID means signed out.
type Change struct {
	OwnerID string
}

// Gate supplies the stable owner identifier and session lifecycle events.
// The identity provider behind it is external to this system.
type Gate interface {
	// CurrentOwner resolves the signed-in owner id once at startup.
	// Returns the empty string when no session is active.
	CurrentOwner(ctx context.Context) (string, error)

	// Watch delivers a Change on every session transition until ctx is
	// cancelled. The channel is closed when the subscription ends.
	Watch(ctx context.Context) <-chan Change
}
