package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/lifetrack-api/internal/session"
)

// SessionGate implements session.Gate for tests. Transitions are pushed
// through Emit.
type SessionGate struct {
	// Function fields for customizable behavior
	CurrentOwnerFn func(ctx context.Context) (string, error)

	mu      sync.Mutex
	owner   string
	changes chan session.Change
}

// NewSessionGate creates a gate with the given initial owner ("" = signed out).
func NewSessionGate(owner string) *SessionGate {
	return &SessionGate{
		owner:   owner,
		changes: make(chan session.Change, 8),
	}
}

// CurrentOwner implements session.Gate.
func (g *SessionGate) CurrentOwner(ctx context.Context) (string, error) {
	if g.CurrentOwnerFn != nil {
		return g.CurrentOwnerFn(ctx)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.owner, nil
}

// Watch implements session.Gate.
func (g *SessionGate) Watch(ctx context.Context) <-chan session.Change {
	return g.changes
}

// Emit pushes a session transition to the watcher.
func (g *SessionGate) Emit(owner string) {
	g.mu.Lock()
	g.owner = owner
	g.mu.Unlock()
	g.changes <- session.Change{OwnerID: owner}
}

// End closes the change stream.
func (g *SessionGate) End() {
	close(g.changes)
}
